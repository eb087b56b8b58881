package commands

import (
	"os"

	"mediashelf/pkg/logger"
)

func ExitOnError(err error) {
	logger.Error("mediashelf error", "err", err.Error())
	os.Exit(1)
}
