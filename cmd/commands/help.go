package commands

import "fmt"

func HandleHelp(_ []string) {
	fmt.Println(`mediashelf - content management backend

usage:
  mediashelf run <config.yml>   start the HTTP server
  mediashelf version            print the version
  mediashelf help               show this message`) //nolint
}
