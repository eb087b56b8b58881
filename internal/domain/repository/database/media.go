package database

import (
	"context"

	"mediashelf/internal/domain/model"
)

type MediaRepo interface {
	Insert(ctx context.Context, media *model.Media) (string, error)
	ByUploader(ctx context.Context, email string) ([]model.Media, error)
}
