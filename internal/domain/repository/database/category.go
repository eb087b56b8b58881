package database

import (
	"context"

	"mediashelf/internal/domain/model"
)

type CategoryRepo interface {
	Insert(ctx context.Context, category *model.Category) (string, error)

	// BySection returns categories whose section exactly equals the argument.
	BySection(ctx context.Context, section string) ([]model.Category, error)

	Delete(ctx context.Context, id string) (int64, error)
}
