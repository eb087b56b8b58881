package abstraction

import (
	"context"

	"mediashelf/internal/domain/model"
)

type ContentManager interface {
	Add(ctx context.Context, doc model.Content) (string, error)
	All(ctx context.Context, results any) error
	Update(ctx context.Context, id string, doc model.Content) error
	Delete(ctx context.Context, id string) (int64, error)
}

type CategoryManager interface {
	Add(ctx context.Context, category *model.Category) (string, error)
	BySection(ctx context.Context, section string) ([]model.Category, error)
	Delete(ctx context.Context, id string) (int64, error)
}
