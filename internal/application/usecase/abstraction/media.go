package abstraction

import (
	"context"
	"io"

	"mediashelf/internal/domain/model"
)

type MediaManager interface {
	Upload(ctx context.Context, body io.Reader, declaredType, uploadedBy string) (*model.Media, error)
	ByUploader(ctx context.Context, email string) ([]model.Media, error)
}
