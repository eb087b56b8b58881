package usecase

import (
	"context"
	"io"
	"time"

	"mediashelf/internal/domain/model"
	brokerRepository "mediashelf/internal/domain/repository/broker"
	dbRepository "mediashelf/internal/domain/repository/database"
	minioRepository "mediashelf/internal/domain/repository/minio"
	"mediashelf/pkg/logger"
)

// Media stores uploaded files in object storage and records a document
// per upload so owners can list what they have stored.
type Media struct {
	uploader minioRepository.Uploader
	store    dbRepository.MediaRepo
	events   brokerRepository.Publisher
}

func NewMedia(uploader minioRepository.Uploader, store dbRepository.MediaRepo,
	events brokerRepository.Publisher,
) *Media {
	return &Media{
		uploader: uploader,
		store:    store,
		events:   events,
	}
}

func (u *Media) Upload(ctx context.Context, body io.Reader, declaredType, uploadedBy string) (*model.Media, error) {
	result, err := u.uploader.Upload(ctx, body, declaredType)
	if err != nil {
		return nil, err
	}

	media := &model.Media{
		UploadedBy: uploadedBy,
		URL:        result.URL,
		Type:       result.Type,
		Size:       result.Size,
		AddedAt:    time.Now(),
	}

	id, err := u.store.Insert(ctx, media)
	if err != nil {
		return nil, err
	}

	if u.events != nil {
		event := brokerRepository.Event{Kind: "media", Action: "added", ID: id}
		if err := u.events.Publish(ctx, event); err != nil {
			logger.Warn("publishing media event failed", "err", err)
		}
	}

	return media, nil
}

func (u *Media) ByUploader(ctx context.Context, email string) ([]model.Media, error) {
	return u.store.ByUploader(ctx, email)
}
