package minio

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"

	minioRepository "mediashelf/internal/domain/repository/minio"
	"mediashelf/pkg/utils"
)

type Uploader struct {
	minioClient *minio.Client
	cfg         UploaderConfig
}

func NewUploader(client *Client, cfg UploaderConfig) *Uploader {
	return &Uploader{
		minioClient: client.MinioClient,
		cfg:         cfg,
	}
}

func (u *Uploader) Upload(ctx context.Context, body io.Reader,
	declaredType string,
) (minioRepository.UploadResult, error) {
	ctx, cancel := context.WithTimeout(ctx, time.Duration(u.cfg.Timeout)*time.Millisecond)
	defer cancel()

	data, err := io.ReadAll(body)
	if err != nil {
		return minioRepository.UploadResult{}, err
	}
	if len(data) == 0 {
		return minioRepository.UploadResult{}, errors.New("read error: empty file")
	}

	detected := mimetype.Detect(data)
	contentType := detected.String()
	extension := detected.Extension()

	// The client-declared type is only trusted when detection came up generic.
	if contentType == "application/octet-stream" && declaredType != "" {
		contentType = declaredType
		extension = utils.GetExtensionFromMimeType(declaredType)
	}

	objectName := uuid.NewString() + extension

	info, err := u.minioClient.PutObject(ctx, u.cfg.Bucket, objectName,
		bytes.NewReader(data), int64(len(data)),
		minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return minioRepository.UploadResult{}, err
	}

	return minioRepository.UploadResult{
		URL:  fmt.Sprintf("%s/%s/%s", u.cfg.PublicURL, u.cfg.Bucket, objectName),
		Type: contentType,
		Size: info.Size,
	}, nil
}
