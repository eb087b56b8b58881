package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"mediashelf/internal/application/usecase/abstraction"
	"mediashelf/internal/domain/dto"
	"mediashelf/internal/presentation/middleware"
	"mediashelf/pkg/logger"
)

// UploadHandler stores request bodies as objects and lists the caller's
// uploads.
type UploadHandler struct {
	media abstraction.MediaManager
}

func NewUploadHandler(media abstraction.MediaManager) *UploadHandler {
	return &UploadHandler{media: media}
}

// Upload handles POST /api/upload. The raw request body is the file.
func (h *UploadHandler) Upload(c echo.Context) error {
	claims := middleware.Claims(c)

	body := c.Request().Body
	defer body.Close()

	declaredType := c.Request().Header.Get(echo.HeaderContentType)

	media, err := h.media.Upload(c.Request().Context(), body, declaredType, claims.Email)
	if err != nil {
		logger.Error("upload failed", "uploader", claims.Email, "err", err)

		return c.JSON(http.StatusInternalServerError,
			dto.Message{Message: "Failed to upload file. Please try again later."})
	}

	return c.JSON(http.StatusCreated, dto.MediaDescriptor{
		URL:      media.URL,
		FileType: media.Type,
		Size:     media.Size,
		Uploaded: time.Now().Unix(),
	})
}

// List handles GET /api/media, returning the caller's uploads.
func (h *UploadHandler) List(c echo.Context) error {
	claims := middleware.Claims(c)

	media, err := h.media.ByUploader(c.Request().Context(), claims.Email)
	if err != nil {
		logger.Error("listing media failed", "uploader", claims.Email, "err", err)

		return c.JSON(http.StatusInternalServerError, dto.Message{Message: "Internal Server Error"})
	}

	return c.JSON(http.StatusOK, media)
}
