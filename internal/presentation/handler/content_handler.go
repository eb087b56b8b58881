package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"mediashelf/internal/application/usecase/abstraction"
	"mediashelf/internal/domain/dto"
	"mediashelf/internal/domain/model"
	dbRepository "mediashelf/internal/domain/repository/database"
	"mediashelf/internal/presentation"
	"mediashelf/pkg/logger"
)

// Resource describes one content kind to the shared CRUD handler.
type Resource struct {
	// Label opens the human-readable messages ("Music added successfully").
	Label string
	// IDKey is the identifier key in create responses (musicId, bookId, ...).
	IDKey string
	// New returns an empty document to bind a request into.
	New func() model.Content
	// NewList returns a pointer to an empty typed slice for listings.
	NewList func() any
}

// ContentHandler serves the add/list/update/delete cycle of one content
// kind. Music, books and blogs differ only by their Resource.
type ContentHandler struct {
	manager  abstraction.ContentManager
	resource Resource
}

func NewContentHandler(manager abstraction.ContentManager, resource Resource) *ContentHandler {
	return &ContentHandler{
		manager:  manager,
		resource: resource,
	}
}

func (h *ContentHandler) Add(c echo.Context) error {
	doc := h.resource.New()
	if err := c.Bind(doc); err != nil {
		return c.JSON(http.StatusBadRequest, dto.Message{Message: "All fields are required"})
	}
	if err := c.Validate(doc); err != nil {
		return c.JSON(http.StatusBadRequest, dto.Message{Message: "All fields are required"})
	}

	id, err := h.manager.Add(c.Request().Context(), doc)
	if err != nil {
		logger.Error("adding content failed", "kind", h.resource.Label, "err", err)

		return c.JSON(http.StatusInternalServerError, dto.Message{Message: "Internal Server Error"})
	}

	return c.JSON(http.StatusCreated, echo.Map{
		"message":        h.resource.Label + " added successfully",
		h.resource.IDKey: id,
	})
}

func (h *ContentHandler) List(c echo.Context) error {
	results := h.resource.NewList()
	if err := h.manager.All(c.Request().Context(), results); err != nil {
		logger.Error("listing content failed", "kind", h.resource.Label, "err", err)

		return c.JSON(http.StatusInternalServerError, dto.Message{Message: "Internal Server Error"})
	}

	return c.JSON(http.StatusOK, results)
}

func (h *ContentHandler) Update(c echo.Context) error {
	id := c.Param(presentation.IDParam)

	doc := h.resource.New()
	if err := c.Bind(doc); err != nil {
		return c.JSON(http.StatusBadRequest, dto.Message{Message: "All fields are required"})
	}
	if err := c.Validate(doc); err != nil {
		return c.JSON(http.StatusBadRequest, dto.Message{Message: "All fields are required"})
	}

	if err := h.manager.Update(c.Request().Context(), id, doc); err != nil {
		if errors.Is(err, dbRepository.ErrNotFound) {
			return c.JSON(http.StatusNotFound,
				dto.Message{Message: h.resource.Label + " not found or no changes made"})
		}

		logger.Error("updating content failed", "kind", h.resource.Label, "id", id, "err", err)

		return c.JSON(http.StatusInternalServerError, dto.Message{Message: "Internal Server Error"})
	}

	return c.JSON(http.StatusOK, dto.Message{Message: h.resource.Label + " updated successfully"})
}

func (h *ContentHandler) Delete(c echo.Context) error {
	id := c.Param(presentation.IDParam)

	deleted, err := h.manager.Delete(c.Request().Context(), id)
	if err != nil {
		logger.Error("deleting content failed", "kind", h.resource.Label, "id", id, "err", err)

		return c.JSON(http.StatusInternalServerError, dto.Message{Message: "Internal Server Error"})
	}

	if deleted == 0 {
		return c.JSON(http.StatusNotFound, dto.DeleteResult{
			Message:      h.resource.Label + " not found",
			DeletedCount: 0,
		})
	}

	return c.JSON(http.StatusOK, dto.DeleteResult{
		Message:      h.resource.Label + " deleted successfully",
		DeletedCount: deleted,
	})
}
