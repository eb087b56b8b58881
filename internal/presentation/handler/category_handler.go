package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"mediashelf/internal/application/usecase/abstraction"
	"mediashelf/internal/domain/dto"
	"mediashelf/internal/domain/model"
	"mediashelf/internal/presentation"
	"mediashelf/pkg/logger"
)

type CategoryHandler struct {
	manager abstraction.CategoryManager
}

func NewCategoryHandler(manager abstraction.CategoryManager) *CategoryHandler {
	return &CategoryHandler{manager: manager}
}

func (h *CategoryHandler) Add(c echo.Context) error {
	category := &model.Category{}
	if err := c.Bind(category); err != nil {
		return c.JSON(http.StatusBadRequest, dto.Message{Message: "Section and category are required"})
	}
	if err := c.Validate(category); err != nil {
		return c.JSON(http.StatusBadRequest, dto.Message{Message: "Section and category are required"})
	}

	id, err := h.manager.Add(c.Request().Context(), category)
	if err != nil {
		logger.Error("adding category failed", "err", err)

		return c.JSON(http.StatusInternalServerError, dto.Message{Message: "Internal Server Error"})
	}

	return c.JSON(http.StatusCreated, echo.Map{
		"message":    "Category added successfully",
		"categoryId": id,
	})
}

// BySection handles GET /categories/:section with an exact section match.
func (h *CategoryHandler) BySection(c echo.Context) error {
	section := c.Param(presentation.SectionParam)

	categories, err := h.manager.BySection(c.Request().Context(), section)
	if err != nil {
		logger.Error("listing categories failed", "section", section, "err", err)

		return c.JSON(http.StatusInternalServerError, dto.Message{Message: "Internal Server Error"})
	}

	return c.JSON(http.StatusOK, categories)
}

func (h *CategoryHandler) Delete(c echo.Context) error {
	id := c.Param(presentation.IDParam)

	deleted, err := h.manager.Delete(c.Request().Context(), id)
	if err != nil {
		logger.Error("deleting category failed", "id", id, "err", err)

		return c.JSON(http.StatusInternalServerError, dto.Message{Message: "Internal Server Error"})
	}

	if deleted == 0 {
		return c.JSON(http.StatusNotFound, dto.DeleteResult{
			Message:      "Category not found",
			DeletedCount: 0,
		})
	}

	return c.JSON(http.StatusOK, dto.DeleteResult{
		Message:      "Category deleted successfully",
		DeletedCount: deleted,
	})
}
