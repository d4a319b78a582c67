package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/petcute_backend/internal/models"
	"github.com/Skotchmaster/petcute_backend/internal/mykafka"
	"github.com/Skotchmaster/petcute_backend/internal/repo"
	"github.com/Skotchmaster/petcute_backend/internal/transport"
)

type CategoryHandler struct {
	Repo     *repo.GormRepo
	Producer *mykafka.Producer
}

func (h *CategoryHandler) publish(c echo.Context, id uint, event map[string]interface{}) {
	if err := h.Producer.PublishEvent(c.Request().Context(), "catalog_events", fmt.Sprint(id), event); err != nil {
		c.Logger().Errorf("Kafka publish error: %v", err)
	}
}

func (h *CategoryHandler) GetCategories(c echo.Context) error {
	items, err := h.Repo.GetCategories(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, items)
}

func (h *CategoryHandler) GetCategory(c echo.Context) error {
	id, idParam, err := pathID(c)
	if err != nil {
		return notFound(c, "category", idParam)
	}

	category, err := h.Repo.GetCategory(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, repo.ErrCategoryNotFound) {
			return notFound(c, "category", idParam)
		}
		return err
	}
	return c.JSON(http.StatusOK, category)
}

func (h *CategoryHandler) CreateCategory(c echo.Context) error {
	var req transport.CreateCategoryRequest
	if err := c.Bind(&req); err != nil {
		return fieldError(c, "body", "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return validationFailed(c, err)
	}

	category := models.Category{Name: req.Name}
	if err := h.Repo.CreateCategory(c.Request().Context(), &category); err != nil {
		return err
	}

	h.publish(c, category.ID, map[string]interface{}{
		"type":        "category_created",
		"category_id": category.ID,
	})

	return c.JSON(http.StatusCreated, echo.Map{
		"message":  "category created successfully",
		"category": category,
	})
}

func (h *CategoryHandler) UpdateCategory(c echo.Context) error {
	id, idParam, err := pathID(c)
	if err != nil {
		return notFound(c, "category", idParam)
	}

	var req transport.UpdateCategoryRequest
	if err := c.Bind(&req); err != nil {
		return fieldError(c, "body", "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return validationFailed(c, err)
	}

	category, err := h.Repo.UpdateCategory(c.Request().Context(), id, req)
	if err != nil {
		if errors.Is(err, repo.ErrCategoryNotFound) {
			return notFound(c, "category", idParam)
		}
		return err
	}

	h.publish(c, category.ID, map[string]interface{}{
		"type":        "category_updated",
		"category_id": category.ID,
	})

	return c.JSON(http.StatusOK, echo.Map{
		"message":  "category updated successfully",
		"category": category,
	})
}

func (h *CategoryHandler) DeleteCategory(c echo.Context) error {
	id, idParam, err := pathID(c)
	if err != nil {
		return notFound(c, "category", idParam)
	}

	if err := h.Repo.DeleteCategory(c.Request().Context(), id); err != nil {
		if errors.Is(err, repo.ErrCategoryNotFound) {
			return notFound(c, "category", idParam)
		}
		return err
	}

	h.publish(c, id, map[string]interface{}{
		"type":        "category_deleted",
		"category_id": id,
	})

	return c.JSON(http.StatusOK, echo.Map{
		"message": "category deleted successfully",
		"id":      id,
	})
}
