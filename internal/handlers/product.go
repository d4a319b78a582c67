package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/petcute_backend/internal/es"
	"github.com/Skotchmaster/petcute_backend/internal/models"
	"github.com/Skotchmaster/petcute_backend/internal/mykafka"
	"github.com/Skotchmaster/petcute_backend/internal/repo"
	"github.com/Skotchmaster/petcute_backend/internal/transport"
)

type ProductHandler struct {
	Repo     *repo.GormRepo
	Producer *mykafka.Producer
	Indexer  *es.Indexer
}

func (h *ProductHandler) publish(c echo.Context, id uint, event map[string]interface{}) {
	if err := h.Producer.PublishEvent(c.Request().Context(), "catalog_events", fmt.Sprint(id), event); err != nil {
		c.Logger().Errorf("Kafka publish error: %v", err)
	}
}

func (h *ProductHandler) index(c echo.Context, product models.Product) {
	if err := h.Indexer.IndexProduct(c.Request().Context(), product); err != nil {
		c.Logger().Errorf("ES index error: %v", err)
	}
}

func (h *ProductHandler) GetProducts(c echo.Context) error {
	items, err := h.Repo.GetProducts(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, items)
}

func (h *ProductHandler) GetProduct(c echo.Context) error {
	id, idParam, err := pathID(c)
	if err != nil {
		return notFound(c, "product", idParam)
	}

	product, err := h.Repo.GetProduct(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, repo.ErrProductNotFound) {
			return notFound(c, "product", idParam)
		}
		return err
	}
	return c.JSON(http.StatusOK, product)
}

func (h *ProductHandler) CreateProduct(c echo.Context) error {
	var req transport.CreateProductRequest
	if err := c.Bind(&req); err != nil {
		return fieldError(c, "body", "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return validationFailed(c, err)
	}

	ctx := c.Request().Context()
	exists, err := h.Repo.CategoryExists(ctx, *req.CategoryID)
	if err != nil {
		return err
	}
	if !exists {
		return fieldError(c, "category_id", "the selected category does not exist")
	}

	product := models.Product{
		Name:        req.Name,
		Description: req.Description,
		Price:       *req.Price,
		Stock:       *req.Stock,
		Size:        *req.Size,
		CategoryID:  *req.CategoryID,
		ImageURL:    req.ImageURL,
	}
	if err := h.Repo.CreateProduct(ctx, &product); err != nil {
		return err
	}

	created, err := h.Repo.GetProduct(ctx, product.ID)
	if err != nil {
		return err
	}

	h.index(c, *created)
	h.publish(c, created.ID, map[string]interface{}{
		"type":       "product_created",
		"product_id": created.ID,
	})

	return c.JSON(http.StatusCreated, echo.Map{
		"message": "product created successfully",
		"product": created,
	})
}

func (h *ProductHandler) UpdateProduct(c echo.Context) error {
	id, idParam, err := pathID(c)
	if err != nil {
		return notFound(c, "product", idParam)
	}

	var req transport.UpdateProductRequest
	if err := c.Bind(&req); err != nil {
		return fieldError(c, "body", "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return validationFailed(c, err)
	}

	ctx := c.Request().Context()
	if req.CategoryID != nil {
		exists, err := h.Repo.CategoryExists(ctx, *req.CategoryID)
		if err != nil {
			return err
		}
		if !exists {
			return fieldError(c, "category_id", "the selected category does not exist")
		}
	}

	product, err := h.Repo.UpdateProduct(ctx, id, req)
	if err != nil {
		if errors.Is(err, repo.ErrProductNotFound) {
			return notFound(c, "product", idParam)
		}
		return err
	}

	h.index(c, *product)
	h.publish(c, product.ID, map[string]interface{}{
		"type":       "product_updated",
		"product_id": product.ID,
	})

	return c.JSON(http.StatusOK, echo.Map{
		"message": "product updated successfully",
		"product": product,
	})
}

func (h *ProductHandler) DeleteProduct(c echo.Context) error {
	id, idParam, err := pathID(c)
	if err != nil {
		return notFound(c, "product", idParam)
	}

	ctx := c.Request().Context()
	if err := h.Repo.DeleteProduct(ctx, id); err != nil {
		if errors.Is(err, repo.ErrProductNotFound) {
			return notFound(c, "product", idParam)
		}
		return err
	}

	if err := h.Indexer.DeleteProduct(ctx, id); err != nil {
		c.Logger().Errorf("ES delete error: %v", err)
	}
	h.publish(c, id, map[string]interface{}{
		"type":       "product_deleted",
		"product_id": id,
	})

	return c.JSON(http.StatusOK, echo.Map{
		"message": "product deleted successfully",
		"id":      id,
	})
}
