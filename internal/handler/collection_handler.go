package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/whitebay/backoffice/internal/dto"
	"github.com/whitebay/backoffice/internal/repository"
)

// CollectionHandler serves the uniform list/get/create/update/delete routes
// for one entity collection.
type CollectionHandler[T any, Patch repository.Patcher[T]] struct {
	repo repository.CRUD[T, Patch]
}

func NewCollectionHandler[T any, Patch repository.Patcher[T]](repo repository.CRUD[T, Patch]) *CollectionHandler[T, Patch] {
	return &CollectionHandler[T, Patch]{repo: repo}
}

// RegisterRead mounts GET routes only.
func (h *CollectionHandler[T, Patch]) RegisterRead(g *echo.Group) {
	g.GET("", h.List)
	g.GET("/:id", h.Get)
}

// RegisterRoutes mounts every route. create may be nil to mount a custom POST
// handler in its place.
func (h *CollectionHandler[T, Patch]) RegisterRoutes(g *echo.Group, create echo.HandlerFunc) {
	h.RegisterRead(g)
	if create == nil {
		create = h.Create
	}
	g.POST("", create)
	g.PATCH("/:id", h.Update)
	g.DELETE("/:id", h.Delete)
}

func (h *CollectionHandler[T, Patch]) List(c echo.Context) error {
	return c.JSON(http.StatusOK, dto.NewList(h.repo.List(c.Request().Context())))
}

func (h *CollectionHandler[T, Patch]) Get(c echo.Context) error {
	item, err := h.repo.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, item)
}

func (h *CollectionHandler[T, Patch]) Create(c echo.Context) error {
	var item T
	if err := c.Bind(&item); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	created, err := h.repo.Create(c.Request().Context(), item)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, created)
}

func (h *CollectionHandler[T, Patch]) Update(c echo.Context) error {
	var patch Patch
	if err := c.Bind(&patch); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	updated, err := h.repo.Update(c.Request().Context(), c.Param("id"), patch)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, updated)
}

func (h *CollectionHandler[T, Patch]) Delete(c echo.Context) error {
	if err := h.repo.Remove(c.Request().Context(), c.Param("id")); err != nil {
		return httpError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

// activeSetter is implemented by repositories with an isActive toggle.
type activeSetter[T any] interface {
	SetActive(ctx context.Context, id string, active bool) (T, error)
}

// SetActiveHandler serves POST /:id/active with {"isActive": bool}.
func SetActiveHandler[T any](repo activeSetter[T]) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req dto.ActiveRequest
		if err := c.Bind(&req); err != nil || req.IsActive == nil {
			return echo.NewHTTPError(http.StatusBadRequest, "isActive is required")
		}
		item, err := repo.SetActive(c.Request().Context(), c.Param("id"), *req.IsActive)
		if err != nil {
			return httpError(err)
		}
		return c.JSON(http.StatusOK, item)
	}
}
