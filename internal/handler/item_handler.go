package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"itemstore/internal/auth"
	apperrors "itemstore/internal/errors"
	"itemstore/internal/model"
	"itemstore/internal/service"
)

// ItemHandler handles item endpoints.
type ItemHandler struct {
	items service.ItemService
}

// NewItemHandler creates a new item handler.
func NewItemHandler(items service.ItemService) *ItemHandler {
	return &ItemHandler{items: items}
}

// ItemRequest is the payload for item create and update. A nil or empty
// category_ids on update clears the item's associations.
type ItemRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=255"`
	CategoryIDs []uint `json:"category_ids"`
}

// ItemRead is the response shape for an item.
type ItemRead struct {
	ID         uint           `json:"id"`
	UserID     uuid.UUID      `json:"user_id"`
	Name       string         `json:"name"`
	Categories []CategoryRead `json:"categories"`
}

// ItemDeleteResponse carries the id of a deleted item.
type ItemDeleteResponse struct {
	ID uint `json:"id"`
}

func newItemRead(item *model.Item) ItemRead {
	categories := make([]CategoryRead, 0, len(item.Categories))
	for i := range item.Categories {
		categories = append(categories, newCategoryRead(&item.Categories[i]))
	}
	return ItemRead{
		ID:         item.ID,
		UserID:     item.UserID,
		Name:       item.Name,
		Categories: categories,
	}
}

// Create godoc
// @Summary Create an item owned by the current user
// @Tags items
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body ItemRequest true "Item data"
// @Success 201 {object} ItemRead
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 422 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /items/ [post]
func (h *ItemHandler) Create(c echo.Context) error {
	var req ItemRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, apperrors.ErrorResponse{Detail: "invalid request body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, apperrors.ErrorResponse{Detail: err.Error()})
	}

	item, err := h.items.Create(c.Request().Context(), auth.CurrentUser(c), req.Name, req.CategoryIDs)
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return c.JSON(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusCreated, newItemRead(item))
}

// Get godoc
// @Summary Get one of the current user's items
// @Tags items
// @Produce json
// @Security BearerAuth
// @Param id path int true "Item ID"
// @Success 200 {object} ItemRead
// @Failure 404 {object} errors.ErrorResponse
// @Router /items/{id} [get]
func (h *ItemHandler) Get(c echo.Context) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return c.JSON(http.StatusUnprocessableEntity, apperrors.ErrorResponse{Detail: err.Error()})
	}

	item, err := h.items.Get(c.Request().Context(), auth.CurrentUser(c), id)
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return c.JSON(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, newItemRead(item))
}

// List godoc
// @Summary List items with pagination
// @Description Regular users see their own items; admins see all items.
// @Tags items
// @Produce json
// @Security BearerAuth
// @Param skip query int false "Offset" default(0)
// @Param limit query int false "Page size" default(10)
// @Success 200 {array} ItemRead
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /items/ [get]
func (h *ItemHandler) List(c echo.Context) error {
	skip, limit, err := pagination(c)
	if err != nil {
		return c.JSON(http.StatusUnprocessableEntity, apperrors.ErrorResponse{Detail: err.Error()})
	}

	items, err := h.items.List(c.Request().Context(), auth.CurrentUser(c), skip, limit)
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return c.JSON(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	out := make([]ItemRead, 0, len(items))
	for i := range items {
		out = append(out, newItemRead(&items[i]))
	}
	return c.JSON(http.StatusOK, out)
}

// Update godoc
// @Summary Update one of the current user's items
// @Tags items
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Item ID"
// @Param request body ItemRequest true "Item data"
// @Success 200 {object} ItemRead
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /items/{id} [put]
func (h *ItemHandler) Update(c echo.Context) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return c.JSON(http.StatusUnprocessableEntity, apperrors.ErrorResponse{Detail: err.Error()})
	}

	var req ItemRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, apperrors.ErrorResponse{Detail: "invalid request body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, apperrors.ErrorResponse{Detail: err.Error()})
	}

	item, err := h.items.Update(c.Request().Context(), auth.CurrentUser(c), id, req.Name, req.CategoryIDs)
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return c.JSON(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, newItemRead(item))
}

// Delete godoc
// @Summary Delete one of the current user's items
// @Tags items
// @Produce json
// @Security BearerAuth
// @Param id path int true "Item ID"
// @Success 200 {object} ItemDeleteResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /items/{id} [delete]
func (h *ItemHandler) Delete(c echo.Context) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return c.JSON(http.StatusUnprocessableEntity, apperrors.ErrorResponse{Detail: err.Error()})
	}

	deletedID, err := h.items.Delete(c.Request().Context(), auth.CurrentUser(c), id)
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return c.JSON(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, ItemDeleteResponse{ID: deletedID})
}
