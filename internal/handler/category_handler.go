package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"itemstore/internal/auth"
	apperrors "itemstore/internal/errors"
	"itemstore/internal/model"
	"itemstore/internal/service"
)

// CategoryHandler handles category endpoints.
type CategoryHandler struct {
	categories service.CategoryService
}

// NewCategoryHandler creates a new category handler.
func NewCategoryHandler(categories service.CategoryService) *CategoryHandler {
	return &CategoryHandler{categories: categories}
}

// CategoryRequest is the payload for category create and update.
type CategoryRequest struct {
	Name string `json:"name" validate:"required,min=1,max=36"`
}

// CategoryRead is the response shape for a category.
type CategoryRead struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// CategoryDeleteResponse carries the id of a deleted category.
type CategoryDeleteResponse struct {
	ID uint `json:"id"`
}

func newCategoryRead(category *model.Category) CategoryRead {
	return CategoryRead{ID: category.ID, Name: category.Name}
}

// Create godoc
// @Summary Create a category (admin only)
// @Tags categories
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CategoryRequest true "Category data"
// @Success 201 {object} CategoryRead
// @Failure 403 {object} errors.ErrorResponse
// @Failure 422 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /categories/ [post]
func (h *CategoryHandler) Create(c echo.Context) error {
	var req CategoryRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, apperrors.ErrorResponse{Detail: "invalid request body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, apperrors.ErrorResponse{Detail: err.Error()})
	}

	category, err := h.categories.Create(c.Request().Context(), auth.CurrentUser(c), req.Name)
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return c.JSON(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusCreated, newCategoryRead(category))
}

// Get godoc
// @Summary Get a category by id
// @Tags categories
// @Produce json
// @Security BearerAuth
// @Param id path int true "Category ID"
// @Success 200 {object} CategoryRead
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /categories/{id} [get]
func (h *CategoryHandler) Get(c echo.Context) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return c.JSON(http.StatusUnprocessableEntity, apperrors.ErrorResponse{Detail: err.Error()})
	}

	category, err := h.categories.Get(c.Request().Context(), auth.CurrentUser(c), id)
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return c.JSON(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, newCategoryRead(category))
}

// List godoc
// @Summary List categories with pagination
// @Tags categories
// @Produce json
// @Security BearerAuth
// @Param skip query int false "Offset" default(0)
// @Param limit query int false "Page size" default(10)
// @Success 200 {array} CategoryRead
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /categories/ [get]
func (h *CategoryHandler) List(c echo.Context) error {
	skip, limit, err := pagination(c)
	if err != nil {
		return c.JSON(http.StatusUnprocessableEntity, apperrors.ErrorResponse{Detail: err.Error()})
	}

	categories, err := h.categories.List(c.Request().Context(), auth.CurrentUser(c), skip, limit)
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return c.JSON(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	out := make([]CategoryRead, 0, len(categories))
	for i := range categories {
		out = append(out, newCategoryRead(&categories[i]))
	}
	return c.JSON(http.StatusOK, out)
}

// Update godoc
// @Summary Rename a category (admin only)
// @Tags categories
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Category ID"
// @Param request body CategoryRequest true "Category data"
// @Success 200 {object} CategoryRead
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /categories/{id} [put]
func (h *CategoryHandler) Update(c echo.Context) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return c.JSON(http.StatusUnprocessableEntity, apperrors.ErrorResponse{Detail: err.Error()})
	}

	var req CategoryRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, apperrors.ErrorResponse{Detail: "invalid request body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, apperrors.ErrorResponse{Detail: err.Error()})
	}

	category, err := h.categories.Update(c.Request().Context(), auth.CurrentUser(c), id, req.Name)
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return c.JSON(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, newCategoryRead(category))
}

// Delete godoc
// @Summary Delete a category (admin only)
// @Tags categories
// @Produce json
// @Security BearerAuth
// @Param id path int true "Category ID"
// @Success 200 {object} CategoryDeleteResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /categories/{id} [delete]
func (h *CategoryHandler) Delete(c echo.Context) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return c.JSON(http.StatusUnprocessableEntity, apperrors.ErrorResponse{Detail: err.Error()})
	}

	deletedID, err := h.categories.Delete(c.Request().Context(), auth.CurrentUser(c), id)
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return c.JSON(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, CategoryDeleteResponse{ID: deletedID})
}

func parseUintParam(c echo.Context, name string) (uint, error) {
	parsed, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		return 0, errInvalidID
	}
	return uint(parsed), nil
}
