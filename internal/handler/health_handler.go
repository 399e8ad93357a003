package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	apperrors "itemstore/internal/errors"
)

// HealthHandler handles the root and heartbeat endpoints.
type HealthHandler struct {
	db *gorm.DB
}

// NewHealthHandler creates a new health handler.
func NewHealthHandler(db *gorm.DB) *HealthHandler {
	return &HealthHandler{db: db}
}

// Root godoc
// @Summary Points callers at the API documentation
// @Tags heartbeat
// @Produce json
// @Success 200 {object} map[string]string
// @Router / [get]
func (h *HealthHandler) Root(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"message": "Visit /api-docs for server documentation"})
}

// Heartbeat godoc
// @Summary Report database connectivity
// @Tags heartbeat
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 500 {object} errors.ErrorResponse
// @Router /heartbeat [get]
func (h *HealthHandler) Heartbeat(c echo.Context) error {
	sqlDB, err := h.db.DB()
	if err == nil {
		err = sqlDB.PingContext(c.Request().Context())
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, apperrors.ErrorResponse{Detail: "Database connection error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Database connection is healthy."})
}
