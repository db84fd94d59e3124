package handler

import (
	"context"
	"database/sql"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// HealthHandler reports liveness plus whether the database answers a ping.
type HealthHandler struct{ DB *sql.DB }

func NewHealthHandler(db *sql.DB) *HealthHandler { return &HealthHandler{DB: db} }

// Health is used by load balancers and monitoring systems to verify that
// the service is running.
func (h *HealthHandler) Health(c echo.Context) error {
	dbState := "up"
	ctx, cancel := context.WithTimeout(c.Request().Context(), 2*time.Second)
	defer cancel()
	if h.DB == nil || h.DB.PingContext(ctx) != nil {
		dbState = "down"
	}
	return c.JSON(http.StatusOK, echo.Map{"status": "ok", "database": dbState})
}
