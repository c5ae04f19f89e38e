package api

import (
	"context"
	"net/http"
	"time"

	resdto "highway-booking/internal/handler/dto/response"
	"highway-booking/internal/handler/httperr"
	"highway-booking/internal/pkg/config"

	"github.com/gin-gonic/gin"
)

// Pinger is satisfied by *pgxpool.Pool.
type Pinger interface {
	Ping(ctx context.Context) error
}

type SystemHandler struct {
	app config.AppConfig
	db  Pinger
}

func NewSystemHandler(app config.AppConfig, db Pinger) *SystemHandler {
	return &SystemHandler{app: app, db: db}
}

// @Summary Service info
// @Tags system
// @Produce json
// @Success 200 {object} resdto.ServiceInfoResponse
// @Router / [get]
func (h *SystemHandler) Info(c *gin.Context) {
	c.JSON(http.StatusOK, resdto.ServiceInfoResponse{
		Name:    h.app.Name,
		Version: h.app.Version,
	})
}

// @Summary Health check
// @Description Check if the service and its database are reachable
// @Tags system
// @Produce json
// @Success 200 {object} resdto.HealthResponse
// @Failure 503 {object} httperr.Response
// @Router /health [get]
func (h *SystemHandler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	if err := h.db.Ping(ctx); err != nil {
		httperr.AbortWithError(c, http.StatusServiceUnavailable, err, "Database unavailable",
			resdto.HealthResponse{Status: "degraded", Database: "down"})
		return
	}
	c.JSON(http.StatusOK, resdto.HealthResponse{Status: "ok", Database: "up"})
}
