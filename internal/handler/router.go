package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"highway-booking/internal/handler/api"
	"highway-booking/internal/handler/middleware"
	"highway-booking/internal/pkg/config"
	"highway-booking/internal/pkg/metrics"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
}

type Handlers struct {
	System     *api.SystemHandler
	Experience *api.ExperienceHandler
	Booking    *api.BookingHandler
	Promo      *api.PromoHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *slog.Logger, m *metrics.Metrics, h Handlers, store middleware.IdempotencyStore) {
	setupMiddleware(engine, cfg, logger, m)
	setupRoutes(engine, h, m, store)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *slog.Logger, m *metrics.Metrics) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(logger, cfg.Log))
	engine.Use(middleware.RequestMetrics(m))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, m *metrics.Metrics, store middleware.IdempotencyStore) {
	addRoutes(&engine.RouterGroup, []route{
		{Method: http.MethodGet, Path: "/", Handler: h.System.Info},
		{Method: http.MethodGet, Path: "/health", Handler: h.System.Health},
		{Method: http.MethodGet, Path: "/metrics", Handler: gin.WrapH(m.Handler())},
	})

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	experiences := engine.Group("/experiences")
	{
		addRoutes(experiences, []route{
			{Method: http.MethodGet, Path: "", Handler: h.Experience.List},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Experience.Get},
		})
	}

	bookings := engine.Group("/bookings")
	bookings.Use(middleware.Idempotency(store, m))
	{
		addRoutes(bookings, []route{
			{Method: http.MethodPost, Path: "", Handler: h.Booking.Create},
		})
	}

	promo := engine.Group("/promo")
	{
		addRoutes(promo, []route{
			{Method: http.MethodPost, Path: "/validate", Handler: h.Promo.Validate},
		})
	}
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}
