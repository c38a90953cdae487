package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"booking-registry/internal/handler/api"
	"booking-registry/internal/handler/middleware"
	"booking-registry/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Auth     *api.AuthHandler
	Booking  *api.BookingHandler
	Registry *api.RegistryHandler
	Ledger   *api.LedgerHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *slog.Logger, handlers Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, cfg, handlers, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *slog.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(logger, cfg.Log))
	if cfg.Metrics.Enabled {
		engine.Use(middleware.MetricsMiddleware())
	}
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, cfg config.Config, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	if cfg.Metrics.Enabled {
		engine.GET(cfg.Metrics.Path, gin.WrapH(promhttp.Handler()))
	}

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	requireAuth := authMiddleware.RequireAuth()

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodGet, Path: "/me", Handler: h.Auth.Me, Mw: []gin.HandlerFunc{requireAuth}},
			})
		}

		bookings := apiGroup.Group("/bookings")
		{
			addRoutes(bookings, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Booking.Create, Mw: []gin.HandlerFunc{requireAuth}},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Booking.Get},
				{Method: http.MethodGet, Path: "/:id/core", Handler: h.Booking.GetCore},
				{Method: http.MethodGet, Path: "/:id/details", Handler: h.Booking.GetDetails},
				{Method: http.MethodGet, Path: "/:id/events", Handler: h.Booking.ListEvents},
				{Method: http.MethodPost, Path: "/:id/confirm", Handler: h.Booking.Confirm, Mw: []gin.HandlerFunc{requireAuth}},
				{Method: http.MethodPost, Path: "/:id/pay", Handler: h.Booking.Pay, Mw: []gin.HandlerFunc{requireAuth}},
				{Method: http.MethodPost, Path: "/:id/cancel", Handler: h.Booking.Cancel, Mw: []gin.HandlerFunc{requireAuth}},
				{Method: http.MethodPost, Path: "/:id/refund", Handler: h.Booking.Refund, Mw: []gin.HandlerFunc{requireAuth}},
				{Method: http.MethodPost, Path: "/:id/refundable", Handler: h.Booking.ToggleRefundable, Mw: []gin.HandlerFunc{requireAuth}},
			})
		}

		registry := apiGroup.Group("/registry")
		{
			addRoutes(registry, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Registry.GetSettings},
				{Method: http.MethodGet, Path: "/tax", Handler: h.Registry.GetTaxPercentage},
				{Method: http.MethodPut, Path: "/tax", Handler: h.Registry.SetTaxPercentage, Mw: []gin.HandlerFunc{requireAuth}},
				{Method: http.MethodGet, Path: "/room-prices", Handler: h.Registry.GetRoomPrices},
				{Method: http.MethodPut, Path: "/room-prices", Handler: h.Registry.SetRoomPrices, Mw: []gin.HandlerFunc{requireAuth}},
				{Method: http.MethodGet, Path: "/total", Handler: h.Registry.CalculateTotalAmount},
			})
		}

		ledger := apiGroup.Group("/ledger")
		{
			addRoutes(ledger, []route{
				{Method: http.MethodGet, Path: "/balances/:account", Handler: h.Ledger.Balance},
				{Method: http.MethodGet, Path: "/allowances/:owner", Handler: h.Ledger.EscrowAllowance},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
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

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
