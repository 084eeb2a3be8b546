package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"seminar-booking/internal/handler/api"
	"seminar-booking/internal/handler/middleware"
	"seminar-booking/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	seminarHandler *api.SeminarHandler,
	reservationHandler *api.ReservationHandler,
	myPageHandler *api.MyPageHandler,
	webhookHandler *api.WebhookHandler,
	adminHandler *api.AdminHandler,
	adminMiddleware *middleware.AdminMiddleware,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, seminarHandler, reservationHandler, myPageHandler, webhookHandler, adminHandler, adminMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	seminarHandler *api.SeminarHandler,
	reservationHandler *api.ReservationHandler,
	myPageHandler *api.MyPageHandler,
	webhookHandler *api.WebhookHandler,
	adminHandler *api.AdminHandler,
	adminMiddleware *middleware.AdminMiddleware,
) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/seminars", Handler: seminarHandler.List},
			{Method: http.MethodPost, Path: "/reservations", Handler: reservationHandler.Create},
			{Method: http.MethodGet, Path: "/mypage/:token", Handler: myPageHandler.Get},
			{Method: http.MethodPost, Path: "/webhooks/square", Handler: webhookHandler.HandleSquareEvent},
		})

		admin := apiGroup.Group("/admin")
		{
			addRoutes(admin, []route{
				{Method: http.MethodPost, Path: "/login", Handler: adminHandler.Login},
			})

			adminRequired := admin.Group("")
			adminRequired.Use(adminMiddleware.RequireAdmin())
			addRoutes(adminRequired, []route{
				{Method: http.MethodPost, Path: "/seminars", Handler: adminHandler.CreateSeminar},
				{Method: http.MethodGet, Path: "/seminars/:id/bookings", Handler: adminHandler.ListBookings},
				{Method: http.MethodPost, Path: "/bookings/:id/resend-link", Handler: adminHandler.ResendPaymentLink},
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
