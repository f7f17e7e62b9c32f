package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"hotel-core/internal/domain/user"
	"hotel-core/internal/handler/api"
	"hotel-core/internal/handler/middleware"
	"hotel-core/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

// Handlers groups every API handler so the router takes one dependency.
type Handlers struct {
	Auth         *api.AuthHandler
	Booking      *api.BookingHandler
	Payment      *api.PaymentHandler
	Pricing      *api.PricingHandler
	Policy       *api.PolicyHandler
	Housekeeping *api.HousekeepingHandler
	Room         *api.RoomHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, h, authMiddleware, middleware.RateLimiter(cfg.RateLimit))
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(logger.Middleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware, limit gin.HandlerFunc) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	staff := authMiddleware.RequireRoleAtLeast(user.RoleManager)
	// writes are rate limited per client IP
	write := []gin.HandlerFunc{limit}
	staffWrite := []gin.HandlerFunc{limit, staff}

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login, Mw: write},
				{Method: http.MethodPost, Path: "/refresh", Handler: h.Auth.Refresh, Mw: write},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodGet, Path: "/me", Handler: h.Auth.Me},
			})
		}

		bookings := apiGroup.Group("/bookings")
		bookings.Use(authMiddleware.RequireAuth())
		{
			addRoutes(bookings, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Booking.Create, Mw: write},
				{Method: http.MethodGet, Path: "", Handler: h.Booking.List},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Booking.Get},
				{Method: http.MethodPatch, Path: "/:id", Handler: h.Booking.Update, Mw: write},
				{Method: http.MethodPost, Path: "/:id/confirm", Handler: h.Booking.Confirm, Mw: write},
				{Method: http.MethodPost, Path: "/:id/check-in", Handler: h.Booking.CheckIn, Mw: write},
				{Method: http.MethodPost, Path: "/:id/check-out", Handler: h.Booking.CheckOut, Mw: write},
				{Method: http.MethodPost, Path: "/:id/cancel", Handler: h.Booking.Cancel, Mw: write},
				{Method: http.MethodPost, Path: "/:id/no-show", Handler: h.Booking.MarkNoShow, Mw: write},
				{Method: http.MethodGet, Path: "/:id/payments", Handler: h.Booking.Payments},
				{Method: http.MethodGet, Path: "/:id/invoice", Handler: h.Booking.Invoice},
			})
		}

		payments := apiGroup.Group("/payments")
		payments.Use(authMiddleware.RequireAuth())
		{
			addRoutes(payments, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Payment.Create, Mw: write},
				{Method: http.MethodGet, Path: "", Handler: h.Payment.List},
				{Method: http.MethodPost, Path: "/:id/process", Handler: h.Payment.Process, Mw: write},
				{Method: http.MethodPost, Path: "/:id/fail", Handler: h.Payment.Fail, Mw: write},
				{Method: http.MethodPost, Path: "/:id/refund", Handler: h.Payment.Refund, Mw: write},
			})
		}

		invoices := apiGroup.Group("/invoices")
		invoices.Use(authMiddleware.RequireAuth())
		{
			addRoutes(invoices, []route{
				{Method: http.MethodPost, Path: "/:id", Handler: h.Payment.GenerateInvoice, Mw: staffWrite},
			})
		}

		pricing := apiGroup.Group("")
		pricing.Use(authMiddleware.RequireAuth())
		{
			addRoutes(pricing, []route{
				{Method: http.MethodPost, Path: "/pricing/quote", Handler: h.Pricing.Quote},
				{Method: http.MethodGet, Path: "/pricing-rules", Handler: h.Pricing.ListRules},
				{Method: http.MethodGet, Path: "/pricing-rules/:id", Handler: h.Pricing.GetRule},
				{Method: http.MethodPost, Path: "/pricing-rules", Handler: h.Pricing.CreateRule, Mw: staffWrite},
				{Method: http.MethodPut, Path: "/pricing-rules/:id", Handler: h.Pricing.UpdateRule, Mw: staffWrite},
				{Method: http.MethodDelete, Path: "/pricing-rules/:id", Handler: h.Pricing.DeleteRule, Mw: staffWrite},
			})
		}

		policies := apiGroup.Group("/cancellation-policies")
		policies.Use(authMiddleware.RequireAuth())
		{
			addRoutes(policies, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Policy.List},
				{Method: http.MethodPost, Path: "", Handler: h.Policy.Create, Mw: staffWrite},
			})
		}

		tasks := apiGroup.Group("/housekeeping/tasks")
		tasks.Use(authMiddleware.RequireAuth())
		{
			addRoutes(tasks, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Housekeeping.List},
				{Method: http.MethodPost, Path: "/:id/assign", Handler: h.Housekeeping.Assign, Mw: staffWrite},
				{Method: http.MethodPost, Path: "/:id/start", Handler: h.Housekeeping.Start, Mw: write},
				{Method: http.MethodPost, Path: "/:id/complete", Handler: h.Housekeeping.Complete, Mw: write},
				{Method: http.MethodPost, Path: "/:id/verify", Handler: h.Housekeeping.Verify, Mw: staffWrite},
				{Method: http.MethodPost, Path: "/:id/fail", Handler: h.Housekeeping.Fail, Mw: write},
			})
		}

		rooms := apiGroup.Group("/rooms")
		rooms.Use(authMiddleware.RequireAuth())
		{
			addRoutes(rooms, []route{
				{Method: http.MethodGet, Path: "/:id", Handler: h.Room.Get},
				{Method: http.MethodPut, Path: "/:id/maintenance-status", Handler: h.Room.SetMaintenanceStatus, Mw: staffWrite},
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
			h = chainHandlers(append(append([]gin.HandlerFunc{}, r.Mw...), r.Handler)...)
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
