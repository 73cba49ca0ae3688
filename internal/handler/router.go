package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"coshare-scheduler/internal/domain/user"
	"coshare-scheduler/internal/handler/api"
	reqdto "coshare-scheduler/internal/handler/dto/request"
	"coshare-scheduler/internal/handler/middleware"
	"coshare-scheduler/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Reservation *api.ReservationHandler
	Conflict    *api.ConflictHandler
	Internal    *api.InternalHandler
}

func NewHandlers(reservation *api.ReservationHandler, conflict *api.ConflictHandler, internal *api.InternalHandler) Handlers {
	return Handlers{Reservation: reservation, Conflict: conflict, Internal: internal}
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, h Handlers, authMiddleware *middleware.AuthMiddleware) error {
	if err := reqdto.RegisterValidations(); err != nil {
		return err
	}
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, h, authMiddleware)
	return nil
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	apiGroup.Use(authMiddleware.RequireAuth())
	{
		reservations := apiGroup.Group("/reservations")
		addRoutes(reservations, []route{
			{Method: http.MethodPost, Path: "", Handler: h.Reservation.Create},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Reservation.Get},
			{Method: http.MethodPost, Path: "/:id/confirm", Handler: h.Reservation.Confirm},
			{Method: http.MethodPost, Path: "/:id/check-in", Handler: h.Reservation.CheckIn},
			{Method: http.MethodPost, Path: "/:id/check-out", Handler: h.Reservation.CheckOut},
			{Method: http.MethodGet, Path: "/:id/cancellation", Handler: h.Reservation.AnalyzeCancellation},
			{Method: http.MethodPost, Path: "/:id/cancel", Handler: h.Reservation.Cancel},
			{Method: http.MethodPost, Path: "/:id/modifications", Handler: h.Reservation.ProposeModification},
			{Method: http.MethodPost, Path: "/:id/modifications/commit", Handler: h.Reservation.CommitModification},
		})

		conflicts := apiGroup.Group("/conflicts")
		addRoutes(conflicts, []route{
			{Method: http.MethodGet, Path: "", Handler: h.Conflict.List},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Conflict.Get},
			{Method: http.MethodPost, Path: "/:id/responses", Handler: h.Conflict.Respond},
		})

		adminOnly := []gin.HandlerFunc{authMiddleware.RequireRoleAtLeast(user.RoleAdmin)}
		internal := apiGroup.Group("/internal")
		addRoutes(internal, []route{
			{Method: http.MethodPost, Path: "/conflicts/expire", Handler: h.Internal.ExpireCounterOffers, Mw: adminOnly},
			{Method: http.MethodPost, Path: "/notifications/relay", Handler: h.Internal.RelayNotifications, Mw: adminOnly},
		})
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
