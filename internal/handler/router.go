package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"support-console/internal/handler/api"
	"support-console/internal/handler/middleware"
	"support-console/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

// viewEndpoints is the operation surface every table handler exposes.
type viewEndpoints interface {
	GetView(c *gin.Context)
	Filter(c *gin.Context)
	Search(c *gin.Context)
	Sort(c *gin.Context)
	Page(c *gin.Context)
	Expand(c *gin.Context)
	ModalCreate(c *gin.Context)
	ModalEdit(c *gin.Context)
	ModalClose(c *gin.Context)
	Submit(c *gin.Context)
	DeletePrompt(c *gin.Context)
	DeleteCancel(c *gin.Context)
	DeleteConfirm(c *gin.Context)
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	sessionHandler *api.SessionHandler,
	ticketHandler *api.TicketHandler,
	refundHandler *api.RefundHandler,
	paymentHandler *api.PaymentHandler,
	dashboardHandler *api.DashboardHandler,
	chatHandler *api.ChatHandler,
	sessionMiddleware *middleware.SessionMiddleware,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, sessionHandler, ticketHandler, refundHandler, paymentHandler, dashboardHandler, chatHandler, sessionMiddleware)
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
	sessionHandler *api.SessionHandler,
	ticketHandler *api.TicketHandler,
	refundHandler *api.RefundHandler,
	paymentHandler *api.PaymentHandler,
	dashboardHandler *api.DashboardHandler,
	chatHandler *api.ChatHandler,
	sessionMiddleware *middleware.SessionMiddleware,
) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		apiGroup.POST("/sessions", sessionHandler.Create)

		authed := apiGroup.Group("")
		authed.Use(sessionMiddleware.RequireSession())
		{
			addViewRoutes(authed.Group("/tickets"), ticketHandler)
			addViewRoutes(authed.Group("/refunds"), refundHandler)
			addViewRoutes(authed.Group("/payments"), paymentHandler)

			addRoutes(authed.Group("/dashboard"), []route{
				{Method: http.MethodGet, Path: "/stats", Handler: dashboardHandler.Stats},
			})

			addRoutes(authed.Group("/chat"), []route{
				{Method: http.MethodPost, Path: "/messages", Handler: chatHandler.Send},
				{Method: http.MethodGet, Path: "/messages", Handler: chatHandler.History},
				{Method: http.MethodPost, Path: "/clear", Handler: chatHandler.Clear},
			})
		}
	}
}

func addViewRoutes(g *gin.RouterGroup, h viewEndpoints) {
	addRoutes(g, []route{
		{Method: http.MethodGet, Path: "/view", Handler: h.GetView},
		{Method: http.MethodPost, Path: "/view/filter", Handler: h.Filter},
		{Method: http.MethodPost, Path: "/view/search", Handler: h.Search},
		{Method: http.MethodPost, Path: "/view/sort", Handler: h.Sort},
		{Method: http.MethodPost, Path: "/view/page", Handler: h.Page},
		{Method: http.MethodPost, Path: "/view/expand", Handler: h.Expand},
		{Method: http.MethodPost, Path: "/view/modal/create", Handler: h.ModalCreate},
		{Method: http.MethodPost, Path: "/view/modal/edit", Handler: h.ModalEdit},
		{Method: http.MethodPost, Path: "/view/modal/close", Handler: h.ModalClose},
		{Method: http.MethodPost, Path: "/view/submit", Handler: h.Submit},
		{Method: http.MethodPost, Path: "/view/delete/prompt", Handler: h.DeletePrompt},
		{Method: http.MethodPost, Path: "/view/delete/cancel", Handler: h.DeleteCancel},
		{Method: http.MethodPost, Path: "/view/delete/confirm", Handler: h.DeleteConfirm},
	})
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
