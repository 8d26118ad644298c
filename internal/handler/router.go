package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"rv-portal/internal/handler/api"
	"rv-portal/internal/handler/middleware"
	"rv-portal/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Inventory *api.InventoryHandler
	Location  *api.LocationHandler
	Signup    *api.SignupHandler
	Order     *api.OrderHandler
	Debug     *api.DebugHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, h Handlers, session *middleware.SessionMiddleware) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, h, session)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, session *middleware.SessionMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/init", Handler: h.Inventory.Init},
			{Method: http.MethodGet, Path: "/inventory", Handler: h.Inventory.List},
			{Method: http.MethodGet, Path: "/inventory/:stock", Handler: h.Inventory.Get},
			{Method: http.MethodGet, Path: "/locations", Handler: h.Location.List},
			{Method: http.MethodGet, Path: "/distance", Handler: h.Location.Distance},
			{Method: http.MethodPost, Path: "/signup", Handler: h.Signup.Signup},
			{Method: http.MethodPost, Path: "/verify-pin", Handler: h.Signup.VerifyPIN},
			{Method: http.MethodPost, Path: "/logout", Handler: h.Signup.Logout},
			{Method: http.MethodGet, Path: "/catalog", Handler: h.Order.Catalog},
			{Method: http.MethodPost, Path: "/orders/quote", Handler: h.Order.Quote},
		})

		orders := apiGroup.Group("/orders")
		orders.Use(session.RequireSession())
		{
			addRoutes(orders, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Order.Submit},
				{Method: http.MethodGet, Path: "", Handler: h.Order.List},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Order.Get},
			})
		}

		if gin.Mode() == gin.DebugMode && h.Debug != nil {
			apiGroup.GET("/debug", h.Debug.Snapshot)
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
