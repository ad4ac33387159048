package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"nuzlocke-tracker/internal/handler/api"
	"nuzlocke-tracker/internal/handler/live"
	"nuzlocke-tracker/internal/handler/middleware"
	"nuzlocke-tracker/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Auth    *api.AuthHandler
	Group   *api.GroupHandler
	Livebox *api.LiveboxHandler
	Deadbox *api.DeadboxHandler
	Wheel   *api.WheelHandler
	Pokedex *api.PokedexHandler
	Live    *live.Handler

	Challenges *api.ChallengeHandler
	Chat       *api.ChatHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, h, authMiddleware)
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
	{
		auth := apiGroup.Group("/auth")
		auth.Use(authMiddleware.RequireAuth())
		addRoutes(auth, []route{
			{Method: http.MethodGet, Path: "/me", Handler: h.Auth.Me},
		})

		pokedex := apiGroup.Group("/pokedex")
		addRoutes(pokedex, []route{
			{Method: http.MethodGet, Path: "/suggest", Handler: h.Pokedex.Suggest},
			{Method: http.MethodGet, Path: "/:name", Handler: h.Pokedex.Lookup},
		})

		groups := apiGroup.Group("/groups")
		groups.Use(authMiddleware.RequireAuth())
		{
			addRoutes(groups, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Group.Create},
				{Method: http.MethodPost, Path: "/:groupId/join", Handler: h.Group.Join},
				{Method: http.MethodGet, Path: "/:groupId/members", Handler: h.Group.Members},
				{Method: http.MethodGet, Path: "/:groupId/live", Handler: h.Live.Serve},
			})

			addRoutes(groups.Group("/:groupId/livebox"), []route{
				{Method: http.MethodGet, Path: "", Handler: h.Livebox.List},
				{Method: http.MethodPost, Path: "", Handler: h.Livebox.Add},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.Livebox.Remove},
				{Method: http.MethodDelete, Path: "/boxes/:box", Handler: h.Livebox.ClearBox},
			})

			addRoutes(groups.Group("/:groupId/deadbox"), []route{
				{Method: http.MethodGet, Path: "", Handler: h.Deadbox.List},
				{Method: http.MethodPost, Path: "", Handler: h.Deadbox.Add},
				{Method: http.MethodDelete, Path: "", Handler: h.Deadbox.Clear},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.Deadbox.Remove},
			})

			addRoutes(groups.Group("/:groupId/wheel"), []route{
				{Method: http.MethodGet, Path: "", Handler: h.Wheel.Status},
				{Method: http.MethodPost, Path: "/spin", Handler: h.Wheel.Spin},
				{Method: http.MethodGet, Path: "/history", Handler: h.Wheel.History},
			})

			addRoutes(groups.Group("/:groupId/challenges"), []route{
				{Method: http.MethodGet, Path: "", Handler: h.Challenges.List},
				{Method: http.MethodPost, Path: "", Handler: h.Challenges.Create},
				{Method: http.MethodPut, Path: "/:id", Handler: h.Challenges.Update},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.Challenges.Delete},
			})

			addRoutes(groups.Group("/:groupId/chat"), []route{
				{Method: http.MethodGet, Path: "", Handler: h.Chat.History},
				{Method: http.MethodPost, Path: "", Handler: h.Chat.Send},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.Chat.Delete},
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
