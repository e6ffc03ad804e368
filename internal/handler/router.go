package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"

	"stayhub/internal/domain/user"
	"stayhub/internal/handler/api"
	"stayhub/internal/handler/middleware"
	"stayhub/internal/handler/validation"
	"stayhub/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type RouterParams struct {
	fx.In

	Engine             *gin.Engine
	Config             config.Config
	AuthHandler        *api.AuthHandler
	ListingHandler     *api.ListingHandler
	ReservationHandler *api.ReservationHandler
	FavouriteHandler   *api.FavouriteHandler
	AuthMiddleware     *middleware.AuthMiddleware
	Redis              *redis.Client `optional:"true"`
}

func NewRouter(p RouterParams) error {
	if err := validation.Register(); err != nil {
		return err
	}
	setupMiddleware(p.Engine, p.Config)
	setupRoutes(p)
	return nil
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(p RouterParams) {
	engine := p.Engine
	authMw := p.AuthMiddleware
	limited := middleware.RateLimit(p.Config.RateLimit, p.Redis)

	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/signup", Handler: p.AuthHandler.Signup, Mw: []gin.HandlerFunc{limited}},
				{Method: http.MethodPost, Path: "/login", Handler: p.AuthHandler.Login, Mw: []gin.HandlerFunc{limited}},
				{Method: http.MethodPost, Path: "/refresh", Handler: p.AuthHandler.Refresh},
				{Method: http.MethodPost, Path: "/logout", Handler: p.AuthHandler.Logout},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMw.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodGet, Path: "/me", Handler: p.AuthHandler.Me},
			})
		}

		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/listings", Handler: p.ListingHandler.List},
			{Method: http.MethodGet, Path: "/listings/:id", Handler: p.ListingHandler.Get},
		})

		booking := apiGroup.Group("")
		booking.Use(authMw.RequireAuth())
		{
			addRoutes(booking, []route{
				{Method: http.MethodPost, Path: "/listings/:id/reservations", Handler: p.ReservationHandler.CreateReservation, Mw: []gin.HandlerFunc{limited}},
				{Method: http.MethodPost, Path: "/book/:listingId", Handler: p.ReservationHandler.CreateBooking, Mw: []gin.HandlerFunc{limited}},
				{Method: http.MethodGet, Path: "/bookings", Handler: p.ReservationHandler.ListReservations},
				{Method: http.MethodPost, Path: "/bookings/:id/pay", Handler: p.ReservationHandler.MarkPaid},
			})
		}

		favourites := apiGroup.Group("/favourites")
		favourites.Use(authMw.RequireAuth())
		{
			addRoutes(favourites, []route{
				{Method: http.MethodGet, Path: "", Handler: p.FavouriteHandler.List},
				{Method: http.MethodPost, Path: "/:listingId", Handler: p.FavouriteHandler.Add},
				{Method: http.MethodDelete, Path: "/:listingId", Handler: p.FavouriteHandler.Remove},
			})
		}

		host := apiGroup.Group("/host")
		host.Use(authMw.RequireAuth(), authMw.RequireRole(user.RoleHost))
		{
			addRoutes(host, []route{
				{Method: http.MethodGet, Path: "/listings", Handler: p.ListingHandler.HostList},
				{Method: http.MethodPost, Path: "/listings", Handler: p.ListingHandler.Create},
				{Method: http.MethodPut, Path: "/listings/:id", Handler: p.ListingHandler.Update},
				{Method: http.MethodDelete, Path: "/listings/:id", Handler: p.ListingHandler.Delete},
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
