package rest

import (
	"net/http"
	"slices"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/teetime/teetime/internal/catalog"
	"github.com/teetime/teetime/internal/service"
)

type Handler struct {
	users    *service.UserService
	players  *service.PlayerService
	bookings *service.BookingService
	catalog  *catalog.Catalog
	logger   *zap.Logger
	now      func() time.Time
}

func NewHandler(
	users *service.UserService,
	players *service.PlayerService,
	bookings *service.BookingService,
	cat *catalog.Catalog,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		users:    users,
		players:  players,
		bookings: bookings,
		catalog:  cat,
		logger:   logger,
		now:      time.Now,
	}
}

// RouterOptions configures the middleware around the API routes.
type RouterOptions struct {
	CORSOrigins []string
	// TrustedProxies may set X-Forwarded-For; nil trusts none and the
	// client IP is the connection's remote address.
	TrustedProxies []string
	// AuthLimiter throttles signup and login; nil disables throttling.
	AuthLimiter *RateLimiter
}

func (h *Handler) Router(opts RouterOptions) *gin.Engine {
	r := gin.New()
	if err := r.SetTrustedProxies(opts.TrustedProxies); err != nil {
		h.logger.Warn("Invalid trusted proxies, trusting none", zap.Error(err))
		_ = r.SetTrustedProxies(nil)
	}
	r.Use(gin.Recovery(), RequestLogger(h.logger))
	r.Use(cors.New(corsConfig(opts.CORSOrigins)))

	api := r.Group("/api")
	api.GET("/health", h.Health)

	auth := api.Group("")
	if opts.AuthLimiter != nil {
		auth.Use(opts.AuthLimiter.Middleware())
	}
	{
		auth.POST("/signup", h.Signup)
		auth.POST("/login", h.Login)
	}
	api.GET("/profile/:id", h.Profile)

	api.GET("/courses", h.ListCourses)
	api.GET("/courses/:name/game-types", h.CourseGameTypes)
	api.GET("/courses/:name/add-ons", h.CourseAddOns)
	api.GET("/skill-levels", h.ListSkillLevels)

	api.POST("/quote", h.Quote)

	games := api.Group("/games")
	{
		games.GET("", h.ListGames)
		games.GET("/:id", h.GetGame)
		games.POST("", h.CreateGame)
	}

	players := api.Group("/players")
	{
		players.GET("", h.ListPlayers)
		players.GET("/:id", h.GetPlayer)
		players.POST("", h.CreatePlayer)
		players.GET("/:id/games", h.PlayerGames)
	}

	return r
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods: []string{"GET", "POST", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Authorization"},
		MaxAge:       12 * time.Hour,
	}
	if len(origins) == 0 || slices.Contains(origins, "*") {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	return cfg
}

// GET /api/health
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
