package router

import (
	"net/http"
	"time"

	"github.com/edfast/edfast-backend/internal/config"
	"github.com/edfast/edfast-backend/internal/handler"
	"github.com/edfast/edfast-backend/internal/middleware"
	"github.com/edfast/edfast-backend/internal/response"
	"github.com/edfast/edfast-backend/internal/service"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Handlers groups all handler instances for route setup.
type Handlers struct {
	Auth      *handler.AuthHandler
	Timetable *handler.TimetableHandler
}

// SetupRouter configures all Gin route groups with appropriate middlewares.
func SetupRouter(
	authService *service.AuthService,
	handlers *Handlers,
	cfg *config.Config,
) *gin.Engine {
	gin.SetMode(cfg.GinMode)
	router := gin.Default()

	// If AllowedOrigins is set in config, restrict CORS to that list;
	// otherwise allow all (*) so dev works without extra config.
	corsConfig := cors.DefaultConfig()
	if len(cfg.AllowedOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.AllowedOrigins
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"}
	corsConfig.ExposeHeaders = []string{"X-Request-ID"}
	corsConfig.MaxAge = 12 * time.Hour
	router.Use(cors.New(corsConfig))

	// Apply request ID middleware globally so every response includes metadata.
	router.Use(response.RequestIDMiddleware())

	// Health check.
	router.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, gin.H{"status": "ok"})
	})

	// Rate limiter for auth routes (30 requests per minute per IP).
	authLimiter := middleware.NewRateLimiter(30, time.Minute)
	// Upload is heavier: 10 uploads per minute per IP.
	uploadLimiter := middleware.NewRateLimiter(10, time.Minute)

	// ─── Auth Group ────────────────────────────────────────────────────
	auth := router.Group("/api/v1/auth")
	auth.Use(authLimiter.Middleware())
	{
		auth.POST("/register", handlers.Auth.Register)
		auth.POST("/login", handlers.Auth.Login)

		auth.POST("/logout", middleware.RequireUserJWT(authService), handlers.Auth.Logout)
		auth.GET("/me", middleware.RequireUserJWT(authService), handlers.Auth.Me)
	}

	// ─── Timetable Group (JWT + Session) ───────────────────────────────
	timetables := router.Group("/api/v1/timetables")
	timetables.Use(
		middleware.RequireUserJWT(authService),
		middleware.CheckSession(authService),
	)
	{
		timetables.POST("", uploadLimiter.Middleware(), handlers.Timetable.Upload)
		timetables.GET("", handlers.Timetable.List)
		timetables.GET("/:id", handlers.Timetable.Get)
		timetables.GET("/:id/courses", handlers.Timetable.Courses)
		timetables.GET("/:id/stats", handlers.Timetable.Stats)
		timetables.POST("/:id/conflicts", handlers.Timetable.Conflicts)
		timetables.POST("/:id/schedule", handlers.Timetable.BuildSchedule)
		timetables.DELETE("/:id", handlers.Timetable.Delete)
	}

	return router
}
