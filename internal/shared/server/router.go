package server

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"fithire-backend/internal/accounts"
	"fithire-backend/internal/applications"
	googleauth "fithire-backend/internal/auth"
	"fithire-backend/internal/centers"
	"fithire-backend/internal/dashboard"
	"fithire-backend/internal/jobpostings"
	"fithire-backend/internal/likes"
	"fithire-backend/internal/resumes"
	"fithire-backend/internal/shared/config"
	"fithire-backend/internal/shared/metrics"
	"fithire-backend/internal/shared/server/middleware"
	"fithire-backend/internal/shared/server/respond"
	"fithire-backend/internal/uploads"
)

// RouterDeps carries the handlers wired by bootstrap.
type RouterDeps struct {
	Config              config.Config
	AccountsHandler     *accounts.Handler
	CentersHandler      *centers.Handler
	JobPostingsHandler  *jobpostings.Handler
	ResumesHandler      *resumes.Handler
	ApplicationsHandler *applications.Handler
	LikesHandler        *likes.Handler
	DashboardHandler    *dashboard.Handler
	UploadsHandler      *uploads.Handler
	GoogleAuth          *googleauth.GoogleService
	AuthLimiter         *middleware.RedisLimiter
}

// NewRouter constructs the gin engine with middleware and routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(deps.Config.CORSAllowOrigin),
		middleware.RateLimit(middleware.RateLimitConfig{
			Rules: map[string]middleware.RateLimitRule{
				"DEFAULT": {Rate: 20, Burst: 40},
			},
		}),
	)

	api := r.Group("/api/v1")
	api.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, gin.H{"ok": true})
	})
	api.GET("/metrics", metrics.Handler())

	// Unauthenticated surface.
	if deps.AuthLimiter != nil {
		authGroup := api.Group("", middleware.AuthRateLimit(deps.AuthLimiter, 10, time.Minute))
		deps.AccountsHandler.RegisterPublicRoutes(authGroup)
	} else {
		deps.AccountsHandler.RegisterPublicRoutes(api)
	}
	deps.GoogleAuth.RegisterRoutes(api)
	deps.JobPostingsHandler.RegisterPublicRoutes(api)

	// Everything below requires a session.
	authed := api.Group("", middleware.Auth())
	deps.AccountsHandler.RegisterRoutes(authed)
	deps.CentersHandler.RegisterRoutes(authed)
	deps.JobPostingsHandler.RegisterRoutes(authed)
	deps.ResumesHandler.RegisterRoutes(authed)
	deps.ApplicationsHandler.RegisterRoutes(authed)
	deps.LikesHandler.RegisterRoutes(authed)
	deps.DashboardHandler.RegisterRoutes(authed)
	deps.UploadsHandler.RegisterRoutes(authed)

	return r
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
