package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"fithire-backend/internal/accounts"
	"fithire-backend/internal/applications"
	googleauth "fithire-backend/internal/auth"
	"fithire-backend/internal/centers"
	"fithire-backend/internal/dashboard"
	"fithire-backend/internal/jobpostings"
	"fithire-backend/internal/likes"
	"fithire-backend/internal/resumes"
	"fithire-backend/internal/shared/config"
	"fithire-backend/internal/shared/server"
	"fithire-backend/internal/shared/server/middleware"
	"fithire-backend/internal/shared/storage/db"
	"fithire-backend/internal/shared/storage/object"
	localstore "fithire-backend/internal/shared/storage/object/local"
	s3store "fithire-backend/internal/shared/storage/object/s3"
	"fithire-backend/internal/uploads"
)

// App holds shared dependencies.
type App struct {
	Config config.Config
	Router *gin.Engine
	DB     *sql.DB
	Store  object.ObjectStore

	ProfilesRepo     accounts.ProfilesRepo
	CentersRepo      centers.CentersRepo
	JobPostingsRepo  jobpostings.JobPostingsRepo
	ResumesRepo      resumes.ResumesRepo
	ApplicationsRepo applications.ApplicationsRepo
	LikesRepo        likes.LikesRepo

	AccountsService     *accounts.Service
	CentersService      *centers.Service
	JobPostingsService  *jobpostings.Service
	ResumesService      *resumes.Service
	ApplicationsService *applications.Service
	LikesService        *likes.Service
	DashboardService    *dashboard.Service

	AccountsHandler     *accounts.Handler
	CentersHandler      *centers.Handler
	JobPostingsHandler  *jobpostings.Handler
	ResumesHandler      *resumes.Handler
	ApplicationsHandler *applications.Handler
	LikesHandler        *likes.Handler
	DashboardHandler    *dashboard.Handler
	UploadsHandler      *uploads.Handler
	GoogleAuth          *googleauth.GoogleService
}

// Build prepares shared dependencies and wires the router.
func Build(cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}
	if strings.TrimSpace(cfg.ObjectStoreType) == "" {
		cfg.ObjectStoreType = "local"
	}
	ctx := context.Background()

	sqlDB, err := buildDB(ctx, cfg)
	if err != nil {
		return nil, err
	}

	store, err := buildStore(ctx, cfg)
	if err != nil {
		return nil, err
	}

	app := &App{
		Config: cfg,
		DB:     sqlDB,
		Store:  store,
	}

	buildServices(app)

	app.Router = server.NewRouter(server.RouterDeps{
		Config:              app.Config,
		AccountsHandler:     app.AccountsHandler,
		CentersHandler:      app.CentersHandler,
		JobPostingsHandler:  app.JobPostingsHandler,
		ResumesHandler:      app.ResumesHandler,
		ApplicationsHandler: app.ApplicationsHandler,
		LikesHandler:        app.LikesHandler,
		DashboardHandler:    app.DashboardHandler,
		UploadsHandler:      app.UploadsHandler,
		GoogleAuth:          app.GoogleAuth,
		AuthLimiter:         buildAuthLimiter(cfg),
	})

	return app, nil
}

func buildDB(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: DATABASE_URL empty; using in-memory repositories")
			return nil, nil
		}
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	opts := db.OptionsFromEnv(db.DefaultServerOptions())
	sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, opts)
	if err != nil {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: database connect failed; using in-memory repositories: %v", err)
			return nil, nil
		}
		return nil, err
	}

	if err := db.RunMigrations(ctx, sqlDB); err != nil {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: migrations failed; using in-memory repositories: %v", err)
			sqlDB.Close()
			return nil, nil
		}
		return nil, err
	}
	return sqlDB, nil
}

func buildStore(ctx context.Context, cfg config.Config) (object.ObjectStore, error) {
	switch cfg.ObjectStoreType {
	case "s3":
		return s3store.New(ctx, cfg.AWSRegion, cfg.S3Bucket, cfg.S3Prefix, cfg.SSEKMSKeyID)
	default:
		return localstore.New(cfg.LocalStoreDir), nil
	}
}

// buildAuthLimiter returns the Redis limiter for the login and signup
// endpoints, or nil when REDIS_ADDR is not configured.
func buildAuthLimiter(cfg config.Config) *middleware.RedisLimiter {
	addr := strings.TrimSpace(cfg.RedisAddr)
	if addr == "" {
		return nil
	}
	client := redis.NewClient(&redis.Options{Addr: addr})
	return middleware.NewRedisLimiter(client)
}

func buildServices(app *App) {
	if app.DB != nil {
		app.ProfilesRepo = &accounts.PGRepo{DB: app.DB}
		app.CentersRepo = &centers.PGRepo{DB: app.DB}
		app.JobPostingsRepo = &jobpostings.PGRepo{DB: app.DB}
		app.ResumesRepo = &resumes.PGRepo{DB: app.DB}
		app.ApplicationsRepo = &applications.PGRepo{DB: app.DB}
		app.LikesRepo = &likes.PGRepo{DB: app.DB}
	} else {
		app.ProfilesRepo = accounts.NewMemoryRepo()
		app.CentersRepo = centers.NewMemoryRepo()
		app.JobPostingsRepo = jobpostings.NewMemoryRepo()
		app.ResumesRepo = resumes.NewMemoryRepo()
		app.ApplicationsRepo = applications.NewMemoryRepo(app.JobPostingsRepo, app.CentersRepo, app.ResumesRepo, app.ProfilesRepo)
		app.LikesRepo = likes.NewMemoryRepo(app.JobPostingsRepo, app.CentersRepo)
	}

	app.AccountsService = accounts.NewService(app.ProfilesRepo)
	app.CentersService = centers.NewService(app.CentersRepo)
	app.JobPostingsService = jobpostings.NewService(app.JobPostingsRepo, app.CentersRepo)
	app.ResumesService = resumes.NewService(app.ResumesRepo)
	app.ApplicationsService = applications.NewService(app.ApplicationsRepo, app.JobPostingsRepo, app.CentersRepo, app.ResumesRepo)
	app.LikesService = likes.NewService(app.LikesRepo, app.JobPostingsRepo)
	app.DashboardService = dashboard.NewService(app.ResumesRepo, app.ApplicationsRepo, app.LikesRepo, app.JobPostingsRepo, app.CentersRepo)

	app.AccountsHandler = accounts.NewHandler(app.AccountsService)
	app.CentersHandler = centers.NewHandler(app.CentersService)
	app.JobPostingsHandler = jobpostings.NewHandler(app.JobPostingsService)
	app.ResumesHandler = resumes.NewHandler(app.ResumesService)
	app.ApplicationsHandler = applications.NewHandler(app.ApplicationsService)
	app.LikesHandler = likes.NewHandler(app.LikesService)
	app.DashboardHandler = dashboard.NewHandler(app.DashboardService)
	app.UploadsHandler = uploads.NewHandler(app.Store)
	app.GoogleAuth = googleauth.NewGoogleService(
		app.Config.GoogleClientID,
		app.Config.GoogleClientSecret,
		app.Config.GoogleRedirectURL,
		app.Config.UIRedirectURL,
		app.ProfilesRepo,
	)
}

func isDevLike(env string) bool {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "dev", "local":
		return true
	default:
		return false
	}
}
