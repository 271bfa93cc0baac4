package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"strings"

	"github.com/gin-gonic/gin"

	"matcher-backend/internal/jobseeker"
	"matcher-backend/internal/matches"
	"matcher-backend/internal/services/health"
	"matcher-backend/internal/shared/config"
	"matcher-backend/internal/shared/server"
	"matcher-backend/internal/shared/storage/db"
	"matcher-backend/internal/shared/storage/object"
	localstore "matcher-backend/internal/shared/storage/object/local"
)

// App holds shared dependencies.
type App struct {
	Config config.Config
	Router *gin.Engine
	DB     *sql.DB
	Store  object.ObjectStore

	MatchRepo     matches.Repo
	JobseekerRepo jobseeker.Repo

	MatchService     *matches.Service
	JobseekerService *jobseeker.Service
	HealthService    *health.Service

	MatchHandler     *matches.Handler
	JobseekerHandler *jobseeker.Handler
}

// Build prepares shared dependencies and wires the router.
func Build(cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}
	ctx := context.Background()

	sqlDB, err := buildDB(ctx, cfg)
	if err != nil {
		return nil, err
	}

	app := &App{
		Config: cfg,
		DB:     sqlDB,
		Store:  localstore.New(cfg.LocalStoreDir),
	}

	if app.DB != nil {
		app.MatchRepo = &matches.PGRepo{DB: app.DB}
		app.JobseekerRepo = &jobseeker.PGRepo{DB: app.DB}
	} else {
		app.MatchRepo = matches.NewMemoryRepo()
		app.JobseekerRepo = jobseeker.NewMemoryRepo()
	}

	app.MatchService = &matches.Service{Repo: app.MatchRepo, Store: app.Store}
	app.JobseekerService = &jobseeker.Service{Repo: app.JobseekerRepo, Store: app.Store}
	app.HealthService = health.NewService(app.DB)

	app.MatchHandler = matches.NewHandler(app.MatchService)
	app.JobseekerHandler = jobseeker.NewHandler(app.JobseekerService)

	app.Router = server.NewRouter(server.RouterDeps{
		Config:           app.Config,
		Health:           app.HealthService,
		MatchHandler:     app.MatchHandler,
		JobseekerHandler: app.JobseekerHandler,
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
			_ = sqlDB.Close()
			return nil, nil
		}
		return nil, err
	}

	return sqlDB, nil
}

func isDevLike(env string) bool {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "dev", "local":
		return true
	default:
		return false
	}
}
