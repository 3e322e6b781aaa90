package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"strings"

	"github.com/gin-gonic/gin"

	"talentflow-backend/internal/assessments"
	"talentflow-backend/internal/candidates"
	"talentflow-backend/internal/jobs"
	"talentflow-backend/internal/responses"
	"talentflow-backend/internal/shared/config"
	"talentflow-backend/internal/shared/server"
	"talentflow-backend/internal/shared/storage/db"
	"talentflow-backend/internal/shared/storage/object"
	localstore "talentflow-backend/internal/shared/storage/object/local"
	"talentflow-backend/internal/timeline"
)

// App holds shared dependencies wired from config.
type App struct {
	Config config.Config
	Router *gin.Engine
	DB     *sql.DB
	Store  object.ObjectStore

	JobsRepo       jobs.Repo
	CandidatesRepo candidates.Repo
	TimelineRepo   timeline.Repo
	AssessmentRepo assessments.Repo
	ResponsesRepo  responses.Repo

	JobsService       *jobs.Service
	CandidatesService *candidates.Service
	TimelineService   *timeline.Service
	AssessmentService *assessments.Service
	ResponsesService  *responses.Service

	JobHandler        *jobs.Handler
	CandidateHandler  *candidates.Handler
	TimelineHandler   *timeline.Handler
	AssessmentHandler *assessments.Handler
	ResponseHandler   *responses.Handler
}

// Build prepares shared dependencies and the router. A missing or
// unreachable database falls back to in-memory repositories in dev-like
// environments and fails hard otherwise.
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
	buildServices(app)

	app.Router = server.NewRouter(server.RouterDeps{
		Config:            app.Config,
		JobHandler:        app.JobHandler,
		CandidateHandler:  app.CandidateHandler,
		TimelineHandler:   app.TimelineHandler,
		AssessmentHandler: app.AssessmentHandler,
		ResponseHandler:   app.ResponseHandler,
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

func buildServices(app *App) {
	if app.DB != nil {
		app.JobsRepo = &jobs.PGRepo{DB: app.DB}
		app.CandidatesRepo = &candidates.PGRepo{DB: app.DB}
		app.TimelineRepo = &timeline.PGRepo{DB: app.DB}
		app.AssessmentRepo = &assessments.PGRepo{DB: app.DB}
		app.ResponsesRepo = &responses.PGRepo{DB: app.DB}
	} else {
		app.JobsRepo = jobs.NewMemoryRepo()
		app.CandidatesRepo = candidates.NewMemoryRepo()
		app.TimelineRepo = timeline.NewMemoryRepo()
		app.AssessmentRepo = assessments.NewMemoryRepo()
		app.ResponsesRepo = responses.NewMemoryRepo()
	}

	app.TimelineService = timeline.NewService(app.TimelineRepo)
	app.JobsService = &jobs.Service{Repo: app.JobsRepo}
	app.CandidatesService = &candidates.Service{
		Repo:     app.CandidatesRepo,
		Store:    app.Store,
		Timeline: app.TimelineService,
	}
	app.AssessmentService = &assessments.Service{Repo: app.AssessmentRepo}
	app.ResponsesService = &responses.Service{
		Repo:        app.ResponsesRepo,
		Assessments: app.AssessmentService,
		Timeline:    app.TimelineService,
	}

	app.JobHandler = jobs.NewHandler(app.JobsService)
	app.CandidateHandler = candidates.NewHandler(app.CandidatesService)
	app.TimelineHandler = timeline.NewHandler(app.TimelineService)
	app.AssessmentHandler = assessments.NewHandler(app.AssessmentService)
	app.ResponseHandler = responses.NewHandler(app.ResponsesService)
}

func isDevLike(env string) bool {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "dev", "local":
		return true
	default:
		return false
	}
}
