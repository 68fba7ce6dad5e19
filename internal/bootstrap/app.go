package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"strings"

	"github.com/gin-gonic/gin"

	"jobtrack-backend/internal/applications"
	"jobtrack-backend/internal/autofill"
	"jobtrack-backend/internal/communications"
	"jobtrack-backend/internal/reminders"
	"jobtrack-backend/internal/resumes"
	"jobtrack-backend/internal/shared/config"
	"jobtrack-backend/internal/shared/server"
	"jobtrack-backend/internal/shared/storage/db"
	"jobtrack-backend/internal/shared/storage/object"
	localstore "jobtrack-backend/internal/shared/storage/object/local"
	s3store "jobtrack-backend/internal/shared/storage/object/s3"
)

// App holds shared dependencies for the HTTP server.
type App struct {
	Config config.Config
	Router *gin.Engine
	DB     *sql.DB
	Store  object.ObjectStore

	ResumesRepo        resumes.Repo
	ApplicationsRepo   applications.Repo
	CommunicationsRepo communications.Repo
	RemindersRepo      reminders.Repo

	ResumesService        *resumes.Service
	ApplicationsService   *applications.Service
	AutofillService       *autofill.Service
	CommunicationsService *communications.Service
	RemindersService      *reminders.Service

	ResumesHandler        *resumes.Handler
	ApplicationsHandler   *applications.Handler
	AutofillHandler       *autofill.Handler
	CommunicationsHandler *communications.Handler
	RemindersHandler      *reminders.Handler
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

	if cfg.SeedDemoData {
		if err := seedDemoData(ctx, app); err != nil {
			return nil, err
		}
	}

	app.Router = server.NewRouter(server.RouterDeps{
		Config:               app.Config,
		ResumeHandler:        app.ResumesHandler,
		ApplicationHandler:   app.ApplicationsHandler,
		AutofillHandler:      app.AutofillHandler,
		CommunicationHandler: app.CommunicationsHandler,
		ReminderHandler:      app.RemindersHandler,
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

	if err := db.RunMigrations(ctx, sqlDB, cfg.DatabaseURL); err != nil {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: migrations failed; using in-memory repositories: %v", err)
			_ = sqlDB.Close()
			return nil, nil
		}
		return nil, err
	}

	return sqlDB, nil
}

func buildStore(ctx context.Context, cfg config.Config) (object.ObjectStore, error) {
	switch cfg.ObjectStoreType {
	case "s3":
		if strings.TrimSpace(cfg.AWSRegion) == "" || strings.TrimSpace(cfg.S3Bucket) == "" {
			return nil, fmt.Errorf("OBJECT_STORE=s3 requires AWS_REGION and S3_BUCKET")
		}
		return s3store.New(ctx, cfg.AWSRegion, cfg.S3Bucket, cfg.S3Prefix, cfg.SSEKMSKeyID)
	default:
		return localstore.New(cfg.LocalStoreDir), nil
	}
}

func isDevLike(env string) bool {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "dev", "local":
		return true
	default:
		return false
	}
}

func buildServices(app *App) {
	if app.DB != nil {
		app.ResumesRepo = &resumes.PGRepo{DB: app.DB}
		app.ApplicationsRepo = &applications.PGRepo{DB: app.DB}
		app.CommunicationsRepo = &communications.PGRepo{DB: app.DB}
		app.RemindersRepo = &reminders.PGRepo{DB: app.DB}
	} else {
		app.ResumesRepo = resumes.NewMemoryRepo()
		app.ApplicationsRepo = applications.NewMemoryRepo()
		app.CommunicationsRepo = communications.NewMemoryRepo()
		app.RemindersRepo = reminders.NewMemoryRepo()
	}

	app.ResumesService = &resumes.Service{Repo: app.ResumesRepo, Store: app.Store}
	app.ApplicationsService = &applications.Service{Repo: app.ApplicationsRepo}
	app.AutofillService = &autofill.Service{Apps: app.ApplicationsService}
	app.CommunicationsService = &communications.Service{
		Repo: app.CommunicationsRepo,
		Apps: app.ApplicationsService,
	}
	app.RemindersService = &reminders.Service{
		Repo: app.RemindersRepo,
		Apps: app.ApplicationsService,
	}

	app.ResumesHandler = resumes.NewHandler(app.ResumesService)
	app.ApplicationsHandler = applications.NewHandler(app.ApplicationsService)
	app.AutofillHandler = autofill.NewHandler(app.AutofillService)
	app.CommunicationsHandler = communications.NewHandler(app.CommunicationsService)
	app.RemindersHandler = reminders.NewHandler(app.RemindersService)
}
