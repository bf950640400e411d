// Package bootstrap wires configuration, database, repositories, services,
// controllers and routes into a runnable application.
package bootstrap

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/iug/student-portal/internal/app/controllers"
	"github.com/iug/student-portal/internal/app/migrations"
	"github.com/iug/student-portal/internal/app/repositories"
	"github.com/iug/student-portal/internal/app/routes"
	"github.com/iug/student-portal/internal/app/services"
	"github.com/iug/student-portal/internal/config"
	"github.com/iug/student-portal/internal/db"
	"github.com/iug/student-portal/internal/middleware"
	"github.com/iug/student-portal/internal/pkg/logger"
	"github.com/iug/student-portal/internal/seed"
	"github.com/iug/student-portal/web"
)

// Dependencies holds the application's service and controller graph.
type Dependencies struct {
	AuthService    services.AuthService
	CatalogService services.CatalogService

	AuthController    *controllers.AuthController
	CatalogController *controllers.CatalogController
}

// LoadConfigAndSetupLogger loads the configuration and configures the
// global logger from it.
func LoadConfigAndSetupLogger(configPath string) (*config.Config, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	logger.Configure(logger.Config{
		Level:  logger.LogLevel(cfg.Logging.Level),
		Pretty: cfg.Logging.Format == "text",
	})

	return cfg, nil
}

// SetupDatabase opens the SQLite database, applies pending migrations and
// seeds the faculty/department catalog.
func SetupDatabase(ctx context.Context, cfg *config.Config, migrationsDir string) (*sql.DB, error) {
	database, err := db.NewSQLiteDB(cfg)
	if err != nil {
		return nil, err
	}

	migrator := migrations.NewMigrator(database, migrationsDir)
	if err := migrator.Run(); err != nil {
		database.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	repos := repositories.NewRepositories(database)
	if err := seed.Run(ctx, repos); err != nil {
		database.Close()
		return nil, fmt.Errorf("failed to seed catalog: %w", err)
	}

	logger.Info().Str("path", cfg.Database.Path).Msg("Database ready")
	return database, nil
}

// BuildDependencies constructs repositories, services and controllers over
// the database handle.
func BuildDependencies(database *sql.DB) *Dependencies {
	repos := repositories.NewRepositories(database)

	authService := services.NewAuthService(repos.StudentRepository, log.Logger)
	catalogService := services.NewCatalogService(repos.FacultyRepository, repos.DepartmentRepository)

	return &Dependencies{
		AuthService:    authService,
		CatalogService: catalogService,

		AuthController:    controllers.NewAuthController(authService, log.Logger),
		CatalogController: controllers.NewCatalogController(catalogService),
	}
}

// SetupRouter creates the gin engine with middleware, API routes and the
// embedded frontend.
func SetupRouter(cfg *config.Config, deps *Dependencies) *gin.Engine {
	if cfg.Server.Mode == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger(log.Logger))

	routes.SetupRouter(router, deps.AuthController, deps.CatalogController)
	web.Register(router)

	return router
}
