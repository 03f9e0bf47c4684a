package bootstrap

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/campushire/placement-portal/internal/app/controllers"
	appMigrations "github.com/campushire/placement-portal/internal/app/migrations"
	appRepos "github.com/campushire/placement-portal/internal/app/repositories"
	appRoutes "github.com/campushire/placement-portal/internal/app/routes"
	appServices "github.com/campushire/placement-portal/internal/app/services"
	"github.com/campushire/placement-portal/internal/config"
	"github.com/campushire/placement-portal/internal/db"
	appMiddleware "github.com/campushire/placement-portal/internal/middleware"
	pkgAuth "github.com/campushire/placement-portal/internal/pkg/auth"
	"github.com/campushire/placement-portal/internal/pkg/helpers"
	"github.com/campushire/placement-portal/internal/pkg/logger"
	"github.com/campushire/placement-portal/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	Repos                 *appRepos.Repositories
	JWTService            *pkgAuth.JWTService
	AuthService           *appServices.AuthService
	CollegeService        *appServices.CollegeService
	JobService            *appServices.JobService
	ApplicationService    *appServices.ApplicationService
	UserService           *appServices.UserService
	AuthController        *appControllers.AuthController
	CollegeController     *appControllers.CollegeController
	JobController         *appControllers.JobController
	ApplicationController *appControllers.ApplicationController
	UserController        *appControllers.UserController
	AuthMiddleware        *appMiddleware.AuthMiddleware
	Logger                zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr := log.Logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase establishes the database connection, runs migrations and
// seeds default data.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*db.PostgresDB, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	lgr.Info().Msg("Running database migrations...")
	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		database.Close()
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	migrator := appMigrations.NewMigrator(database.Pool)
	if err := migrator.MigrateFromDirectory(ctx, migrationsDir); err != nil {
		database.Close()
		lgr.Error().Err(err).Msg("Database migration error")
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}
	lgr.Info().Msg("Database migrations successfully applied.")

	if cfg.Seed.Enabled {
		if err := seed.CreateDefaultData(ctx, database, cfg.Seed.AdminPassword, lgr); err != nil {
			lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
		}
	}

	return database, nil
}

// BuildDependencies initializes application repositories, services and controllers.
func BuildDependencies(cfg *config.Config, database *db.PostgresDB, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(database.Pool)

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:       cfg.JWT.Secret,
		SessionTokenExp: helpers.ParseDuration(cfg.JWT.SessionTokenExpiration, 24*time.Hour),
		ResetTokenExp:   helpers.ParseDuration(cfg.JWT.ResetTokenExpiration, 1*time.Hour),
		TokenIssuer:     cfg.JWT.Issuer,
	})

	deps.AuthService = appServices.NewAuthService(
		deps.Repos.UserRepository,
		deps.Repos.CredentialRepository,
		deps.Repos.CollegeRepository,
		deps.JWTService,
		lgr,
	)
	deps.CollegeService = appServices.NewCollegeService(
		deps.Repos.CollegeRepository,
		deps.Repos.UserRepository,
		deps.Repos.JobRepository,
	)
	deps.JobService = appServices.NewJobService(deps.Repos.JobRepository, lgr)
	deps.ApplicationService = appServices.NewApplicationService(
		deps.Repos.ApplicationRepository,
		deps.Repos.UserRepository,
		deps.JobService,
		lgr,
	)
	deps.UserService = appServices.NewUserService(deps.Repos.UserRepository, lgr)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService)

	deps.AuthController = appControllers.NewAuthController(deps.AuthService)
	deps.CollegeController = appControllers.NewCollegeController(deps.CollegeService)
	deps.JobController = appControllers.NewJobController(deps.JobService)
	deps.ApplicationController = appControllers.NewApplicationController(deps.ApplicationService)
	deps.UserController = appControllers.NewUserController(deps.UserService)

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(appMiddleware.RequestLogger(lgr))

	appRoutes.SetupRouter(router,
		deps.AuthController,
		deps.CollegeController,
		deps.JobController,
		deps.ApplicationController,
		deps.UserController,
		deps.AuthMiddleware,
	)

	return router
}
