package bootstrap

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/rakib/uniportal/internal/app/controllers"
	appMigrations "github.com/rakib/uniportal/internal/app/migrations"
	appRepos "github.com/rakib/uniportal/internal/app/repositories"
	appRoutes "github.com/rakib/uniportal/internal/app/routes"
	appServices "github.com/rakib/uniportal/internal/app/services"
	"github.com/rakib/uniportal/internal/config"
	"github.com/rakib/uniportal/internal/db"
	appMiddleware "github.com/rakib/uniportal/internal/middleware"
	pkgAuth "github.com/rakib/uniportal/internal/pkg/auth"
	"github.com/rakib/uniportal/internal/pkg/logger"
	"github.com/rakib/uniportal/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	Repos                   *appRepos.Repositories
	Services                *appServices.Services
	JWTService              *pkgAuth.JWTService
	AuthMiddleware          *appMiddleware.AuthMiddleware
	AuthController          *appControllers.AuthController
	StudentController       *appControllers.StudentController
	FacultyController       *appControllers.FacultyController
	DepartmentController    *appControllers.DepartmentController
	CourseController        *appControllers.CourseController
	FacultyMemberController *appControllers.FacultyMemberController
	AdminController         *appControllers.AdminController
	Logger                  zerolog.Logger
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
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*pgxpool.Pool, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	dbPool := database.Pool

	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(dbPool)

	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}
	if err := migrator.MigrateFromDirectory(migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}
	lgr.Info().Msg("Database migrations successfully applied.")

	if cfg.Seed.Enabled {
		if err := seed.CreateDefaultData(context.Background(), dbPool, cfg, lgr); err != nil {
			// Seeding problems shouldn't block startup
			lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
		}
	}

	return dbPool, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(dbPool)

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:       cfg.JWT.Secret,
		AccessTokenExp:  parseDuration(cfg.JWT.AccessTokenExpiration, 1*time.Hour),
		RefreshTokenExp: parseDuration(cfg.JWT.RefreshTokenExpiration, 720*time.Hour),
		TokenIssuer:     cfg.JWT.Issuer,
	})

	deps.Services = appServices.NewServices(deps.Repos, deps.JWTService, cfg.Registration.ActiveTerm, lgr)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService)

	deps.AuthController = appControllers.NewAuthController(deps.Services.Auth, lgr)
	deps.StudentController = appControllers.NewStudentController(deps.Services.Student, deps.Services.Enrollment, lgr)
	deps.FacultyController = appControllers.NewFacultyController(deps.Services.Enrollment, lgr)
	deps.DepartmentController = appControllers.NewDepartmentController(deps.Services.Department, lgr)
	deps.CourseController = appControllers.NewCourseController(deps.Services.Course, lgr)
	deps.FacultyMemberController = appControllers.NewFacultyMemberController(deps.Services.Faculty, lgr)
	deps.AdminController = appControllers.NewAdminController(deps.Services.Admin, lgr)

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

	router := gin.Default()

	appRoutes.SetupRouter(router,
		deps.AuthController,
		deps.StudentController,
		deps.FacultyController,
		deps.DepartmentController,
		deps.CourseController,
		deps.FacultyMemberController,
		deps.AdminController,
		deps.AuthMiddleware,
	)

	return router
}

func parseDuration(value string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(value)
	if err != nil {
		return fallback
	}
	return d
}
