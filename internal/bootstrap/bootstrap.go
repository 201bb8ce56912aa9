// Package bootstrap wires configuration, storage, services and routes into a
// runnable application.
package bootstrap

import (
	"context"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/warit/schoolregis/internal/app/controllers"
	appRoutes "github.com/warit/schoolregis/internal/app/routes"
	appServices "github.com/warit/schoolregis/internal/app/services"
	"github.com/warit/schoolregis/internal/config"
	appMiddleware "github.com/warit/schoolregis/internal/middleware"
	pkgAuth "github.com/warit/schoolregis/internal/pkg/auth"
	"github.com/warit/schoolregis/internal/pkg/logger"
	"github.com/warit/schoolregis/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	Collections            *appServices.Collections
	AuthService            *appServices.AuthService
	StudentService         *appServices.StudentService
	SubjectService         *appServices.SubjectService
	CurriculumService      *appServices.CurriculumService
	RegistrationService    *appServices.RegistrationService
	AuthController         *appControllers.AuthController
	StudentController      *appControllers.StudentController
	SubjectController      *appControllers.SubjectController
	CurriculumController   *appControllers.CurriculumController
	RegistrationController *appControllers.RegistrationController
	AuthMiddleware         *appMiddleware.AuthMiddleware
	JWTService             *pkgAuth.JWTService
	Logger                 zerolog.Logger
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

// SetupStorage opens the record store collections and seeds default data.
func SetupStorage(cfg *config.Config, lgr zerolog.Logger) (*appServices.Collections, error) {
	lgr.Info().Str("dataDir", cfg.Storage.DataDir).Msg("Opening record store...")

	cols, err := appServices.OpenCollections(cfg.Storage.DataDir)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to open record store")
		return nil, err
	}

	if err := seed.CreateDefaultData(context.Background(), cfg, cols, lgr); err != nil {
		lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
	}

	return cols, nil
}

// BuildDependencies initializes application services and controllers.
func BuildDependencies(cfg *config.Config, cols *appServices.Collections, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Collections: cols, Logger: lgr}

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:      cfg.JWT.Secret,
		AccessTokenExp: cfg.AccessTokenExp(),
		TokenIssuer:    cfg.JWT.Issuer,
	})

	deps.AuthService = appServices.NewAuthService(cols.Users)
	deps.StudentService = appServices.NewStudentService(cols.Students)
	deps.SubjectService = appServices.NewSubjectService(cols.Subjects)
	deps.CurriculumService = appServices.NewCurriculumService(cols.Curriculum)
	deps.RegistrationService = appServices.NewRegistrationService(cols.Registrations, deps.StudentService, deps.SubjectService)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService)

	deps.AuthController = appControllers.NewAuthController(deps.AuthService, deps.JWTService, lgr)
	deps.StudentController = appControllers.NewStudentController(deps.StudentService, deps.RegistrationService, deps.AuthService, lgr)
	deps.SubjectController = appControllers.NewSubjectController(deps.SubjectService, deps.RegistrationService, lgr)
	deps.CurriculumController = appControllers.NewCurriculumController(deps.CurriculumService, lgr)
	deps.RegistrationController = appControllers.NewRegistrationController(deps.RegistrationService, lgr)

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

	appRoutes.SetupSwagger(router)

	appRoutes.SetupRouter(router,
		deps.AuthController,
		deps.StudentController,
		deps.SubjectController,
		deps.CurriculumController,
		deps.RegistrationController,
		deps.AuthMiddleware,
	)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong", "status": "success"})
	})

	return router
}
