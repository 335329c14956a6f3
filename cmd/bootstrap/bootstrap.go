package bootstrap

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/tanzhongyan/Singheatlh/config"
	"github.com/tanzhongyan/Singheatlh/internal/infrastructure/cache"
	"github.com/tanzhongyan/Singheatlh/internal/infrastructure/database"
	"github.com/tanzhongyan/Singheatlh/internal/infrastructure/identity"
	"github.com/tanzhongyan/Singheatlh/internal/repository"
	"github.com/tanzhongyan/Singheatlh/internal/service"
	"github.com/tanzhongyan/Singheatlh/internal/usecase"
	"github.com/tanzhongyan/Singheatlh/pkg/jwt"
	"github.com/tanzhongyan/Singheatlh/pkg/validator"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// App holds the configuration and the connections opened by a command
type App struct {
	Config      *config.Config
	Log         *logrus.Logger
	Validator   *validator.CustomValidator
	DB          *gorm.DB
	RedisClient *redis.Client
}

// New loads configuration and sets up logging. Connections are opened on demand
// because each command needs a different subset of them.
func New() (*App, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	app := &App{
		Config:    cfg,
		Log:       logrus.StandardLogger(),
		Validator: validator.NewValidator(),
	}

	if err := app.Validator.Check(&cfg.App); err != nil {
		return nil, fmt.Errorf("invalid app config: %w", err)
	}
	setupLogger(app.Log, cfg.App)
	app.Log.Debugf("Configuration loaded (env: %s)", cfg.App.Env)

	return app, nil
}

// setupLogger configures the logrus logger
func setupLogger(log *logrus.Logger, cfg config.AppConfig) {
	if strings.EqualFold(cfg.LogFormat, "text") {
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	} else {
		log.SetFormatter(&logrus.JSONFormatter{})
	}
	log.SetOutput(os.Stdout)

	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	log.SetLevel(level)
}

// NewGenerateUsecase needs no external connection.
func (app *App) NewGenerateUsecase() (usecase.GenerateUsecase, error) {
	if err := app.Validator.Check(&app.Config.Generator); err != nil {
		return nil, fmt.Errorf("invalid generator config: %w", err)
	}
	return usecase.NewGenerateUsecase(app.Log, app.Validator), nil
}

func (app *App) NewIdentityUsecase() (usecase.IdentityUsecase, error) {
	if err := app.Validator.Check(&app.Config.Identity); err != nil {
		return nil, fmt.Errorf("invalid identity config: %w", err)
	}

	client, err := identity.New(app.Config.Identity)
	if err != nil {
		return nil, fmt.Errorf("failed to create identity client: %w", err)
	}

	return usecase.NewIdentityUsecase(app.Log, client, app.Config.Identity.MockPassword), nil
}

// NewSeedUsecase opens the database pool and, when configured, Redis. An unreachable
// Redis only disables queue counter warm-up.
func (app *App) NewSeedUsecase(ctx context.Context) (usecase.SeedUsecase, error) {
	if err := app.Validator.Check(&app.Config.DB); err != nil {
		return nil, fmt.Errorf("invalid database config: %w", err)
	}
	if err := app.Validator.Check(&app.Config.Seeder); err != nil {
		return nil, fmt.Errorf("invalid seeder config: %w", err)
	}

	identityUsecase, err := app.NewIdentityUsecase()
	if err != nil {
		return nil, err
	}

	db, err := database.NewPostgresConnection(app.Config.DB)
	if err != nil {
		return nil, err
	}
	app.DB = db

	var queueCounterService service.QueueCounterService
	if app.Config.Redis.Enabled() {
		redisClient, err := cache.NewRedisClient(ctx, app.Config.Redis)
		if err != nil {
			app.Log.Warnf("Redis unavailable, queue counters will not be warmed: %v", err)
		} else {
			app.RedisClient = redisClient
			queueCounterService = service.NewQueueCounterService(redisClient, app.Log)
		}
	}

	return usecase.NewSeedUsecase(
		db,
		app.Log,
		app.Validator,
		app.Config.Seeder,
		repository.NewSchemaRepository(),
		repository.NewClinicRepository(),
		repository.NewDoctorRepository(),
		repository.NewUserProfileRepository(),
		repository.NewAppointmentRepository(),
		repository.NewScheduleRepository(),
		repository.NewMedicalSummaryRepository(),
		repository.NewQueueTicketRepository(),
		identityUsecase,
		queueCounterService,
	), nil
}

func (app *App) NewTokenUsecase() (usecase.TokenUsecase, error) {
	if err := app.Validator.Check(&app.Config.JWT); err != nil {
		return nil, fmt.Errorf("invalid jwt config: %w", err)
	}
	return usecase.NewTokenUsecase(app.Log, app.Validator, jwt.NewJWTService(app.Config.JWT)), nil
}

// Close closes all connections (database, redis)
func (app *App) Close() {
	if app.DB != nil {
		sqlDB, err := app.DB.DB()
		if err == nil {
			sqlDB.Close()
		}
	}

	if app.RedisClient != nil {
		app.RedisClient.Close()
	}
}
