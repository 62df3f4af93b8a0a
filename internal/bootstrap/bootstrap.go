package bootstrap

import (
	"context"
	"fmt"
	"time"

	"github.com/bmefuto/portal/internal/app/controllers"
	"github.com/bmefuto/portal/internal/app/migrations"
	"github.com/bmefuto/portal/internal/app/repositories"
	"github.com/bmefuto/portal/internal/app/services"
	"github.com/bmefuto/portal/internal/config"
	"github.com/bmefuto/portal/internal/db"
	"github.com/bmefuto/portal/internal/middleware"
	"github.com/bmefuto/portal/internal/pkg/auth"
	"github.com/bmefuto/portal/internal/pkg/filestorage"
	"github.com/bmefuto/portal/internal/pkg/helpers"
	"github.com/bmefuto/portal/internal/pkg/logger"
	"github.com/bmefuto/portal/internal/seed"
)

// App holds the assembled application
type App struct {
	Config      *config.Config
	DB          *db.PostgresDB
	Controllers *controllers.Controllers
	AuthMW      *middleware.AuthMiddleware
}

// Initialize wires configuration, database, migrations, seed data and every
// application layer together.
func Initialize(configPath, migrationsDir string) (*App, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	logger.Configure(logger.Config{
		Level:  logger.LogLevel(cfg.Logging.Level),
		Pretty: cfg.Logging.Format == "pretty",
	})

	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	if migrationsDir != "" {
		migrator := migrations.NewMigrator(database.Pool, migrationsDir)
		if err := migrator.Run(ctx); err != nil {
			database.Close()
			return nil, fmt.Errorf("failed to run migrations: %w", err)
		}
	}

	if err := seed.EnsureDefaultAdmin(ctx, database.Pool, cfg); err != nil {
		database.Close()
		return nil, err
	}

	tokenExp := helpers.ParseDuration(cfg.JWT.TokenExpiration, 12*time.Hour)
	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:   cfg.JWT.Secret,
		TokenExp:    tokenExp,
		TokenIssuer: cfg.JWT.Issuer,
	})

	storage, err := filestorage.NewLocalStorage(cfg.Server.StoragePath, "/uploads")
	if err != nil {
		database.Close()
		return nil, fmt.Errorf("failed to initialize file storage: %w", err)
	}

	repos := repositories.NewRepositories(database.Pool)
	svcs := services.NewServices(repos, cfg, jwtService, storage)
	ctrls := controllers.NewControllers(svcs)

	return &App{
		Config:      cfg,
		DB:          database,
		Controllers: ctrls,
		AuthMW:      middleware.NewAuthMiddleware(jwtService),
	}, nil
}

// Close releases the application's resources
func (a *App) Close() {
	if a.DB != nil {
		a.DB.Close()
	}
}
