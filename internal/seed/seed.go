package seed

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/bmefuto/portal/internal/app/models"
	"github.com/bmefuto/portal/internal/app/repositories"
	"github.com/bmefuto/portal/internal/config"
	"github.com/bmefuto/portal/internal/pkg/auth"
	"github.com/bmefuto/portal/internal/pkg/logger"
)

// EnsureDefaultAdmin creates the configured default admin account when no
// admin accounts exist yet. Without at least one admin the back office is
// unreachable.
func EnsureDefaultAdmin(ctx context.Context, pool *pgxpool.Pool, cfg *config.Config) error {
	adminRepo := repositories.NewAdminRepository(pool)

	count, err := adminRepo.Count(ctx)
	if err != nil {
		return fmt.Errorf("failed to check admin accounts: %w", err)
	}
	if count > 0 {
		return nil
	}

	if cfg.Admin.DefaultUsername == "" || cfg.Admin.DefaultPassword == "" {
		logger.Warn().Msg("No admin accounts exist and no default admin is configured")
		return nil
	}

	hash, err := auth.HashPassword(cfg.Admin.DefaultPassword)
	if err != nil {
		return fmt.Errorf("failed to hash default admin password: %w", err)
	}

	id, err := adminRepo.Create(ctx, &models.AdminUser{
		Username:     cfg.Admin.DefaultUsername,
		PasswordHash: hash,
		FullName:     "Department Administrator",
	})
	if err != nil {
		return fmt.Errorf("failed to create default admin: %w", err)
	}

	logger.Info().Int64("adminID", id).Str("username", cfg.Admin.DefaultUsername).
		Msg("Default admin account created")
	return nil
}
