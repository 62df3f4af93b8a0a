package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/bmefuto/portal/internal/app/models"
	"github.com/bmefuto/portal/internal/pkg/apperrors"
)

// AdminRepository handles admin account database operations
type AdminRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewAdminRepository creates a new AdminRepository
func NewAdminRepository(db *pgxpool.Pool) *AdminRepository {
	return &AdminRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// GetByUsername retrieves an admin account by username
func (r *AdminRepository) GetByUsername(ctx context.Context, username string) (*models.AdminUser, error) {
	sql, args, err := r.sb.Select("id", "username", "password_hash", "full_name", "created_at").
		From("admin_users").
		Where(squirrel.Eq{"username": username}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get admin query: %w", err)
	}

	var admin models.AdminUser
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&admin.ID, &admin.Username, &admin.PasswordHash, &admin.FullName, &admin.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrAdminNotFound
		}
		return nil, fmt.Errorf("error querying admin %q: %w", username, err)
	}

	return &admin, nil
}

// Create inserts a new admin account and returns its ID
func (r *AdminRepository) Create(ctx context.Context, admin *models.AdminUser) (int64, error) {
	sql, args, err := r.sb.Insert("admin_users").
		Columns("username", "password_hash", "full_name").
		Values(admin.Username, admin.PasswordHash, admin.FullName).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create admin query: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		return 0, fmt.Errorf("error inserting admin: %w", err)
	}
	return id, nil
}

// Count returns the total number of admin accounts
func (r *AdminRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM admin_users`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count admins: %w", err)
	}
	return count, nil
}
