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
	"github.com/bmefuto/portal/internal/pkg/logger"
)

// StaffRepository handles staff and exco database operations
type StaffRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewStaffRepository creates a new StaffRepository
func NewStaffRepository(db *pgxpool.Pool) *StaffRepository {
	return &StaffRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

var staffColumns = []string{
	"id", "name", "position", "bio", "email", "phone", "image_url",
	"display_order", "created_at", "updated_at",
}

func scanStaff(row pgx.Row) (*models.Staff, error) {
	var s models.Staff
	err := row.Scan(
		&s.ID, &s.Name, &s.Position, &s.Bio, &s.Email, &s.Phone, &s.ImageURL,
		&s.DisplayOrder, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// GetAllStaff lists staff ordered by display order then name.
func (r *StaffRepository) GetAllStaff(ctx context.Context, limit int) ([]models.Staff, error) {
	builder := r.sb.Select(staffColumns...).
		From("staff").
		OrderBy("display_order", "name")
	if limit > 0 {
		builder = builder.Limit(uint64(limit))
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list staff query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query staff: %w", err)
	}
	defer rows.Close()

	var staff []models.Staff
	for rows.Next() {
		s, err := scanStaff(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan staff row: %w", err)
		}
		staff = append(staff, *s)
	}
	return staff, rows.Err()
}

// GetStaffByID retrieves one staff member
func (r *StaffRepository) GetStaffByID(ctx context.Context, id int64) (*models.Staff, error) {
	sql, args, err := r.sb.Select(staffColumns...).
		From("staff").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get staff query: %w", err)
	}

	s, err := scanStaff(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStaffNotFound
		}
		return nil, fmt.Errorf("error querying staff ID=%d: %w", id, err)
	}
	return s, nil
}

// CreateStaff inserts a new staff member
func (r *StaffRepository) CreateStaff(ctx context.Context, s *models.Staff) (int64, error) {
	sql, args, err := r.sb.Insert("staff").
		Columns("name", "position", "bio", "email", "phone", "image_url", "display_order").
		Values(s.Name, s.Position, s.Bio, s.Email, s.Phone, s.ImageURL, s.DisplayOrder).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create staff query: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		return 0, fmt.Errorf("error inserting staff: %w", err)
	}
	logger.Info().Int64("staffID", id).Msg("Staff member created")
	return id, nil
}

// UpdateStaff updates an existing staff member
func (r *StaffRepository) UpdateStaff(ctx context.Context, s *models.Staff) error {
	sql, args, err := r.sb.Update("staff").
		SetMap(map[string]interface{}{
			"name":          s.Name,
			"position":      s.Position,
			"bio":           s.Bio,
			"email":         s.Email,
			"phone":         s.Phone,
			"image_url":     s.ImageURL,
			"display_order": s.DisplayOrder,
			"updated_at":    squirrel.Expr("NOW()"),
		}).
		Where(squirrel.Eq{"id": s.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update staff query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error updating staff ID=%d: %w", s.ID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrStaffNotFound
	}
	return nil
}

// DeleteStaff removes a staff member
func (r *StaffRepository) DeleteStaff(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("staff").Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete staff query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error deleting staff ID=%d: %w", id, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrStaffNotFound
	}
	return nil
}

// CountStaff returns the total number of staff
func (r *StaffRepository) CountStaff(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM staff`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count staff: %w", err)
	}
	return count, nil
}

var excoColumns = []string{
	"id", "name", "position", "bio", "email", "phone", "image_url",
	"session", "display_order", "created_at", "updated_at",
}

func scanExco(row pgx.Row) (*models.Exco, error) {
	var e models.Exco
	err := row.Scan(
		&e.ID, &e.Name, &e.Position, &e.Bio, &e.Email, &e.Phone, &e.ImageURL,
		&e.Session, &e.DisplayOrder, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

// GetAllExcos lists excos ordered by display order then name.
func (r *StaffRepository) GetAllExcos(ctx context.Context, limit int) ([]models.Exco, error) {
	builder := r.sb.Select(excoColumns...).
		From("excos").
		OrderBy("display_order", "name")
	if limit > 0 {
		builder = builder.Limit(uint64(limit))
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list excos query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query excos: %w", err)
	}
	defer rows.Close()

	var excos []models.Exco
	for rows.Next() {
		e, err := scanExco(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan exco row: %w", err)
		}
		excos = append(excos, *e)
	}
	return excos, rows.Err()
}

// GetExcoByID retrieves one exco
func (r *StaffRepository) GetExcoByID(ctx context.Context, id int64) (*models.Exco, error) {
	sql, args, err := r.sb.Select(excoColumns...).
		From("excos").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get exco query: %w", err)
	}

	e, err := scanExco(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrExcoNotFound
		}
		return nil, fmt.Errorf("error querying exco ID=%d: %w", id, err)
	}
	return e, nil
}

// CreateExco inserts a new exco
func (r *StaffRepository) CreateExco(ctx context.Context, e *models.Exco) (int64, error) {
	sql, args, err := r.sb.Insert("excos").
		Columns("name", "position", "bio", "email", "phone", "image_url", "session", "display_order").
		Values(e.Name, e.Position, e.Bio, e.Email, e.Phone, e.ImageURL, e.Session, e.DisplayOrder).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create exco query: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		return 0, fmt.Errorf("error inserting exco: %w", err)
	}
	logger.Info().Int64("excoID", id).Msg("Exco created")
	return id, nil
}

// UpdateExco updates an existing exco
func (r *StaffRepository) UpdateExco(ctx context.Context, e *models.Exco) error {
	sql, args, err := r.sb.Update("excos").
		SetMap(map[string]interface{}{
			"name":          e.Name,
			"position":      e.Position,
			"bio":           e.Bio,
			"email":         e.Email,
			"phone":         e.Phone,
			"image_url":     e.ImageURL,
			"session":       e.Session,
			"display_order": e.DisplayOrder,
			"updated_at":    squirrel.Expr("NOW()"),
		}).
		Where(squirrel.Eq{"id": e.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update exco query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error updating exco ID=%d: %w", e.ID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrExcoNotFound
	}
	return nil
}

// DeleteExco removes an exco
func (r *StaffRepository) DeleteExco(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("excos").Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete exco query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error deleting exco ID=%d: %w", id, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrExcoNotFound
	}
	return nil
}

// CountExcos returns the total number of excos
func (r *StaffRepository) CountExcos(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM excos`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count excos: %w", err)
	}
	return count, nil
}
