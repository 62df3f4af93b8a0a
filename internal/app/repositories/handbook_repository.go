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
	"github.com/bmefuto/portal/internal/pkg/dberrors"
	"github.com/bmefuto/portal/internal/pkg/logger"
)

// HandbookRepository handles course handbook database operations
type HandbookRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewHandbookRepository creates a new HandbookRepository
func NewHandbookRepository(db *pgxpool.Pool) *HandbookRepository {
	return &HandbookRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

var handbookColumns = []string{
	"id", "level", "semester", "course_code", "course_title", "credit_unit",
	"course_type", "description", "uploaded_by", "created_at", "updated_at",
}

func scanHandbook(row pgx.Row) (*models.CourseHandbook, error) {
	var h models.CourseHandbook
	err := row.Scan(
		&h.ID, &h.Level, &h.Semester, &h.CourseCode, &h.CourseTitle, &h.CreditUnit,
		&h.CourseType, &h.Description, &h.UploadedBy, &h.CreatedAt, &h.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &h, nil
}

// GetAll lists every handbook entry, ordered by level, semester then code.
func (r *HandbookRepository) GetAll(ctx context.Context) ([]models.CourseHandbook, error) {
	sql, args, err := r.sb.Select(handbookColumns...).
		From("course_handbook").
		OrderBy("level", "semester", "course_code").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list handbook query: %w", err)
	}
	return r.queryList(ctx, sql, args)
}

// ListByLevelSemester lists the handbook entries for one level and semester,
// ordered by course code.
func (r *HandbookRepository) ListByLevelSemester(ctx context.Context, level, semester string) ([]models.CourseHandbook, error) {
	sql, args, err := r.sb.Select(handbookColumns...).
		From("course_handbook").
		Where(squirrel.Eq{"level": level, "semester": semester}).
		OrderBy("course_code").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build handbook filter query: %w", err)
	}
	return r.queryList(ctx, sql, args)
}

func (r *HandbookRepository) queryList(ctx context.Context, sql string, args []interface{}) ([]models.CourseHandbook, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query handbook entries: %w", err)
	}
	defer rows.Close()

	var entries []models.CourseHandbook
	for rows.Next() {
		h, err := scanHandbook(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan handbook row: %w", err)
		}
		entries = append(entries, *h)
	}
	return entries, rows.Err()
}

// GetByID retrieves one handbook entry
func (r *HandbookRepository) GetByID(ctx context.Context, id int64) (*models.CourseHandbook, error) {
	sql, args, err := r.sb.Select(handbookColumns...).
		From("course_handbook").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get handbook query: %w", err)
	}

	h, err := scanHandbook(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrHandbookNotFound
		}
		return nil, fmt.Errorf("error querying handbook entry ID=%d: %w", id, err)
	}
	return h, nil
}

// Create inserts a new handbook entry
func (r *HandbookRepository) Create(ctx context.Context, h *models.CourseHandbook) (int64, error) {
	sql, args, err := r.sb.Insert("course_handbook").
		Columns("level", "semester", "course_code", "course_title", "credit_unit",
			"course_type", "description", "uploaded_by").
		Values(h.Level, h.Semester, h.CourseCode, h.CourseTitle, h.CreditUnit,
			h.CourseType, h.Description, h.UploadedBy).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create handbook query: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		if dberrors.IsUniqueViolation(err) {
			return 0, apperrors.ErrHandbookEntryExists
		}
		return 0, fmt.Errorf("error inserting handbook entry: %w", err)
	}
	logger.Info().Int64("handbookID", id).Str("courseCode", h.CourseCode).Msg("Handbook entry created")
	return id, nil
}

// Update updates an existing handbook entry
func (r *HandbookRepository) Update(ctx context.Context, h *models.CourseHandbook) error {
	sql, args, err := r.sb.Update("course_handbook").
		SetMap(map[string]interface{}{
			"level":        h.Level,
			"semester":     h.Semester,
			"course_code":  h.CourseCode,
			"course_title": h.CourseTitle,
			"credit_unit":  h.CreditUnit,
			"course_type":  h.CourseType,
			"description":  h.Description,
			"updated_at":   squirrel.Expr("NOW()"),
		}).
		Where(squirrel.Eq{"id": h.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update handbook query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrHandbookEntryExists
		}
		return fmt.Errorf("error updating handbook entry ID=%d: %w", h.ID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrHandbookNotFound
	}
	return nil
}

// Delete removes a handbook entry
func (r *HandbookRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("course_handbook").Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete handbook query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error deleting handbook entry ID=%d: %w", id, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrHandbookNotFound
	}
	return nil
}
