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

// TimetableRepository handles timetable database operations
type TimetableRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewTimetableRepository creates a new TimetableRepository
func NewTimetableRepository(db *pgxpool.Pool) *TimetableRepository {
	return &TimetableRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

var timetableColumns = []string{
	"id", "title", "timetable_type", "level", "semester", "academic_session",
	"image_url", "description", "is_active", "uploaded_by", "created_at", "updated_at",
}

func scanTimetable(row pgx.Row) (*models.Timetable, error) {
	var t models.Timetable
	err := row.Scan(
		&t.ID, &t.Title, &t.Type, &t.Level, &t.Semester, &t.AcademicSession,
		&t.ImageURL, &t.Description, &t.IsActive, &t.UploadedBy, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *TimetableRepository) queryList(ctx context.Context, builder squirrel.SelectBuilder) ([]models.Timetable, error) {
	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build timetables query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query timetables: %w", err)
	}
	defer rows.Close()

	var timetables []models.Timetable
	for rows.Next() {
		t, err := scanTimetable(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan timetable row: %w", err)
		}
		timetables = append(timetables, *t)
	}
	return timetables, rows.Err()
}

// GetAll lists every timetable, newest first.
func (r *TimetableRepository) GetAll(ctx context.Context) ([]models.Timetable, error) {
	return r.queryList(ctx, r.sb.Select(timetableColumns...).
		From("timetables").
		OrderBy("created_at DESC"))
}

// ListActive lists active timetables, optionally narrowed by type and level.
// A timetable whose level is "All" matches any requested level.
func (r *TimetableRepository) ListActive(ctx context.Context, timetableType, level string) ([]models.Timetable, error) {
	builder := r.sb.Select(timetableColumns...).
		From("timetables").
		Where(squirrel.Eq{"is_active": true}).
		OrderBy("created_at DESC")
	if timetableType != "" {
		builder = builder.Where(squirrel.Eq{"timetable_type": timetableType})
	}
	if level != "" {
		builder = builder.Where(squirrel.Eq{"level": []string{level, string(models.LevelAll)}})
	}
	return r.queryList(ctx, builder)
}

// GetByID retrieves one timetable
func (r *TimetableRepository) GetByID(ctx context.Context, id int64) (*models.Timetable, error) {
	sql, args, err := r.sb.Select(timetableColumns...).
		From("timetables").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get timetable query: %w", err)
	}

	t, err := scanTimetable(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrTimetableNotFound
		}
		return nil, fmt.Errorf("error querying timetable ID=%d: %w", id, err)
	}
	return t, nil
}

// Create inserts a new timetable
func (r *TimetableRepository) Create(ctx context.Context, t *models.Timetable) (int64, error) {
	sql, args, err := r.sb.Insert("timetables").
		Columns("title", "timetable_type", "level", "semester", "academic_session",
			"image_url", "description", "is_active", "uploaded_by").
		Values(t.Title, t.Type, t.Level, t.Semester, t.AcademicSession,
			t.ImageURL, t.Description, t.IsActive, t.UploadedBy).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create timetable query: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		return 0, fmt.Errorf("error inserting timetable: %w", err)
	}
	logger.Info().Int64("timetableID", id).Str("title", t.Title).Msg("Timetable created")
	return id, nil
}

// Update updates an existing timetable
func (r *TimetableRepository) Update(ctx context.Context, t *models.Timetable) error {
	sql, args, err := r.sb.Update("timetables").
		SetMap(map[string]interface{}{
			"title":            t.Title,
			"timetable_type":   t.Type,
			"level":            t.Level,
			"semester":         t.Semester,
			"academic_session": t.AcademicSession,
			"image_url":        t.ImageURL,
			"description":      t.Description,
			"is_active":        t.IsActive,
			"updated_at":       squirrel.Expr("NOW()"),
		}).
		Where(squirrel.Eq{"id": t.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update timetable query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error updating timetable ID=%d: %w", t.ID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrTimetableNotFound
	}
	return nil
}

// Delete removes a timetable
func (r *TimetableRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("timetables").Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete timetable query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error deleting timetable ID=%d: %w", id, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrTimetableNotFound
	}
	return nil
}
