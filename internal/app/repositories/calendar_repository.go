package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/bmefuto/portal/internal/app/models"
	"github.com/bmefuto/portal/internal/db"
	"github.com/bmefuto/portal/internal/pkg/apperrors"
	"github.com/bmefuto/portal/internal/pkg/logger"
)

// CalendarRepository handles academic calendar database operations. The
// single-active invariant is enforced here: any write that activates a
// calendar deactivates every other row inside the same transaction.
type CalendarRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewCalendarRepository creates a new CalendarRepository
func NewCalendarRepository(db *pgxpool.Pool) *CalendarRepository {
	return &CalendarRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

var calendarColumns = []string{
	"id", "title", "academic_session", "image_url", "description",
	"is_active", "uploaded_by", "created_at", "updated_at",
}

func scanCalendar(row pgx.Row) (*models.AcademicCalendar, error) {
	var c models.AcademicCalendar
	err := row.Scan(
		&c.ID, &c.Title, &c.AcademicSession, &c.ImageURL, &c.Description,
		&c.IsActive, &c.UploadedBy, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// Create inserts a new calendar. When the new calendar is active, all other
// calendars are deactivated in the same transaction.
func (r *CalendarRepository) Create(ctx context.Context, c *models.AcademicCalendar) error {
	return db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		sql, args, err := r.sb.Insert("academic_calendars").
			Columns("title", "academic_session", "image_url", "description", "is_active", "uploaded_by").
			Values(c.Title, c.AcademicSession, c.ImageURL, c.Description, c.IsActive, c.UploadedBy).
			Suffix("RETURNING id").
			ToSql()
		if err != nil {
			return fmt.Errorf("failed to build create calendar query: %w", err)
		}

		if err := tx.QueryRow(ctx, sql, args...).Scan(&c.ID); err != nil {
			return fmt.Errorf("error inserting calendar: %w", err)
		}

		if c.IsActive {
			if err := deactivateOthers(ctx, tx, c.ID); err != nil {
				return err
			}
		}
		logger.Info().Int64("calendarID", c.ID).Bool("active", c.IsActive).Msg("Academic calendar created")
		return nil
	})
}

// Update updates a calendar, maintaining the single-active invariant when
// the update activates it.
func (r *CalendarRepository) Update(ctx context.Context, c *models.AcademicCalendar) error {
	return db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		sql, args, err := r.sb.Update("academic_calendars").
			SetMap(map[string]interface{}{
				"title":            c.Title,
				"academic_session": c.AcademicSession,
				"image_url":        c.ImageURL,
				"description":      c.Description,
				"is_active":        c.IsActive,
				"updated_at":       squirrel.Expr("NOW()"),
			}).
			Where(squirrel.Eq{"id": c.ID}).
			ToSql()
		if err != nil {
			return fmt.Errorf("failed to build update calendar query: %w", err)
		}

		cmdTag, err := tx.Exec(ctx, sql, args...)
		if err != nil {
			return fmt.Errorf("error updating calendar ID=%d: %w", c.ID, err)
		}
		if cmdTag.RowsAffected() == 0 {
			return apperrors.ErrCalendarNotFound
		}

		if c.IsActive {
			if err := deactivateOthers(ctx, tx, c.ID); err != nil {
				return err
			}
		}
		return nil
	})
}

func deactivateOthers(ctx context.Context, tx pgx.Tx, keepID int64) error {
	_, err := tx.Exec(ctx, `
		UPDATE academic_calendars
		SET is_active = FALSE, updated_at = NOW()
		WHERE id <> $1 AND is_active`, keepID)
	if err != nil {
		return fmt.Errorf("failed to deactivate other calendars: %w", err)
	}
	return nil
}

// GetActive returns the currently active calendar
func (r *CalendarRepository) GetActive(ctx context.Context) (*models.AcademicCalendar, error) {
	sql, args, err := r.sb.Select(calendarColumns...).
		From("academic_calendars").
		Where(squirrel.Eq{"is_active": true}).
		OrderBy("updated_at DESC").
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build active calendar query: %w", err)
	}

	c, err := scanCalendar(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCalendarNotFound
		}
		return nil, fmt.Errorf("error querying active calendar: %w", err)
	}
	return c, nil
}

// GetByID retrieves one calendar
func (r *CalendarRepository) GetByID(ctx context.Context, id int64) (*models.AcademicCalendar, error) {
	sql, args, err := r.sb.Select(calendarColumns...).
		From("academic_calendars").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get calendar query: %w", err)
	}

	c, err := scanCalendar(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCalendarNotFound
		}
		return nil, fmt.Errorf("error querying calendar ID=%d: %w", id, err)
	}
	return c, nil
}

func (r *CalendarRepository) queryList(ctx context.Context, builder squirrel.SelectBuilder) ([]models.AcademicCalendar, error) {
	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build calendars query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query calendars: %w", err)
	}
	defer rows.Close()

	var calendars []models.AcademicCalendar
	for rows.Next() {
		c, err := scanCalendar(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan calendar row: %w", err)
		}
		calendars = append(calendars, *c)
	}
	return calendars, rows.Err()
}

// GetAll lists every calendar, newest first.
func (r *CalendarRepository) GetAll(ctx context.Context) ([]models.AcademicCalendar, error) {
	return r.queryList(ctx, r.sb.Select(calendarColumns...).
		From("academic_calendars").
		OrderBy("created_at DESC"))
}

// ListRecent lists the most recent calendars
func (r *CalendarRepository) ListRecent(ctx context.Context, limit int) ([]models.AcademicCalendar, error) {
	if limit <= 0 {
		limit = 5
	}
	return r.queryList(ctx, r.sb.Select(calendarColumns...).
		From("academic_calendars").
		OrderBy("created_at DESC").
		Limit(uint64(limit)))
}

// Delete removes a calendar
func (r *CalendarRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("academic_calendars").Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete calendar query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error deleting calendar ID=%d: %w", id, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrCalendarNotFound
	}
	return nil
}
