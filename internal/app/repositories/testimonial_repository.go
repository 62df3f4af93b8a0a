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

// TestimonialRepository handles testimonial database operations
type TestimonialRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewTestimonialRepository creates a new TestimonialRepository
func NewTestimonialRepository(db *pgxpool.Pool) *TestimonialRepository {
	return &TestimonialRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

var testimonialColumns = []string{
	"id", "name", "message", "rating", "is_approved", "created_at", "updated_at",
}

func scanTestimonial(row pgx.Row) (*models.Testimonial, error) {
	var t models.Testimonial
	err := row.Scan(&t.ID, &t.Name, &t.Message, &t.Rating, &t.IsApproved, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *TestimonialRepository) queryList(ctx context.Context, builder squirrel.SelectBuilder) ([]models.Testimonial, error) {
	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build testimonials query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query testimonials: %w", err)
	}
	defer rows.Close()

	var testimonials []models.Testimonial
	for rows.Next() {
		t, err := scanTestimonial(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan testimonial row: %w", err)
		}
		testimonials = append(testimonials, *t)
	}
	return testimonials, rows.Err()
}

// GetAll lists every testimonial, newest first.
func (r *TestimonialRepository) GetAll(ctx context.Context) ([]models.Testimonial, error) {
	return r.queryList(ctx, r.sb.Select(testimonialColumns...).
		From("testimonials").
		OrderBy("created_at DESC"))
}

// GetApproved lists approved testimonials, newest first.
func (r *TestimonialRepository) GetApproved(ctx context.Context, limit int) ([]models.Testimonial, error) {
	builder := r.sb.Select(testimonialColumns...).
		From("testimonials").
		Where(squirrel.Eq{"is_approved": true}).
		OrderBy("created_at DESC")
	if limit > 0 {
		builder = builder.Limit(uint64(limit))
	}
	return r.queryList(ctx, builder)
}

// GetByID retrieves one testimonial
func (r *TestimonialRepository) GetByID(ctx context.Context, id int64) (*models.Testimonial, error) {
	sql, args, err := r.sb.Select(testimonialColumns...).
		From("testimonials").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get testimonial query: %w", err)
	}

	t, err := scanTestimonial(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrTestimonialNotFound
		}
		return nil, fmt.Errorf("error querying testimonial ID=%d: %w", id, err)
	}
	return t, nil
}

// Create inserts a new testimonial, unapproved until an admin says otherwise.
func (r *TestimonialRepository) Create(ctx context.Context, t *models.Testimonial) (int64, error) {
	sql, args, err := r.sb.Insert("testimonials").
		Columns("name", "message", "rating", "is_approved").
		Values(t.Name, t.Message, t.Rating, t.IsApproved).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create testimonial query: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		return 0, fmt.Errorf("error inserting testimonial: %w", err)
	}
	logger.Info().Int64("testimonialID", id).Msg("Testimonial submitted")
	return id, nil
}

// Update updates an existing testimonial
func (r *TestimonialRepository) Update(ctx context.Context, t *models.Testimonial) error {
	sql, args, err := r.sb.Update("testimonials").
		SetMap(map[string]interface{}{
			"name":        t.Name,
			"message":     t.Message,
			"rating":      t.Rating,
			"is_approved": t.IsApproved,
			"updated_at":  squirrel.Expr("NOW()"),
		}).
		Where(squirrel.Eq{"id": t.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update testimonial query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error updating testimonial ID=%d: %w", t.ID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrTestimonialNotFound
	}
	return nil
}

// SetApproved flips the approval flag on one testimonial
func (r *TestimonialRepository) SetApproved(ctx context.Context, id int64, approved bool) error {
	sql, args, err := r.sb.Update("testimonials").
		Set("is_approved", approved).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build approve testimonial query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error approving testimonial ID=%d: %w", id, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrTestimonialNotFound
	}
	return nil
}

// SetApprovedBatch flips the approval flag on a set of testimonials in a
// single statement and returns how many rows changed.
func (r *TestimonialRepository) SetApprovedBatch(ctx context.Context, ids []int64, approved bool) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	sql, args, err := r.sb.Update("testimonials").
		Set("is_approved", approved).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": ids}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build batch approve query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return 0, fmt.Errorf("error batch approving testimonials: %w", err)
	}
	logger.Info().Int64("updated", cmdTag.RowsAffected()).Bool("approved", approved).Msg("Testimonials batch updated")
	return cmdTag.RowsAffected(), nil
}

// Delete removes a testimonial
func (r *TestimonialRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("testimonials").Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete testimonial query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error deleting testimonial ID=%d: %w", id, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrTestimonialNotFound
	}
	return nil
}

// CountPending returns the number of testimonials awaiting approval
func (r *TestimonialRepository) CountPending(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM testimonials WHERE is_approved = FALSE`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count pending testimonials: %w", err)
	}
	return count, nil
}
