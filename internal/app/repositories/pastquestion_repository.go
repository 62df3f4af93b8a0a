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

// PastQuestionFilter holds the optional filters for listing past questions.
type PastQuestionFilter struct {
	Level    string
	Semester string
	Year     int
}

// PastQuestionRepository handles past question database operations
type PastQuestionRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewPastQuestionRepository creates a new PastQuestionRepository
func NewPastQuestionRepository(db *pgxpool.Pool) *PastQuestionRepository {
	return &PastQuestionRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

var pastQuestionColumns = []string{
	"id", "course_code", "course_title", "level", "semester", "year",
	"link", "description", "uploaded_by", "created_at", "updated_at",
}

func scanPastQuestion(row pgx.Row) (*models.PastQuestion, error) {
	var q models.PastQuestion
	err := row.Scan(
		&q.ID, &q.CourseCode, &q.CourseTitle, &q.Level, &q.Semester, &q.Year,
		&q.Link, &q.Description, &q.UploadedBy, &q.CreatedAt, &q.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &q, nil
}

func (r *PastQuestionRepository) applyFilter(builder squirrel.SelectBuilder, filter PastQuestionFilter) squirrel.SelectBuilder {
	if filter.Level != "" {
		builder = builder.Where(squirrel.Eq{"level": filter.Level})
	}
	if filter.Semester != "" {
		builder = builder.Where(squirrel.Eq{"semester": filter.Semester})
	}
	if filter.Year > 0 {
		builder = builder.Where(squirrel.Eq{"year": filter.Year})
	}
	return builder
}

// GetAll lists past questions matching the filter, newest year first.
func (r *PastQuestionRepository) GetAll(ctx context.Context, filter PastQuestionFilter, offset, limit int) ([]models.PastQuestion, error) {
	builder := r.applyFilter(r.sb.Select(pastQuestionColumns...).From("past_questions"), filter).
		OrderBy("year DESC", "course_code").
		Offset(uint64(offset))
	if limit > 0 {
		builder = builder.Limit(uint64(limit))
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list past questions query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query past questions: %w", err)
	}
	defer rows.Close()

	var questions []models.PastQuestion
	for rows.Next() {
		q, err := scanPastQuestion(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan past question row: %w", err)
		}
		questions = append(questions, *q)
	}
	return questions, rows.Err()
}

// Count returns the number of past questions matching the filter
func (r *PastQuestionRepository) Count(ctx context.Context, filter PastQuestionFilter) (int64, error) {
	sql, args, err := r.applyFilter(r.sb.Select("COUNT(*)").From("past_questions"), filter).ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build count past questions query: %w", err)
	}

	var count int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count past questions: %w", err)
	}
	return count, nil
}

// DistinctYears returns the distinct exam years, newest first.
func (r *PastQuestionRepository) DistinctYears(ctx context.Context) ([]int, error) {
	rows, err := r.db.Query(ctx, `SELECT DISTINCT year FROM past_questions ORDER BY year DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to query distinct years: %w", err)
	}
	defer rows.Close()

	var years []int
	for rows.Next() {
		var y int
		if err := rows.Scan(&y); err != nil {
			return nil, fmt.Errorf("failed to scan year: %w", err)
		}
		years = append(years, y)
	}
	return years, rows.Err()
}

// CountByLevel returns a per-level count of past questions
func (r *PastQuestionRepository) CountByLevel(ctx context.Context) (map[string]int64, error) {
	rows, err := r.db.Query(ctx, `SELECT level, COUNT(*) FROM past_questions GROUP BY level`)
	if err != nil {
		return nil, fmt.Errorf("failed to count past questions by level: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int64)
	for rows.Next() {
		var level string
		var count int64
		if err := rows.Scan(&level, &count); err != nil {
			return nil, fmt.Errorf("failed to scan level count: %w", err)
		}
		counts[level] = count
	}
	return counts, rows.Err()
}

// GetByID retrieves one past question
func (r *PastQuestionRepository) GetByID(ctx context.Context, id int64) (*models.PastQuestion, error) {
	sql, args, err := r.sb.Select(pastQuestionColumns...).
		From("past_questions").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get past question query: %w", err)
	}

	q, err := scanPastQuestion(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrPastQuestionNotFound
		}
		return nil, fmt.Errorf("error querying past question ID=%d: %w", id, err)
	}
	return q, nil
}

// Create inserts a new past question
func (r *PastQuestionRepository) Create(ctx context.Context, q *models.PastQuestion) (int64, error) {
	sql, args, err := r.sb.Insert("past_questions").
		Columns("course_code", "course_title", "level", "semester", "year", "link", "description", "uploaded_by").
		Values(q.CourseCode, q.CourseTitle, q.Level, q.Semester, q.Year, q.Link, q.Description, q.UploadedBy).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create past question query: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		return 0, fmt.Errorf("error inserting past question: %w", err)
	}
	logger.Info().Int64("pastQuestionID", id).Str("courseCode", q.CourseCode).Msg("Past question created")
	return id, nil
}

// Update updates an existing past question
func (r *PastQuestionRepository) Update(ctx context.Context, q *models.PastQuestion) error {
	sql, args, err := r.sb.Update("past_questions").
		SetMap(map[string]interface{}{
			"course_code":  q.CourseCode,
			"course_title": q.CourseTitle,
			"level":        q.Level,
			"semester":     q.Semester,
			"year":         q.Year,
			"link":         q.Link,
			"description":  q.Description,
			"updated_at":   squirrel.Expr("NOW()"),
		}).
		Where(squirrel.Eq{"id": q.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update past question query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error updating past question ID=%d: %w", q.ID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrPastQuestionNotFound
	}
	return nil
}

// Delete removes a past question
func (r *PastQuestionRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("past_questions").Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete past question query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error deleting past question ID=%d: %w", id, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrPastQuestionNotFound
	}
	return nil
}
