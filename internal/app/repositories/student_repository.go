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

// StudentRepository handles student account database operations
type StudentRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewStudentRepository creates a new StudentRepository
func NewStudentRepository(db *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

var studentColumns = []string{
	"reg_number", "full_name", "email", "phone", "level", "profile_image_url",
	"created_at", "updated_at",
}

func scanStudent(row pgx.Row) (*models.Student, error) {
	var s models.Student
	err := row.Scan(
		&s.RegNumber, &s.FullName, &s.Email, &s.Phone, &s.Level, &s.ProfileImageURL,
		&s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// Create inserts a new student account
func (r *StudentRepository) Create(ctx context.Context, s *models.Student) error {
	sql, args, err := r.sb.Insert("students").
		Columns("reg_number", "full_name", "email", "phone", "level", "profile_image_url").
		Values(s.RegNumber, s.FullName, s.Email, s.Phone, s.Level, s.ProfileImageURL).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create student query: %w", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrRegNumberExists
		}
		return fmt.Errorf("error inserting student: %w", err)
	}
	logger.Info().Str("regNumber", s.RegNumber).Msg("Student registered")
	return nil
}

// GetByRegNumber retrieves a student by registration number
func (r *StudentRepository) GetByRegNumber(ctx context.Context, regNumber string) (*models.Student, error) {
	sql, args, err := r.sb.Select(studentColumns...).
		From("students").
		Where(squirrel.Eq{"reg_number": regNumber}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get student query: %w", err)
	}

	s, err := scanStudent(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("error querying student %s: %w", regNumber, err)
	}
	return s, nil
}

// Exists reports whether a student with the given registration number exists
func (r *StudentRepository) Exists(ctx context.Context, regNumber string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM students WHERE reg_number = $1)`, regNumber).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking student existence: %w", err)
	}
	return exists, nil
}

// Update updates a student's profile. The registration number itself is
// immutable.
func (r *StudentRepository) Update(ctx context.Context, s *models.Student) error {
	sql, args, err := r.sb.Update("students").
		SetMap(map[string]interface{}{
			"full_name":         s.FullName,
			"email":             s.Email,
			"phone":             s.Phone,
			"level":             s.Level,
			"profile_image_url": s.ProfileImageURL,
			"updated_at":        squirrel.Expr("NOW()"),
		}).
		Where(squirrel.Eq{"reg_number": s.RegNumber}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update student query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error updating student %s: %w", s.RegNumber, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrStudentNotFound
	}
	return nil
}

// Delete removes a student account. Semesters, courses, CGPA history and
// dues records go with it through ON DELETE CASCADE.
func (r *StudentRepository) Delete(ctx context.Context, regNumber string) error {
	sql, args, err := r.sb.Delete("students").Where(squirrel.Eq{"reg_number": regNumber}).ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete student query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error deleting student %s: %w", regNumber, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrStudentNotFound
	}
	logger.Info().Str("regNumber", regNumber).Msg("Student account deleted")
	return nil
}

// Count returns the total number of registered students
func (r *StudentRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM students`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count students: %w", err)
	}
	return count, nil
}
