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

// GradebookRepository handles semester and course database operations.
// Every query is scoped by the owning student's registration number so one
// student can never read or touch another student's records.
type GradebookRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewGradebookRepository creates a new GradebookRepository
func NewGradebookRepository(db *pgxpool.Pool) *GradebookRepository {
	return &GradebookRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

var semesterColumns = []string{"id", "reg_number", "name", "year", "created_at"}

func scanSemester(row pgx.Row) (*models.Semester, error) {
	var s models.Semester
	if err := row.Scan(&s.ID, &s.RegNumber, &s.Name, &s.Year, &s.CreatedAt); err != nil {
		return nil, err
	}
	return &s, nil
}

var courseColumns = []string{
	"id", "semester_id", "course_code", "course_name", "credit_unit", "grade_point", "created_at",
}

func scanCourse(row pgx.Row) (*models.Course, error) {
	var c models.Course
	err := row.Scan(&c.ID, &c.SemesterID, &c.CourseCode, &c.CourseName, &c.CreditUnit, &c.GradePoint, &c.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// CreateSemester inserts a new semester for the student
func (r *GradebookRepository) CreateSemester(ctx context.Context, s *models.Semester) (int64, error) {
	sql, args, err := r.sb.Insert("semesters").
		Columns("reg_number", "name", "year").
		Values(s.RegNumber, s.Name, s.Year).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create semester query: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		if dberrors.IsDuplicateConstraintError(err, "semesters_reg_number_name_key") {
			return 0, apperrors.ErrSemesterNameExists
		}
		return 0, fmt.Errorf("error inserting semester: %w", err)
	}
	logger.Info().Int64("semesterID", id).Str("regNumber", s.RegNumber).Msg("Semester created")
	return id, nil
}

// GetSemester retrieves a semester owned by the student
func (r *GradebookRepository) GetSemester(ctx context.Context, regNumber string, id int64) (*models.Semester, error) {
	sql, args, err := r.sb.Select(semesterColumns...).
		From("semesters").
		Where(squirrel.Eq{"id": id, "reg_number": regNumber}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get semester query: %w", err)
	}

	s, err := scanSemester(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrSemesterNotFound
		}
		return nil, fmt.Errorf("error querying semester ID=%d: %w", id, err)
	}
	return s, nil
}

// UpdateSemester updates a semester owned by the student
func (r *GradebookRepository) UpdateSemester(ctx context.Context, s *models.Semester) error {
	sql, args, err := r.sb.Update("semesters").
		SetMap(map[string]interface{}{
			"name": s.Name,
			"year": s.Year,
		}).
		Where(squirrel.Eq{"id": s.ID, "reg_number": s.RegNumber}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update semester query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "semesters_reg_number_name_key") {
			return apperrors.ErrSemesterNameExists
		}
		return fmt.Errorf("error updating semester ID=%d: %w", s.ID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrSemesterNotFound
	}
	return nil
}

// DeleteSemester removes a semester owned by the student. Its courses go
// with it through ON DELETE CASCADE.
func (r *GradebookRepository) DeleteSemester(ctx context.Context, regNumber string, id int64) error {
	sql, args, err := r.sb.Delete("semesters").
		Where(squirrel.Eq{"id": id, "reg_number": regNumber}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete semester query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error deleting semester ID=%d: %w", id, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrSemesterNotFound
	}
	return nil
}

// ListSemestersWithCourses returns all of the student's semesters, oldest
// first, each with its courses attached.
func (r *GradebookRepository) ListSemestersWithCourses(ctx context.Context, regNumber string) ([]models.Semester, error) {
	sql, args, err := r.sb.Select(semesterColumns...).
		From("semesters").
		Where(squirrel.Eq{"reg_number": regNumber}).
		OrderBy("created_at", "id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list semesters query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query semesters: %w", err)
	}
	defer rows.Close()

	var semesters []models.Semester
	for rows.Next() {
		s, err := scanSemester(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan semester row: %w", err)
		}
		semesters = append(semesters, *s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	rows.Close()

	for i := range semesters {
		courses, err := r.ListCourses(ctx, semesters[i].ID)
		if err != nil {
			return nil, err
		}
		semesters[i].Courses = courses
	}
	return semesters, nil
}

// ListCourses returns the courses of a semester, in insertion order.
func (r *GradebookRepository) ListCourses(ctx context.Context, semesterID int64) ([]models.Course, error) {
	sql, args, err := r.sb.Select(courseColumns...).
		From("courses").
		Where(squirrel.Eq{"semester_id": semesterID}).
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list courses query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query courses: %w", err)
	}
	defer rows.Close()

	var courses []models.Course
	for rows.Next() {
		c, err := scanCourse(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan course row: %w", err)
		}
		courses = append(courses, *c)
	}
	return courses, rows.Err()
}

// CreateCourse inserts a course into one of the student's semesters. The
// ownership check rides on the INSERT itself.
func (r *GradebookRepository) CreateCourse(ctx context.Context, regNumber string, c *models.Course) (int64, error) {
	sql, args, err := r.sb.Insert("courses").
		Columns("semester_id", "course_code", "course_name", "credit_unit", "grade_point").
		Select(r.sb.Select().
			Column("?", c.SemesterID).
			Column("?", c.CourseCode).
			Column("?", c.CourseName).
			Column("?", c.CreditUnit).
			Column("?", c.GradePoint).
			From("semesters").
			Where(squirrel.Eq{"id": c.SemesterID, "reg_number": regNumber})).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create course query: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, apperrors.ErrSemesterNotFound
		}
		return 0, fmt.Errorf("error inserting course: %w", err)
	}
	logger.Info().Int64("courseID", id).Int64("semesterID", c.SemesterID).Msg("Course added")
	return id, nil
}

// GetCourse retrieves a course owned by the student, resolving ownership
// through the parent semester.
func (r *GradebookRepository) GetCourse(ctx context.Context, regNumber string, id int64) (*models.Course, error) {
	cols := make([]string, len(courseColumns))
	for i, col := range courseColumns {
		cols[i] = "c." + col
	}
	sql, args, err := r.sb.Select(cols...).
		From("courses c").
		Join("semesters s ON s.id = c.semester_id").
		Where(squirrel.Eq{"c.id": id, "s.reg_number": regNumber}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get course query: %w", err)
	}

	c, err := scanCourse(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCourseNotFound
		}
		return nil, fmt.Errorf("error querying course ID=%d: %w", id, err)
	}
	return c, nil
}

// UpdateCourse updates a course owned by the student
func (r *GradebookRepository) UpdateCourse(ctx context.Context, regNumber string, c *models.Course) error {
	sql, args, err := r.sb.Update("courses").
		SetMap(map[string]interface{}{
			"course_code": c.CourseCode,
			"course_name": c.CourseName,
			"credit_unit": c.CreditUnit,
			"grade_point": c.GradePoint,
		}).
		Where(squirrel.Expr(
			"id = ? AND semester_id IN (SELECT id FROM semesters WHERE reg_number = ?)",
			c.ID, regNumber)).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update course query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error updating course ID=%d: %w", c.ID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrCourseNotFound
	}
	return nil
}

// DeleteCourse removes a course owned by the student
func (r *GradebookRepository) DeleteCourse(ctx context.Context, regNumber string, id int64) error {
	sql, args, err := r.sb.Delete("courses").
		Where(squirrel.Expr(
			"id = ? AND semester_id IN (SELECT id FROM semesters WHERE reg_number = ?)",
			id, regNumber)).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete course query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error deleting course ID=%d: %w", id, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrCourseNotFound
	}
	return nil
}
