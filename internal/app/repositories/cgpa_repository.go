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

// CGPARepository stores cumulative GPA snapshots. Snapshots are append-only.
type CGPARepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewCGPARepository creates a new CGPARepository
func NewCGPARepository(db *pgxpool.Pool) *CGPARepository {
	return &CGPARepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

var cgpaColumns = []string{
	"id", "reg_number", "cgpa", "total_credit_units", "total_grade_points", "calculated_at",
}

func scanCGPA(row pgx.Row) (*models.CGPACalculation, error) {
	var c models.CGPACalculation
	err := row.Scan(&c.ID, &c.RegNumber, &c.CGPA, &c.TotalCreditUnits, &c.TotalGradePoints, &c.CalculatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// Insert appends a CGPA snapshot for the student
func (r *CGPARepository) Insert(ctx context.Context, c *models.CGPACalculation) (int64, error) {
	sql, args, err := r.sb.Insert("cgpa_calculations").
		Columns("reg_number", "cgpa", "total_credit_units", "total_grade_points").
		Values(c.RegNumber, c.CGPA, c.TotalCreditUnits, c.TotalGradePoints).
		Suffix("RETURNING id, calculated_at").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build insert cgpa query: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id, &c.CalculatedAt); err != nil {
		return 0, fmt.Errorf("error inserting cgpa snapshot: %w", err)
	}
	return id, nil
}

// ListByStudent returns the student's snapshots, newest first.
func (r *CGPARepository) ListByStudent(ctx context.Context, regNumber string, limit int) ([]models.CGPACalculation, error) {
	builder := r.sb.Select(cgpaColumns...).
		From("cgpa_calculations").
		Where(squirrel.Eq{"reg_number": regNumber}).
		OrderBy("calculated_at DESC", "id DESC")
	if limit > 0 {
		builder = builder.Limit(uint64(limit))
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list cgpa query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query cgpa snapshots: %w", err)
	}
	defer rows.Close()

	var snapshots []models.CGPACalculation
	for rows.Next() {
		c, err := scanCGPA(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan cgpa row: %w", err)
		}
		snapshots = append(snapshots, *c)
	}
	return snapshots, rows.Err()
}

// GetLatest returns the student's most recent snapshot
func (r *CGPARepository) GetLatest(ctx context.Context, regNumber string) (*models.CGPACalculation, error) {
	sql, args, err := r.sb.Select(cgpaColumns...).
		From("cgpa_calculations").
		Where(squirrel.Eq{"reg_number": regNumber}).
		OrderBy("calculated_at DESC", "id DESC").
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build latest cgpa query: %w", err)
	}

	c, err := scanCGPA(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrResourceNotFound
		}
		return nil, fmt.Errorf("error querying latest cgpa for %s: %w", regNumber, err)
	}
	return c, nil
}
