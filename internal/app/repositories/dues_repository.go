package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/bmefuto/portal/internal/app/models"
	"github.com/bmefuto/portal/internal/db"
	"github.com/bmefuto/portal/internal/pkg/apperrors"
	"github.com/bmefuto/portal/internal/pkg/dberrors"
	"github.com/bmefuto/portal/internal/pkg/logger"
)

// DuesRepository handles departmental dues database operations
type DuesRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewDuesRepository creates a new DuesRepository
func NewDuesRepository(db *pgxpool.Pool) *DuesRepository {
	return &DuesRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

var duesColumns = []string{
	"id", "reg_number", "amount_paid", "payment_reference", "receipt_number",
	"watermark_code", "is_approved", "approved_by", "approved_at",
	"academic_session", "created_at", "updated_at",
}

func scanDues(row pgx.Row) (*models.DepartmentalDues, error) {
	var d models.DepartmentalDues
	err := row.Scan(
		&d.ID, &d.RegNumber, &d.AmountPaid, &d.PaymentReference, &d.ReceiptNumber,
		&d.WatermarkCode, &d.IsApproved, &d.ApprovedBy, &d.ApprovedAt,
		&d.AcademicSession, &d.CreatedAt, &d.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func randomToken() string {
	id := uuid.New()
	return strings.ToUpper(strings.ReplaceAll(id.String(), "-", ""))
}

// NewWatermarkCode generates a fresh receipt verification code
func NewWatermarkCode() string {
	return "BME-" + randomToken()[:12]
}

// NewPaymentReference generates a fresh payment reference
func NewPaymentReference() string {
	return "PAY-" + randomToken()[:10]
}

// FormatReceiptNumber renders a receipt number from its year and sequence
func FormatReceiptNumber(year int, seq int64) string {
	return fmt.Sprintf("BME/%d/%04d", year, seq)
}

// CreateWithReceipt inserts a dues record and assigns its receipt number,
// watermark code and payment reference in one transaction. The per-year
// sequence row is bumped atomically so concurrent inserts can never share
// a receipt number.
func (r *DuesRepository) CreateWithReceipt(ctx context.Context, d *models.DepartmentalDues) error {
	year := time.Now().Year()

	err := db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		var seq int64
		err := tx.QueryRow(ctx, `
			INSERT INTO receipt_sequences (year, last_seq) VALUES ($1, 1)
			ON CONFLICT (year) DO UPDATE SET last_seq = receipt_sequences.last_seq + 1
			RETURNING last_seq`, year).Scan(&seq)
		if err != nil {
			return fmt.Errorf("failed to advance receipt sequence: %w", err)
		}

		d.ReceiptNumber = FormatReceiptNumber(year, seq)
		d.WatermarkCode = NewWatermarkCode()
		d.PaymentReference = NewPaymentReference()

		sql, args, err := r.sb.Insert("departmental_dues").
			Columns("reg_number", "amount_paid", "payment_reference", "receipt_number",
				"watermark_code", "is_approved", "approved_by", "approved_at", "academic_session").
			Values(d.RegNumber, d.AmountPaid, d.PaymentReference, d.ReceiptNumber,
				d.WatermarkCode, d.IsApproved, d.ApprovedBy, d.ApprovedAt, d.AcademicSession).
			Suffix("RETURNING id, created_at, updated_at").
			ToSql()
		if err != nil {
			return fmt.Errorf("failed to build create dues query: %w", err)
		}

		if err := tx.QueryRow(ctx, sql, args...).Scan(&d.ID, &d.CreatedAt, &d.UpdatedAt); err != nil {
			if dberrors.IsUniqueViolation(err) {
				return apperrors.ErrDuesAlreadyExists
			}
			if dberrors.IsForeignKeyViolation(err) {
				return apperrors.ErrStudentNotFound
			}
			return fmt.Errorf("error inserting dues record: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	logger.Info().
		Str("regNumber", d.RegNumber).
		Str("receiptNumber", d.ReceiptNumber).
		Msg("Dues record created")
	return nil
}

// GetByID retrieves one dues record
func (r *DuesRepository) GetByID(ctx context.Context, id int64) (*models.DepartmentalDues, error) {
	sql, args, err := r.sb.Select(duesColumns...).
		From("departmental_dues").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get dues query: %w", err)
	}

	d, err := scanDues(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrDuesNotFound
		}
		return nil, fmt.Errorf("error querying dues ID=%d: %w", id, err)
	}
	return d, nil
}

// GetByRegNumber retrieves a student's dues record
func (r *DuesRepository) GetByRegNumber(ctx context.Context, regNumber string) (*models.DepartmentalDues, error) {
	sql, args, err := r.sb.Select(duesColumns...).
		From("departmental_dues").
		Where(squirrel.Eq{"reg_number": regNumber}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get dues query: %w", err)
	}

	d, err := scanDues(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrDuesNotFound
		}
		return nil, fmt.Errorf("error querying dues for %s: %w", regNumber, err)
	}
	return d, nil
}

// GetAll lists every dues record with the owning student attached,
// newest first.
func (r *DuesRepository) GetAll(ctx context.Context) ([]models.DepartmentalDues, error) {
	cols := make([]string, 0, len(duesColumns)+len(studentColumns))
	for _, col := range duesColumns {
		cols = append(cols, "d."+col)
	}
	for _, col := range studentColumns {
		cols = append(cols, "s."+col)
	}

	sql, args, err := r.sb.Select(cols...).
		From("departmental_dues d").
		Join("students s ON s.reg_number = d.reg_number").
		OrderBy("d.created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list dues query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query dues records: %w", err)
	}
	defer rows.Close()

	var records []models.DepartmentalDues
	for rows.Next() {
		var d models.DepartmentalDues
		var s models.Student
		err := rows.Scan(
			&d.ID, &d.RegNumber, &d.AmountPaid, &d.PaymentReference, &d.ReceiptNumber,
			&d.WatermarkCode, &d.IsApproved, &d.ApprovedBy, &d.ApprovedAt,
			&d.AcademicSession, &d.CreatedAt, &d.UpdatedAt,
			&s.RegNumber, &s.FullName, &s.Email, &s.Phone, &s.Level, &s.ProfileImageURL,
			&s.CreatedAt, &s.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan dues row: %w", err)
		}
		d.Student = &s
		records = append(records, d)
	}
	return records, rows.Err()
}

// Update updates a dues record's mutable fields. Receipt number, watermark
// code and payment reference are never touched.
func (r *DuesRepository) Update(ctx context.Context, d *models.DepartmentalDues) error {
	sql, args, err := r.sb.Update("departmental_dues").
		SetMap(map[string]interface{}{
			"amount_paid":      d.AmountPaid,
			"academic_session": d.AcademicSession,
			"is_approved":      d.IsApproved,
			"approved_by":      d.ApprovedBy,
			"approved_at":      d.ApprovedAt,
			"updated_at":       squirrel.Expr("NOW()"),
		}).
		Where(squirrel.Eq{"id": d.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update dues query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error updating dues ID=%d: %w", d.ID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrDuesNotFound
	}
	return nil
}

// Approve marks a dues record approved, stamping the approving admin and
// the approval time together.
func (r *DuesRepository) Approve(ctx context.Context, id int64, adminID int64, approvedAt time.Time) error {
	sql, args, err := r.sb.Update("departmental_dues").
		SetMap(map[string]interface{}{
			"is_approved": true,
			"approved_by": adminID,
			"approved_at": approvedAt,
			"updated_at":  squirrel.Expr("NOW()"),
		}).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build approve dues query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error approving dues ID=%d: %w", id, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrDuesNotFound
	}
	logger.Info().Int64("duesID", id).Int64("adminID", adminID).Msg("Dues record approved")
	return nil
}

// Delete removes a dues record
func (r *DuesRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("departmental_dues").Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete dues query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error deleting dues ID=%d: %w", id, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrDuesNotFound
	}
	return nil
}

// Counts returns the total, approved and pending dues record counts.
func (r *DuesRepository) Counts(ctx context.Context) (total, approved, pending int64, err error) {
	err = r.db.QueryRow(ctx, `
		SELECT COUNT(*),
		       COUNT(*) FILTER (WHERE is_approved),
		       COUNT(*) FILTER (WHERE NOT is_approved)
		FROM departmental_dues`).Scan(&total, &approved, &pending)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("failed to count dues records: %w", err)
	}
	return total, approved, pending, nil
}
