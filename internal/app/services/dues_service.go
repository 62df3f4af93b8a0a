package services

import (
	"context"
	"errors"
	"time"

	"github.com/bmefuto/portal/internal/app/models"
	"github.com/bmefuto/portal/internal/app/models/dto"
	"github.com/bmefuto/portal/internal/app/repositories"
	"github.com/bmefuto/portal/internal/pkg/apperrors"
	"github.com/bmefuto/portal/internal/pkg/logger"
	"github.com/bmefuto/portal/internal/pkg/validation"
)

// DuesService manages departmental dues records and receipts
type DuesService struct {
	duesRepo      *repositories.DuesRepository
	studentRepo   *repositories.StudentRepository
	defaultAmount float64
}

// NewDuesService creates a new DuesService
func NewDuesService(duesRepo *repositories.DuesRepository, studentRepo *repositories.StudentRepository, defaultAmount float64) *DuesService {
	return &DuesService{
		duesRepo:      duesRepo,
		studentRepo:   studentRepo,
		defaultAmount: defaultAmount,
	}
}

// Create records a dues payment for a student. The receipt number, watermark
// code and payment reference are minted at insert time and never change.
func (s *DuesService) Create(ctx context.Context, req *dto.DuesCreateRequest, adminID int64) (*models.DepartmentalDues, error) {
	if !validation.IsValidSession(req.AcademicSession) {
		return nil, apperrors.NewBadRequestError("session must look like 2023/2024")
	}

	if _, err := s.studentRepo.GetByRegNumber(ctx, req.RegNumber); err != nil {
		return nil, err
	}

	amount := s.defaultAmount
	if req.AmountPaid != nil {
		amount = *req.AmountPaid
	}
	if amount <= 0 {
		return nil, apperrors.NewBadRequestError("amount paid must be positive")
	}

	d := &models.DepartmentalDues{
		RegNumber:       req.RegNumber,
		AmountPaid:      amount,
		AcademicSession: req.AcademicSession,
		IsApproved:      req.IsApproved,
	}
	if req.IsApproved {
		now := time.Now()
		d.ApprovedBy = &adminID
		d.ApprovedAt = &now
	}

	if err := s.duesRepo.CreateWithReceipt(ctx, d); err != nil {
		return nil, err
	}
	return d, nil
}

// Update edits a dues record's mutable fields. Flipping approval on stamps
// the acting admin; flipping it off clears the stamp.
func (s *DuesService) Update(ctx context.Context, id int64, req *dto.DuesUpdateRequest, adminID int64) (*models.DepartmentalDues, error) {
	d, err := s.duesRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.AmountPaid != nil {
		if *req.AmountPaid <= 0 {
			return nil, apperrors.NewBadRequestError("amount paid must be positive")
		}
		d.AmountPaid = *req.AmountPaid
	}
	if req.AcademicSession != nil {
		if !validation.IsValidSession(*req.AcademicSession) {
			return nil, apperrors.NewBadRequestError("session must look like 2023/2024")
		}
		d.AcademicSession = *req.AcademicSession
	}
	if req.IsApproved != nil && *req.IsApproved != d.IsApproved {
		d.IsApproved = *req.IsApproved
		if d.IsApproved {
			now := time.Now()
			d.ApprovedBy = &adminID
			d.ApprovedAt = &now
		} else {
			d.ApprovedBy = nil
			d.ApprovedAt = nil
		}
	}

	if err := s.duesRepo.Update(ctx, d); err != nil {
		return nil, err
	}
	return d, nil
}

// Approve marks a dues record approved on behalf of an admin
func (s *DuesService) Approve(ctx context.Context, id int64, adminID int64) (*models.DepartmentalDues, error) {
	if err := s.duesRepo.Approve(ctx, id, adminID, time.Now()); err != nil {
		return nil, err
	}
	return s.duesRepo.GetByID(ctx, id)
}

// Delete removes a dues record
func (s *DuesService) Delete(ctx context.Context, id int64) error {
	return s.duesRepo.Delete(ctx, id)
}

// List returns every dues record with students attached plus summary counts
func (s *DuesService) List(ctx context.Context) (*dto.DuesListResponse, error) {
	dues, err := s.duesRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	total, approved, pending, err := s.duesRepo.Counts(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.DuesListResponse{
		Dues:          dues,
		TotalCount:    total,
		ApprovedCount: approved,
		PendingCount:  pending,
	}, nil
}

// Receipt returns a student's dues record for the receipt page. A student
// without a record gets a response with Dues unset rather than an error.
func (s *DuesService) Receipt(ctx context.Context, regNumber string) (*dto.ReceiptResponse, error) {
	student, err := s.studentRepo.GetByRegNumber(ctx, regNumber)
	if err != nil {
		return nil, err
	}

	d, err := s.duesRepo.GetByRegNumber(ctx, regNumber)
	if err != nil {
		if errors.Is(err, apperrors.ErrDuesNotFound) {
			return &dto.ReceiptResponse{Student: student}, nil
		}
		return nil, err
	}
	return &dto.ReceiptResponse{Student: student, Dues: d}, nil
}

// PrintableReceipt returns the receipt for printing. Only approved records
// may be printed.
func (s *DuesService) PrintableReceipt(ctx context.Context, regNumber string) (*dto.ReceiptResponse, error) {
	student, err := s.studentRepo.GetByRegNumber(ctx, regNumber)
	if err != nil {
		return nil, err
	}

	d, err := s.duesRepo.GetByRegNumber(ctx, regNumber)
	if err != nil {
		return nil, err
	}
	if !d.IsApproved {
		logger.Warn().Str("regNumber", regNumber).Msg("Print attempt on unapproved dues record")
		return nil, apperrors.ErrDuesNotApproved
	}
	return &dto.ReceiptResponse{Student: student, Dues: d}, nil
}
