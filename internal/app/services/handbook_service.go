package services

import (
	"context"

	"github.com/bmefuto/portal/internal/app/models"
	"github.com/bmefuto/portal/internal/app/models/dto"
	"github.com/bmefuto/portal/internal/app/repositories"
	"github.com/bmefuto/portal/internal/pkg/apperrors"
)

// HandbookService manages the departmental course handbook
type HandbookService struct {
	repo *repositories.HandbookRepository
}

// NewHandbookService creates a new HandbookService
func NewHandbookService(repo *repositories.HandbookRepository) *HandbookService {
	return &HandbookService{repo: repo}
}

func validateHandbook(req *dto.HandbookRequest) error {
	if !models.IsValidLevel(models.Level(req.Level)) {
		return apperrors.NewBadRequestError("invalid level")
	}
	if !models.IsValidTerm(models.Term(req.Semester)) {
		return apperrors.NewBadRequestError("invalid semester")
	}
	if req.CourseType != "" && !models.IsValidCourseType(models.CourseType(req.CourseType)) {
		return apperrors.NewBadRequestError("invalid course type")
	}
	return nil
}

// View returns the handbook entries for one level and semester plus their
// total credit load.
func (s *HandbookService) View(ctx context.Context, level, semester string) (*dto.HandbookViewResponse, error) {
	if !models.IsValidLevel(models.Level(level)) {
		return nil, apperrors.NewBadRequestError("invalid level")
	}
	if !models.IsValidTerm(models.Term(semester)) {
		return nil, apperrors.NewBadRequestError("invalid semester")
	}

	entries, err := s.repo.ListByLevelSemester(ctx, level, semester)
	if err != nil {
		return nil, err
	}

	totalCredits := 0
	for _, e := range entries {
		totalCredits += e.CreditUnit
	}

	return &dto.HandbookViewResponse{
		Courses:      entries,
		Level:        level,
		Semester:     semester,
		TotalCredits: totalCredits,
	}, nil
}

// ListAll returns the whole handbook for the admin view
func (s *HandbookService) ListAll(ctx context.Context) ([]models.CourseHandbook, error) {
	return s.repo.GetAll(ctx)
}

// Get returns one handbook entry
func (s *HandbookService) Get(ctx context.Context, id int64) (*models.CourseHandbook, error) {
	return s.repo.GetByID(ctx, id)
}

// Create adds a handbook entry
func (s *HandbookService) Create(ctx context.Context, req *dto.HandbookRequest, adminID int64) (*models.CourseHandbook, error) {
	if err := validateHandbook(req); err != nil {
		return nil, err
	}

	courseType := models.CourseTypeCore
	if req.CourseType != "" {
		courseType = models.CourseType(req.CourseType)
	}

	h := &models.CourseHandbook{
		Level:       models.Level(req.Level),
		Semester:    models.Term(req.Semester),
		CourseCode:  req.CourseCode,
		CourseTitle: req.CourseTitle,
		CreditUnit:  req.CreditUnit,
		CourseType:  courseType,
		Description: req.Description,
		UploadedBy:  &adminID,
	}
	id, err := s.repo.Create(ctx, h)
	if err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, id)
}

// Update edits a handbook entry
func (s *HandbookService) Update(ctx context.Context, id int64, req *dto.HandbookRequest) (*models.CourseHandbook, error) {
	if err := validateHandbook(req); err != nil {
		return nil, err
	}

	h, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	h.Level = models.Level(req.Level)
	h.Semester = models.Term(req.Semester)
	h.CourseCode = req.CourseCode
	h.CourseTitle = req.CourseTitle
	h.CreditUnit = req.CreditUnit
	if req.CourseType != "" {
		h.CourseType = models.CourseType(req.CourseType)
	}
	h.Description = req.Description

	if err := s.repo.Update(ctx, h); err != nil {
		return nil, err
	}
	return h, nil
}

// Delete removes a handbook entry
func (s *HandbookService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
