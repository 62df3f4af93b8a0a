package services

import (
	"context"

	"github.com/bmefuto/portal/internal/app/models"
	"github.com/bmefuto/portal/internal/app/models/dto"
	"github.com/bmefuto/portal/internal/app/repositories"
	"github.com/bmefuto/portal/internal/pkg/apperrors"
)

// PastQuestionService manages the past question archive
type PastQuestionService struct {
	repo *repositories.PastQuestionRepository
}

// NewPastQuestionService creates a new PastQuestionService
func NewPastQuestionService(repo *repositories.PastQuestionRepository) *PastQuestionService {
	return &PastQuestionService{repo: repo}
}

func (s *PastQuestionService) validate(level, semester string) error {
	if level != "" && !models.IsValidLevel(models.Level(level)) {
		return apperrors.NewBadRequestError("invalid level")
	}
	if semester != "" && !models.IsValidTerm(models.Term(semester)) {
		return apperrors.NewBadRequestError("invalid semester")
	}
	return nil
}

// List returns a filtered page of past questions along with the total count
// and the distinct years available for filtering.
func (s *PastQuestionService) List(ctx context.Context, filter repositories.PastQuestionFilter, offset, limit int) ([]models.PastQuestion, int64, []int, error) {
	if err := s.validate(filter.Level, filter.Semester); err != nil {
		return nil, 0, nil, err
	}

	questions, err := s.repo.GetAll(ctx, filter, offset, limit)
	if err != nil {
		return nil, 0, nil, err
	}
	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		return nil, 0, nil, err
	}
	years, err := s.repo.DistinctYears(ctx)
	if err != nil {
		return nil, 0, nil, err
	}
	return questions, total, years, nil
}

// Get returns one past question
func (s *PastQuestionService) Get(ctx context.Context, id int64) (*models.PastQuestion, error) {
	return s.repo.GetByID(ctx, id)
}

// Create adds a past question to the archive
func (s *PastQuestionService) Create(ctx context.Context, req *dto.PastQuestionRequest, adminID int64) (*models.PastQuestion, error) {
	if err := s.validate(req.Level, req.Semester); err != nil {
		return nil, err
	}

	q := &models.PastQuestion{
		CourseCode:  req.CourseCode,
		CourseTitle: req.CourseTitle,
		Level:       models.Level(req.Level),
		Semester:    models.Term(req.Semester),
		Year:        req.Year,
		Link:        req.Link,
		Description: req.Description,
		UploadedBy:  &adminID,
	}
	id, err := s.repo.Create(ctx, q)
	if err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, id)
}

// Update edits a past question
func (s *PastQuestionService) Update(ctx context.Context, id int64, req *dto.PastQuestionRequest) (*models.PastQuestion, error) {
	if err := s.validate(req.Level, req.Semester); err != nil {
		return nil, err
	}

	q, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	q.CourseCode = req.CourseCode
	q.CourseTitle = req.CourseTitle
	q.Level = models.Level(req.Level)
	q.Semester = models.Term(req.Semester)
	q.Year = req.Year
	q.Link = req.Link
	q.Description = req.Description

	if err := s.repo.Update(ctx, q); err != nil {
		return nil, err
	}
	return q, nil
}

// Delete removes a past question
func (s *PastQuestionService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
