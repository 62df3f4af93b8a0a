package services

import (
	"context"

	"github.com/bmefuto/portal/internal/app/models"
	"github.com/bmefuto/portal/internal/app/models/dto"
	"github.com/bmefuto/portal/internal/app/repositories"
)

// TestimonialService manages visitor testimonials and their approval queue
type TestimonialService struct {
	repo *repositories.TestimonialRepository
}

// NewTestimonialService creates a new TestimonialService
func NewTestimonialService(repo *repositories.TestimonialRepository) *TestimonialService {
	return &TestimonialService{repo: repo}
}

// Submit files a new testimonial. It stays hidden until an admin approves it.
func (s *TestimonialService) Submit(ctx context.Context, req *dto.TestimonialRequest) (*models.Testimonial, error) {
	t := &models.Testimonial{
		Name:       req.Name,
		Message:    req.Message,
		Rating:     req.Rating,
		IsApproved: false,
	}
	id, err := s.repo.Create(ctx, t)
	if err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, id)
}

// ListApproved returns approved testimonials for public display
func (s *TestimonialService) ListApproved(ctx context.Context, limit int) ([]models.Testimonial, error) {
	return s.repo.GetApproved(ctx, limit)
}

// ListAll returns every testimonial for the admin review queue
func (s *TestimonialService) ListAll(ctx context.Context) ([]models.Testimonial, error) {
	return s.repo.GetAll(ctx)
}

// Approve approves a single testimonial
func (s *TestimonialService) Approve(ctx context.Context, id int64) error {
	return s.repo.SetApproved(ctx, id, true)
}

// Unapprove hides a single testimonial again
func (s *TestimonialService) Unapprove(ctx context.Context, id int64) error {
	return s.repo.SetApproved(ctx, id, false)
}

// SetApprovedBatch approves or hides a set of testimonials at once and
// returns how many records changed.
func (s *TestimonialService) SetApprovedBatch(ctx context.Context, req *dto.TestimonialBatchRequest) (int64, error) {
	return s.repo.SetApprovedBatch(ctx, req.IDs, req.Approved)
}

// Delete removes a testimonial
func (s *TestimonialService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
