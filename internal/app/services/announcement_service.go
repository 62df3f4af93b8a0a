package services

import (
	"context"

	"github.com/bmefuto/portal/internal/app/models"
	"github.com/bmefuto/portal/internal/app/models/dto"
	"github.com/bmefuto/portal/internal/app/repositories"
)

// AnnouncementService manages department notices
type AnnouncementService struct {
	repo *repositories.AnnouncementRepository
}

// NewAnnouncementService creates a new AnnouncementService
func NewAnnouncementService(repo *repositories.AnnouncementRepository) *AnnouncementService {
	return &AnnouncementService{repo: repo}
}

// ListActive returns currently active announcements
func (s *AnnouncementService) ListActive(ctx context.Context, limit int) ([]models.Announcement, error) {
	return s.repo.GetActive(ctx, limit)
}

// ListAll returns every announcement for the admin view
func (s *AnnouncementService) ListAll(ctx context.Context) ([]models.Announcement, error) {
	return s.repo.GetAll(ctx)
}

// Get returns one announcement
func (s *AnnouncementService) Get(ctx context.Context, id int64) (*models.Announcement, error) {
	return s.repo.GetByID(ctx, id)
}

// Create publishes an announcement. New announcements are active unless the
// request says otherwise.
func (s *AnnouncementService) Create(ctx context.Context, req *dto.AnnouncementRequest, adminID int64) (*models.Announcement, error) {
	a := &models.Announcement{
		Title:     req.Title,
		Content:   req.Content,
		IsActive:  true,
		CreatedBy: &adminID,
	}
	if req.IsActive != nil {
		a.IsActive = *req.IsActive
	}

	id, err := s.repo.Create(ctx, a)
	if err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, id)
}

// Update edits an announcement
func (s *AnnouncementService) Update(ctx context.Context, id int64, req *dto.AnnouncementRequest) (*models.Announcement, error) {
	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	a.Title = req.Title
	a.Content = req.Content
	if req.IsActive != nil {
		a.IsActive = *req.IsActive
	}

	if err := s.repo.Update(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

// Delete removes an announcement
func (s *AnnouncementService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
