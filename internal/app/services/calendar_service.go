package services

import (
	"context"
	"errors"
	"mime/multipart"

	"github.com/bmefuto/portal/internal/app/models"
	"github.com/bmefuto/portal/internal/app/models/dto"
	"github.com/bmefuto/portal/internal/app/repositories"
	"github.com/bmefuto/portal/internal/pkg/apperrors"
	"github.com/bmefuto/portal/internal/pkg/filestorage"
	"github.com/bmefuto/portal/internal/pkg/validation"
)

// CalendarService manages academic calendars. At most one calendar is active
// at any moment; the repository's transactional writes keep that true.
type CalendarService struct {
	repo    *repositories.CalendarRepository
	storage filestorage.Storage
}

// NewCalendarService creates a new CalendarService
func NewCalendarService(repo *repositories.CalendarRepository, storage filestorage.Storage) *CalendarService {
	return &CalendarService{repo: repo, storage: storage}
}

// View returns the public calendar page data: the active calendar, if any,
// plus recent uploads.
func (s *CalendarService) View(ctx context.Context) (*dto.CalendarViewResponse, error) {
	recent, err := s.repo.ListRecent(ctx, 5)
	if err != nil {
		return nil, err
	}

	resp := &dto.CalendarViewResponse{Recent: recent}
	active, err := s.repo.GetActive(ctx)
	if err != nil {
		if !errors.Is(err, apperrors.ErrCalendarNotFound) {
			return nil, err
		}
	} else {
		resp.Active = active
	}
	return resp, nil
}

// ListAll returns every calendar for the admin view
func (s *CalendarService) ListAll(ctx context.Context) ([]models.AcademicCalendar, error) {
	return s.repo.GetAll(ctx)
}

// Get returns one calendar
func (s *CalendarService) Get(ctx context.Context, id int64) (*models.AcademicCalendar, error) {
	return s.repo.GetByID(ctx, id)
}

// Create uploads a calendar. New calendars are active by default, which
// deactivates any previously active one.
func (s *CalendarService) Create(ctx context.Context, req *dto.CalendarRequest, image *multipart.FileHeader, adminID int64) (*models.AcademicCalendar, error) {
	if !validation.IsValidSession(req.AcademicSession) {
		return nil, apperrors.NewBadRequestError("session must look like 2023/2024")
	}
	if image == nil {
		return nil, apperrors.NewBadRequestError("calendar image is required")
	}

	url, err := s.storage.SaveFileWithPath(image, "calendars")
	if err != nil {
		return nil, err
	}

	c := &models.AcademicCalendar{
		Title:           req.Title,
		AcademicSession: req.AcademicSession,
		ImageURL:        url,
		Description:     req.Description,
		IsActive:        true,
		UploadedBy:      &adminID,
	}
	if req.IsActive != nil {
		c.IsActive = *req.IsActive
	}

	if err := s.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, c.ID)
}

// Update edits a calendar, replacing the image when a new one is sent.
// Activating a calendar deactivates every other one.
func (s *CalendarService) Update(ctx context.Context, id int64, req *dto.CalendarRequest, image *multipart.FileHeader) (*models.AcademicCalendar, error) {
	if !validation.IsValidSession(req.AcademicSession) {
		return nil, apperrors.NewBadRequestError("session must look like 2023/2024")
	}

	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	c.Title = req.Title
	c.AcademicSession = req.AcademicSession
	c.Description = req.Description
	if req.IsActive != nil {
		c.IsActive = *req.IsActive
	}

	if image != nil {
		url, err := s.storage.SaveFileWithPath(image, "calendars")
		if err != nil {
			return nil, err
		}
		_ = s.storage.DeleteFile(c.ImageURL)
		c.ImageURL = url
	}

	if err := s.repo.Update(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// Delete removes a calendar and its stored image
func (s *CalendarService) Delete(ctx context.Context, id int64) error {
	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	_ = s.storage.DeleteFile(c.ImageURL)
	return nil
}
