package services

import (
	"context"
	"mime/multipart"

	"github.com/bmefuto/portal/internal/app/models"
	"github.com/bmefuto/portal/internal/app/models/dto"
	"github.com/bmefuto/portal/internal/app/repositories"
	"github.com/bmefuto/portal/internal/pkg/apperrors"
	"github.com/bmefuto/portal/internal/pkg/filestorage"
	"github.com/bmefuto/portal/internal/pkg/validation"
)

// TimetableService manages uploaded class and exam timetables
type TimetableService struct {
	repo    *repositories.TimetableRepository
	storage filestorage.Storage
}

// NewTimetableService creates a new TimetableService
func NewTimetableService(repo *repositories.TimetableRepository, storage filestorage.Storage) *TimetableService {
	return &TimetableService{repo: repo, storage: storage}
}

func validateTimetable(req *dto.TimetableRequest) error {
	if !models.IsValidTimetableType(models.TimetableType(req.Type)) {
		return apperrors.NewBadRequestError("invalid timetable type")
	}
	// "All" publishes the timetable to every level
	if req.Level != "" && req.Level != string(models.LevelAll) && !models.IsValidLevel(models.Level(req.Level)) {
		return apperrors.NewBadRequestError("invalid level")
	}
	if !models.IsValidTerm(models.Term(req.Semester)) {
		return apperrors.NewBadRequestError("invalid semester")
	}
	if !validation.IsValidSession(req.AcademicSession) {
		return apperrors.NewBadRequestError("session must look like 2023/2024")
	}
	return nil
}

// ListActive returns active timetables, optionally narrowed by type and
// level. Level "All" records always match.
func (s *TimetableService) ListActive(ctx context.Context, timetableType, level string) ([]models.Timetable, error) {
	if timetableType != "" && !models.IsValidTimetableType(models.TimetableType(timetableType)) {
		return nil, apperrors.NewBadRequestError("invalid timetable type")
	}
	if level != "" && !models.IsValidLevel(models.Level(level)) {
		return nil, apperrors.NewBadRequestError("invalid level")
	}
	return s.repo.ListActive(ctx, timetableType, level)
}

// ListAll returns every timetable for the admin view
func (s *TimetableService) ListAll(ctx context.Context) ([]models.Timetable, error) {
	return s.repo.GetAll(ctx)
}

// Get returns one timetable
func (s *TimetableService) Get(ctx context.Context, id int64) (*models.Timetable, error) {
	return s.repo.GetByID(ctx, id)
}

// Create uploads a timetable. The image is required on creation.
func (s *TimetableService) Create(ctx context.Context, req *dto.TimetableRequest, image *multipart.FileHeader, adminID int64) (*models.Timetable, error) {
	if err := validateTimetable(req); err != nil {
		return nil, err
	}
	if image == nil {
		return nil, apperrors.NewBadRequestError("timetable image is required")
	}

	url, err := s.storage.SaveFileWithPath(image, "timetables")
	if err != nil {
		return nil, err
	}

	level := models.LevelAll
	if req.Level != "" {
		level = models.Level(req.Level)
	}

	t := &models.Timetable{
		Title:           req.Title,
		Type:            models.TimetableType(req.Type),
		Level:           level,
		Semester:        models.Term(req.Semester),
		AcademicSession: req.AcademicSession,
		ImageURL:        url,
		Description:     req.Description,
		IsActive:        true,
		UploadedBy:      &adminID,
	}
	if req.IsActive != nil {
		t.IsActive = *req.IsActive
	}

	id, err := s.repo.Create(ctx, t)
	if err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, id)
}

// Update edits a timetable, replacing the image when a new one is sent
func (s *TimetableService) Update(ctx context.Context, id int64, req *dto.TimetableRequest, image *multipart.FileHeader) (*models.Timetable, error) {
	if err := validateTimetable(req); err != nil {
		return nil, err
	}

	t, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	t.Title = req.Title
	t.Type = models.TimetableType(req.Type)
	if req.Level != "" {
		t.Level = models.Level(req.Level)
	}
	t.Semester = models.Term(req.Semester)
	t.AcademicSession = req.AcademicSession
	t.Description = req.Description
	if req.IsActive != nil {
		t.IsActive = *req.IsActive
	}

	if image != nil {
		url, err := s.storage.SaveFileWithPath(image, "timetables")
		if err != nil {
			return nil, err
		}
		_ = s.storage.DeleteFile(t.ImageURL)
		t.ImageURL = url
	}

	if err := s.repo.Update(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

// Delete removes a timetable and its stored image
func (s *TimetableService) Delete(ctx context.Context, id int64) error {
	t, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	_ = s.storage.DeleteFile(t.ImageURL)
	return nil
}
