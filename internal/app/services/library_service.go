package services

import (
	"context"
	"mime/multipart"

	"github.com/bmefuto/portal/internal/app/models"
	"github.com/bmefuto/portal/internal/app/models/dto"
	"github.com/bmefuto/portal/internal/app/repositories"
	"github.com/bmefuto/portal/internal/pkg/apperrors"
	"github.com/bmefuto/portal/internal/pkg/filestorage"
)

// LibraryService manages the e-library resource catalogue
type LibraryService struct {
	repo    *repositories.LibraryRepository
	storage filestorage.Storage
}

// NewLibraryService creates a new LibraryService
func NewLibraryService(repo *repositories.LibraryRepository, storage filestorage.Storage) *LibraryService {
	return &LibraryService{repo: repo, storage: storage}
}

func (s *LibraryService) validate(category string, level *string) error {
	if !models.IsValidResourceCategory(models.ResourceCategory(category)) {
		return apperrors.NewBadRequestError("invalid resource category")
	}
	if level != nil && *level != "" && !models.IsValidLevel(models.Level(*level)) {
		return apperrors.NewBadRequestError("invalid level")
	}
	return nil
}

// List returns a filtered page of library resources plus the total count
func (s *LibraryService) List(ctx context.Context, filter repositories.LibraryFilter, offset, limit int) ([]models.LibraryResource, int64, error) {
	if filter.Category != "" && !models.IsValidResourceCategory(models.ResourceCategory(filter.Category)) {
		return nil, 0, apperrors.NewBadRequestError("invalid resource category")
	}
	if filter.Level != "" && !models.IsValidLevel(models.Level(filter.Level)) {
		return nil, 0, apperrors.NewBadRequestError("invalid level")
	}

	resources, err := s.repo.GetAll(ctx, filter, offset, limit)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	return resources, total, nil
}

// Get returns one library resource
func (s *LibraryService) Get(ctx context.Context, id int64) (*models.LibraryResource, error) {
	return s.repo.GetByID(ctx, id)
}

// Create adds a library resource. A cover image, if sent, is stored locally.
func (s *LibraryService) Create(ctx context.Context, req *dto.LibraryResourceRequest, cover *multipart.FileHeader, adminID int64) (*models.LibraryResource, error) {
	if err := s.validate(req.Category, req.Level); err != nil {
		return nil, err
	}

	res := &models.LibraryResource{
		Title:       req.Title,
		Author:      req.Author,
		Category:    models.ResourceCategory(req.Category),
		Description: req.Description,
		Link:        req.Link,
		UploadedBy:  &adminID,
	}
	if req.Level != nil && *req.Level != "" {
		level := models.Level(*req.Level)
		res.Level = &level
	}

	if cover != nil {
		url, err := s.storage.SaveFileWithPath(cover, "library")
		if err != nil {
			return nil, err
		}
		res.CoverImageURL = &url
	}

	id, err := s.repo.Create(ctx, res)
	if err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, id)
}

// Update edits a library resource, replacing the cover when a new one is sent
func (s *LibraryService) Update(ctx context.Context, id int64, req *dto.LibraryResourceRequest, cover *multipart.FileHeader) (*models.LibraryResource, error) {
	if err := s.validate(req.Category, req.Level); err != nil {
		return nil, err
	}

	res, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	res.Title = req.Title
	res.Author = req.Author
	res.Category = models.ResourceCategory(req.Category)
	res.Description = req.Description
	res.Link = req.Link
	res.Level = nil
	if req.Level != nil && *req.Level != "" {
		level := models.Level(*req.Level)
		res.Level = &level
	}

	if cover != nil {
		url, err := s.storage.SaveFileWithPath(cover, "library")
		if err != nil {
			return nil, err
		}
		if res.CoverImageURL != nil {
			_ = s.storage.DeleteFile(*res.CoverImageURL)
		}
		res.CoverImageURL = &url
	}

	if err := s.repo.Update(ctx, res); err != nil {
		return nil, err
	}
	return res, nil
}

// Delete removes a library resource and its stored cover
func (s *LibraryService) Delete(ctx context.Context, id int64) error {
	res, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	if res.CoverImageURL != nil {
		_ = s.storage.DeleteFile(*res.CoverImageURL)
	}
	return nil
}
