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

// StaffService manages the public staff and exco listings
type StaffService struct {
	staffRepo *repositories.StaffRepository
	storage   filestorage.Storage
}

// NewStaffService creates a new StaffService
func NewStaffService(staffRepo *repositories.StaffRepository, storage filestorage.Storage) *StaffService {
	return &StaffService{staffRepo: staffRepo, storage: storage}
}

// ListStaff returns all staff in display order
func (s *StaffService) ListStaff(ctx context.Context) ([]models.Staff, error) {
	return s.staffRepo.GetAllStaff(ctx, 0)
}

// GetStaff returns one staff member
func (s *StaffService) GetStaff(ctx context.Context, id int64) (*models.Staff, error) {
	return s.staffRepo.GetStaffByID(ctx, id)
}

// CreateStaff creates a staff member, storing the portrait if one was sent
func (s *StaffService) CreateStaff(ctx context.Context, req *dto.StaffRequest, image *multipart.FileHeader) (*models.Staff, error) {
	staff := &models.Staff{
		Name:         req.Name,
		Position:     req.Position,
		Bio:          req.Bio,
		Email:        req.Email,
		Phone:        req.Phone,
		DisplayOrder: req.DisplayOrder,
	}

	if image != nil {
		url, err := s.storage.SaveFileWithPath(image, "staff")
		if err != nil {
			return nil, err
		}
		staff.ImageURL = &url
	}

	id, err := s.staffRepo.CreateStaff(ctx, staff)
	if err != nil {
		return nil, err
	}
	return s.staffRepo.GetStaffByID(ctx, id)
}

// UpdateStaff updates a staff member, replacing the portrait when a new one
// is sent.
func (s *StaffService) UpdateStaff(ctx context.Context, id int64, req *dto.StaffRequest, image *multipart.FileHeader) (*models.Staff, error) {
	staff, err := s.staffRepo.GetStaffByID(ctx, id)
	if err != nil {
		return nil, err
	}

	staff.Name = req.Name
	staff.Position = req.Position
	staff.Bio = req.Bio
	staff.Email = req.Email
	staff.Phone = req.Phone
	staff.DisplayOrder = req.DisplayOrder

	if image != nil {
		url, err := s.storage.SaveFileWithPath(image, "staff")
		if err != nil {
			return nil, err
		}
		if staff.ImageURL != nil {
			_ = s.storage.DeleteFile(*staff.ImageURL)
		}
		staff.ImageURL = &url
	}

	if err := s.staffRepo.UpdateStaff(ctx, staff); err != nil {
		return nil, err
	}
	return staff, nil
}

// DeleteStaff removes a staff member and their stored portrait
func (s *StaffService) DeleteStaff(ctx context.Context, id int64) error {
	staff, err := s.staffRepo.GetStaffByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.staffRepo.DeleteStaff(ctx, id); err != nil {
		return err
	}
	if staff.ImageURL != nil {
		_ = s.storage.DeleteFile(*staff.ImageURL)
	}
	return nil
}

// ListExcos returns all excos in display order
func (s *StaffService) ListExcos(ctx context.Context) ([]models.Exco, error) {
	return s.staffRepo.GetAllExcos(ctx, 0)
}

// GetExco returns one exco
func (s *StaffService) GetExco(ctx context.Context, id int64) (*models.Exco, error) {
	return s.staffRepo.GetExcoByID(ctx, id)
}

// CreateExco creates an exco for an academic session
func (s *StaffService) CreateExco(ctx context.Context, req *dto.ExcoRequest, image *multipart.FileHeader) (*models.Exco, error) {
	if !validation.IsValidSession(req.Session) {
		return nil, apperrors.NewBadRequestError("session must look like 2023/2024")
	}

	exco := &models.Exco{
		Name:         req.Name,
		Position:     req.Position,
		Bio:          req.Bio,
		Email:        req.Email,
		Phone:        req.Phone,
		Session:      req.Session,
		DisplayOrder: req.DisplayOrder,
	}

	if image != nil {
		url, err := s.storage.SaveFileWithPath(image, "excos")
		if err != nil {
			return nil, err
		}
		exco.ImageURL = &url
	}

	id, err := s.staffRepo.CreateExco(ctx, exco)
	if err != nil {
		return nil, err
	}
	return s.staffRepo.GetExcoByID(ctx, id)
}

// UpdateExco updates an exco
func (s *StaffService) UpdateExco(ctx context.Context, id int64, req *dto.ExcoRequest, image *multipart.FileHeader) (*models.Exco, error) {
	if !validation.IsValidSession(req.Session) {
		return nil, apperrors.NewBadRequestError("session must look like 2023/2024")
	}

	exco, err := s.staffRepo.GetExcoByID(ctx, id)
	if err != nil {
		return nil, err
	}

	exco.Name = req.Name
	exco.Position = req.Position
	exco.Bio = req.Bio
	exco.Email = req.Email
	exco.Phone = req.Phone
	exco.Session = req.Session
	exco.DisplayOrder = req.DisplayOrder

	if image != nil {
		url, err := s.storage.SaveFileWithPath(image, "excos")
		if err != nil {
			return nil, err
		}
		if exco.ImageURL != nil {
			_ = s.storage.DeleteFile(*exco.ImageURL)
		}
		exco.ImageURL = &url
	}

	if err := s.staffRepo.UpdateExco(ctx, exco); err != nil {
		return nil, err
	}
	return exco, nil
}

// DeleteExco removes an exco and their stored portrait
func (s *StaffService) DeleteExco(ctx context.Context, id int64) error {
	exco, err := s.staffRepo.GetExcoByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.staffRepo.DeleteExco(ctx, id); err != nil {
		return err
	}
	if exco.ImageURL != nil {
		_ = s.storage.DeleteFile(*exco.ImageURL)
	}
	return nil
}
