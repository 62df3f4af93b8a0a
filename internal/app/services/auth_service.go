package services

import (
	"context"
	"errors"
	"strings"

	"github.com/bmefuto/portal/internal/app/models"
	"github.com/bmefuto/portal/internal/app/models/dto"
	"github.com/bmefuto/portal/internal/app/repositories"
	"github.com/bmefuto/portal/internal/pkg/apperrors"
	"github.com/bmefuto/portal/internal/pkg/auth"
	"github.com/bmefuto/portal/internal/pkg/logger"
	"github.com/bmefuto/portal/internal/pkg/validation"
)

// AuthService issues session tokens for admins and students.
//
// Admin accounts carry a real password check. Student accounts do not:
// knowing a registered registration number is the whole credential. That is
// a deliberate property of the portal, not an oversight.
type AuthService struct {
	adminRepo   *repositories.AdminRepository
	studentRepo *repositories.StudentRepository
	jwtService  *auth.JWTService
}

// NewAuthService creates a new AuthService
func NewAuthService(adminRepo *repositories.AdminRepository, studentRepo *repositories.StudentRepository, jwtService *auth.JWTService) *AuthService {
	return &AuthService{
		adminRepo:   adminRepo,
		studentRepo: studentRepo,
		jwtService:  jwtService,
	}
}

// AdminLogin checks admin credentials and issues an admin token
func (s *AuthService) AdminLogin(ctx context.Context, req *dto.AdminLoginRequest) (*dto.TokenResponse, error) {
	admin, err := s.adminRepo.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, apperrors.ErrAdminNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if !auth.CheckPassword(admin.PasswordHash, req.Password) {
		logger.Warn().Str("username", req.Username).Msg("Failed admin login attempt")
		return nil, apperrors.ErrInvalidCredentials
	}

	token, expiresIn, err := s.jwtService.GenerateAdminToken(admin.ID, admin.Username)
	if err != nil {
		return nil, err
	}
	logger.Info().Str("username", admin.Username).Msg("Admin logged in")
	return &dto.TokenResponse{Token: token, ExpiresIn: expiresIn, Role: auth.RoleAdmin}, nil
}

// StudentRegister creates a student account and issues a student token. The
// registration number is typed twice and must match exactly.
func (s *AuthService) StudentRegister(ctx context.Context, req *dto.StudentRegisterRequest) (*dto.TokenResponse, *models.Student, error) {
	regNumber := strings.TrimSpace(req.RegNumber)
	if regNumber != strings.TrimSpace(req.RegNumberConfirm) {
		return nil, nil, apperrors.ErrRegNumberMismatch
	}
	if !validation.IsValidRegNumber(regNumber) {
		return nil, nil, apperrors.ErrInvalidRegNumber
	}
	if !models.IsValidLevel(models.Level(req.Level)) {
		return nil, nil, apperrors.NewBadRequestError("invalid level")
	}
	if req.Email != nil && *req.Email != "" && !validation.IsValidEmail(*req.Email) {
		return nil, nil, apperrors.NewBadRequestError("invalid email address")
	}

	student := &models.Student{
		RegNumber: regNumber,
		FullName:  strings.TrimSpace(req.FullName),
		Email:     req.Email,
		Phone:     req.Phone,
		Level:     models.Level(req.Level),
	}
	if err := s.studentRepo.Create(ctx, student); err != nil {
		return nil, nil, err
	}

	token, expiresIn, err := s.jwtService.GenerateStudentToken(regNumber)
	if err != nil {
		return nil, nil, err
	}
	return &dto.TokenResponse{Token: token, ExpiresIn: expiresIn, Role: auth.RoleStudent}, student, nil
}

// StudentLogin issues a student token when the registration number exists
func (s *AuthService) StudentLogin(ctx context.Context, req *dto.StudentLoginRequest) (*dto.TokenResponse, *models.Student, error) {
	regNumber := strings.TrimSpace(req.RegNumber)
	student, err := s.studentRepo.GetByRegNumber(ctx, regNumber)
	if err != nil {
		if errors.Is(err, apperrors.ErrStudentNotFound) {
			return nil, nil, apperrors.ErrInvalidCredentials
		}
		return nil, nil, err
	}

	token, expiresIn, err := s.jwtService.GenerateStudentToken(student.RegNumber)
	if err != nil {
		return nil, nil, err
	}
	logger.Info().Str("regNumber", student.RegNumber).Msg("Student logged in")
	return &dto.TokenResponse{Token: token, ExpiresIn: expiresIn, Role: auth.RoleStudent}, student, nil
}
