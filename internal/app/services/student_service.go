package services

import (
	"context"
	"errors"
	"mime/multipart"

	"github.com/bmefuto/portal/internal/app/gpa"
	"github.com/bmefuto/portal/internal/app/models"
	"github.com/bmefuto/portal/internal/app/models/dto"
	"github.com/bmefuto/portal/internal/app/repositories"
	"github.com/bmefuto/portal/internal/pkg/apperrors"
	"github.com/bmefuto/portal/internal/pkg/filestorage"
	"github.com/bmefuto/portal/internal/pkg/validation"
)

// StudentService manages student profiles and the portal dashboard
type StudentService struct {
	studentRepo      *repositories.StudentRepository
	gradebookRepo    *repositories.GradebookRepository
	cgpaRepo         *repositories.CGPARepository
	announcementRepo *repositories.AnnouncementRepository
	storage          filestorage.Storage
}

// NewStudentService creates a new StudentService
func NewStudentService(
	studentRepo *repositories.StudentRepository,
	gradebookRepo *repositories.GradebookRepository,
	cgpaRepo *repositories.CGPARepository,
	announcementRepo *repositories.AnnouncementRepository,
	storage filestorage.Storage,
) *StudentService {
	return &StudentService{
		studentRepo:      studentRepo,
		gradebookRepo:    gradebookRepo,
		cgpaRepo:         cgpaRepo,
		announcementRepo: announcementRepo,
		storage:          storage,
	}
}

// GetProfile returns the student's own profile
func (s *StudentService) GetProfile(ctx context.Context, regNumber string) (*models.Student, error) {
	return s.studentRepo.GetByRegNumber(ctx, regNumber)
}

// UpdateProfile updates the student's own profile. The registration number
// never changes.
func (s *StudentService) UpdateProfile(ctx context.Context, regNumber string, req *dto.StudentProfileRequest, image *multipart.FileHeader) (*models.Student, error) {
	if !models.IsValidLevel(models.Level(req.Level)) {
		return nil, apperrors.NewBadRequestError("invalid level")
	}
	if req.Email != nil && *req.Email != "" && !validation.IsValidEmail(*req.Email) {
		return nil, apperrors.NewBadRequestError("invalid email address")
	}

	student, err := s.studentRepo.GetByRegNumber(ctx, regNumber)
	if err != nil {
		return nil, err
	}

	student.FullName = req.FullName
	student.Level = models.Level(req.Level)
	student.Email = req.Email
	student.Phone = req.Phone

	if image != nil {
		url, err := s.storage.SaveFileWithPath(image, "students")
		if err != nil {
			return nil, err
		}
		if student.ProfileImageURL != nil {
			_ = s.storage.DeleteFile(*student.ProfileImageURL)
		}
		student.ProfileImageURL = &url
	}

	if err := s.studentRepo.Update(ctx, student); err != nil {
		return nil, err
	}
	return student, nil
}

// DeleteAccount removes the student's account and everything hanging off it
func (s *StudentService) DeleteAccount(ctx context.Context, regNumber string) error {
	student, err := s.studentRepo.GetByRegNumber(ctx, regNumber)
	if err != nil {
		return err
	}
	if err := s.studentRepo.Delete(ctx, regNumber); err != nil {
		return err
	}
	if student.ProfileImageURL != nil {
		_ = s.storage.DeleteFile(*student.ProfileImageURL)
	}
	return nil
}

// Dashboard assembles the portal landing view: profile, semester summaries,
// a live CGPA over current gradebook data, the latest stored snapshot and
// active announcements.
func (s *StudentService) Dashboard(ctx context.Context, regNumber string) (*dto.DashboardResponse, error) {
	student, err := s.studentRepo.GetByRegNumber(ctx, regNumber)
	if err != nil {
		return nil, err
	}

	semesters, err := s.gradebookRepo.ListSemestersWithCourses(ctx, regNumber)
	if err != nil {
		return nil, err
	}

	summaries := make([]dto.DashboardSemester, 0, len(semesters))
	for _, sem := range semesters {
		credits, _ := gpa.Totals(sem.Courses)
		summaries = append(summaries, dto.DashboardSemester{
			ID:          sem.ID,
			Name:        sem.Name,
			GPA:         gpa.Compute(sem.Courses),
			CourseCount: len(sem.Courses),
			Credits:     credits,
		})
	}

	cgpa, totalCredits, _ := gpa.Cumulative(semesters)

	latest, err := s.cgpaRepo.GetLatest(ctx, regNumber)
	if err != nil {
		if !errors.Is(err, apperrors.ErrResourceNotFound) {
			return nil, err
		}
		latest = nil
	}

	announcements, err := s.announcementRepo.GetActive(ctx, 5)
	if err != nil {
		return nil, err
	}

	return &dto.DashboardResponse{
		Student:        student,
		Semesters:      summaries,
		CGPA:           cgpa,
		TotalCredits:   totalCredits,
		LatestSnapshot: latest,
		Announcements:  announcements,
	}, nil
}
