package services

import (
	"context"

	"github.com/bmefuto/portal/internal/app/models/dto"
	"github.com/bmefuto/portal/internal/app/repositories"
)

// HomeService assembles the aggregate payloads behind the public homepage
// and the admin dashboard.
type HomeService struct {
	repos *repositories.Repositories
}

// NewHomeService creates a new HomeService
func NewHomeService(repos *repositories.Repositories) *HomeService {
	return &HomeService{repos: repos}
}

// Home builds the homepage payload: featured testimonials, active
// announcements, a sample of staff, excos and resources, plus counters.
func (s *HomeService) Home(ctx context.Context) (*dto.HomeResponse, error) {
	testimonials, err := s.repos.TestimonialRepository.GetApproved(ctx, 6)
	if err != nil {
		return nil, err
	}
	announcements, err := s.repos.AnnouncementRepository.GetActive(ctx, 5)
	if err != nil {
		return nil, err
	}
	staff, err := s.repos.StaffRepository.GetAllStaff(ctx, 4)
	if err != nil {
		return nil, err
	}
	excos, err := s.repos.StaffRepository.GetAllExcos(ctx, 4)
	if err != nil {
		return nil, err
	}
	resources, err := s.repos.LibraryRepository.GetAll(ctx, repositories.LibraryFilter{}, 0, 4)
	if err != nil {
		return nil, err
	}
	questions, err := s.repos.PastQuestionRepository.GetAll(ctx, repositories.PastQuestionFilter{}, 0, 4)
	if err != nil {
		return nil, err
	}

	staffCount, err := s.repos.StaffRepository.CountStaff(ctx)
	if err != nil {
		return nil, err
	}
	studentCount, err := s.repos.StudentRepository.Count(ctx)
	if err != nil {
		return nil, err
	}
	resourceCount, err := s.repos.LibraryRepository.Count(ctx, repositories.LibraryFilter{})
	if err != nil {
		return nil, err
	}
	questionCount, err := s.repos.PastQuestionRepository.Count(ctx, repositories.PastQuestionFilter{})
	if err != nil {
		return nil, err
	}
	byLevel, err := s.repos.PastQuestionRepository.CountByLevel(ctx)
	if err != nil {
		return nil, err
	}

	return &dto.HomeResponse{
		Testimonials:    testimonials,
		Announcements:   announcements,
		RecentStaff:     staff,
		CurrentExcos:    excos,
		RecentResources: resources,
		RecentQuestions: questions,
		Stats: dto.HomeStats{
			TotalStaff:     staffCount,
			TotalStudents:  studentCount,
			TotalResources: resourceCount,
			TotalQuestions: questionCount,
		},
		QuestionsByLevel: byLevel,
	}, nil
}

// AdminDashboard builds the back-office counters
func (s *HomeService) AdminDashboard(ctx context.Context) (*dto.AdminDashboardStats, error) {
	staffCount, err := s.repos.StaffRepository.CountStaff(ctx)
	if err != nil {
		return nil, err
	}
	excoCount, err := s.repos.StaffRepository.CountExcos(ctx)
	if err != nil {
		return nil, err
	}
	questionCount, err := s.repos.PastQuestionRepository.Count(ctx, repositories.PastQuestionFilter{})
	if err != nil {
		return nil, err
	}
	libraryCount, err := s.repos.LibraryRepository.Count(ctx, repositories.LibraryFilter{})
	if err != nil {
		return nil, err
	}
	pendingTestimonials, err := s.repos.TestimonialRepository.CountPending(ctx)
	if err != nil {
		return nil, err
	}
	activeAnnouncements, err := s.repos.AnnouncementRepository.CountActive(ctx)
	if err != nil {
		return nil, err
	}

	return &dto.AdminDashboardStats{
		StaffCount:          staffCount,
		ExcoCount:           excoCount,
		PastQuestionCount:   questionCount,
		LibraryCount:        libraryCount,
		PendingTestimonials: pendingTestimonials,
		ActiveAnnouncements: activeAnnouncements,
	}, nil
}
