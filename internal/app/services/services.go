package services

import (
	"github.com/bmefuto/portal/internal/app/repositories"
	"github.com/bmefuto/portal/internal/config"
	"github.com/bmefuto/portal/internal/pkg/auth"
	"github.com/bmefuto/portal/internal/pkg/filestorage"
)

// Services is the container for all service instances
type Services struct {
	AuthService         *AuthService
	StaffService        *StaffService
	PastQuestionService *PastQuestionService
	LibraryService      *LibraryService
	TestimonialService  *TestimonialService
	AnnouncementService *AnnouncementService
	StudentService      *StudentService
	GradebookService    *GradebookService
	DuesService         *DuesService
	HandbookService     *HandbookService
	TimetableService    *TimetableService
	CalendarService     *CalendarService
	HomeService         *HomeService
}

// NewServices wires all services onto the repositories
func NewServices(repos *repositories.Repositories, cfg *config.Config, jwtService *auth.JWTService, storage filestorage.Storage) *Services {
	return &Services{
		AuthService:         NewAuthService(repos.AdminRepository, repos.StudentRepository, jwtService),
		StaffService:        NewStaffService(repos.StaffRepository, storage),
		PastQuestionService: NewPastQuestionService(repos.PastQuestionRepository),
		LibraryService:      NewLibraryService(repos.LibraryRepository, storage),
		TestimonialService:  NewTestimonialService(repos.TestimonialRepository),
		AnnouncementService: NewAnnouncementService(repos.AnnouncementRepository),
		StudentService:      NewStudentService(repos.StudentRepository, repos.GradebookRepository, repos.CGPARepository, repos.AnnouncementRepository, storage),
		GradebookService:    NewGradebookService(repos.GradebookRepository, repos.CGPARepository),
		DuesService:         NewDuesService(repos.DuesRepository, repos.StudentRepository, cfg.Dues.DefaultAmount),
		HandbookService:     NewHandbookService(repos.HandbookRepository),
		TimetableService:    NewTimetableService(repos.TimetableRepository, storage),
		CalendarService:     NewCalendarService(repos.CalendarRepository, storage),
		HomeService:         NewHomeService(repos),
	}
}
