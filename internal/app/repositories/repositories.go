package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories is the container for all repository instances
type Repositories struct {
	AdminRepository        *AdminRepository
	StaffRepository        *StaffRepository
	PastQuestionRepository *PastQuestionRepository
	LibraryRepository      *LibraryRepository
	TestimonialRepository  *TestimonialRepository
	AnnouncementRepository *AnnouncementRepository
	StudentRepository      *StudentRepository
	GradebookRepository    *GradebookRepository
	CGPARepository         *CGPARepository
	DuesRepository         *DuesRepository
	HandbookRepository     *HandbookRepository
	TimetableRepository    *TimetableRepository
	CalendarRepository     *CalendarRepository
}

// NewRepositories creates all repositories sharing one connection pool
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		AdminRepository:        NewAdminRepository(db),
		StaffRepository:        NewStaffRepository(db),
		PastQuestionRepository: NewPastQuestionRepository(db),
		LibraryRepository:      NewLibraryRepository(db),
		TestimonialRepository:  NewTestimonialRepository(db),
		AnnouncementRepository: NewAnnouncementRepository(db),
		StudentRepository:      NewStudentRepository(db),
		GradebookRepository:    NewGradebookRepository(db),
		CGPARepository:         NewCGPARepository(db),
		DuesRepository:         NewDuesRepository(db),
		HandbookRepository:     NewHandbookRepository(db),
		TimetableRepository:    NewTimetableRepository(db),
		CalendarRepository:     NewCalendarRepository(db),
	}
}
