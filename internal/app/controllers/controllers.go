package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/bmefuto/portal/internal/app/services"
	"github.com/bmefuto/portal/internal/pkg/apperrors"
)

// Controllers is the container for all HTTP controllers
type Controllers struct {
	AuthController         *AuthController
	HomeController         *HomeController
	StaffController        *StaffController
	PastQuestionController *PastQuestionController
	LibraryController      *LibraryController
	TestimonialController  *TestimonialController
	AnnouncementController *AnnouncementController
	HandbookController     *HandbookController
	TimetableController    *TimetableController
	CalendarController     *CalendarController
	StudentController      *StudentController
	GradebookController    *GradebookController
	DuesController         *DuesController
}

// NewControllers wires all controllers onto the services
func NewControllers(svc *services.Services) *Controllers {
	return &Controllers{
		AuthController:         NewAuthController(svc.AuthService),
		HomeController:         NewHomeController(svc.HomeService),
		StaffController:        NewStaffController(svc.StaffService),
		PastQuestionController: NewPastQuestionController(svc.PastQuestionService),
		LibraryController:      NewLibraryController(svc.LibraryService),
		TestimonialController:  NewTestimonialController(svc.TestimonialService),
		AnnouncementController: NewAnnouncementController(svc.AnnouncementService),
		HandbookController:     NewHandbookController(svc.HandbookService),
		TimetableController:    NewTimetableController(svc.TimetableService),
		CalendarController:     NewCalendarController(svc.CalendarService),
		StudentController:      NewStudentController(svc.StudentService),
		GradebookController:    NewGradebookController(svc.GradebookService),
		DuesController:         NewDuesController(svc.DuesService),
	}
}

// parseIDParam reads a positive integer path parameter
func parseIDParam(c *gin.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id < 1 {
		return 0, apperrors.NewBadRequestError("invalid " + name + " parameter")
	}
	return id, nil
}
