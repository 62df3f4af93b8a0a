package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/bmefuto/portal/internal/app/controllers"
	"github.com/bmefuto/portal/internal/middleware"
)

// SetupRoutes registers every endpoint on the router.
//
// Mutations go through POST. Public content is readable without a token;
// /portal/* requires a student token and /admin/* an admin token.
func SetupRoutes(router *gin.Engine, ctrl *controllers.Controllers, authMW *middleware.AuthMiddleware) {
	v1 := router.Group("/api/v1")
	v1.Use(middleware.HandleAPIError())

	// Public site
	v1.GET("/home", ctrl.HomeController.Home)
	v1.GET("/staff", ctrl.StaffController.ListStaff)
	v1.GET("/staff/:id", ctrl.StaffController.GetStaff)
	v1.GET("/excos", ctrl.StaffController.ListExcos)
	v1.GET("/excos/:id", ctrl.StaffController.GetExco)
	v1.GET("/past-questions", ctrl.PastQuestionController.List)
	v1.GET("/past-questions/:id", ctrl.PastQuestionController.Get)
	v1.GET("/library", ctrl.LibraryController.List)
	v1.GET("/library/:id", ctrl.LibraryController.Get)
	v1.GET("/testimonials", ctrl.TestimonialController.ListApproved)
	v1.POST("/testimonials", ctrl.TestimonialController.Submit)
	v1.GET("/announcements", ctrl.AnnouncementController.ListActive)
	v1.GET("/handbook", ctrl.HandbookController.View)
	v1.GET("/timetables", ctrl.TimetableController.ListActive)
	v1.GET("/timetables/:id", ctrl.TimetableController.Get)
	v1.GET("/calendar", ctrl.CalendarController.View)

	// Authentication
	auth := v1.Group("/auth")
	{
		auth.POST("/admin/login", ctrl.AuthController.AdminLogin)
		auth.POST("/student/register", ctrl.AuthController.StudentRegister)
		auth.POST("/student/login", ctrl.AuthController.StudentLogin)
	}

	// Student portal
	portal := v1.Group("/portal")
	portal.Use(authMW.StudentRequired())
	{
		portal.GET("/dashboard", ctrl.StudentController.Dashboard)
		portal.GET("/profile", ctrl.StudentController.GetProfile)
		portal.POST("/profile", ctrl.StudentController.UpdateProfile)
		portal.POST("/account/delete", ctrl.StudentController.DeleteAccount)

		portal.GET("/semesters", ctrl.GradebookController.ListSemesters)
		portal.POST("/semesters", ctrl.GradebookController.CreateSemester)
		portal.GET("/semesters/:id", ctrl.GradebookController.GetSemester)
		portal.POST("/semesters/:id", ctrl.GradebookController.UpdateSemester)
		portal.POST("/semesters/:id/delete", ctrl.GradebookController.DeleteSemester)
		portal.POST("/semesters/:id/courses", ctrl.GradebookController.AddCourse)
		portal.POST("/courses/:id", ctrl.GradebookController.UpdateCourse)
		portal.POST("/courses/:id/delete", ctrl.GradebookController.DeleteCourse)

		portal.POST("/cgpa/calculate", ctrl.GradebookController.CalculateCGPA)
		portal.GET("/cgpa/history", ctrl.GradebookController.CGPAHistory)

		portal.GET("/dues/receipt", ctrl.DuesController.Receipt)
		portal.GET("/dues/receipt/print", ctrl.DuesController.PrintReceipt)
	}

	// Back office
	admin := v1.Group("/admin")
	admin.Use(authMW.AdminRequired())
	{
		admin.GET("/dashboard", ctrl.HomeController.AdminDashboard)

		admin.POST("/staff", ctrl.StaffController.CreateStaff)
		admin.POST("/staff/:id", ctrl.StaffController.UpdateStaff)
		admin.POST("/staff/:id/delete", ctrl.StaffController.DeleteStaff)

		admin.POST("/excos", ctrl.StaffController.CreateExco)
		admin.POST("/excos/:id", ctrl.StaffController.UpdateExco)
		admin.POST("/excos/:id/delete", ctrl.StaffController.DeleteExco)

		admin.POST("/past-questions", ctrl.PastQuestionController.Create)
		admin.POST("/past-questions/:id", ctrl.PastQuestionController.Update)
		admin.POST("/past-questions/:id/delete", ctrl.PastQuestionController.Delete)

		admin.POST("/library", ctrl.LibraryController.Create)
		admin.POST("/library/:id", ctrl.LibraryController.Update)
		admin.POST("/library/:id/delete", ctrl.LibraryController.Delete)

		admin.GET("/testimonials", ctrl.TestimonialController.ListAll)
		admin.POST("/testimonials/batch-approve", ctrl.TestimonialController.BatchSetApproved)
		admin.POST("/testimonials/:id/approve", ctrl.TestimonialController.Approve)
		admin.POST("/testimonials/:id/unapprove", ctrl.TestimonialController.Unapprove)
		admin.POST("/testimonials/:id/delete", ctrl.TestimonialController.Delete)

		admin.GET("/announcements", ctrl.AnnouncementController.ListAll)
		admin.POST("/announcements", ctrl.AnnouncementController.Create)
		admin.POST("/announcements/:id", ctrl.AnnouncementController.Update)
		admin.POST("/announcements/:id/delete", ctrl.AnnouncementController.Delete)

		admin.GET("/handbook", ctrl.HandbookController.ListAll)
		admin.POST("/handbook", ctrl.HandbookController.Create)
		admin.POST("/handbook/:id", ctrl.HandbookController.Update)
		admin.POST("/handbook/:id/delete", ctrl.HandbookController.Delete)

		admin.GET("/timetables", ctrl.TimetableController.ListAll)
		admin.POST("/timetables", ctrl.TimetableController.Create)
		admin.POST("/timetables/:id", ctrl.TimetableController.Update)
		admin.POST("/timetables/:id/delete", ctrl.TimetableController.Delete)

		admin.GET("/calendars", ctrl.CalendarController.ListAll)
		admin.POST("/calendars", ctrl.CalendarController.Create)
		admin.POST("/calendars/:id", ctrl.CalendarController.Update)
		admin.POST("/calendars/:id/delete", ctrl.CalendarController.Delete)

		admin.GET("/dues", ctrl.DuesController.List)
		admin.POST("/dues", ctrl.DuesController.Create)
		admin.POST("/dues/:id", ctrl.DuesController.Update)
		admin.POST("/dues/:id/approve", ctrl.DuesController.Approve)
		admin.POST("/dues/:id/delete", ctrl.DuesController.Delete)
	}
}
