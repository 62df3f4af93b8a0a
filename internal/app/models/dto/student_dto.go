package dto

import "github.com/bmefuto/portal/internal/app/models"

// StudentProfileRequest updates a student's own profile. The registration
// number is immutable; the profile image travels as a multipart file.
type StudentProfileRequest struct {
	FullName string  `form:"fullName" binding:"required"`
	Level    string  `form:"level" binding:"required"`
	Email    *string `form:"email"`
	Phone    *string `form:"phone"`
}

// SemesterRequest creates or renames a gradebook semester
type SemesterRequest struct {
	Name string  `json:"name" binding:"required"`
	Year *string `json:"year,omitempty"`
}

// CourseRequest creates or updates a result line
type CourseRequest struct {
	CourseCode string  `json:"courseCode" binding:"required"`
	CourseName string  `json:"courseName" binding:"required"`
	CreditUnit int     `json:"creditUnit" binding:"required,min=1"`
	GradePoint float64 `json:"gradePoint"`
}

// CourseResult is a result line enriched with its letter grade
type CourseResult struct {
	ID         int64   `json:"id"`
	CourseCode string  `json:"courseCode"`
	CourseName string  `json:"courseName"`
	CreditUnit int     `json:"creditUnit"`
	GradePoint float64 `json:"gradePoint"`
	Grade      string  `json:"grade"`
}

// SemesterResult is one semester's breakdown within a CGPA computation
type SemesterResult struct {
	ID      int64          `json:"id"`
	Name    string         `json:"name"`
	GPA     float64        `json:"gpa"`
	Credits int            `json:"credits"`
	Courses []CourseResult `json:"courses"`
}

// CGPAResultResponse is the full result of a CGPA calculation run
type CGPAResultResponse struct {
	RegNumber    string           `json:"regNumber"`
	CGPA         float64          `json:"cgpa"`
	TotalCredits int              `json:"totalCredits"`
	TotalPoints  float64          `json:"totalPoints"`
	Semesters    []SemesterResult `json:"semesters"`
}

// DashboardSemester summarises one semester on the dashboard
type DashboardSemester struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	GPA         float64 `json:"gpa"`
	CourseCount int     `json:"courseCount"`
	Credits     int     `json:"credits"`
}

// DashboardResponse is the student dashboard payload. CGPA here is always
// recomputed live from current gradebook data, independent of any snapshot.
type DashboardResponse struct {
	Student        *models.Student         `json:"student"`
	Semesters      []DashboardSemester     `json:"semesters"`
	CGPA           float64                 `json:"cgpa"`
	TotalCredits   int                     `json:"totalCredits"`
	LatestSnapshot *models.CGPACalculation `json:"latestSnapshot,omitempty"`
	Announcements  []models.Announcement   `json:"announcements"`
}
