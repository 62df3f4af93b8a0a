package models

import "time"

// Semester is one academic term in a student's gradebook. The (student, name)
// pair is unique.
type Semester struct {
	ID        int64     `json:"id" db:"id"`
	RegNumber string    `json:"regNumber" db:"reg_number"`
	Name      string    `json:"name" db:"name"` // e.g. "100 Level First Semester"
	Year      *string   `json:"year,omitempty" db:"year"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`

	// Relations (populated when needed)
	Courses []Course `json:"courses,omitempty"`
}

// Course is a result line within a semester
type Course struct {
	ID         int64     `json:"id" db:"id"`
	SemesterID int64     `json:"semesterId" db:"semester_id"`
	CourseCode string    `json:"courseCode" db:"course_code"`
	CourseName string    `json:"courseName" db:"course_name"`
	CreditUnit int       `json:"creditUnit" db:"credit_unit"`
	GradePoint float64   `json:"gradePoint" db:"grade_point"`
	CreatedAt  time.Time `json:"createdAt" db:"created_at"`
}

// Letter returns the letter grade for the course's grade point.
func (c Course) Letter() string {
	return GradeLetter(c.GradePoint)
}
