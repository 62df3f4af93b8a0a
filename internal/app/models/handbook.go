package models

import "time"

// CourseHandbook is an entry in the departmental course handbook. The
// (level, semester, course_code) triple is unique.
type CourseHandbook struct {
	ID          int64      `json:"id" db:"id"`
	Level       Level      `json:"level" db:"level"`
	Semester    Term       `json:"semester" db:"semester"`
	CourseCode  string     `json:"courseCode" db:"course_code"`
	CourseTitle string     `json:"courseTitle" db:"course_title"`
	CreditUnit  int        `json:"creditUnit" db:"credit_unit"`
	CourseType  CourseType `json:"courseType" db:"course_type"`
	Description *string    `json:"description,omitempty" db:"description"`
	UploadedBy  *int64     `json:"uploadedBy,omitempty" db:"uploaded_by"`
	CreatedAt   time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time  `json:"updatedAt" db:"updated_at"`
}
