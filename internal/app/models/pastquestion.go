package models

import "time"

// PastQuestion is a past exam paper referenced by an external link
type PastQuestion struct {
	ID          int64     `json:"id" db:"id"`
	CourseCode  string    `json:"courseCode" db:"course_code"`
	CourseTitle string    `json:"courseTitle" db:"course_title"`
	Level       Level     `json:"level" db:"level"`
	Semester    Term      `json:"semester" db:"semester"`
	Year        int       `json:"year" db:"year"`
	Link        string    `json:"link" db:"link"`
	Description *string   `json:"description,omitempty" db:"description"`
	UploadedBy  *int64    `json:"uploadedBy,omitempty" db:"uploaded_by"` // admin user, nulled when the uploader is deleted
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time `json:"updatedAt" db:"updated_at"`
}
