package models

import "time"

// AcademicCalendar is an uploaded academic calendar. At most one row has
// IsActive set at any time; the write path enforces this.
type AcademicCalendar struct {
	ID              int64     `json:"id" db:"id"`
	Title           string    `json:"title" db:"title"`
	AcademicSession string    `json:"academicSession" db:"academic_session"`
	ImageURL        string    `json:"imageUrl" db:"image_url"`
	Description     *string   `json:"description,omitempty" db:"description"`
	IsActive        bool      `json:"isActive" db:"is_active"`
	UploadedBy      *int64    `json:"uploadedBy,omitempty" db:"uploaded_by"`
	CreatedAt       time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt       time.Time `json:"updatedAt" db:"updated_at"`
}
