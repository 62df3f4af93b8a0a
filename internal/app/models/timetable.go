package models

import "time"

// Timetable is an uploaded class or exam timetable image
type Timetable struct {
	ID              int64         `json:"id" db:"id"`
	Title           string        `json:"title" db:"title"`
	Type            TimetableType `json:"type" db:"timetable_type"`
	Level           Level         `json:"level" db:"level"` // "All" targets every level
	Semester        Term          `json:"semester" db:"semester"`
	AcademicSession string        `json:"academicSession" db:"academic_session"`
	ImageURL        string        `json:"imageUrl" db:"image_url"`
	Description     *string       `json:"description,omitempty" db:"description"`
	IsActive        bool          `json:"isActive" db:"is_active"`
	UploadedBy      *int64        `json:"uploadedBy,omitempty" db:"uploaded_by"`
	CreatedAt       time.Time     `json:"createdAt" db:"created_at"`
	UpdatedAt       time.Time     `json:"updatedAt" db:"updated_at"`
}
