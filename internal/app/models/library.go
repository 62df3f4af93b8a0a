package models

import "time"

// LibraryResource is an external reading resource (textbook, journal, notes)
type LibraryResource struct {
	ID            int64            `json:"id" db:"id"`
	Title         string           `json:"title" db:"title"`
	Author        *string          `json:"author,omitempty" db:"author"`
	Category      ResourceCategory `json:"category" db:"category"`
	Description   string           `json:"description" db:"description"`
	Link          string           `json:"link" db:"link"`
	CoverImageURL *string          `json:"coverImageUrl,omitempty" db:"cover_image_url"`
	Level         *Level           `json:"level,omitempty" db:"level"`
	UploadedBy    *int64           `json:"uploadedBy,omitempty" db:"uploaded_by"`
	CreatedAt     time.Time        `json:"createdAt" db:"created_at"`
	UpdatedAt     time.Time        `json:"updatedAt" db:"updated_at"`
}
