package models

import "time"

// Staff is a department staff member shown on the public staff page
type Staff struct {
	ID           int64     `json:"id" db:"id"`
	Name         string    `json:"name" db:"name"`
	Position     string    `json:"position" db:"position"`
	Bio          string    `json:"bio" db:"bio"`
	Email        *string   `json:"email,omitempty" db:"email"`
	Phone        *string   `json:"phone,omitempty" db:"phone"`
	ImageURL     *string   `json:"imageUrl,omitempty" db:"image_url"`
	DisplayOrder int       `json:"displayOrder" db:"display_order"` // lower numbers appear first
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt    time.Time `json:"updatedAt" db:"updated_at"`
}

// Exco is a student executive council member for one academic session
type Exco struct {
	ID           int64     `json:"id" db:"id"`
	Name         string    `json:"name" db:"name"`
	Position     string    `json:"position" db:"position"`
	Bio          string    `json:"bio" db:"bio"`
	Email        *string   `json:"email,omitempty" db:"email"`
	Phone        *string   `json:"phone,omitempty" db:"phone"`
	ImageURL     *string   `json:"imageUrl,omitempty" db:"image_url"`
	Session      string    `json:"session" db:"session"` // e.g. 2023/2024
	DisplayOrder int       `json:"displayOrder" db:"display_order"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt    time.Time `json:"updatedAt" db:"updated_at"`
}
