package models

import "time"

// Student is a portal account, keyed by registration number
type Student struct {
	RegNumber       string    `json:"regNumber" db:"reg_number"`
	FullName        string    `json:"fullName" db:"full_name"`
	Email           *string   `json:"email,omitempty" db:"email"`
	Phone           *string   `json:"phone,omitempty" db:"phone"`
	Level           Level     `json:"level" db:"level"`
	ProfileImageURL *string   `json:"profileImageUrl,omitempty" db:"profile_image_url"`
	CreatedAt       time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt       time.Time `json:"updatedAt" db:"updated_at"`
}
