package models

import "time"

// Testimonial is a visitor-submitted testimonial held for admin approval
type Testimonial struct {
	ID         int64     `json:"id" db:"id"`
	Name       string    `json:"name" db:"name"`
	Message    string    `json:"message" db:"message"`
	Rating     int       `json:"rating" db:"rating"` // out of 5
	IsApproved bool      `json:"isApproved" db:"is_approved"`
	CreatedAt  time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt  time.Time `json:"updatedAt" db:"updated_at"`
}
