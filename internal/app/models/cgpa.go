package models

import "time"

// CGPACalculation is an immutable snapshot of a cumulative GPA computation.
// Rows are only ever inserted, never updated.
type CGPACalculation struct {
	ID               int64     `json:"id" db:"id"`
	RegNumber        string    `json:"regNumber" db:"reg_number"`
	CGPA             float64   `json:"cgpa" db:"cgpa"`
	TotalCreditUnits int       `json:"totalCreditUnits" db:"total_credit_units"`
	TotalGradePoints float64   `json:"totalGradePoints" db:"total_grade_points"`
	CalculatedAt     time.Time `json:"calculatedAt" db:"calculated_at"`
}
