package models

import "time"

// DepartmentalDues is a student's dues payment record, one per student.
// ReceiptNumber, WatermarkCode and PaymentReference are assigned exactly once
// at first insert and never change afterwards.
type DepartmentalDues struct {
	ID               int64      `json:"id" db:"id"`
	RegNumber        string     `json:"regNumber" db:"reg_number"`
	AmountPaid       float64    `json:"amountPaid" db:"amount_paid"`
	PaymentReference string     `json:"paymentReference" db:"payment_reference"`
	ReceiptNumber    string     `json:"receiptNumber" db:"receipt_number"` // BME/<year>/<%04d>
	WatermarkCode    string     `json:"watermarkCode" db:"watermark_code"` // anti-fraud verification code
	IsApproved       bool       `json:"isApproved" db:"is_approved"`
	ApprovedBy       *int64     `json:"approvedBy,omitempty" db:"approved_by"`
	ApprovedAt       *time.Time `json:"approvedAt,omitempty" db:"approved_at"`
	AcademicSession  string     `json:"academicSession" db:"academic_session"` // e.g. 2023/2024
	CreatedAt        time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt        time.Time  `json:"updatedAt" db:"updated_at"`

	// Relations (populated when needed)
	Student *Student `json:"student,omitempty"`
}
