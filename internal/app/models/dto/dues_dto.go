package dto

import "github.com/bmefuto/portal/internal/app/models"

// DuesCreateRequest creates a dues record for a student (admin action)
type DuesCreateRequest struct {
	RegNumber       string   `json:"regNumber" binding:"required"`
	AmountPaid      *float64 `json:"amountPaid,omitempty"` // defaults to the configured dues amount
	AcademicSession string   `json:"academicSession" binding:"required"`
	IsApproved      bool     `json:"isApproved"`
}

// DuesUpdateRequest edits a dues record. Receipt number, watermark code and
// payment reference are never part of an update.
type DuesUpdateRequest struct {
	AmountPaid      *float64 `json:"amountPaid,omitempty"`
	AcademicSession *string  `json:"academicSession,omitempty"`
	IsApproved      *bool    `json:"isApproved,omitempty"`
}

// DuesListResponse is the admin dues listing with summary counts
type DuesListResponse struct {
	Dues          []models.DepartmentalDues `json:"dues"`
	TotalCount    int64                     `json:"totalCount"`
	ApprovedCount int64                     `json:"approvedCount"`
	PendingCount  int64                     `json:"pendingCount"`
}

// ReceiptResponse is a student's receipt view
type ReceiptResponse struct {
	Student *models.Student          `json:"student"`
	Dues    *models.DepartmentalDues `json:"dues,omitempty"`
}
