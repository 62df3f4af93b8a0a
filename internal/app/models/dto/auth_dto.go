package dto

// AdminLoginRequest is the admin credential check payload
type AdminLoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// StudentRegisterRequest creates a student portal account. The registration
// number is typed twice and must match.
type StudentRegisterRequest struct {
	RegNumber        string  `json:"regNumber" binding:"required"`
	RegNumberConfirm string  `json:"regNumberConfirm" binding:"required"`
	FullName         string  `json:"fullName" binding:"required"`
	Level            string  `json:"level" binding:"required"`
	Email            *string `json:"email,omitempty"`
	Phone            *string `json:"phone,omitempty"`
}

// StudentLoginRequest logs a student in by registration number alone.
// Possession of a valid registration number is the whole credential.
type StudentLoginRequest struct {
	RegNumber string `json:"regNumber" binding:"required"`
}

// TokenResponse carries an issued session token
type TokenResponse struct {
	Token     string `json:"token"`
	ExpiresIn int    `json:"expiresIn"` // seconds
	Role      string `json:"role"`
}
