package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bmefuto/portal/internal/app/models/dto"
	"github.com/bmefuto/portal/internal/app/services"
	"github.com/bmefuto/portal/internal/pkg/apperrors"
)

// AuthController handles login and registration endpoints
type AuthController struct {
	authService *services.AuthService
}

// NewAuthController creates a new AuthController
func NewAuthController(authService *services.AuthService) *AuthController {
	return &AuthController{authService: authService}
}

// AdminLogin handles POST /api/v1/auth/admin/login
func (ctrl *AuthController) AdminLogin(c *gin.Context) {
	var req dto.AdminLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(apperrors.NewBadRequestError("username and password are required"))
		return
	}

	token, err := ctrl.authService.AdminLogin(c.Request.Context(), &req)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, dto.NewSuccessResponse(token))
}

// StudentRegister handles POST /api/v1/auth/student/register
func (ctrl *AuthController) StudentRegister(c *gin.Context) {
	var req dto.StudentRegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(apperrors.NewBadRequestError("registration number (twice), full name and level are required"))
		return
	}

	token, student, err := ctrl.authService.StudentRegister(c.Request.Context(), &req)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, dto.NewSuccessResponse(gin.H{
		"token":   token,
		"student": student,
	}))
}

// StudentLogin handles POST /api/v1/auth/student/login
func (ctrl *AuthController) StudentLogin(c *gin.Context) {
	var req dto.StudentLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(apperrors.NewBadRequestError("registration number is required"))
		return
	}

	token, student, err := ctrl.authService.StudentLogin(c.Request.Context(), &req)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, dto.NewSuccessResponse(gin.H{
		"token":   token,
		"student": student,
	}))
}
