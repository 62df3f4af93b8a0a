package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bmefuto/portal/internal/app/models/dto"
	"github.com/bmefuto/portal/internal/app/services"
	"github.com/bmefuto/portal/internal/middleware"
	"github.com/bmefuto/portal/internal/pkg/apperrors"
)

// StudentController handles the student's own profile and dashboard
type StudentController struct {
	service *services.StudentService
}

// NewStudentController creates a new StudentController
func NewStudentController(service *services.StudentService) *StudentController {
	return &StudentController{service: service}
}

// Dashboard handles GET /api/v1/portal/dashboard
func (ctrl *StudentController) Dashboard(c *gin.Context) {
	resp, err := ctrl.service.Dashboard(c.Request.Context(), middleware.RegNumberFromContext(c))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, dto.NewSuccessResponse(resp))
}

// GetProfile handles GET /api/v1/portal/profile
func (ctrl *StudentController) GetProfile(c *gin.Context) {
	student, err := ctrl.service.GetProfile(c.Request.Context(), middleware.RegNumberFromContext(c))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, dto.NewSuccessResponse(student))
}

// UpdateProfile handles POST /api/v1/portal/profile
func (ctrl *StudentController) UpdateProfile(c *gin.Context) {
	var req dto.StudentProfileRequest
	if err := c.ShouldBind(&req); err != nil {
		_ = c.Error(apperrors.NewBadRequestError("full name and level are required"))
		return
	}
	image, _ := c.FormFile("image")

	student, err := ctrl.service.UpdateProfile(c.Request.Context(), middleware.RegNumberFromContext(c), &req, image)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, dto.NewSuccessResponse(student))
}

// DeleteAccount handles POST /api/v1/portal/account/delete. Everything the
// student owns goes with the account.
func (ctrl *StudentController) DeleteAccount(c *gin.Context) {
	if err := ctrl.service.DeleteAccount(c.Request.Context(), middleware.RegNumberFromContext(c)); err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, dto.NewMessageResponse("account deleted"))
}
