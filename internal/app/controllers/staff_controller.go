package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bmefuto/portal/internal/app/models/dto"
	"github.com/bmefuto/portal/internal/app/services"
	"github.com/bmefuto/portal/internal/pkg/apperrors"
)

// StaffController handles the staff and exco endpoints
type StaffController struct {
	staffService *services.StaffService
}

// NewStaffController creates a new StaffController
func NewStaffController(staffService *services.StaffService) *StaffController {
	return &StaffController{staffService: staffService}
}

// ListStaff handles GET /api/v1/staff
func (ctrl *StaffController) ListStaff(c *gin.Context) {
	staff, err := ctrl.staffService.ListStaff(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, dto.NewSuccessResponse(staff))
}

// GetStaff handles GET /api/v1/staff/:id
func (ctrl *StaffController) GetStaff(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		_ = c.Error(err)
		return
	}

	staff, err := ctrl.staffService.GetStaff(c.Request.Context(), id)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, dto.NewSuccessResponse(staff))
}

// CreateStaff handles POST /api/v1/admin/staff
func (ctrl *StaffController) CreateStaff(c *gin.Context) {
	var req dto.StaffRequest
	if err := c.ShouldBind(&req); err != nil {
		_ = c.Error(apperrors.NewBadRequestError("name, position and bio are required"))
		return
	}
	image, _ := c.FormFile("image")

	staff, err := ctrl.staffService.CreateStaff(c.Request.Context(), &req, image)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, dto.NewSuccessResponse(staff))
}

// UpdateStaff handles POST /api/v1/admin/staff/:id
func (ctrl *StaffController) UpdateStaff(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		_ = c.Error(err)
		return
	}

	var req dto.StaffRequest
	if err := c.ShouldBind(&req); err != nil {
		_ = c.Error(apperrors.NewBadRequestError("name, position and bio are required"))
		return
	}
	image, _ := c.FormFile("image")

	staff, err := ctrl.staffService.UpdateStaff(c.Request.Context(), id, &req, image)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, dto.NewSuccessResponse(staff))
}

// DeleteStaff handles POST /api/v1/admin/staff/:id/delete
func (ctrl *StaffController) DeleteStaff(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		_ = c.Error(err)
		return
	}

	if err := ctrl.staffService.DeleteStaff(c.Request.Context(), id); err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, dto.NewMessageResponse("staff member deleted"))
}

// ListExcos handles GET /api/v1/excos
func (ctrl *StaffController) ListExcos(c *gin.Context) {
	excos, err := ctrl.staffService.ListExcos(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, dto.NewSuccessResponse(excos))
}

// GetExco handles GET /api/v1/excos/:id
func (ctrl *StaffController) GetExco(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		_ = c.Error(err)
		return
	}

	exco, err := ctrl.staffService.GetExco(c.Request.Context(), id)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, dto.NewSuccessResponse(exco))
}

// CreateExco handles POST /api/v1/admin/excos
func (ctrl *StaffController) CreateExco(c *gin.Context) {
	var req dto.ExcoRequest
	if err := c.ShouldBind(&req); err != nil {
		_ = c.Error(apperrors.NewBadRequestError("name, position, bio and session are required"))
		return
	}
	image, _ := c.FormFile("image")

	exco, err := ctrl.staffService.CreateExco(c.Request.Context(), &req, image)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, dto.NewSuccessResponse(exco))
}

// UpdateExco handles POST /api/v1/admin/excos/:id
func (ctrl *StaffController) UpdateExco(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		_ = c.Error(err)
		return
	}

	var req dto.ExcoRequest
	if err := c.ShouldBind(&req); err != nil {
		_ = c.Error(apperrors.NewBadRequestError("name, position, bio and session are required"))
		return
	}
	image, _ := c.FormFile("image")

	exco, err := ctrl.staffService.UpdateExco(c.Request.Context(), id, &req, image)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, dto.NewSuccessResponse(exco))
}

// DeleteExco handles POST /api/v1/admin/excos/:id/delete
func (ctrl *StaffController) DeleteExco(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		_ = c.Error(err)
		return
	}

	if err := ctrl.staffService.DeleteExco(c.Request.Context(), id); err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, dto.NewMessageResponse("exco deleted"))
}
