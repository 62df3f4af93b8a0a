package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bmefuto/portal/internal/app/models/dto"
	"github.com/bmefuto/portal/internal/app/services"
	"github.com/bmefuto/portal/internal/middleware"
	"github.com/bmefuto/portal/internal/pkg/apperrors"
)

// DuesController handles departmental dues and receipts
type DuesController struct {
	service *services.DuesService
}

// NewDuesController creates a new DuesController
func NewDuesController(service *services.DuesService) *DuesController {
	return &DuesController{service: service}
}

// Receipt handles GET /api/v1/portal/dues/receipt
func (ctrl *DuesController) Receipt(c *gin.Context) {
	resp, err := ctrl.service.Receipt(c.Request.Context(), middleware.RegNumberFromContext(c))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, dto.NewSuccessResponse(resp))
}

// PrintReceipt handles GET /api/v1/portal/dues/receipt/print. Only approved
// records can be printed.
func (ctrl *DuesController) PrintReceipt(c *gin.Context) {
	resp, err := ctrl.service.PrintableReceipt(c.Request.Context(), middleware.RegNumberFromContext(c))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, dto.NewSuccessResponse(resp))
}

// List handles GET /api/v1/admin/dues
func (ctrl *DuesController) List(c *gin.Context) {
	resp, err := ctrl.service.List(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, dto.NewSuccessResponse(resp))
}

// Create handles POST /api/v1/admin/dues
func (ctrl *DuesController) Create(c *gin.Context) {
	var req dto.DuesCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(apperrors.NewBadRequestError("registration number and academic session are required"))
		return
	}

	d, err := ctrl.service.Create(c.Request.Context(), &req, middleware.AdminIDFromContext(c))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, dto.NewSuccessResponse(d))
}

// Update handles POST /api/v1/admin/dues/:id
func (ctrl *DuesController) Update(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		_ = c.Error(err)
		return
	}

	var req dto.DuesUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(apperrors.NewBadRequestError("invalid dues update payload"))
		return
	}

	d, err := ctrl.service.Update(c.Request.Context(), id, &req, middleware.AdminIDFromContext(c))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, dto.NewSuccessResponse(d))
}

// Approve handles POST /api/v1/admin/dues/:id/approve
func (ctrl *DuesController) Approve(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		_ = c.Error(err)
		return
	}

	d, err := ctrl.service.Approve(c.Request.Context(), id, middleware.AdminIDFromContext(c))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, dto.NewSuccessResponse(d))
}

// Delete handles POST /api/v1/admin/dues/:id/delete
func (ctrl *DuesController) Delete(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		_ = c.Error(err)
		return
	}

	if err := ctrl.service.Delete(c.Request.Context(), id); err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, dto.NewMessageResponse("dues record deleted"))
}
