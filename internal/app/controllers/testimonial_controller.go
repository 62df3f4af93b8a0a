package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bmefuto/portal/internal/app/models/dto"
	"github.com/bmefuto/portal/internal/app/services"
	"github.com/bmefuto/portal/internal/pkg/apperrors"
)

// TestimonialController handles testimonial submission and moderation
type TestimonialController struct {
	service *services.TestimonialService
}

// NewTestimonialController creates a new TestimonialController
func NewTestimonialController(service *services.TestimonialService) *TestimonialController {
	return &TestimonialController{service: service}
}

// ListApproved handles GET /api/v1/testimonials
func (ctrl *TestimonialController) ListApproved(c *gin.Context) {
	testimonials, err := ctrl.service.ListApproved(c.Request.Context(), 0)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, dto.NewSuccessResponse(testimonials))
}

// Submit handles POST /api/v1/testimonials
func (ctrl *TestimonialController) Submit(c *gin.Context) {
	var req dto.TestimonialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(apperrors.NewBadRequestError("name, message and a 1-5 rating are required"))
		return
	}

	t, err := ctrl.service.Submit(c.Request.Context(), &req)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, dto.NewSuccessResponse(t))
}

// ListAll handles GET /api/v1/admin/testimonials
func (ctrl *TestimonialController) ListAll(c *gin.Context) {
	testimonials, err := ctrl.service.ListAll(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, dto.NewSuccessResponse(testimonials))
}

// Approve handles POST /api/v1/admin/testimonials/:id/approve
func (ctrl *TestimonialController) Approve(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		_ = c.Error(err)
		return
	}

	if err := ctrl.service.Approve(c.Request.Context(), id); err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, dto.NewMessageResponse("testimonial approved"))
}

// Unapprove handles POST /api/v1/admin/testimonials/:id/unapprove
func (ctrl *TestimonialController) Unapprove(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		_ = c.Error(err)
		return
	}

	if err := ctrl.service.Unapprove(c.Request.Context(), id); err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, dto.NewMessageResponse("testimonial hidden"))
}

// BatchSetApproved handles POST /api/v1/admin/testimonials/batch-approve
func (ctrl *TestimonialController) BatchSetApproved(c *gin.Context) {
	var req dto.TestimonialBatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(apperrors.NewBadRequestError("a non-empty list of testimonial ids is required"))
		return
	}

	updated, err := ctrl.service.SetApprovedBatch(c.Request.Context(), &req)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, dto.NewSuccessResponse(gin.H{"updated": updated}))
}

// Delete handles POST /api/v1/admin/testimonials/:id/delete
func (ctrl *TestimonialController) Delete(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		_ = c.Error(err)
		return
	}

	if err := ctrl.service.Delete(c.Request.Context(), id); err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, dto.NewMessageResponse("testimonial deleted"))
}
