package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bmefuto/portal/internal/app/models/dto"
	"github.com/bmefuto/portal/internal/pkg/apperrors"
	"github.com/bmefuto/portal/internal/pkg/logger"
)

// HandleAPIError translates service-layer errors into the standard error
// envelope. Controllers push errors onto the Gin context and return; this
// middleware decides the status code.
func HandleAPIError() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last().Err
		status, detail := classify(err)

		if status >= http.StatusInternalServerError {
			logger.Error().Err(err).Str("path", c.Request.URL.Path).Msg("Request failed")
		} else {
			logger.Debug().Err(err).Str("path", c.Request.URL.Path).Int("status", status).Msg("Request rejected")
		}

		c.JSON(status, dto.NewErrorResponse(detail))
	}
}

func classify(err error) (int, *dto.ErrorDetail) {
	var custom *apperrors.CustomError
	message := err.Error()
	if errors.As(err, &custom) && custom.Message != "" {
		message = custom.Message
	}

	switch {
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		return http.StatusUnauthorized, dto.NewErrorDetail(dto.ErrorCodeInvalidCredentials, message)
	case errors.Is(err, apperrors.ErrTokenExpired):
		return http.StatusUnauthorized, dto.NewErrorDetail(dto.ErrorCodeExpiredToken, message)
	case errors.Is(err, apperrors.ErrTokenInvalid), errors.Is(err, apperrors.ErrInvalidFormat):
		return http.StatusUnauthorized, dto.NewErrorDetail(dto.ErrorCodeInvalidToken, message)
	case errors.Is(err, apperrors.ErrPermissionDenied):
		return http.StatusForbidden, dto.NewErrorDetail(dto.ErrorCodeForbidden, message)

	case errors.Is(err, apperrors.ErrDuesNotApproved):
		return http.StatusForbidden, dto.NewErrorDetail(dto.ErrorCodeDuesNotApproved, message)

	case errors.Is(err, apperrors.ErrRegNumberExists),
		errors.Is(err, apperrors.ErrSemesterNameExists),
		errors.Is(err, apperrors.ErrDuesAlreadyExists),
		errors.Is(err, apperrors.ErrHandbookEntryExists),
		errors.Is(err, apperrors.ErrResourceAlreadyExists),
		errors.Is(err, apperrors.ErrConflict):
		return http.StatusConflict, dto.NewErrorDetail(dto.ErrorCodeResourceAlreadyExists, message)

	case errors.Is(err, apperrors.ErrResourceNotFound),
		errors.Is(err, apperrors.ErrStudentNotFound),
		errors.Is(err, apperrors.ErrSemesterNotFound),
		errors.Is(err, apperrors.ErrCourseNotFound),
		errors.Is(err, apperrors.ErrDuesNotFound),
		errors.Is(err, apperrors.ErrStaffNotFound),
		errors.Is(err, apperrors.ErrExcoNotFound),
		errors.Is(err, apperrors.ErrPastQuestionNotFound),
		errors.Is(err, apperrors.ErrResourceItemNotFound),
		errors.Is(err, apperrors.ErrTestimonialNotFound),
		errors.Is(err, apperrors.ErrAnnouncementNotFound),
		errors.Is(err, apperrors.ErrHandbookNotFound),
		errors.Is(err, apperrors.ErrTimetableNotFound),
		errors.Is(err, apperrors.ErrCalendarNotFound),
		errors.Is(err, apperrors.ErrAdminNotFound):
		return http.StatusNotFound, dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, message)

	case errors.Is(err, apperrors.ErrRegNumberMismatch),
		errors.Is(err, apperrors.ErrInvalidRegNumber),
		errors.Is(err, apperrors.ErrInvalidGradePoint),
		errors.Is(err, apperrors.ErrInvalidCreditUnit),
		errors.Is(err, apperrors.ErrValidationFailed),
		errors.Is(err, apperrors.ErrBadRequest):
		return http.StatusBadRequest, dto.NewErrorDetail(dto.ErrorCodeValidationFailed, message)
	}

	return http.StatusInternalServerError, dto.NewErrorDetail(dto.ErrorCodeInternalServer, "an unexpected error occurred")
}
