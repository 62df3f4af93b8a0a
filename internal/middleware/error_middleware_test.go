package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bmefuto/portal/internal/app/models/dto"
	"github.com/bmefuto/portal/internal/pkg/apperrors"
)

func performWithError(t *testing.T, err error) (*httptest.ResponseRecorder, dto.ErrorDetail) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(HandleAPIError())
	router.GET("/t", func(c *gin.Context) {
		_ = c.Error(err)
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/t", nil))

	var body struct {
		Success bool            `json:"success"`
		Error   dto.ErrorDetail `json:"error"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.False(t, body.Success)
	return w, body.Error
}

func TestHandleAPIErrorInvalidCredentials(t *testing.T) {
	w, detail := performWithError(t, apperrors.ErrInvalidCredentials)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, dto.ErrorCodeInvalidCredentials, detail.Code)
}

func TestHandleAPIErrorExpiredToken(t *testing.T) {
	w, detail := performWithError(t, apperrors.ErrTokenExpired)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, dto.ErrorCodeExpiredToken, detail.Code)
}

func TestHandleAPIErrorNotFound(t *testing.T) {
	for _, err := range []error{
		apperrors.ErrStudentNotFound,
		apperrors.ErrSemesterNotFound,
		apperrors.ErrDuesNotFound,
		apperrors.ErrStaffNotFound,
		apperrors.ErrCalendarNotFound,
	} {
		w, detail := performWithError(t, err)
		assert.Equal(t, http.StatusNotFound, w.Code, err.Error())
		assert.Equal(t, dto.ErrorCodeResourceNotFound, detail.Code)
	}
}

func TestHandleAPIErrorConflict(t *testing.T) {
	for _, err := range []error{
		apperrors.ErrRegNumberExists,
		apperrors.ErrSemesterNameExists,
		apperrors.ErrDuesAlreadyExists,
		apperrors.ErrHandbookEntryExists,
	} {
		w, detail := performWithError(t, err)
		assert.Equal(t, http.StatusConflict, w.Code, err.Error())
		assert.Equal(t, dto.ErrorCodeResourceAlreadyExists, detail.Code)
	}
}

func TestHandleAPIErrorDuesNotApproved(t *testing.T) {
	w, detail := performWithError(t, apperrors.ErrDuesNotApproved)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, dto.ErrorCodeDuesNotApproved, detail.Code)
}

func TestHandleAPIErrorValidation(t *testing.T) {
	w, detail := performWithError(t, apperrors.ErrInvalidGradePoint)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, dto.ErrorCodeValidationFailed, detail.Code)
}

func TestHandleAPIErrorCustomMessagePreferred(t *testing.T) {
	custom := apperrors.NewCustomError(apperrors.ErrBadRequest, "level must be one of 100-500")
	w, detail := performWithError(t, custom)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "level must be one of 100-500", detail.Message)
}

func TestHandleAPIErrorUnknownIsInternal(t *testing.T) {
	w, detail := performWithError(t, assert.AnError)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, dto.ErrorCodeInternalServer, detail.Code)
	// internal details never leak to the client
	assert.NotContains(t, detail.Message, assert.AnError.Error())
}

func TestHandleAPIErrorNoErrorNoBody(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(HandleAPIError())
	router.GET("/ok", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ok", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"ok": true}`, w.Body.String())
}
