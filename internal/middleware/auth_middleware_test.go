package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bmefuto/portal/internal/pkg/auth"
)

func newAuthRouter(t *testing.T) (*gin.Engine, *auth.JWTService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:   "test-secret",
		TokenExp:    time.Hour,
		TokenIssuer: "bmefuto.portal.test",
	})
	mw := NewAuthMiddleware(jwtService)

	router := gin.New()
	router.GET("/admin", mw.AdminRequired(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"adminId": AdminIDFromContext(c)})
	})
	router.GET("/portal", mw.StudentRequired(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"regNumber": RegNumberFromContext(c)})
	})
	return router, jwtService
}

func doGet(router *gin.Engine, path, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestAdminRequiredAcceptsAdminToken(t *testing.T) {
	router, jwtService := newAuthRouter(t)
	token, _, err := jwtService.GenerateAdminToken(7, "admin")
	require.NoError(t, err)

	w := doGet(router, "/admin", "Bearer "+token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"adminId":7`)
}

func TestAdminRequiredRejectsStudentToken(t *testing.T) {
	router, jwtService := newAuthRouter(t)
	token, _, err := jwtService.GenerateStudentToken("20211234567")
	require.NoError(t, err)

	w := doGet(router, "/admin", "Bearer "+token)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestStudentRequiredAcceptsStudentToken(t *testing.T) {
	router, jwtService := newAuthRouter(t)
	token, _, err := jwtService.GenerateStudentToken("20211234567")
	require.NoError(t, err)

	w := doGet(router, "/portal", "Bearer "+token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "20211234567")
}

func TestStudentRequiredRejectsAdminToken(t *testing.T) {
	router, jwtService := newAuthRouter(t)
	token, _, err := jwtService.GenerateAdminToken(7, "admin")
	require.NoError(t, err)

	w := doGet(router, "/portal", "Bearer "+token)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestAuthRejectsMissingHeader(t *testing.T) {
	router, _ := newAuthRouter(t)
	assert.Equal(t, http.StatusUnauthorized, doGet(router, "/portal", "").Code)
	assert.Equal(t, http.StatusUnauthorized, doGet(router, "/admin", "").Code)
}

func TestAuthRejectsMalformedHeader(t *testing.T) {
	router, _ := newAuthRouter(t)
	assert.Equal(t, http.StatusUnauthorized, doGet(router, "/portal", "Token abc").Code)
}

func TestAuthRejectsExpiredToken(t *testing.T) {
	gin.SetMode(gin.TestMode)
	expired := auth.NewJWTService(auth.JWTConfig{
		SecretKey: "test-secret",
		TokenExp:  -time.Minute,
	})
	token, _, err := expired.GenerateStudentToken("20211234567")
	require.NoError(t, err)

	router, _ := newAuthRouter(t)
	w := doGet(router, "/portal", "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "expired")
}
