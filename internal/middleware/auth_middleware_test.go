package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campushire/placement-portal/internal/app/models/dto"
	"github.com/campushire/placement-portal/internal/pkg/auth"
)

func newAuthTestRouter(t *testing.T) (*gin.Engine, *auth.JWTService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:       "test-secret",
		SessionTokenExp: time.Hour,
		ResetTokenExp:   time.Hour,
		TokenIssuer:     "placement-portal-test",
	})

	router := gin.New()
	router.Use(NewAuthMiddleware(jwtService).JWTAuth())
	router.GET("/whoami", func(c *gin.Context) {
		userID, role, collegeID := CallerIdentity(c)
		c.JSON(http.StatusOK, gin.H{"userId": userID, "role": string(role), "collegeId": collegeID})
	})

	return router, jwtService
}

func TestJWTAuth_ValidToken(t *testing.T) {
	router, jwtService := newAuthTestRouter(t)

	token, _, err := jwtService.GenerateSessionToken("user-1", "moderator", "college-1")
	require.NoError(t, err)

	recorder := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "user-1")
	assert.Contains(t, recorder.Body.String(), "moderator")
	assert.Contains(t, recorder.Body.String(), "college-1")
}

func TestJWTAuth_MissingHeader(t *testing.T) {
	router, _ := newAuthTestRouter(t)

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest("GET", "/whoami", nil))

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func TestJWTAuth_GarbageToken(t *testing.T) {
	router, _ := newAuthTestRouter(t)

	recorder := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/whoami", nil)
	req.Header.Set("Authorization", "Bearer not.a.token")
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	assert.Contains(t, recorder.Body.String(), string(dto.ErrorCodeInvalidToken))
}

func TestJWTAuth_ExpiredToken(t *testing.T) {
	router, _ := newAuthTestRouter(t)

	// Same secret and issuer as the router's service, but tokens are born
	// expired.
	expiredIssuer := auth.NewJWTService(auth.JWTConfig{
		SecretKey:       "test-secret",
		SessionTokenExp: -time.Minute,
		ResetTokenExp:   time.Hour,
		TokenIssuer:     "placement-portal-test",
	})
	token, _, err := expiredIssuer.GenerateSessionToken("user-1", "student", "college-1")
	require.NoError(t, err)

	recorder := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	assert.Contains(t, recorder.Body.String(), string(dto.ErrorCodeExpiredToken))
}

func TestJWTAuth_ResetTokenRejected(t *testing.T) {
	router, jwtService := newAuthTestRouter(t)

	token, err := jwtService.GenerateResetToken("user-1")
	require.NoError(t, err)

	recorder := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}
