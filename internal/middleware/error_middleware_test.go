package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campushire/placement-portal/internal/app/models/dto"
	"github.com/campushire/placement-portal/internal/pkg/apperrors"
)

func TestHandleAPIError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   dto.ErrorCode
	}{
		{"invalid credentials", apperrors.ErrInvalidCredentials, http.StatusUnauthorized, dto.ErrorCodeInvalidCredentials},
		{"account disabled", apperrors.ErrAccountDisabled, http.StatusForbidden, dto.ErrorCodeAccountDisabled},
		{"pending approval", apperrors.ErrAccountPendingApproval, http.StatusForbidden, dto.ErrorCodePendingApproval},
		{"permission denied", apperrors.ErrPermissionDenied, http.StatusForbidden, dto.ErrorCodeForbidden},
		{"token expired", apperrors.ErrTokenExpired, http.StatusUnauthorized, dto.ErrorCodeExpiredToken},
		{"token malformed", apperrors.ErrTokenMalformed, http.StatusUnauthorized, dto.ErrorCodeInvalidToken},
		{"invalid reset token", apperrors.ErrInvalidResetToken, http.StatusBadRequest, dto.ErrorCodeInvalidResetToken},
		{"college not found", apperrors.ErrCollegeNotFound, http.StatusNotFound, dto.ErrorCodeResourceNotFound},
		{"job not found", apperrors.ErrJobNotFound, http.StatusNotFound, dto.ErrorCodeResourceNotFound},
		{"application not found", apperrors.ErrApplicationNotFound, http.StatusNotFound, dto.ErrorCodeResourceNotFound},
		{"college code exists", apperrors.ErrCollegeCodeExists, http.StatusConflict, dto.ErrorCodeResourceAlreadyExists},
		{"username exists", apperrors.ErrUsernameExists, http.StatusConflict, dto.ErrorCodeResourceAlreadyExists},
		{"email exists", apperrors.ErrEmailExists, http.StatusConflict, dto.ErrorCodeResourceAlreadyExists},
		{"already applied", apperrors.ErrAlreadyApplied, http.StatusConflict, dto.ErrorCodeResourceAlreadyExists},
		{"job inactive", apperrors.ErrJobInactive, http.StatusBadRequest, dto.ErrorCodeValidationFailed},
		{"deadline passed", apperrors.ErrDeadlinePassed, http.StatusBadRequest, dto.ErrorCodeValidationFailed},
		{"college has users", apperrors.ErrCollegeHasUsers, http.StatusBadRequest, dto.ErrorCodeValidationFailed},
		{"unknown error", errors.New("boom"), http.StatusInternalServerError, dto.ErrorCodeInternalServer},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(recorder)

			HandleAPIError(c, tt.err)

			assert.Equal(t, tt.wantStatus, recorder.Code)

			var resp dto.ErrorResponse
			require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
			require.NotNil(t, resp.Error)
			assert.Equal(t, tt.wantCode, resp.Error.Code)
			assert.False(t, resp.Success)
		})
	}
}

func TestHandleAPIError_WrappedError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	recorder := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(recorder)

	HandleAPIError(c, apperrors.NewNotFoundError("job posting does not exist"))

	assert.Equal(t, http.StatusNotFound, recorder.Code)
}
