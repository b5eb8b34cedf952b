package middleware

import (
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/rakib/uniportal/internal/app/models/dto"
	"github.com/rakib/uniportal/internal/pkg/apperrors"
)

func TestHandleAPIError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   dto.ErrorCode
	}{
		{"invalid credentials", apperrors.ErrInvalidCredentials, 401, dto.ErrorCodeInvalidCredentials},
		{"revoked token", apperrors.ErrTokenRevoked, 401, dto.ErrorCodeInvalidToken},
		{"out of scope approval", apperrors.ErrApprovalOutOfScope, 403, dto.ErrorCodeForbidden},
		{"permission denied", apperrors.ErrPermissionDenied, 403, dto.ErrorCodeForbidden},
		{"enrollment missing", apperrors.ErrEnrollmentNotFound, 404, dto.ErrorCodeResourceNotFound},
		{"course missing", apperrors.ErrCourseNotFound, 404, dto.ErrorCodeResourceNotFound},
		{"duplicate registration", apperrors.ErrAlreadyRegistered, 409, dto.ErrorCodeConflict},
		{"already decided", apperrors.ErrEnrollmentDecided, 409, dto.ErrorCodeConflict},
		{"duplicate student ID", apperrors.ErrStudentIDAlreadyExists, 409, dto.ErrorCodeResourceAlreadyExists},
		{"course in use", apperrors.ErrCourseInUse, 409, dto.ErrorCodeConflict},
		{"invalid approval verb", apperrors.ErrInvalidApprovalVerb, 400, dto.ErrorCodeValidationFailed},
		{"unknown error", fmt.Errorf("boom"), 500, dto.ErrorCodeInternalServer},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := httptest.NewRecorder()
			ctx, _ := gin.CreateTestContext(recorder)

			HandleAPIError(ctx, tt.err)

			if recorder.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", recorder.Code, tt.wantStatus)
			}

			var body dto.APIResponse
			if err := json.Unmarshal(recorder.Body.Bytes(), &body); err != nil {
				t.Fatalf("failed to decode response body: %v", err)
			}
			if body.Error == nil {
				t.Fatal("expected an error payload")
			}
			if body.Error.Code != tt.wantCode {
				t.Errorf("code = %q, want %q", body.Error.Code, tt.wantCode)
			}
		})
	}
}

func TestHandleAPIErrorKeepsFieldAndMessage(t *testing.T) {
	gin.SetMode(gin.TestMode)

	recorder := httptest.NewRecorder()
	ctx, _ := gin.CreateTestContext(recorder)

	err := apperrors.NewCustomError(apperrors.ErrValidationFailed, "Department name is required").WithField("name")
	HandleAPIError(ctx, err)

	if recorder.Code != 400 {
		t.Errorf("status = %d, want 400", recorder.Code)
	}

	var body dto.APIResponse
	if jsonErr := json.Unmarshal(recorder.Body.Bytes(), &body); jsonErr != nil {
		t.Fatalf("failed to decode response body: %v", jsonErr)
	}
	if body.Error.Field != "name" {
		t.Errorf("field = %q, want name", body.Error.Field)
	}
	if body.Error.Message != "Department name is required" {
		t.Errorf("message = %q, want the wrapped message", body.Error.Message)
	}
}
