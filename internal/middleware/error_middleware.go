package middleware

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/rakib/uniportal/internal/app/models/dto"
	"github.com/rakib/uniportal/internal/pkg/apperrors"
)

// HandleAPIError maps service errors to HTTP responses. Controllers call it
// from their error paths so status codes stay consistent across the API.
func HandleAPIError(c *gin.Context, err error) {
	detail := detailFor(err)
	if field := apperrors.FieldOf(err); field != "" {
		detail.Error = detail.Error.WithField(field)
	}
	c.JSON(detail.Status, dto.APIResponse{Error: detail.Error})
}

type errorMapping struct {
	Status int
	Error  *dto.ErrorDetail
}

func detailFor(err error) errorMapping {
	switch {
	// 401
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		return errorMapping{401, dto.NewErrorDetail(dto.ErrorCodeInvalidCredentials, "Invalid credentials")}
	case errors.Is(err, apperrors.ErrAccountDisabled):
		return errorMapping{401, dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Account is disabled")}
	case errors.Is(err, apperrors.ErrTokenExpired):
		return errorMapping{401, dto.NewErrorDetail(dto.ErrorCodeExpiredToken, "Token expired")}
	case errors.Is(err, apperrors.ErrTokenRevoked):
		return errorMapping{401, dto.NewErrorDetail(dto.ErrorCodeInvalidToken, "Token revoked")}
	case errors.Is(err, apperrors.ErrTokenNotFound):
		return errorMapping{401, dto.NewErrorDetail(dto.ErrorCodeTokenNotFound, "Token not found")}
	case errors.Is(err, apperrors.ErrTokenInvalid):
		return errorMapping{401, dto.NewErrorDetail(dto.ErrorCodeInvalidToken, "Invalid token")}

	// 403
	case errors.Is(err, apperrors.ErrApprovalOutOfScope):
		return errorMapping{403, dto.NewErrorDetail(dto.ErrorCodeForbidden, "This student is not among your advisees")}
	case errors.Is(err, apperrors.ErrPermissionDenied):
		return errorMapping{403, dto.NewErrorDetail(dto.ErrorCodeForbidden, "Permission denied")}

	// 404
	case errors.Is(err, apperrors.ErrUserNotFound):
		return errorMapping{404, dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, "User not found")}
	case errors.Is(err, apperrors.ErrStudentNotFound):
		return errorMapping{404, dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, "Student not found")}
	case errors.Is(err, apperrors.ErrDepartmentNotFound):
		return errorMapping{404, dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, "Department not found")}
	case errors.Is(err, apperrors.ErrCourseNotFound):
		return errorMapping{404, dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, "Course not found")}
	case errors.Is(err, apperrors.ErrFacultyNotFound):
		return errorMapping{404, dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, "Faculty member not found")}
	case errors.Is(err, apperrors.ErrEnrollmentNotFound):
		return errorMapping{404, dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, "Enrollment not found")}
	case errors.Is(err, apperrors.ErrResultNotFound):
		return errorMapping{404, dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, "No result published for this term")}
	case errors.Is(err, apperrors.ErrResourceNotFound):
		return errorMapping{404, dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, "Resource not found")}

	// 409
	case errors.Is(err, apperrors.ErrAlreadyRegistered):
		return errorMapping{409, dto.NewErrorDetail(dto.ErrorCodeConflict, "You have already registered for this course this term")}
	case errors.Is(err, apperrors.ErrEnrollmentDecided):
		return errorMapping{409, dto.NewErrorDetail(dto.ErrorCodeConflict, "This enrollment has already been decided")}
	case errors.Is(err, apperrors.ErrEmailAlreadyExists):
		return errorMapping{409, dto.NewErrorDetail(dto.ErrorCodeResourceAlreadyExists, "This email is already used")}
	case errors.Is(err, apperrors.ErrIdentifierExists):
		return errorMapping{409, dto.NewErrorDetail(dto.ErrorCodeResourceAlreadyExists, "This ID is already used")}
	case errors.Is(err, apperrors.ErrStudentIDAlreadyExists):
		return errorMapping{409, dto.NewErrorDetail(dto.ErrorCodeResourceAlreadyExists, "This student ID is already used")}
	case errors.Is(err, apperrors.ErrDepartmentAlreadyExists):
		return errorMapping{409, dto.NewErrorDetail(dto.ErrorCodeResourceAlreadyExists, "A department with this name or code already exists")}
	case errors.Is(err, apperrors.ErrCourseAlreadyExists):
		return errorMapping{409, dto.NewErrorDetail(dto.ErrorCodeResourceAlreadyExists, "A course with this code already exists")}
	case errors.Is(err, apperrors.ErrFacultyAlreadyExists):
		return errorMapping{409, dto.NewErrorDetail(dto.ErrorCodeResourceAlreadyExists, "A faculty member with this ID or email already exists")}
	case errors.Is(err, apperrors.ErrCourseInUse):
		return errorMapping{409, dto.NewErrorDetail(dto.ErrorCodeConflict, "Course is referenced by registrations or results and cannot be deleted")}
	case errors.Is(err, apperrors.ErrConflict):
		return errorMapping{409, dto.NewErrorDetail(dto.ErrorCodeConflict, "Conflict")}

	// 400
	case errors.Is(err, apperrors.ErrInvalidApprovalVerb):
		return errorMapping{400, dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Action must be approve or reject")}
	case errors.Is(err, apperrors.ErrInvalidEmail):
		return errorMapping{400, dto.NewErrorDetail(dto.ErrorCodeInvalidEmail, messageOr(err, "Invalid email address"))}
	case errors.Is(err, apperrors.ErrInvalidPassword):
		return errorMapping{400, dto.NewErrorDetail(dto.ErrorCodeInvalidPassword, messageOr(err, "Invalid password"))}
	case errors.Is(err, apperrors.ErrPasswordMismatch):
		return errorMapping{400, dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Passwords do not match")}
	case errors.Is(err, apperrors.ErrInvalidStudentID):
		return errorMapping{400, dto.NewErrorDetail(dto.ErrorCodeInvalidStudentID, messageOr(err, "Invalid student ID"))}
	case errors.Is(err, apperrors.ErrInvalidRole):
		return errorMapping{400, dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Select a valid role")}
	case errors.Is(err, apperrors.ErrValidationFailed):
		return errorMapping{400, dto.NewErrorDetail(dto.ErrorCodeValidationFailed, messageOr(err, "Validation failed"))}
	case errors.Is(err, apperrors.ErrBadRequest):
		return errorMapping{400, dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Bad request")}

	default:
		return errorMapping{500, dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal server error")}
	}
}

// messageOr prefers the wrapped message over the generic fallback, so field
// validation errors reach the client verbatim.
func messageOr(err error, fallback string) string {
	var custom *apperrors.CustomError
	if errors.As(err, &custom) && custom.Message != "" {
		return custom.Message
	}
	return fallback
}
