package dto

import "github.com/rakib/uniportal/internal/app/models"

// Approval actions
const (
	ApprovalActionApprove = "approve"
	ApprovalActionReject  = "reject"
)

// RegisterCourseRequest registers the session's student for a course in their
// current term.
type RegisterCourseRequest struct {
	CourseID int64 `json:"courseId" binding:"required" example:"12"`
}

// ApprovalRequest decides one pending enrollment.
type ApprovalRequest struct {
	EnrollmentID int64  `json:"enrollmentId" binding:"required"`
	Action       string `json:"action" binding:"required" example:"approve"`
}

// StudentApprovals groups a student's pending enrollments for the approval queue.
type StudentApprovals struct {
	Student     *models.Student      `json:"student"`
	Enrollments []*models.Enrollment `json:"enrollments"`
}

// ApprovalQueueResponse is the faculty approval page payload.
type ApprovalQueueResponse struct {
	Term     string              `json:"term"`
	Students []*StudentApprovals `json:"students"`
}

// RegistrationPageResponse is the student registration page payload. The
// clearance flag is informational; registration is not gated on it.
type RegistrationPageResponse struct {
	Student            *models.Student      `json:"student"`
	IsCleared          bool                 `json:"isCleared"`
	AvailableCourses   []*models.Course     `json:"availableCourses"`
	CurrentEnrollments []*models.Enrollment `json:"currentEnrollments"`
}
