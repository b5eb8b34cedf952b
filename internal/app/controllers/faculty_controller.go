package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/rakib/uniportal/internal/app/models/dto"
	"github.com/rakib/uniportal/internal/app/services"
	"github.com/rakib/uniportal/internal/middleware"
)

// FacultyController handles the faculty-facing pages
type FacultyController struct {
	enrollmentService *services.EnrollmentService
	logger            zerolog.Logger
}

// NewFacultyController creates a new FacultyController
func NewFacultyController(enrollmentService *services.EnrollmentService, logger zerolog.Logger) *FacultyController {
	return &FacultyController{
		enrollmentService: enrollmentService,
		logger:            logger,
	}
}

// Dashboard builds the faculty landing page
// @Summary Faculty dashboard
// @Description Returns the member's advisee count and the active term's pending and approved registration counters.
// @Tags faculty
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.FacultyDashboardResponse} "Dashboard"
// @Failure 403 {object} dto.ErrorResponse "No faculty record linked to this account"
// @Router /faculty/dashboard [get]
func (c *FacultyController) Dashboard(ctx *gin.Context) {
	userID, ok := sessionUserID(ctx)
	if !ok {
		return
	}

	dashboard, err := c.enrollmentService.FacultyDashboard(ctx.Request.Context(), userID)
	if err != nil {
		c.logger.Error().Err(err).Int64("userID", userID).Msg("Failed to build faculty dashboard")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dashboard))
}

// Advisees lists the member's department students
// @Summary Advisee list
// @Description Lists the students of the member's department, ordered by student number.
// @Tags faculty
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.Student} "Advisees"
// @Failure 403 {object} dto.ErrorResponse "No faculty record linked to this account"
// @Router /faculty/students [get]
func (c *FacultyController) Advisees(ctx *gin.Context) {
	userID, ok := sessionUserID(ctx)
	if !ok {
		return
	}

	students, err := c.enrollmentService.Advisees(ctx.Request.Context(), userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(students))
}

// ApprovalQueue lists the pending registrations awaiting this member
// @Summary Approval queue
// @Description Returns the term's pending enrollments of the member's department, grouped per student. Defaults to the active term.
// @Tags faculty
// @Produce json
// @Security BearerAuth
// @Param term query string false "Term label, e.g. Spring 2025, 251"
// @Success 200 {object} dto.APIResponse{data=dto.ApprovalQueueResponse} "Approval queue"
// @Failure 403 {object} dto.ErrorResponse "No faculty record linked to this account"
// @Router /faculty/approvals [get]
func (c *FacultyController) ApprovalQueue(ctx *gin.Context) {
	userID, ok := sessionUserID(ctx)
	if !ok {
		return
	}

	queue, err := c.enrollmentService.ApprovalQueue(ctx.Request.Context(), userID, ctx.Query("term"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(queue))
}

// Decide applies an approve/reject verdict to a pending enrollment
// @Summary Decide an enrollment
// @Description Approves or rejects a pending enrollment of one of the member's advisees. Decisions are final.
// @Tags faculty
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.ApprovalRequest true "Verdict"
// @Success 200 {object} dto.APIResponse{data=models.Enrollment} "Decided enrollment"
// @Failure 400 {object} dto.ErrorResponse "Unknown action"
// @Failure 403 {object} dto.ErrorResponse "Student is not among this member's advisees"
// @Failure 409 {object} dto.ErrorResponse "Enrollment already decided"
// @Router /faculty/approvals [post]
func (c *FacultyController) Decide(ctx *gin.Context) {
	userID, ok := sessionUserID(ctx)
	if !ok {
		return
	}

	var req dto.ApprovalRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request format")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	enrollment, err := c.enrollmentService.Decide(ctx.Request.Context(), userID, &req)
	if err != nil {
		c.logger.Warn().Err(err).
			Int64("userID", userID).
			Int64("enrollmentID", req.EnrollmentID).
			Str("action", req.Action).
			Msg("Enrollment decision failed")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(enrollment))
}
