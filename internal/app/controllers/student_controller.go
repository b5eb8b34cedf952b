package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/rakib/uniportal/internal/app/models/dto"
	"github.com/rakib/uniportal/internal/app/services"
	"github.com/rakib/uniportal/internal/middleware"
)

// StudentController handles the student-facing pages
type StudentController struct {
	studentService    *services.StudentService
	enrollmentService *services.EnrollmentService
	logger            zerolog.Logger
}

// NewStudentController creates a new StudentController
func NewStudentController(studentService *services.StudentService, enrollmentService *services.EnrollmentService, logger zerolog.Logger) *StudentController {
	return &StudentController{
		studentService:    studentService,
		enrollmentService: enrollmentService,
		logger:            logger,
	}
}

func sessionUserID(ctx *gin.Context) (int64, bool) {
	userID, ok := middleware.GetUserID(ctx)
	if !ok {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
	}
	return userID, ok
}

// Dashboard builds the student landing page
// @Summary Student dashboard
// @Description Returns the student's credit progress, the course catalog, completed courses and pending registrations.
// @Tags students
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.StudentDashboardResponse} "Dashboard"
// @Failure 404 {object} dto.ErrorResponse "Student profile not found"
// @Router /students/dashboard [get]
func (c *StudentController) Dashboard(ctx *gin.Context) {
	userID, ok := sessionUserID(ctx)
	if !ok {
		return
	}

	dashboard, err := c.studentService.Dashboard(ctx.Request.Context(), userID)
	if err != nil {
		c.logger.Error().Err(err).Int64("userID", userID).Msg("Failed to build student dashboard")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dashboard))
}

// MyCourses lists the student's current-term enrollments
// @Summary My courses
// @Description Lists the student's enrollments for the current term across all statuses.
// @Tags students
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.MyCoursesResponse} "Enrollments"
// @Failure 404 {object} dto.ErrorResponse "Student profile not found"
// @Router /students/courses [get]
func (c *StudentController) MyCourses(ctx *gin.Context) {
	userID, ok := sessionUserID(ctx)
	if !ok {
		return
	}

	courses, err := c.studentService.MyCourses(ctx.Request.Context(), userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(courses))
}

// RegistrationPage builds the course registration view
// @Summary Registration page
// @Description Returns the courses still open to the student this term alongside their current requests.
// @Tags students
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.RegistrationPageResponse} "Registration page"
// @Failure 404 {object} dto.ErrorResponse "Student profile not found"
// @Router /students/registration [get]
func (c *StudentController) RegistrationPage(ctx *gin.Context) {
	userID, ok := sessionUserID(ctx)
	if !ok {
		return
	}

	page, err := c.enrollmentService.RegistrationPage(ctx.Request.Context(), userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(page))
}

// Register submits a course registration
// @Summary Register for a course
// @Description Creates a pending enrollment for the current term, awaiting faculty approval.
// @Tags students
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.RegisterCourseRequest true "Course to register"
// @Success 201 {object} dto.APIResponse{data=models.Enrollment} "Pending enrollment"
// @Failure 404 {object} dto.ErrorResponse "Course or student not found"
// @Failure 409 {object} dto.ErrorResponse "Already registered this term"
// @Router /students/registration [post]
func (c *StudentController) Register(ctx *gin.Context) {
	userID, ok := sessionUserID(ctx)
	if !ok {
		return
	}

	var req dto.RegisterCourseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request format")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	enrollment, err := c.enrollmentService.Register(ctx.Request.Context(), userID, req.CourseID)
	if err != nil {
		c.logger.Warn().Err(err).Int64("userID", userID).Int64("courseID", req.CourseID).Msg("Course registration failed")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(enrollment))
}

// Results builds the result page
// @Summary Semester results
// @Description Returns the terms the student has results for plus the selected term's graded courses. Defaults to the first term on record.
// @Tags students
// @Produce json
// @Security BearerAuth
// @Param term query string false "Term label" example("Spring 2025, 251")
// @Success 200 {object} dto.APIResponse{data=dto.ResultPageResponse} "Result page"
// @Failure 404 {object} dto.ErrorResponse "No result for this term"
// @Router /students/results [get]
func (c *StudentController) Results(ctx *gin.Context) {
	userID, ok := sessionUserID(ctx)
	if !ok {
		return
	}

	page, err := c.studentService.Results(ctx.Request.Context(), userID, ctx.Query("term"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(page))
}
