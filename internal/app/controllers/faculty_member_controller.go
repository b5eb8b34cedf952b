package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/rakib/uniportal/internal/app/models/dto"
	"github.com/rakib/uniportal/internal/app/services"
	"github.com/rakib/uniportal/internal/middleware"
)

// FacultyMemberController handles the faculty member catalog
type FacultyMemberController struct {
	facultyService *services.FacultyService
	logger         zerolog.Logger
}

// NewFacultyMemberController creates a new FacultyMemberController
func NewFacultyMemberController(facultyService *services.FacultyService, logger zerolog.Logger) *FacultyMemberController {
	return &FacultyMemberController{
		facultyService: facultyService,
		logger:         logger,
	}
}

// List lists all faculty members
// @Summary List faculty members
// @Tags faculty-members
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.FacultyMember} "Faculty members"
// @Router /admin/faculty-members [get]
func (c *FacultyMemberController) List(ctx *gin.Context) {
	members, err := c.facultyService.GetAll(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(members))
}

// Get retrieves one faculty member
// @Summary Get a faculty member
// @Tags faculty-members
// @Produce json
// @Security BearerAuth
// @Param id path int true "Faculty member ID"
// @Success 200 {object} dto.APIResponse{data=models.FacultyMember} "Faculty member"
// @Failure 404 {object} dto.ErrorResponse "Faculty member not found"
// @Router /admin/faculty-members/{id} [get]
func (c *FacultyMemberController) Get(ctx *gin.Context) {
	id, ok := pathID(ctx)
	if !ok {
		return
	}

	member, err := c.facultyService.GetByID(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(member))
}

// Create finds or creates a faculty member
// @Summary Create a faculty member
// @Description Creates a faculty record, or returns the existing one when the faculty ID is already present.
// @Tags faculty-members
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateFacultyMemberRequest true "Faculty member"
// @Success 201 {object} dto.APIResponse{data=models.FacultyMember} "Created"
// @Success 200 {object} dto.APIResponse{data=models.FacultyMember} "Already present"
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Router /admin/faculty-members [post]
func (c *FacultyMemberController) Create(ctx *gin.Context) {
	var req dto.CreateFacultyMemberRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request format")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	member, created, err := c.facultyService.Create(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	ctx.JSON(status, dto.NewAPIResponse(member))
}

// Update replaces a faculty member
// @Summary Update a faculty member
// @Tags faculty-members
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Faculty member ID"
// @Param request body dto.UpdateFacultyMemberRequest true "Faculty member"
// @Success 200 {object} dto.APIResponse{data=models.FacultyMember} "Updated"
// @Failure 404 {object} dto.ErrorResponse "Faculty member not found"
// @Failure 409 {object} dto.ErrorResponse "Faculty ID or email already used"
// @Router /admin/faculty-members/{id} [put]
func (c *FacultyMemberController) Update(ctx *gin.Context) {
	id, ok := pathID(ctx)
	if !ok {
		return
	}

	var req dto.UpdateFacultyMemberRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request format")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	member, err := c.facultyService.Update(ctx.Request.Context(), id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(member))
}

// Delete removes a faculty member
// @Summary Delete a faculty member
// @Description Deletes a faculty record; the linked login account, if any, is kept.
// @Tags faculty-members
// @Produce json
// @Security BearerAuth
// @Param id path int true "Faculty member ID"
// @Success 204 "Deleted"
// @Failure 404 {object} dto.ErrorResponse "Faculty member not found"
// @Router /admin/faculty-members/{id} [delete]
func (c *FacultyMemberController) Delete(ctx *gin.Context) {
	id, ok := pathID(ctx)
	if !ok {
		return
	}

	if err := c.facultyService.Delete(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}
