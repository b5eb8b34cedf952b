package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/rakib/uniportal/internal/app/models/dto"
	"github.com/rakib/uniportal/internal/app/services"
	"github.com/rakib/uniportal/internal/middleware"
)

// DepartmentController handles the department catalog
type DepartmentController struct {
	departmentService *services.DepartmentService
	logger            zerolog.Logger
}

// NewDepartmentController creates a new DepartmentController
func NewDepartmentController(departmentService *services.DepartmentService, logger zerolog.Logger) *DepartmentController {
	return &DepartmentController{
		departmentService: departmentService,
		logger:            logger,
	}
}

func pathID(ctx *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid ID")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return 0, false
	}
	return id, true
}

// List lists all departments
// @Summary List departments
// @Tags departments
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]models.Department} "Departments"
// @Router /departments [get]
func (c *DepartmentController) List(ctx *gin.Context) {
	departments, err := c.departmentService.GetAll(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(departments))
}

// Get retrieves one department
// @Summary Get a department
// @Tags departments
// @Produce json
// @Param id path int true "Department ID"
// @Success 200 {object} dto.APIResponse{data=models.Department} "Department"
// @Failure 404 {object} dto.ErrorResponse "Department not found"
// @Router /departments/{id} [get]
func (c *DepartmentController) Get(ctx *gin.Context) {
	id, ok := pathID(ctx)
	if !ok {
		return
	}

	department, err := c.departmentService.GetByID(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(department))
}

// Create finds or creates a department
// @Summary Create a department
// @Description Creates a department, or returns the existing one when the name/code pair is already present.
// @Tags departments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateDepartmentRequest true "Department"
// @Success 201 {object} dto.APIResponse{data=models.Department} "Created"
// @Success 200 {object} dto.APIResponse{data=models.Department} "Already present"
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Router /admin/departments [post]
func (c *DepartmentController) Create(ctx *gin.Context) {
	var req dto.CreateDepartmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request format")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	department, created, err := c.departmentService.Create(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	ctx.JSON(status, dto.NewAPIResponse(department))
}

// Update replaces a department
// @Summary Update a department
// @Tags departments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Department ID"
// @Param request body dto.UpdateDepartmentRequest true "Department"
// @Success 200 {object} dto.APIResponse{data=models.Department} "Updated"
// @Failure 404 {object} dto.ErrorResponse "Department not found"
// @Failure 409 {object} dto.ErrorResponse "Name or code already used"
// @Router /admin/departments/{id} [put]
func (c *DepartmentController) Update(ctx *gin.Context) {
	id, ok := pathID(ctx)
	if !ok {
		return
	}

	var req dto.UpdateDepartmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request format")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	department, err := c.departmentService.Update(ctx.Request.Context(), id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(department))
}

// Delete removes a department
// @Summary Delete a department
// @Description Deletes a department; its students, courses and faculty members are detached.
// @Tags departments
// @Produce json
// @Security BearerAuth
// @Param id path int true "Department ID"
// @Success 204 "Deleted"
// @Failure 404 {object} dto.ErrorResponse "Department not found"
// @Router /admin/departments/{id} [delete]
func (c *DepartmentController) Delete(ctx *gin.Context) {
	id, ok := pathID(ctx)
	if !ok {
		return
	}

	if err := c.departmentService.Delete(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}
