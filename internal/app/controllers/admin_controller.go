package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/rakib/uniportal/internal/app/models/dto"
	"github.com/rakib/uniportal/internal/app/services"
	"github.com/rakib/uniportal/internal/middleware"
)

// AdminController handles the admin overview pages
type AdminController struct {
	adminService *services.AdminService
	logger       zerolog.Logger
}

// NewAdminController creates a new AdminController
func NewAdminController(adminService *services.AdminService, logger zerolog.Logger) *AdminController {
	return &AdminController{
		adminService: adminService,
		logger:       logger,
	}
}

// Dashboard builds the admin landing page
// @Summary Admin dashboard
// @Description Returns catalog counts plus the full department, course and faculty lists.
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.AdminDashboardResponse} "Dashboard"
// @Router /admin/dashboard [get]
func (c *AdminController) Dashboard(ctx *gin.Context) {
	dashboard, err := c.adminService.Dashboard(ctx.Request.Context())
	if err != nil {
		c.logger.Error().Err(err).Msg("Failed to build admin dashboard")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dashboard))
}

// Semesters lists the selectable semester labels
// @Summary Semester options
// @Description Returns the generated semester labels for course term assignment, most recent first.
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]dto.SemesterOption} "Semester labels"
// @Router /admin/semesters [get]
func (c *AdminController) Semesters(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(c.adminService.Semesters()))
}
