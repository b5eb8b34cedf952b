package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rakib/uniportal/internal/app/controllers"
	"github.com/rakib/uniportal/internal/app/models"
	"github.com/rakib/uniportal/internal/app/models/dto"
	"github.com/rakib/uniportal/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	studentController *controllers.StudentController,
	facultyController *controllers.FacultyController,
	departmentController *controllers.DepartmentController,
	courseController *controllers.CourseController,
	facultyMemberController *controllers.FacultyMemberController,
	adminController *controllers.AdminController,
	authMiddleware *middleware.AuthMiddleware,
) {
	// API version group
	v1 := router.Group("/api/v1")

	// Health check endpoint (public)
	v1.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, dto.NewAPIResponse(gin.H{"status": "ok"}))
	})

	// --- Public catalog routes ---
	departments := v1.Group("/departments")
	{
		departments.GET("", departmentController.List)
		departments.GET("/:id", departmentController.Get)
	}

	courses := v1.Group("/courses")
	{
		courses.GET("", courseController.List)
		courses.GET("/:id", courseController.Get)
	}

	// --- Public auth routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/register", authController.Register)
		auth.POST("/register/student", authController.RegisterStudent)
		auth.POST("/login", authController.Login)
		auth.POST("/refresh", authController.RefreshToken)
	}

	// --- Authenticated routes ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		authenticated.GET("/auth/redirect", authController.Redirect)

		students := authenticated.Group("/students")
		students.Use(authMiddleware.RoleRequired(models.RoleStudent))
		{
			students.GET("/dashboard", studentController.Dashboard)
			students.GET("/courses", studentController.MyCourses)
			students.GET("/registration", studentController.RegistrationPage)
			students.POST("/registration", studentController.Register)
			students.GET("/results", studentController.Results)
		}

		faculty := authenticated.Group("/faculty")
		faculty.Use(authMiddleware.RoleRequired(models.RoleFaculty))
		{
			faculty.GET("/dashboard", facultyController.Dashboard)
			faculty.GET("/students", facultyController.Advisees)
			faculty.GET("/approvals", facultyController.ApprovalQueue)
			faculty.POST("/approvals", facultyController.Decide)
		}

		admin := authenticated.Group("/admin")
		admin.Use(authMiddleware.RoleRequired(models.RoleAdmin))
		{
			admin.GET("/dashboard", adminController.Dashboard)
			admin.GET("/semesters", adminController.Semesters)

			admin.POST("/departments", departmentController.Create)
			admin.PUT("/departments/:id", departmentController.Update)
			admin.DELETE("/departments/:id", departmentController.Delete)

			admin.POST("/courses", courseController.Create)
			admin.PUT("/courses/:id", courseController.Update)
			admin.DELETE("/courses/:id", courseController.Delete)

			admin.GET("/faculty-members", facultyMemberController.List)
			admin.GET("/faculty-members/:id", facultyMemberController.Get)
			admin.POST("/faculty-members", facultyMemberController.Create)
			admin.PUT("/faculty-members/:id", facultyMemberController.Update)
			admin.DELETE("/faculty-members/:id", facultyMemberController.Delete)
		}
	}
}
