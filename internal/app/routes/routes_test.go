package routes

import (
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/rakib/uniportal/internal/app/controllers"
	"github.com/rakib/uniportal/internal/middleware"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	lgr := zerolog.Nop()
	SetupRouter(
		router,
		controllers.NewAuthController(nil, lgr),
		controllers.NewStudentController(nil, nil, lgr),
		controllers.NewFacultyController(nil, lgr),
		controllers.NewDepartmentController(nil, lgr),
		controllers.NewCourseController(nil, lgr),
		controllers.NewFacultyMemberController(nil, lgr),
		controllers.NewAdminController(nil, lgr),
		middleware.NewAuthMiddleware(nil),
	)
	return router
}

func registeredRoutes(router *gin.Engine) map[string]bool {
	routes := make(map[string]bool)
	for _, route := range router.Routes() {
		routes[route.Method+" "+route.Path] = true
	}
	return routes
}

func TestFacultyMemberRoutesLiveUnderAdmin(t *testing.T) {
	routes := registeredRoutes(newTestRouter())

	for _, want := range []string{
		"GET /api/v1/admin/faculty-members",
		"GET /api/v1/admin/faculty-members/:id",
		"POST /api/v1/admin/faculty-members",
		"PUT /api/v1/admin/faculty-members/:id",
		"DELETE /api/v1/admin/faculty-members/:id",
	} {
		if !routes[want] {
			t.Errorf("route %q is not registered", want)
		}
	}

	if routes["GET /api/v1/faculty-members"] || routes["GET /api/v1/faculty-members/:id"] {
		t.Error("faculty member reads must not be public")
	}
}

func TestPublicCatalogRoutes(t *testing.T) {
	routes := registeredRoutes(newTestRouter())

	for _, want := range []string{
		"GET /api/v1/health",
		"GET /api/v1/departments",
		"GET /api/v1/departments/:id",
		"GET /api/v1/courses",
		"GET /api/v1/courses/:id",
	} {
		if !routes[want] {
			t.Errorf("route %q is not registered", want)
		}
	}
}
