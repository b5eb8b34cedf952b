package services

import (
	"github.com/rs/zerolog"

	"github.com/rakib/uniportal/internal/app/repositories"
	"github.com/rakib/uniportal/internal/pkg/auth"
)

// Services bundles all service instances
type Services struct {
	Auth       *AuthService
	Student    *StudentService
	Enrollment *EnrollmentService
	Department *DepartmentService
	Course     *CourseService
	Faculty    *FacultyService
	Admin      *AdminService
}

// NewServices creates the service layer on top of the repositories
func NewServices(repos *repositories.Repositories, jwtService *auth.JWTService, activeTerm string, logger zerolog.Logger) *Services {
	studentService := NewStudentService(
		repos.StudentRepository, repos.CourseRepository, repos.EnrollmentRepository,
		repos.ResultRepository, repos.DepartmentRepository,
		activeTerm, logger)

	return &Services{
		Auth: NewAuthService(
			repos.UserRepository, repos.TokenRepository, repos.StudentRepository,
			repos.FacultyRepository, repos.DepartmentRepository,
			studentService, jwtService, logger),
		Student: studentService,
		Enrollment: NewEnrollmentService(
			repos.EnrollmentRepository, repos.StudentRepository, repos.CourseRepository,
			repos.FacultyRepository, repos.DepartmentRepository,
			activeTerm, logger),
		Department: NewDepartmentService(repos.DepartmentRepository, logger),
		Course:     NewCourseService(repos.CourseRepository, logger),
		Faculty:    NewFacultyService(repos.FacultyRepository, logger),
		Admin:      NewAdminService(repos.DepartmentRepository, repos.CourseRepository, repos.FacultyRepository, logger),
	}
}
