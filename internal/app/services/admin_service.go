package services

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/rakib/uniportal/internal/app/models/dto"
	"github.com/rakib/uniportal/internal/app/repositories"
)

// semesterNames in academic-calendar order; the position feeds the term code.
var semesterNames = [...]string{"Spring", "Summer", "Fall", "Short"}

// SemesterOptions generates the semester labels from fromYear through toYear,
// most recent first. A term code packs the two-digit year with the semester's
// position: Spring 2025 becomes 251.
func SemesterOptions(fromYear, toYear int) []dto.SemesterOption {
	if toYear < fromYear {
		return []dto.SemesterOption{}
	}

	options := make([]dto.SemesterOption, 0, (toYear-fromYear+1)*len(semesterNames))
	for year := toYear; year >= fromYear; year-- {
		for i := len(semesterNames) - 1; i >= 0; i-- {
			code := (year%100)*10 + i + 1
			options = append(options, dto.SemesterOption{
				Label: fmt.Sprintf("%s %d, %d", semesterNames[i], year, code),
			})
		}
	}
	return options
}

// AdminService aggregates the admin views over the catalog
type AdminService struct {
	departmentRepo *repositories.DepartmentRepository
	courseRepo     *repositories.CourseRepository
	facultyRepo    *repositories.FacultyRepository
	logger         zerolog.Logger
}

// NewAdminService creates a new AdminService
func NewAdminService(
	departmentRepo *repositories.DepartmentRepository,
	courseRepo *repositories.CourseRepository,
	facultyRepo *repositories.FacultyRepository,
	logger zerolog.Logger,
) *AdminService {
	return &AdminService{
		departmentRepo: departmentRepo,
		courseRepo:     courseRepo,
		facultyRepo:    facultyRepo,
		logger:         logger,
	}
}

// Dashboard builds the admin landing page: catalog counts plus the full lists
func (s *AdminService) Dashboard(ctx context.Context) (*dto.AdminDashboardResponse, error) {
	departments, err := s.departmentRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	courses, err := s.courseRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	members, err := s.facultyRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	return &dto.AdminDashboardResponse{
		TotalDepartments: len(departments),
		TotalCourses:     len(courses),
		TotalFaculty:     len(members),
		Departments:      departments,
		Courses:          courses,
		FacultyMembers:   members,
	}, nil
}

// Semesters lists the selectable semester labels for the previous, current
// and next year, so upcoming terms can be planned ahead.
func (s *AdminService) Semesters() []dto.SemesterOption {
	year := time.Now().Year()
	return SemesterOptions(year-1, year+1)
}
