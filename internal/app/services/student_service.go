package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/rakib/uniportal/internal/app/models"
	"github.com/rakib/uniportal/internal/app/models/dto"
	"github.com/rakib/uniportal/internal/app/repositories"
	"github.com/rakib/uniportal/internal/pkg/apperrors"
)

// StudentService handles student profiles and the student-facing pages
type StudentService struct {
	studentRepo    *repositories.StudentRepository
	courseRepo     *repositories.CourseRepository
	enrollmentRepo *repositories.EnrollmentRepository
	resultRepo     *repositories.ResultRepository
	departmentRepo *repositories.DepartmentRepository
	activeTerm     string
	logger         zerolog.Logger
}

// NewStudentService creates a new StudentService
func NewStudentService(
	studentRepo *repositories.StudentRepository,
	courseRepo *repositories.CourseRepository,
	enrollmentRepo *repositories.EnrollmentRepository,
	resultRepo *repositories.ResultRepository,
	departmentRepo *repositories.DepartmentRepository,
	activeTerm string,
	logger zerolog.Logger,
) *StudentService {
	return &StudentService{
		studentRepo:    studentRepo,
		courseRepo:     courseRepo,
		enrollmentRepo: enrollmentRepo,
		resultRepo:     resultRepo,
		departmentRepo: departmentRepo,
		activeTerm:     activeTerm,
		logger:         logger,
	}
}

// SynthesizeStudentID derives a placeholder student number from a user ID, for
// accounts provisioned without one.
func SynthesizeStudentID(userID int64) string {
	return fmt.Sprintf("S-%06d", userID)
}

// CurrentTermFor returns the term a student registers in: their own current
// term when set, otherwise the configured active term.
func CurrentTermFor(student *models.Student, activeTerm string) string {
	if student != nil && student.CurrentTerm != "" {
		return student.CurrentTerm
	}
	return activeTerm
}

// Provision creates the student profile for a user account if it does not
// exist yet, and returns the existing one otherwise. Safe to call more than
// once for the same account.
func (s *StudentService) Provision(ctx context.Context, user *models.User, studentID, fullName, batch string) (*models.Student, error) {
	return s.provision(ctx, user, studentID, fullName, nil, batch)
}

// ProvisionWithDetails provisions a student profile with a department resolved
// from its code. An unknown department code leaves the profile unassigned.
func (s *StudentService) ProvisionWithDetails(ctx context.Context, user *models.User, studentID, fullName, departmentCode, batch string) (*models.Student, error) {
	var departmentID *int64
	if code := strings.TrimSpace(departmentCode); code != "" {
		department, err := s.departmentRepo.GetByCode(ctx, code)
		if err == nil {
			departmentID = &department.ID
		} else if !errors.Is(err, apperrors.ErrDepartmentNotFound) {
			return nil, err
		}
	}
	return s.provision(ctx, user, studentID, fullName, departmentID, batch)
}

func (s *StudentService) provision(ctx context.Context, user *models.User, studentID, fullName string, departmentID *int64, batch string) (*models.Student, error) {
	existing, err := s.studentRepo.GetByUserID(ctx, user.ID)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, apperrors.ErrStudentNotFound) {
		return nil, err
	}

	if studentID = strings.TrimSpace(studentID); studentID == "" {
		studentID = SynthesizeStudentID(user.ID)
	}
	if fullName = strings.TrimSpace(fullName); fullName == "" {
		fullName = studentID
	}

	student := &models.Student{
		UserID:       user.ID,
		StudentID:    studentID,
		FullName:     fullName,
		DepartmentID: departmentID,
		Batch:        batch,
		CurrentTerm:  s.activeTerm,
	}
	if err := s.studentRepo.Create(ctx, student); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("userID", user.ID).Str("studentID", studentID).Msg("Student profile provisioned")
	return student, nil
}

// GetByUserID retrieves the student profile for a session, with the
// department attached.
func (s *StudentService) GetByUserID(ctx context.Context, userID int64) (*models.Student, error) {
	student, err := s.studentRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if err := s.attachDepartment(ctx, student); err != nil {
		return nil, err
	}
	return student, nil
}

func (s *StudentService) attachDepartment(ctx context.Context, student *models.Student) error {
	if student.DepartmentID == nil {
		return nil
	}
	department, err := s.departmentRepo.GetByID(ctx, *student.DepartmentID)
	if err != nil {
		if errors.Is(err, apperrors.ErrDepartmentNotFound) {
			return nil
		}
		return err
	}
	student.Department = department
	return nil
}

// Dashboard builds the student landing page: credit progress, the full course
// catalog, completed courses and pending registrations.
func (s *StudentService) Dashboard(ctx context.Context, userID int64) (*dto.StudentDashboardResponse, error) {
	student, err := s.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	term := CurrentTermFor(student, s.activeTerm)

	allCourses, err := s.courseRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	totalCredits, err := s.courseRepo.TotalCredits(ctx)
	if err != nil {
		return nil, err
	}
	completedCredits, err := s.resultRepo.SumCompletedCredits(ctx, student.ID)
	if err != nil {
		return nil, err
	}
	completedItems, err := s.resultRepo.GetItemsByStudent(ctx, student.ID)
	if err != nil {
		return nil, err
	}
	pendingRegs, err := s.enrollmentRepo.GetPendingByStudentAndTerm(ctx, student.ID, term)
	if err != nil {
		return nil, err
	}

	return &dto.StudentDashboardResponse{
		Student:          student,
		TotalCredits:     totalCredits,
		CompletedCredits: completedCredits,
		PendingCount:     len(pendingRegs),
		AllCourses:       allCourses,
		CompletedItems:   completedItems,
		PendingRegs:      pendingRegs,
	}, nil
}

// MyCourses lists the student's current-term enrollments across all statuses,
// rejected ones included.
func (s *StudentService) MyCourses(ctx context.Context, userID int64) (*dto.MyCoursesResponse, error) {
	student, err := s.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	term := CurrentTermFor(student, s.activeTerm)

	enrollments, err := s.enrollmentRepo.GetByStudentAndTerm(ctx, student.ID, term)
	if err != nil {
		return nil, err
	}

	return &dto.MyCoursesResponse{
		Student:     student,
		Term:        term,
		Enrollments: enrollments,
	}, nil
}

// defaultResultTerm picks the term shown when none is requested: the first
// entry of the term selector, which lists terms in ascending order.
func defaultResultTerm(terms []string) string {
	if len(terms) == 0 {
		return ""
	}
	return terms[0]
}

// Results builds the result page: the term selector plus the requested term's
// result. An empty term selects the first term on record.
func (s *StudentService) Results(ctx context.Context, userID int64, term string) (*dto.ResultPageResponse, error) {
	student, err := s.studentRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	terms, err := s.resultRepo.GetTermsByStudent(ctx, student.ID)
	if err != nil {
		return nil, err
	}

	page := &dto.ResultPageResponse{Terms: terms}
	if len(terms) == 0 {
		return page, nil
	}

	if term == "" {
		term = defaultResultTerm(terms)
	}

	result, err := s.resultRepo.GetByStudentAndTerm(ctx, student.ID, term)
	if err != nil {
		return nil, err
	}

	items, err := s.resultRepo.GetItemsByResultID(ctx, result.ID)
	if err != nil {
		return nil, err
	}

	page.SelectedTerm = term
	page.SelectedResult = result
	page.Items = items
	return page, nil
}
