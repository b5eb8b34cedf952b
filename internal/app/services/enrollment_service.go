package services

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/rakib/uniportal/internal/app/models"
	"github.com/rakib/uniportal/internal/app/models/dto"
	"github.com/rakib/uniportal/internal/pkg/apperrors"
)

// Narrow views over the repositories, scoped to what the enrollment workflow
// touches. The concrete repositories satisfy them.

type enrollmentStore interface {
	Create(ctx context.Context, enrollment *models.Enrollment) error
	GetByID(ctx context.Context, id int64) (*models.Enrollment, error)
	GetByStudentAndTerm(ctx context.Context, studentID int64, term string) ([]*models.Enrollment, error)
	GetPendingByDepartmentAndTerm(ctx context.Context, departmentID int64, term string) ([]*models.Enrollment, error)
	CountByDepartmentTermAndStatus(ctx context.Context, departmentID int64, term string, status models.EnrollmentStatus) (int, error)
	UpdateStatus(ctx context.Context, id int64, status models.EnrollmentStatus) error
}

type studentStore interface {
	GetByUserID(ctx context.Context, userID int64) (*models.Student, error)
	GetByDepartmentID(ctx context.Context, departmentID int64) ([]*models.Student, error)
	CountByDepartmentID(ctx context.Context, departmentID int64) (int, error)
}

type courseStore interface {
	GetByID(ctx context.Context, id int64) (*models.Course, error)
	GetAvailableForStudent(ctx context.Context, studentID int64, term string) ([]*models.Course, error)
}

type facultyStore interface {
	GetByUserID(ctx context.Context, userID int64) (*models.FacultyMember, error)
}

type departmentStore interface {
	GetByID(ctx context.Context, id int64) (*models.Department, error)
}

// EnrollmentService runs the registration and approval workflow
type EnrollmentService struct {
	enrollments enrollmentStore
	students    studentStore
	courses     courseStore
	faculty     facultyStore
	departments departmentStore
	activeTerm  string
	logger      zerolog.Logger
}

// NewEnrollmentService creates a new EnrollmentService
func NewEnrollmentService(
	enrollments enrollmentStore,
	students studentStore,
	courses courseStore,
	faculty facultyStore,
	departments departmentStore,
	activeTerm string,
	logger zerolog.Logger,
) *EnrollmentService {
	return &EnrollmentService{
		enrollments: enrollments,
		students:    students,
		courses:     courses,
		faculty:     faculty,
		departments: departments,
		activeTerm:  activeTerm,
		logger:      logger,
	}
}

// RegistrationPage builds the student registration view: courses still open to
// the student this term, alongside what they already requested.
func (s *EnrollmentService) RegistrationPage(ctx context.Context, userID int64) (*dto.RegistrationPageResponse, error) {
	student, err := s.students.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	term := CurrentTermFor(student, s.activeTerm)

	available, err := s.courses.GetAvailableForStudent(ctx, student.ID, term)
	if err != nil {
		return nil, err
	}
	current, err := s.enrollments.GetByStudentAndTerm(ctx, student.ID, term)
	if err != nil {
		return nil, err
	}

	return &dto.RegistrationPageResponse{
		Student:            student,
		IsCleared:          student.IsClearedForRegistration,
		AvailableCourses:   available,
		CurrentEnrollments: current,
	}, nil
}

// Register creates a pending enrollment for the session's student in their
// current term. Registering the same course twice in a term yields
// ErrAlreadyRegistered; the decision is left to the department's faculty.
func (s *EnrollmentService) Register(ctx context.Context, userID int64, courseID int64) (*models.Enrollment, error) {
	student, err := s.students.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	term := CurrentTermFor(student, s.activeTerm)

	course, err := s.courses.GetByID(ctx, courseID)
	if err != nil {
		return nil, err
	}

	enrollment := &models.Enrollment{
		StudentID: student.ID,
		CourseID:  course.ID,
		Term:      term,
		Status:    models.EnrollmentPending,
	}
	if err := s.enrollments.Create(ctx, enrollment); err != nil {
		return nil, err
	}
	enrollment.Student = student
	enrollment.Course = course

	s.logger.Info().
		Int64("studentID", student.ID).
		Str("course", course.Code).
		Str("term", term).
		Msg("Course registration submitted")
	return enrollment, nil
}

// Decide applies a faculty member's approve/reject verdict to a pending
// enrollment. The target student must belong to the deciding member's
// department; decided enrollments are immutable.
func (s *EnrollmentService) Decide(ctx context.Context, facultyUserID int64, req *dto.ApprovalRequest) (*models.Enrollment, error) {
	var status models.EnrollmentStatus
	switch req.Action {
	case dto.ApprovalActionApprove:
		status = models.EnrollmentApproved
	case dto.ApprovalActionReject:
		status = models.EnrollmentRejected
	default:
		return nil, apperrors.ErrInvalidApprovalVerb
	}

	member, err := s.faculty.GetByUserID(ctx, facultyUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrFacultyNotFound) {
			return nil, apperrors.ErrPermissionDenied
		}
		return nil, err
	}

	enrollment, err := s.enrollments.GetByID(ctx, req.EnrollmentID)
	if err != nil {
		return nil, err
	}

	if !s.inAdviseeScope(member, enrollment.Student) {
		s.logger.Warn().
			Int64("facultyUserID", facultyUserID).
			Int64("enrollmentID", enrollment.ID).
			Msg("Approval attempt outside advisee scope")
		return nil, apperrors.ErrApprovalOutOfScope
	}

	if err := s.enrollments.UpdateStatus(ctx, enrollment.ID, status); err != nil {
		return nil, err
	}
	enrollment.Status = status

	s.logger.Info().
		Int64("enrollmentID", enrollment.ID).
		Str("status", string(status)).
		Str("facultyID", member.FacultyID).
		Msg("Enrollment decided")
	return enrollment, nil
}

// inAdviseeScope reports whether the student is among the member's advisees:
// both must carry the same department. A member without a department has no
// advisees.
func (s *EnrollmentService) inAdviseeScope(member *models.FacultyMember, student *models.Student) bool {
	if member.DepartmentID == nil || student == nil || student.DepartmentID == nil {
		return false
	}
	return *member.DepartmentID == *student.DepartmentID
}

// ApprovalQueue builds the faculty approval page: the term's pending
// enrollments of the member's department, grouped per student. An empty
// term selects the active term.
func (s *EnrollmentService) ApprovalQueue(ctx context.Context, facultyUserID int64, term string) (*dto.ApprovalQueueResponse, error) {
	member, err := s.faculty.GetByUserID(ctx, facultyUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrFacultyNotFound) {
			return nil, apperrors.ErrPermissionDenied
		}
		return nil, err
	}

	if term == "" {
		term = s.activeTerm
	}
	queue := &dto.ApprovalQueueResponse{Term: term}
	if member.DepartmentID == nil {
		return queue, nil
	}

	pending, err := s.enrollments.GetPendingByDepartmentAndTerm(ctx, *member.DepartmentID, term)
	if err != nil {
		return nil, err
	}

	byStudent := make(map[int64]*dto.StudentApprovals)
	for _, enrollment := range pending {
		group, ok := byStudent[enrollment.StudentID]
		if !ok {
			group = &dto.StudentApprovals{Student: enrollment.Student}
			byStudent[enrollment.StudentID] = group
			queue.Students = append(queue.Students, group)
		}
		group.Enrollments = append(group.Enrollments, enrollment)
	}

	return queue, nil
}

// Advisees lists the students of the member's department
func (s *EnrollmentService) Advisees(ctx context.Context, facultyUserID int64) ([]*models.Student, error) {
	member, err := s.faculty.GetByUserID(ctx, facultyUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrFacultyNotFound) {
			return nil, apperrors.ErrPermissionDenied
		}
		return nil, err
	}
	if member.DepartmentID == nil {
		return []*models.Student{}, nil
	}
	return s.students.GetByDepartmentID(ctx, *member.DepartmentID)
}

// FacultyDashboard aggregates the faculty landing page counters for the
// active term.
func (s *EnrollmentService) FacultyDashboard(ctx context.Context, facultyUserID int64) (*dto.FacultyDashboardResponse, error) {
	member, err := s.faculty.GetByUserID(ctx, facultyUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrFacultyNotFound) {
			return nil, apperrors.ErrPermissionDenied
		}
		return nil, err
	}

	resp := &dto.FacultyDashboardResponse{
		FacultyID: member.FacultyID,
		Name:      member.Name,
		Term:      s.activeTerm,
	}
	if member.DepartmentID == nil {
		return resp, nil
	}

	department, err := s.departments.GetByID(ctx, *member.DepartmentID)
	if err == nil {
		resp.Department = department.Name
	} else if !errors.Is(err, apperrors.ErrDepartmentNotFound) {
		return nil, err
	}

	resp.AdviseeCount, err = s.students.CountByDepartmentID(ctx, *member.DepartmentID)
	if err != nil {
		return nil, err
	}
	resp.PendingCount, err = s.enrollments.CountByDepartmentTermAndStatus(ctx, *member.DepartmentID, s.activeTerm, models.EnrollmentPending)
	if err != nil {
		return nil, err
	}
	resp.ApprovedCount, err = s.enrollments.CountByDepartmentTermAndStatus(ctx, *member.DepartmentID, s.activeTerm, models.EnrollmentApproved)
	if err != nil {
		return nil, err
	}

	return resp, nil
}
