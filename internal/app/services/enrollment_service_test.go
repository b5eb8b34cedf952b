package services

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/rakib/uniportal/internal/app/models"
	"github.com/rakib/uniportal/internal/app/models/dto"
	"github.com/rakib/uniportal/internal/pkg/apperrors"
)

const testTerm = "Spring 2025, 251"

type fakeEnrollmentStore struct {
	byID     map[int64]*models.Enrollment
	pending  []*models.Enrollment
	created  []*models.Enrollment
	existing []*models.Enrollment

	createErr error
	updateErr error
	updated   map[int64]models.EnrollmentStatus
}

func newFakeEnrollmentStore() *fakeEnrollmentStore {
	return &fakeEnrollmentStore{
		byID:    make(map[int64]*models.Enrollment),
		updated: make(map[int64]models.EnrollmentStatus),
	}
}

func (f *fakeEnrollmentStore) Create(ctx context.Context, enrollment *models.Enrollment) error {
	if f.createErr != nil {
		return f.createErr
	}
	for _, e := range f.existing {
		if e.StudentID == enrollment.StudentID && e.CourseID == enrollment.CourseID && e.Term == enrollment.Term {
			return apperrors.ErrAlreadyRegistered
		}
	}
	enrollment.ID = int64(len(f.created) + 1)
	f.created = append(f.created, enrollment)
	return nil
}

func (f *fakeEnrollmentStore) GetByID(ctx context.Context, id int64) (*models.Enrollment, error) {
	e, ok := f.byID[id]
	if !ok {
		return nil, apperrors.ErrEnrollmentNotFound
	}
	return e, nil
}

func (f *fakeEnrollmentStore) GetByStudentAndTerm(ctx context.Context, studentID int64, term string) ([]*models.Enrollment, error) {
	var out []*models.Enrollment
	for _, e := range f.existing {
		if e.StudentID == studentID && e.Term == term {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeEnrollmentStore) GetPendingByDepartmentAndTerm(ctx context.Context, departmentID int64, term string) ([]*models.Enrollment, error) {
	return f.pending, nil
}

func (f *fakeEnrollmentStore) CountByDepartmentTermAndStatus(ctx context.Context, departmentID int64, term string, status models.EnrollmentStatus) (int, error) {
	count := 0
	for _, e := range f.pending {
		if e.Status == status {
			count++
		}
	}
	return count, nil
}

func (f *fakeEnrollmentStore) UpdateStatus(ctx context.Context, id int64, status models.EnrollmentStatus) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	f.updated[id] = status
	return nil
}

type fakeStudentStore struct {
	byUserID map[int64]*models.Student
	byDept   []*models.Student
}

func (f *fakeStudentStore) GetByUserID(ctx context.Context, userID int64) (*models.Student, error) {
	s, ok := f.byUserID[userID]
	if !ok {
		return nil, apperrors.ErrStudentNotFound
	}
	return s, nil
}

func (f *fakeStudentStore) GetByDepartmentID(ctx context.Context, departmentID int64) ([]*models.Student, error) {
	return f.byDept, nil
}

func (f *fakeStudentStore) CountByDepartmentID(ctx context.Context, departmentID int64) (int, error) {
	return len(f.byDept), nil
}

type fakeCourseStore struct {
	byID      map[int64]*models.Course
	available []*models.Course
}

func (f *fakeCourseStore) GetByID(ctx context.Context, id int64) (*models.Course, error) {
	c, ok := f.byID[id]
	if !ok {
		return nil, apperrors.ErrCourseNotFound
	}
	return c, nil
}

func (f *fakeCourseStore) GetAvailableForStudent(ctx context.Context, studentID int64, term string) ([]*models.Course, error) {
	return f.available, nil
}

type fakeFacultyStore struct {
	byUserID map[int64]*models.FacultyMember
}

func (f *fakeFacultyStore) GetByUserID(ctx context.Context, userID int64) (*models.FacultyMember, error) {
	m, ok := f.byUserID[userID]
	if !ok {
		return nil, apperrors.ErrFacultyNotFound
	}
	return m, nil
}

type fakeDepartmentStore struct {
	byID map[int64]*models.Department
}

func (f *fakeDepartmentStore) GetByID(ctx context.Context, id int64) (*models.Department, error) {
	d, ok := f.byID[id]
	if !ok {
		return nil, apperrors.ErrDepartmentNotFound
	}
	return d, nil
}

func int64ptr(v int64) *int64 { return &v }

func newTestEnrollmentService(
	enrollments *fakeEnrollmentStore,
	students *fakeStudentStore,
	courses *fakeCourseStore,
	faculty *fakeFacultyStore,
	departments *fakeDepartmentStore,
) *EnrollmentService {
	if enrollments == nil {
		enrollments = newFakeEnrollmentStore()
	}
	if students == nil {
		students = &fakeStudentStore{byUserID: make(map[int64]*models.Student)}
	}
	if courses == nil {
		courses = &fakeCourseStore{byID: make(map[int64]*models.Course)}
	}
	if faculty == nil {
		faculty = &fakeFacultyStore{byUserID: make(map[int64]*models.FacultyMember)}
	}
	if departments == nil {
		departments = &fakeDepartmentStore{byID: make(map[int64]*models.Department)}
	}
	return NewEnrollmentService(enrollments, students, courses, faculty, departments, testTerm, zerolog.Nop())
}

func TestRegister(t *testing.T) {
	ctx := context.Background()

	student := &models.Student{ID: 10, UserID: 1, StudentID: "22205341183", DepartmentID: int64ptr(5)}
	course := &models.Course{ID: 20, Code: "CSE101", Title: "Introduction to Programming", Credit: 3.0}

	t.Run("creates pending enrollment in active term", func(t *testing.T) {
		enrollments := newFakeEnrollmentStore()
		students := &fakeStudentStore{byUserID: map[int64]*models.Student{1: student}}
		courses := &fakeCourseStore{byID: map[int64]*models.Course{20: course}}
		svc := newTestEnrollmentService(enrollments, students, courses, nil, nil)

		enrollment, err := svc.Register(ctx, 1, 20)
		if err != nil {
			t.Fatalf("Register returned error: %v", err)
		}
		if enrollment.Status != models.EnrollmentPending {
			t.Errorf("status = %q, want %q", enrollment.Status, models.EnrollmentPending)
		}
		if enrollment.Term != testTerm {
			t.Errorf("term = %q, want %q", enrollment.Term, testTerm)
		}
		if enrollment.StudentID != student.ID || enrollment.CourseID != course.ID {
			t.Errorf("enrollment links = (%d, %d), want (%d, %d)",
				enrollment.StudentID, enrollment.CourseID, student.ID, course.ID)
		}
	})

	t.Run("uses the student's own current term when set", func(t *testing.T) {
		ownTerm := "Fall 2024, 243"
		s := &models.Student{ID: 11, UserID: 2, CurrentTerm: ownTerm}
		enrollments := newFakeEnrollmentStore()
		students := &fakeStudentStore{byUserID: map[int64]*models.Student{2: s}}
		courses := &fakeCourseStore{byID: map[int64]*models.Course{20: course}}
		svc := newTestEnrollmentService(enrollments, students, courses, nil, nil)

		enrollment, err := svc.Register(ctx, 2, 20)
		if err != nil {
			t.Fatalf("Register returned error: %v", err)
		}
		if enrollment.Term != ownTerm {
			t.Errorf("term = %q, want %q", enrollment.Term, ownTerm)
		}
	})

	t.Run("duplicate registration yields ErrAlreadyRegistered", func(t *testing.T) {
		enrollments := newFakeEnrollmentStore()
		enrollments.existing = []*models.Enrollment{
			{StudentID: student.ID, CourseID: course.ID, Term: testTerm, Status: models.EnrollmentPending},
		}
		students := &fakeStudentStore{byUserID: map[int64]*models.Student{1: student}}
		courses := &fakeCourseStore{byID: map[int64]*models.Course{20: course}}
		svc := newTestEnrollmentService(enrollments, students, courses, nil, nil)

		_, err := svc.Register(ctx, 1, 20)
		if !errors.Is(err, apperrors.ErrAlreadyRegistered) {
			t.Errorf("err = %v, want ErrAlreadyRegistered", err)
		}
	})

	t.Run("unknown course yields ErrCourseNotFound", func(t *testing.T) {
		students := &fakeStudentStore{byUserID: map[int64]*models.Student{1: student}}
		svc := newTestEnrollmentService(nil, students, nil, nil, nil)

		_, err := svc.Register(ctx, 1, 999)
		if !errors.Is(err, apperrors.ErrCourseNotFound) {
			t.Errorf("err = %v, want ErrCourseNotFound", err)
		}
	})

	t.Run("missing student profile yields ErrStudentNotFound", func(t *testing.T) {
		svc := newTestEnrollmentService(nil, nil, nil, nil, nil)

		_, err := svc.Register(ctx, 42, 20)
		if !errors.Is(err, apperrors.ErrStudentNotFound) {
			t.Errorf("err = %v, want ErrStudentNotFound", err)
		}
	})
}

func TestDecide(t *testing.T) {
	ctx := context.Background()

	member := &models.FacultyMember{ID: 1, FacultyID: "FAC-1001", Name: "Sharmin Akter", DepartmentID: int64ptr(5)}
	advisee := &models.Student{ID: 10, StudentID: "22205341183", DepartmentID: int64ptr(5)}
	outsider := &models.Student{ID: 11, StudentID: "22205341999", DepartmentID: int64ptr(7)}

	setup := func(student *models.Student) (*fakeEnrollmentStore, *EnrollmentService) {
		enrollments := newFakeEnrollmentStore()
		enrollments.byID[100] = &models.Enrollment{
			ID: 100, StudentID: student.ID, Term: testTerm,
			Status: models.EnrollmentPending, Student: student,
		}
		faculty := &fakeFacultyStore{byUserID: map[int64]*models.FacultyMember{3: member}}
		return enrollments, newTestEnrollmentService(enrollments, nil, nil, faculty, nil)
	}

	t.Run("approve within scope", func(t *testing.T) {
		enrollments, svc := setup(advisee)

		enrollment, err := svc.Decide(ctx, 3, &dto.ApprovalRequest{EnrollmentID: 100, Action: dto.ApprovalActionApprove})
		if err != nil {
			t.Fatalf("Decide returned error: %v", err)
		}
		if enrollment.Status != models.EnrollmentApproved {
			t.Errorf("status = %q, want %q", enrollment.Status, models.EnrollmentApproved)
		}
		if got := enrollments.updated[100]; got != models.EnrollmentApproved {
			t.Errorf("stored status = %q, want %q", got, models.EnrollmentApproved)
		}
	})

	t.Run("reject within scope", func(t *testing.T) {
		enrollments, svc := setup(advisee)

		enrollment, err := svc.Decide(ctx, 3, &dto.ApprovalRequest{EnrollmentID: 100, Action: dto.ApprovalActionReject})
		if err != nil {
			t.Fatalf("Decide returned error: %v", err)
		}
		if enrollment.Status != models.EnrollmentRejected {
			t.Errorf("status = %q, want %q", enrollment.Status, models.EnrollmentRejected)
		}
		if got := enrollments.updated[100]; got != models.EnrollmentRejected {
			t.Errorf("stored status = %q, want %q", got, models.EnrollmentRejected)
		}
	})

	t.Run("student outside department is rejected", func(t *testing.T) {
		enrollments, svc := setup(outsider)

		_, err := svc.Decide(ctx, 3, &dto.ApprovalRequest{EnrollmentID: 100, Action: dto.ApprovalActionApprove})
		if !errors.Is(err, apperrors.ErrApprovalOutOfScope) {
			t.Fatalf("err = %v, want ErrApprovalOutOfScope", err)
		}
		if len(enrollments.updated) != 0 {
			t.Error("enrollment status must not change on an out-of-scope attempt")
		}
	})

	t.Run("member without department has no advisees", func(t *testing.T) {
		enrollments := newFakeEnrollmentStore()
		enrollments.byID[100] = &models.Enrollment{
			ID: 100, StudentID: advisee.ID, Term: testTerm,
			Status: models.EnrollmentPending, Student: advisee,
		}
		unassigned := &models.FacultyMember{ID: 2, FacultyID: "FAC-2002", Name: "Hasan Mahmud"}
		faculty := &fakeFacultyStore{byUserID: map[int64]*models.FacultyMember{4: unassigned}}
		svc := newTestEnrollmentService(enrollments, nil, nil, faculty, nil)

		_, err := svc.Decide(ctx, 4, &dto.ApprovalRequest{EnrollmentID: 100, Action: dto.ApprovalActionApprove})
		if !errors.Is(err, apperrors.ErrApprovalOutOfScope) {
			t.Errorf("err = %v, want ErrApprovalOutOfScope", err)
		}
	})

	t.Run("unknown action yields ErrInvalidApprovalVerb", func(t *testing.T) {
		_, svc := setup(advisee)

		_, err := svc.Decide(ctx, 3, &dto.ApprovalRequest{EnrollmentID: 100, Action: "defer"})
		if !errors.Is(err, apperrors.ErrInvalidApprovalVerb) {
			t.Errorf("err = %v, want ErrInvalidApprovalVerb", err)
		}
	})

	t.Run("account without faculty record is denied", func(t *testing.T) {
		enrollments, _ := setup(advisee)
		svc := newTestEnrollmentService(enrollments, nil, nil, nil, nil)

		_, err := svc.Decide(ctx, 99, &dto.ApprovalRequest{EnrollmentID: 100, Action: dto.ApprovalActionApprove})
		if !errors.Is(err, apperrors.ErrPermissionDenied) {
			t.Errorf("err = %v, want ErrPermissionDenied", err)
		}
	})

	t.Run("decided enrollment stays decided", func(t *testing.T) {
		enrollments, svc := setup(advisee)
		enrollments.updateErr = apperrors.ErrEnrollmentDecided

		_, err := svc.Decide(ctx, 3, &dto.ApprovalRequest{EnrollmentID: 100, Action: dto.ApprovalActionReject})
		if !errors.Is(err, apperrors.ErrEnrollmentDecided) {
			t.Errorf("err = %v, want ErrEnrollmentDecided", err)
		}
	})
}

func TestApprovalQueue(t *testing.T) {
	ctx := context.Background()

	member := &models.FacultyMember{ID: 1, FacultyID: "FAC-1001", DepartmentID: int64ptr(5)}
	alice := &models.Student{ID: 10, StudentID: "22205341101", DepartmentID: int64ptr(5)}
	bob := &models.Student{ID: 11, StudentID: "22205341102", DepartmentID: int64ptr(5)}

	t.Run("groups pending enrollments per student", func(t *testing.T) {
		enrollments := newFakeEnrollmentStore()
		enrollments.pending = []*models.Enrollment{
			{ID: 1, StudentID: alice.ID, Status: models.EnrollmentPending, Student: alice},
			{ID: 2, StudentID: alice.ID, Status: models.EnrollmentPending, Student: alice},
			{ID: 3, StudentID: bob.ID, Status: models.EnrollmentPending, Student: bob},
		}
		faculty := &fakeFacultyStore{byUserID: map[int64]*models.FacultyMember{3: member}}
		svc := newTestEnrollmentService(enrollments, nil, nil, faculty, nil)

		queue, err := svc.ApprovalQueue(ctx, 3, "")
		if err != nil {
			t.Fatalf("ApprovalQueue returned error: %v", err)
		}
		if queue.Term != testTerm {
			t.Errorf("term = %q, want %q", queue.Term, testTerm)
		}
		if len(queue.Students) != 2 {
			t.Fatalf("got %d student groups, want 2", len(queue.Students))
		}
		if queue.Students[0].Student.ID != alice.ID || len(queue.Students[0].Enrollments) != 2 {
			t.Errorf("first group = student %d with %d enrollments, want student %d with 2",
				queue.Students[0].Student.ID, len(queue.Students[0].Enrollments), alice.ID)
		}
		if queue.Students[1].Student.ID != bob.ID || len(queue.Students[1].Enrollments) != 1 {
			t.Errorf("second group = student %d with %d enrollments, want student %d with 1",
				queue.Students[1].Student.ID, len(queue.Students[1].Enrollments), bob.ID)
		}
	})

	t.Run("explicit term overrides the active term", func(t *testing.T) {
		faculty := &fakeFacultyStore{byUserID: map[int64]*models.FacultyMember{3: member}}
		svc := newTestEnrollmentService(newFakeEnrollmentStore(), nil, nil, faculty, nil)

		queue, err := svc.ApprovalQueue(ctx, 3, "Fall 2024, 243")
		if err != nil {
			t.Fatalf("ApprovalQueue returned error: %v", err)
		}
		if queue.Term != "Fall 2024, 243" {
			t.Errorf("term = %q, want the requested term", queue.Term)
		}
	})

	t.Run("member without department gets an empty queue", func(t *testing.T) {
		unassigned := &models.FacultyMember{ID: 2, FacultyID: "FAC-2002"}
		faculty := &fakeFacultyStore{byUserID: map[int64]*models.FacultyMember{4: unassigned}}
		svc := newTestEnrollmentService(nil, nil, nil, faculty, nil)

		queue, err := svc.ApprovalQueue(ctx, 4, "")
		if err != nil {
			t.Fatalf("ApprovalQueue returned error: %v", err)
		}
		if len(queue.Students) != 0 {
			t.Errorf("got %d student groups, want 0", len(queue.Students))
		}
	})
}

func TestFacultyDashboard(t *testing.T) {
	ctx := context.Background()

	member := &models.FacultyMember{ID: 1, FacultyID: "FAC-1001", Name: "Sharmin Akter", DepartmentID: int64ptr(5)}

	enrollments := newFakeEnrollmentStore()
	enrollments.pending = []*models.Enrollment{
		{ID: 1, Status: models.EnrollmentPending},
		{ID: 2, Status: models.EnrollmentPending},
		{ID: 3, Status: models.EnrollmentApproved},
	}
	students := &fakeStudentStore{byDept: []*models.Student{{ID: 10}, {ID: 11}, {ID: 12}}}
	faculty := &fakeFacultyStore{byUserID: map[int64]*models.FacultyMember{3: member}}
	departments := &fakeDepartmentStore{byID: map[int64]*models.Department{
		5: {ID: 5, Name: "Computer Science and Engineering", Code: "CSE"},
	}}
	svc := newTestEnrollmentService(enrollments, students, nil, faculty, departments)

	dashboard, err := svc.FacultyDashboard(ctx, 3)
	if err != nil {
		t.Fatalf("FacultyDashboard returned error: %v", err)
	}
	if dashboard.Department != "Computer Science and Engineering" {
		t.Errorf("department = %q, want CSE department name", dashboard.Department)
	}
	if dashboard.AdviseeCount != 3 {
		t.Errorf("adviseeCount = %d, want 3", dashboard.AdviseeCount)
	}
	if dashboard.PendingCount != 2 {
		t.Errorf("pendingCount = %d, want 2", dashboard.PendingCount)
	}
	if dashboard.ApprovedCount != 1 {
		t.Errorf("approvedCount = %d, want 1", dashboard.ApprovedCount)
	}
}
