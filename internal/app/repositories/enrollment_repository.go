package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rakib/uniportal/internal/app/models"
	"github.com/rakib/uniportal/internal/pkg/apperrors"
	"github.com/rakib/uniportal/internal/pkg/dberrors"
)

// EnrollmentRepository handles database operations for the enrollment ledger
type EnrollmentRepository struct {
	db *pgxpool.Pool
}

// NewEnrollmentRepository creates a new enrollment repository
func NewEnrollmentRepository(db *pgxpool.Pool) *EnrollmentRepository {
	return &EnrollmentRepository{
		db: db,
	}
}

const enrollmentColumns = `e.id, e.student_id, e.course_id, e.term, e.status, e.created_at`

// Create inserts a new pending enrollment. The unique constraint on
// (student, course, term) is the single serialization point for concurrent
// registration attempts; the loser gets ErrAlreadyRegistered.
func (r *EnrollmentRepository) Create(ctx context.Context, enrollment *models.Enrollment) error {
	query := `
		INSERT INTO enrollments (student_id, course_id, term, status)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query,
		enrollment.StudentID, enrollment.CourseID, enrollment.Term, enrollment.Status,
	).Scan(&enrollment.ID, &enrollment.CreatedAt)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "uq_enrollments_student_course_term") {
			return apperrors.ErrAlreadyRegistered
		}
		return fmt.Errorf("error creating enrollment: %w", err)
	}

	return nil
}

// GetByID retrieves an enrollment with its student and course attached
func (r *EnrollmentRepository) GetByID(ctx context.Context, id int64) (*models.Enrollment, error) {
	query := `
		SELECT ` + enrollmentColumns + `,
		       s.id, s.user_id, s.student_id, s.full_name, s.department_id, s.batch, s.current_term, s.is_cleared_for_registration,
		       c.id, c.code, c.title, c.credit, c.department_id, c.term_label
		FROM enrollments e
		JOIN students s ON s.id = e.student_id
		JOIN courses c ON c.id = e.course_id
		WHERE e.id = $1
	`

	var e models.Enrollment
	var s models.Student
	var c models.Course
	err := r.db.QueryRow(ctx, query, id).Scan(
		&e.ID, &e.StudentID, &e.CourseID, &e.Term, &e.Status, &e.CreatedAt,
		&s.ID, &s.UserID, &s.StudentID, &s.FullName, &s.DepartmentID, &s.Batch, &s.CurrentTerm, &s.IsClearedForRegistration,
		&c.ID, &c.Code, &c.Title, &c.Credit, &c.DepartmentID, &c.TermLabel,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrEnrollmentNotFound
		}
		return nil, fmt.Errorf("error retrieving enrollment: %w", err)
	}

	e.Student = &s
	e.Course = &c
	return &e, nil
}

func (r *EnrollmentRepository) queryWithCourse(ctx context.Context, query string, args ...interface{}) ([]*models.Enrollment, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var enrollments []*models.Enrollment
	for rows.Next() {
		var e models.Enrollment
		var c models.Course
		if err := rows.Scan(
			&e.ID, &e.StudentID, &e.CourseID, &e.Term, &e.Status, &e.CreatedAt,
			&c.ID, &c.Code, &c.Title, &c.Credit, &c.DepartmentID, &c.TermLabel,
		); err != nil {
			return nil, err
		}
		e.Course = &c
		enrollments = append(enrollments, &e)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return enrollments, nil
}

// GetByStudentAndTerm retrieves a student's enrollments for a term, all
// statuses, ordered by course code.
func (r *EnrollmentRepository) GetByStudentAndTerm(ctx context.Context, studentID int64, term string) ([]*models.Enrollment, error) {
	query := `
		SELECT ` + enrollmentColumns + `,
		       c.id, c.code, c.title, c.credit, c.department_id, c.term_label
		FROM enrollments e
		JOIN courses c ON c.id = e.course_id
		WHERE e.student_id = $1 AND e.term = $2
		ORDER BY c.code
	`
	return r.queryWithCourse(ctx, query, studentID, term)
}

// GetPendingByStudentAndTerm retrieves a student's pending enrollments for a term
func (r *EnrollmentRepository) GetPendingByStudentAndTerm(ctx context.Context, studentID int64, term string) ([]*models.Enrollment, error) {
	query := `
		SELECT ` + enrollmentColumns + `,
		       c.id, c.code, c.title, c.credit, c.department_id, c.term_label
		FROM enrollments e
		JOIN courses c ON c.id = e.course_id
		WHERE e.student_id = $1 AND e.term = $2 AND e.status = $3
		ORDER BY c.code
	`
	return r.queryWithCourse(ctx, query, studentID, term, models.EnrollmentPending)
}

// GetPendingByDepartmentAndTerm retrieves the pending enrollments of a
// department's students for a term, with student and course attached, ordered
// by student number then course code. This is the faculty approval queue.
func (r *EnrollmentRepository) GetPendingByDepartmentAndTerm(ctx context.Context, departmentID int64, term string) ([]*models.Enrollment, error) {
	query := `
		SELECT ` + enrollmentColumns + `,
		       s.id, s.user_id, s.student_id, s.full_name, s.department_id, s.batch, s.current_term, s.is_cleared_for_registration,
		       c.id, c.code, c.title, c.credit, c.department_id, c.term_label
		FROM enrollments e
		JOIN students s ON s.id = e.student_id
		JOIN courses c ON c.id = e.course_id
		WHERE s.department_id = $1 AND e.term = $2 AND e.status = $3
		ORDER BY s.student_id, c.code
	`

	rows, err := r.db.Query(ctx, query, departmentID, term, models.EnrollmentPending)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var enrollments []*models.Enrollment
	for rows.Next() {
		var e models.Enrollment
		var s models.Student
		var c models.Course
		if err := rows.Scan(
			&e.ID, &e.StudentID, &e.CourseID, &e.Term, &e.Status, &e.CreatedAt,
			&s.ID, &s.UserID, &s.StudentID, &s.FullName, &s.DepartmentID, &s.Batch, &s.CurrentTerm, &s.IsClearedForRegistration,
			&c.ID, &c.Code, &c.Title, &c.Credit, &c.DepartmentID, &c.TermLabel,
		); err != nil {
			return nil, err
		}
		e.Student = &s
		e.Course = &c
		enrollments = append(enrollments, &e)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return enrollments, nil
}

// CountByDepartmentTermAndStatus counts a department's enrollments for a term
// in a given status, for the faculty dashboard counters.
func (r *EnrollmentRepository) CountByDepartmentTermAndStatus(ctx context.Context, departmentID int64, term string, status models.EnrollmentStatus) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM enrollments e
		JOIN students s ON s.id = e.student_id
		WHERE s.department_id = $1 AND e.term = $2 AND e.status = $3
	`

	var count int
	err := r.db.QueryRow(ctx, query, departmentID, term, status).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting enrollments: %w", err)
	}
	return count, nil
}

// UpdateStatus sets the decision on a pending enrollment. The status guard in
// the WHERE clause makes decided enrollments immutable even under concurrent
// approval attempts.
func (r *EnrollmentRepository) UpdateStatus(ctx context.Context, id int64, status models.EnrollmentStatus) error {
	query := `UPDATE enrollments SET status = $1 WHERE id = $2 AND status = $3`

	cmdTag, err := r.db.Exec(ctx, query, status, id, models.EnrollmentPending)
	if err != nil {
		return fmt.Errorf("error updating enrollment status: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		// Either the row is gone or it was already decided
		var exists bool
		if err := r.db.QueryRow(ctx,
			`SELECT EXISTS(SELECT 1 FROM enrollments WHERE id = $1)`, id).Scan(&exists); err != nil {
			return fmt.Errorf("error checking enrollment existence: %w", err)
		}
		if !exists {
			return apperrors.ErrEnrollmentNotFound
		}
		return apperrors.ErrEnrollmentDecided
	}

	return nil
}
