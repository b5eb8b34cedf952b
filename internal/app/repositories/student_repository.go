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

// StudentRepository handles database operations for student profiles
type StudentRepository struct {
	db *pgxpool.Pool
}

// NewStudentRepository creates a new student repository
func NewStudentRepository(db *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{
		db: db,
	}
}

const studentColumns = `s.id, s.user_id, s.student_id, s.full_name, s.department_id, s.batch, s.current_term, s.is_cleared_for_registration`

func scanStudent(row pgx.Row) (*models.Student, error) {
	var s models.Student
	err := row.Scan(
		&s.ID,
		&s.UserID,
		&s.StudentID,
		&s.FullName,
		&s.DepartmentID,
		&s.Batch,
		&s.CurrentTerm,
		&s.IsClearedForRegistration,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// Create inserts a new student profile
func (r *StudentRepository) Create(ctx context.Context, student *models.Student) error {
	query := `
		INSERT INTO students (user_id, student_id, full_name, department_id, batch, current_term, is_cleared_for_registration)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		student.UserID, student.StudentID, student.FullName, student.DepartmentID,
		student.Batch, student.CurrentTerm, student.IsClearedForRegistration,
	).Scan(&student.ID)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "students_student_id_key") {
			return apperrors.ErrStudentIDAlreadyExists
		}
		if dberrors.IsDuplicateConstraintError(err, "students_user_id_key") {
			return apperrors.ErrConflict
		}
		return fmt.Errorf("error creating student: %w", err)
	}

	return nil
}

// GetByUserID retrieves the student profile linked to a user account
func (r *StudentRepository) GetByUserID(ctx context.Context, userID int64) (*models.Student, error) {
	query := `SELECT ` + studentColumns + ` FROM students s WHERE s.user_id = $1`

	student, err := scanStudent(r.db.QueryRow(ctx, query, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("error retrieving student by user ID: %w", err)
	}
	return student, nil
}

// GetByID retrieves a student profile by primary key
func (r *StudentRepository) GetByID(ctx context.Context, id int64) (*models.Student, error) {
	query := `SELECT ` + studentColumns + ` FROM students s WHERE s.id = $1`

	student, err := scanStudent(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("error retrieving student: %w", err)
	}
	return student, nil
}

// GetByStudentID retrieves a student profile by institutional student number
func (r *StudentRepository) GetByStudentID(ctx context.Context, studentID string) (*models.Student, error) {
	query := `SELECT ` + studentColumns + ` FROM students s WHERE s.student_id = $1`

	student, err := scanStudent(r.db.QueryRow(ctx, query, studentID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("error retrieving student by student ID: %w", err)
	}
	return student, nil
}

// StudentIDExists checks if a student number is already taken
func (r *StudentRepository) StudentIDExists(ctx context.Context, studentID string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM students WHERE student_id = $1)`, studentID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking student ID existence: %w", err)
	}
	return exists, nil
}

// GetByDepartmentID retrieves a department's students ordered by student number.
// This is the advisee set for faculty members of that department.
func (r *StudentRepository) GetByDepartmentID(ctx context.Context, departmentID int64) ([]*models.Student, error) {
	query := `SELECT ` + studentColumns + ` FROM students s WHERE s.department_id = $1 ORDER BY s.student_id`

	rows, err := r.db.Query(ctx, query, departmentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var students []*models.Student
	for rows.Next() {
		student, err := scanStudent(rows)
		if err != nil {
			return nil, err
		}
		students = append(students, student)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return students, nil
}

// CountByDepartmentID returns how many students belong to a department
func (r *StudentRepository) CountByDepartmentID(ctx context.Context, departmentID int64) (int, error) {
	var count int
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM students WHERE department_id = $1`, departmentID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting students by department: %w", err)
	}
	return count, nil
}

// Update replaces a student profile's mutable fields
func (r *StudentRepository) Update(ctx context.Context, student *models.Student) error {
	query := `
		UPDATE students
		SET full_name = $1, department_id = $2, batch = $3, current_term = $4, is_cleared_for_registration = $5
		WHERE id = $6
	`

	cmdTag, err := r.db.Exec(ctx, query,
		student.FullName, student.DepartmentID, student.Batch, student.CurrentTerm,
		student.IsClearedForRegistration, student.ID)
	if err != nil {
		return fmt.Errorf("error updating student: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrStudentNotFound
	}

	return nil
}
