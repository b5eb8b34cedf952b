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

// CourseRepository handles database operations for the course catalog
type CourseRepository struct {
	db *pgxpool.Pool
}

// NewCourseRepository creates a new course repository
func NewCourseRepository(db *pgxpool.Pool) *CourseRepository {
	return &CourseRepository{
		db: db,
	}
}

const courseColumns = `c.id, c.code, c.title, c.credit, c.department_id, c.term_label`

func scanCourse(row pgx.Row) (*models.Course, error) {
	var c models.Course
	err := row.Scan(&c.ID, &c.Code, &c.Title, &c.Credit, &c.DepartmentID, &c.TermLabel)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CourseRepository) queryCourses(ctx context.Context, query string, args ...interface{}) ([]*models.Course, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var courses []*models.Course
	for rows.Next() {
		var c models.Course
		var deptName, deptCode *string
		if err := rows.Scan(&c.ID, &c.Code, &c.Title, &c.Credit, &c.DepartmentID, &c.TermLabel, &deptName, &deptCode); err != nil {
			return nil, err
		}
		if c.DepartmentID != nil && deptName != nil && deptCode != nil {
			c.Department = &models.Department{ID: *c.DepartmentID, Name: *deptName, Code: *deptCode}
		}
		courses = append(courses, &c)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return courses, nil
}

// GetOrCreate finds a course by its unique code or inserts it with the given
// fields as defaults, mirroring get_or_create semantics.
func (r *CourseRepository) GetOrCreate(ctx context.Context, course *models.Course) (created bool, err error) {
	existing, err := r.GetByCode(ctx, course.Code)
	if err == nil {
		*course = *existing
		return false, nil
	}
	if !errors.Is(err, apperrors.ErrCourseNotFound) {
		return false, err
	}

	insert := `
		INSERT INTO courses (code, title, credit, department_id, term_label)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	err = r.db.QueryRow(ctx, insert,
		course.Code, course.Title, course.Credit, course.DepartmentID, course.TermLabel).Scan(&course.ID)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "courses_code_key") {
			return false, apperrors.ErrCourseAlreadyExists
		}
		return false, fmt.Errorf("error creating course: %w", err)
	}

	return true, nil
}

// GetByID retrieves a course by ID
func (r *CourseRepository) GetByID(ctx context.Context, id int64) (*models.Course, error) {
	query := `SELECT ` + courseColumns + ` FROM courses c WHERE c.id = $1`

	course, err := scanCourse(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCourseNotFound
		}
		return nil, fmt.Errorf("error retrieving course: %w", err)
	}
	return course, nil
}

// GetByCode retrieves a course by its unique code
func (r *CourseRepository) GetByCode(ctx context.Context, code string) (*models.Course, error) {
	query := `SELECT ` + courseColumns + ` FROM courses c WHERE c.code = $1`

	course, err := scanCourse(r.db.QueryRow(ctx, query, code))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCourseNotFound
		}
		return nil, fmt.Errorf("error retrieving course by code: %w", err)
	}
	return course, nil
}

// GetAll retrieves all courses ordered by code, with department info attached
func (r *CourseRepository) GetAll(ctx context.Context) ([]*models.Course, error) {
	query := `
		SELECT ` + courseColumns + `, d.name, d.code
		FROM courses c
		LEFT JOIN departments d ON d.id = c.department_id
		ORDER BY c.code
	`
	return r.queryCourses(ctx, query)
}

// GetAvailableForStudent retrieves courses the student has no enrollment for
// in the given term, ordered by code.
func (r *CourseRepository) GetAvailableForStudent(ctx context.Context, studentID int64, term string) ([]*models.Course, error) {
	query := `
		SELECT ` + courseColumns + `, d.name, d.code
		FROM courses c
		LEFT JOIN departments d ON d.id = c.department_id
		WHERE c.id NOT IN (
			SELECT course_id FROM enrollments WHERE student_id = $1 AND term = $2
		)
		ORDER BY c.code
	`
	return r.queryCourses(ctx, query, studentID, term)
}

// Count returns the number of courses in the catalog
func (r *CourseRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM courses`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting courses: %w", err)
	}
	return count, nil
}

// TotalCredits sums the credit value of the whole catalog
func (r *CourseRepository) TotalCredits(ctx context.Context) (float64, error) {
	var total float64
	err := r.db.QueryRow(ctx, `SELECT COALESCE(SUM(credit), 0) FROM courses`).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("error summing course credits: %w", err)
	}
	return total, nil
}

// Update replaces a course's mutable fields
func (r *CourseRepository) Update(ctx context.Context, course *models.Course) error {
	query := `
		UPDATE courses
		SET code = $1, title = $2, credit = $3, department_id = $4, term_label = $5
		WHERE id = $6
	`

	cmdTag, err := r.db.Exec(ctx, query,
		course.Code, course.Title, course.Credit, course.DepartmentID, course.TermLabel, course.ID)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "courses_code_key") {
			return apperrors.ErrCourseAlreadyExists
		}
		return fmt.Errorf("error updating course: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrCourseNotFound
	}

	return nil
}

// Delete hard-deletes a course. Result items protect their course reference,
// so a graded course cannot be removed.
func (r *CourseRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM courses WHERE id = $1`, id)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrCourseInUse
		}
		return fmt.Errorf("error deleting course: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrCourseNotFound
	}

	return nil
}
