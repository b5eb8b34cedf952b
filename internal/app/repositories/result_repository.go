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

// ResultRepository handles database operations for semester results.
// Results are append-only; there is no update path.
type ResultRepository struct {
	db *pgxpool.Pool
}

// NewResultRepository creates a new result repository
func NewResultRepository(db *pgxpool.Pool) *ResultRepository {
	return &ResultRepository{
		db: db,
	}
}

// CreateResult inserts a semester result for a (student, term) pair
func (r *ResultRepository) CreateResult(ctx context.Context, result *models.SemesterResult) error {
	query := `
		INSERT INTO semester_results (student_id, term, gpa)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query, result.StudentID, result.Term, result.GPA).Scan(&result.ID)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "uq_semester_results_student_term") {
			return apperrors.ErrConflict
		}
		return fmt.Errorf("error creating semester result: %w", err)
	}

	return nil
}

// CreateItem appends one graded course to a result
func (r *ResultRepository) CreateItem(ctx context.Context, item *models.ResultItem) error {
	query := `
		INSERT INTO result_items (result_id, course_id, credit, grade, grade_point)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		item.ResultID, item.CourseID, item.Credit, item.Grade, item.GradePoint).Scan(&item.ID)
	if err != nil {
		return fmt.Errorf("error creating result item: %w", err)
	}

	return nil
}

// GetTermsByStudent lists the terms a student has results for, ordered
func (r *ResultRepository) GetTermsByStudent(ctx context.Context, studentID int64) ([]string, error) {
	query := `SELECT term FROM semester_results WHERE student_id = $1 ORDER BY term`

	rows, err := r.db.Query(ctx, query, studentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var terms []string
	for rows.Next() {
		var term string
		if err := rows.Scan(&term); err != nil {
			return nil, err
		}
		terms = append(terms, term)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return terms, nil
}

// GetByStudentAndTerm retrieves one term's result
func (r *ResultRepository) GetByStudentAndTerm(ctx context.Context, studentID int64, term string) (*models.SemesterResult, error) {
	query := `SELECT id, student_id, term, gpa FROM semester_results WHERE student_id = $1 AND term = $2`

	var result models.SemesterResult
	err := r.db.QueryRow(ctx, query, studentID, term).Scan(
		&result.ID, &result.StudentID, &result.Term, &result.GPA)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrResultNotFound
		}
		return nil, fmt.Errorf("error retrieving semester result: %w", err)
	}

	return &result, nil
}

// GetItemsByResultID retrieves the graded courses under one result
func (r *ResultRepository) GetItemsByResultID(ctx context.Context, resultID int64) ([]*models.ResultItem, error) {
	query := `
		SELECT i.id, i.result_id, i.course_id, i.credit, i.grade, i.grade_point,
		       c.id, c.code, c.title, c.credit, c.department_id, c.term_label
		FROM result_items i
		JOIN courses c ON c.id = i.course_id
		WHERE i.result_id = $1
		ORDER BY c.code
	`

	return r.queryItems(ctx, query, resultID)
}

// GetItemsByStudent retrieves every graded course across a student's results
func (r *ResultRepository) GetItemsByStudent(ctx context.Context, studentID int64) ([]*models.ResultItem, error) {
	query := `
		SELECT i.id, i.result_id, i.course_id, i.credit, i.grade, i.grade_point,
		       c.id, c.code, c.title, c.credit, c.department_id, c.term_label
		FROM result_items i
		JOIN courses c ON c.id = i.course_id
		JOIN semester_results r ON r.id = i.result_id
		WHERE r.student_id = $1
		ORDER BY c.code
	`

	return r.queryItems(ctx, query, studentID)
}

func (r *ResultRepository) queryItems(ctx context.Context, query string, args ...interface{}) ([]*models.ResultItem, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*models.ResultItem
	for rows.Next() {
		var item models.ResultItem
		var c models.Course
		if err := rows.Scan(
			&item.ID, &item.ResultID, &item.CourseID, &item.Credit, &item.Grade, &item.GradePoint,
			&c.ID, &c.Code, &c.Title, &c.Credit, &c.DepartmentID, &c.TermLabel,
		); err != nil {
			return nil, err
		}
		item.Course = &c
		items = append(items, &item)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}

// SumCompletedCredits sums the credits a student has earned across all results
func (r *ResultRepository) SumCompletedCredits(ctx context.Context, studentID int64) (float64, error) {
	query := `
		SELECT COALESCE(SUM(i.credit), 0)
		FROM result_items i
		JOIN semester_results r ON r.id = i.result_id
		WHERE r.student_id = $1
	`

	var total float64
	err := r.db.QueryRow(ctx, query, studentID).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("error summing completed credits: %w", err)
	}
	return total, nil
}
