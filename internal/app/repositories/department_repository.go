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

// DepartmentRepository handles database operations for departments
type DepartmentRepository struct {
	db *pgxpool.Pool
}

// NewDepartmentRepository creates a new department repository
func NewDepartmentRepository(db *pgxpool.Pool) *DepartmentRepository {
	return &DepartmentRepository{
		db: db,
	}
}

// GetOrCreate finds a department by its natural key (name, code) or inserts it.
// Concurrent creators lose the insert race and fall back to the existing row.
func (r *DepartmentRepository) GetOrCreate(ctx context.Context, department *models.Department) (created bool, err error) {
	query := `SELECT id, name, code FROM departments WHERE name = $1 AND code = $2`
	err = r.db.QueryRow(ctx, query, department.Name, department.Code).
		Scan(&department.ID, &department.Name, &department.Code)
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return false, fmt.Errorf("error looking up department: %w", err)
	}

	insert := `INSERT INTO departments (name, code) VALUES ($1, $2) RETURNING id`
	err = r.db.QueryRow(ctx, insert, department.Name, department.Code).Scan(&department.ID)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return false, apperrors.ErrDepartmentAlreadyExists
		}
		return false, fmt.Errorf("error creating department: %w", err)
	}

	return true, nil
}

// GetByID retrieves a department by ID
func (r *DepartmentRepository) GetByID(ctx context.Context, id int64) (*models.Department, error) {
	query := `SELECT id, name, code FROM departments WHERE id = $1`

	var department models.Department
	err := r.db.QueryRow(ctx, query, id).Scan(&department.ID, &department.Name, &department.Code)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrDepartmentNotFound
		}
		return nil, fmt.Errorf("error retrieving department: %w", err)
	}

	return &department, nil
}

// GetByCode retrieves a department by its unique code
func (r *DepartmentRepository) GetByCode(ctx context.Context, code string) (*models.Department, error) {
	query := `SELECT id, name, code FROM departments WHERE code = $1`

	var department models.Department
	err := r.db.QueryRow(ctx, query, code).Scan(&department.ID, &department.Name, &department.Code)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrDepartmentNotFound
		}
		return nil, fmt.Errorf("error retrieving department by code: %w", err)
	}

	return &department, nil
}

// GetAll retrieves all departments ordered by name
func (r *DepartmentRepository) GetAll(ctx context.Context) ([]*models.Department, error) {
	query := `SELECT id, name, code FROM departments ORDER BY name`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var departments []*models.Department
	for rows.Next() {
		var department models.Department
		if err := rows.Scan(&department.ID, &department.Name, &department.Code); err != nil {
			return nil, err
		}
		departments = append(departments, &department)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return departments, nil
}

// Count returns the number of departments
func (r *DepartmentRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM departments`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting departments: %w", err)
	}
	return count, nil
}

// Update replaces a department's name and code
func (r *DepartmentRepository) Update(ctx context.Context, department *models.Department) error {
	query := `UPDATE departments SET name = $1, code = $2 WHERE id = $3`

	cmdTag, err := r.db.Exec(ctx, query, department.Name, department.Code, department.ID)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrDepartmentAlreadyExists
		}
		return fmt.Errorf("error updating department: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrDepartmentNotFound
	}

	return nil
}

// Delete hard-deletes a department. Dependent courses and faculty members keep
// their rows with the department reference nulled out by the schema.
func (r *DepartmentRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM departments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting department: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrDepartmentNotFound
	}

	return nil
}
