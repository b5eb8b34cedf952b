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

// FacultyRepository handles database operations for faculty member records
type FacultyRepository struct {
	db *pgxpool.Pool
}

// NewFacultyRepository creates a new faculty repository
func NewFacultyRepository(db *pgxpool.Pool) *FacultyRepository {
	return &FacultyRepository{
		db: db,
	}
}

const facultyColumns = `f.id, f.faculty_id, f.name, f.email, f.department_id, f.user_id`

func scanFacultyMember(row pgx.Row) (*models.FacultyMember, error) {
	var f models.FacultyMember
	err := row.Scan(&f.ID, &f.FacultyID, &f.Name, &f.Email, &f.DepartmentID, &f.UserID)
	if err != nil {
		return nil, err
	}
	return &f, nil
}

// GetOrCreate finds a faculty member by institutional faculty ID or inserts one.
func (r *FacultyRepository) GetOrCreate(ctx context.Context, member *models.FacultyMember) (created bool, err error) {
	existing, err := r.GetByFacultyID(ctx, member.FacultyID)
	if err == nil {
		*member = *existing
		return false, nil
	}
	if !errors.Is(err, apperrors.ErrFacultyNotFound) {
		return false, err
	}

	insert := `
		INSERT INTO faculty_members (faculty_id, name, email, department_id, user_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	err = r.db.QueryRow(ctx, insert,
		member.FacultyID, member.Name, member.Email, member.DepartmentID, member.UserID).Scan(&member.ID)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return false, apperrors.ErrFacultyAlreadyExists
		}
		return false, fmt.Errorf("error creating faculty member: %w", err)
	}

	return true, nil
}

// GetByID retrieves a faculty member by primary key
func (r *FacultyRepository) GetByID(ctx context.Context, id int64) (*models.FacultyMember, error) {
	query := `SELECT ` + facultyColumns + ` FROM faculty_members f WHERE f.id = $1`

	member, err := scanFacultyMember(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrFacultyNotFound
		}
		return nil, fmt.Errorf("error retrieving faculty member: %w", err)
	}
	return member, nil
}

// GetByFacultyID retrieves a faculty member by institutional faculty ID
func (r *FacultyRepository) GetByFacultyID(ctx context.Context, facultyID string) (*models.FacultyMember, error) {
	query := `SELECT ` + facultyColumns + ` FROM faculty_members f WHERE f.faculty_id = $1`

	member, err := scanFacultyMember(r.db.QueryRow(ctx, query, facultyID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrFacultyNotFound
		}
		return nil, fmt.Errorf("error retrieving faculty member by faculty ID: %w", err)
	}
	return member, nil
}

// GetByUserID retrieves the faculty member linked to a user account
func (r *FacultyRepository) GetByUserID(ctx context.Context, userID int64) (*models.FacultyMember, error) {
	query := `SELECT ` + facultyColumns + ` FROM faculty_members f WHERE f.user_id = $1`

	member, err := scanFacultyMember(r.db.QueryRow(ctx, query, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrFacultyNotFound
		}
		return nil, fmt.Errorf("error retrieving faculty member by user ID: %w", err)
	}
	return member, nil
}

// GetAll retrieves all faculty members ordered by name, with department attached
func (r *FacultyRepository) GetAll(ctx context.Context) ([]*models.FacultyMember, error) {
	query := `
		SELECT ` + facultyColumns + `, d.name, d.code
		FROM faculty_members f
		LEFT JOIN departments d ON d.id = f.department_id
		ORDER BY f.name
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var members []*models.FacultyMember
	for rows.Next() {
		var f models.FacultyMember
		var deptName, deptCode *string
		if err := rows.Scan(&f.ID, &f.FacultyID, &f.Name, &f.Email, &f.DepartmentID, &f.UserID, &deptName, &deptCode); err != nil {
			return nil, err
		}
		if f.DepartmentID != nil && deptName != nil && deptCode != nil {
			f.Department = &models.Department{ID: *f.DepartmentID, Name: *deptName, Code: *deptCode}
		}
		members = append(members, &f)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return members, nil
}

// Count returns the number of faculty members
func (r *FacultyRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM faculty_members`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting faculty members: %w", err)
	}
	return count, nil
}

// Update replaces a faculty member's mutable fields
func (r *FacultyRepository) Update(ctx context.Context, member *models.FacultyMember) error {
	query := `
		UPDATE faculty_members
		SET faculty_id = $1, name = $2, email = $3, department_id = $4
		WHERE id = $5
	`

	cmdTag, err := r.db.Exec(ctx, query,
		member.FacultyID, member.Name, member.Email, member.DepartmentID, member.ID)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrFacultyAlreadyExists
		}
		return fmt.Errorf("error updating faculty member: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrFacultyNotFound
	}

	return nil
}

// LinkUser attaches a login account to a faculty record
func (r *FacultyRepository) LinkUser(ctx context.Context, id, userID int64) error {
	cmdTag, err := r.db.Exec(ctx,
		`UPDATE faculty_members SET user_id = $1 WHERE id = $2`, userID, id)
	if err != nil {
		return fmt.Errorf("error linking user to faculty member: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrFacultyNotFound
	}
	return nil
}

// Delete hard-deletes a faculty member by primary key
func (r *FacultyRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM faculty_members WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting faculty member: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrFacultyNotFound
	}

	return nil
}
