package models

// FacultyMember represents a faculty record in the catalog. The optional user link
// connects it to a login account; advisee scope is derived from the department.
type FacultyMember struct {
	ID           int64  `json:"id" db:"id"`
	FacultyID    string `json:"facultyId" db:"faculty_id"` // Unique institutional faculty ID
	Name         string `json:"name" db:"name"`
	Email        string `json:"email" db:"email"`
	DepartmentID *int64 `json:"departmentId,omitempty" db:"department_id"` // Nullable
	UserID       *int64 `json:"userId,omitempty" db:"user_id"`             // Nullable

	// Relations (populated when needed)
	Department *Department `json:"department,omitempty"`
}
