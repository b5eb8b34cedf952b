package models

// Student defines the student profile, one-to-one with a user account.
type Student struct {
	ID                       int64  `json:"id" db:"id" example:"1"`
	UserID                   int64  `json:"userId" db:"user_id" example:"5"`
	StudentID                string `json:"studentId" db:"student_id" example:"22205341183"` // Unique institutional student number
	FullName                 string `json:"fullName" db:"full_name"`
	DepartmentID             *int64 `json:"departmentId,omitempty" db:"department_id"` // Nullable
	Batch                    string `json:"batch" db:"batch" example:"39th"`
	CurrentTerm              string `json:"currentTerm" db:"current_term" example:"Spring 2025"`
	IsClearedForRegistration bool   `json:"isClearedForRegistration" db:"is_cleared_for_registration"`

	// Relations (populated when needed)
	User       *User       `json:"user,omitempty"`
	Department *Department `json:"department,omitempty"`
}
