package models

// Course represents a course in the catalog.
type Course struct {
	ID           int64   `json:"id" db:"id"`
	Code         string  `json:"code" db:"code"`
	Title        string  `json:"title" db:"title"`
	Credit       float64 `json:"credit" db:"credit"`
	DepartmentID *int64  `json:"departmentId,omitempty" db:"department_id"` // Nullable; department deletion nulls this out
	TermLabel    string  `json:"termLabel,omitempty" db:"term_label"`

	// Relations (populated when needed)
	Department *Department `json:"department,omitempty"`
}

// DefaultCredit is used when a submitted credit value cannot be parsed.
const DefaultCredit = 3.0
