package models

// RoleType defines the user role type
type RoleType string

const (
	RoleStudent RoleType = "STUDENT"
	RoleFaculty RoleType = "FACULTY"
	RoleAdmin   RoleType = "ADMIN"
)

// ValidRole reports whether r is one of the defined roles.
func ValidRole(r RoleType) bool {
	switch r {
	case RoleStudent, RoleFaculty, RoleAdmin:
		return true
	}
	return false
}

// EnrollmentStatus is the state of a registration attempt.
type EnrollmentStatus string

const (
	EnrollmentPending  EnrollmentStatus = "pending"
	EnrollmentApproved EnrollmentStatus = "approved"
	EnrollmentRejected EnrollmentStatus = "rejected"
)

// Decided reports whether the status is terminal.
func (s EnrollmentStatus) Decided() bool {
	return s == EnrollmentApproved || s == EnrollmentRejected
}
