package models

import "time"

// Enrollment is a registration attempt for a (student, course, term) triple.
// The triple is unique; status starts pending and is decided once by a faculty action.
type Enrollment struct {
	ID        int64            `json:"id" db:"id"`
	StudentID int64            `json:"studentId" db:"student_id"`
	CourseID  int64            `json:"courseId" db:"course_id"`
	Term      string           `json:"term" db:"term" example:"Spring 2025"`
	Status    EnrollmentStatus `json:"status" db:"status" example:"pending"`
	CreatedAt time.Time        `json:"createdAt" db:"created_at"`

	// Relations (populated when needed)
	Student *Student `json:"student,omitempty"`
	Course  *Course  `json:"course,omitempty"`
}
