package models

// SemesterResult holds a student's GPA for one term. Append-only historical record.
type SemesterResult struct {
	ID        int64   `json:"id" db:"id"`
	StudentID int64   `json:"studentId" db:"student_id"`
	Term      string  `json:"term" db:"term" example:"Spring 2025"`
	GPA       float64 `json:"gpa" db:"gpa" example:"3.75"`

	// Relations (populated when needed)
	Items []*ResultItem `json:"items,omitempty"`
}

// gradeScale is the letter-grade ladder on the 4.00 scale.
var gradeScale = map[string]float64{
	"A":  4.00,
	"A-": 3.70,
	"B+": 3.30,
	"B":  3.00,
	"C+": 2.30,
	"C":  2.00,
	"D":  1.00,
	"F":  0.00,
}

// GradePointFor returns the point value of a letter grade. Unknown
// letters map to 0.00.
func GradePointFor(grade string) float64 {
	return gradeScale[grade]
}

// ResultItem is one graded course under a semester result.
type ResultItem struct {
	ID         int64   `json:"id" db:"id"`
	ResultID   int64   `json:"resultId" db:"result_id"`
	CourseID   int64   `json:"courseId" db:"course_id"`
	Credit     float64 `json:"credit" db:"credit"`
	Grade      string  `json:"grade" db:"grade" example:"A-"`
	GradePoint float64 `json:"gradePoint" db:"grade_point" example:"3.70"`

	// Relations (populated when needed)
	Course *Course `json:"course,omitempty"`
}
