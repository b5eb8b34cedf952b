package dto

// CreateCourseRequest creates or finds a course by code. Credit arrives as a
// string because the original form posts free text; parse failures fall back
// to the default credit value.
type CreateCourseRequest struct {
	Code         string `json:"code" binding:"required" example:"CSE101"`
	Title        string `json:"title" binding:"required" example:"Introduction to Programming"`
	Credit       string `json:"credit" example:"3.0"`
	DepartmentID *int64 `json:"departmentId"`
	TermLabel    string `json:"termLabel" example:"Spring 2025, 251"`
}

// UpdateCourseRequest fully replaces the mutable fields; an unparsable credit
// keeps the previous value.
type UpdateCourseRequest struct {
	Code         string `json:"code" binding:"required"`
	Title        string `json:"title" binding:"required"`
	Credit       string `json:"credit"`
	DepartmentID *int64 `json:"departmentId"`
	TermLabel    string `json:"termLabel"`
}
