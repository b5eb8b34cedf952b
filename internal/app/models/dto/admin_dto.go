package dto

import "github.com/rakib/uniportal/internal/app/models"

// AdminDashboardResponse aggregates the catalog for the admin landing page.
type AdminDashboardResponse struct {
	TotalDepartments int                     `json:"totalDepartments"`
	TotalCourses     int                     `json:"totalCourses"`
	TotalFaculty     int                     `json:"totalFaculty"`
	Departments      []*models.Department    `json:"departments"`
	Courses          []*models.Course        `json:"courses"`
	FacultyMembers   []*models.FacultyMember `json:"facultyMembers"`
}

// SemesterOption is one entry of the generated semester-label list.
type SemesterOption struct {
	Label string `json:"label" example:"Spring 2025, 251"`
}
