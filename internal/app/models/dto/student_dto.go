package dto

import "github.com/rakib/uniportal/internal/app/models"

// StudentDashboardResponse is the student landing page payload.
type StudentDashboardResponse struct {
	Student          *models.Student      `json:"student"`
	TotalCredits     float64              `json:"totalCredits"`
	CompletedCredits float64              `json:"completedCredits"`
	PendingCount     int                  `json:"pendingCount"`
	AllCourses       []*models.Course     `json:"allCourses"`
	CompletedItems   []*models.ResultItem `json:"completedItems"`
	PendingRegs      []*models.Enrollment `json:"pendingRegs"`
}

// MyCoursesResponse lists the student's current-term enrollments, all statuses.
type MyCoursesResponse struct {
	Student     *models.Student      `json:"student"`
	Term        string               `json:"term"`
	Enrollments []*models.Enrollment `json:"enrollments"`
}
