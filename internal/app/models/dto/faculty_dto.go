package dto

// CreateFacultyMemberRequest creates or finds a faculty record by faculty ID.
type CreateFacultyMemberRequest struct {
	FacultyID    string `json:"facultyId" binding:"required" example:"FAC-1021"`
	Name         string `json:"name" binding:"required"`
	Email        string `json:"email" binding:"required" example:"sharmin@diu.edu.bd"`
	DepartmentID *int64 `json:"departmentId"`
}

// UpdateFacultyMemberRequest fully replaces the mutable fields.
type UpdateFacultyMemberRequest struct {
	FacultyID    string `json:"facultyId" binding:"required"`
	Name         string `json:"name" binding:"required"`
	Email        string `json:"email" binding:"required"`
	DepartmentID *int64 `json:"departmentId"`
}

// FacultyDashboardResponse aggregates the faculty landing page counters.
type FacultyDashboardResponse struct {
	FacultyID     string `json:"facultyId"`
	Name          string `json:"name"`
	Department    string `json:"department,omitempty"`
	Term          string `json:"term"`
	AdviseeCount  int    `json:"adviseeCount"`
	PendingCount  int    `json:"pendingCount"`
	ApprovedCount int    `json:"approvedCount"`
}
