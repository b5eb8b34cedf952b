package dto

// CreateDepartmentRequest creates or finds a department by its natural key.
type CreateDepartmentRequest struct {
	Name string `json:"name" binding:"required" example:"Computer Science"`
	Code string `json:"code" binding:"required" example:"CSE"`
}

// UpdateDepartmentRequest fully replaces the mutable fields.
type UpdateDepartmentRequest struct {
	Name string `json:"name" binding:"required"`
	Code string `json:"code" binding:"required"`
}
