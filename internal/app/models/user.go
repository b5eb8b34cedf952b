package models

import (
	"time"
)

// User defines the user model based on the 'users' table
type User struct {
	ID              int64     `json:"id" db:"id" example:"1"`                            // Unique identifier for the user
	Email           string    `json:"email" db:"email" example:"rakib22205341183@diu.edu.bd"` // User's email address
	Password        string    `json:"-" db:"password"`                                   // User's hashed password (excluded from JSON)
	RoleType        RoleType  `json:"roleType" db:"role_type" example:"STUDENT"`         // User's role (STUDENT, FACULTY or ADMIN)
	InstitutionalID *string   `json:"institutionalId,omitempty" db:"institutional_id"`   // Student/faculty ID used as the login name (nullable)
	PhoneNumber     *string   `json:"phoneNumber,omitempty" db:"phone_number"`           // Contact number (nullable)
	IsActive        bool      `json:"isActive" db:"is_active" example:"true"`            // Whether the user account is active
	CreatedAt       time.Time `json:"createdAt" db:"created_at"`                         // Timestamp when the user was created
	UpdatedAt       time.Time `json:"updatedAt" db:"updated_at"`                         // Timestamp when the user was last updated
}
