package services

import (
	"errors"
	"testing"

	"github.com/rakib/uniportal/internal/app/models"
	"github.com/rakib/uniportal/internal/app/models/dto"
	"github.com/rakib/uniportal/internal/pkg/apperrors"
)

func TestRedirectForRole(t *testing.T) {
	tests := []struct {
		name string
		role models.RoleType
		want string
	}{
		{"student", models.RoleStudent, "/students/dashboard"},
		{"faculty", models.RoleFaculty, "/faculty/dashboard"},
		{"admin", models.RoleAdmin, "/admin/dashboard"},
		{"unknown role falls back to login", models.RoleType("JANITOR"), "/login"},
		{"empty role falls back to login", models.RoleType(""), "/login"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RedirectForRole(tt.role); got != tt.want {
				t.Errorf("RedirectForRole(%q) = %q, want %q", tt.role, got, tt.want)
			}
		})
	}
}

func TestValidateRegisterRequest(t *testing.T) {
	valid := func() *dto.RegisterRequest {
		return &dto.RegisterRequest{
			Role:            "STUDENT",
			Email:           "rakib22205341183@diu.edu.bd",
			InstitutionalID: "22205341183",
			Password1:       "hunter2hunter2",
			Password2:       "hunter2hunter2",
		}
	}

	t.Run("valid student request uses the institutional ID as username", func(t *testing.T) {
		username, err := ValidateRegisterRequest(valid())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if username != "22205341183" {
			t.Errorf("username = %q, want institutional ID", username)
		}
	})

	t.Run("role is case-insensitive", func(t *testing.T) {
		req := valid()
		req.Role = "student"
		if _, err := ValidateRegisterRequest(req); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("admin uses email as username and needs no ID", func(t *testing.T) {
		req := valid()
		req.Role = "ADMIN"
		req.InstitutionalID = ""
		req.Email = "admin@diu.edu.bd"

		username, err := ValidateRegisterRequest(req)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if username != "admin@diu.edu.bd" {
			t.Errorf("username = %q, want email", username)
		}
	})

	t.Run("invalid role", func(t *testing.T) {
		req := valid()
		req.Role = "SUPERUSER"
		_, err := ValidateRegisterRequest(req)
		if !errors.Is(err, apperrors.ErrInvalidRole) {
			t.Errorf("err = %v, want ErrInvalidRole", err)
		}
	})

	t.Run("student without institutional ID", func(t *testing.T) {
		req := valid()
		req.InstitutionalID = ""
		_, err := ValidateRegisterRequest(req)
		if !errors.Is(err, apperrors.ErrValidationFailed) {
			t.Errorf("err = %v, want ErrValidationFailed", err)
		}
		if field := apperrors.FieldOf(err); field != "institutionalId" {
			t.Errorf("field = %q, want institutionalId", field)
		}
	})

	t.Run("admin without email", func(t *testing.T) {
		req := valid()
		req.Role = "ADMIN"
		req.InstitutionalID = ""
		req.Email = ""
		_, err := ValidateRegisterRequest(req)
		if !errors.Is(err, apperrors.ErrValidationFailed) {
			t.Errorf("err = %v, want ErrValidationFailed", err)
		}
	})

	t.Run("password mismatch", func(t *testing.T) {
		req := valid()
		req.Password2 = "different-password"
		_, err := ValidateRegisterRequest(req)
		if !errors.Is(err, apperrors.ErrPasswordMismatch) {
			t.Errorf("err = %v, want ErrPasswordMismatch", err)
		}
	})

	t.Run("short password", func(t *testing.T) {
		req := valid()
		req.Password1 = "short"
		req.Password2 = "short"
		_, err := ValidateRegisterRequest(req)
		if !errors.Is(err, apperrors.ErrInvalidPassword) {
			t.Errorf("err = %v, want ErrInvalidPassword", err)
		}
	})
}
