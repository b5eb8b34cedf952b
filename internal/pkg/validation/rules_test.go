package validation

import "testing"

func TestIsUniversityEmail(t *testing.T) {
	tests := []struct {
		email string
		want  bool
	}{
		{"rakib22205341183@diu.edu.bd", true},
		{"abc123@diu.edu.bd", true},
		{"rakib@gmail.com", false},
		{"rakib@diu.edu", false},
		{"rakib.hasan@diu.edu.bd", false}, // dots not allowed in the student local part
		{"@diu.edu.bd", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := IsUniversityEmail(tt.email); got != tt.want {
			t.Errorf("IsUniversityEmail(%q) = %v, want %v", tt.email, got, tt.want)
		}
	}
}

func TestIsFacultyEmail(t *testing.T) {
	tests := []struct {
		email string
		want  bool
	}{
		{"sharmin@diu.edu.bd", true},
		{"sharmin.akter@diu.edu.bd", true},
		{"s_akter+cse@diu.edu.bd", true},
		{"sharmin@gmail.com", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := IsFacultyEmail(tt.email); got != tt.want {
			t.Errorf("IsFacultyEmail(%q) = %v, want %v", tt.email, got, tt.want)
		}
	}
}

func TestIsValidPassword(t *testing.T) {
	if IsValidPassword("short") {
		t.Error("passwords below the minimum length must be rejected")
	}
	if !IsValidPassword("hunter2hunter2") {
		t.Error("a password at or above the minimum length must be accepted")
	}
}

func TestIsValidCode(t *testing.T) {
	tests := []struct {
		code string
		want bool
	}{
		{"CSE", true},
		{"CSE101", true},
		{"cse", false},
		{"CSE 101", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := IsValidCode(tt.code); got != tt.want {
			t.Errorf("IsValidCode(%q) = %v, want %v", tt.code, got, tt.want)
		}
	}
}
