package services

import (
	"testing"

	"github.com/rakib/uniportal/internal/app/models"
)

func TestSynthesizeStudentID(t *testing.T) {
	tests := []struct {
		userID int64
		want   string
	}{
		{1, "S-000001"},
		{42, "S-000042"},
		{987654, "S-987654"},
		{1234567, "S-1234567"},
	}

	for _, tt := range tests {
		if got := SynthesizeStudentID(tt.userID); got != tt.want {
			t.Errorf("SynthesizeStudentID(%d) = %q, want %q", tt.userID, got, tt.want)
		}
	}
}

func TestDefaultResultTerm(t *testing.T) {
	t.Run("picks the first term of the selector", func(t *testing.T) {
		terms := []string{"Fall 2024, 243", "Spring 2025, 251"}
		if got := defaultResultTerm(terms); got != "Fall 2024, 243" {
			t.Errorf("got %q, want the first term", got)
		}
	})

	t.Run("no terms yields no selection", func(t *testing.T) {
		if got := defaultResultTerm(nil); got != "" {
			t.Errorf("got %q, want empty", got)
		}
	})
}

func TestCurrentTermFor(t *testing.T) {
	active := "Spring 2025, 251"

	t.Run("student's own term wins", func(t *testing.T) {
		student := &models.Student{CurrentTerm: "Fall 2024, 243"}
		if got := CurrentTermFor(student, active); got != "Fall 2024, 243" {
			t.Errorf("got %q, want student's own term", got)
		}
	})

	t.Run("falls back to the active term", func(t *testing.T) {
		student := &models.Student{}
		if got := CurrentTermFor(student, active); got != active {
			t.Errorf("got %q, want %q", got, active)
		}
	})

	t.Run("nil student falls back to the active term", func(t *testing.T) {
		if got := CurrentTermFor(nil, active); got != active {
			t.Errorf("got %q, want %q", got, active)
		}
	})
}
