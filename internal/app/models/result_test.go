package models

import "testing"

func TestGradePointFor(t *testing.T) {
	tests := []struct {
		grade string
		want  float64
	}{
		{"A", 4.00},
		{"A-", 3.70},
		{"B+", 3.30},
		{"C", 2.00},
		{"F", 0.00},
		{"X", 0.00},
		{"", 0.00},
	}

	for _, tt := range tests {
		if got := GradePointFor(tt.grade); got != tt.want {
			t.Errorf("GradePointFor(%q) = %.2f, want %.2f", tt.grade, got, tt.want)
		}
	}
}
