package services

import "testing"

func TestParseCredit(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		fallback float64
		want     float64
	}{
		{"plain value", "3.0", 3.0, 3.0},
		{"integer form", "4", 3.0, 4.0},
		{"fractional", "1.5", 3.0, 1.5},
		{"padded whitespace", "  3.0  ", 1.0, 3.0},
		{"empty falls back", "", 3.0, 3.0},
		{"garbage falls back", "three", 3.0, 3.0},
		{"zero falls back", "0", 3.0, 3.0},
		{"negative falls back", "-2", 3.0, 3.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseCredit(tt.raw, tt.fallback); got != tt.want {
				t.Errorf("ParseCredit(%q, %v) = %v, want %v", tt.raw, tt.fallback, got, tt.want)
			}
		})
	}
}
