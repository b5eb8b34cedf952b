package services

import (
	"fmt"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

func TestSemesterOptions(t *testing.T) {
	t.Run("single year, most recent first", func(t *testing.T) {
		options := SemesterOptions(2025, 2025)
		want := []string{
			"Short 2025, 254",
			"Fall 2025, 253",
			"Summer 2025, 252",
			"Spring 2025, 251",
		}
		if len(options) != len(want) {
			t.Fatalf("got %d options, want %d", len(options), len(want))
		}
		for i, label := range want {
			if options[i].Label != label {
				t.Errorf("options[%d] = %q, want %q", i, options[i].Label, label)
			}
		}
	})

	t.Run("later years come before earlier ones", func(t *testing.T) {
		options := SemesterOptions(2024, 2025)
		if len(options) != 8 {
			t.Fatalf("got %d options, want 8", len(options))
		}
		if options[0].Label != "Short 2025, 254" {
			t.Errorf("first option = %q, want Short 2025", options[0].Label)
		}
		if options[len(options)-1].Label != "Spring 2024, 241" {
			t.Errorf("last option = %q, want Spring 2024", options[len(options)-1].Label)
		}
	})

	t.Run("inverted range yields nothing", func(t *testing.T) {
		if options := SemesterOptions(2025, 2024); len(options) != 0 {
			t.Errorf("got %d options, want 0", len(options))
		}
	})
}

func TestSemesters(t *testing.T) {
	svc := NewAdminService(nil, nil, nil, zerolog.Nop())
	options := svc.Semesters()

	if len(options) != 12 {
		t.Fatalf("got %d options, want 12 (three years of four semesters)", len(options))
	}

	year := time.Now().Year()
	wantFirst := fmt.Sprintf("Short %d, %d", year+1, ((year+1)%100)*10+4)
	if options[0].Label != wantFirst {
		t.Errorf("first option = %q, want %q", options[0].Label, wantFirst)
	}
	wantLast := fmt.Sprintf("Spring %d, %d", year-1, ((year-1)%100)*10+1)
	if options[len(options)-1].Label != wantLast {
		t.Errorf("last option = %q, want %q", options[len(options)-1].Label, wantLast)
	}
}
