package neo

import (
	"strings"
	"testing"
	"time"
)

func TestNewApproach(t *testing.T) {
	t.Parallel()

	a, err := NewApproach("2000433", "1900-12-27 01:30", "0.0921795123769547", "16.7523040362574")
	if err != nil {
		t.Fatalf("NewApproach: %v", err)
	}

	if a.Designation != "2000433" {
		t.Errorf("Designation = %q, want 2000433", a.Designation)
	}
	want := time.Date(1900, 12, 27, 1, 30, 0, 0, time.UTC)
	if !a.Time.Equal(want) {
		t.Errorf("Time = %v, want %v", a.Time, want)
	}
	if a.Distance != 0.0921795123769547 {
		t.Errorf("Distance = %v", a.Distance)
	}
	if a.Velocity != 16.7523040362574 {
		t.Errorf("Velocity = %v", a.Velocity)
	}
	if a.Body != nil {
		t.Error("new approach already has a linked body")
	}
}

func TestNewApproachErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		calendar string
		distance string
		velocity string
	}{
		{"bad timestamp", "1900-Dec-27 01:30", "0.09", "16.75"},
		{"timestamp with seconds", "1900-12-27 01:30:00", "0.09", "16.75"},
		{"bad distance", "1900-12-27 01:30", "close", "16.75"},
		{"bad velocity", "1900-12-27 01:30", "0.09", "fast"},
		{"empty distance", "1900-12-27 01:30", "", "16.75"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if _, err := NewApproach("2000433", tt.calendar, tt.distance, tt.velocity); err == nil {
				t.Error("NewApproach succeeded, want error")
			}
		})
	}
}

func TestTimeStrRoundTrip(t *testing.T) {
	t.Parallel()

	const stamp = "2025-11-30 19:14"
	a, err := NewApproach("2000433", stamp, "0.4", "5.6")
	if err != nil {
		t.Fatalf("NewApproach: %v", err)
	}
	if got := a.TimeStr(); got != stamp {
		t.Errorf("TimeStr() = %q, want %q", got, stamp)
	}
}

func TestApproachStringUnlinked(t *testing.T) {
	t.Parallel()

	// String must stay useful before linking: it reads the designation,
	// not the Body pointer.
	a, err := NewApproach("2000433", "1900-12-27 01:30", "0.15", "17.06")
	if err != nil {
		t.Fatalf("NewApproach: %v", err)
	}
	s := a.String()
	if !strings.Contains(s, "2000433") {
		t.Errorf("String() = %q, want it to mention the designation", s)
	}
	if !strings.Contains(s, "1900-12-27 01:30") {
		t.Errorf("String() = %q, want it to mention the timestamp", s)
	}
}
