package neo

import (
	"fmt"
	"strconv"
	"time"
)

// TimeLayout is the calendar format used throughout the close-approach
// data set: year-month-day hour:minute, UTC, no seconds.
const TimeLayout = "2006-01-02 15:04"

// Approach is one recorded close approach to Earth by a near-Earth
// object.
type Approach struct {
	// Designation is the primary designation of the approaching body.
	// It is the pre-link reference: required non-empty (a loader
	// precondition, not re-validated here) and resolved to a live Body
	// by Link.
	Designation string

	// Time is the UTC moment of closest approach.
	Time time.Time

	// Distance is the nominal approach distance in astronomical units.
	Distance float64

	// Velocity is the relative velocity in kilometers per second.
	Velocity float64

	// Body is the object that made the approach. It is nil until Link
	// runs, and stays nil when no body carries this designation.
	Body *Body
}

// NewApproach builds an Approach from raw string fields as they appear
// in the close-approach export. Unlike body fields, all approach fields
// are required and must convert cleanly to their target types.
func NewApproach(designation, calendar, distance, velocity string) (*Approach, error) {
	t, err := ParseTime(calendar)
	if err != nil {
		return nil, err
	}
	dist, err := strconv.ParseFloat(distance, 64)
	if err != nil {
		return nil, fmt.Errorf("parsing distance %q: %w", distance, err)
	}
	vel, err := strconv.ParseFloat(velocity, 64)
	if err != nil {
		return nil, fmt.Errorf("parsing velocity %q: %w", velocity, err)
	}
	return &Approach{
		Designation: designation,
		Time:        t,
		Distance:    dist,
		Velocity:    vel,
	}, nil
}

// ParseTime parses a calendar timestamp in TimeLayout as UTC.
func ParseTime(s string) (time.Time, error) {
	t, err := time.ParseInLocation(TimeLayout, s, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing timestamp %q: %w", s, err)
	}
	return t, nil
}

// TimeStr formats the approach time back into TimeLayout. The input
// data carries no seconds, so neither does the output.
func (a *Approach) TimeStr() string {
	return a.Time.UTC().Format(TimeLayout)
}

// String returns a human-readable description. It reads the designation
// rather than the linked body so unlinked approaches still print
// usefully.
func (a *Approach) String() string {
	return fmt.Sprintf("At %s, %s approaches Earth at a distance of %.2f au and a velocity of %.2f km/s.",
		a.TimeStr(), a.Designation, a.Distance, a.Velocity)
}
