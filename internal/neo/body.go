// Package neo defines the near-Earth object data model: bodies, their
// recorded close approaches to Earth, and the one-shot linking pass that
// turns string designations into live cross-references.
package neo

import (
	"fmt"
	"math"
	"strconv"
)

// Body is a single near-Earth object. It carries the object's identity
// and physical parameters, plus the collection of close approaches it
// has made.
type Body struct {
	// Designation is the primary designation: required, unique within a
	// data set, and the join key for linking.
	Designation string

	// Name is the IAU name. Empty means the object is unnamed; an empty
	// name never matches a lookup.
	Name string

	// Diameter is in kilometers. NaN means the diameter is unknown.
	Diameter float64

	// Hazardous reports whether the object is marked potentially
	// hazardous.
	Hazardous bool

	// Approaches holds this body's close approaches in data-set order.
	// It starts empty and is populated exclusively by Link; a Body never
	// mutates it itself.
	Approaches []*Approach
}

// NewBody builds a Body from raw string fields as they appear in the
// NEO CSV export. Field coercion is explicit per field with a declared
// fallback: a blank or unparsable diameter becomes NaN (unknown, not an
// error) and any hazard flag other than "Y" means not hazardous.
func NewBody(designation, name, hazard, diameter string) *Body {
	return &Body{
		Designation: designation,
		Name:        name,
		Hazardous:   parseHazard(hazard),
		Diameter:    parseDiameter(diameter),
	}
}

func parseHazard(s string) bool {
	return s == "Y"
}

func parseDiameter(s string) float64 {
	if s == "" {
		return math.NaN()
	}
	d, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return math.NaN()
	}
	return d
}

// FullName returns the designation followed by the name, or just the
// designation for unnamed objects.
func (b *Body) FullName() string {
	if b.Name == "" {
		return b.Designation
	}
	return b.Designation + " (" + b.Name + ")"
}

// KnownDiameter renders the diameter for display, accounting for the
// NaN sentinel.
func (b *Body) KnownDiameter() string {
	if math.IsNaN(b.Diameter) {
		return "an unknown diameter"
	}
	return fmt.Sprintf("a diameter of %.3f km", b.Diameter)
}

// String returns a human-readable description of the body.
func (b *Body) String() string {
	hazard := "is not potentially hazardous"
	if b.Hazardous {
		hazard = "is potentially hazardous"
	}
	return fmt.Sprintf("NEO %s has %s and %s.", b.FullName(), b.KnownDiameter(), hazard)
}
