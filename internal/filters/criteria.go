package filters

import (
	"time"

	"github.com/papapumpkin/perihelion/internal/catalog"
)

// Criteria collects every user-facing query bound in one place so the
// CLI flags, preset files, and the interactive shell all compile to
// predicates through the same path. Nil fields impose no constraint;
// the zero value matches every approach.
type Criteria struct {
	Date      *time.Time
	StartDate *time.Time
	EndDate   *time.Time

	MinDistance *float64
	MaxDistance *float64
	MinVelocity *float64
	MaxVelocity *float64
	MinDiameter *float64
	MaxDiameter *float64

	Hazardous *bool
}

// Predicates compiles the set criteria into an ordered predicate list
// for catalog.Query. Order mirrors the field order above; with AND
// semantics the order only affects evaluation cost, not results.
func (c Criteria) Predicates() []catalog.Predicate {
	var preds []catalog.Predicate
	if c.Date != nil {
		preds = append(preds, OnDate(*c.Date))
	}
	if c.StartDate != nil {
		preds = append(preds, StartDate(*c.StartDate))
	}
	if c.EndDate != nil {
		preds = append(preds, EndDate(*c.EndDate))
	}
	if c.MinDistance != nil {
		preds = append(preds, MinDistance(*c.MinDistance))
	}
	if c.MaxDistance != nil {
		preds = append(preds, MaxDistance(*c.MaxDistance))
	}
	if c.MinVelocity != nil {
		preds = append(preds, MinVelocity(*c.MinVelocity))
	}
	if c.MaxVelocity != nil {
		preds = append(preds, MaxVelocity(*c.MaxVelocity))
	}
	if c.MinDiameter != nil {
		preds = append(preds, MinDiameter(*c.MinDiameter))
	}
	if c.MaxDiameter != nil {
		preds = append(preds, MaxDiameter(*c.MaxDiameter))
	}
	if c.Hazardous != nil {
		preds = append(preds, Hazardous(*c.Hazardous))
	}
	return preds
}

// Empty reports whether no criterion is set.
func (c Criteria) Empty() bool {
	return len(c.Predicates()) == 0
}
