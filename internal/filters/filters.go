// Package filters builds catalog predicates from user-facing query
// criteria: date bounds, distance, velocity, diameter, and the hazard
// flag. Every constructor returns a pure closure over a single
// approach; the query engine depends only on the catalog.Predicate
// contract, never on these concrete builders.
package filters

import (
	"math"
	"time"

	"github.com/papapumpkin/perihelion/internal/catalog"
	"github.com/papapumpkin/perihelion/internal/neo"
)

// OnDate matches approaches occurring on exactly the given UTC
// calendar date.
func OnDate(d time.Time) catalog.Predicate {
	return func(a *neo.Approach) bool {
		return sameDay(a.Time, d)
	}
}

// StartDate matches approaches on or after the given UTC calendar date.
func StartDate(d time.Time) catalog.Predicate {
	start := dayStart(d)
	return func(a *neo.Approach) bool {
		return !a.Time.Before(start)
	}
}

// EndDate matches approaches on or before the given UTC calendar date.
func EndDate(d time.Time) catalog.Predicate {
	end := dayStart(d).Add(24 * time.Hour)
	return func(a *neo.Approach) bool {
		return a.Time.Before(end)
	}
}

// MinDistance matches approaches at or beyond the given distance in au.
func MinDistance(au float64) catalog.Predicate {
	return func(a *neo.Approach) bool {
		return a.Distance >= au
	}
}

// MaxDistance matches approaches at or within the given distance in au.
func MaxDistance(au float64) catalog.Predicate {
	return func(a *neo.Approach) bool {
		return a.Distance <= au
	}
}

// MinVelocity matches approaches at or above the given velocity in
// km/s.
func MinVelocity(kms float64) catalog.Predicate {
	return func(a *neo.Approach) bool {
		return a.Velocity >= kms
	}
}

// MaxVelocity matches approaches at or below the given velocity in
// km/s.
func MaxVelocity(kms float64) catalog.Predicate {
	return func(a *neo.Approach) bool {
		return a.Velocity <= kms
	}
}

// MinDiameter matches approaches whose body has a known diameter of at
// least km kilometers. An unknown (NaN) diameter never satisfies a
// diameter bound, and neither does an unlinked approach.
func MinDiameter(km float64) catalog.Predicate {
	return func(a *neo.Approach) bool {
		return a.Body != nil && !math.IsNaN(a.Body.Diameter) && a.Body.Diameter >= km
	}
}

// MaxDiameter matches approaches whose body has a known diameter of at
// most km kilometers.
func MaxDiameter(km float64) catalog.Predicate {
	return func(a *neo.Approach) bool {
		return a.Body != nil && !math.IsNaN(a.Body.Diameter) && a.Body.Diameter <= km
	}
}

// Hazardous matches approaches whose body's hazard flag equals want.
// Unlinked approaches match neither value.
func Hazardous(want bool) catalog.Predicate {
	return func(a *neo.Approach) bool {
		return a.Body != nil && a.Body.Hazardous == want
	}
}

func dayStart(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.UTC().Date()
	by, bm, bd := b.UTC().Date()
	return ay == by && am == bm && ad == bd
}
