package neo

import (
	"errors"
	"fmt"
)

// RecordKind selects the shape of a serialized approach record.
type RecordKind string

const (
	// RecordFlat inlines the NEO fields next to the approach fields,
	// suitable for one CSV row.
	RecordFlat RecordKind = "flat"
	// RecordNested groups the NEO fields under a "neo" sub-record,
	// suitable for JSON output.
	RecordNested RecordKind = "nested"
)

// Sentinel errors for the serialization contract.
var (
	// ErrInvalidFormat indicates an unrecognized record kind. Never
	// coerced silently.
	ErrInvalidFormat = errors.New("unrecognized record kind")
	// ErrUnlinked indicates an attempt to serialize an approach whose
	// designation resolved to no body. The production data set always
	// resolves, so this only fires on defective inputs.
	ErrUnlinked = errors.New("approach has no linked body")
)

// Record serializes the approach and its linked body into a key-value
// record of the requested kind. The diameter keeps its NaN sentinel;
// writers that cannot represent NaN (JSON) substitute at their own
// boundary.
func (a *Approach) Record(kind RecordKind) (map[string]any, error) {
	if a.Body == nil {
		return nil, fmt.Errorf("%w: %s at %s", ErrUnlinked, a.Designation, a.TimeStr())
	}

	switch kind {
	case RecordFlat:
		return map[string]any{
			"datetime_utc":          a.TimeStr(),
			"distance_au":           a.Distance,
			"velocity_km_s":         a.Velocity,
			"designation":           a.Body.Designation,
			"name":                  a.Body.Name,
			"diameter_km":           a.Body.Diameter,
			"potentially_hazardous": a.Body.Hazardous,
		}, nil
	case RecordNested:
		return map[string]any{
			"datetime_utc":  a.TimeStr(),
			"distance_au":   a.Distance,
			"velocity_km_s": a.Velocity,
			"neo": map[string]any{
				"designation":           a.Body.Designation,
				"name":                  a.Body.Name,
				"diameter_km":           a.Body.Diameter,
				"potentially_hazardous": a.Body.Hazardous,
			},
		}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidFormat, kind)
	}
}
