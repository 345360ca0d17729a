// Package preset loads named, reusable query definitions from a TOML
// file so common searches can be replayed by name from the CLI or the
// interactive shell.
//
// File layout:
//
//	[[queries]]
//	name = "close-calls"
//	max_distance = 0.05
//	hazardous = "yes"
//	limit = 20
package preset

import (
	"errors"
	"fmt"
	"os"
	"time"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/papapumpkin/perihelion/internal/filters"
)

// Sentinel errors for preset validation.
var (
	// ErrNoFile indicates the preset file does not exist.
	ErrNoFile = errors.New("preset file not found")
	// ErrDuplicateName indicates two presets share a name.
	ErrDuplicateName = errors.New("duplicate preset name")
	// ErrMissingName indicates a preset with no name.
	ErrMissingName = errors.New("preset has no name")
	// ErrBadHazard indicates a hazardous value other than "", "yes", "no".
	ErrBadHazard = errors.New(`hazardous must be "yes" or "no"`)
)

// dateLayout is the calendar-date format accepted in preset files and
// CLI date flags.
const dateLayout = "2006-01-02"

// Preset is one named query definition. Unset fields impose no
// constraint.
type Preset struct {
	Name string `toml:"name"`

	Date      string `toml:"date"`
	StartDate string `toml:"start_date"`
	EndDate   string `toml:"end_date"`

	MinDistance *float64 `toml:"min_distance"`
	MaxDistance *float64 `toml:"max_distance"`
	MinVelocity *float64 `toml:"min_velocity"`
	MaxVelocity *float64 `toml:"max_velocity"`
	MinDiameter *float64 `toml:"min_diameter"`
	MaxDiameter *float64 `toml:"max_diameter"`

	// Hazardous is tri-state: "" (either), "yes", or "no".
	Hazardous string `toml:"hazardous"`

	// Limit caps how many results to show; 0 means the CLI default.
	Limit int `toml:"limit"`
}

type presetFile struct {
	Queries []Preset `toml:"queries"`
}

// Load reads and validates a preset file, returning presets keyed by
// name. A missing file returns ErrNoFile so callers that treat presets
// as optional can detect that case.
func Load(path string) (map[string]Preset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNoFile, path)
		}
		return nil, fmt.Errorf("reading preset file: %w", err)
	}

	var file presetFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	presets := make(map[string]Preset, len(file.Queries))
	for _, p := range file.Queries {
		if p.Name == "" {
			return nil, fmt.Errorf("%w in %s", ErrMissingName, path)
		}
		if _, exists := presets[p.Name]; exists {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateName, p.Name)
		}
		// Validate eagerly so a bad preset fails at load, not at use.
		if _, err := p.Criteria(); err != nil {
			return nil, fmt.Errorf("preset %q: %w", p.Name, err)
		}
		presets[p.Name] = p
	}
	return presets, nil
}

// Criteria compiles the preset into filter criteria.
func (p Preset) Criteria() (filters.Criteria, error) {
	var c filters.Criteria

	var err error
	if c.Date, err = parseDate(p.Date); err != nil {
		return c, err
	}
	if c.StartDate, err = parseDate(p.StartDate); err != nil {
		return c, err
	}
	if c.EndDate, err = parseDate(p.EndDate); err != nil {
		return c, err
	}

	c.MinDistance = p.MinDistance
	c.MaxDistance = p.MaxDistance
	c.MinVelocity = p.MinVelocity
	c.MaxVelocity = p.MaxVelocity
	c.MinDiameter = p.MinDiameter
	c.MaxDiameter = p.MaxDiameter

	switch p.Hazardous {
	case "":
	case "yes":
		v := true
		c.Hazardous = &v
	case "no":
		v := false
		c.Hazardous = &v
	default:
		return c, fmt.Errorf("%w, got %q", ErrBadHazard, p.Hazardous)
	}
	return c, nil
}

func parseDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.ParseInLocation(dateLayout, s, time.UTC)
	if err != nil {
		return nil, fmt.Errorf("parsing date %q: %w", s, err)
	}
	return &t, nil
}

// ParseDate parses a calendar date in the preset/flag format
// (YYYY-MM-DD, UTC). Exposed for the CLI and shell, which accept the
// same grammar.
func ParseDate(s string) (time.Time, error) {
	t, err := time.ParseInLocation(dateLayout, s, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing date %q (want %s): %w", s, dateLayout, err)
	}
	return t, nil
}
