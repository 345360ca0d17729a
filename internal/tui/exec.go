package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/papapumpkin/perihelion/internal/export"
	"github.com/papapumpkin/perihelion/internal/filters"
	"github.com/papapumpkin/perihelion/internal/preset"
)

// defaultLimit caps query output in the shell when no --limit is given.
const defaultLimit = 10

const helpText = `Commands:
  inspect <designation|name> [--verbose]   show one NEO (and its approaches)
  query [flags]                            filter close approaches
  preset [name]                            list saved queries, or run one
  help                                     show this help
  quit                                     leave the shell

Query flags:
  --date, --start-date, --end-date (YYYY-MM-DD)
  --min-distance, --max-distance (au)
  --min-velocity, --max-velocity (km/s)
  --min-diameter, --max-diameter (km)
  --hazardous | --not-hazardous
  --preset <name>   start from a saved query
  --limit <n>       max results to show (default 10)
  --outfile <path>  write all matches to a .csv or .json file`

// runLine executes one shell command line and returns transcript
// output plus whether the shell should exit.
func (m *Model) runLine(line string) (string, bool) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return "", false
	}

	switch fields[0] {
	case "help", "?":
		return helpText, false
	case "quit", "exit":
		return "", true
	case "inspect", "i":
		return m.runInspect(fields[1:]), false
	case "query", "q":
		return m.runQuery(fields[1:]), false
	case "preset", "p":
		return m.runPreset(fields[1:]), false
	default:
		return fmt.Sprintf("unknown command %q (try help)", fields[0]), false
	}
}

// runInspect looks a body up by designation first, then by name. Both
// lookups are exact-match.
func (m *Model) runInspect(args []string) string {
	verbose := false
	var rest []string
	for _, a := range args {
		if a == "--verbose" || a == "-v" {
			verbose = true
			continue
		}
		rest = append(rest, a)
	}
	if len(rest) == 0 {
		return "inspect: need a designation or name"
	}
	target := strings.Join(rest, " ")

	b, ok := m.cat.ByDesignation(target)
	if !ok {
		b, ok = m.cat.ByName(target)
	}
	if !ok {
		return fmt.Sprintf("no NEO matches %q exactly", target)
	}

	var sb strings.Builder
	sb.WriteString(b.String())
	if verbose {
		for _, a := range b.Approaches {
			sb.WriteString("\n  - " + a.String())
		}
		if len(b.Approaches) == 0 {
			sb.WriteString("\n  (no recorded close approaches)")
		}
	}
	return sb.String()
}

// runQuery parses shell query flags, runs the query, and renders
// matches (or writes them to an outfile).
func (m *Model) runQuery(args []string) string {
	crit, limit, outfile, err := m.parseQueryArgs(args)
	if err != nil {
		return "query: " + err.Error()
	}

	results := m.cat.Query(crit.Predicates()...)
	if outfile != "" {
		if err := export.Write(results, outfile); err != nil {
			return "query: " + err.Error()
		}
		return "wrote results to " + outfile
	}

	matches := results.Collect(limit)
	if len(matches) == 0 {
		return "no close approaches match"
	}
	var sb strings.Builder
	for i, a := range matches {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(a.String())
	}
	if limit > 0 && len(matches) == limit {
		sb.WriteString(fmt.Sprintf("\n(first %d matches; use --limit or --outfile for more)", limit))
	}
	return sb.String()
}

// runPreset lists presets with no argument, or runs one by name.
func (m *Model) runPreset(args []string) string {
	if len(args) == 0 {
		if len(m.presets) == 0 {
			return "no presets loaded"
		}
		names := make([]string, 0, len(m.presets))
		for name := range m.presets {
			names = append(names, name)
		}
		return "presets: " + strings.Join(sortedStrings(names), ", ")
	}
	return m.runQuery([]string{"--preset", args[0]})
}

// parseQueryArgs turns shell tokens into criteria. A --preset flag
// seeds the criteria; explicit flags override preset fields.
func (m *Model) parseQueryArgs(args []string) (filters.Criteria, int, string, error) {
	var crit filters.Criteria
	limit := defaultLimit
	outfile := ""

	next := func(i int, flag string) (string, error) {
		if i+1 >= len(args) {
			return "", fmt.Errorf("%s needs a value", flag)
		}
		return args[i+1], nil
	}

	for i := 0; i < len(args); i++ {
		flag := args[i]
		switch flag {
		case "--hazardous":
			v := true
			crit.Hazardous = &v
			continue
		case "--not-hazardous":
			v := false
			crit.Hazardous = &v
			continue
		}

		val, err := next(i, flag)
		if err != nil {
			return crit, 0, "", err
		}
		i++

		switch flag {
		case "--preset":
			p, ok := m.presets[val]
			if !ok {
				return crit, 0, "", fmt.Errorf("no preset named %q", val)
			}
			base, err := p.Criteria()
			if err != nil {
				return crit, 0, "", err
			}
			crit = base
			if p.Limit > 0 {
				limit = p.Limit
			}
		case "--date":
			t, err := preset.ParseDate(val)
			if err != nil {
				return crit, 0, "", err
			}
			crit.Date = &t
		case "--start-date":
			t, err := preset.ParseDate(val)
			if err != nil {
				return crit, 0, "", err
			}
			crit.StartDate = &t
		case "--end-date":
			t, err := preset.ParseDate(val)
			if err != nil {
				return crit, 0, "", err
			}
			crit.EndDate = &t
		case "--min-distance":
			f, err := parseFloat(flag, val)
			if err != nil {
				return crit, 0, "", err
			}
			crit.MinDistance = &f
		case "--max-distance":
			f, err := parseFloat(flag, val)
			if err != nil {
				return crit, 0, "", err
			}
			crit.MaxDistance = &f
		case "--min-velocity":
			f, err := parseFloat(flag, val)
			if err != nil {
				return crit, 0, "", err
			}
			crit.MinVelocity = &f
		case "--max-velocity":
			f, err := parseFloat(flag, val)
			if err != nil {
				return crit, 0, "", err
			}
			crit.MaxVelocity = &f
		case "--min-diameter":
			f, err := parseFloat(flag, val)
			if err != nil {
				return crit, 0, "", err
			}
			crit.MinDiameter = &f
		case "--max-diameter":
			f, err := parseFloat(flag, val)
			if err != nil {
				return crit, 0, "", err
			}
			crit.MaxDiameter = &f
		case "--limit":
			n, err := strconv.Atoi(val)
			if err != nil || n < 0 {
				return crit, 0, "", fmt.Errorf("--limit wants a non-negative integer, got %q", val)
			}
			limit = n
		case "--outfile":
			outfile = val
		default:
			return crit, 0, "", fmt.Errorf("unknown flag %q", flag)
		}
	}
	return crit, limit, outfile, nil
}

func parseFloat(flag, val string) (float64, error) {
	f, err := strconv.ParseFloat(val, 64)
	if err != nil {
		return 0, fmt.Errorf("%s wants a number, got %q", flag, val)
	}
	return f, nil
}
