package tui

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/papapumpkin/perihelion/internal/catalog"
	"github.com/papapumpkin/perihelion/internal/neo"
	"github.com/papapumpkin/perihelion/internal/preset"
)

func testModel(t *testing.T) *Model {
	t.Helper()

	eros := &neo.Body{Designation: "433", Name: "Eros", Diameter: 16.84}
	halley := &neo.Body{Designation: "1P", Name: "Halley", Diameter: 11, Hazardous: true}
	unnamed := &neo.Body{Designation: "3703080", Diameter: math.NaN()}

	approaches := []*neo.Approach{
		mustApproach(t, "433", "1900-12-27 01:30", "0.0921", "5.58"),
		mustApproach(t, "433", "1907-01-15 03:41", "0.4362", "4.39"),
		mustApproach(t, "1P", "1910-04-20 12:00", "0.09", "70.56"),
	}

	cat := catalog.New([]*neo.Body{eros, halley, unnamed}, approaches)

	minDist := 0.4
	presets := map[string]preset.Preset{
		"distant": {Name: "distant", MinDistance: &minDist, Limit: 2},
		"risky":   {Name: "risky", Hazardous: "yes"},
	}

	m := New(cat, presets, nil, false)
	return &m
}

func mustApproach(t *testing.T, des, cd, dist, vel string) *neo.Approach {
	t.Helper()
	a, err := neo.NewApproach(des, cd, dist, vel)
	if err != nil {
		t.Fatalf("NewApproach(%q): %v", cd, err)
	}
	return a
}

func TestRunLine_Dispatch(t *testing.T) {
	m := testModel(t)

	tests := []struct {
		name     string
		line     string
		wantQuit bool
		contains string
	}{
		{"help", "help", false, "Commands:"},
		{"help alias", "?", false, "Commands:"},
		{"quit", "quit", true, ""},
		{"exit", "exit", true, ""},
		{"unknown", "frobnicate", false, "unknown command"},
		{"inspect alias", "i Eros", false, "433 (Eros)"},
		{"query alias", "q --max-distance 0.1", false, "433"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, quit := m.runLine(tt.line)
			if quit != tt.wantQuit {
				t.Errorf("runLine(%q) quit = %v, want %v", tt.line, quit, tt.wantQuit)
			}
			if tt.contains != "" && !strings.Contains(out, tt.contains) {
				t.Errorf("runLine(%q) = %q, want it to contain %q", tt.line, out, tt.contains)
			}
		})
	}
}

func TestRunInspect(t *testing.T) {
	m := testModel(t)

	t.Run("by designation", func(t *testing.T) {
		out := m.runInspect([]string{"433"})
		if !strings.Contains(out, "Eros") {
			t.Errorf("got %q, want Eros", out)
		}
	})

	t.Run("by name", func(t *testing.T) {
		out := m.runInspect([]string{"Halley"})
		if !strings.Contains(out, "1P") {
			t.Errorf("got %q, want designation 1P", out)
		}
	})

	t.Run("exact match only", func(t *testing.T) {
		out := m.runInspect([]string{"eros"})
		if !strings.Contains(out, "no NEO matches") {
			t.Errorf("got %q, want a no-match message", out)
		}
	})

	t.Run("verbose lists approaches", func(t *testing.T) {
		out := m.runInspect([]string{"Eros", "--verbose"})
		if !strings.Contains(out, "1900-12-27 01:30") {
			t.Errorf("got %q, want the approach time listed", out)
		}
	})

	t.Run("verbose with none", func(t *testing.T) {
		out := m.runInspect([]string{"3703080", "--verbose"})
		if !strings.Contains(out, "no recorded close approaches") {
			t.Errorf("got %q, want the empty notice", out)
		}
	})

	t.Run("no argument", func(t *testing.T) {
		out := m.runInspect(nil)
		if !strings.Contains(out, "need a designation") {
			t.Errorf("got %q, want usage hint", out)
		}
	})
}

func TestRunQuery(t *testing.T) {
	m := testModel(t)

	t.Run("renders matches", func(t *testing.T) {
		out := m.runQuery([]string{"--hazardous"})
		if !strings.Contains(out, "1P") {
			t.Errorf("got %q, want the hazardous body's approach", out)
		}
		if strings.Contains(out, "433") {
			t.Errorf("got %q, should not include non-hazardous approaches", out)
		}
	})

	t.Run("no matches", func(t *testing.T) {
		out := m.runQuery([]string{"--min-distance", "99"})
		if out != "no close approaches match" {
			t.Errorf("got %q", out)
		}
	})

	t.Run("limit footer", func(t *testing.T) {
		out := m.runQuery([]string{"--limit", "1"})
		if !strings.Contains(out, "(first 1 matches") {
			t.Errorf("got %q, want the truncation footer", out)
		}
	})

	t.Run("bad flag", func(t *testing.T) {
		out := m.runQuery([]string{"--wibble"})
		if !strings.Contains(out, "unknown flag") {
			t.Errorf("got %q", out)
		}
	})

	t.Run("outfile", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "out.csv")
		out := m.runQuery([]string{"--outfile", path})
		if !strings.Contains(out, "wrote results to") {
			t.Errorf("got %q", out)
		}
		if _, err := os.Stat(path); err != nil {
			t.Errorf("outfile not written: %v", err)
		}
	})
}

func TestRunPreset(t *testing.T) {
	m := testModel(t)

	t.Run("lists sorted", func(t *testing.T) {
		out := m.runPreset(nil)
		if out != "presets: distant, risky" {
			t.Errorf("got %q", out)
		}
	})

	t.Run("runs one", func(t *testing.T) {
		out := m.runPreset([]string{"risky"})
		if !strings.Contains(out, "1P") {
			t.Errorf("got %q, want the hazardous approach", out)
		}
	})

	t.Run("unknown name", func(t *testing.T) {
		out := m.runPreset([]string{"nope"})
		if !strings.Contains(out, `no preset named "nope"`) {
			t.Errorf("got %q", out)
		}
	})

	t.Run("empty table", func(t *testing.T) {
		empty := *m
		empty.presets = nil
		out := empty.runPreset(nil)
		if out != "no presets loaded" {
			t.Errorf("got %q", out)
		}
	})
}

func TestParseQueryArgs(t *testing.T) {
	m := testModel(t)

	t.Run("full flag set", func(t *testing.T) {
		crit, limit, outfile, err := m.parseQueryArgs([]string{
			"--start-date", "1900-01-01",
			"--end-date", "1910-12-31",
			"--min-distance", "0.01",
			"--max-distance", "0.5",
			"--min-velocity", "1",
			"--max-velocity", "80",
			"--min-diameter", "0.1",
			"--max-diameter", "20",
			"--hazardous",
			"--limit", "3",
			"--outfile", "out.json",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if crit.StartDate == nil || crit.EndDate == nil {
			t.Error("date bounds not set")
		}
		if crit.MinDistance == nil || *crit.MinDistance != 0.01 {
			t.Errorf("MinDistance = %v", crit.MinDistance)
		}
		if crit.Hazardous == nil || !*crit.Hazardous {
			t.Errorf("Hazardous = %v", crit.Hazardous)
		}
		if limit != 3 {
			t.Errorf("limit = %d, want 3", limit)
		}
		if outfile != "out.json" {
			t.Errorf("outfile = %q", outfile)
		}
	})

	t.Run("preset seeds criteria", func(t *testing.T) {
		crit, limit, _, err := m.parseQueryArgs([]string{"--preset", "distant"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if crit.MinDistance == nil || *crit.MinDistance != 0.4 {
			t.Errorf("MinDistance = %v, want 0.4 from preset", crit.MinDistance)
		}
		if limit != 2 {
			t.Errorf("limit = %d, want 2 from preset", limit)
		}
	})

	t.Run("explicit flag overrides preset", func(t *testing.T) {
		crit, _, _, err := m.parseQueryArgs([]string{"--preset", "distant", "--min-distance", "0.9"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if crit.MinDistance == nil || *crit.MinDistance != 0.9 {
			t.Errorf("MinDistance = %v, want 0.9", crit.MinDistance)
		}
	})

	errTests := []struct {
		name string
		args []string
		want string
	}{
		{"missing value", []string{"--max-distance"}, "needs a value"},
		{"bad number", []string{"--max-distance", "near"}, "wants a number"},
		{"bad date", []string{"--date", "Jan 1 1900"}, "Jan 1 1900"},
		{"negative limit", []string{"--limit", "-1"}, "non-negative"},
		{"unknown preset", []string{"--preset", "ghost"}, "no preset named"},
	}
	for _, tt := range errTests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, _, err := m.parseQueryArgs(tt.args)
			if err == nil {
				t.Fatalf("parseQueryArgs(%v) expected an error", tt.args)
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error = %v, want it to mention %q", err, tt.want)
			}
		})
	}
}

func TestParseQueryArgs_NotHazardous(t *testing.T) {
	m := testModel(t)
	crit, _, _, err := m.parseQueryArgs([]string{"--not-hazardous"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if crit.Hazardous == nil || *crit.Hazardous {
		t.Errorf("Hazardous = %v, want false", crit.Hazardous)
	}
}

func TestRunQuery_OutfileError(t *testing.T) {
	m := testModel(t)
	out := m.runQuery([]string{"--outfile", "results.xml"})
	if !strings.Contains(out, "query:") {
		t.Errorf("got %q, want an error line", out)
	}
	if _, err := os.Stat("results.xml"); !os.IsNotExist(err) {
		t.Error("unsupported extension should not create a file")
	}
}
