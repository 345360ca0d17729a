package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/papapumpkin/perihelion/internal/config"
	"github.com/papapumpkin/perihelion/internal/export"
	"github.com/papapumpkin/perihelion/internal/filters"
	"github.com/papapumpkin/perihelion/internal/preset"
)

// queryCmd filters close approaches and prints or exports the matches.
var queryCmd = &cobra.Command{
	Use:   "query",
	Short: "Search close approaches with filters",
	Long: `Query close approaches with any combination of date, distance,
velocity, diameter, and hazard filters. All given filters must match.
Results print to stdout, or stream to --outfile where the extension
picks the format (.csv or .json).`,
	Args: cobra.NoArgs,
	RunE: runQuery,
}

func init() {
	addQueryFlags(queryCmd)
	rootCmd.AddCommand(queryCmd)
}

func addQueryFlags(cmd *cobra.Command) {
	cmd.Flags().String("date", "", "occurs on this date (YYYY-MM-DD)")
	cmd.Flags().String("start-date", "", "occurs on or after this date")
	cmd.Flags().String("end-date", "", "occurs on or before this date")
	cmd.Flags().Float64("min-distance", 0, "approach distance at least this (au)")
	cmd.Flags().Float64("max-distance", 0, "approach distance at most this (au)")
	cmd.Flags().Float64("min-velocity", 0, "relative velocity at least this (km/s)")
	cmd.Flags().Float64("max-velocity", 0, "relative velocity at most this (km/s)")
	cmd.Flags().Float64("min-diameter", 0, "NEO diameter at least this (km)")
	cmd.Flags().Float64("max-diameter", 0, "NEO diameter at most this (km)")
	cmd.Flags().Bool("hazardous", false, "only potentially hazardous NEOs")
	cmd.Flags().Bool("not-hazardous", false, "only NEOs not marked hazardous")
	cmd.Flags().String("preset", "", "start from a saved query by name")
	cmd.Flags().Int("limit", 10, "maximum results to print (0 = all)")
	cmd.Flags().String("outfile", "", "write all matches to this .csv or .json file")
}

func runQuery(cmd *cobra.Command, _ []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	crit, limit, err := criteriaFromFlags(cmd, cfg)
	if err != nil {
		return err
	}

	cat, err := buildCatalog(cfg)
	if err != nil {
		return err
	}
	results := cat.Query(crit.Predicates()...)

	if outfile, _ := cmd.Flags().GetString("outfile"); outfile != "" {
		if err := export.Write(results, outfile); err != nil {
			return err
		}
		if cfg.Verbose {
			fmt.Printf("wrote results to %s\n", outfile)
		}
		return nil
	}

	matches := results.Collect(limit)
	if len(matches) == 0 {
		fmt.Println("no close approaches match the given criteria.")
		return nil
	}
	for _, a := range matches {
		fmt.Println(a)
	}
	if limit > 0 && len(matches) == limit {
		fmt.Printf("(first %d matches; raise --limit or use --outfile for more)\n", limit)
	}
	return nil
}

// criteriaFromFlags assembles filter criteria from the query flags. A
// --preset seeds the criteria and any explicitly set flag overrides the
// preset's value for that field.
func criteriaFromFlags(cmd *cobra.Command, cfg config.Config) (filters.Criteria, int, error) {
	var crit filters.Criteria
	limit, _ := cmd.Flags().GetInt("limit")

	if name, _ := cmd.Flags().GetString("preset"); name != "" {
		presets, err := loadPresets(cfg)
		if err != nil {
			return crit, 0, err
		}
		p, ok := presets[name]
		if !ok {
			return crit, 0, fmt.Errorf("no preset named %q in %s", name, cfg.PresetsPath)
		}
		crit, err = p.Criteria()
		if err != nil {
			return crit, 0, err
		}
		if p.Limit > 0 && !cmd.Flags().Changed("limit") {
			limit = p.Limit
		}
	}

	dateFlags := []struct {
		flag string
		dst  **time.Time
	}{
		{"date", &crit.Date},
		{"start-date", &crit.StartDate},
		{"end-date", &crit.EndDate},
	}
	for _, df := range dateFlags {
		if s, _ := cmd.Flags().GetString(df.flag); s != "" {
			t, err := preset.ParseDate(s)
			if err != nil {
				return crit, 0, fmt.Errorf("--%s: %w", df.flag, err)
			}
			*df.dst = &t
		}
	}

	floatFlags := []struct {
		flag string
		dst  **float64
	}{
		{"min-distance", &crit.MinDistance},
		{"max-distance", &crit.MaxDistance},
		{"min-velocity", &crit.MinVelocity},
		{"max-velocity", &crit.MaxVelocity},
		{"min-diameter", &crit.MinDiameter},
		{"max-diameter", &crit.MaxDiameter},
	}
	for _, ff := range floatFlags {
		if cmd.Flags().Changed(ff.flag) {
			v, _ := cmd.Flags().GetFloat64(ff.flag)
			*ff.dst = &v
		}
	}

	haz, _ := cmd.Flags().GetBool("hazardous")
	notHaz, _ := cmd.Flags().GetBool("not-hazardous")
	if haz && notHaz {
		return crit, 0, fmt.Errorf("--hazardous and --not-hazardous are mutually exclusive")
	}
	if haz || notHaz {
		v := haz
		crit.Hazardous = &v
	}

	if limit < 0 {
		return crit, 0, fmt.Errorf("--limit wants a non-negative integer, got %d", limit)
	}
	return crit, limit, nil
}
