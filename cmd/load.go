package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/papapumpkin/perihelion/internal/catalog"
	"github.com/papapumpkin/perihelion/internal/config"
	"github.com/papapumpkin/perihelion/internal/extract"
	"github.com/papapumpkin/perihelion/internal/preset"
)

// resolveConfig loads config and applies any path flags set on cmd.
// Flags beat env beats file beats defaults.
func resolveConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return config.Config{}, fmt.Errorf("loading config: %w", err)
	}

	if p, _ := cmd.Flags().GetString("neos"); p != "" {
		cfg.NEOsPath = p
	}
	if p, _ := cmd.Flags().GetString("cad"); p != "" {
		cfg.CADPath = p
	}
	if p, _ := cmd.Flags().GetString("presets"); p != "" {
		cfg.PresetsPath = p
	}
	if v, _ := cmd.Flags().GetBool("verbose"); v {
		cfg.Verbose = true
	}
	return cfg, nil
}

// buildCatalog loads both data files and links them into a catalog.
func buildCatalog(cfg config.Config) (*catalog.Catalog, error) {
	bodies, err := extract.LoadBodies(cfg.NEOsPath)
	if err != nil {
		return nil, fmt.Errorf("loading NEOs from %s: %w", cfg.NEOsPath, err)
	}
	approaches, err := extract.LoadApproaches(cfg.CADPath)
	if err != nil {
		return nil, fmt.Errorf("loading close approaches from %s: %w", cfg.CADPath, err)
	}

	cat := catalog.New(bodies, approaches)
	if cfg.Verbose {
		fmt.Fprintf(os.Stderr, "loaded %d NEOs and %d close approaches\n",
			cat.NumBodies(), cat.NumApproaches())
	}
	return cat, nil
}

// loadPresets loads the saved-query file. A missing file is not an
// error: presets are optional unless explicitly requested.
func loadPresets(cfg config.Config) (map[string]preset.Preset, error) {
	presets, err := preset.Load(cfg.PresetsPath)
	if err != nil {
		if errors.Is(err, preset.ErrNoFile) {
			return nil, nil
		}
		return nil, err
	}
	return presets, nil
}
