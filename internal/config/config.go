// Package config holds runtime configuration for a perihelion session.
package config

import "github.com/spf13/viper"

// Config holds all runtime configuration. Values are populated from
// .perihelion.yaml, PERIHELION_* env vars, and CLI flags.
type Config struct {
	NEOsPath    string `mapstructure:"neos_path"`
	CADPath     string `mapstructure:"cad_path"`
	PresetsPath string `mapstructure:"presets_path"`
	Verbose     bool   `mapstructure:"verbose"`
}

// Load reads configuration from viper, applying built-in defaults for
// any values not set by config file, environment, or flags.
func Load() (Config, error) {
	viper.SetDefault("neos_path", "data/neos.csv")
	viper.SetDefault("cad_path", "data/cad.json")
	viper.SetDefault("presets_path", ".perihelion-queries.toml")
	viper.SetDefault("verbose", false)

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
