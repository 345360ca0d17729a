package config

import (
	"os"
	"testing"

	"github.com/spf13/viper"
)

// resetViper clears all viper state between tests to avoid cross-contamination.
func resetViper() {
	viper.Reset()
}

func TestLoad_Defaults(t *testing.T) {
	resetViper()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}

	tests := []struct {
		name string
		got  any
		want any
	}{
		{"NEOsPath", cfg.NEOsPath, "data/neos.csv"},
		{"CADPath", cfg.CADPath, "data/cad.json"},
		{"PresetsPath", cfg.PresetsPath, ".perihelion-queries.toml"},
		{"Verbose", cfg.Verbose, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("%s = %v, want %v", tt.name, tt.got, tt.want)
			}
		})
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	resetViper()

	tests := []struct {
		name   string
		envKey string
		envVal string
		field  func(Config) any
		want   any
	}{
		{
			name:   "neos_path",
			envKey: "PERIHELION_NEOS_PATH",
			envVal: "/srv/data/neos.csv",
			field:  func(c Config) any { return c.NEOsPath },
			want:   "/srv/data/neos.csv",
		},
		{
			name:   "cad_path",
			envKey: "PERIHELION_CAD_PATH",
			envVal: "/srv/data/cad.json",
			field:  func(c Config) any { return c.CADPath },
			want:   "/srv/data/cad.json",
		},
		{
			name:   "presets_path",
			envKey: "PERIHELION_PRESETS_PATH",
			envVal: "/etc/perihelion/queries.toml",
			field:  func(c Config) any { return c.PresetsPath },
			want:   "/etc/perihelion/queries.toml",
		},
		{
			name:   "verbose",
			envKey: "PERIHELION_VERBOSE",
			envVal: "true",
			field:  func(c Config) any { return c.Verbose },
			want:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetViper()
			// Set env prefix so PERIHELION_* env vars map to config keys.
			viper.SetEnvPrefix("PERIHELION")
			viper.AutomaticEnv()

			os.Setenv(tt.envKey, tt.envVal)
			defer os.Unsetenv(tt.envKey)

			cfg, err := Load()
			if err != nil {
				t.Fatalf("Load() returned unexpected error: %v", err)
			}
			got := tt.field(cfg)
			if got != tt.want {
				t.Errorf("%s: got %v (%T), want %v (%T)", tt.name, got, got, tt.want, tt.want)
			}
		})
	}
}
