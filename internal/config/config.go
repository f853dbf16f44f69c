package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// DefaultTimeFormat is the timestamp layout for notification lines.
const DefaultTimeFormat = "2006-01-02 15:04:05"

// DefaultPath returns the default config file path.
func DefaultPath() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "libraryctl", "config.yml")
}

// Path returns the config file path in effect: LIBRARYCTL_CONFIG if set,
// the default location otherwise. Load and Save use the same path.
func Path() string {
	if path := os.Getenv("LIBRARYCTL_CONFIG"); path != "" {
		return path
	}
	return DefaultPath()
}

// Load reads the config from disk (or env). A missing file is fine; the
// defaults make every command usable without one.
func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("display.time_format", DefaultTimeFormat)
	v.SetDefault("display.currency", "$")
	v.SetDefault("display.no_color", false)
	v.SetDefault("demo.seed", true)

	v.SetEnvPrefix("LIBRARYCTL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetConfigFile(Path())

	if err := v.ReadInConfig(); err != nil {
		// Not finding the config file is fine — defaults apply.
		if !os.IsNotExist(err) {
			if _, isCfgNotFound := err.(viper.ConfigFileNotFoundError); !isCfgNotFound {
				return nil, fmt.Errorf("reading config: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	return &cfg, nil
}

// Save writes the config to the path Load reads from.
func Save(cfg *Config) error {
	path := Path()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	enc := yaml.NewEncoder(f)
	enc.SetIndent(2)
	return enc.Encode(cfg)
}
