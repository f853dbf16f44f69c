package config

// Config is the top-level libraryctl configuration. Everything here is a
// display preference; the catalog itself always starts empty.
type Config struct {
	Display DisplayConfig `mapstructure:"display" yaml:"display"`
	Demo    DemoConfig    `mapstructure:"demo" yaml:"demo"`
}

// DisplayConfig holds console output settings.
type DisplayConfig struct {
	TimeFormat string `mapstructure:"time_format" yaml:"time_format"`
	Currency   string `mapstructure:"currency" yaml:"currency"`
	NoColor    bool   `mapstructure:"no_color" yaml:"no_color"`
}

// DemoConfig controls the sample data used by demo, menu and browse.
type DemoConfig struct {
	Seed bool `mapstructure:"seed" yaml:"seed"`
}
