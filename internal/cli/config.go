package cli

import (
	"github.com/ilyakaznacheev/cleanenv"
)

// Config holds defaults read from the environment.
type Config struct {
	Precision string `env:"PERIODS_PRECISION" env-default:"day" env-description:"precision of START/END arguments"`
	TZ        string `env:"PERIODS_TZ" env-default:"UTC" env-description:"IANA time zone dates are parsed in"`
	Format    string `env:"PERIODS_FORMAT" env-default:"text" env-description:"output format (json|text)"`
	Verbose   bool   `env:"PERIODS_VERBOSE" env-default:"false" env-description:"verbose output"`
}

// LoadConfig reads the environment, falling back to the documented defaults.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// ApplyConfig fills every option whose flag was not set on the command line.
func (o *RootOptions) ApplyConfig(cfg Config, changed func(flag string) bool) {
	if !changed("precision") {
		o.Precision = cfg.Precision
	}
	if !changed("tz") {
		o.TZ = cfg.TZ
	}
	if !changed("format") {
		o.Format = cfg.Format
	}
	if !changed("verbose") {
		o.Verbose = cfg.Verbose
	}
}
