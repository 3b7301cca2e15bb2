package config

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/spf13/viper"
)

// ErrInvalidFormat is returned for an output format other than text, json or yaml.
var ErrInvalidFormat = errors.New("invalid output format")

// Config holds the runtime settings of the calculator.
type Config struct {
	// ClearScreen clears the terminal before prompting. Ignored when the
	// output is not a terminal.
	ClearScreen bool `mapstructure:"clear_screen"`
	// Format selects the report renderer: text, json or yaml.
	Format string `mapstructure:"format"`
	// Height and Weight skip the matching prompt when non-zero.
	Height uint16 `mapstructure:"height"`
	Weight uint16 `mapstructure:"weight"`

	Debug   bool   `mapstructure:"debug"`
	LogFile string `mapstructure:"log_file"`
}

// NewDefaultConfig creates a default configuration.
func NewDefaultConfig() *Config {
	return &Config{
		ClearScreen: true,
		Format:      FormatText,
	}
}

// Interactive reports whether at least one value still has to be prompted for.
func (c *Config) Interactive() bool {
	return c.Height == 0 || c.Weight == 0
}

// Validate checks for invalid configuration values.
func (c *Config) Validate() error {
	switch c.Format {
	case FormatText, FormatJSON, FormatYAML:
	default:
		return fmt.Errorf("%w: %q (want %s, %s or %s)", ErrInvalidFormat, c.Format, FormatText, FormatJSON, FormatYAML)
	}
	return nil
}

// SetDefaults registers the default values on v.
func SetDefaults(v *viper.Viper) {
	d := NewDefaultConfig()
	v.SetDefault("clear_screen", d.ClearScreen)
	v.SetDefault("format", d.Format)
	v.SetDefault("height", 0)
	v.SetDefault("weight", 0)
	v.SetDefault("debug", false)
	v.SetDefault("log_file", "")
}

// Load reads the optional config file and OXBMI_* environment variables
// into a validated Config. Values already bound on v (flags) take
// precedence.
func Load(v *viper.Viper, file string) (*Config, error) {
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	// Bounds are checked before decoding so an out of range value is
	// reported instead of silently wrapping.
	for _, key := range []string{"height", "weight"} {
		n := v.GetInt(key)
		if n < 0 || n > math.MaxUint16 {
			return nil, fmt.Errorf("%s must be between 0 and %d, got %d", key, math.MaxUint16, n)
		}
	}

	cfg := NewDefaultConfig()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	cfg.Format = strings.ToLower(cfg.Format)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
