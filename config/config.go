// Package config is for run-wide settings that are unmarshalled
// from Viper (see: /cmd). Values come, in increasing priority, from
// built-in defaults, an optional YAML file, SEQALIGN_* environment
// variables, and command line flags.
package config

import (
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/katalvlaran/seqalign/nw"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable, e.g. SEQALIGN_SCORING_MATCH.
const EnvPrefix = "SEQALIGN"

// Output formats accepted by Output.Format.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Scoring holds the scoring rule shared by grid construction and traceback
type Scoring struct {
	// score of an aligned pair of equal symbols
	Match int `mapstructure:"match"`

	// score of an aligned pair of different symbols
	Mismatch int `mapstructure:"mismatch"`

	// score of each column holding a gap
	Gap int `mapstructure:"gap"`

	// single symbol written for a gap position
	GapSymbol string `mapstructure:"gap-symbol"`
}

// Output settings for reporting a result
type Output struct {
	// whether to render the score grid along with the alignment
	Grid bool `mapstructure:"grid"`

	// "text" or "json"
	Format string `mapstructure:"format"`
}

// Config is the root-level settings struct and is a mix
// of settings available in a config file and those
// available from the command line
type Config struct {
	Scoring Scoring `mapstructure:"scoring"`
	Output  Output  `mapstructure:"output"`

	// slog level name: debug, info, warn or error
	LogLevel string `mapstructure:"log-level"`
}

// flagKeys maps command line flag names onto their viper keys.
var flagKeys = map[string]string{
	"match":      "scoring.match",
	"mismatch":   "scoring.mismatch",
	"gap":        "scoring.gap",
	"gap-symbol": "scoring.gap-symbol",
	"grid":       "output.grid",
	"format":     "output.format",
	"log-level":  "log-level",
}

// SetDefaults registers defaults and environment lookups on v.
// Every key gets a default so that AutomaticEnv can see it during Unmarshal.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("scoring.match", nw.DefaultMatch)
	v.SetDefault("scoring.mismatch", nw.DefaultMismatch)
	v.SetDefault("scoring.gap", nw.DefaultGap)
	v.SetDefault("scoring.gap-symbol", string(nw.DefaultGapSymbol))
	v.SetDefault("output.grid", false)
	v.SetDefault("output.format", FormatText)
	v.SetDefault("log-level", "warn")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
}

// BindFlags binds every known flag present in fs to its viper key.
// Flags absent from fs are skipped so subcommands can bind partial sets.
func BindFlags(v *viper.Viper, fs *pflag.FlagSet) error {
	for name, key := range flagKeys {
		f := fs.Lookup(name)
		if f == nil {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return fmt.Errorf("config: binding --%s: %w", name, err)
		}
	}
	return nil
}

// New reads file (when non-empty) into v and decodes the merged settings.
func New(v *viper.Viper, file string) (Config, error) {
	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("config: reading %s: %w", file, err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("config: unable to decode into struct: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate checks the fields that the nw package cannot check itself.
func (c Config) Validate() error {
	if utf8.RuneCountInString(c.Scoring.GapSymbol) != 1 {
		return fmt.Errorf("config: gap-symbol must be exactly one symbol, got %q: %w", c.Scoring.GapSymbol, nw.ErrInvalidInput)
	}
	switch c.Output.Format {
	case FormatText, FormatJSON:
	default:
		return fmt.Errorf("config: unknown output format %q", c.Output.Format)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Options converts the scoring section into nw.Options.
func (c Config) Options() (nw.Options, error) {
	if err := c.Validate(); err != nil {
		return nw.Options{}, err
	}
	gap, _ := utf8.DecodeRuneInString(c.Scoring.GapSymbol)
	opts := nw.Options{
		Match:     c.Scoring.Match,
		Mismatch:  c.Scoring.Mismatch,
		Gap:       c.Scoring.Gap,
		GapSymbol: gap,
	}
	return opts, opts.Validate()
}

// Level parses LogLevel.
func (c Config) Level() (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return l, fmt.Errorf("config: log-level: %w", err)
	}
	return l, nil
}
