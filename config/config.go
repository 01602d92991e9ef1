// Package config loads bchgen's settings from defaults, an optional
// config.yml, BCHGEN_* environment variables and command-line flags,
// in increasing order of precedence.
package config

import (
	"errors"
	"log/slog"
	"strings"

	"github.com/akalin/bchgen/errorcode"
	"github.com/akalin/bchgen/gf2n"
	"github.com/spf13/viper"
	"golang.org/x/xerrors"
)

// Keys, as they appear in config.yml.
const (
	KeyPrimitivePolynomials = "primitive-polynomials"
	KeyMaxTableDegree       = "max-table-degree"
	KeyMaxCosetDegree       = "max-coset-degree"
	KeyGoroutines           = "goroutines"
	KeyLogLevel             = "log-level"
)

// EnvPrefix is prepended to upper-cased keys, with dashes replaced by
// underscores, to get their environment variables,
// e.g. BCHGEN_MAX_TABLE_DEGREE.
const EnvPrefix = "BCHGEN"

// MaxTableDegreeDefault bounds the tables built by default to 2^20
// entries.
const MaxTableDegreeDefault = 20

// MaxCosetDegreeDefault bounds coset listings by default. Each of the
// roughly 2^n/n cosets is a set over 2^n - 1 exponents, so they take
// O(4^n/n) memory, far more than a table of the same degree.
const MaxCosetDegreeDefault = 16

// Config holds the loaded settings.
type Config struct {
	// The path of the primitive polynomial CSV table. If empty,
	// the embedded table is used.
	PrimitivePolynomials string
	// The largest n for which a GF(2^n) table may be built.
	MaxTableDegree int
	// The largest n for which the cosets of GF(2^n) may be listed.
	MaxCosetDegree int
	// The number of goroutines used to synthesize polynomials. If
	// zero, the number of logical cores is used.
	Goroutines int
	LogLevel   slog.Level
}

// New returns a viper instance with bchgen's defaults and environment
// bindings. Callers may bind flags to it before calling Load.
func New() *viper.Viper {
	v := viper.New()
	v.SetDefault(KeyPrimitivePolynomials, "")
	v.SetDefault(KeyMaxTableDegree, MaxTableDegreeDefault)
	v.SetDefault(KeyMaxCosetDegree, MaxCosetDegreeDefault)
	v.SetDefault(KeyGoroutines, 0)
	v.SetDefault(KeyLogLevel, "warn")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads the config file at path into v, or config.yml in the
// working directory if path is empty, and returns the resulting
// settings. A missing config.yml is not an error, but a missing
// explicit path is.
func Load(v *viper.Viper, path string) (Config, error) {
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yml")
		v.AddConfigPath(".")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return Config{}, xerrors.Errorf("reading config: %w", err)
		}
	}

	config := Config{
		PrimitivePolynomials: v.GetString(KeyPrimitivePolynomials),
		MaxTableDegree:       v.GetInt(KeyMaxTableDegree),
		MaxCosetDegree:       v.GetInt(KeyMaxCosetDegree),
		Goroutines:           v.GetInt(KeyGoroutines),
	}
	if config.MaxTableDegree < gf2n.MinDegree || config.MaxTableDegree > gf2n.MaxDegree {
		return Config{}, xerrors.Errorf("%s=%d not in [%d, %d]: %w", KeyMaxTableDegree, config.MaxTableDegree, gf2n.MinDegree, gf2n.MaxDegree, errorcode.ErrInvalidParameter)
	}
	if config.MaxCosetDegree < gf2n.MinDegree || config.MaxCosetDegree > gf2n.MaxDegree {
		return Config{}, xerrors.Errorf("%s=%d not in [%d, %d]: %w", KeyMaxCosetDegree, config.MaxCosetDegree, gf2n.MinDegree, gf2n.MaxDegree, errorcode.ErrInvalidParameter)
	}
	if config.Goroutines < 0 {
		return Config{}, xerrors.Errorf("%s=%d is negative: %w", KeyGoroutines, config.Goroutines, errorcode.ErrInvalidParameter)
	}
	if err := config.LogLevel.UnmarshalText([]byte(v.GetString(KeyLogLevel))); err != nil {
		return Config{}, xerrors.Errorf("%s: %v: %w", KeyLogLevel, err, errorcode.ErrInvalidParameter)
	}
	return config, nil
}

// CheckTableDegree returns an error if a table for GF(2^n) is larger
// than c allows.
func (c Config) CheckTableDegree(n int) error {
	if n > c.MaxTableDegree {
		return xerrors.Errorf("n=%d exceeds %s=%d: %w", n, KeyMaxTableDegree, c.MaxTableDegree, errorcode.ErrInvalidParameter)
	}
	return nil
}

// CheckCosetDegree returns an error if listing the cosets of GF(2^n)
// needs more memory than c allows.
func (c Config) CheckCosetDegree(n int) error {
	if n > c.MaxCosetDegree {
		return xerrors.Errorf("n=%d exceeds %s=%d: %w", n, KeyMaxCosetDegree, c.MaxCosetDegree, errorcode.ErrInvalidParameter)
	}
	return nil
}
