// Package username validates, normalizes and classifies usernames.
//
// A well-formed username is 1 to 30 ASCII letters, digits and single hyphens,
// starting and ending with a letter or digit. Every function in this package is
// pure and safe for concurrent use.
package username

import (
	"github.com/louisbranch/username/internal/platform/config"
)

// MaxLength is the longest accepted username, in UTF-16 code units.
const MaxLength = 30

// envPrefix namespaces the environment variables read by ConfigFromEnv.
const envPrefix = "USERNAME_"

// Config controls how usernames are checked.
type Config struct {
	// AllowEmpty accepts the empty string as a username.
	AllowEmpty bool `env:"ALLOW_EMPTY" envDefault:"false"`
	// Validate runs the strict checks before Normalize. Other operations ignore it.
	Validate bool `env:"VALIDATE" envDefault:"true"`
}

// DefaultConfig returns the configuration used when no options are given.
func DefaultConfig() Config {
	return Config{Validate: true}
}

// ConfigFromEnv loads a Config from USERNAME_ALLOW_EMPTY and USERNAME_VALIDATE,
// using DefaultConfig values for unset variables.
func ConfigFromEnv() (Config, error) {
	cfg := DefaultConfig()
	if err := config.ParseEnvWithPrefix(&cfg, envPrefix); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Option configures a single call.
type Option func(*Config)

// AllowEmpty sets whether the empty string is an acceptable username.
func AllowEmpty(allow bool) Option {
	return func(c *Config) {
		c.AllowEmpty = allow
	}
}

// WithValidation sets whether Normalize validates its input first.
func WithValidation(enabled bool) Option {
	return func(c *Config) {
		c.Validate = enabled
	}
}

// WithConfig replaces the whole configuration. Later options still apply on top.
func WithConfig(cfg Config) Option {
	return func(c *Config) {
		*c = cfg
	}
}

func newConfig(opts []Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// Validate returns name unchanged when it breaks no rule. Otherwise it returns
// an error for the first problem CollectProblems reports: ErrRange for empty,
// too long or double hyphen, ErrValidation for a bad start, end or character.
func Validate(name string, opts ...Option) (string, error) {
	if err := CollectProblems(name, opts...).Err(name); err != nil {
		return "", err
	}
	return name, nil
}

// Normalize returns the canonical form of name: ASCII letters lowercased and
// everything that is not an ASCII letter or digit removed, hyphens included.
// Unless validation is disabled the name is validated first and any error is
// returned as is.
func Normalize(name string, opts ...Option) (string, error) {
	cfg := newConfig(opts)
	if cfg.Validate {
		if _, err := Validate(name, WithConfig(cfg)); err != nil {
			return "", err
		}
	}
	return StripPunctuation(lowerASCII(name)), nil
}

// IsValid reports whether name is well formed. It agrees with CollectProblems
// returning no problems.
func IsValid(name string, opts ...Option) bool {
	cfg := newConfig(opts)
	if name == "" && cfg.AllowEmpty {
		return true
	}
	return Shape.MatchString(name)
}

// IsNormalized reports whether Normalize would leave name unchanged. It never
// validates, so malformed input yields false instead of an error.
func IsNormalized(name string, opts ...Option) bool {
	opts = append(opts[:len(opts):len(opts)], WithValidation(false))
	normalized, err := Normalize(name, opts...)
	return err == nil && normalized == name
}

func lowerASCII(s string) string {
	hasUpper := false
	for i := 0; i < len(s); i++ {
		if c := s[i]; c >= 'A' && c <= 'Z' {
			hasUpper = true
			break
		}
	}
	if !hasUpper {
		return s
	}

	buf := []byte(s)
	for i, c := range buf {
		if c >= 'A' && c <= 'Z' {
			buf[i] = c - 'A' + 'a'
		}
	}
	return string(buf)
}
