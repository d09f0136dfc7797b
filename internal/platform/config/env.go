// Package config loads settings from the process environment.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// ParseEnvWithPrefix loads configuration from environment variables whose
// names start with prefix, e.g. "USERNAME_" for `env:"ALLOW_EMPTY"`.
func ParseEnvWithPrefix(target any, prefix string) error {
	if err := env.ParseWithOptions(target, env.Options{Prefix: prefix}); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}
