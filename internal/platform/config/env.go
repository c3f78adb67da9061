package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// ParseEnv fills target from the process environment using its `env`
// struct tags. Server config reads ATELIER_-prefixed variables; the admin
// credential stays unprefixed as ADMIN_PASSWORD.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}
