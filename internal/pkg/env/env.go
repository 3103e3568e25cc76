package env

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Parse fills target from environment variables described by its `env` tags.
func Parse(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("failed to parse env: %w", err)
	}

	return nil
}
