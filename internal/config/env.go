// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv populates cfg from environment variables via caarlos0/env, using
// the `env` and `envPrefix` tags declared on [StructuredConfig] and its
// nested sections.
func parseEnv(cfg any) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("parse env configs: %w", err)
	}

	return nil
}
