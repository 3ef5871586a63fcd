// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv fills cfg from the environment through caarlos0/env, driven by
// the env and envPrefix tags on [StructuredConfig] and its sections: the
// token sign key, for example, arrives as APP_TOKEN_SIGN_KEY. Conversion
// failures come back wrapped.
func parseEnv(cfg any) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	return nil
}
