// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// validate runs on the final merged [StructuredConfig] at startup. The
// shared config is consumed by both binaries, so requiredness of
// server-only fields (sign key, DSN) is enforced at the point of use.
func (cfg *StructuredConfig) validate() error {
	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout == 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.App.VerificationTimeout == 0 {
		return ErrInvalidAppConfigs
	}

	return nil
}
