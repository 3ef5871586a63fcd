package config

import "errors"

// Sentinels of client config validation.
var (
	// ErrInvalidAdapterConfigs: provider address or request timeout missing.
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidAppConfigs: verification timeout is not set.
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
)
