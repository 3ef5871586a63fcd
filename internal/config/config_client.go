package config

import (
	"fmt"
	"time"
)

// ClientApp is the application-level part of [ClientConfig].
type ClientApp struct {
	VerificationTimeout time.Duration // сколько клиент ждёт результат проверки телефона
	Version             string
}

// ClientAdapter configures the client transport: where the identity provider
// lives, how long to wait for it, and where to keep the session token.
type ClientAdapter struct {
	HTTPAddress    string
	RequestTimeout time.Duration
	SessionFile    string
}

// ClientConfig is the subset of [StructuredConfig] the TUI client needs.
type ClientConfig struct {
	App     ClientApp
	Adapter ClientAdapter
}

// GetClientConfig loads the merged configuration, projects the client-facing
// fields out of it and validates the result.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		App: ClientApp{
			VerificationTimeout: cfg.App.VerificationTimeout,
			Version:             cfg.App.Version,
		},
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
			SessionFile:    cfg.Adapter.SessionFile,
		},
	}

	return clientCfg, clientCfg.validate()
}
