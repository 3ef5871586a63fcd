package client

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-auth-flow/internal/flow"
	"github.com/MKhiriev/go-auth-flow/internal/logger"
	"github.com/MKhiriev/go-auth-flow/internal/tui"
)

type App struct {
	loginFlow   *flow.LoginFlow
	sessionFlow *flow.SessionFlow
	ui          *tui.TUI
	logger      *logger.Logger
}

// NewApp assembles the client application from the two flow machines and the
// terminal UI hosting them.
func NewApp(loginFlow *flow.LoginFlow, sessionFlow *flow.SessionFlow, ui *tui.TUI, log *logger.Logger) (*App, error) {
	if loginFlow == nil || sessionFlow == nil || ui == nil {
		return nil, errors.New("flows and ui are required")
	}

	return &App{
		loginFlow:   loginFlow,
		sessionFlow: sessionFlow,
		ui:          ui,
		logger:      log,
	}, nil
}

// Run hosts the UI until the user quits, then tears both flow machines down so
// in-flight requests and verification sequences are cancelled.
func (a *App) Run() error {
	defer a.loginFlow.Close()
	defer a.sessionFlow.Close()

	err := a.ui.Run(context.Background())
	if errors.Is(err, tui.ErrUserQuit) {
		a.logger.Info().Msg("пользователь завершил работу")
		return nil
	}

	return err
}
