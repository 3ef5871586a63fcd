package tui

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-auth-flow/internal/flow"
	"github.com/MKhiriev/go-auth-flow/internal/logger"
	"github.com/MKhiriev/go-auth-flow/models"
	tea "github.com/charmbracelet/bubbletea"
)

var ErrUserQuit = errors.New("вышел из программы")

type TUI struct {
	loginFlow   *flow.LoginFlow
	sessionFlow *flow.SessionFlow
	buildInfo   models.AppBuildInfo
}

func New(loginFlow *flow.LoginFlow, sessionFlow *flow.SessionFlow, buildInfo models.AppBuildInfo, _ *logger.Logger) (*TUI, error) {
	if loginFlow == nil || sessionFlow == nil {
		return nil, errors.New("both flow machines are required")
	}
	return &TUI{loginFlow: loginFlow, sessionFlow: sessionFlow, buildInfo: buildInfo}, nil
}

// Run hosts the authentication screens until the user quits with Ctrl+C.
// Effect and state subscriptions of both machines are attached for the
// lifetime of the program and released when Run returns.
func (t *TUI) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	pages := map[string]tea.Model{
		"login":   NewLoginModel(ctx, t.loginFlow),
		"session": NewSessionModel(ctx, t.sessionFlow),
	}

	root := NewRootModel(pages, "login", t.buildInfo)
	finalModel, runErr := tea.NewProgram(root, tea.WithAltScreen()).Run()
	if runErr != nil {
		return runErr
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	if result.quitByUser {
		return ErrUserQuit
	}

	return nil
}
