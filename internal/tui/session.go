// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"strings"
	"time"

	"github.com/MKhiriev/go-auth-flow/internal/flow"
	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
)

// SessionModel is the Bubble Tea model for the authenticated screen. It shows
// the opaque user identifier received in the [SessionStarted] payload, copies
// it to the system clipboard on demand, and routes back to the login page when
// the session machine confirms the sign-out.
type SessionModel struct {
	flow *flow.SessionFlow

	effects <-chan flow.UiEffect

	userUID string
	status  string
}

// NewSessionModel creates a [SessionModel] bound to sessionFlow and attaches
// it as the flow's effect subscriber until ctx is cancelled.
func NewSessionModel(ctx context.Context, sessionFlow *flow.SessionFlow) *SessionModel {
	return &SessionModel{
		flow:    sessionFlow,
		effects: sessionFlow.Effects(ctx),
	}
}

// Init implements [tea.Model]. Starts the effect receive loop.
func (m *SessionModel) Init() tea.Cmd {
	return m.waitEffect()
}

// Update implements [tea.Model]. Handled messages:
//   - [SessionStarted]: stores the user identifier to display.
//   - sessionEffectMsg: navigates back to login on sign-out confirmation.
//   - c: copies the user identifier to the clipboard.
//   - l: requests a sign-out from the session machine.
func (m *SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case SessionStarted:
		m.userUID = msg.UserUID
		m.status = ""
		return m, nil
	case sessionEffectMsg:
		return m.applyEffect(msg.effect)
	case copiedMsg:
		if msg.err != nil {
			m.status = "Не удалось скопировать: " + msg.err.Error()
		} else {
			m.status = "Идентификатор скопирован"
		}
		return m, tea.Tick(2*time.Second, func(time.Time) tea.Msg { return clearStatusMsg{} })
	case clearStatusMsg:
		m.status = ""
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "c":
		return m, m.cmdCopyUID()
	case "l":
		m.flow.Dispatch(flow.SignOutRequested{})
		return m, nil
	}

	return m, nil
}

// View implements [tea.Model].
func (m *SessionModel) View() string {
	var b strings.Builder
	b.WriteString("Сессия активна\n\n")
	b.WriteString("Идентификатор пользователя: ")
	b.WriteString(valueOrNA(m.userUID))

	if m.status != "" {
		b.WriteString("\n\n")
		b.WriteString(statusStyle.Render(m.status))
	}

	return renderPage(
		"АККАУНТ",
		b.String(),
		"c: копировать ID │ l: выйти из аккаунта │ ctrl+v: версия",
	)
}

func (m *SessionModel) applyEffect(effect flow.UiEffect) (tea.Model, tea.Cmd) {
	if _, ok := effect.(flow.NavigateToUnauthenticated); ok {
		m.userUID = ""
		m.status = ""
		return m, tea.Batch(m.waitEffect(), func() tea.Msg {
			return NavigateTo{Page: "login"}
		})
	}
	return m, m.waitEffect()
}

func (m *SessionModel) cmdCopyUID() tea.Cmd {
	uid := m.userUID
	return func() tea.Msg {
		return copiedMsg{err: clipboard.WriteAll(uid)}
	}
}

func (m *SessionModel) waitEffect() tea.Cmd {
	effects := m.effects
	return func() tea.Msg {
		effect, ok := <-effects
		if !ok {
			return nil
		}
		return sessionEffectMsg{effect: effect}
	}
}
