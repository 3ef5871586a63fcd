// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-auth-flow/internal/flow"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	inputEmail = iota
	inputPassword
	inputPhone
	inputCode
)

// LoginModel is the Bubble Tea model for the login screen. It renders four
// text inputs (email, password, phone number, verification code) kept in sync
// with the login state machine through Change* actions, and maps hotkeys to
// the five Submit* actions. Outcome messages arrive as one-shot effects: the
// status line shows the latest [flow.ShowMessage] and a
// [flow.NavigateToAuthenticated] effect routes to the session page.
type LoginModel struct {
	flow *flow.LoginFlow

	effects <-chan flow.UiEffect
	states  <-chan flow.UiState

	inputs  []textinput.Model
	focus   int
	spin    spinner.Model
	loading bool
	status  string

	// lastShown is the most recent ShowMessage payload. On a successful
	// authentication the machine emits the user identifier immediately before
	// navigating, so at navigation time this holds the UID.
	lastShown string
}

// NewLoginModel creates a [LoginModel] bound to loginFlow and attaches it as
// the flow's effect subscriber and state observer. Both subscriptions live
// until ctx is cancelled.
func NewLoginModel(ctx context.Context, loginFlow *flow.LoginFlow) *LoginModel {
	emailInput := textinput.New()
	emailInput.Placeholder = "email"
	emailInput.CharLimit = 254
	emailInput.Width = 40
	emailInput.Focus()

	passwordInput := textinput.New()
	passwordInput.Placeholder = "password"
	passwordInput.CharLimit = 256
	passwordInput.Width = 40
	passwordInput.EchoMode = textinput.EchoPassword
	passwordInput.EchoCharacter = '*'

	phoneInput := textinput.New()
	phoneInput.Placeholder = "+79991234567"
	phoneInput.CharLimit = 20
	phoneInput.Width = 40

	codeInput := textinput.New()
	codeInput.Placeholder = "123456"
	codeInput.CharLimit = 6
	codeInput.Width = 40

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return &LoginModel{
		flow:    loginFlow,
		effects: loginFlow.Effects(ctx),
		states:  loginFlow.StateUpdates(ctx),
		inputs:  []textinput.Model{emailInput, passwordInput, phoneInput, codeInput},
		spin:    sp,
	}
}

// Init implements [tea.Model]. Starts the cursor-blink animation and the
// effect/state receive loops.
func (m *LoginModel) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.waitEffect(), m.waitState())
}

// Update implements [tea.Model]. Handled messages:
//   - loginEffectMsg: status line updates and navigation to the session page.
//   - loginStateMsg: mirrors the machine's IsLoading flag.
//   - tab/shift+tab: moves focus between inputs.
//   - enter: submits the sub-flow the focused input belongs to.
//   - ctrl+r: submits account creation.
//   - ctrl+a: submits anonymous sign-in.
//
// All other key events are forwarded to the focused input widget and the new
// value is re-dispatched to the machine as a Change* action.
func (m *LoginModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loginEffectMsg:
		return m.applyEffect(msg.effect)
	case loginStateMsg:
		m.loading = msg.state.IsLoading
		if m.loading {
			return m, tea.Batch(m.waitState(), m.spin.Tick)
		}
		return m, m.waitState()
	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "tab":
		m.focusNext()
		return m, nil
	case "shift+tab":
		m.focusPrev()
		return m, nil
	case "enter":
		m.submitFocused()
		return m, nil
	case "ctrl+r":
		m.flow.Dispatch(flow.SubmitSignUp{})
		return m, nil
	case "ctrl+a":
		m.flow.Dispatch(flow.SubmitAnonymous{})
		return m, nil
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(keyMsg)
	m.dispatchChange()
	return m, cmd
}

// View implements [tea.Model]. Renders the form as a two-column table with a
// loading indicator and the latest status message.
func (m *LoginModel) View() string {
	var b strings.Builder
	b.WriteString("Поле    │ Значение\n")
	b.WriteString("────────┼────────────────────────────────────────────\n")
	b.WriteString("Почта   │ [")
	b.WriteString(m.inputs[inputEmail].View())
	b.WriteString("]\n")
	b.WriteString("Пароль  │ [")
	b.WriteString(m.inputs[inputPassword].View())
	b.WriteString("]\n")
	b.WriteString("Телефон │ [")
	b.WriteString(m.inputs[inputPhone].View())
	b.WriteString("]\n")
	b.WriteString("Код     │ [")
	b.WriteString(m.inputs[inputCode].View())
	b.WriteString("]\n")

	if m.loading {
		b.WriteString("\n")
		b.WriteString(m.spin.View())
		b.WriteString(" Запрос выполняется...\n")
	}

	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(statusStyle.Render("Статус: " + m.status))
		b.WriteString("\n")
	}

	return renderPage(
		"ВХОД",
		strings.TrimRight(b.String(), "\n"),
		"enter: отправить │ tab: след. поле │ ctrl+r: регистрация │ ctrl+a: анонимный вход │ ctrl+v: версия",
	)
}

func (m *LoginModel) applyEffect(effect flow.UiEffect) (tea.Model, tea.Cmd) {
	switch e := effect.(type) {
	case flow.ShowMessage:
		m.status = e.Message
		m.lastShown = e.Message
		return m, m.waitEffect()
	case flow.NavigateToAuthenticated:
		payload := SessionStarted{UserUID: m.lastShown}
		m.resetSecrets()
		return m, tea.Batch(m.waitEffect(), func() tea.Msg {
			return NavigateTo{Page: "session", Payload: payload}
		})
	}
	return m, m.waitEffect()
}

// submitFocused maps enter to the sub-flow owning the focused input: the
// credential inputs submit a password sign-in, the phone input requests a
// verification code, and the code input redeems it.
func (m *LoginModel) submitFocused() {
	switch m.focus {
	case inputPhone:
		m.flow.Dispatch(flow.SubmitSendCode{})
	case inputCode:
		m.flow.Dispatch(flow.SubmitVerifyCode{})
	default:
		m.flow.Dispatch(flow.SubmitSignIn{})
	}
}

func (m *LoginModel) dispatchChange() {
	value := m.inputs[m.focus].Value()
	switch m.focus {
	case inputEmail:
		m.flow.Dispatch(flow.ChangeEmail{Email: value})
	case inputPassword:
		m.flow.Dispatch(flow.ChangePassword{Password: value})
	case inputPhone:
		m.flow.Dispatch(flow.ChangePhoneNumber{PhoneNumber: value})
	case inputCode:
		m.flow.Dispatch(flow.ChangeVerifyCode{VerifyCode: value})
	}
}

// resetSecrets blanks the password and code inputs when leaving the page so
// they are not on screen after a later sign-out.
func (m *LoginModel) resetSecrets() {
	m.inputs[inputPassword].SetValue("")
	m.inputs[inputCode].SetValue("")
	m.status = ""
	m.flow.Dispatch(flow.ChangePassword{})
	m.flow.Dispatch(flow.ChangeVerifyCode{})
}

func (m *LoginModel) waitEffect() tea.Cmd {
	effects := m.effects
	return func() tea.Msg {
		effect, ok := <-effects
		if !ok {
			return nil
		}
		return loginEffectMsg{effect: effect}
	}
}

func (m *LoginModel) waitState() tea.Cmd {
	states := m.states
	return func() tea.Msg {
		state, ok := <-states
		if !ok {
			return nil
		}
		return loginStateMsg{state: state}
	}
}

func (m *LoginModel) focusNext() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

func (m *LoginModel) focusPrev() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
}
