package tui

import (
	"github.com/MKhiriev/go-auth-flow/internal/flow"
)

// NavigateTo switches the root router to another page. Payload, when set, is
// re-dispatched to the target page after the switch.
type NavigateTo struct {
	Page    string
	Payload any
}

// SessionStarted is the payload delivered to the session page right after a
// successful authentication.
type SessionStarted struct {
	UserUID string
}

type loginEffectMsg struct {
	effect flow.UiEffect
}

type loginStateMsg struct {
	state flow.UiState
}

type sessionEffectMsg struct {
	effect flow.UiEffect
}

type copiedMsg struct {
	err error
}

type clearStatusMsg struct{}
