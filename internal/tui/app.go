package tui

import (
	"github.com/MKhiriev/go-auth-flow/models"
	tea "github.com/charmbracelet/bubbletea"
)

// RootModel routes between TUI pages. It owns the active page, the global
// Ctrl+C quit and the [NavigateTo] messages. Key presses go only to the
// active page; остальные сообщения раздаются каждой странице, чтобы фоновая
// страница продолжала получать события своего сценария.
type RootModel struct {
	pages   map[string]tea.Model
	current string

	quitByUser bool
	buildInfo  models.AppBuildInfo

	showBuildInfo bool
}

// NewRootModel wires the page set and opens startPage first.
func NewRootModel(pages map[string]tea.Model, startPage string, buildInfo models.AppBuildInfo) RootModel {
	return RootModel{
		pages:     pages,
		current:   startPage,
		buildInfo: buildInfo,
	}
}

func (r RootModel) Init() tea.Cmd {
	cmds := make([]tea.Cmd, 0, len(r.pages))
	for _, page := range r.pages {
		cmds = append(cmds, page.Init())
	}
	return tea.Batch(cmds...)
}

func (r RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// глобальные хоткеи работают на любой странице
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "ctrl+c":
			r.quitByUser = true
			return r, tea.Quit
		case "ctrl+v":
			r.showBuildInfo = !r.showBuildInfo
			return r, nil
		case "esc":
			if r.showBuildInfo {
				r.showBuildInfo = false
				return r, nil
			}
		}

		if r.showBuildInfo {
			return r, nil
		}

		return r.updateCurrent(msg)
	}

	// переключение между страницами
	if nav, ok := msg.(NavigateTo); ok {
		if _, exists := r.pages[nav.Page]; !exists {
			return r, nil
		}

		r.showBuildInfo = false
		r.current = nav.Page

		if nav.Payload != nil {
			payload := nav.Payload
			return r, func() tea.Msg { return payload }
		}
		return r, nil
	}

	return r.updateAll(msg)
}

func (r RootModel) View() string {
	if r.showBuildInfo {
		return renderBuildInfoWindow(r.buildInfo)
	}
	page, ok := r.pages[r.current]
	if !ok {
		return renderPage("TUI", "", "")
	}
	return page.View()
}

func (r RootModel) updateCurrent(msg tea.Msg) (tea.Model, tea.Cmd) {
	page, ok := r.pages[r.current]
	if !ok {
		return r, nil
	}

	updated, cmd := page.Update(msg)
	r.pages[r.current] = updated
	return r, cmd
}

func (r RootModel) updateAll(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmds := make([]tea.Cmd, 0, len(r.pages))
	for name, page := range r.pages {
		updated, cmd := page.Update(msg)
		r.pages[name] = updated
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return r, tea.Batch(cmds...)
}
