// Package ui is the interactive terminal panel: it shows the current
// program the way the host panel of the original widget does, with key
// bindings for manual refresh and overlay toggling.
package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"radiowatch/internal/panel"
)

// fieldsMsg delivers a new panel frame into the Bubble Tea loop.
type fieldsMsg panel.Fields

// overlayStateMsg reports the overlay enabled state after a toggle.
type overlayStateMsg bool

// actionErrMsg carries a failed key action; shown on the status line.
type actionErrMsg struct{ err error }

// Options configures the panel.
type Options struct {
	// Refresh triggers a manual fetch. An error (e.g. a fetch already in
	// flight) is shown on the status line.
	Refresh func() error

	// ToggleOverlay flips the overlay preference and returns the new state.
	ToggleOverlay func() (bool, error)

	// OverlayOn is the initial overlay state.
	OverlayOn bool
}

// Model is the root Bubble Tea state for the panel.
type Model struct {
	opts   Options
	keys   keyMap
	styles Styles

	spin     spinner.Model
	fetching bool

	fields  panel.Fields
	haveAny bool

	overlayOn bool
	actionErr string

	width  int
	height int
}

func New(opts Options) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	return Model{
		opts:      opts,
		keys:      defaultKeyMap(),
		styles:    defaultStyles(),
		spin:      sp,
		overlayOn: opts.OverlayOn,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(tea.EnterAltScreen, m.spin.Tick)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case fieldsMsg:
		m.fields = panel.Fields(msg)
		m.haveAny = true
		m.fetching = strings.Contains(m.fields.Status, "Refreshing")
		m.actionErr = ""
		return m, nil

	case overlayStateMsg:
		m.overlayOn = bool(msg)
		return m, nil

	case actionErrMsg:
		if msg.err != nil {
			m.actionErr = msg.err.Error()
		}
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Refresh):
		if m.opts.Refresh == nil {
			return m, nil
		}
		refresh := m.opts.Refresh
		return m, func() tea.Msg {
			if err := refresh(); err != nil {
				return actionErrMsg{err: err}
			}
			return nil
		}

	case key.Matches(msg, m.keys.Overlay):
		if m.opts.ToggleOverlay == nil {
			return m, nil
		}
		toggle := m.opts.ToggleOverlay
		return m, func() tea.Msg {
			on, err := toggle()
			if err != nil {
				return actionErrMsg{err: err}
			}
			return overlayStateMsg(on)
		}
	}
	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	s := m.styles

	var b strings.Builder
	if !m.haveAny {
		b.WriteString(s.Status.Render("Waiting for data..."))
	} else {
		name := m.fields.ProgramName
		if m.fields.Error {
			b.WriteString(s.Error.Render(name))
		} else {
			b.WriteString(s.Title.Render(name))
		}
		b.WriteByte('\n')
		if m.fields.TimeSlot != "" {
			b.WriteString(s.TimeSlot.Render(m.fields.TimeSlot))
			b.WriteByte('\n')
		}
		if m.fields.Presenter != "" {
			b.WriteString(s.Presenter.Render(m.fields.Presenter))
			b.WriteByte('\n')
		}
		if m.fields.Description != "" {
			b.WriteString(s.Body.Render(m.fields.Description))
			b.WriteByte('\n')
		}
	}

	b.WriteByte('\n')
	b.WriteString(s.Status.Render(m.statusLine()))
	if m.actionErr != "" {
		b.WriteByte('\n')
		b.WriteString(s.Error.Render(m.actionErr))
	}

	content := s.Frame.Render(b.String())
	help := s.Help.Render(m.helpLine())
	return lipgloss.JoinVertical(lipgloss.Left, content, help)
}

func (m Model) statusLine() string {
	status := m.fields.Status
	if status == "" {
		status = "Status: Starting..."
	}
	if m.fetching {
		status = m.spin.View() + " " + status
	}
	overlay := "overlay off"
	if m.overlayOn {
		overlay = "overlay on"
	}
	return status + "  |  " + overlay
}

func (m Model) helpLine() string {
	parts := []string{
		m.keys.Refresh.Help().Key + " " + m.keys.Refresh.Help().Desc,
		m.keys.Overlay.Help().Key + " " + m.keys.Overlay.Help().Desc,
		m.keys.Quit.Help().Key + " " + m.keys.Quit.Help().Desc,
	}
	return strings.Join(parts, "  ·  ")
}
