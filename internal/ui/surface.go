package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"radiowatch/internal/panel"
)

// Surface adapts a running Bubble Tea program to panel.Surface. Frames
// arrive from the refresh loop's goroutine; Program.Send is safe for that.
type Surface struct {
	prog *tea.Program
}

func NewSurface(prog *tea.Program) *Surface {
	return &Surface{prog: prog}
}

func (s *Surface) Update(fields panel.Fields) {
	if s == nil || s.prog == nil {
		return
	}
	s.prog.Send(fieldsMsg(fields))
}
