package ui

import "github.com/charmbracelet/lipgloss"

// Styles holds the lipgloss styles for the panel.
type Styles struct {
	Frame     lipgloss.Style
	Title     lipgloss.Style
	TimeSlot  lipgloss.Style
	Presenter lipgloss.Style
	Body      lipgloss.Style
	Status    lipgloss.Style
	Error     lipgloss.Style
	Help      lipgloss.Style
}

func defaultStyles() Styles {
	return Styles{
		Frame: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("220")).
			Padding(0, 2),
		Title: lipgloss.NewStyle().
			Foreground(lipgloss.Color("220")).
			Bold(true),
		TimeSlot: lipgloss.NewStyle().
			Foreground(lipgloss.Color("40")),
		Presenter: lipgloss.NewStyle().
			Foreground(lipgloss.Color("33")),
		Body: lipgloss.NewStyle().
			Foreground(lipgloss.Color("255")),
		Status: lipgloss.NewStyle().
			Foreground(lipgloss.Color("244")),
		Error: lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true),
		Help: lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")),
	}
}
