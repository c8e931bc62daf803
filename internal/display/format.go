// Package display turns a resolved program into renderable content: plain
// labeled fields for the panel and a styled, word-wrapped block for the
// overlay.
package display

import (
	"strings"

	"radiowatch/internal/panel"
	"radiowatch/internal/refresh"
)

// Size selects the overlay font size. The overlay backend only knows these
// two values.
type Size string

const (
	SizeNormal Size = "normal"
	SizeLarge  Size = "large"
)

// Overlay colors. Constant across renders so the block always reads the
// same in-game.
const (
	accentColor    = "yellow"
	timeColor      = "green"
	presenterColor = "blue"
	textColor      = "#ffffff"
)

// Column budgets for the overlay block.
const (
	nameBudget      = 26
	presenterBudget = 38
	descBudget      = 38
	maxDescLines    = 3
)

var (
	borderLine    = strings.Repeat("=", 30)
	separatorLine = strings.Repeat("-", 30)
)

// Line is one overlay text line with its style tags.
type Line struct {
	Text  string
	Color string
	Size  Size
}

// Wrap greedily packs whitespace-separated words onto lines of at most
// budget characters (words joined by single spaces). A single word longer
// than the budget occupies its own over-length line. Empty input yields no
// lines.
func Wrap(text string, budget int) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}

	var lines []string
	current := words[0]
	for _, w := range words[1:] {
		if len(current)+1+len(w) <= budget {
			current += " " + w
			continue
		}
		lines = append(lines, current)
		current = w
	}
	return append(lines, current)
}

// PanelFields maps a fetch result onto the panel surface: the populated
// fields in fixed order, with label decoration for time slot and presenter
// only. Errors and "nothing airing" produce the fixed placeholder frames.
func PanelFields(res refresh.Result) panel.Fields {
	if res.IsError() {
		return panel.Fields{
			ProgramName: "Error",
			Description: res.Err.Error(),
			Status:      "Status: Error",
			Error:       true,
		}
	}
	if res.IsEmpty() {
		return panel.Fields{
			ProgramName: "No program data",
			Description: "Waiting for data...",
			Status:      "Status: No data",
		}
	}

	p := res.Program
	f := panel.Fields{
		ProgramName: p.Name,
		Description: p.Description,
		Status:      "Last updated: " + res.At.Format("15:04:05"),
	}
	if p.TimeSlot != "" {
		f.TimeSlot = "Time: " + p.TimeSlot
	}
	if p.Author != "" {
		f.Presenter = "Presenter: " + p.Author
	}
	return f
}

// OverlayLines renders the bordered overlay block for a program. An error
// or empty result yields zero lines, which the compositor takes as the
// signal to clear the frame rather than draw empty content.
func OverlayLines(res refresh.Result) []Line {
	if res.IsError() || res.IsEmpty() {
		return nil
	}
	p := res.Program

	lines := []Line{{Text: borderLine, Color: accentColor, Size: SizeNormal}}

	for _, t := range Wrap(p.Name, nameBudget) {
		lines = append(lines, Line{Text: t, Color: accentColor, Size: SizeLarge})
	}
	lines = append(lines, Line{Text: separatorLine, Color: accentColor, Size: SizeNormal})

	if p.TimeSlot != "" {
		lines = append(lines, Line{Text: "Time: " + p.TimeSlot, Color: timeColor, Size: SizeNormal})
	}
	if p.Author != "" {
		for _, t := range Wrap("By: "+p.Author, presenterBudget) {
			lines = append(lines, Line{Text: t, Color: presenterColor, Size: SizeNormal})
		}
	}

	if p.Description != "" {
		lines = append(lines, Line{Text: separatorLine, Color: accentColor, Size: SizeNormal})
		wrapped := Wrap(p.Description, descBudget)
		if len(wrapped) > maxDescLines {
			wrapped = wrapped[:maxDescLines]
			wrapped = append(wrapped, "...")
		}
		for _, t := range wrapped {
			lines = append(lines, Line{Text: t, Color: textColor, Size: SizeNormal})
		}
	}

	return append(lines, Line{Text: borderLine, Color: accentColor, Size: SizeNormal})
}
