package display

import (
	"errors"
	"strings"
	"testing"
	"time"

	"radiowatch/internal/refresh"
	"radiowatch/internal/schedule"
)

func TestWrap(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name   string
		text   string
		budget int
		want   []string
	}{
		{name: "empty", text: "", budget: 10, want: nil},
		{name: "whitespace only", text: "  \t ", budget: 10, want: nil},
		{name: "fits", text: "a b c", budget: 10, want: []string{"a b c"}},
		{name: "splits", text: "alpha beta gamma", budget: 10, want: []string{"alpha beta", "gamma"}},
		{name: "exact boundary", text: "ab cd", budget: 5, want: []string{"ab cd"}},
		{name: "one over boundary", text: "ab cde", budget: 5, want: []string{"ab", "cde"}},
		{name: "overlong word own line", text: "hi unpronounceable no", budget: 6, want: []string{"hi", "unpronounceable", "no"}},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := Wrap(tt.text, tt.budget)
			if len(got) != len(tt.want) {
				t.Fatalf("Wrap = %q, want %q", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Fatalf("line %d = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestWrapProperties(t *testing.T) {
	t.Parallel()
	text := "the quick brown fox jumps over the extraordinarily lazy dog"
	const budget = 12

	lines := Wrap(text, budget)
	for _, l := range lines {
		if len(l) > budget && strings.Contains(l, " ") {
			t.Fatalf("multi-word line exceeds budget: %q", l)
		}
	}
	// Joining the wrapped lines reconstructs the normalized text.
	joined := strings.Join(lines, " ")
	normalized := strings.Join(strings.Fields(text), " ")
	if joined != normalized {
		t.Fatalf("join mismatch:\n got %q\nwant %q", joined, normalized)
	}
}

func okResult() refresh.Result {
	return refresh.Result{
		Program: &schedule.Program{
			Name:        "Morgenjournal",
			TimeSlot:    "08:00 - 08:56 Uhr",
			Description: "News und Wetter",
		},
		At: time.Date(2024, 1, 1, 9, 30, 0, 0, time.UTC),
	}
}

func TestPanelFields(t *testing.T) {
	t.Parallel()
	f := PanelFields(okResult())
	if f.ProgramName != "Morgenjournal" {
		t.Fatalf("ProgramName = %q", f.ProgramName)
	}
	if f.TimeSlot != "Time: 08:00 - 08:56 Uhr" {
		t.Fatalf("TimeSlot = %q", f.TimeSlot)
	}
	if f.Presenter != "" {
		t.Fatalf("Presenter = %q, want empty without author", f.Presenter)
	}
	if f.Status != "Last updated: 09:30:00" {
		t.Fatalf("Status = %q", f.Status)
	}
	if f.Error {
		t.Fatal("Error flag set on success frame")
	}
}

func TestPanelFieldsError(t *testing.T) {
	t.Parallel()
	f := PanelFields(refresh.Result{Err: errors.New("HTTP Error 404: Not Found")})
	if f.ProgramName != "Error" || !f.Error {
		t.Fatalf("headline = %q error=%v", f.ProgramName, f.Error)
	}
	if f.Description != "HTTP Error 404: Not Found" {
		t.Fatalf("Description = %q", f.Description)
	}
	if f.Status != "Status: Error" {
		t.Fatalf("Status = %q", f.Status)
	}
}

func TestPanelFieldsEmpty(t *testing.T) {
	t.Parallel()
	f := PanelFields(refresh.Result{})
	if f.ProgramName != "No program data" {
		t.Fatalf("headline = %q", f.ProgramName)
	}
	if f.Description != "Waiting for data..." {
		t.Fatalf("Description = %q", f.Description)
	}
}

func TestOverlayLines(t *testing.T) {
	t.Parallel()
	lines := OverlayLines(okResult())
	if len(lines) < 5 {
		t.Fatalf("too few lines: %d", len(lines))
	}
	if lines[0].Text != borderLine || lines[len(lines)-1].Text != borderLine {
		t.Fatal("block is not bordered")
	}

	var largeSeen bool
	for _, l := range lines {
		if l.Size == SizeLarge {
			largeSeen = true
			if l.Color != accentColor {
				t.Fatalf("name line color = %q", l.Color)
			}
			if !strings.Contains("Morgenjournal", l.Text) {
				t.Fatalf("large size on non-name line %q", l.Text)
			}
		}
	}
	if !largeSeen {
		t.Fatal("no large program-name line")
	}
}

func TestOverlayLinesDescriptionTruncation(t *testing.T) {
	t.Parallel()
	res := okResult()
	res.Program.Description = strings.Repeat("wort ", 60)
	lines := OverlayLines(res)

	var descLines, ellipsis int
	for _, l := range lines {
		if l.Color == textColor {
			if l.Text == "..." {
				ellipsis++
				continue
			}
			descLines++
		}
	}
	if descLines != maxDescLines {
		t.Fatalf("description lines = %d, want %d", descLines, maxDescLines)
	}
	if ellipsis != 1 {
		t.Fatalf("ellipsis markers = %d, want 1", ellipsis)
	}
}

func TestOverlayLinesClearSignals(t *testing.T) {
	t.Parallel()
	if got := OverlayLines(refresh.Result{Err: errors.New("boom")}); got != nil {
		t.Fatalf("error result produced %d lines", len(got))
	}
	if got := OverlayLines(refresh.Result{}); got != nil {
		t.Fatalf("empty result produced %d lines", len(got))
	}
}
