package display

import (
	"testing"
	"time"

	"radiowatch/internal/panel"
	"radiowatch/internal/refresh"
	"radiowatch/internal/schedule"
)

type fakeSurface struct {
	frames []panel.Fields
}

func (f *fakeSurface) Update(fields panel.Fields) {
	f.frames = append(f.frames, fields)
}

func TestPanelRendererShowsProgram(t *testing.T) {
	t.Parallel()
	s := &fakeSurface{}
	r := NewPanelRenderer(s)

	r.Render(refresh.Result{
		Program: &schedule.Program{Name: "Mittagsjournal", TimeSlot: "12:00 - 13:00 Uhr"},
		At:      time.Date(2024, 3, 10, 12, 5, 30, 0, time.UTC),
	})

	if len(s.frames) != 1 {
		t.Fatalf("got %d frames", len(s.frames))
	}
	got := s.frames[0]
	if got.ProgramName != "Mittagsjournal" {
		t.Fatalf("name = %q", got.ProgramName)
	}
	if got.Status != "Last updated: 12:05:30" {
		t.Fatalf("status = %q", got.Status)
	}
}

func TestPanelRendererFetchingKeepsLastFrame(t *testing.T) {
	t.Parallel()
	s := &fakeSurface{}
	r := NewPanelRenderer(s)

	r.Render(refresh.Result{
		Program: &schedule.Program{Name: "Abendjournal"},
		At:      time.Now(),
	})
	r.RenderFetching()

	got := s.frames[len(s.frames)-1]
	if got.ProgramName != "Abendjournal" {
		t.Fatalf("progress frame dropped program: %q", got.ProgramName)
	}
	if got.Status != FetchingStatus {
		t.Fatalf("status = %q, want %q", got.Status, FetchingStatus)
	}
}

func TestPanelRendererFetchingBeforeFirstResult(t *testing.T) {
	t.Parallel()
	s := &fakeSurface{}
	r := NewPanelRenderer(s)

	r.RenderFetching()

	got := s.frames[0]
	if got.ProgramName != "No program data" {
		t.Fatalf("name = %q", got.ProgramName)
	}
	if got.Status != FetchingStatus {
		t.Fatalf("status = %q", got.Status)
	}
}
