package overlay

import (
	"context"
	"sync"
	"testing"
	"time"

	"radiowatch/internal/refresh"
	"radiowatch/internal/schedule"
	logx "radiowatch/pkg/logx"
)

type recordingSink struct {
	mu    sync.Mutex
	rects []RectCommand
	texts []TextCommand
}

func (s *recordingSink) DrawRect(ctx context.Context, cmd RectCommand) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rects = append(s.rects, cmd)
	return nil
}

func (s *recordingSink) DrawText(ctx context.Context, cmd TextCommand) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.texts = append(s.texts, cmd)
	return nil
}

func (s *recordingSink) Close() error { return nil }

func (s *recordingSink) commands() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.rects) + len(s.texts)
}

func (s *recordingSink) hasContentText() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, t := range s.texts {
		if t.Text != "" {
			return true
		}
	}
	return false
}

func TestRendererEnableAtRuntimeDraws(t *testing.T) {
	t.Parallel()

	sink := &recordingSink{}
	var mu sync.Mutex
	enabled := false
	settingsFn := func() Settings {
		mu.Lock()
		defer mu.Unlock()
		return Settings{
			Enabled:      enabled,
			Anchor:       DefaultAnchor,
			ScreenWidth:  1920,
			ScreenHeight: 1080,
			Interval:     10 * time.Minute,
		}
	}
	r := NewRenderer(sink, settingsFn, logx.Nop())

	res := refresh.Result{
		Program: &schedule.Program{
			Name:     "Morgenjournal",
			TimeSlot: "07:00 - 08:00 Uhr",
		},
		At: time.Now(),
	}

	// While disabled, the first render clears and later ones are no-ops:
	// the clear frame already expired on its own TTL.
	r.Render(res)
	afterFirst := sink.commands()
	if afterFirst == 0 {
		t.Fatal("first disabled render sent nothing; stale frames would linger")
	}
	if sink.hasContentText() {
		t.Fatal("disabled render drew content")
	}
	r.Render(res)
	if got := sink.commands(); got != afterFirst {
		t.Fatalf("repeat disabled render sent %d more commands", got-afterFirst)
	}

	// Flipping the preference must reach the backend on the very next
	// frame, without rebuilding the renderer.
	mu.Lock()
	enabled = true
	mu.Unlock()
	r.Render(res)
	if !sink.hasContentText() {
		t.Fatal("enabled render produced no visible text")
	}
}

func TestRendererClearAfterContent(t *testing.T) {
	t.Parallel()

	sink := &recordingSink{}
	settingsFn := func() Settings {
		return Settings{Enabled: true, Anchor: DefaultAnchor, ScreenWidth: 1920, ScreenHeight: 1080, Interval: time.Minute}
	}
	r := NewRenderer(sink, settingsFn, logx.Nop())

	r.Render(refresh.Result{Program: &schedule.Program{Name: "Ö1"}, At: time.Now()})
	before := sink.commands()

	r.Clear()
	if sink.commands() <= before {
		t.Fatal("Clear after content sent nothing")
	}
	after := sink.commands()

	// Clearing twice in a row is redundant; the second call must not
	// touch the sink.
	r.Clear()
	if sink.commands() != after {
		t.Fatal("second Clear hit the sink")
	}
}
