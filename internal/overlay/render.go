package overlay

import (
	"context"
	"sync"
	"time"

	"radiowatch/internal/display"
	"radiowatch/internal/refresh"
	logx "radiowatch/pkg/logx"
)

const drawTimeout = 5 * time.Second

// Renderer is the overlay sink of the refresh loop: it formats the result,
// composes a frame against the current settings snapshot and ships it.
type Renderer struct {
	sink     Sink
	comp     *Compositor
	settings func() Settings
	log      logx.Logger

	// mu serializes frames: Render runs on the refresh loop while Clear
	// can arrive from the UI toggle.
	mu      sync.Mutex
	cleared bool
}

// NewRenderer wires a renderer. settings is called per render so
// preference changes take effect on the next frame without replumbing.
func NewRenderer(sink Sink, settings func() Settings, log logx.Logger) *Renderer {
	return &Renderer{
		sink:     sink,
		comp:     NewCompositor(),
		settings: settings,
		log:      log.With(logx.String("component", "overlay")),
	}
}

func (r *Renderer) Render(res refresh.Result) {
	lines := display.OverlayLines(res)
	s := r.settings()

	r.mu.Lock()
	defer r.mu.Unlock()

	// A clear frame self-expires (clearTTL), so once one has been sent
	// there is nothing left to blank. Skipping the repeats keeps a
	// disabled overlay from redialing an absent backend every cycle.
	content := s.Enabled && len(lines) > 0
	if !content && r.cleared {
		return
	}
	r.draw(r.comp.Compose(lines, s))
	r.cleared = !content
}

// Clear pushes a clear-only frame. Called on shutdown and when the user
// disables the overlay, so no stale block lingers in-game.
func (r *Renderer) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.cleared {
		return
	}
	r.draw(r.comp.clearFrame())
	r.cleared = true
}

func (r *Renderer) draw(frame Frame) {
	ctx, cancel := context.WithTimeout(context.Background(), drawTimeout)
	defer cancel()

	// One failing command must not take the rest of the frame with it.
	if err := r.sink.DrawRect(ctx, frame.Background); err != nil {
		r.log.Warn("background draw failed", logx.Err(err))
	}
	for _, t := range frame.Texts {
		if err := r.sink.DrawText(ctx, t); err != nil {
			r.log.Warn("text draw failed", logx.String("slot", t.ID), logx.Err(err))
		}
	}
}
