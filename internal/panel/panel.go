// Package panel defines the host-panel surface: a small set of labeled
// text fields updated wholesale on every render. Implementations decide
// where the fields actually go (log line, terminal UI, a host toolkit).
package panel

import (
	logx "radiowatch/pkg/logx"
)

// Fields is one complete frame of panel content. Empty strings mean the
// field is hidden; the surface replaces everything each time.
type Fields struct {
	ProgramName string
	TimeSlot    string
	Description string
	Presenter   string
	Status      string

	// Error marks the frame as an error display (red headline).
	Error bool
}

// Surface receives panel frames. Update is always called from the display
// loop, never concurrently.
type Surface interface {
	Update(f Fields)
}

// LogSurface is the headless panel: it logs each frame. Always available,
// used when no terminal UI is attached.
type LogSurface struct {
	log logx.Logger
}

func NewLogSurface(log logx.Logger) *LogSurface {
	return &LogSurface{log: log.With(logx.String("component", "panel"))}
}

func (s *LogSurface) Update(f Fields) {
	if f.Error {
		s.log.Warn("panel",
			logx.String("headline", f.ProgramName),
			logx.String("description", f.Description),
			logx.String("status", f.Status),
		)
		return
	}
	s.log.Info("panel",
		logx.String("program", f.ProgramName),
		logx.String("time_slot", f.TimeSlot),
		logx.String("description", f.Description),
		logx.String("presenter", f.Presenter),
		logx.String("status", f.Status),
	)
}
