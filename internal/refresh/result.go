package refresh

import (
	"time"

	"radiowatch/internal/schedule"
)

// Result is the single live outcome of the most recent fetch attempt.
// Exactly one of these is current at a time; the controller hands it to
// every renderer by value and nobody mutates it afterwards.
type Result struct {
	// Program is the resolved record, nil when nothing is airing or the
	// attempt failed.
	Program *schedule.Program

	// Err is the converted fetch-path failure (transport, protocol,
	// parse, configuration). nil together with a nil Program means
	// "fetched fine, nothing airing right now".
	Err error

	// At is when the attempt finished.
	At time.Time
}

// IsError reports whether the attempt failed.
func (r Result) IsError() bool { return r.Err != nil }

// IsEmpty reports a successful fetch with no current broadcast.
func (r Result) IsEmpty() bool { return r.Err == nil && r.Program == nil }

// Renderer consumes results on the display loop. Render must not block for
// long and must never panic the loop; renderers own their error handling.
type Renderer interface {
	Render(res Result)
}
