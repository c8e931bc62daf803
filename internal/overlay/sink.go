// Package overlay renders formatted lines into an EDMCOverlay-compatible
// on-screen overlay: it computes absolute pixel placement from a named
// anchor and screen resolution, and ships draw commands to a sink.
package overlay

import "context"

// TextCommand draws one line of text into a named slot.
// TTL is in seconds; after that the overlay backend drops the element.
type TextCommand struct {
	ID    string
	Text  string
	Color string
	X     int
	Y     int
	TTL   int
	Size  string
}

// RectCommand draws a filled rectangle into a named slot.
type RectCommand struct {
	ID     string
	Stroke string
	Fill   string
	X      int
	Y      int
	W      int
	H      int
	TTL    int
}

// Sink is the capability interface over the overlay drawing backend.
// When no backend is configured the app wires a NopSink instead; callers
// never branch on availability.
type Sink interface {
	DrawText(ctx context.Context, cmd TextCommand) error
	DrawRect(ctx context.Context, cmd RectCommand) error
	Close() error
}

// NopSink silently accepts every command.
type NopSink struct{}

func (NopSink) DrawText(context.Context, TextCommand) error { return nil }
func (NopSink) DrawRect(context.Context, RectCommand) error { return nil }
func (NopSink) Close() error                                { return nil }
