package station

import (
	"errors"
	"fmt"
	"net/http"
)

// Fetch-path failures are converted into exactly one of these at the
// controller boundary. Their Error() strings are user-visible (they end up
// as the panel's error description), so they stay short and match the
// wording users already know from the station widget.

// ErrNoURL means no station URL is configured.
var ErrNoURL = errors.New("Station URL is required")

// ErrAlreadyFetching is the soft guard error returned to a refresh request
// that arrives while a fetch is still in flight. It is visible to the
// caller only and never rendered to the panel or overlay.
var ErrAlreadyFetching = errors.New("Already fetching data")

// TransportError wraps connection/DNS/timeout failures.
type TransportError struct {
	Cause error
}

func (e *TransportError) Error() string { return fmt.Sprintf("Network Error: %v", e.Cause) }
func (e *TransportError) Unwrap() error { return e.Cause }

// ProtocolError is a non-2xx HTTP response.
type ProtocolError struct {
	Status int
}

func (e *ProtocolError) Error() string {
	text := http.StatusText(e.Status)
	if text == "" {
		text = "Unknown"
	}
	return fmt.Sprintf("HTTP Error %d: %s", e.Status, text)
}

// ParseError wraps malformed schedule data.
type ParseError struct {
	Cause error
}

func (e *ParseError) Error() string { return "Could not parse program data" }
func (e *ParseError) Unwrap() error { return e.Cause }
