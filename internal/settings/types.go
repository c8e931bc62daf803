package settings

import (
	"errors"
	"time"
)

var ErrDisabled = errors.New("settings store disabled")

// Config configures the settings store.
//
// Driver values:
//   - "file": dependency-free JSON file backend
//   - "sqlite": SQLite database file (optional build tag)
//
// If Driver is empty or "none", persistence is disabled and every
// preference falls back to its default.
type Config struct {
	Driver      string
	Path        string
	BusyTimeout time.Duration // sqlite only; 0 means default
}

// Preference keys. These are the stable on-disk names; renaming one
// silently resets that preference for existing installs.
const (
	KeyStationURL    = "station_url"
	KeyStationType   = "station_type"
	KeyRefreshEvery  = "refresh_schedule"
	KeyOverlayOn     = "overlay_enabled"
	KeyOverlayAnchor = "overlay_anchor"
	KeyScreenWidth   = "overlay_screen_width"
	KeyScreenHeight  = "overlay_screen_height"
)

// Defaults applied when a key is absent or unparseable.
const (
	DefaultStationType  = "orf"
	DefaultScreenWidth  = 1920
	DefaultScreenHeight = 1080
)
