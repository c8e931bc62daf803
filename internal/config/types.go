package config

// Config is the on-disk configuration (YAML or JSON, strict keys).
//
// Persisted user preferences (see internal/settings) override the
// station and overlay sections at runtime; the file provides the
// baseline an installation starts from.
type Config struct {
	Station StationConfig `json:"station"`
	Overlay OverlayConfig `json:"overlay"`
	Panel   PanelConfig   `json:"panel,omitempty"`
	Logging LoggingConfig `json:"logging"`

	// Settings controls the optional preference persistence layer.
	Settings *SettingsConfig `json:"settings,omitempty"`
}

// StationConfig selects the broadcaster endpoint and polling cadence.
type StationConfig struct {
	// URL is the schedule endpoint returning the day-program JSON.
	URL string `json:"url"`

	// Type names the schedule dialect. Only "orf" is currently known;
	// unknown values are rejected so typos surface at load time.
	Type string `json:"type,omitempty"`

	// Schedule is the polling cadence: a cron expression ("*/10 * * * *"),
	// a Go duration ("10m"), HH:MM ("00:10") or bare minutes ("10").
	Schedule string `json:"schedule,omitempty"`

	// Timezone for rendering time slots, e.g. "Europe/Vienna".
	// Empty means the system's local zone.
	Timezone string `json:"timezone,omitempty"`
}

// OverlayConfig controls the in-game overlay connection and placement.
type OverlayConfig struct {
	Enabled bool `json:"enabled"`

	// Addr of the overlay server; default "127.0.0.1:5010".
	Addr string `json:"addr,omitempty"`

	// Anchor is one of the 8 named screen positions, e.g. "top-left".
	Anchor string `json:"anchor,omitempty"`

	ScreenWidth  int `json:"screen_width,omitempty"`
	ScreenHeight int `json:"screen_height,omitempty"`
}

// PanelConfig selects the host panel surface.
//
// Mode values:
//   - "tui": interactive terminal panel (default)
//   - "log": frames written to the log only (headless)
type PanelConfig struct {
	Mode string `json:"mode,omitempty"`
}

type LoggingConfig struct {
	Level   string      `json:"level"`
	Console bool        `json:"console"`
	File    LoggingFile `json:"file"`
}

type LoggingFile struct {
	Enabled bool   `json:"enabled"`
	Path    string `json:"path"`
}

// SettingsConfig controls preference persistence.
//
// Example:
//
//	"settings": { "driver": "file", "path": "./radiowatch_settings.json" }
type SettingsConfig struct {
	Driver      string `json:"driver"`
	Path        string `json:"path"`
	BusyTimeout string `json:"busy_timeout,omitempty"` // Go duration string (sqlite)
}
