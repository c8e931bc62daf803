package config

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// Known station schedule dialects.
var knownStationTypes = map[string]bool{
	"orf": true,
}

// Validate rejects configs that cannot produce a working run: a missing
// station URL, an unknown dialect, an unparseable timezone.
// Overlay placement problems are normalized instead of rejected, since a
// bad anchor should degrade rendering, not stop the daemon.
func Validate(ctx context.Context, cfg *Config) error {
	_ = ctx
	if cfg == nil {
		return fmt.Errorf("config is nil")
	}

	if strings.TrimSpace(cfg.Station.URL) == "" {
		return fmt.Errorf("station.url is required")
	}
	if t := strings.TrimSpace(cfg.Station.Type); t != "" && !knownStationTypes[strings.ToLower(t)] {
		return fmt.Errorf("station.type: unknown dialect %q", t)
	}
	if tz := strings.TrimSpace(cfg.Station.Timezone); tz != "" {
		if _, err := time.LoadLocation(tz); err != nil {
			return fmt.Errorf("station.timezone: %w", err)
		}
	}

	switch mode := strings.TrimSpace(cfg.Panel.Mode); mode {
	case "", "tui", "log":
	default:
		return fmt.Errorf("panel.mode: unknown mode %q", mode)
	}

	if cfg.Settings != nil {
		if _, err := ParseDurationField("settings.busy_timeout", cfg.Settings.BusyTimeout); err != nil {
			return err
		}
	}
	return nil
}

// ParseDurationField parses an optional duration-valued field. Empty
// input means unset and yields zero; negative durations are rejected.
// path names the field in the error, "settings.busy_timeout" style.
func ParseDurationField(path, raw string) (time.Duration, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("%s: bad duration %q: %w", path, raw, err)
	}
	if d < 0 {
		return 0, fmt.Errorf("%s: negative duration %q", path, raw)
	}
	return d, nil
}

// Location resolves the configured timezone. Validate has already
// checked it parses; a zero value falls back to local time.
func (c StationConfig) Location() *time.Location {
	tz := strings.TrimSpace(c.Timezone)
	if tz == "" {
		return time.Local
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return time.Local
	}
	return loc
}
