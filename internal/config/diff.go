package config

import (
	"sort"
	"strings"

	logx "radiowatch/pkg/logx"
)

// SummarizeChange returns a compact list of changed sections and safe
// structured attrs for logging the reload. URLs are logged, file paths
// only as set/unset.
func SummarizeChange(oldCfg, newCfg *Config) ([]string, []logx.Field) {
	if oldCfg == nil {
		oldCfg = &Config{}
	}
	if newCfg == nil {
		newCfg = &Config{}
	}

	changed := make([]string, 0, 5)
	attrs := make([]logx.Field, 0, 12)

	if strings.TrimSpace(oldCfg.Station.URL) != strings.TrimSpace(newCfg.Station.URL) ||
		strings.TrimSpace(oldCfg.Station.Type) != strings.TrimSpace(newCfg.Station.Type) ||
		strings.TrimSpace(oldCfg.Station.Schedule) != strings.TrimSpace(newCfg.Station.Schedule) ||
		strings.TrimSpace(oldCfg.Station.Timezone) != strings.TrimSpace(newCfg.Station.Timezone) {
		changed = append(changed, "station")
		attrs = append(attrs,
			logx.String("station.url", strings.TrimSpace(newCfg.Station.URL)),
			logx.String("station.schedule", strings.TrimSpace(newCfg.Station.Schedule)),
			logx.String("station.timezone", strings.TrimSpace(newCfg.Station.Timezone)),
		)
	}

	if oldCfg.Overlay != newCfg.Overlay {
		changed = append(changed, "overlay")
		attrs = append(attrs,
			logx.Bool("overlay.enabled", newCfg.Overlay.Enabled),
			logx.String("overlay.anchor", strings.TrimSpace(newCfg.Overlay.Anchor)),
			logx.Int("overlay.screen_width", newCfg.Overlay.ScreenWidth),
			logx.Int("overlay.screen_height", newCfg.Overlay.ScreenHeight),
		)
	}

	if oldCfg.Panel != newCfg.Panel {
		changed = append(changed, "panel")
		attrs = append(attrs, logx.String("panel.mode", strings.TrimSpace(newCfg.Panel.Mode)))
	}

	if oldCfg.Logging != newCfg.Logging {
		changed = append(changed, "logging")
		attrs = append(attrs,
			logx.String("logx.level", newCfg.Logging.Level),
			logx.Bool("logx.console", newCfg.Logging.Console),
			logx.Bool("logx.file_enabled", newCfg.Logging.File.Enabled),
		)
	}

	// Settings section may be nil (disabled); compare by effective values.
	var oDriver, nDriver, oBusy, nBusy string
	var oPathSet, nPathSet bool
	if oldCfg.Settings != nil {
		oDriver = strings.TrimSpace(oldCfg.Settings.Driver)
		oBusy = strings.TrimSpace(oldCfg.Settings.BusyTimeout)
		oPathSet = strings.TrimSpace(oldCfg.Settings.Path) != ""
	}
	if newCfg.Settings != nil {
		nDriver = strings.TrimSpace(newCfg.Settings.Driver)
		nBusy = strings.TrimSpace(newCfg.Settings.BusyTimeout)
		nPathSet = strings.TrimSpace(newCfg.Settings.Path) != ""
	}
	if oDriver != nDriver || oBusy != nBusy || oPathSet != nPathSet {
		changed = append(changed, "settings")
		attrs = append(attrs,
			logx.String("settings.driver", nDriver),
			logx.Bool("settings.path_set", nPathSet),
		)
	}

	sort.Strings(changed)
	return changed, attrs
}
