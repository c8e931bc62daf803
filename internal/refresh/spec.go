package refresh

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/robfig/cron/v3"
)

// Polling cadence bounds. Interval-style specs outside this window are
// clamped rather than rejected; a widget that stops polling because the
// user typed 3 instead of 5 helps nobody.
const (
	MinInterval = 5 * time.Minute
	MaxInterval = 60 * time.Minute

	DefaultInterval = 10 * time.Minute
)

var cronParser = cron.NewParser(
	cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor,
)

var reHHMM = regexp.MustCompile(`^\s*(\d{1,3}):(\d{2})\s*$`)

// Spec is a parsed polling schedule: either a fixed interval or a cron
// expression.
//
// Supported forms:
//   - Cron (crontab.guru-style): "*/10 * * * *", "@hourly"
//   - Interval duration: "10m", "1h30m"
//   - Interval HH:MM: "00:10" (10 minutes)
//   - Bare minutes: "10" (the classic widget setting, clamped to [5,60])
type Spec struct {
	raw   string
	every time.Duration
	sched cron.Schedule
}

// IntervalSpec builds a fixed-interval spec, clamped to the cadence bounds.
func IntervalSpec(d time.Duration) Spec {
	return Spec{raw: d.String(), every: clampInterval(d)}
}

// ParseSpec parses a schedule string.
func ParseSpec(raw string) (Spec, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return Spec{}, fmt.Errorf("schedule required")
	}

	// Whitespace or a leading '@' means cron.
	if strings.ContainsAny(s, " \t") || strings.HasPrefix(s, "@") {
		sched, err := cronParser.Parse(s)
		if err != nil {
			return Spec{}, fmt.Errorf("cron schedule %q: %w", s, err)
		}
		return Spec{raw: s, sched: sched}, nil
	}

	// HH:MM shorthand is an interval, not a time of day.
	if m := reHHMM.FindStringSubmatch(s); m != nil {
		h, _ := strconv.Atoi(m[1])
		mm, _ := strconv.Atoi(m[2])
		if mm > 59 {
			return Spec{}, fmt.Errorf("invalid HH:MM schedule %q", s)
		}
		d := time.Duration(h)*time.Hour + time.Duration(mm)*time.Minute
		return IntervalSpec(d), nil
	}

	// Bare integer: minutes.
	if n, err := strconv.Atoi(s); err == nil {
		return IntervalSpec(time.Duration(n) * time.Minute), nil
	}

	if d, err := time.ParseDuration(s); err == nil {
		return IntervalSpec(d), nil
	}

	return Spec{}, fmt.Errorf("unrecognized schedule %q", raw)
}

// IsZero reports an unconfigured spec.
func (s Spec) IsZero() bool { return s.every == 0 && s.sched == nil }

func (s Spec) String() string { return s.raw }

// Next returns when the attempt after now should run.
func (s Spec) Next(now time.Time) time.Time {
	if s.sched != nil {
		return s.sched.Next(now)
	}
	if s.every <= 0 {
		return time.Time{}
	}
	return now.Add(s.every)
}

// Cadence returns the effective polling period as seen from now; overlay
// TTLs derive from this so content outlives the gap until the next tick.
func (s Spec) Cadence(now time.Time) time.Duration {
	if s.sched != nil {
		if d := s.sched.Next(now).Sub(now); d > 0 {
			return d
		}
		return DefaultInterval
	}
	if s.every > 0 {
		return s.every
	}
	return DefaultInterval
}

func clampInterval(d time.Duration) time.Duration {
	switch {
	case d <= 0:
		return DefaultInterval
	case d < MinInterval:
		return MinInterval
	case d > MaxInterval:
		return MaxInterval
	}
	return d
}
