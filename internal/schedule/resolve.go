package schedule

import (
	"encoding/json"
	"fmt"
	"time"
)

const timeSlotSuffix = "Uhr"

// Decode parses raw schedule bytes into a Document.
//
// Anything that is not a JSON array of day objects is a decode error; an
// empty array is valid (a document in which nothing can ever be airing).
// Distinguishing "malformed data" from "nothing airing right now" is the
// caller's business, which is why this does not swallow errors.
func Decode(raw []byte) (Document, error) {
	var doc Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("schedule decode: %w", err)
	}
	return doc, nil
}

// ResolveCurrent scans days in document order, then broadcasts within each
// day in document order, and derives a Program from the first broadcast
// whose window contains now (inclusive on both ends). Scanning stops at the
// first match. Returns nil when no broadcast is currently airing.
func ResolveCurrent(doc Document, now time.Time, loc *time.Location) *Program {
	nowMS := now.UnixMilli()
	for _, day := range doc {
		for i := range day.Broadcasts {
			bc := &day.Broadcasts[i]
			if bc.Start <= nowMS && nowMS <= bc.End {
				return derive(bc, loc)
			}
		}
	}
	return nil
}

func derive(bc *Broadcast, loc *time.Location) *Program {
	p := &Program{}

	// Prefer programTitle for the headline; a differing title then becomes
	// the description.
	if bc.ProgramTitle != "" {
		p.Name = bc.ProgramTitle
		if bc.Title != "" && bc.Title != bc.ProgramTitle {
			p.Description = bc.Title
		}
	} else {
		p.Name = bc.Title
	}

	p.TimeSlot = formatSlot(bc.StartISO, bc.EndISO, loc)

	// A subtitle, when present, replaces any title-derived description.
	// This matches the station's historical rendering; do not reorder.
	if bc.Subtitle != "" {
		p.Description = StripMarkup(bc.Subtitle)
	}

	// Author/presenter is not carried by this endpoint; the field stays
	// empty until a detail fetch exists to populate it.
	p.DetailURL = bc.Href

	return p
}

// formatSlot renders "HH:MM - HH:MM Uhr" in loc from the ISO timestamps.
// If either timestamp does not parse, the slot is empty: a missing time
// label is cosmetic and must not fail the whole resolve.
func formatSlot(startISO, endISO string, loc *time.Location) string {
	if startISO == "" || endISO == "" {
		return ""
	}
	start, err := parseISO(startISO)
	if err != nil {
		return ""
	}
	end, err := parseISO(endISO)
	if err != nil {
		return ""
	}
	if loc == nil {
		loc = time.Local
	}
	return start.In(loc).Format("15:04") + " - " + end.In(loc).Format("15:04") + " " + timeSlotSuffix
}

func parseISO(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	// The API sometimes drops seconds.
	return time.Parse("2006-01-02T15:04Z07:00", s)
}
