package schedule

// Document is one fetched snapshot of a station's schedule: an ordered list
// of days, each with an ordered list of broadcasts. It is rebuilt wholesale
// on every successful fetch and never mutated afterwards.
type Document []Day

type Day struct {
	Broadcasts []Broadcast `json:"broadcasts"`
}

// Broadcast is one scheduled program entry.
//
// Start/End are epoch milliseconds; StartISO/EndISO carry the same window as
// ISO-8601 strings (the AudioAPI emits both). The source does not guarantee
// Start <= End; a reversed window simply never matches.
type Broadcast struct {
	Start        int64  `json:"start"`
	End          int64  `json:"end"`
	StartISO     string `json:"startISO"`
	EndISO       string `json:"endISO"`
	Title        string `json:"title"`
	ProgramTitle string `json:"programTitle"`
	Subtitle     string `json:"subtitle"`
	Href         string `json:"href"`
}

// Program is the derived "currently on air" record handed to the renderers.
// Produced fresh per successful resolve; replaces the previous one wholesale.
type Program struct {
	Name        string
	TimeSlot    string
	Description string
	Author      string
	DetailURL   string
}
