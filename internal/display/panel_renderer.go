package display

import (
	"radiowatch/internal/panel"
	"radiowatch/internal/refresh"
)

// FetchingStatus is shown while a manual refresh is in flight.
const FetchingStatus = "Status: Refreshing..."

// PanelRenderer feeds formatted results to a panel surface. It keeps the
// last frame so a progress update can re-show the current program with
// only the status line changed.
type PanelRenderer struct {
	surface panel.Surface
	last    panel.Fields
	seen    bool
}

func NewPanelRenderer(surface panel.Surface) *PanelRenderer {
	return &PanelRenderer{surface: surface}
}

func (p *PanelRenderer) Render(res refresh.Result) {
	fields := PanelFields(res)
	p.last = fields
	p.seen = true
	p.surface.Update(fields)
}

// RenderFetching overlays the in-progress status on the last frame.
func (p *PanelRenderer) RenderFetching() {
	fields := p.last
	if !p.seen {
		fields = PanelFields(refresh.Result{})
	}
	fields.Status = FetchingStatus
	p.surface.Update(fields)
}
