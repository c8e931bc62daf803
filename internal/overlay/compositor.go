package overlay

import (
	"strconv"
	"strings"
	"time"

	"radiowatch/internal/display"
)

// Anchors maps the 8 named positions to fractional screen coordinates.
// Fractions (not fixed pixels) so the block lands sensibly on any
// resolution the user configures.
var Anchors = map[string][2]float64{
	"top-left":      {0.05, 0.10},
	"top-middle":    {0.50, 0.10},
	"top-right":     {0.95, 0.10},
	"middle-left":   {0.05, 0.45},
	"middle-right":  {0.95, 0.45},
	"bottom-left":   {0.05, 0.80},
	"bottom-middle": {0.50, 0.80},
	"bottom-right":  {0.95, 0.80},
}

// DefaultAnchor is used when the configured name is unknown.
const DefaultAnchor = "top-left"

const (
	slotPrefix   = "radiowatch_"
	backgroundID = "radiowatch_bg"

	charWidthPX      = 8
	lineHeightNormal = 20
	lineHeightLarge  = 24
	minBoxWidth      = 300
	boxPaddingPX     = 20
	edgeMarginPX     = 10

	// Content stays visible until the next scheduled update lands.
	ttlBuffer = 30 * time.Second
	clearTTL  = 1

	// Slots below this count are always cleared, even if this process
	// never drew that many lines (a previous run may have).
	minClearSlots = 10
)

// Settings is the overlay snapshot the compositor works from.
type Settings struct {
	Enabled      bool
	Anchor       string
	ScreenWidth  int
	ScreenHeight int

	// Interval is the polling cadence; content TTL derives from it.
	Interval time.Duration
}

// Frame is one complete redraw: the background first, then the text slots.
// Slot ids are stable across frames so a redraw overwrites the previous
// frame in place instead of stacking on it.
type Frame struct {
	Background RectCommand
	Texts      []TextCommand
}

// Compositor converts formatted lines into frames. It remembers the
// highest slot index ever used so shorter frames blank the leftovers.
type Compositor struct {
	maxSlots int
}

func NewCompositor() *Compositor {
	return &Compositor{maxSlots: minClearSlots}
}

// Compose builds the next frame. Zero lines (error, nothing airing, or
// overlay disabled) produce a clear-only frame: an invisible background
// and a blank in every slot ever used — never a stale frame on screen.
func (c *Compositor) Compose(lines []display.Line, s Settings) Frame {
	if !s.Enabled || len(lines) == 0 {
		return c.clearFrame()
	}
	if len(lines) > c.maxSlots {
		c.maxSlots = len(lines)
	}

	fx, fy := anchorFractions(s.Anchor)
	anchorX := int(fx * float64(s.ScreenWidth))
	anchorY := int(fy * float64(s.ScreenHeight))

	boxWidth := minBoxWidth
	boxHeight := boxPaddingPX
	for _, l := range lines {
		if w := len(l.Text) * charWidthPX; w > boxWidth {
			boxWidth = w
		}
		boxHeight += lineHeight(l.Size)
	}

	// Horizontal placement: right-anchored blocks grow leftward, middle
	// blocks center on the anchor, everything else is left-aligned.
	var boxX, textX int
	switch {
	case strings.Contains(s.Anchor, "right"):
		boxX = anchorX - boxWidth - edgeMarginPX
		textX = anchorX - boxWidth
	case strings.Contains(s.Anchor, "middle") && !strings.Contains(s.Anchor, "left"):
		boxX = anchorX - boxWidth/2
		textX = anchorX - boxWidth/2 + edgeMarginPX
	default:
		boxX = anchorX - edgeMarginPX
		textX = anchorX
	}

	ttl := int((s.Interval + ttlBuffer).Seconds())

	frame := Frame{
		Background: RectCommand{
			ID:     backgroundID,
			Stroke: "#000000",
			Fill:   "rgba(0,0,0,0.5)",
			X:      boxX,
			Y:      anchorY - edgeMarginPX,
			W:      boxWidth,
			H:      boxHeight,
			TTL:    ttl,
		},
	}

	y := anchorY
	for i, l := range lines {
		frame.Texts = append(frame.Texts, TextCommand{
			ID:    slotID(i),
			Text:  l.Text,
			Color: l.Color,
			X:     textX,
			Y:     y,
			TTL:   ttl,
			Size:  string(l.Size),
		})
		y += lineHeight(l.Size)
	}

	// Blank any slot a longer previous frame may still occupy.
	for i := len(lines); i < c.maxSlots; i++ {
		frame.Texts = append(frame.Texts, blankSlot(i))
	}

	return frame
}

func (c *Compositor) clearFrame() Frame {
	frame := Frame{
		Background: RectCommand{
			ID:     backgroundID,
			Stroke: "#000000",
			Fill:   "#000000",
			X:      0,
			Y:      0,
			W:      1,
			H:      1,
			TTL:    clearTTL,
		},
	}
	for i := 0; i < c.maxSlots; i++ {
		frame.Texts = append(frame.Texts, blankSlot(i))
	}
	return frame
}

func anchorFractions(name string) (float64, float64) {
	if f, ok := Anchors[name]; ok {
		return f[0], f[1]
	}
	f := Anchors[DefaultAnchor]
	return f[0], f[1]
}

func lineHeight(s display.Size) int {
	if s == display.SizeLarge {
		return lineHeightLarge
	}
	return lineHeightNormal
}

func slotID(i int) string { return slotPrefix + strconv.Itoa(i) }

func blankSlot(i int) TextCommand {
	return TextCommand{ID: slotID(i), Text: "", Color: "yellow", TTL: clearTTL, Size: string(display.SizeNormal)}
}
