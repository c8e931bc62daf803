package overlay

import (
	"strings"
	"testing"
	"time"

	"radiowatch/internal/display"
)

func sampleLines() []display.Line {
	return []display.Line{
		{Text: strings.Repeat("=", 30), Color: "yellow", Size: display.SizeNormal},
		{Text: "Morgenjournal", Color: "yellow", Size: display.SizeLarge},
		{Text: "Time: 08:00 - 08:56 Uhr", Color: "green", Size: display.SizeNormal},
		{Text: strings.Repeat("=", 30), Color: "yellow", Size: display.SizeNormal},
	}
}

func enabled(anchor string) Settings {
	return Settings{
		Enabled:      true,
		Anchor:       anchor,
		ScreenWidth:  1920,
		ScreenHeight: 1080,
		Interval:     10 * time.Minute,
	}
}

func TestComposeLeftAligned(t *testing.T) {
	t.Parallel()
	c := NewCompositor()
	frame := c.Compose(sampleLines(), enabled("top-left"))

	anchorX := int(0.05 * 1920)
	anchorY := int(0.10 * 1080)

	if frame.Background.X != anchorX-edgeMarginPX {
		t.Fatalf("bg X = %d, want %d", frame.Background.X, anchorX-edgeMarginPX)
	}
	if frame.Background.Y != anchorY-edgeMarginPX {
		t.Fatalf("bg Y = %d", frame.Background.Y)
	}
	if frame.Background.W != minBoxWidth {
		t.Fatalf("bg W = %d, want minimum %d", frame.Background.W, minBoxWidth)
	}
	// 3 normal + 1 large + padding
	wantH := 3*lineHeightNormal + lineHeightLarge + boxPaddingPX
	if frame.Background.H != wantH {
		t.Fatalf("bg H = %d, want %d", frame.Background.H, wantH)
	}

	if frame.Texts[0].X != anchorX || frame.Texts[0].Y != anchorY {
		t.Fatalf("first line at (%d,%d), want (%d,%d)", frame.Texts[0].X, frame.Texts[0].Y, anchorX, anchorY)
	}
	// Second line sits one normal line height below.
	if frame.Texts[1].Y != anchorY+lineHeightNormal {
		t.Fatalf("second line Y = %d", frame.Texts[1].Y)
	}
	// Third line is below the large name line.
	if frame.Texts[2].Y != anchorY+lineHeightNormal+lineHeightLarge {
		t.Fatalf("third line Y = %d", frame.Texts[2].Y)
	}
}

func TestComposeRightAligned(t *testing.T) {
	t.Parallel()
	c := NewCompositor()
	frame := c.Compose(sampleLines(), enabled("top-right"))

	anchorX := int(0.95 * 1920)
	if frame.Background.X != anchorX-frame.Background.W-edgeMarginPX {
		t.Fatalf("bg X = %d, right edge not anchored", frame.Background.X)
	}
	if frame.Texts[0].X != anchorX-frame.Background.W {
		t.Fatalf("text X = %d", frame.Texts[0].X)
	}
}

func TestComposeCentered(t *testing.T) {
	t.Parallel()
	c := NewCompositor()
	frame := c.Compose(sampleLines(), enabled("bottom-middle"))

	anchorX := int(0.50 * 1920)
	if frame.Background.X != anchorX-frame.Background.W/2 {
		t.Fatalf("bg X = %d, block not centered", frame.Background.X)
	}
}

func TestComposeUnknownAnchorFallsBack(t *testing.T) {
	t.Parallel()
	c := NewCompositor()
	got := c.Compose(sampleLines(), enabled("under-the-sofa"))
	want := NewCompositor().Compose(sampleLines(), enabled(DefaultAnchor))
	if got.Background.X != want.Background.X || got.Background.Y != want.Background.Y {
		t.Fatalf("unknown anchor placed at (%d,%d), want default (%d,%d)",
			got.Background.X, got.Background.Y, want.Background.X, want.Background.Y)
	}
}

func TestComposeTTL(t *testing.T) {
	t.Parallel()
	c := NewCompositor()
	frame := c.Compose(sampleLines(), enabled("top-left"))

	wantTTL := int((10*time.Minute + ttlBuffer).Seconds())
	if frame.Background.TTL != wantTTL {
		t.Fatalf("bg TTL = %d, want %d", frame.Background.TTL, wantTTL)
	}
	for _, txt := range frame.Texts[:4] {
		if txt.TTL != wantTTL {
			t.Fatalf("slot %s TTL = %d, want %d", txt.ID, txt.TTL, wantTTL)
		}
	}
}

func TestComposeClearWhenDisabled(t *testing.T) {
	t.Parallel()
	c := NewCompositor()
	s := enabled("top-left")
	s.Enabled = false

	frame := c.Compose(sampleLines(), s)
	assertClearFrame(t, frame, minClearSlots)
}

func TestComposeClearWhenNoLines(t *testing.T) {
	t.Parallel()
	c := NewCompositor()
	frame := c.Compose(nil, enabled("top-left"))
	assertClearFrame(t, frame, minClearSlots)
}

func TestComposeBlanksLeftoverSlots(t *testing.T) {
	t.Parallel()
	c := NewCompositor()

	long := make([]display.Line, 12)
	for i := range long {
		long[i] = display.Line{Text: "line", Color: "yellow", Size: display.SizeNormal}
	}
	_ = c.Compose(long, enabled("top-left"))

	short := sampleLines()
	frame := c.Compose(short, enabled("top-left"))
	if len(frame.Texts) != 12 {
		t.Fatalf("frame has %d text commands, want 12 (4 content + 8 blanks)", len(frame.Texts))
	}
	for _, txt := range frame.Texts[4:] {
		if txt.Text != "" || txt.TTL != clearTTL {
			t.Fatalf("leftover slot %s not blanked: %+v", txt.ID, txt)
		}
	}
}

func assertClearFrame(t *testing.T, frame Frame, slots int) {
	t.Helper()
	if frame.Background.W != 1 || frame.Background.H != 1 || frame.Background.TTL != clearTTL {
		t.Fatalf("background not cleared: %+v", frame.Background)
	}
	if len(frame.Texts) != slots {
		t.Fatalf("cleared %d slots, want %d", len(frame.Texts), slots)
	}
	for _, txt := range frame.Texts {
		if txt.Text != "" {
			t.Fatalf("clear frame carries content in %s: %q", txt.ID, txt.Text)
		}
		if txt.TTL != clearTTL {
			t.Fatalf("clear slot %s TTL = %d", txt.ID, txt.TTL)
		}
	}
}
