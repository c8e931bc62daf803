package app

import (
	"context"
	"errors"
	"net"
	"os"
	"path/filepath"
	"testing"
	"time"

	"radiowatch/internal/overlay"
	"radiowatch/internal/refresh"
	"radiowatch/internal/schedule"
	"radiowatch/internal/settings"
)

func writeAppConfig(t *testing.T, dir, body string) string {
	t.Helper()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func newTestApp(t *testing.T, overlayAddr string) *App {
	t.Helper()
	dir := t.TempDir()
	body := `
station:
  url: https://audioapi.example.org/radiothek/api/2.0/broadcasts
panel:
  mode: log
overlay:
  enabled: false
  addr: "` + overlayAddr + `"
logging:
  level: error
settings:
  driver: file
  path: ` + filepath.Join(dir, "settings.json") + `
`
	a, err := New(writeAppConfig(t, dir, body))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	t.Cleanup(func() { _ = a.Stop(context.Background()) })
	return a
}

// A config-disabled overlay must still get the real client: the client
// only dials when a frame is drawn, and the runtime toggle would
// otherwise flip the preference while every frame lands in a no-op sink
// until restart.
func TestOverlayToggleWorksWhenStartingDisabled(t *testing.T) {
	t.Parallel()
	a := newTestApp(t, "127.0.0.1:5010")

	if _, nop := a.sink.(overlay.NopSink); nop {
		t.Fatal("backend address configured but sink is a no-op; toggling on could never draw")
	}
	if a.overlaySettings().Enabled {
		t.Fatal("overlay should start disabled")
	}

	on, err := a.toggleOverlay()
	if err != nil {
		t.Fatalf("toggleOverlay: %v", err)
	}
	if !on {
		t.Fatal("toggle reported off, want on")
	}
	if !a.overlaySettings().Enabled {
		t.Fatal("toggle did not take effect on the next frame's settings")
	}
	if !settings.GetBool(context.Background(), a.store, settings.KeyOverlayOn, false) {
		t.Fatal("toggle was not persisted")
	}
}

func TestOverlayAddrNoneWiresNopSink(t *testing.T) {
	t.Parallel()
	a := newTestApp(t, "none")

	if _, nop := a.sink.(overlay.NopSink); !nop {
		t.Fatalf("addr \"none\" should wire the no-op sink, got %T", a.sink)
	}
}

func TestStationTypeSeededIntoStore(t *testing.T) {
	t.Parallel()
	a := newTestApp(t, "none")

	got := settings.GetString(context.Background(), a.store, settings.KeyStationType, "")
	if got != settings.DefaultStationType {
		t.Fatalf("seeded station type = %q, want %q", got, settings.DefaultStationType)
	}
}

func TestStationTypePreferenceNotOverwritten(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	prefs := filepath.Join(dir, "settings.json")
	if err := os.WriteFile(prefs, []byte(`{"station_type": "orf-oe3"}`), 0o600); err != nil {
		t.Fatal(err)
	}
	body := `
station:
  url: https://audioapi.example.org/radiothek/api/2.0/broadcasts
panel:
  mode: log
overlay:
  enabled: false
  addr: "none"
logging:
  level: error
settings:
  driver: file
  path: ` + prefs + `
`
	a, err := New(writeAppConfig(t, dir, body))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer a.Stop(context.Background())

	got := settings.GetString(context.Background(), a.store, settings.KeyStationType, "")
	if got != "orf-oe3" {
		t.Fatalf("persisted station type was overwritten: %q", got)
	}
}

func TestUnitStatusMirrorsFetchOutcomes(t *testing.T) {
	sock := filepath.Join(t.TempDir(), "notify.sock")
	conn, err := net.ListenUnixgram("unixgram", &net.UnixAddr{Name: sock, Net: "unixgram"})
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	defer conn.Close()
	t.Setenv("NOTIFY_SOCKET", sock)

	recv := func() string {
		t.Helper()
		_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))
		buf := make([]byte, 512)
		n, err := conn.Read(buf)
		if err != nil {
			t.Fatalf("read: %v", err)
		}
		return string(buf[:n])
	}

	unitStatus{}.Render(refresh.Result{Program: &schedule.Program{Name: "Morgenjournal"}})
	if got := recv(); got != "STATUS=on air: Morgenjournal" {
		t.Fatalf("status = %q", got)
	}

	unitStatus{}.Render(refresh.Result{})
	if got := recv(); got != "STATUS=no current broadcast" {
		t.Fatalf("status = %q", got)
	}

	unitStatus{}.Render(refresh.Result{Err: errors.New("boom")})
	if got := recv(); got != "STATUS=last fetch failed: boom" {
		t.Fatalf("status = %q", got)
	}
}
