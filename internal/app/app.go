// Package app wires the daemon together: config, logging, the settings
// store, the fetch controller and the two render targets (panel and
// overlay).
package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"radiowatch/internal/config"
	"radiowatch/internal/display"
	"radiowatch/internal/overlay"
	"radiowatch/internal/panel"
	"radiowatch/internal/refresh"
	"radiowatch/internal/runtime/supervisor"
	"radiowatch/internal/settings"
	"radiowatch/internal/station"
	"radiowatch/internal/ui"
	logx "radiowatch/pkg/logx"
	"radiowatch/pkg/systemd"
)

const stopTimeout = 10 * time.Second

type App struct {
	cfgPath string

	cfgm *config.Manager
	sup  *supervisor.Supervisor

	log   logx.Logger
	logs  *logx.Service
	store settings.Store

	client   *station.Client
	sink     overlay.Sink
	overlayR *overlay.Renderer
	panelR   *display.PanelRenderer
	ctrl     *refresh.Controller

	// prog is the terminal UI; nil in log mode.
	prog *tea.Program
}

func New(cfgPath string) (*App, error) {
	cfgm := config.NewManager(cfgPath)
	cfg, err := cfgm.Load()
	if err != nil {
		return nil, err
	}
	if err := config.Validate(context.Background(), cfg); err != nil {
		return nil, err
	}

	tuiMode := strings.TrimSpace(cfg.Panel.Mode) != "log"

	logCfg := logx.Config{
		Level:   cfg.Logging.Level,
		Console: cfg.Logging.Console,
		File: logx.FileConfig{
			Enabled: cfg.Logging.File.Enabled,
			Path:    cfg.Logging.File.Path,
		},
	}
	// The terminal UI owns stdout; console log lines would tear the screen.
	if tuiMode {
		logCfg.Console = false
	}
	logSvc, log := logx.New(logCfg)
	log = log.With(logx.String("comp", "app"))

	a := &App{
		cfgPath: cfgPath,
		cfgm:    cfgm,
		log:     log,
		logs:    logSvc,
	}

	// Settings store (optional).
	if cfg.Settings != nil {
		busy, err := config.ParseDurationField("settings.busy_timeout", cfg.Settings.BusyTimeout)
		if err != nil {
			return nil, err
		}
		st, err := settings.Open(settings.Config{
			Driver:      cfg.Settings.Driver,
			Path:        cfg.Settings.Path,
			BusyTimeout: busy,
		}, log.With(logx.String("comp", "settings")))
		if err != nil {
			return nil, err
		}
		if st != nil {
			a.store = st
			log.Info("settings store enabled", logx.String("driver", cfg.Settings.Driver))
		}
	}

	// Seed the station identity into the preference store on first run,
	// so the persisted file names its dialect even before the user
	// changes anything.
	stype := settings.GetString(context.Background(), a.store, settings.KeyStationType, "")
	if stype == "" {
		if stype = strings.TrimSpace(cfg.Station.Type); stype == "" {
			stype = settings.DefaultStationType
		}
		if err := settings.SetString(context.Background(), a.store, settings.KeyStationType, stype); err != nil {
			log.Warn("could not persist station type", logx.Err(err))
		}
	}

	a.client = station.NewClient(log.With(logx.String("station", stype)))

	// Overlay sink. The client dials lazily and the compositor gates
	// drawing on the per-frame enabled snapshot, so the real client is
	// wired whenever a backend could exist; otherwise the runtime toggle
	// would flip the preference but every frame would land in a no-op
	// sink until restart. Only addr "none" declares the backend absent.
	if strings.EqualFold(strings.TrimSpace(cfg.Overlay.Addr), "none") {
		a.sink = overlay.NopSink{}
	} else {
		a.sink = overlay.NewClient(cfg.Overlay.Addr, log)
	}
	a.overlayR = overlay.NewRenderer(a.sink, a.overlaySettings, log)

	// Panel surface.
	var surface panel.Surface
	if tuiMode {
		model := ui.New(ui.Options{
			Refresh:       func() error { return a.ctrl.Refresh() },
			ToggleOverlay: a.toggleOverlay,
			OverlayOn:     settings.GetBool(context.Background(), a.store, settings.KeyOverlayOn, cfg.Overlay.Enabled),
		})
		a.prog = tea.NewProgram(model)
		surface = ui.NewSurface(a.prog)
	} else {
		surface = panel.NewLogSurface(log)
	}
	a.panelR = display.NewPanelRenderer(surface)

	a.ctrl = refresh.New(a.client, a.controllerConfig(cfg), log, a.panelR, a.overlayR, unitStatus{})

	return a, nil
}

// unitStatus mirrors each fetch outcome onto the systemd status line
// (a no-op outside a unit), so `systemctl status` shows what's on air.
type unitStatus struct{}

func (unitStatus) Render(res refresh.Result) {
	switch {
	case res.IsError():
		systemd.NotifyStatus("last fetch failed: " + res.Err.Error())
	case res.IsEmpty():
		systemd.NotifyStatus("no current broadcast")
	default:
		systemd.NotifyStatus("on air: " + res.Program.Name)
	}
}

// Done is closed when the supervisor context is canceled (fatal error or
// Stop).
func (a *App) Done() <-chan struct{} {
	if a.sup == nil {
		ch := make(chan struct{})
		close(ch)
		return ch
	}
	return a.sup.Context().Done()
}

// Err returns the first fatal error observed by the supervisor (if any).
func (a *App) Err() error {
	if a.sup == nil {
		return nil
	}
	return a.sup.Err()
}

func (a *App) Start(ctx context.Context) error {
	a.sup = supervisor.New(ctx, supervisor.WithLogger(a.log), supervisor.WithCancelOnError(true))

	// Transactional config reload: validate before commit/publish.
	a.cfgm.SetLogger(a.log.With(logx.String("comp", "config")))
	a.cfgm.SetValidator(func(c context.Context, cfg *config.Config) error {
		if err := config.Validate(c, cfg); err != nil {
			return err
		}
		if s := strings.TrimSpace(cfg.Station.Schedule); s != "" {
			if _, err := refresh.ParseSpec(s); err != nil {
				return fmt.Errorf("station.schedule: %w", err)
			}
		}
		return nil
	})

	a.sup.Go("config.watch", a.cfgm.Watch)
	a.sup.Go("refresh.loop", a.ctrl.Run)

	// Hot reload fan-out.
	sub := a.cfgm.Subscribe(8)
	a.sup.Go0("config.reload", func(c context.Context) {
		defer a.cfgm.Unsubscribe(sub)
		lastApplied := a.cfgm.Get()
		for {
			select {
			case <-c.Done():
				return
			case newCfg, ok := <-sub:
				if !ok {
					return
				}
				// Coalesce bursts: keep only the latest config.
				for {
					select {
					case newer := <-sub:
						if newer != nil {
							newCfg = newer
						}
					default:
						goto APPLY
					}
				}
			APPLY:
				sections, attrs := config.SummarizeChange(lastApplied, newCfg)
				if len(sections) > 0 {
					fields := append([]logx.Field{logx.String("changed", strings.Join(sections, ","))}, attrs...)
					a.log.Info("config reloaded", fields...)
				} else {
					a.log.Debug("config reload received, but no effective changes detected")
				}
				lastApplied = newCfg
				a.applyConfig(newCfg)
			}
		}
	})

	// Terminal UI. When the user quits it, the whole daemon goes down.
	if a.prog != nil {
		a.sup.Go("ui.panel", func(c context.Context) error {
			go func() {
				<-c.Done()
				a.prog.Quit()
			}()
			_, err := a.prog.Run()
			a.sup.Cancel()
			return err
		})
	}

	a.log.Info("started", logx.String("config", a.cfgPath))
	return nil
}

func (a *App) Stop(ctx context.Context) error {
	_ = ctx
	if a.sup != nil {
		a.sup.Stop(stopTimeout)
	}
	if a.sink != nil {
		_ = a.sink.Close()
	}
	if a.store != nil {
		_ = a.store.Close()
	}
	a.log.Info("stopped")
	if a.logs != nil {
		_ = a.logs.Close()
	}
	return nil
}

// applyConfig pushes a reloaded config into the running services.
func (a *App) applyConfig(cfg *config.Config) {
	if cfg == nil {
		return
	}
	logCfg := logx.Config{
		Level:   cfg.Logging.Level,
		Console: cfg.Logging.Console,
		File: logx.FileConfig{
			Enabled: cfg.Logging.File.Enabled,
			Path:    cfg.Logging.File.Path,
		},
	}
	if a.prog != nil {
		logCfg.Console = false
	}
	a.logs.Apply(logCfg)
	a.ctrl.Apply(a.controllerConfig(cfg))
}

// controllerConfig merges the config file baseline with persisted user
// preferences; preferences win.
func (a *App) controllerConfig(cfg *config.Config) refresh.Config {
	ctx := context.Background()

	url := settings.GetString(ctx, a.store, settings.KeyStationURL, cfg.Station.URL)

	raw := settings.GetString(ctx, a.store, settings.KeyRefreshEvery, cfg.Station.Schedule)
	spec := refresh.IntervalSpec(refresh.DefaultInterval)
	if s := strings.TrimSpace(raw); s != "" {
		parsed, err := refresh.ParseSpec(s)
		if err != nil {
			a.log.Warn("bad refresh schedule, using default", logx.String("schedule", s), logx.Err(err))
		} else {
			spec = parsed
		}
	}

	return refresh.Config{
		URL:      url,
		Spec:     spec,
		Location: cfg.Station.Location(),
	}
}

// overlaySettings is read by the overlay renderer on every frame, so
// preference changes land on the next draw without replumbing.
func (a *App) overlaySettings() overlay.Settings {
	ctx := context.Background()
	var base config.OverlayConfig
	if cfg := a.cfgm.Get(); cfg != nil {
		base = cfg.Overlay
	}

	anchor := settings.GetString(ctx, a.store, settings.KeyOverlayAnchor, base.Anchor)
	if anchor == "" {
		anchor = overlay.DefaultAnchor
	}
	width := settings.GetInt(ctx, a.store, settings.KeyScreenWidth, base.ScreenWidth)
	if width <= 0 {
		width = settings.DefaultScreenWidth
	}
	height := settings.GetInt(ctx, a.store, settings.KeyScreenHeight, base.ScreenHeight)
	if height <= 0 {
		height = settings.DefaultScreenHeight
	}

	var spec refresh.Spec
	if cfg := a.cfgm.Get(); cfg != nil {
		spec = a.controllerConfig(cfg).Spec
	}

	return overlay.Settings{
		Enabled:      settings.GetBool(ctx, a.store, settings.KeyOverlayOn, base.Enabled),
		Anchor:       anchor,
		ScreenWidth:  width,
		ScreenHeight: height,
		Interval:     spec.Cadence(time.Now()),
	}
}

// toggleOverlay flips the persisted overlay preference. Turning it off
// clears the overlay immediately instead of waiting for the TTL.
func (a *App) toggleOverlay() (bool, error) {
	ctx := context.Background()
	if a.store == nil {
		return false, fmt.Errorf("settings persistence disabled; set overlay.enabled in the config file")
	}

	var base bool
	if cfg := a.cfgm.Get(); cfg != nil {
		base = cfg.Overlay.Enabled
	}
	next := !settings.GetBool(ctx, a.store, settings.KeyOverlayOn, base)

	if err := settings.SetBool(ctx, a.store, settings.KeyOverlayOn, next); err != nil {
		return !next, err
	}
	if !next {
		a.overlayR.Clear()
	}
	a.log.Info("overlay toggled", logx.Bool("enabled", next))
	return next, nil
}
