// Package refresh owns the polling cadence: it triggers fetches on a
// schedule or on demand, guards against overlapping fetches, and hands
// each finished result to the renderers on a single display loop.
package refresh

import (
	"context"
	"time"

	"radiowatch/internal/schedule"
	"radiowatch/internal/station"
	logx "radiowatch/pkg/logx"
)

// Config is the controller's settings snapshot.
type Config struct {
	URL      string
	Spec     Spec
	Location *time.Location
}

// ProgressNotifier is implemented by renderers that want to show an
// in-progress state while a manual refresh is running.
type ProgressNotifier interface {
	RenderFetching()
}

// Clearer is implemented by renderers that need an explicit clear on
// shutdown (the overlay must not leave a stale frame on screen).
type Clearer interface {
	Clear()
}

// Controller runs the fetch state machine: Idle -> Fetching -> Idle.
//
// The Run loop is the display thread. It is the only goroutine that
// touches the fetching flag, the timer and the renderers; the fetch
// worker communicates its one result back over a channel and owns
// nothing else.
type Controller struct {
	client *station.Client
	log    logx.Logger

	renderers []Renderer

	manual  chan chan error
	done    chan Result
	applyCh chan Config

	// Loop-owned state. Never touched outside Run.
	cfg      Config
	fetching bool
}

func New(client *station.Client, cfg Config, log logx.Logger, renderers ...Renderer) *Controller {
	if cfg.Location == nil {
		cfg.Location = time.Local
	}
	return &Controller{
		client:    client,
		log:       log.With(logx.String("component", "refresh")),
		renderers: renderers,
		manual:    make(chan chan error),
		done:      make(chan Result, 1),
		applyCh:   make(chan Config, 1),
		cfg:       cfg,
	}
}

// Refresh requests a manual fetch. It returns station.ErrAlreadyFetching
// when a fetch is already in flight (the request is dropped, no second
// network call starts). Safe to call from any goroutine.
func (c *Controller) Refresh() error {
	reply := make(chan error, 1)
	select {
	case c.manual <- reply:
		return <-reply
	default:
		return station.ErrAlreadyFetching
	}
}

// Apply installs a new settings snapshot; the loop reschedules against it
// after the next attempt. Latest snapshot wins if the loop is behind.
func (c *Controller) Apply(cfg Config) {
	if cfg.Location == nil {
		cfg.Location = time.Local
	}
	select {
	case c.applyCh <- cfg:
	default:
		<-c.applyCh
		c.applyCh <- cfg
	}
}

// Run drives the loop until ctx is canceled. The first fetch fires
// immediately; every later one is scheduled after the previous attempt
// completes, success or not.
func (c *Controller) Run(ctx context.Context) error {
	c.log.Info("controller started",
		logx.String("url", c.cfg.URL),
		logx.String("schedule", c.cfg.Spec.String()),
	)

	c.startFetch(ctx)

	// The real deadline is armed on fetch completion; until then the
	// timer just needs to exist and stay quiet.
	timer := time.NewTimer(24 * time.Hour)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			c.shutdown()
			return nil

		case <-timer.C:
			c.startFetch(ctx)

		case reply := <-c.manual:
			if c.fetching {
				reply <- station.ErrAlreadyFetching
				continue
			}
			reply <- nil
			c.notifyProgress()
			c.startFetch(ctx)

		case cfg := <-c.applyCh:
			c.cfg = cfg
			c.log.Info("settings applied",
				logx.String("url", cfg.URL),
				logx.String("schedule", cfg.Spec.String()),
			)
			// Restart the cadence immediately under the new settings.
			if !c.fetching {
				stopTimer(timer)
				c.startFetch(ctx)
			}

		case res := <-c.done:
			c.fetching = false
			c.dispatch(res)
			if next := c.cfg.Spec.Next(time.Now()); !next.IsZero() {
				stopTimer(timer)
				timer.Reset(time.Until(next))
			}
		}
	}
}

// startFetch moves Idle -> Fetching and launches the single worker.
// A no-op while already Fetching.
func (c *Controller) startFetch(ctx context.Context) {
	if c.fetching {
		return
	}
	c.fetching = true
	cfg := c.cfg
	go func() {
		res := c.fetchOnce(ctx, cfg)
		select {
		case c.done <- res:
		case <-ctx.Done():
		}
	}()
}

func (c *Controller) fetchOnce(ctx context.Context, cfg Config) Result {
	raw, err := c.client.Fetch(ctx, cfg.URL)
	if err != nil {
		return Result{Err: err, At: time.Now()}
	}

	doc, err := schedule.Decode(raw)
	if err != nil {
		c.log.Warn("schedule decode failed", logx.Err(err))
		return Result{Err: &station.ParseError{Cause: err}, At: time.Now()}
	}

	now := time.Now()
	return Result{
		Program: schedule.ResolveCurrent(doc, now, cfg.Location),
		At:      now,
	}
}

func (c *Controller) dispatch(res Result) {
	switch {
	case res.IsError():
		c.log.Warn("fetch attempt failed", logx.Err(res.Err))
	case res.IsEmpty():
		c.log.Info("no current broadcast")
	default:
		c.log.Info("program resolved",
			logx.String("program", res.Program.Name),
			logx.String("time_slot", res.Program.TimeSlot),
		)
	}
	for _, r := range c.renderers {
		r.Render(res)
	}
}

func (c *Controller) notifyProgress() {
	for _, r := range c.renderers {
		if pn, ok := r.(ProgressNotifier); ok {
			pn.RenderFetching()
		}
	}
}

// shutdown clears any renderer that needs it so nothing stale survives
// the process.
func (c *Controller) shutdown() {
	for _, r := range c.renderers {
		if cl, ok := r.(Clearer); ok {
			cl.Clear()
		}
	}
	c.log.Info("controller stopped")
}

func stopTimer(t *time.Timer) {
	if !t.Stop() {
		select {
		case <-t.C:
		default:
		}
	}
}
