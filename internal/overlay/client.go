package overlay

import (
	"context"
	"encoding/json"
	"net"
	"sync"
	"time"

	"golang.org/x/time/rate"

	logx "radiowatch/pkg/logx"
)

const (
	// DefaultAddr is where the EDMCOverlay server listens.
	DefaultAddr = "127.0.0.1:5010"

	dialTimeout  = 2 * time.Second
	writeTimeout = 2 * time.Second

	// A full redraw is ~15 commands; the overlay server is a small python
	// process and does not appreciate being firehosed.
	sendRatePerSec = 50
)

// Client speaks the EDMCOverlay wire protocol: one JSON object per line
// over a local TCP connection. It dials lazily, reconnects once on a write
// failure, and rate-limits sends.
type Client struct {
	addr string
	log  logx.Logger
	lim  *rate.Limiter

	mu   sync.Mutex
	conn net.Conn
}

func NewClient(addr string, log logx.Logger) *Client {
	if addr == "" {
		addr = DefaultAddr
	}
	return &Client{
		addr: addr,
		log:  log.With(logx.String("component", "overlay")),
		lim:  rate.NewLimiter(rate.Limit(sendRatePerSec), sendRatePerSec),
	}
}

func (c *Client) DrawText(ctx context.Context, cmd TextCommand) error {
	return c.send(ctx, map[string]any{
		"id":    cmd.ID,
		"text":  cmd.Text,
		"color": cmd.Color,
		"x":     cmd.X,
		"y":     cmd.Y,
		"ttl":   cmd.TTL,
		"size":  cmd.Size,
	})
}

func (c *Client) DrawRect(ctx context.Context, cmd RectCommand) error {
	return c.send(ctx, map[string]any{
		"id":    cmd.ID,
		"shape": "rect",
		"color": cmd.Stroke,
		"fill":  cmd.Fill,
		"x":     cmd.X,
		"y":     cmd.Y,
		"w":     cmd.W,
		"h":     cmd.H,
		"ttl":   cmd.TTL,
	})
}

func (c *Client) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.conn != nil {
		err := c.conn.Close()
		c.conn = nil
		return err
	}
	return nil
}

func (c *Client) send(ctx context.Context, payload any) error {
	if err := c.lim.Wait(ctx); err != nil {
		return err
	}

	b, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	b = append(b, '\n')

	c.mu.Lock()
	defer c.mu.Unlock()

	// First attempt on the existing connection, one reconnect on failure.
	// The overlay server drops idle clients, so a stale conn is routine.
	for attempt := 0; attempt < 2; attempt++ {
		if c.conn == nil {
			conn, err := net.DialTimeout("tcp", c.addr, dialTimeout)
			if err != nil {
				return err
			}
			c.conn = conn
		}
		_ = c.conn.SetWriteDeadline(time.Now().Add(writeTimeout))
		if _, err = c.conn.Write(b); err == nil {
			return nil
		}
		_ = c.conn.Close()
		c.conn = nil
	}
	return err
}
