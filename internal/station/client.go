// Package station fetches raw schedule bytes from a broadcaster's public
// JSON endpoint and defines the fetch-path error taxonomy.
package station

import (
	"context"
	"io"
	"net/http"
	"strings"
	"time"

	logx "radiowatch/pkg/logx"
)

const (
	userAgent    = "radiowatch/1.0 (EDMC Plugin)"
	fetchTimeout = 15 * time.Second

	// The whole schedule for a week is well under 1 MiB; anything bigger
	// is not the API we think it is.
	maxBodyBytes = 4 << 20
)

type Client struct {
	http *http.Client
	log  logx.Logger
}

func NewClient(log logx.Logger) *Client {
	return &Client{
		http: &http.Client{Timeout: fetchTimeout},
		log:  log.With(logx.String("component", "station")),
	}
}

// Fetch performs one GET against url and returns the raw body. There is no
// retry here: one shot per tick, the next scheduled attempt is the retry.
func (c *Client) Fetch(ctx context.Context, url string) ([]byte, error) {
	if strings.TrimSpace(url) == "" {
		return nil, ErrNoURL
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &TransportError{Cause: err}
	}
	req.Header.Set("User-Agent", userAgent)

	started := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Warn("fetch failed", logx.String("url", url), logx.Err(err))
		return nil, &TransportError{Cause: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.log.Warn("fetch rejected", logx.String("url", url), logx.Int("status", resp.StatusCode))
		return nil, &ProtocolError{Status: resp.StatusCode}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, &TransportError{Cause: err}
	}

	c.log.Debug("fetch ok",
		logx.String("url", url),
		logx.Int("bytes", len(body)),
		logx.Duration("took", time.Since(started)),
	)
	return body, nil
}
