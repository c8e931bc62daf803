package settings

import (
	"context"
	"errors"
	"strconv"
	"strings"

	logx "radiowatch/pkg/logx"
)

// Store is the persistence API for user preferences. Keys map to string
// values; typed access goes through the package helpers so defaults live
// in one place.
type Store interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// Open initializes the configured store.
// It returns (nil, nil) if persistence is disabled.
func Open(cfg Config, log logx.Logger) (Store, error) {
	driver := strings.ToLower(strings.TrimSpace(cfg.Driver))
	if driver == "" || driver == "none" {
		return nil, nil
	}
	if log.IsZero() {
		log = logx.Nop()
	}

	switch driver {
	case "file":
		return openFile(cfg, log)
	case "sqlite", "sqlite3":
		return openSQLite(cfg, log)
	default:
		return nil, errors.New("unknown settings driver: " + driver)
	}
}

// GetString reads key, falling back to def when the store is nil, the key
// is absent, or the read fails. Read failures never break rendering.
func GetString(ctx context.Context, s Store, key, def string) string {
	if s == nil {
		return def
	}
	v, ok, err := s.Get(ctx, key)
	if err != nil || !ok {
		return def
	}
	return v
}

func GetBool(ctx context.Context, s Store, key string, def bool) bool {
	raw := GetString(ctx, s, key, "")
	if raw == "" {
		return def
	}
	b, err := strconv.ParseBool(raw)
	if err != nil {
		return def
	}
	return b
}

func GetInt(ctx context.Context, s Store, key string, def int) int {
	raw := GetString(ctx, s, key, "")
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return n
}

// SetString writes key, silently succeeding when persistence is off.
func SetString(ctx context.Context, s Store, key, v string) error {
	if s == nil {
		return nil
	}
	return s.Set(ctx, key, v)
}

// SetBool and SetInt keep callers out of the string encoding.
func SetBool(ctx context.Context, s Store, key string, v bool) error {
	if s == nil {
		return nil
	}
	return s.Set(ctx, key, strconv.FormatBool(v))
}

func SetInt(ctx context.Context, s Store, key string, v int) error {
	if s == nil {
		return nil
	}
	return s.Set(ctx, key, strconv.Itoa(v))
}
