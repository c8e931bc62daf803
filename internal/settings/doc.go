// Package settings persists user preferences across runs: the station
// endpoint, the polling schedule and the overlay placement options.
//
// It currently supports:
//   - A JSON file backend (default, dependency-free)
//   - An optional SQLite backend behind the "sqlite" build tag
package settings
