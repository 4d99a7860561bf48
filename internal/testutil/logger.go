// Package testutil provides shared helpers for tests.
package testutil

import (
	"io"
	"log/slog"
)

// DiscardLogger returns a logger that drops every record. Handlers and
// middleware require a logger; tests that don't assert on log output use this.
func DiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
