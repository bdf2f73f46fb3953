// SPDX-License-Identifier: MIT
// Package: perspective
//
// logger.go — package-level diagnostics sink.
//
// Purpose:
//  - Report rejected inputs and parallel dispatch decisions without forcing
//    a logging policy on callers.
//  - Stay silent until SetLogger installs a handler.
//
// Determinism & Performance:
//  - The default handler reports every level as disabled, so Debug calls
//    return before any attribute is formatted.
//  - The active logger sits behind an atomic pointer; swapping it never
//    blocks a running RightHandedBatch.
//
// Levels:
//  - slog.LevelDebug: "perspective: rejected input" (with the wrapped error)
//    and "perspective: parallel evaluation" (elements, chunks, workers).

package perspective

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// discard is a slog.Handler that drops every record.
type discard struct{}

func (discard) Enabled(context.Context, slog.Level) bool  { return false }
func (discard) Handle(context.Context, slog.Record) error { return nil }
func (d discard) WithAttrs([]slog.Attr) slog.Handler      { return d }
func (d discard) WithGroup(string) slog.Handler           { return d }

var silent = slog.New(discard{})

var active atomic.Pointer[slog.Logger]

func init() {
	active.Store(silent)
}

// SetLogger routes diagnostics to l; nil restores the silent default.
// Safe to call while other goroutines build matrices.
//
//	perspective.SetLogger(slog.New(slog.NewTextHandler(os.Stderr,
//	    &slog.HandlerOptions{Level: slog.LevelDebug})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = silent
	}
	active.Store(l)
}

// Logger returns the logger currently in use; never nil.
func Logger() *slog.Logger {
	return active.Load()
}
