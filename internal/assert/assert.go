//go:build debug

// Package assert provides invariant checks that are compiled into debug
// builds and compiled out of release builds.
//
// Structural violations in the ART node zoo (a tagged handle carrying an
// impossible type, a shrink firing on a node that still has room, ...)
// indicate a bug in this package, not a condition a caller can recover
// from. Debug builds turn them into a panic with context; release builds
// (the default, no build tag) drop the check entirely so the hot insert
// and search paths don't pay for it.
package assert

import (
	"fmt"
	"log/slog"
	"os"
)

// Enabled is true when this binary was built with the debug tag.
const Enabled = true

var logger = slog.New(slog.NewTextHandler(os.Stderr, nil))

// Assert panics with a formatted message if cond is false.
func Assert(cond bool, format string, args ...any) {
	if !cond {
		panic(fmt.Sprintf("art: internal assertion failed: "+format, args...))
	}
}

// Logf logs a structured debug message. It is a no-op in release builds.
func Logf(op string, format string, args ...any) {
	logger.Debug(fmt.Sprintf(format, args...), slog.String("op", op))
}
