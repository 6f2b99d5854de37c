//go:build !debug

package assert

// Enabled is false in release builds; Assert and Logf compile away to nothing.
const Enabled = false

// Assert is a no-op in release builds.
func Assert(cond bool, format string, args ...any) {}

// Logf is a no-op in release builds.
func Logf(op string, format string, args ...any) {}
