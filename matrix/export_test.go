// SPDX-License-Identifier: MIT
// Test-only bridges to unexported internals. Compiled only with tests.

package matrix

import "log/slog"

// OptionsSnapshot exposes the resolved Options for assertions.
type OptionsSnapshot struct {
	Logger       *slog.Logger
	StrictBounds bool
}

// GatherOptions_TestOnly resolves opts the same way public entry points do.
func GatherOptions_TestOnly(opts ...Option) OptionsSnapshot {
	o := gatherOptions(opts...)
	return OptionsSnapshot{Logger: o.logger, StrictBounds: o.strictBounds}
}

// SlotCount_TestOnly reports the backing slot count (live + freed).
func SlotCount_TestOnly(m *Sparse) int {
	return len(m.slots)
}
