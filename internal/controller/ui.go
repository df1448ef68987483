// Package controller provides output adapters for displaying renaming progress.
package controller

import (
	m "github.com/mouse-blink/reext/internal/model"
)

// UI defines the interface for reporting a run.
// Implementations can use different output methods (plain text, styled, etc).
type UI interface {
	// DisplayRename prints one performed or simulated rename.
	DisplayRename(op m.RenameOp, dryRun bool)
	// DisplaySummary prints the final counters once, after traversal.
	DisplaySummary(summary m.Summary)
	// DisplayPlan lists the renames a run would perform.
	DisplayPlan(ops []m.RenameOp) error
}
