package controller

import (
	"fmt"

	"github.com/spf13/cobra"

	m "github.com/mouse-blink/reext/internal/model"
)

const (
	dryRunMarker  = "[Dry Run]"
	renamedMarker = "Renombrado:"
	arrow         = "→"
)

// SimpleUI implements UI using the cobra Command's output writer.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// DisplayRename prints `[Dry Run] "old" → "new"` or `Renombrado: "old" → "new"`.
func (s *SimpleUI) DisplayRename(op m.RenameOp, dryRun bool) {
	marker := renamedMarker
	if dryRun {
		marker = dryRunMarker
	}

	s.printf("%s %q %s %q\n", marker, op.OldPath, arrow, op.NewPath)
}

// DisplaySummary prints a blank line followed by the summary line.
func (s *SimpleUI) DisplaySummary(summary m.Summary) {
	s.printf("\n%s\n", summary.Line())
}

// DisplayPlan prints the planned renames as a table.
func (s *SimpleUI) DisplayPlan(ops []m.RenameOp) error {
	s.printf("%s", renderPlanTable(ops))

	return nil
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}
