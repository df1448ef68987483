package controller

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"

	m "github.com/mouse-blink/reext/internal/model"
)

// StyledUI implements UI with lipgloss colours for interactive terminals.
// The text is the same as SimpleUI's.
type StyledUI struct {
	output io.Writer

	dryRunStyle  lipgloss.Style
	renamedStyle lipgloss.Style
	pathStyle    lipgloss.Style
	arrowStyle   lipgloss.Style
	summaryStyle lipgloss.Style
}

// NewStyledUI creates a new StyledUI writing to output.
func NewStyledUI(output io.Writer) *StyledUI {
	r := lipgloss.NewRenderer(output)

	return &StyledUI{
		output:       output,
		dryRunStyle:  r.NewStyle().Foreground(lipgloss.Color("11")).Bold(true),
		renamedStyle: r.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
		pathStyle:    r.NewStyle().Foreground(lipgloss.Color("14")),
		arrowStyle:   r.NewStyle().Faint(true),
		summaryStyle: r.NewStyle().Bold(true),
	}
}

// DisplayRename prints one rename with a coloured marker.
func (s *StyledUI) DisplayRename(op m.RenameOp, dryRun bool) {
	marker := s.renamedStyle.Render(renamedMarker)
	if dryRun {
		marker = s.dryRunStyle.Render(dryRunMarker)
	}

	_, _ = fmt.Fprintf(s.output, "%s %s %s %s\n",
		marker,
		s.pathStyle.Render(strconv.Quote(string(op.OldPath))),
		s.arrowStyle.Render(arrow),
		s.pathStyle.Render(strconv.Quote(string(op.NewPath))),
	)
}

// DisplaySummary prints the summary line in bold after a blank line.
func (s *StyledUI) DisplaySummary(summary m.Summary) {
	_, _ = fmt.Fprintf(s.output, "\n%s\n", s.summaryStyle.Render(summary.Line()))
}

// DisplayPlan prints the planned renames as a table.
func (s *StyledUI) DisplayPlan(ops []m.RenameOp) error {
	_, err := fmt.Fprint(s.output, renderPlanTable(ops))

	return err
}
