package controller

import (
	"bytes"
	"fmt"

	"github.com/olekukonko/tablewriter"

	m "github.com/mouse-blink/reext/internal/model"
)

func renderPlanTable(ops []m.RenameOp) string {
	if len(ops) == 0 {
		return "No files to rename\n"
	}

	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Path", "New Path"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT})

	for _, op := range ops {
		table.Append([]string{string(op.OldPath), string(op.NewPath)})
	}

	table.SetFooter([]string{fmt.Sprintf("Total Files %d", len(ops)), ""})
	table.Render()

	return tableBuffer.String()
}
