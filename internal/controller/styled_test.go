package controller

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/mouse-blink/reext/internal/model"
)

func TestStyledUI_KeepsPlainText(t *testing.T) {
	var buf bytes.Buffer

	ui := NewStyledUI(&buf)
	op := m.RenameOp{OldPath: "c.jsx", NewPath: "c.js"}

	ui.DisplayRename(op, false)
	ui.DisplayRename(op, true)
	ui.DisplaySummary(m.Summary{Detected: 1, Changed: 1})

	output := buf.String()

	assert.Contains(t, output, "Renombrado:")
	assert.Contains(t, output, "[Dry Run]")
	assert.Contains(t, output, `"c.jsx"`)
	assert.Contains(t, output, `"c.js"`)
	assert.Contains(t, output, "Resumen: 1 archivos detectados, 1 renombrados.")
}

func TestStyledUI_DisplayPlan(t *testing.T) {
	var buf bytes.Buffer

	err := NewStyledUI(&buf).DisplayPlan([]m.RenameOp{{OldPath: "a.js", NewPath: "a.jsx"}})
	require.NoError(t, err)

	assert.Contains(t, buf.String(), "a.jsx")
	assert.Contains(t, buf.String(), "TOTAL FILES 1")
}
