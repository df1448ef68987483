package cmd

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/mouse-blink/reext/internal/controller"
	"github.com/mouse-blink/reext/internal/domain"
	domainmocks "github.com/mouse-blink/reext/internal/domain/mocks"
	m "github.com/mouse-blink/reext/internal/model"
)

func TestListCmd_PrintsTableWithoutRenaming(t *testing.T) {
	root := t.TempDir()
	a := writeFixture(t, root, "a.js", "</div>\n")
	writeFixture(t, root, "b.js", "none\n")

	stdout, _, err := executeRoot(t, "list", "--path", root, "--modo", "js-a-jsx")
	require.NoError(t, err)

	assert.Contains(t, stdout, a)
	assert.Contains(t, stdout, filepath.Join(root, "a.jsx"))
	assert.Contains(t, stdout, "TOTAL FILES 1")
	assert.NotContains(t, stdout, "Resumen")
	assert.FileExists(t, a)
}

func TestListCmd_WithExcludePatterns(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)

	originalWorkflow := newWorkflow
	newWorkflow = func(controller.UI) domain.Workflow { return mockWorkflow }
	defer func() { newWorkflow = originalWorkflow }()

	mockWorkflow.On("Plan", mock.Anything, mock.MatchedBy(func(plan m.Plan) bool {
		return len(plan.Exclude) == 1 && plan.Exclude[0] == "vendor/**"
	})).Return([]m.RenameOp{}, nil)

	stdout, _, err := executeRoot(t, "list", "-x", "vendor/**", "--path", ".", "--modo", "jsx-a-js")
	require.NoError(t, err)

	assert.Equal(t, "No files to rename\n", stdout)
}

func TestListCmd_ConflictingOptions(t *testing.T) {
	_, _, err := executeRoot(t, "list", "--path", ".", "--modo", "js-a-jsx", "--regex", "x")

	assert.ErrorIs(t, err, domain.ErrConflictingOptions)
}

func TestNewListCmd(t *testing.T) {
	cmd := newListCmd()

	assert.Equal(t, "list", cmd.Use)
	assert.NotEmpty(t, cmd.Short)
	assert.Equal(t, listLongDescription, cmd.Long)
	assert.Nil(t, cmd.Flags().Lookup("dry-run"), "list never renames")
}
