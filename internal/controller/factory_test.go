package controller

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUI(t *testing.T) {
	t.Run("buffer output gets plain lines", func(t *testing.T) {
		cmd := &cobra.Command{}
		cmd.SetOut(&bytes.Buffer{})

		assert.IsType(t, &SimpleUI{}, NewUI(cmd))
	})

	t.Run("regular file output gets plain lines", func(t *testing.T) {
		file, err := os.Create(filepath.Join(t.TempDir(), "out.txt"))
		require.NoError(t, err)
		t.Cleanup(func() { _ = file.Close() })

		cmd := &cobra.Command{}
		cmd.SetOut(file)

		assert.IsType(t, &SimpleUI{}, NewUI(cmd))
	})

	t.Run("character device output is styled", func(t *testing.T) {
		file, err := os.OpenFile(os.DevNull, os.O_WRONLY, 0)
		if err != nil {
			t.Skipf("%s not available: %v", os.DevNull, err)
		}
		t.Cleanup(func() { _ = file.Close() })

		cmd := &cobra.Command{}
		cmd.SetOut(file)

		assert.IsType(t, &StyledUI{}, NewUI(cmd))
	})
}

func TestIsTerminal(t *testing.T) {
	assert.False(t, isTerminal(&bytes.Buffer{}))

	file, err := os.CreateTemp(t.TempDir(), "reext-out")
	require.NoError(t, err)
	require.NoError(t, file.Close())

	assert.False(t, isTerminal(file), "a closed file cannot be stat'ed")
}
