package controller

import (
	"io"
	"os"

	"github.com/spf13/cobra"
)

// NewUI picks the UI for the command's output stream: styled output on a
// terminal, plain lines when redirected to a file, a pipe or a buffer.
func NewUI(cmd *cobra.Command) UI {
	if out := cmd.OutOrStdout(); isTerminal(out) {
		return NewStyledUI(out)
	}

	return NewSimpleUI(cmd)
}

func isTerminal(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}

	info, err := file.Stat()
	if err != nil {
		return false
	}

	return info.Mode()&os.ModeCharDevice != 0
}
