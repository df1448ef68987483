package domain

import (
	m "github.com/mouse-blink/reext/internal/model"
)

// NewPath swaps the extension of path for ext, keeping directory and stem.
func NewPath(path m.Path, ext string) m.Path {
	return path.WithExt(ext)
}

// apply renames op, or only announces it on a dry run. It reports whether one
// unit changed; a rename failure is returned as is and ends the run.
func (w *workflow) apply(op m.RenameOp, dryRun bool) (bool, error) {
	if !dryRun {
		if err := w.fsAdapter.Rename(op.OldPath, op.NewPath); err != nil {
			return false, err
		}
	}

	w.ui.DisplayRename(op, dryRun)

	return true, nil
}
