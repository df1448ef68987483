package domain

import (
	m "github.com/mouse-blink/reext/internal/model"
)

// detect gates a candidate: the extension filter first, then the content
// match when the rule requires one. Read errors are fatal to the run.
func (w *workflow) detect(path m.Path, rule m.Rule) (bool, error) {
	if !m.Admits(rule, path) {
		return false, nil
	}

	if !rule.RequireMatch() {
		return true, nil
	}

	return w.fsAdapter.ContainsMatch(path, rule.Pattern())
}
