package model

import "fmt"

// Summary holds the run counters. It is a value: Record returns the next
// state instead of mutating the receiver.
type Summary struct {
	Detected int  // files that passed the filter and the match gate
	Changed  int  // renames performed or simulated
	DryRun   bool
}

// Record accounts for one detected file, and one change when changed is true.
func (s Summary) Record(changed bool) Summary {
	s.Detected++
	if changed {
		s.Changed++
	}

	return s
}

// Line is the one-line summary printed at the end of a run.
func (s Summary) Line() string {
	verb := "renombrados"
	if s.DryRun {
		verb = "simulados"
	}

	return fmt.Sprintf("Resumen: %d archivos detectados, %d %s.", s.Detected, s.Changed, verb)
}
