package model

// Plan is the invocation configuration, derived once per run.
type Plan struct {
	Root    Path
	Rule    Rule
	DryRun  bool
	Exclude []string // doublestar patterns relative to Root
}

// RenameOp is a single extension change.
type RenameOp struct {
	OldPath Path
	NewPath Path
}
