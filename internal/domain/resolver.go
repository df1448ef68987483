// Package domain holds the renaming workflow: resolving a rule from the
// command line, gating candidates, and renaming them.
package domain

import (
	"regexp"

	"github.com/bmatcuk/doublestar/v4"
	"gitlab.com/tozd/go/errors"

	m "github.com/mouse-blink/reext/internal/model"
)

// Usage errors. They are all detected before any file is touched.
var (
	ErrConflictingOptions = errors.Base("No puedes usar --modo junto con --regex o --extension-nueva.")
	ErrMissingRegex       = errors.Base("Falta --regex")
	ErrMissingExtension   = errors.Base("Falta --extension-nueva")
	ErrInvalidPattern     = errors.Base("Regex inválida")
	ErrInvalidExclude     = errors.Base("invalid exclude pattern")
	ErrUnknownMode        = errors.Base("unknown mode")
)

// Options are the raw invocation parameters. Regex and Extension are nil
// when the flag was not given, which differs from an empty value.
type Options struct {
	Root      m.Path
	Mode      m.Mode
	Regex     *string
	Extension *string
	DryRun    bool
	Exclude   []string
}

// Resolve derives the Plan of a run. A mode and a custom rule are mutually
// exclusive; selecting one fixes every field of the rule.
func Resolve(opts Options) (m.Plan, error) {
	if opts.Mode != m.ModeNone && (opts.Regex != nil || opts.Extension != nil) {
		return m.Plan{}, errors.WithStack(ErrConflictingOptions)
	}

	for _, pattern := range opts.Exclude {
		if !doublestar.ValidatePattern(pattern) {
			return m.Plan{}, errors.Errorf("%w: %q", ErrInvalidExclude, pattern)
		}
	}

	rule, err := resolveRule(opts)
	if err != nil {
		return m.Plan{}, err
	}

	return m.Plan{
		Root:    opts.Root,
		Rule:    rule,
		DryRun:  opts.DryRun,
		Exclude: opts.Exclude,
	}, nil
}

func resolveRule(opts Options) (m.Rule, error) {
	switch opts.Mode {
	case m.ModeJSToJSX:
		return m.JSToJSX{}, nil
	case m.ModeJSXToJS:
		return m.JSXToJS{}, nil
	case m.ModeNone:
	default:
		return nil, errors.Errorf("%w: %q", ErrUnknownMode, opts.Mode)
	}

	if opts.Regex == nil {
		return nil, errors.WithStack(ErrMissingRegex)
	}

	if opts.Extension == nil {
		return nil, errors.WithStack(ErrMissingExtension)
	}

	re, err := regexp.Compile(*opts.Regex)
	if err != nil {
		return nil, errors.Errorf("%w: %v", ErrInvalidPattern, err)
	}

	return m.Custom{Regexp: re, Extension: *opts.Extension}, nil
}
