package model

import (
	"strings"

	"gitlab.com/tozd/go/errors"
)

// ErrInvalidMode is returned by Mode.Set for an unknown preset name.
var ErrInvalidMode = errors.Base("invalid mode")

// Mode names a preset that bundles a pattern, a target extension, a match
// requirement and an extension filter.
type Mode string

const (
	// ModeNone means no preset was selected; a custom rule is required.
	ModeNone Mode = ""
	// ModeJSToJSX renames .js files containing a closing tag fragment to .jsx.
	ModeJSToJSX Mode = "js-a-jsx"
	// ModeJSXToJS renames every .jsx file back to .js.
	ModeJSXToJS Mode = "jsx-a-js"
)

// Modes lists the accepted preset names in display order.
var Modes = []Mode{ModeJSToJSX, ModeJSXToJS}

// String implements pflag.Value.
func (md *Mode) String() string {
	return string(*md)
}

// Set implements pflag.Value and rejects unknown presets.
func (md *Mode) Set(value string) error {
	for _, known := range Modes {
		if value == string(known) {
			*md = known
			return nil
		}
	}

	names := make([]string, 0, len(Modes))
	for _, known := range Modes {
		names = append(names, string(known))
	}

	return errors.Errorf("%w %q, expected one of: %s", ErrInvalidMode, value, strings.Join(names, ", "))
}

// Type implements pflag.Value.
func (md *Mode) Type() string {
	return "mode"
}
