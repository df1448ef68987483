package model

import "regexp"

var (
	// Word characters are Unicode-aware so tags like </Größe> match.
	closingTagPattern = regexp.MustCompile(`/[\p{L}\p{M}\p{Nd}\p{Pc}]*>`)
	anyLinePattern    = regexp.MustCompile(`.*`)
)

// Rule is the resolved renaming rule of one run. The set of implementations
// is closed: JSToJSX, JSXToJS and Custom.
type Rule interface {
	// Pattern is tested against each line when RequireMatch is true.
	Pattern() *regexp.Regexp
	// TargetExtension is the new extension, without the leading dot.
	TargetExtension() string
	// RequireMatch reports whether file contents gate the rename.
	RequireMatch() bool
	// ExtensionFilter restricts candidates to one current extension.
	ExtensionFilter() (string, bool)

	rule()
}

// JSToJSX renames .js files holding a JSX closing tag such as "</div>".
type JSToJSX struct{}

func (JSToJSX) Pattern() *regexp.Regexp         { return closingTagPattern }
func (JSToJSX) TargetExtension() string         { return "jsx" }
func (JSToJSX) RequireMatch() bool              { return true }
func (JSToJSX) ExtensionFilter() (string, bool) { return "js", true }
func (JSToJSX) rule()                           {}

// JSXToJS renames every .jsx file to .js without reading it.
type JSXToJS struct{}

func (JSXToJS) Pattern() *regexp.Regexp         { return anyLinePattern }
func (JSXToJS) TargetExtension() string         { return "js" }
func (JSXToJS) RequireMatch() bool              { return false }
func (JSXToJS) ExtensionFilter() (string, bool) { return "jsx", true }
func (JSXToJS) rule()                           {}

// Custom renames any file with a line matching Regexp to Extension.
type Custom struct {
	Regexp    *regexp.Regexp
	Extension string
}

func (c Custom) Pattern() *regexp.Regexp       { return c.Regexp }
func (c Custom) TargetExtension() string       { return c.Extension }
func (Custom) RequireMatch() bool              { return true }
func (Custom) ExtensionFilter() (string, bool) { return "", false }
func (Custom) rule()                           {}

// Admits reports whether path passes the extension filter of r.
func Admits(r Rule, path Path) bool {
	want, ok := r.ExtensionFilter()
	if !ok {
		return true
	}

	got, ok := path.Ext()

	return ok && got == want
}
