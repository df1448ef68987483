package model

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSToJSX(t *testing.T) {
	var r Rule = JSToJSX{}

	assert.Equal(t, "jsx", r.TargetExtension())
	assert.True(t, r.RequireMatch())

	filter, ok := r.ExtensionFilter()
	require.True(t, ok)
	assert.Equal(t, "js", filter)

	assert.True(t, r.Pattern().MatchString("  </div>"))
	assert.True(t, r.Pattern().MatchString("<br/>"))
	assert.True(t, r.Pattern().MatchString("return <Größe></Größe>;"))
	assert.True(t, r.Pattern().MatchString("</Ελληνικά>"))
	assert.False(t, r.Pattern().MatchString("</my-tag>"))
	assert.False(t, r.Pattern().MatchString("const a = 1 / 2;"))
}

func TestJSXToJS(t *testing.T) {
	var r Rule = JSXToJS{}

	assert.Equal(t, "js", r.TargetExtension())
	assert.False(t, r.RequireMatch())

	filter, ok := r.ExtensionFilter()
	require.True(t, ok)
	assert.Equal(t, "jsx", filter)
	assert.True(t, r.Pattern().MatchString(""))
}

func TestCustom(t *testing.T) {
	re := regexp.MustCompile("TODO")
	var r Rule = Custom{Regexp: re, Extension: "flagged"}

	assert.Same(t, re, r.Pattern())
	assert.Equal(t, "flagged", r.TargetExtension())
	assert.True(t, r.RequireMatch())

	_, ok := r.ExtensionFilter()
	assert.False(t, ok)
}

func TestAdmits(t *testing.T) {
	assert.True(t, Admits(JSToJSX{}, "src/a.js"))
	assert.False(t, Admits(JSToJSX{}, "src/a.jsx"))
	assert.False(t, Admits(JSToJSX{}, "src/js"))
	assert.True(t, Admits(JSXToJS{}, "c.jsx"))
	assert.True(t, Admits(Custom{}, "anything"))
	assert.True(t, Admits(Custom{}, ".hidden"))
}

func TestMode_Set(t *testing.T) {
	var md Mode

	require.NoError(t, md.Set("js-a-jsx"))
	assert.Equal(t, ModeJSToJSX, md)

	require.NoError(t, md.Set("jsx-a-js"))
	assert.Equal(t, ModeJSXToJS, md)

	err := md.Set("jsx")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidMode)
	assert.Contains(t, err.Error(), "js-a-jsx, jsx-a-js")
	assert.Equal(t, ModeJSXToJS, md, "failed Set must keep the previous value")
	assert.Equal(t, "mode", md.Type())
	assert.Equal(t, "jsx-a-js", md.String())
}
