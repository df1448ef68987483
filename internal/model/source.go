// Package model defines the data structures shared by the renaming workflow.
package model

import (
	"path/filepath"
	"strings"
)

// Path represents a file system path.
type Path string

// Ext returns the extension of the file name without the leading dot.
// A name whose only dot is its first character (".bashrc") has no
// extension; a trailing dot ("a.") yields an empty extension that exists.
func (p Path) Ext() (string, bool) {
	_, ext, ok := splitName(p.base())

	return ext, ok
}

// WithExt returns the path with its extension replaced by ext, or appended
// when the file name has none. An empty ext removes the extension.
func (p Path) WithExt(ext string) Path {
	dir, name := p.split()
	if name == "" || name == ".." {
		return p
	}

	stem, _, _ := splitName(name)
	if ext != "" {
		stem += "." + ext
	}

	return Path(dir + stem)
}

func (p Path) base() string {
	_, name := p.split()
	return name
}

// split keeps the directory prefix verbatim, separator included.
func (p Path) split() (string, string) {
	return filepath.Split(string(p))
}

func splitName(name string) (stem string, ext string, ok bool) {
	if name == ".." {
		return name, "", false
	}

	i := strings.LastIndexByte(name, '.')
	if i <= 0 {
		return name, "", false
	}

	return name[:i], name[i+1:], true
}
