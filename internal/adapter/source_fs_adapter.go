// Package adapter contains the infrastructure adapters for the reext CLI.
package adapter

import (
	"bufio"
	"io"
	"io/fs"
	"iter"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/bmatcuk/doublestar/v4"
	"gitlab.com/tozd/go/errors"

	m "github.com/mouse-blink/reext/internal/model"
)

// ErrInvalidUTF8 is returned when a line of a matched file is not text.
var ErrInvalidUTF8 = errors.Base("stream did not contain valid UTF-8")

// SourceFSAdapter abstracts the filesystem operations the domain layer relies
// on, so the workflow can be tested against fakes as well as real trees.
type SourceFSAdapter interface {
	// Walk lazily yields the regular files under root. Entries that cannot
	// be read are dropped, as are entries matching an exclude pattern.
	Walk(root m.Path, exclude []string) iter.Seq[m.Path]

	// ContainsMatch reports whether any line of the file matches re. It
	// stops reading at the first match.
	ContainsMatch(path m.Path, re *regexp.Regexp) (bool, error)

	// Rename moves oldPath to newPath.
	Rename(oldPath, newPath m.Path) error
}

// LocalSourceFSAdapter is the SourceFSAdapter backed by the os package.
type LocalSourceFSAdapter struct{}

// NewLocalSourceFSAdapter constructs a LocalSourceFSAdapter instance ready to
// be wired into the workflow.
func NewLocalSourceFSAdapter() *LocalSourceFSAdapter {
	return &LocalSourceFSAdapter{}
}

// Walk iterates over regular files under root, recursing into subdirectories.
// A root that is a symlink to a directory is followed; yielded paths keep the
// root as given.
func (a *LocalSourceFSAdapter) Walk(root m.Path, exclude []string) iter.Seq[m.Path] {
	rootStr := string(root)

	return func(yield func(m.Path) bool) {
		walkRoot := resolveRoot(rootStr)

		_ = filepath.WalkDir(walkRoot, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return nil
			}

			if path != walkRoot && isExcluded(walkRoot, path, exclude) {
				if d.IsDir() {
					return filepath.SkipDir
				}

				return nil
			}

			if d.IsDir() || !isRegularFile(path, d) {
				return nil
			}

			if !yield(m.Path(rebase(rootStr, walkRoot, path))) {
				return filepath.SkipAll
			}

			return nil
		})
	}
}

// ContainsMatch scans the file line by line. Lines have no length cap.
func (a *LocalSourceFSAdapter) ContainsMatch(path m.Path, re *regexp.Regexp) (bool, error) {
	// #nosec G304 - path comes from the walk the user asked for
	f, err := os.Open(string(path))
	if err != nil {
		return false, errors.Errorf("opening %s: %w", path, err)
	}

	defer func() {
		_ = f.Close()
	}()

	r := bufio.NewReader(f)

	for lineNo := 1; ; lineNo++ {
		line, readErr := r.ReadString('\n')
		if readErr != nil && !errors.Is(readErr, io.EOF) {
			return false, errors.Errorf("reading %s: %w", path, readErr)
		}

		if line != "" {
			if trimmed, ok := strings.CutSuffix(line, "\n"); ok {
				line = strings.TrimSuffix(trimmed, "\r")
			}

			if !utf8.ValidString(line) {
				return false, errors.Errorf("reading %s line %d: %w", path, lineNo, ErrInvalidUTF8)
			}

			if re.MatchString(line) {
				return true, nil
			}
		}

		if readErr != nil {
			return false, nil
		}
	}
}

// Rename moves a file. An existing file at newPath is replaced, as with rename(2).
func (a *LocalSourceFSAdapter) Rename(oldPath, newPath m.Path) error {
	if err := os.Rename(string(oldPath), string(newPath)); err != nil {
		return errors.Errorf("renaming %s: %w", oldPath, err)
	}

	return nil
}

// resolveRoot returns the target of a root symlink that points to a
// directory, since WalkDir never descends through a symlinked root.
func resolveRoot(root string) string {
	info, err := os.Lstat(root)
	if err != nil || info.Mode()&fs.ModeSymlink == 0 {
		return root
	}

	target, err := os.Stat(root)
	if err != nil || !target.IsDir() {
		return root
	}

	resolved, err := filepath.EvalSymlinks(root)
	if err != nil {
		return root
	}

	return resolved
}

// rebase maps a path found under walkRoot back onto root.
func rebase(root, walkRoot, path string) string {
	if root == walkRoot {
		return path
	}

	rel, err := filepath.Rel(walkRoot, path)
	if err != nil {
		return path
	}

	return filepath.Join(root, rel)
}

// isRegularFile follows symlinks, so a link to a regular file counts.
func isRegularFile(path string, d fs.DirEntry) bool {
	if d.Type().IsRegular() {
		return true
	}

	if d.Type()&fs.ModeSymlink == 0 {
		return false
	}

	info, err := os.Stat(path)

	return err == nil && info.Mode().IsRegular()
}

func isExcluded(root, path string, patterns []string) bool {
	if len(patterns) == 0 {
		return false
	}

	rel, err := filepath.Rel(root, path)
	if err != nil {
		return false
	}

	rel = filepath.ToSlash(rel)

	for _, pattern := range patterns {
		if ok, _ := doublestar.Match(pattern, rel); ok {
			return true
		}
	}

	return false
}
