// Package treeops bridges directory trees and document entries: walking a
// tree into an entry stream and materializing an entry stream back into a
// tree. Both directions go through an os.Root so no operation can touch
// paths outside the chosen directory.
package treeops

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path"
	"path/filepath"

	scrip "github.com/meigma/scrip/core"
)

// Walker streams a directory tree as document entries.
//
// Traversal is fs.WalkDir order: lexical within each directory, parents
// before their children. Regular files become file entries and childless
// directories become empty-dir entries. Symlinks and other irregular
// files are skipped with a debug log.
type Walker struct {
	// Root is the tree to walk. The caller keeps ownership and closes it.
	Root *os.Root

	// Excludes holds path.Match patterns tested against each entry's
	// slash path and base name. A matching directory is pruned whole.
	Excludes []string

	// MaxFiles caps the number of entries. Zero uses
	// scrip.DefaultMaxFiles. Negative means no limit.
	MaxFiles int

	Logger *slog.Logger
}

// ValidatePatterns rejects malformed exclude patterns up front so a bad
// pattern fails the operation instead of silently matching nothing.
func ValidatePatterns(patterns []string) error {
	for _, p := range patterns {
		if _, err := path.Match(p, p); err != nil {
			return fmt.Errorf("exclude pattern %q: %w", p, err)
		}
	}
	return nil
}

// Walk calls fn for every entry in the tree. Returning an error from fn
// stops the walk.
func (w *Walker) Walk(ctx context.Context, fn func(e scrip.Entry) error) error {
	maxFiles := w.MaxFiles
	if maxFiles == 0 {
		maxFiles = scrip.DefaultMaxFiles
	}

	fsys := w.Root.FS()
	count := 0
	return fs.WalkDir(fsys, ".", func(p string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if p == "." {
			return nil
		}
		if w.excluded(p, d.Name()) {
			if d.IsDir() {
				w.log().Debug("excluded directory", "path", p)
				return fs.SkipDir
			}
			w.log().Debug("excluded file", "path", p)
			return nil
		}
		if d.IsDir() {
			children, err := fs.ReadDir(fsys, p)
			if err != nil {
				return err
			}
			if len(children) > 0 {
				return nil
			}
			if maxFiles > 0 && count >= maxFiles {
				return scrip.ErrTooManyFiles
			}
			count++
			return fn(scrip.Entry{Path: p, Dir: true})
		}
		if !d.Type().IsRegular() {
			w.log().Debug("skipped irregular file", "path", p, "type", d.Type().String())
			return nil
		}
		if maxFiles > 0 && count >= maxFiles {
			return scrip.ErrTooManyFiles
		}
		content, err := w.Root.ReadFile(filepath.FromSlash(p))
		if err != nil {
			return err
		}
		count++
		return fn(scrip.Entry{Path: p, Content: content})
	})
}

// excluded reports whether an entry matches any exclude pattern.
func (w *Walker) excluded(slashPath, base string) bool {
	for _, pat := range w.Excludes {
		if ok, _ := path.Match(pat, slashPath); ok {
			return true
		}
		if ok, _ := path.Match(pat, base); ok {
			return true
		}
	}
	return false
}

// log returns the logger, falling back to a discard logger if nil.
func (w *Walker) log() *slog.Logger {
	if w.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return w.Logger
}
