// Package testutil provides fixture helpers shared by tests.
package testutil

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

// WriteTree creates files under dir from a map of slash path to content.
// Parent directories are created as needed.
func WriteTree(tb testing.TB, dir string, files map[string][]byte) {
	tb.Helper()

	for path, content := range files {
		fullPath := filepath.Join(dir, filepath.FromSlash(path))
		if err := os.MkdirAll(filepath.Dir(fullPath), 0o755); err != nil {
			tb.Fatalf("create directory for %s: %v", path, err)
		}
		if err := os.WriteFile(fullPath, content, 0o644); err != nil {
			tb.Fatalf("write %s: %v", path, err)
		}
	}
}

// MkdirTree creates directories under dir from a list of slash paths.
func MkdirTree(tb testing.TB, dir string, dirs ...string) {
	tb.Helper()

	for _, d := range dirs {
		if err := os.MkdirAll(filepath.Join(dir, filepath.FromSlash(d)), 0o755); err != nil {
			tb.Fatalf("create directory %s: %v", d, err)
		}
	}
}

// ReadTree returns every regular file under dir keyed by slash path.
func ReadTree(tb testing.TB, dir string) map[string][]byte {
	tb.Helper()

	files := make(map[string][]byte)
	err := fs.WalkDir(os.DirFS(dir), ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !d.Type().IsRegular() {
			return nil
		}
		content, err := os.ReadFile(filepath.Join(dir, filepath.FromSlash(path)))
		if err != nil {
			return err
		}
		files[path] = content
		return nil
	})
	if err != nil {
		tb.Fatalf("read tree %s: %v", dir, err)
	}
	return files
}
