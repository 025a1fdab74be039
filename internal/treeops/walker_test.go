package treeops

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	scrip "github.com/meigma/scrip/core"
	"github.com/meigma/scrip/internal/testutil"
)

// walkTree opens dir as the walker's root and returns the visited entries.
func walkTree(t *testing.T, dir string, w *Walker) []scrip.Entry {
	t.Helper()

	root, err := os.OpenRoot(dir)
	require.NoError(t, err)
	defer root.Close()

	w.Root = root
	var out []scrip.Entry
	err = w.Walk(context.Background(), func(e scrip.Entry) error {
		out = append(out, e)
		return nil
	})
	require.NoError(t, err)
	return out
}

func paths(entries []scrip.Entry) []string {
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.Path)
	}
	return out
}

func TestWalkerOrder(t *testing.T) {
	dir := t.TempDir()
	testutil.WriteTree(t, dir, map[string][]byte{
		"a/b/file_b.txt": []byte("File B\n"),
		"a/file_a.txt":   []byte("File A\n"),
		"file1.txt":      []byte("Hello World\n"),
	})
	testutil.MkdirTree(t, dir, "a/empty_b", "empty_root")

	entries := walkTree(t, dir, &Walker{})

	assert.Equal(t, []string{
		"a/b/file_b.txt",
		"a/empty_b",
		"a/file_a.txt",
		"empty_root",
		"file1.txt",
	}, paths(entries))
	assert.Equal(t, []byte("File B\n"), entries[0].Content)
	assert.True(t, entries[1].Dir)
}

func TestWalkerOrderIsPerDirectory(t *testing.T) {
	// Children are sorted within each directory, so "a" is fully walked
	// before its sibling "a.b" even though "a.b" sorts first as a whole
	// path ('.' < '/').
	dir := t.TempDir()
	testutil.WriteTree(t, dir, map[string][]byte{
		"a.b/x.txt": []byte("1\n"),
		"a/x.txt":   []byte("2\n"),
	})

	entries := walkTree(t, dir, &Walker{})
	assert.Equal(t, []string{"a/x.txt", "a.b/x.txt"}, paths(entries))
}

func TestWalkerExcludes(t *testing.T) {
	dir := t.TempDir()
	testutil.WriteTree(t, dir, map[string][]byte{
		".git/config":               []byte("[core]\n"),
		"README.md":                 []byte("readme\n"),
		"node_modules/pkg/index.js": []byte("js\n"),
		"src/main.go":               []byte("package main\n"),
		"src/main_test.go":          []byte("package main\n"),
	})

	entries := walkTree(t, dir, &Walker{
		Excludes: []string{".git", "node_modules", "*_test.go"},
	})

	assert.Equal(t, []string{"README.md", "src/main.go"}, paths(entries))
}

func TestWalkerExcludedChildrenLeaveNoSentinel(t *testing.T) {
	// A directory emptied by excludes is not the same as an empty
	// directory; it disappears from the stream entirely.
	dir := t.TempDir()
	testutil.WriteTree(t, dir, map[string][]byte{
		"keep/skip.log": []byte("log\n"),
	})

	entries := walkTree(t, dir, &Walker{Excludes: []string{"*.log"}})
	assert.Empty(t, entries)
}

func TestWalkerMaxFiles(t *testing.T) {
	dir := t.TempDir()
	testutil.WriteTree(t, dir, map[string][]byte{
		"a.txt": []byte("a\n"),
		"b.txt": []byte("b\n"),
		"c.txt": []byte("c\n"),
	})

	root, err := os.OpenRoot(dir)
	require.NoError(t, err)
	defer root.Close()

	w := &Walker{Root: root, MaxFiles: 2}
	err = w.Walk(context.Background(), func(scrip.Entry) error { return nil })
	require.ErrorIs(t, err, scrip.ErrTooManyFiles)
}

func TestWalkerSkipsSymlinks(t *testing.T) {
	dir := t.TempDir()
	testutil.WriteTree(t, dir, map[string][]byte{
		"file1.txt": []byte("hello\n"),
	})
	if err := os.Symlink("file1.txt", filepath.Join(dir, "link.txt")); err != nil {
		t.Skipf("symlinks unavailable: %v", err)
	}

	entries := walkTree(t, dir, &Walker{})
	assert.Equal(t, []string{"file1.txt"}, paths(entries))
}

func TestWalkerCancelled(t *testing.T) {
	dir := t.TempDir()
	testutil.WriteTree(t, dir, map[string][]byte{
		"a.txt": []byte("a\n"),
	})

	root, err := os.OpenRoot(dir)
	require.NoError(t, err)
	defer root.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	w := &Walker{Root: root}
	err = w.Walk(ctx, func(scrip.Entry) error { return nil })
	require.ErrorIs(t, err, context.Canceled)
}

func TestValidatePatterns(t *testing.T) {
	assert.NoError(t, ValidatePatterns(nil))
	assert.NoError(t, ValidatePatterns([]string{"*.log", ".git", "build/*"}))
	assert.Error(t, ValidatePatterns([]string{"["}))
}
