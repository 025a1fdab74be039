package scrip

import (
	"bytes"
	"context"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/meigma/scrip/internal/testutil"
)

// benchTree builds a fixture tree of count files with a few lines each.
func benchTree(b *testing.B, count int) string {
	b.Helper()

	files := make(map[string][]byte, count)
	line := bytes.Repeat([]byte("sample line of file content\n"), 16)
	for i := 0; i < count; i++ {
		files[fmt.Sprintf("pkg%02d/file%03d.txt", i%16, i)] = line
	}
	dir := b.TempDir()
	testutil.WriteTree(b, dir, files)
	return dir
}

func BenchmarkFlatten(b *testing.B) {
	dir := benchTree(b, 256)

	b.ReportAllocs()
	for b.Loop() {
		var buf bytes.Buffer
		if err := Flatten(context.Background(), dir, &buf); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkRestore(b *testing.B) {
	dir := benchTree(b, 256)

	var doc bytes.Buffer
	if err := Flatten(context.Background(), dir, &doc); err != nil {
		b.Fatal(err)
	}
	dest := filepath.Join(b.TempDir(), "out")

	b.ReportAllocs()
	for b.Loop() {
		if err := Restore(context.Background(), bytes.NewReader(doc.Bytes()), dest); err != nil {
			b.Fatal(err)
		}
	}
}
