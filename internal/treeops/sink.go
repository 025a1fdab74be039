package treeops

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	scrip "github.com/meigma/scrip/core"
)

// Sink materializes document entries under a destination directory.
//
// The destination is created if missing and opened as an os.Root, so even
// a crafted entry path cannot write outside it. Files are written to a
// temp name in their final directory and renamed into place, replacing
// any existing file; a partially written file is never visible at its
// final path.
type Sink struct {
	root *os.Root
	seq  int
}

// NewSink creates the destination directory if needed and opens it.
func NewSink(dir string) (*Sink, error) {
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("create destination %s: %w", dir, err)
	}
	root, err := os.OpenRoot(dir)
	if err != nil {
		return nil, err
	}
	return &Sink{root: root}, nil
}

// Put writes one entry, creating parent directories as needed.
func (s *Sink) Put(e scrip.Entry) error {
	fsPath := filepath.FromSlash(e.Path)
	if e.Dir {
		return s.root.MkdirAll(fsPath, 0o750)
	}
	if dir := filepath.Dir(fsPath); dir != "." {
		if err := s.root.MkdirAll(dir, 0o750); err != nil {
			return err
		}
	}
	return s.writeFileAtomic(fsPath, e.Content)
}

// Close releases the destination root.
func (s *Sink) Close() error {
	return s.root.Close()
}

// writeFileAtomic writes content to a temp file next to fsPath and renames
// it over the final path.
func (s *Sink) writeFileAtomic(fsPath string, content []byte) error {
	dir := filepath.Dir(fsPath)

	var f *os.File
	var tmp string
	for attempt := 0; ; attempt++ {
		s.seq++
		tmp = filepath.Join(dir, fmt.Sprintf(".scrip-tmp-%d", s.seq))
		var err error
		f, err = s.root.OpenFile(tmp, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
		if err == nil {
			break
		}
		// A leftover temp file from an interrupted run can collide.
		if !errors.Is(err, fs.ErrExist) || attempt >= 3 {
			return err
		}
	}

	if _, err := f.Write(content); err != nil {
		f.Close()
		s.root.Remove(tmp)
		return err
	}
	if err := f.Close(); err != nil {
		s.root.Remove(tmp)
		return err
	}
	if err := s.root.Rename(tmp, fsPath); err != nil {
		s.root.Remove(tmp)
		return err
	}
	return nil
}
