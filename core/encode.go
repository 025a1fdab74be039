package scrip

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"io"
	"unicode/utf8"
)

// Encoder writes entries to a flattened document.
//
// Entries are framed between begin and end markers in the order WriteEntry
// is called. Content that cannot be embedded verbatim (NUL bytes, invalid
// UTF-8, or a line the marker parser would claim) is stored as a single
// line of standard base64 with the binary flag on both markers.
type Encoder struct {
	w        io.Writer
	textOnly bool
	maxFiles int

	written int
}

// NewEncoder returns an Encoder writing a document to w.
func NewEncoder(w io.Writer, opts ...EncoderOption) *Encoder {
	e := &Encoder{w: w}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// WriteEntry appends one entry to the document.
//
// The entry path is normalized with NormalizePath, which strips leading
// slashes, and then validated. Paths with ".." elements, drive letters,
// or UNC prefixes return ErrPathTraversal; otherwise unusable paths
// return ErrInvalidPath. In text-only mode, content that would need
// base64 framing returns ErrUnencodableContent. Writing past the entry
// limit returns ErrTooManyFiles.
func (e *Encoder) WriteEntry(ent Entry) error {
	p := NormalizePath(ent.Path)
	if reason, traversal := checkPath(p); reason != "" {
		if traversal {
			return fmt.Errorf("%w: %q: %s", ErrPathTraversal, ent.Path, reason)
		}
		return fmt.Errorf("%w: %q: %s", ErrInvalidPath, ent.Path, reason)
	}

	maxFiles := e.maxFiles
	if maxFiles == 0 {
		maxFiles = DefaultMaxFiles
	}
	if maxFiles > 0 && e.written >= maxFiles {
		return fmt.Errorf("%w (limit %d)", ErrTooManyFiles, maxFiles)
	}
	e.written++

	if ent.Dir {
		if len(ent.Content) > 0 {
			return fmt.Errorf("scrip: directory entry %q carries content", p)
		}
		_, err := io.WriteString(e.w, EmptyDirPrefix+p+MarkerSuffix+"\n")
		return err
	}

	if needsBase64(ent.Content) {
		if e.textOnly {
			return fmt.Errorf("%w: %q", ErrUnencodableContent, p)
		}
		return e.writeBinary(p, ent.Content)
	}
	return e.writeText(p, ent.Content)
}

// writeText emits content verbatim. A missing final newline is added and
// flagged so the decoder can strip it again.
func (e *Encoder) writeText(p string, content []byte) error {
	flag := ""
	if len(content) > 0 && content[len(content)-1] != '\n' {
		flag = NoNewlineMarker
	}
	if _, err := io.WriteString(e.w, BeginFilePrefix+p+flag+MarkerSuffix+"\n"); err != nil {
		return err
	}
	if _, err := e.w.Write(content); err != nil {
		return err
	}
	if flag != "" {
		if _, err := io.WriteString(e.w, "\n"); err != nil {
			return err
		}
	}
	_, err := io.WriteString(e.w, EndFilePrefix+p+flag+MarkerSuffix+"\n")
	return err
}

// writeBinary emits content as one base64 line. Base64 text can never
// start with "--- ", so the block cannot collide with a marker.
func (e *Encoder) writeBinary(p string, content []byte) error {
	if _, err := io.WriteString(e.w, BeginFilePrefix+p+BinaryMarker+MarkerSuffix+"\n"); err != nil {
		return err
	}
	if _, err := io.WriteString(e.w, base64.StdEncoding.EncodeToString(content)); err != nil {
		return err
	}
	if _, err := io.WriteString(e.w, "\n"); err != nil {
		return err
	}
	_, err := io.WriteString(e.w, EndFilePrefix+p+BinaryMarker+MarkerSuffix+"\n")
	return err
}

// needsBase64 reports whether content must be base64-framed to survive a
// round trip.
func needsBase64(content []byte) bool {
	if bytes.IndexByte(content, 0) >= 0 {
		return true
	}
	if !utf8.Valid(content) {
		return true
	}
	return containsMarkerLine(content)
}
