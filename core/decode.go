package scrip

import (
	"bufio"
	"bytes"
	"encoding/base64"
	"fmt"
	"io"
	"strings"
)

// DefaultMaxFiles is the default limit used when no MaxFiles option is set.
const DefaultMaxFiles = 200_000

// DefaultMaxFileSize is the default per-entry content block limit (256 MiB)
// used when no MaxFileSize option is set.
const DefaultMaxFileSize int64 = 256 << 20

// maxMarkerLine bounds how much of one line the decoder assembles when
// testing it as a marker. Dashed lines past this length decode as content.
const maxMarkerLine = 64 << 10

// Decoder reads entries back out of a flattened document.
//
// Lines outside entry frames are ignored, so a document can carry a
// prologue or epilogue (say, the chat reply it was pasted into) without
// breaking the decode. Damage inside a frame is never ignored: an open
// frame must be closed by an end marker that repeats the begin marker's
// path and flag.
type Decoder struct {
	r           *bufio.Reader
	maxFiles    int
	maxFileSize int64

	seen    map[string]struct{}
	line    int
	midLine bool
	err     error
}

// NewDecoder returns a Decoder reading a document from r.
func NewDecoder(r io.Reader, opts ...DecoderOption) *Decoder {
	d := &Decoder{
		r:    bufio.NewReader(r),
		seen: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Next returns the next entry in the document. It returns io.EOF after the
// last entry. Once Next returns an error, every later call returns the
// same error.
func (d *Decoder) Next() (Entry, error) {
	if d.err != nil {
		return Entry{}, d.err
	}
	ent, err := d.next()
	if err != nil {
		d.err = err
		return Entry{}, err
	}
	return ent, nil
}

func (d *Decoder) next() (Entry, error) {
	discard := func([]byte) error { return nil }
	for {
		line, err := d.readLine(discard)
		if err != nil {
			// io.EOF between frames is the clean end of the document.
			return Entry{}, err
		}
		if line == nil {
			continue // stray line outside any frame
		}
		m, ok := parseMarker(strings.TrimSuffix(string(line), "\n"))
		if !ok {
			continue // dashed stray line that is not a marker
		}
		switch m.kind {
		case markerBegin:
			if err := d.claimPath(m.path); err != nil {
				return Entry{}, err
			}
			return d.readContent(m)
		case markerEmptyDir:
			if err := d.claimPath(m.path); err != nil {
				return Entry{}, err
			}
			return Entry{Path: m.path, Dir: true}, nil
		default:
			return Entry{}, d.frameErr("end marker without a preceding begin for %q", m.path)
		}
	}
}

// readContent consumes lines until the end marker matching begin, then
// returns the assembled entry. Content arrives chunk by chunk, so the
// size limit holds even when a single line runs past it.
func (d *Decoder) readContent(begin marker) (Entry, error) {
	maxSize := d.maxFileSize
	if maxSize == 0 {
		maxSize = DefaultMaxFileSize
	}

	var buf bytes.Buffer
	write := func(chunk []byte) error {
		if maxSize > 0 && int64(buf.Len())+int64(len(chunk)) > maxSize {
			return fmt.Errorf("line %d: %w: %q", d.line, ErrFileTooLarge, begin.path)
		}
		buf.Write(chunk)
		return nil
	}

	for {
		line, err := d.readLine(write)
		if err == io.EOF {
			return Entry{}, d.frameErr("missing end marker for %q", begin.path)
		}
		if err != nil {
			return Entry{}, err
		}
		if line == nil {
			continue // content line, already written
		}
		m, ok := parseMarker(strings.TrimSuffix(string(line), "\n"))
		if !ok {
			// A dashed line that is not a marker is ordinary content.
			if err := write(line); err != nil {
				return Entry{}, err
			}
			continue
		}
		if m.kind != markerEnd {
			return Entry{}, d.frameErr("marker for %q inside the open frame of %q", m.path, begin.path)
		}
		if m.path != begin.path || m.binary != begin.binary || m.noNewline != begin.noNewline {
			return Entry{}, d.frameErr("end marker does not match begin marker for %q", begin.path)
		}
		return d.finish(begin, buf.Bytes())
	}
}

// finish converts a buffered content block into the entry's bytes.
func (d *Decoder) finish(begin marker, block []byte) (Entry, error) {
	if begin.binary {
		// The base64 decoder skips CR and LF, so the block's line
		// terminator needs no stripping.
		content, err := base64.StdEncoding.DecodeString(string(block))
		if err != nil {
			return Entry{}, fmt.Errorf("line %d: %w: %q: %v", d.line, ErrCorruptContent, begin.path, err)
		}
		return Entry{Path: begin.path, Content: content}, nil
	}
	content := block
	if begin.noNewline && len(content) > 0 && content[len(content)-1] == '\n' {
		content = content[:len(content)-1]
	}
	return Entry{Path: begin.path, Content: content}, nil
}

// claimPath validates a marker path and records it for duplicate detection.
func (d *Decoder) claimPath(p string) error {
	if reason, traversal := checkPath(p); reason != "" {
		if traversal {
			return fmt.Errorf("line %d: %w: %q: %s", d.line, ErrPathTraversal, p, reason)
		}
		return d.frameErr("path %q: %s", p, reason)
	}
	if _, dup := d.seen[p]; dup {
		return fmt.Errorf("line %d: %w: %q", d.line, ErrDuplicatePath, p)
	}
	maxFiles := d.maxFiles
	if maxFiles == 0 {
		maxFiles = DefaultMaxFiles
	}
	if maxFiles > 0 && len(d.seen) >= maxFiles {
		return fmt.Errorf("line %d: %w (limit %d)", d.line, ErrTooManyFiles, maxFiles)
	}
	d.seen[p] = struct{}{}
	return nil
}

// frameErr builds an ErrMalformedHeader error tagged with the current line.
func (d *Decoder) frameErr(format string, args ...any) error {
	return fmt.Errorf("line %d: %w: %s", d.line, ErrMalformedHeader, fmt.Sprintf(format, args...))
}

// readLine reads one line. A line that could be a marker, meaning it
// starts with the marker prefix and stays within maxMarkerLine, comes
// back whole with its line ending intact. Every other line goes to sink
// chunk by chunk and the returned line is nil, so line length never
// drives memory use.
func (d *Decoder) readLine(sink func([]byte) error) ([]byte, error) {
	chunk, full, err := d.readLineChunk()
	if err != nil {
		return nil, err
	}
	if !bytes.HasPrefix(chunk, markerProbe) {
		return nil, d.spill(chunk, full, sink)
	}

	line := append([]byte(nil), chunk...)
	for !full && len(line) <= maxMarkerLine {
		chunk, full, err = d.readLineChunk()
		if err == io.EOF {
			full = true
			break
		}
		if err != nil {
			return nil, err
		}
		line = append(line, chunk...)
	}
	if len(line) > maxMarkerLine {
		return nil, d.spill(line, full, sink)
	}
	return line, nil
}

// spill hands chunk and the remainder of the current line to sink.
func (d *Decoder) spill(chunk []byte, full bool, sink func([]byte) error) error {
	for {
		if len(chunk) > 0 {
			if err := sink(chunk); err != nil {
				return err
			}
		}
		if full {
			return nil
		}
		var err error
		chunk, full, err = d.readLineChunk()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
	}
}

// readLineChunk returns the next chunk of the current line, at most one
// buffer's worth, newline included when it fits. full reports whether the
// chunk ends the line. The chunk is only valid until the next read. A
// final line with no newline is still delivered; the call after it
// reports io.EOF.
func (d *Decoder) readLineChunk() (chunk []byte, full bool, err error) {
	chunk, err = d.r.ReadSlice('\n')
	if len(chunk) > 0 && !d.midLine {
		d.line++
	}
	switch err {
	case nil:
		d.midLine = false
		return chunk, true, nil
	case bufio.ErrBufferFull:
		d.midLine = true
		return chunk, false, nil
	case io.EOF:
		if len(chunk) == 0 {
			return nil, false, io.EOF
		}
		d.midLine = false
		return chunk, true, nil
	default:
		return nil, false, err
	}
}
