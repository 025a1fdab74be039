package scrip

import (
	"bytes"
	"strings"
)

// Marker line vocabulary. A marker line is a prefix, a path, an optional
// flag, and the closing " ---".
const (
	BeginFilePrefix = "--- BEGIN FILE: "
	EndFilePrefix   = "--- END FILE: "
	EmptyDirPrefix  = "--- EMPTY DIR: "
	MarkerSuffix    = " ---"

	// BinaryMarker flags an entry whose content block is a single line of
	// standard base64 rather than verbatim text.
	BinaryMarker = " (BINARY - BASE64 ENCODED)"

	// NoNewlineMarker flags a text entry whose content did not end with a
	// newline. The encoder appends one so the end marker starts at column
	// zero; the decoder strips it again.
	NoNewlineMarker = " (NO FINAL NEWLINE)"
)

// markerKind discriminates the three marker forms.
type markerKind uint8

const (
	markerBegin markerKind = iota
	markerEnd
	markerEmptyDir
)

// marker is a parsed marker line. The path is taken verbatim from the line
// and has not been validated.
type marker struct {
	kind      markerKind
	path      string
	binary    bool
	noNewline bool
}

// parseMarker interprets line, without its trailing newline, as a marker.
// A single trailing carriage return is tolerated so documents that went
// through CRLF translation still parse.
func parseMarker(line string) (marker, bool) {
	line = strings.TrimSuffix(line, "\r")

	var m marker
	var rest string
	var ok bool
	switch {
	case strings.HasPrefix(line, BeginFilePrefix):
		m.kind = markerBegin
		rest = line[len(BeginFilePrefix):]
	case strings.HasPrefix(line, EndFilePrefix):
		m.kind = markerEnd
		rest = line[len(EndFilePrefix):]
	case strings.HasPrefix(line, EmptyDirPrefix):
		m.kind = markerEmptyDir
		rest = line[len(EmptyDirPrefix):]
	default:
		return marker{}, false
	}

	rest, ok = strings.CutSuffix(rest, MarkerSuffix)
	if !ok {
		return marker{}, false
	}

	// Directory markers carry no flags; a flag-like suffix stays part of
	// the path and is rejected during path validation.
	if m.kind != markerEmptyDir {
		if p, found := strings.CutSuffix(rest, BinaryMarker); found {
			rest, m.binary = p, true
		} else if p, found := strings.CutSuffix(rest, NoNewlineMarker); found {
			rest, m.noNewline = p, true
		}
	}
	m.path = rest
	return m, true
}

var markerProbe = []byte("--- ")

// isMarkerLine reports whether line would be read back as a marker. The
// encoder uses the same predicate as the decoder so a content line is
// either safe for both or base64-framed.
func isMarkerLine(line []byte) bool {
	if !bytes.HasPrefix(line, markerProbe) {
		return false
	}
	_, ok := parseMarker(string(line))
	return ok
}

// containsMarkerLine reports whether any line of content would be mistaken
// for a marker when read back.
func containsMarkerLine(content []byte) bool {
	for len(content) > 0 {
		line := content
		if i := bytes.IndexByte(content, '\n'); i >= 0 {
			line = content[:i]
			content = content[i+1:]
		} else {
			content = nil
		}
		if isMarkerLine(line) {
			return true
		}
	}
	return false
}
