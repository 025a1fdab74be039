package scrip

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMarker(t *testing.T) {
	tests := []struct {
		name string
		line string
		want marker
		ok   bool
	}{
		{"begin", "--- BEGIN FILE: a/b.txt ---", marker{kind: markerBegin, path: "a/b.txt"}, true},
		{"end", "--- END FILE: a/b.txt ---", marker{kind: markerEnd, path: "a/b.txt"}, true},
		{"empty dir", "--- EMPTY DIR: a/b ---", marker{kind: markerEmptyDir, path: "a/b"}, true},
		{"binary flag", "--- BEGIN FILE: img.png (BINARY - BASE64 ENCODED) ---", marker{kind: markerBegin, path: "img.png", binary: true}, true},
		{"no newline flag", "--- END FILE: a.txt (NO FINAL NEWLINE) ---", marker{kind: markerEnd, path: "a.txt", noNewline: true}, true},
		{"carriage return", "--- BEGIN FILE: a.txt ---\r", marker{kind: markerBegin, path: "a.txt"}, true},
		{"path with spaces", "--- BEGIN FILE: my file.txt ---", marker{kind: markerBegin, path: "my file.txt"}, true},
		{"path ending with dashes", "--- BEGIN FILE: x --- ---", marker{kind: markerBegin, path: "x ---"}, true},
		{"empty path", "--- BEGIN FILE:  ---", marker{kind: markerBegin, path: ""}, true},
		{"dir flag kept in path", "--- EMPTY DIR: d (BINARY - BASE64 ENCODED) ---", marker{kind: markerEmptyDir, path: "d (BINARY - BASE64 ENCODED)"}, true},
		{"plain text", "hello world", marker{}, false},
		{"missing suffix", "--- BEGIN FILE: a.txt", marker{}, false},
		{"prefix overlaps suffix", "--- BEGIN FILE: ---", marker{}, false},
		{"prefix only", "--- BEGIN FILE: ", marker{}, false},
		{"unknown verb", "--- BEGIN DIR: a ---", marker{}, false},
		{"indented", " --- BEGIN FILE: a.txt ---", marker{}, false},
		{"dashes only", "------", marker{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := parseMarker(tt.line)
			require.Equal(t, tt.ok, ok)
			if ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestContainsMarkerLine(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    bool
	}{
		{"plain text", "hello\nworld\n", false},
		{"dashes but not a marker", "--- section break ---\n", false},
		{"begin marker", "text\n--- BEGIN FILE: x ---\nmore\n", true},
		{"end marker without newline", "--- END FILE: x ---", true},
		{"empty dir marker crlf", "--- EMPTY DIR: d ---\r\n", true},
		{"marker mid line", "see --- BEGIN FILE: x --- here\n", false},
		{"empty", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, containsMarkerLine([]byte(tt.content)))
		})
	}
}
