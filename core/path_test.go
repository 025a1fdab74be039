package scrip

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePath(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"leading slash", "/etc/nginx", "etc/nginx"},
		{"trailing slash", "etc/nginx/", "etc/nginx"},
		{"both slashes", "/etc/nginx/", "etc/nginx"},
		{"empty string", "", "."},
		{"root slash", "/", "."},
		{"dot", ".", "."},
		{"simple", "foo", "foo"},
		{"nested path", "/foo/bar/baz", "foo/bar/baz"},
		{"nested with trailing", "foo/bar/baz/", "foo/bar/baz"},
		// Multiple slashes
		{"multiple leading slashes", "///etc/nginx", "etc/nginx"},
		{"multiple trailing slashes", "etc/nginx///", "etc/nginx"},
		{"multiple slashes both ends", "///etc/nginx///", "etc/nginx"},
		{"only slashes", "///", "."},
		{"internal double slashes", "etc//nginx", "etc/nginx"},
		{"internal multiple slashes", "etc///nginx//conf", "etc/nginx/conf"},
		{"mixed slashes everywhere", "//etc//nginx//", "etc/nginx"},
		// Dot and dotdot segments are preserved (for checkPath to reject)
		{"dotdot in middle", "a/../b", "a/../b"},
		{"dotdot at start", "../etc", "../etc"},
		{"dotdot only", "..", ".."},
		{"dot in middle", "a/./b", "a/./b"},
		{"dotdot with slashes", "//a//..//b//", "a/../b"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizePath(tt.input)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCheckPath(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		valid     bool
		traversal bool
	}{
		{"simple file", "foo.txt", true, false},
		{"nested", "a/b/c.txt", true, false},
		{"unicode", "docs/héllo.txt", true, false},
		{"spaces", "my file.txt", true, false},
		{"leading dashes", "--- notes.txt", true, false},
		{"trailing dashes", "x ---", true, false},
		{"flag text inside", "notes (BINARY - BASE64 ENCODED).txt", true, false},
		{"empty", "", false, false},
		{"root dot", ".", false, false},
		{"absolute", "/etc/passwd", false, true},
		{"dotdot leading", "../escape.txt", false, true},
		{"dotdot middle", "a/../b.txt", false, true},
		{"dotdot only", "..", false, true},
		{"drive letter", "C:/windows/system32", false, true},
		{"drive letter relative", "c:temp", false, true},
		{"drive letter backslash", `C:\temp\x.txt`, false, true},
		{"unc path", `\\server\share`, false, true},
		{"backslash", `a\b.txt`, false, false},
		{"newline", "a\nb", false, false},
		{"carriage return", "a\rb", false, false},
		{"nul byte", "a\x00b", false, false},
		{"dot segment", "./a", false, false},
		{"inner dot segment", "a/./b", false, false},
		{"empty segment", "a//b", false, false},
		{"trailing slash", "a/", false, false},
		{"invalid utf8", "a\xffb", false, false},
		{"binary flag suffix", "evil (BINARY - BASE64 ENCODED)", false, false},
		{"newline flag suffix", "evil (NO FINAL NEWLINE)", false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reason, traversal := checkPath(tt.input)
			if tt.valid {
				assert.Empty(t, reason)
			} else {
				assert.NotEmpty(t, reason)
			}
			assert.Equal(t, tt.traversal, traversal)
		})
	}
}
