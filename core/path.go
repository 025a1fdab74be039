package scrip

import (
	"strings"
	"unicode/utf8"
)

// NormalizePath converts a user-provided path to the slash-separated
// relative form stored in document markers.
//
// It performs the following transformations:
//   - Strips leading slashes: "/etc/nginx" → "etc/nginx"
//   - Strips trailing slashes: "etc/nginx/" → "etc/nginx"
//   - Collapses consecutive slashes: "etc//nginx" → "etc/nginx"
//   - Converts empty string to root: "" → "."
//   - Preserves root indicator: "/" → "."
//
// Note: This function does not resolve or validate path elements. Paths
// containing "." or ".." elements are preserved and will be rejected by
// the encoder.
func NormalizePath(p string) string {
	// Trim all leading and trailing slashes
	p = strings.Trim(p, "/")
	if p == "" {
		return "."
	}

	// Collapse consecutive slashes by splitting and rejoining.
	// This removes empty segments but preserves "." and ".." elements.
	parts := strings.Split(p, "/")
	result := parts[:0] // reuse backing array
	for _, part := range parts {
		if part != "" {
			result = append(result, part)
		}
	}
	if len(result) == 0 {
		return "."
	}
	return strings.Join(result, "/")
}

// checkPath reports why p cannot appear as a marker path; reason is empty
// for valid paths. traversal distinguishes paths that point outside the
// tree root from merely malformed ones.
//
// Valid paths are relative, slash-separated, UTF-8, free of characters
// that would break marker lines or change meaning across platforms, and
// do not end with a flag suffix the marker parser would strip.
func checkPath(p string) (reason string, traversal bool) {
	if p == "" {
		return "empty path", false
	}
	if p == "." {
		return "path is the tree root", false
	}
	if !utf8.ValidString(p) {
		return "not valid UTF-8", false
	}
	if strings.ContainsAny(p, "\x00\n\r") {
		return "contains control characters", false
	}
	if strings.HasPrefix(p, `\\`) {
		return "UNC path", true
	}
	if strings.HasPrefix(p, "/") {
		return "absolute path", true
	}
	if len(p) >= 2 && p[1] == ':' && isDriveLetter(p[0]) {
		return "drive-letter path", true
	}
	if strings.ContainsRune(p, '\\') {
		return "contains backslash", false
	}
	if strings.HasSuffix(p, BinaryMarker) || strings.HasSuffix(p, NoNewlineMarker) {
		return "ends with a reserved flag suffix", false
	}
	for _, seg := range strings.Split(p, "/") {
		switch seg {
		case "":
			return "empty path segment", false
		case ".":
			return `"." path segment`, false
		case "..":
			return `".." path segment`, true
		}
	}
	return "", false
}

func isDriveLetter(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}
