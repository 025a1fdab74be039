// Package scrip flattens a directory tree into a single plain-text
// document and restores the tree from that document.
//
// The format is line-oriented and survives copy-paste through chats,
// code review comments, and tickets. Each file sits between a begin and
// an end marker; an empty directory is a single marker line:
//
//	--- BEGIN FILE: src/main.go ---
//	package main
//	--- END FILE: src/main.go ---
//	--- EMPTY DIR: logs ---
//
// Content that cannot be embedded verbatim (NUL bytes, invalid UTF-8, or
// a line that would read back as a marker) is stored as one base64 line
// and the markers carry a " (BINARY - BASE64 ENCODED)" flag. Text with no
// final newline gets one appended and the markers carry a
// " (NO FINAL NEWLINE)" flag, keeping the round trip byte-exact.
//
// # Quick Start
//
// Flatten a directory into a document:
//
//	var buf bytes.Buffer
//	err := scrip.Flatten(ctx, "./src", &buf,
//	    scrip.FlattenWithExclude(".git", "node_modules"),
//	)
//
// Restore it somewhere else:
//
//	err = scrip.Restore(ctx, &buf, "./src-copy")
//
// For entry-level control, use the Encoder and Decoder from the core
// subpackage; this package re-exports the common types and options.
//
// # Safety
//
// The decoder validates every path before Restore touches the
// filesystem and rejects documents with traversal paths, duplicates, or
// malformed markers. All writes go through an os.Root scoped to the
// destination, so even a path that slipped past validation cannot escape
// it. Existing files at entry paths are overwritten.
package scrip
