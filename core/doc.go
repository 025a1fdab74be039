// Package scrip implements the flattened document format: a directory
// tree serialized into a single plain-text stream and back.
//
// A document is a sequence of framed entries:
//
//	--- BEGIN FILE: path/to/file.txt ---
//	file content
//	--- END FILE: path/to/file.txt ---
//	--- EMPTY DIR: path/to/dir ---
//
// Content that cannot be embedded verbatim is framed as a single base64
// line and both markers carry the " (BINARY - BASE64 ENCODED)" flag. Text
// content with no final newline gets one appended and the markers carry
// the " (NO FINAL NEWLINE)" flag so the decoder can strip it again.
//
// Encoder and Decoder operate on streams of entries. For whole-tree
// operations backed by the filesystem, use Flatten and Restore in the
// root package.
package scrip
