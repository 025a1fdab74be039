package scrip

import "errors"

// Sentinel errors returned by the encoder and decoder. Wrapped errors carry
// the offending path and, on decode, the document line number; use errors.Is
// to classify.
var (
	// ErrInvalidPath indicates an entry path that cannot be represented in a
	// document marker.
	ErrInvalidPath = errors.New("scrip: invalid path")

	// ErrPathTraversal indicates a path that would resolve outside the tree
	// root, such as an absolute path or one containing ".." elements.
	ErrPathTraversal = errors.New("scrip: path escapes tree root")

	// ErrUnencodableContent indicates content that cannot be embedded
	// verbatim while the encoder is in text-only mode.
	ErrUnencodableContent = errors.New("scrip: content not representable as text")

	// ErrMalformedHeader indicates a structurally invalid marker sequence,
	// such as an end marker with no matching begin or a frame left open at
	// end of input.
	ErrMalformedHeader = errors.New("scrip: malformed marker")

	// ErrDuplicatePath indicates a document that declares the same path
	// twice.
	ErrDuplicatePath = errors.New("scrip: duplicate path")

	// ErrCorruptContent indicates a content block that cannot be decoded,
	// such as an invalid base64 payload.
	ErrCorruptContent = errors.New("scrip: corrupt content block")

	// ErrTooManyFiles indicates a document or tree that exceeds the
	// configured entry limit.
	ErrTooManyFiles = errors.New("scrip: too many files")

	// ErrFileTooLarge indicates an entry whose content block exceeds the
	// configured size limit.
	ErrFileTooLarge = errors.New("scrip: file exceeds size limit")
)
