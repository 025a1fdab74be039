package scrip

import scripcore "github.com/meigma/scrip/core"

// Errors re-exported from core.
var (
	// ErrInvalidPath is returned when an entry path cannot be represented
	// in a document marker.
	ErrInvalidPath = scripcore.ErrInvalidPath

	// ErrPathTraversal is returned when a path would resolve outside the
	// tree root.
	ErrPathTraversal = scripcore.ErrPathTraversal

	// ErrUnencodableContent is returned in text-only mode when content
	// cannot be embedded verbatim.
	ErrUnencodableContent = scripcore.ErrUnencodableContent

	// ErrMalformedHeader is returned when a marker sequence is
	// structurally invalid.
	ErrMalformedHeader = scripcore.ErrMalformedHeader

	// ErrDuplicatePath is returned when a document declares the same path
	// twice.
	ErrDuplicatePath = scripcore.ErrDuplicatePath

	// ErrCorruptContent is returned when a content block cannot be
	// decoded.
	ErrCorruptContent = scripcore.ErrCorruptContent

	// ErrTooManyFiles is returned when a document or tree exceeds the
	// configured entry limit.
	ErrTooManyFiles = scripcore.ErrTooManyFiles

	// ErrFileTooLarge is returned when an entry's content block exceeds
	// the configured size limit.
	ErrFileTooLarge = scripcore.ErrFileTooLarge
)
