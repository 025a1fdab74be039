package scrip

import scripcore "github.com/meigma/scrip/core"

// Re-export codec types from core for the public API.
type (
	// Entry is a single item in a flattened document: a regular file
	// with its content, or an empty directory.
	Entry = scripcore.Entry

	// Encoder writes entries to a flattened document.
	Encoder = scripcore.Encoder

	// EncoderOption configures an Encoder.
	EncoderOption = scripcore.EncoderOption

	// Decoder reads entries back out of a flattened document.
	Decoder = scripcore.Decoder

	// DecoderOption configures a Decoder.
	DecoderOption = scripcore.DecoderOption
)

// Constructors re-exported from core.
var (
	NewEncoder = scripcore.NewEncoder
	NewDecoder = scripcore.NewDecoder
)

// Encoder and decoder options re-exported from core.
var (
	EncoderWithTextOnly    = scripcore.EncoderWithTextOnly
	EncoderWithMaxFiles    = scripcore.EncoderWithMaxFiles
	DecoderWithMaxFiles    = scripcore.DecoderWithMaxFiles
	DecoderWithMaxFileSize = scripcore.DecoderWithMaxFileSize
)

// NormalizePath converts a user-provided path to the slash-separated
// relative form stored in document markers.
var NormalizePath = scripcore.NormalizePath

// DefaultMaxFiles is the default limit used when no MaxFiles option is set.
const DefaultMaxFiles = scripcore.DefaultMaxFiles

// DefaultMaxFileSize is the default per-entry content block limit (256 MiB)
// used when no MaxFileSize option is set.
const DefaultMaxFileSize = scripcore.DefaultMaxFileSize

// Marker line vocabulary re-exported from core.
const (
	BeginFilePrefix = scripcore.BeginFilePrefix
	EndFilePrefix   = scripcore.EndFilePrefix
	EmptyDirPrefix  = scripcore.EmptyDirPrefix
	MarkerSuffix    = scripcore.MarkerSuffix
	BinaryMarker    = scripcore.BinaryMarker
	NoNewlineMarker = scripcore.NoNewlineMarker
)
