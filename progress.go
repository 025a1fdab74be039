package scrip

// ProgressEvent represents a progress update during flatten and restore
// operations.
type ProgressEvent struct {
	// Stage identifies the current phase of the operation.
	Stage ProgressStage

	// Path is the entry currently being processed, if applicable.
	Path string

	// BytesDone is the number of content bytes completed so far.
	BytesDone uint64

	// FilesDone is the number of entries completed.
	FilesDone int

	// FilesTotal is the total number of entries.
	// Zero indicates the total is unknown (e.g., while walking).
	FilesTotal int
}

// ProgressStage identifies the current phase of an operation.
type ProgressStage uint8

// Progress stages for flatten and restore operations.
const (
	// StageEnumerating indicates the operation is walking the directory tree.
	StageEnumerating ProgressStage = iota

	// StageEncoding indicates entries are being written to the document.
	StageEncoding

	// StageDecoding indicates entries are being read from the document.
	StageDecoding

	// StageExtracting indicates entries are being written to the filesystem.
	StageExtracting
)

// String returns the string representation of the stage.
func (s ProgressStage) String() string {
	switch s {
	case StageEnumerating:
		return "enumerating"
	case StageEncoding:
		return "encoding"
	case StageDecoding:
		return "decoding"
	case StageExtracting:
		return "extracting"
	default:
		return "unknown"
	}
}

// ProgressFunc receives progress updates during operations. Calls arrive
// sequentially, in entry order.
type ProgressFunc func(ProgressEvent)
