package scrip

// Entry is a single item in a flattened document: a regular file with its
// content, or an empty directory.
type Entry struct {
	// Path is the slash-separated path relative to the tree root.
	Path string

	// Content holds the file's bytes. It is empty for directory entries.
	Content []byte

	// Dir marks the entry as an empty directory rather than a file.
	Dir bool
}
