package scrip

import "log/slog"

// flattenConfig holds configuration for a Flatten call.
type flattenConfig struct {
	logger   *slog.Logger
	progress ProgressFunc
	excludes []string
	maxFiles int
	textOnly bool
}

// FlattenOption configures a Flatten call.
type FlattenOption func(*flattenConfig)

// FlattenWithLogger sets the logger for debug and info output.
// By default nothing is logged.
func FlattenWithLogger(logger *slog.Logger) FlattenOption {
	return func(cfg *flattenConfig) {
		cfg.logger = logger
	}
}

// FlattenWithProgress sets a callback that receives progress events while
// walking and encoding.
func FlattenWithProgress(fn ProgressFunc) FlattenOption {
	return func(cfg *flattenConfig) {
		cfg.progress = fn
	}
}

// FlattenWithExclude adds path.Match patterns for entries to omit. Each
// pattern is tested against the entry's slash path and its base name;
// a matching directory is pruned with its whole subtree.
func FlattenWithExclude(patterns ...string) FlattenOption {
	return func(cfg *flattenConfig) {
		cfg.excludes = append(cfg.excludes, patterns...)
	}
}

// FlattenWithMaxFiles limits the number of entries in the document.
// Zero uses DefaultMaxFiles. Negative means no limit.
func FlattenWithMaxFiles(n int) FlattenOption {
	return func(cfg *flattenConfig) {
		cfg.maxFiles = n
	}
}

// FlattenWithTextOnly makes Flatten fail with ErrUnencodableContent when
// it meets content that would need base64 framing, instead of encoding
// it. Use it when the document must stay human-readable end to end.
func FlattenWithTextOnly(enabled bool) FlattenOption {
	return func(cfg *flattenConfig) {
		cfg.textOnly = enabled
	}
}
