package scrip

import "log/slog"

// restoreConfig holds configuration for a Restore call.
type restoreConfig struct {
	logger      *slog.Logger
	progress    ProgressFunc
	maxFiles    int
	maxFileSize int64
}

// RestoreOption configures a Restore call.
type RestoreOption func(*restoreConfig)

// RestoreWithLogger sets the logger for debug and info output.
// By default nothing is logged.
func RestoreWithLogger(logger *slog.Logger) RestoreOption {
	return func(cfg *restoreConfig) {
		cfg.logger = logger
	}
}

// RestoreWithProgress sets a callback that receives progress events while
// decoding and extracting.
func RestoreWithProgress(fn ProgressFunc) RestoreOption {
	return func(cfg *restoreConfig) {
		cfg.progress = fn
	}
}

// RestoreWithMaxFiles limits the number of entries accepted from the
// document. Zero uses DefaultMaxFiles. Negative means no limit.
func RestoreWithMaxFiles(n int) RestoreOption {
	return func(cfg *restoreConfig) {
		cfg.maxFiles = n
	}
}

// RestoreWithMaxFileSize limits the stored size in bytes of a single
// entry's content block. Zero uses DefaultMaxFileSize. Negative means no
// limit.
func RestoreWithMaxFileSize(n int64) RestoreOption {
	return func(cfg *restoreConfig) {
		cfg.maxFileSize = n
	}
}
