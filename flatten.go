package scrip

import (
	"context"
	"io"
	"log/slog"
	"os"

	scripcore "github.com/meigma/scrip/core"
	"github.com/meigma/scrip/internal/treeops"
)

// Flatten walks dir and writes its files and empty directories to w as a
// flattened document.
//
// Entries appear in fs.WalkDir order: lexical within each directory,
// parents before their children. Symbolic links are not followed.
// Excluded entries are omitted; excluding a directory prunes its whole
// subtree.
//
// The context can be used for cancellation of long-running walks.
func Flatten(ctx context.Context, dir string, w io.Writer, opts ...FlattenOption) error {
	cfg := flattenConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := treeops.ValidatePatterns(cfg.excludes); err != nil {
		return err
	}

	root, err := os.OpenRoot(dir)
	if err != nil {
		return err
	}
	defer root.Close()

	f := &flattener{cfg: cfg}
	f.log().Info("flattening directory", "dir", dir, "exclude_count", len(cfg.excludes))

	var encOpts []scripcore.EncoderOption
	if cfg.textOnly {
		encOpts = append(encOpts, scripcore.EncoderWithTextOnly(true))
	}
	if cfg.maxFiles != 0 {
		encOpts = append(encOpts, scripcore.EncoderWithMaxFiles(cfg.maxFiles))
	}
	enc := scripcore.NewEncoder(w, encOpts...)

	walker := &treeops.Walker{
		Root:     root,
		Excludes: cfg.excludes,
		MaxFiles: cfg.maxFiles,
		Logger:   cfg.logger,
	}

	f.reportProgress(StageEnumerating, "", 0, 0, 0)

	files := 0
	var bytesDone uint64
	err = walker.Walk(ctx, func(e scripcore.Entry) error {
		if err := enc.WriteEntry(e); err != nil {
			return err
		}
		files++
		bytesDone += uint64(len(e.Content))
		f.reportProgress(StageEncoding, e.Path, bytesDone, files, 0)
		return nil
	})
	if err != nil {
		return err
	}

	f.log().Debug("document written", "entry_count", files, "content_bytes", bytesDone)
	return nil
}

// flattener holds state for one Flatten call.
type flattener struct {
	cfg flattenConfig
}

// reportProgress sends a progress event if a callback is configured.
func (f *flattener) reportProgress(stage ProgressStage, path string, bytesDone uint64, filesDone, filesTotal int) {
	if f.cfg.progress == nil {
		return
	}
	f.cfg.progress(ProgressEvent{
		Stage:      stage,
		Path:       path,
		BytesDone:  bytesDone,
		FilesDone:  filesDone,
		FilesTotal: filesTotal,
	})
}

// log returns the logger, falling back to a discard logger if nil.
func (f *flattener) log() *slog.Logger {
	if f.cfg.logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return f.cfg.logger
}
