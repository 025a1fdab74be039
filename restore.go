package scrip

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	scripcore "github.com/meigma/scrip/core"
	"github.com/meigma/scrip/internal/treeops"
)

// Restore reads a flattened document from r and materializes its entries
// under dir, creating dir if needed.
//
// The whole document is decoded and validated before anything touches the
// filesystem, so a malformed or hostile document cannot leave behind a
// half-written tree. Existing files at entry paths are overwritten;
// files not named by the document are left alone.
//
// The context can be used for cancellation of long-running restores.
func Restore(ctx context.Context, r io.Reader, dir string, opts ...RestoreOption) error {
	cfg := restoreConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}

	rs := &restorer{cfg: cfg}
	rs.log().Info("restoring document", "dir", dir)

	var decOpts []scripcore.DecoderOption
	if cfg.maxFiles != 0 {
		decOpts = append(decOpts, scripcore.DecoderWithMaxFiles(cfg.maxFiles))
	}
	if cfg.maxFileSize != 0 {
		decOpts = append(decOpts, scripcore.DecoderWithMaxFileSize(cfg.maxFileSize))
	}
	dec := scripcore.NewDecoder(r, decOpts...)

	var entries []scripcore.Entry
	var bytesDone uint64
	for {
		ent, err := dec.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		entries = append(entries, ent)
		bytesDone += uint64(len(ent.Content))
		rs.reportProgress(StageDecoding, ent.Path, bytesDone, len(entries), 0)
	}

	rs.log().Debug("document decoded", "entry_count", len(entries), "content_bytes", bytesDone)

	sink, err := treeops.NewSink(dir)
	if err != nil {
		return err
	}
	defer sink.Close()

	var extracted uint64
	for i, ent := range entries {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := sink.Put(ent); err != nil {
			return fmt.Errorf("write %s: %w", ent.Path, err)
		}
		extracted += uint64(len(ent.Content))
		rs.reportProgress(StageExtracting, ent.Path, extracted, i+1, len(entries))
	}

	return nil
}

// restorer holds state for one Restore call.
type restorer struct {
	cfg restoreConfig
}

// reportProgress sends a progress event if a callback is configured.
func (rs *restorer) reportProgress(stage ProgressStage, path string, bytesDone uint64, filesDone, filesTotal int) {
	if rs.cfg.progress == nil {
		return
	}
	rs.cfg.progress(ProgressEvent{
		Stage:      stage,
		Path:       path,
		BytesDone:  bytesDone,
		FilesDone:  filesDone,
		FilesTotal: filesTotal,
	})
}

// log returns the logger, falling back to a discard logger if nil.
func (rs *restorer) log() *slog.Logger {
	if rs.cfg.logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return rs.cfg.logger
}
