package worker

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"tmxconv/internal/tmx"
	"tmxconv/internal/writer"
)

// processSequential converts files one at a time. Per-file failures are
// logged and counted; only cancellation stops the batch.
func processSequential(ctx context.Context, files []string, sink writer.Sink, opts Options) (*Summary, error) {
	log := opts.logger()
	summary := &Summary{}

	for i, path := range files {
		select {
		case <-ctx.Done():
			return summary, ctx.Err()
		default:
		}

		log.Info("processing file",
			"progress", fmt.Sprintf("%d/%d", i+1, len(files)),
			"name", filepath.Base(path))
		summary.Files++

		if err := convertFile(path, sink, opts, summary); err != nil {
			summary.Failed++
			var (
				serr *tmx.SanitizeError
				perr *tmx.ParseError
			)
			switch {
			case errors.As(err, &serr):
				log.Error("sanitize failed, skipping file", "name", filepath.Base(path), "err", err)
			case errors.As(err, &perr):
				log.Error("parse failed, skipping file", "name", filepath.Base(path), "err", err)
			default:
				log.Error("conversion failed, skipping file", "name", filepath.Base(path), "err", err)
			}
			continue
		}

		log.Info("file completed", "progress", fmt.Sprintf("%d/%d", i+1, len(files)))
	}

	return summary, nil
}
