// Package exporter copies selected media assets out of a presentation
// package into S3-compatible storage.
package exporter

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"path"

	"github.com/bstardust/pptx-media-audit/internal/config"
	"github.com/bstardust/pptx-media-audit/internal/fileinfo"
	"github.com/bstardust/pptx-media-audit/internal/journal"
	"github.com/bstardust/pptx-media-audit/internal/logger"
	"github.com/bstardust/pptx-media-audit/internal/pptx"
	"github.com/bstardust/pptx-media-audit/internal/progress"
	"github.com/bstardust/pptx-media-audit/internal/worker"
	"github.com/bstardust/pptx-media-audit/pkg/models"
)

// ObjectStore is the subset of the S3 client the exporter needs.
type ObjectStore interface {
	UploadFile(ctx context.Context, reader io.Reader, objectKey string, size int64, metadata map[string]string, contentType string) error
	ObjectExists(ctx context.Context, objectKey string) (bool, error)
}

// Exporter uploads audit-selected media to an object store.
type Exporter struct {
	ctx      context.Context
	store    ObjectStore
	fsys     fs.FS
	records  []models.Record
	journal  *journal.Journal
	pool     *worker.Pool
	progress *progress.Reporter
	config   *config.Config
	retry    RetryConfig
}

// New creates a new Exporter
func New(ctx context.Context, store ObjectStore, fsys fs.FS, records []models.Record,
	jnl *journal.Journal, pool *worker.Pool, progress *progress.Reporter,
	cfg *config.Config) *Exporter {
	return &Exporter{
		ctx:      ctx,
		store:    store,
		fsys:     fsys,
		records:  records,
		journal:  jnl,
		pool:     pool,
		progress: progress,
		config:   cfg,
		retry:    DefaultRetryConfig(),
	}
}

// Run exports every record, skipping assets already exported (per journal)
// or already present in the bucket when configured to.
func (e *Exporter) Run() error {
	e.progress.Start(len(e.records))

	for _, rec := range e.records {
		if e.ctx.Err() != nil {
			return e.ctx.Err()
		}

		rec := rec

		if e.config.Export.Resume && e.journal.IsExported(rec.FileName) {
			e.progress.Skip(rec.FileName)
			continue
		}

		if e.config.Export.SkipExisting {
			exists, err := e.store.ObjectExists(e.ctx, rec.FileName)
			if err != nil {
				logger.Warn("Failed to check if %s exists: %v", rec.FileName, err)
			} else if exists {
				e.progress.Skip(rec.FileName)
				e.journal.MarkExported(rec.FileName, rec.FileName)
				continue
			}
		}

		e.pool.Submit(func() {
			if err := e.exportAsset(rec); err != nil {
				logger.Error("Failed to export %s: %v", rec.FileName, err)
				e.progress.Error(rec.FileName, err)
			} else {
				e.progress.Complete(rec.FileName)
				e.journal.MarkExported(rec.FileName, rec.FileName)
			}
		})
	}

	e.pool.Wait()
	e.progress.Finish()

	if err := e.journal.Save(); err != nil {
		logger.Warn("Failed to save journal: %v", err)
	}
	return nil
}

// exportAsset uploads one media asset.
func (e *Exporter) exportAsset(rec models.Record) error {
	mediaPath := path.Join(pptx.MediaDir, rec.FileName)

	contentType := fileinfo.DetectContentType(rec.FileName)

	metadata := map[string]string{
		"source-slides": rec.Slides,
		"orphaned":      fmt.Sprintf("%t", rec.Orphaned),
	}
	if rec.ContentHash != "" {
		metadata["content-hash"] = rec.ContentHash
	}

	if e.config.Export.DryRun {
		logger.Info("DRY RUN: would export %s (%d bytes, %s)", rec.FileName, rec.SizeBytes, contentType)
		return nil
	}

	return RetryWithBackoff(e.ctx, "export "+rec.FileName, func() error {
		file, err := e.fsys.Open(mediaPath)
		if err != nil {
			return fmt.Errorf("failed to open media file: %w", err)
		}
		defer file.Close()

		return e.store.UploadFile(e.ctx, file, rec.FileName, rec.SizeBytes, metadata, contentType)
	}, e.retry)
}
