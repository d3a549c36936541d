// Package audit runs the media usage pipeline over one presentation
// package: scan the media directory, index relationship files, resolve
// picture-shape names, optionally detect duplicates, then filter and
// select. All stages are pure single-pass transformations over a snapshot
// of package state; two runs over an unchanged package produce identical
// records.
package audit

import (
	"fmt"
	"io/fs"

	"github.com/bstardust/pptx-media-audit/internal/pptx"
	"github.com/bstardust/pptx-media-audit/pkg/models"
)

// Options configures one audit run.
type Options struct {
	Filter      KindFilter
	Mode        Mode // nil keeps the whole filtered set
	Dedupe      bool
	Exif        bool
	OrphansOnly bool
}

// Result is the outcome of one audit run: the selected records plus every
// diagnostic collected from recoverable per-part failures.
type Result struct {
	Records  []models.Record
	Images   map[string]models.ImageMeta // populated when Options.Exif
	Warnings []string
}

// Run executes the pipeline. Only an unreadable package root is fatal;
// every per-part failure surfaces as a warning on the result instead.
func Run(fsys fs.FS, opts Options) (*Result, error) {
	if _, err := fs.Stat(fsys, "."); err != nil {
		return nil, fmt.Errorf("package root unreadable: %w", err)
	}
	if opts.Filter == "" {
		opts.Filter = FilterAll
	}

	assets, err := pptx.ScanMedia(fsys)
	if err != nil {
		return nil, err
	}

	idx := pptx.BuildIndex(fsys)
	resolver := pptx.NewResolver(fsys)

	usage := Aggregate(assets, idx, resolver)

	records := make([]models.Record, 0, len(usage))
	for _, u := range usage {
		records = append(records, u.ToRecord())
	}

	warnings := append([]string{}, idx.Warnings...)
	warnings = append(warnings, resolver.Warnings()...)

	// Grouping runs over the full scanned set, before any filtering, so
	// duplicate counts reflect the whole package.
	if opts.Dedupe {
		warnings = append(warnings, NewDetector(fsys).Annotate(records)...)
	}

	if opts.OrphansOnly {
		orphans := records[:0]
		for _, rec := range records {
			if rec.Orphaned {
				orphans = append(orphans, rec)
			}
		}
		records = orphans
	}

	records = Select(records, opts.Filter, opts.Mode)

	result := &Result{Records: records, Warnings: warnings}
	if opts.Exif {
		result.Images = CollectImageMeta(fsys, records)
	}
	return result, nil
}
