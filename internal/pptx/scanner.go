package pptx

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bstardust/pptx-media-audit/internal/fileinfo"
	"github.com/bstardust/pptx-media-audit/internal/logger"
)

// MediaAsset describes one file found in the package media directory.
// Values are built once during the scan and not mutated afterwards.
type MediaAsset struct {
	FileName  string
	Extension string // lowercased, with leading dot
	Kind      fileinfo.Kind
	SizeBytes int64
}

// ScanMedia enumerates the regular files directly under ppt/media. A
// package without a media directory simply has no embedded media; that is
// reported as an empty list, not an error.
func ScanMedia(fsys fs.FS) ([]MediaAsset, error) {
	entries, err := fs.ReadDir(fsys, MediaDir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			logger.Info("package has no %s directory, no embedded media", MediaDir)
			return nil, nil
		}
		return nil, fmt.Errorf("reading media directory: %w", err)
	}

	assets := make([]MediaAsset, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			logger.Warn("skipping %s: %v", entry.Name(), err)
			continue
		}
		name := entry.Name()
		assets = append(assets, MediaAsset{
			FileName:  name,
			Extension: strings.ToLower(filepath.Ext(name)),
			Kind:      fileinfo.KindOf(name),
			SizeBytes: info.Size(),
		})
	}

	// fs.ReadDir already sorts, but downstream ordering contracts lean on
	// this, so keep it explicit.
	sort.Slice(assets, func(i, j int) bool { return assets[i].FileName < assets[j].FileName })
	return assets, nil
}
