package audit

import (
	"io/fs"
	"path"
	"time"

	"github.com/bstardust/pptx-media-audit/internal/exif"
	"github.com/bstardust/pptx-media-audit/internal/fileinfo"
	"github.com/bstardust/pptx-media-audit/internal/logger"
	"github.com/bstardust/pptx-media-audit/internal/pptx"
	"github.com/bstardust/pptx-media-audit/pkg/models"
)

// CollectImageMeta extracts camera metadata for the image assets among the
// given records. Images without EXIF (the common case for re-encoded
// presentation media) are simply absent from the result.
func CollectImageMeta(fsys fs.FS, records []models.Record) map[string]models.ImageMeta {
	meta := make(map[string]models.ImageMeta)
	for _, rec := range records {
		if rec.Kind != string(fileinfo.KindImage) {
			continue
		}
		file, err := fsys.Open(path.Join(pptx.MediaDir, rec.FileName))
		if err != nil {
			logger.Debug("no image metadata for %s: %v", rec.FileName, err)
			continue
		}
		data, err := exif.Extract(file)
		file.Close()
		if err != nil {
			logger.Debug("no EXIF in %s: %v", rec.FileName, err)
			continue
		}

		m := models.ImageMeta{
			CameraMake:  data.Make,
			CameraModel: data.Model,
		}
		if data.DateTime != nil {
			m.TakenAt = data.DateTime.Format(time.RFC3339)
		}
		if m != (models.ImageMeta{}) {
			meta[rec.FileName] = m
		}
	}
	return meta
}
