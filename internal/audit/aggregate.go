package audit

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/bstardust/pptx-media-audit/internal/pptx"
	"github.com/bstardust/pptx-media-audit/pkg/models"
)

// UsageRecord describes where one media asset is used in the package.
type UsageRecord struct {
	Asset        pptx.MediaAsset
	SlideNumbers []int    // ascending, unique
	OtherRefs    []string // "Class:N", sorted
	ShapeHints   string
	Orphaned     bool
}

// NameResolver supplies picture-shape display names per (slide, file).
type NameResolver interface {
	Names(slideNum int, fileName string) []string
}

// Aggregate merges the usage indexes with resolved shape names into one
// UsageRecord per asset. Orphaned is derived from the two reference lists
// and never stored independently.
func Aggregate(assets []pptx.MediaAsset, idx *pptx.Index, resolver NameResolver) []UsageRecord {
	records := make([]UsageRecord, 0, len(assets))
	for _, asset := range assets {
		slides := idx.SlideUsage[asset.FileName]
		others := idx.OtherUsage[asset.FileName]

		records = append(records, UsageRecord{
			Asset:        asset,
			SlideNumbers: slides,
			OtherRefs:    others,
			ShapeHints:   shapeHints(asset.FileName, slides, resolver),
			Orphaned:     len(slides) == 0 && len(others) == 0,
		})
	}
	return records
}

// shapeHints builds the per-slide hint string, e.g.
// "9: Picture 21 | 10: Picture 3". A slide whose shapes resolve to no name
// contributes just its number.
func shapeHints(fileName string, slides []int, resolver NameResolver) string {
	if len(slides) == 0 {
		return ""
	}
	hints := make([]string, 0, len(slides))
	for _, n := range slides {
		names := resolver.Names(n, fileName)
		if len(names) == 0 {
			hints = append(hints, strconv.Itoa(n))
			continue
		}
		hints = append(hints, fmt.Sprintf("%d: %s", n, strings.Join(names, ", ")))
	}
	return strings.Join(hints, " | ")
}

// ToRecord converts a UsageRecord into the reporting contract shape.
func (u UsageRecord) ToRecord() models.Record {
	slideStrs := make([]string, len(u.SlideNumbers))
	for i, n := range u.SlideNumbers {
		slideStrs[i] = strconv.Itoa(n)
	}
	return models.Record{
		FileName:       u.Asset.FileName,
		Kind:           string(u.Asset.Kind),
		Extension:      u.Asset.Extension,
		SizeKB:         roundKB(u.Asset.SizeBytes),
		SizeBytes:      u.Asset.SizeBytes,
		Slides:         strings.Join(slideStrs, ","),
		OtherRefs:      strings.Join(u.OtherRefs, " | "),
		ShapeHints:     u.ShapeHints,
		Orphaned:       u.Orphaned,
		DuplicateCount: 1,
	}
}

// roundKB converts bytes to kilobytes rounded to two decimal places.
func roundKB(bytes int64) float64 {
	return math.Round(float64(bytes)/1024*100) / 100
}
