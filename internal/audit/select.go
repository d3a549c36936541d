package audit

import (
	"fmt"
	"sort"
	"strings"

	"github.com/bstardust/pptx-media-audit/internal/fileinfo"
	"github.com/bstardust/pptx-media-audit/pkg/models"
)

// Mode is the selection mode applied after size sorting. Exactly one mode
// is active per run; the variants make the mutual exclusivity a type-level
// property instead of a string branch.
type Mode interface {
	isMode()
}

// TopN keeps the n largest records.
type TopN struct {
	N int
}

func (TopN) isMode() {}

// MinSizeKB keeps every record of at least Threshold kilobytes.
type MinSizeKB struct {
	Threshold int
}

func (MinSizeKB) isMode() {}

// KindFilter limits the candidate set by media kind before any sorting or
// selection. "Other" assets only pass the All filter.
type KindFilter string

const (
	FilterAll    KindFilter = "all"
	FilterImages KindFilter = "images"
	FilterVideo  KindFilter = "video"
	FilterAudio  KindFilter = "audio"
)

// ParseKindFilter validates a kind filter name from configuration. Names
// are matched case-insensitively.
func ParseKindFilter(name string) (KindFilter, error) {
	switch f := KindFilter(strings.ToLower(name)); f {
	case FilterAll, FilterImages, FilterVideo, FilterAudio:
		return f, nil
	}
	return "", fmt.Errorf("unknown kind filter %q (want all, images, video or audio)", name)
}

func (f KindFilter) matches(kind string) bool {
	switch f {
	case FilterImages:
		return kind == string(fileinfo.KindImage)
	case FilterVideo:
		return kind == string(fileinfo.KindVideo)
	case FilterAudio:
		return kind == string(fileinfo.KindAudio)
	default:
		return true
	}
}

// Select filters records by kind, sorts by size descending and applies the
// selection mode. Ties at equal size keep their scan order; a nil mode
// keeps the whole filtered, sorted set.
func Select(records []models.Record, filter KindFilter, mode Mode) []models.Record {
	selected := make([]models.Record, 0, len(records))
	for _, rec := range records {
		if filter.matches(rec.Kind) {
			selected = append(selected, rec)
		}
	}

	sort.SliceStable(selected, func(i, j int) bool {
		return selected[i].SizeBytes > selected[j].SizeBytes
	})

	switch m := mode.(type) {
	case TopN:
		if m.N < len(selected) {
			selected = selected[:m.N]
		}
	case MinSizeKB:
		// Compared against exact kilobytes, not the rounded display value.
		cut := len(selected)
		for i, rec := range selected {
			if float64(rec.SizeBytes)/1024 < float64(m.Threshold) {
				cut = i
				break
			}
		}
		selected = selected[:cut]
	}

	return selected
}
