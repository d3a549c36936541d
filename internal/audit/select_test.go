package audit

import (
	"testing"

	"github.com/bstardust/pptx-media-audit/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rec(name, kind string, sizeBytes int64) models.Record {
	return models.Record{
		FileName:  name,
		Kind:      kind,
		SizeBytes: sizeBytes,
		SizeKB:    float64(sizeBytes) / 1024,
	}
}

func names(records []models.Record) []string {
	out := make([]string, len(records))
	for i, r := range records {
		out[i] = r.FileName
	}
	return out
}

func TestSelectTopN(t *testing.T) {
	records := []models.Record{
		rec("small.png", "Image", 100),
		rec("big.png", "Image", 5000),
		rec("mid.png", "Image", 1000),
	}

	got := Select(records, FilterAll, TopN{N: 2})
	assert.Equal(t, []string{"big.png", "mid.png"}, names(got))
}

func TestSelectTopNLargerThanSet(t *testing.T) {
	records := []models.Record{rec("only.png", "Image", 10)}
	got := Select(records, FilterAll, TopN{N: 5})
	assert.Len(t, got, 1)
}

func TestSelectTopNTiesKeepScanOrder(t *testing.T) {
	records := []models.Record{
		rec("a.png", "Image", 500),
		rec("b.png", "Image", 500),
		rec("c.png", "Image", 500),
	}

	got := Select(records, FilterAll, TopN{N: 3})
	assert.Equal(t, []string{"a.png", "b.png", "c.png"}, names(got))
}

func TestSelectMinSize(t *testing.T) {
	records := []models.Record{
		rec("tiny.png", "Image", 512),     // 0.5 KB
		rec("big.png", "Image", 4096),     // 4 KB
		rec("border.png", "Image", 2048),  // exactly 2 KB
		rec("under.png", "Image", 2047),   // just below 2 KB
	}

	got := Select(records, FilterAll, MinSizeKB{Threshold: 2})
	assert.Equal(t, []string{"big.png", "border.png"}, names(got))
}

func TestSelectKindFilter(t *testing.T) {
	records := []models.Record{
		rec("a.png", "Image", 100),
		rec("b.mp4", "Video", 900),
		rec("c.wav", "Audio", 300),
		rec("d.bin", "Other", 9999),
	}

	assert.Equal(t, []string{"a.png"}, names(Select(records, FilterImages, nil)))
	assert.Equal(t, []string{"b.mp4"}, names(Select(records, FilterVideo, nil)))
	assert.Equal(t, []string{"c.wav"}, names(Select(records, FilterAudio, nil)))

	// Other only passes the All filter.
	all := names(Select(records, FilterAll, nil))
	assert.Contains(t, all, "d.bin")
	assert.Len(t, all, 4)
}

func TestSelectNilModeKeepsSortedSet(t *testing.T) {
	records := []models.Record{
		rec("small.png", "Image", 1),
		rec("big.png", "Image", 2),
	}
	got := Select(records, FilterAll, nil)
	assert.Equal(t, []string{"big.png", "small.png"}, names(got))
}

func TestParseKindFilter(t *testing.T) {
	for _, valid := range []string{"all", "images", "video", "audio"} {
		f, err := ParseKindFilter(valid)
		require.NoError(t, err)
		assert.Equal(t, KindFilter(valid), f)
	}

	// Flag values are matched case-insensitively.
	f, err := ParseKindFilter("Images")
	require.NoError(t, err)
	assert.Equal(t, FilterImages, f)
	f, err = ParseKindFilter("VIDEO")
	require.NoError(t, err)
	assert.Equal(t, FilterVideo, f)

	_, err = ParseKindFilter("other")
	assert.Error(t, err, "Other is not selectable on its own")
	_, err = ParseKindFilter("pictures")
	assert.Error(t, err)
}
