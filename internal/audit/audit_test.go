package audit

import (
	"bytes"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRels(entries ...[2]string) []byte {
	var buf bytes.Buffer
	buf.WriteString(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>`)
	buf.WriteString(`<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">`)
	for _, e := range entries {
		buf.WriteString(`<Relationship Id="` + e[0] + `" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/image" Target="` + e[1] + `"/>`)
	}
	buf.WriteString(`</Relationships>`)
	return buf.Bytes()
}

func testSlide(shapes ...[2]string) []byte {
	var buf bytes.Buffer
	buf.WriteString(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>`)
	buf.WriteString(`<p:sld xmlns:a="http://schemas.openxmlformats.org/drawingml/2006/main" xmlns:p="http://schemas.openxmlformats.org/presentationml/2006/main" xmlns:r="http://schemas.openxmlformats.org/officeDocument/2006/relationships"><p:cSld><p:spTree>`)
	for _, s := range shapes {
		buf.WriteString(`<p:pic><p:nvPicPr><p:cNvPr id="1" name="` + s[0] + `"/><p:cNvPicPr/><p:nvPr/></p:nvPicPr><p:blipFill><a:blip r:embed="` + s[1] + `"/></p:blipFill><p:spPr/></p:pic>`)
	}
	buf.WriteString(`</p:spTree></p:cSld></p:sld>`)
	return buf.Bytes()
}

// testPackage builds a package exercising every pipeline stage:
//   - image59.png on slides 9 and 10 with named picture shapes
//   - image3.png referenced only by layout 1
//   - image_unused.png referenced nowhere
//   - twin_a.png / twin_b.png byte-identical, placed on slide 9
func testPackage() fstest.MapFS {
	twin := []byte("twin image payload")
	return fstest.MapFS{
		"ppt/media/image59.png":              {Data: bytes.Repeat([]byte("x"), 3000)},
		"ppt/media/image3.png":               {Data: bytes.Repeat([]byte("y"), 1000)},
		"ppt/media/image_unused.png":         {Data: []byte("unused")},
		"ppt/media/twin_a.png":               {Data: twin},
		"ppt/media/twin_b.png":               {Data: twin},
		"ppt/slides/_rels/slide9.xml.rels":   {Data: testRels([2]string{"rId5", "../media/image59.png"}, [2]string{"rId8", "../media/twin_a.png"}, [2]string{"rId9", "../media/twin_b.png"})},
		"ppt/slides/_rels/slide10.xml.rels":  {Data: testRels([2]string{"rId7", "../media/image59.png"})},
		"ppt/slides/slide9.xml":              {Data: testSlide([2]string{"Picture 21", "rId5"}, [2]string{"Twin A", "rId8"}, [2]string{"Twin B", "rId9"})},
		"ppt/slides/slide10.xml":             {Data: testSlide([2]string{"Picture 3", "rId7"})},
		"ppt/slideLayouts/_rels/slideLayout1.xml.rels": {Data: testRels([2]string{"rId2", "../media/image3.png"})},
	}
}

func TestRunFullPipeline(t *testing.T) {
	result, err := Run(testPackage(), Options{Dedupe: true})
	require.NoError(t, err)
	assert.Empty(t, result.Warnings)

	byName := make(map[string]int)
	for i, rec := range result.Records {
		byName[rec.FileName] = i
	}
	require.Len(t, result.Records, 5)

	used := result.Records[byName["image59.png"]]
	assert.Equal(t, "9,10", used.Slides)
	assert.Equal(t, "9: Picture 21 | 10: Picture 3", used.ShapeHints)
	assert.False(t, used.Orphaned)
	assert.Equal(t, "Image", used.Kind)
	assert.Equal(t, ".png", used.Extension)
	assert.Equal(t, 2.93, used.SizeKB)

	layoutOnly := result.Records[byName["image3.png"]]
	assert.Equal(t, "", layoutOnly.Slides)
	assert.Equal(t, "Layout:1", layoutOnly.OtherRefs)
	assert.False(t, layoutOnly.Orphaned)

	orphan := result.Records[byName["image_unused.png"]]
	assert.True(t, orphan.Orphaned)
	assert.Equal(t, "", orphan.Slides)
	assert.Equal(t, "", orphan.OtherRefs)

	twinA := result.Records[byName["twin_a.png"]]
	twinB := result.Records[byName["twin_b.png"]]
	assert.Equal(t, twinA.ContentHash, twinB.ContentHash)
	require.NotEmpty(t, twinA.DuplicateGroupID)
	assert.Equal(t, twinA.ContentHash[:8], twinA.DuplicateGroupID)
	assert.Equal(t, twinA.DuplicateGroupID, twinB.DuplicateGroupID)
	assert.Equal(t, 2, twinA.DuplicateCount)
	assert.Equal(t, 2, twinB.DuplicateCount)
	assert.Equal(t, 1, orphan.DuplicateCount)
	assert.Empty(t, orphan.DuplicateGroupID)
}

func TestRunIsDeterministic(t *testing.T) {
	first, err := Run(testPackage(), Options{Dedupe: true})
	require.NoError(t, err)
	second, err := Run(testPackage(), Options{Dedupe: true})
	require.NoError(t, err)

	assert.Equal(t, first.Records, second.Records)
	assert.Equal(t, first.Warnings, second.Warnings)
}

func TestRunOrphanConsistency(t *testing.T) {
	result, err := Run(testPackage(), Options{})
	require.NoError(t, err)

	for _, rec := range result.Records {
		assert.True(t, rec.Orphaned == (rec.Slides == "" && rec.OtherRefs == ""),
			"%s: orphaned must mirror the reference lists", rec.FileName)
	}
}

func TestRunOrphansOnly(t *testing.T) {
	result, err := Run(testPackage(), Options{OrphansOnly: true})
	require.NoError(t, err)

	require.Len(t, result.Records, 1)
	assert.Equal(t, "image_unused.png", result.Records[0].FileName)
}

func TestRunTopNSelection(t *testing.T) {
	result, err := Run(testPackage(), Options{Mode: TopN{N: 2}})
	require.NoError(t, err)

	require.Len(t, result.Records, 2)
	assert.Equal(t, "image59.png", result.Records[0].FileName)
	assert.Equal(t, "image3.png", result.Records[1].FileName)
}

func TestRunEmptyPackage(t *testing.T) {
	result, err := Run(fstest.MapFS{"other.txt": {Data: []byte("not a pptx")}}, Options{})
	require.NoError(t, err, "missing media directory is informational, not an error")
	assert.Empty(t, result.Records)
}

func TestRunCollectsWarningsFromBrokenParts(t *testing.T) {
	fsys := testPackage()
	fsys["ppt/slides/_rels/slide11.xml.rels"] = &fstest.MapFile{Data: []byte("<broken")}

	result, err := Run(fsys, Options{})
	require.NoError(t, err)
	require.Len(t, result.Warnings, 1)
	assert.Contains(t, result.Warnings[0], "slide11.xml.rels")
	assert.Len(t, result.Records, 5, "good parts still produce full results")
}
