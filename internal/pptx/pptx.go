// Package pptx reads the parts of a decompressed OOXML presentation
// package: the media directory, the per-part relationship files and the
// slide content trees. DOCX/XLSX/PPTX packages are zip archives of XML
// parts; relationship files live in a _rels directory next to the part
// they describe.
package pptx

import (
	"encoding/xml"
	"fmt"
	"path"
	"strconv"
	"strings"
)

// MediaDir is the package directory holding embedded media assets.
const MediaDir = "ppt/media"

// PartClass identifies a class of document part that may reference media.
type PartClass string

const (
	PartSlide  PartClass = "Slide"
	PartMaster PartClass = "Master"
	PartLayout PartClass = "Layout"
	PartNotes  PartClass = "Notes"
	PartChart  PartClass = "Chart"
)

// partLocation maps a part class to its relationship directory and the
// filename stem its parts are numbered under.
type partLocation struct {
	class   PartClass
	relsDir string
	stem    string
}

var partLocations = []partLocation{
	{PartSlide, "ppt/slides/_rels", "slide"},
	{PartMaster, "ppt/slideMasters/_rels", "slideMaster"},
	{PartLayout, "ppt/slideLayouts/_rels", "slideLayout"},
	{PartNotes, "ppt/notesSlides/_rels", "notesSlide"},
	{PartChart, "ppt/charts/_rels", "chart"},
}

// PartRef identifies one document part, e.g. Layout:1.
type PartRef struct {
	Class  PartClass
	Number int
}

func (p PartRef) String() string {
	return fmt.Sprintf("%s:%d", p.Class, p.Number)
}

// relationships mirrors the root element of a .xml.rels companion file.
type relationships struct {
	XMLName xml.Name       `xml:"Relationships"`
	Rels    []relationship `xml:"Relationship"`
}

type relationship struct {
	ID     string `xml:"Id,attr"`
	Type   string `xml:"Type,attr"`
	Target string `xml:"Target,attr"`
}

// mediaTarget extracts the media filename from a relationship target path.
// A target matches when, after stripping at most one leading "..", its
// leading segment is "media". Anything else is not an embedded media
// reference.
func mediaTarget(target string) (string, bool) {
	target = strings.TrimSpace(target)
	if target == "" {
		return "", false
	}
	parts := strings.Split(path.Clean(target), "/")
	if parts[0] == ".." {
		parts = parts[1:]
	}
	if len(parts) < 2 || parts[0] != "media" {
		return "", false
	}
	return path.Join(parts[1:]...), true
}

// partNumber parses the part number out of a filename such as
// "slide12.xml.rels" for stem "slide" and suffix ".xml.rels". Filenames
// outside the numbering convention are skipped, not treated as errors.
func partNumber(name, stem, suffix string) (int, bool) {
	if !strings.HasPrefix(name, stem) || !strings.HasSuffix(name, suffix) {
		return 0, false
	}
	n, err := strconv.Atoi(strings.TrimSuffix(strings.TrimPrefix(name, stem), suffix))
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}
