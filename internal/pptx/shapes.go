package pptx

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"io/fs"
	"sort"
)

// Resolver resolves the display names of picture shapes that place a media
// file on a slide. Parsed relationship files and content trees are cached
// per slide number for the lifetime of one Resolver, since many assets can
// reference the same slide.
type Resolver struct {
	fsys     fs.FS
	slides   map[int]*slidePart
	warnings []string
}

// slidePart is the cached parse result for one slide.
type slidePart struct {
	relTargets map[string]string // relationship id -> media filename
	pics       []picShape
}

// picShape is one picture placement found in a slide content tree.
type picShape struct {
	name  string
	descr string
	embed string // relationship id of the embedded image
}

// NewResolver creates a resolver over a package filesystem.
func NewResolver(fsys fs.FS) *Resolver {
	return &Resolver{
		fsys:   fsys,
		slides: make(map[int]*slidePart),
	}
}

// Names returns the display names of picture shapes on the given slide
// that embed fileName, deduplicated and in lexicographic order. A slide
// that cannot be parsed contributes no names; the failure is recorded as a
// warning rather than raised.
func (r *Resolver) Names(slideNum int, fileName string) []string {
	part := r.load(slideNum)

	ids := make(map[string]bool)
	for id, target := range part.relTargets {
		if target == fileName {
			ids[id] = true
		}
	}
	if len(ids) == 0 {
		return nil
	}

	seen := make(map[string]bool)
	var names []string
	for _, pic := range part.pics {
		if !ids[pic.embed] {
			continue
		}
		name := pic.name
		if name == "" {
			name = pic.descr
		}
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Warnings lists every slide part that could not be parsed.
func (r *Resolver) Warnings() []string {
	return r.warnings
}

func (r *Resolver) load(slideNum int) *slidePart {
	if part, ok := r.slides[slideNum]; ok {
		return part
	}

	part := &slidePart{relTargets: make(map[string]string)}

	relsPath := fmt.Sprintf("ppt/slides/_rels/slide%d.xml.rels", slideNum)
	rels, err := parseRels(r.fsys, relsPath)
	if err != nil {
		r.warnings = append(r.warnings, fmt.Sprintf("cannot resolve shapes: %s: %v", relsPath, err))
	} else {
		for _, rel := range rels {
			if fileName, ok := mediaTarget(rel.Target); ok {
				part.relTargets[rel.ID] = fileName
			}
		}
	}

	slidePath := fmt.Sprintf("ppt/slides/slide%d.xml", slideNum)
	data, err := fs.ReadFile(r.fsys, slidePath)
	if err != nil {
		r.warnings = append(r.warnings, fmt.Sprintf("cannot resolve shapes: %s: %v", slidePath, err))
	} else if err := part.parseContent(bytes.NewReader(data)); err != nil {
		part.pics = nil
		r.warnings = append(r.warnings, fmt.Sprintf("cannot resolve shapes: %s: %v", slidePath, err))
	}

	r.slides[slideNum] = part
	return part
}

// parseContent walks the slide XML and collects picture shapes. A picture
// element carries its display name on cNvPr (name, with descr as the
// fallback) and the embedded image relationship id on blip (r:embed).
func (p *slidePart) parseContent(r io.Reader) error {
	dec := xml.NewDecoder(r)

	var picDepth int
	var cur picShape

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}

		switch el := tok.(type) {
		case xml.StartElement:
			switch el.Name.Local {
			case "pic":
				picDepth++
				if picDepth == 1 {
					cur = picShape{}
				}
			case "cNvPr":
				if picDepth == 1 {
					for _, a := range el.Attr {
						switch a.Name.Local {
						case "name":
							cur.name = a.Value
						case "descr":
							cur.descr = a.Value
						}
					}
				}
			case "blip":
				if picDepth == 1 {
					for _, a := range el.Attr {
						if a.Name.Local == "embed" {
							cur.embed = a.Value
						}
					}
				}
			}

		case xml.EndElement:
			if el.Name.Local == "pic" {
				if picDepth == 1 && cur.embed != "" {
					p.pics = append(p.pics, cur)
				}
				picDepth--
			}
		}
	}

	return nil
}
