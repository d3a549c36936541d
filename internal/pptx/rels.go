package pptx

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
)

// Edge records one relationship from a document part to a media file.
type Edge struct {
	Source   PartRef
	RelID    string
	FileName string
}

// Index holds the media usage derived from every relationship file in the
// package. It is built once and treated as read-only afterwards.
type Index struct {
	// SlideUsage maps a media filename to the ascending slide numbers
	// whose relationship files reference it.
	SlideUsage map[string][]int
	// OtherUsage maps a media filename to "Class:N" references from
	// non-slide parts, sorted by class then part number.
	OtherUsage map[string][]string
	// Warnings lists every relationship file that had to be skipped.
	Warnings []string
}

// BuildIndex walks the relationship directories of all part classes and
// aggregates media references. A malformed or unreadable relationship file
// contributes a warning instead of aborting the scan.
func BuildIndex(fsys fs.FS) *Index {
	idx := &Index{
		SlideUsage: make(map[string][]int),
		OtherUsage: make(map[string][]string),
	}

	slideSets := make(map[string]map[int]bool)
	otherSets := make(map[string]map[PartRef]bool)

	for _, loc := range partLocations {
		for _, edge := range indexClass(fsys, loc, &idx.Warnings) {
			if edge.Source.Class == PartSlide {
				set := slideSets[edge.FileName]
				if set == nil {
					set = make(map[int]bool)
					slideSets[edge.FileName] = set
				}
				set[edge.Source.Number] = true
			} else {
				set := otherSets[edge.FileName]
				if set == nil {
					set = make(map[PartRef]bool)
					otherSets[edge.FileName] = set
				}
				set[edge.Source] = true
			}
		}
	}

	for file, set := range slideSets {
		nums := make([]int, 0, len(set))
		for n := range set {
			nums = append(nums, n)
		}
		sort.Ints(nums)
		idx.SlideUsage[file] = nums
	}

	for file, set := range otherSets {
		refs := make([]PartRef, 0, len(set))
		for ref := range set {
			refs = append(refs, ref)
		}
		sort.Slice(refs, func(i, j int) bool {
			if refs[i].Class != refs[j].Class {
				return refs[i].Class < refs[j].Class
			}
			return refs[i].Number < refs[j].Number
		})
		strs := make([]string, len(refs))
		for i, ref := range refs {
			strs[i] = ref.String()
		}
		idx.OtherUsage[file] = strs
	}

	return idx
}

// indexClass emits the media edges of one part class.
func indexClass(fsys fs.FS, loc partLocation, warnings *[]string) []Edge {
	entries, err := fs.ReadDir(fsys, loc.relsDir)
	if err != nil {
		// A package routinely lacks whole part classes (no charts, no
		// notes); only a present-but-unreadable directory is worth a
		// warning.
		if !errors.Is(err, fs.ErrNotExist) {
			*warnings = append(*warnings, fmt.Sprintf("cannot read %s: %v", loc.relsDir, err))
		}
		return nil
	}

	var edges []Edge
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		num, ok := partNumber(entry.Name(), loc.stem, ".xml.rels")
		if !ok {
			continue
		}
		relsPath := path.Join(loc.relsDir, entry.Name())
		rels, err := parseRels(fsys, relsPath)
		if err != nil {
			*warnings = append(*warnings, fmt.Sprintf("skipping %s: %v", relsPath, err))
			continue
		}
		source := PartRef{Class: loc.class, Number: num}
		for _, rel := range rels {
			if fileName, ok := mediaTarget(rel.Target); ok {
				edges = append(edges, Edge{Source: source, RelID: rel.ID, FileName: fileName})
			}
		}
	}
	return edges
}

// parseRels decodes one .xml.rels file into its relationship entries.
func parseRels(fsys fs.FS, relsPath string) ([]relationship, error) {
	data, err := fs.ReadFile(fsys, relsPath)
	if err != nil {
		return nil, err
	}
	var doc relationships
	if err := xml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("malformed relationship file: %w", err)
	}
	return doc.Rels, nil
}
