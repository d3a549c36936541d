package audit

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io/fs"
	"path"

	"github.com/bstardust/pptx-media-audit/internal/pptx"
	"github.com/bstardust/pptx-media-audit/pkg/models"
)

// groupIDLen is the number of leading hex characters of the content hash
// used as the shared duplicate group identifier.
const groupIDLen = 8

// Detector finds exact-duplicate media by content hash.
type Detector struct {
	fsys fs.FS
}

// NewDetector creates a duplicate detector over a package filesystem.
func NewDetector(fsys fs.FS) *Detector {
	return &Detector{fsys: fsys}
}

// Annotate hashes every record's media bytes with SHA-256 and marks groups
// of byte-identical assets. An asset whose bytes cannot be read keeps its
// usage fields, stays ungrouped and produces a warning. Annotations are
// additive: usage fields are never altered.
func (d *Detector) Annotate(records []models.Record) []string {
	var warnings []string

	groups := make(map[string][]int) // hash -> record indices
	for i := range records {
		data, err := fs.ReadFile(d.fsys, path.Join(pptx.MediaDir, records[i].FileName))
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("cannot hash %s: %v", records[i].FileName, err))
			continue
		}
		sum := sha256.Sum256(data)
		hash := hex.EncodeToString(sum[:])
		records[i].ContentHash = hash
		groups[hash] = append(groups[hash], i)
	}

	for hash, members := range groups {
		if len(members) < 2 {
			continue
		}
		for _, i := range members {
			records[i].DuplicateGroupID = hash[:groupIDLen]
			records[i].DuplicateCount = len(members)
		}
	}

	return warnings
}
