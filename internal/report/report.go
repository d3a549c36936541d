// Package report renders audit records for humans and for export to other
// tools. It consumes the models.Record contract as-is and never recomputes
// usage fields.
package report

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/bstardust/pptx-media-audit/pkg/models"
)

// Options controls which optional columns are rendered.
type Options struct {
	Dedupe bool
	Images map[string]models.ImageMeta
}

// WriteTable renders an aligned text table.
func WriteTable(w io.Writer, records []models.Record, opts Options) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	header := "FILE\tKIND\tEXT\tSIZE KB\tSLIDES\tOTHER REFS\tSHAPES\tORPHANED"
	if opts.Dedupe {
		header += "\tDUP GROUP\tDUP COUNT"
	}
	if opts.Images != nil {
		header += "\tCAMERA"
	}
	fmt.Fprintln(tw, header)

	for _, rec := range records {
		row := fmt.Sprintf("%s\t%s\t%s\t%.2f\t%s\t%s\t%s\t%t",
			rec.FileName, rec.Kind, rec.Extension, rec.SizeKB,
			rec.Slides, rec.OtherRefs, rec.ShapeHints, rec.Orphaned)
		if opts.Dedupe {
			row += fmt.Sprintf("\t%s\t%d", rec.DuplicateGroupID, rec.DuplicateCount)
		}
		if opts.Images != nil {
			row += "\t" + camera(opts.Images[rec.FileName])
		}
		fmt.Fprintln(tw, row)
	}

	return tw.Flush()
}

// WriteCSV renders the records as CSV with a header row.
func WriteCSV(w io.Writer, records []models.Record, opts Options) error {
	cw := csv.NewWriter(w)

	header := []string{"fileName", "kind", "extension", "sizeKB", "sizeBytes",
		"slides", "otherRefs", "shapeHints", "orphaned"}
	if opts.Dedupe {
		header = append(header, "contentHash", "duplicateGroupId", "duplicateCount")
	}
	if opts.Images != nil {
		header = append(header, "cameraMake", "cameraModel", "takenAt")
	}
	if err := cw.Write(header); err != nil {
		return err
	}

	for _, rec := range records {
		row := []string{
			rec.FileName,
			rec.Kind,
			rec.Extension,
			strconv.FormatFloat(rec.SizeKB, 'f', 2, 64),
			strconv.FormatInt(rec.SizeBytes, 10),
			rec.Slides,
			rec.OtherRefs,
			rec.ShapeHints,
			strconv.FormatBool(rec.Orphaned),
		}
		if opts.Dedupe {
			row = append(row, rec.ContentHash, rec.DuplicateGroupID, strconv.Itoa(rec.DuplicateCount))
		}
		if opts.Images != nil {
			meta := opts.Images[rec.FileName]
			row = append(row, meta.CameraMake, meta.CameraModel, meta.TakenAt)
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// jsonReport is the envelope written by WriteJSON.
type jsonReport struct {
	Records  []models.Record             `json:"records"`
	Images   map[string]models.ImageMeta `json:"images,omitempty"`
	Warnings []string                    `json:"warnings,omitempty"`
}

// WriteJSON renders records, image metadata and warnings as one document.
func WriteJSON(w io.Writer, records []models.Record, warnings []string, opts Options) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(jsonReport{
		Records:  records,
		Images:   opts.Images,
		Warnings: warnings,
	})
}

func camera(meta models.ImageMeta) string {
	switch {
	case meta.CameraMake == "" && meta.CameraModel == "":
		return ""
	case meta.CameraMake == "":
		return meta.CameraModel
	case meta.CameraModel == "":
		return meta.CameraMake
	}
	return meta.CameraMake + " " + meta.CameraModel
}
