// internal/exif/exif.go
package exif

import (
	"io"
	"time"

	"github.com/rwcarlsen/goexif/exif"
)

// Data represents the EXIF fields the audit report cares about.
type Data struct {
	DateTime *time.Time
	Make     string
	Model    string
}

// Extract extracts EXIF metadata from a reader. Most media embedded in a
// presentation has been re-encoded and carries no EXIF; callers treat a
// decode failure as "no metadata".
func Extract(r io.Reader) (*Data, error) {
	x, err := exif.Decode(r)
	if err != nil {
		return nil, err
	}

	data := &Data{}

	if dt, err := x.DateTime(); err == nil {
		data.DateTime = &dt
	}

	if mk, err := x.Get(exif.Make); err == nil {
		if str, err := mk.StringVal(); err == nil {
			data.Make = str
		}
	}

	if model, err := x.Get(exif.Model); err == nil {
		if str, err := model.StringVal(); err == nil {
			data.Model = str
		}
	}

	return data, nil
}
