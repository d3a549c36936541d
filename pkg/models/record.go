package models

// Record is the per-asset result handed to reporting and export
// collaborators. Field names and types are a stable contract; renderers
// consume them as-is.
type Record struct {
	FileName         string  `json:"fileName"`
	Kind             string  `json:"kind"`
	Extension        string  `json:"extension"`
	SizeKB           float64 `json:"sizeKB"`
	SizeBytes        int64   `json:"sizeBytes"`
	Slides           string  `json:"slides"`
	OtherRefs        string  `json:"otherRefs"`
	ShapeHints       string  `json:"shapeHints"`
	Orphaned         bool    `json:"orphaned"`
	ContentHash      string  `json:"contentHash,omitempty"`
	DuplicateGroupID string  `json:"duplicateGroupId,omitempty"`
	DuplicateCount   int     `json:"duplicateCount"`
}

// ImageMeta carries optional camera metadata for image assets. It is keyed
// by file name separately from Record so the record contract stays fixed.
type ImageMeta struct {
	CameraMake  string `json:"cameraMake,omitempty"`
	CameraModel string `json:"cameraModel,omitempty"`
	TakenAt     string `json:"takenAt,omitempty"`
}
