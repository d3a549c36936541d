package fileinfo

import (
	"mime"
	"path/filepath"
	"strings"
)

// Kind classifies a media asset by its file extension.
type Kind string

const (
	KindImage Kind = "Image"
	KindVideo Kind = "Video"
	KindAudio Kind = "Audio"
	KindOther Kind = "Other"
)

var imageExts = map[string]bool{
	".jpg": true, ".jpeg": true, ".png": true, ".gif": true, ".webp": true,
	".tiff": true, ".tif": true, ".bmp": true, ".heic": true, ".heif": true,
	".emf": true, ".wmf": true, ".svg": true, ".ico": true,
}

var videoExts = map[string]bool{
	".mp4": true, ".mov": true, ".avi": true, ".wmv": true, ".mkv": true,
	".webm": true, ".flv": true, ".m4v": true, ".3gp": true, ".mpg": true,
	".mpeg": true, ".asf": true,
}

var audioExts = map[string]bool{
	".mp3": true, ".wav": true, ".m4a": true, ".wma": true, ".aac": true,
	".ogg": true, ".flac": true, ".mid": true, ".midi": true,
}

// Common MIME types for extensions the standard library may not know
var commonMimeTypes = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".gif":  "image/gif",
	".webp": "image/webp",
	".tiff": "image/tiff",
	".tif":  "image/tiff",
	".bmp":  "image/bmp",
	".emf":  "image/x-emf",
	".wmf":  "image/x-wmf",
	".mp4":  "video/mp4",
	".mov":  "video/quicktime",
	".avi":  "video/x-msvideo",
	".wmv":  "video/x-ms-wmv",
	".asf":  "video/x-ms-asf",
	".mp3":  "audio/mpeg",
	".wav":  "audio/wav",
	".m4a":  "audio/mp4",
	".wma":  "audio/x-ms-wma",
}

// KindOf returns the media kind for a filename based on its extension.
func KindOf(filename string) Kind {
	ext := strings.ToLower(filepath.Ext(filename))
	switch {
	case imageExts[ext]:
		return KindImage
	case videoExts[ext]:
		return KindVideo
	case audioExts[ext]:
		return KindAudio
	default:
		return KindOther
	}
}

// IsImageFile checks if a file is an image based on its extension
func IsImageFile(filename string) bool {
	return KindOf(filename) == KindImage
}

// IsVideoFile checks if a file is a video based on its extension
func IsVideoFile(filename string) bool {
	return KindOf(filename) == KindVideo
}

// IsAudioFile checks if a file is an audio asset based on its extension
func IsAudioFile(filename string) bool {
	return KindOf(filename) == KindAudio
}

// DetectContentType determines the content type of a file based on its extension
func DetectContentType(filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))

	if mimeType, ok := commonMimeTypes[ext]; ok {
		return mimeType
	}

	if mimeType := mime.TypeByExtension(ext); mimeType != "" {
		return mimeType
	}

	return "application/octet-stream"
}
