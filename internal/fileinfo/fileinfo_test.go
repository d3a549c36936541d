package fileinfo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	assert.Equal(t, KindImage, KindOf("image59.png"))
	assert.Equal(t, KindImage, KindOf("photo.JPEG"))
	assert.Equal(t, KindImage, KindOf("diagram.emf"))
	assert.Equal(t, KindVideo, KindOf("clip.mp4"))
	assert.Equal(t, KindVideo, KindOf("movie.WMV"))
	assert.Equal(t, KindAudio, KindOf("jingle.mp3"))
	assert.Equal(t, KindAudio, KindOf("voice.m4a"))
	assert.Equal(t, KindOther, KindOf("data.bin"))
	assert.Equal(t, KindOther, KindOf("noextension"))
}

func TestKindPredicates(t *testing.T) {
	assert.True(t, IsImageFile("a.png"))
	assert.False(t, IsImageFile("a.mp4"))
	assert.True(t, IsVideoFile("a.mov"))
	assert.True(t, IsAudioFile("a.wav"))
	assert.False(t, IsAudioFile("a.png"))
}

func TestDetectContentType(t *testing.T) {
	assert.Equal(t, "image/png", DetectContentType("image1.png"))
	assert.Equal(t, "image/jpeg", DetectContentType("photo.JPG"))
	assert.Equal(t, "video/mp4", DetectContentType("clip.mp4"))
	assert.Equal(t, "image/x-emf", DetectContentType("diagram.emf"))
	assert.Equal(t, "application/octet-stream", DetectContentType("mystery.xyz123"))
}
