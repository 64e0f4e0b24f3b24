package images

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeReaderRoundTrip(t *testing.T) {
	raw := []byte{0x89, 0x50, 0x4e, 0x47}

	uri, err := EncodeReader(strings.NewReader(string(raw)), "image/png")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(uri, "data:image/png;base64,"))

	mimeType, data, err := Decode(uri)
	require.NoError(t, err)
	assert.Equal(t, "image/png", mimeType)
	assert.Equal(t, raw, data)
}

func TestEncodeFileInfersMimeType(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "photo.webp")
	require.NoError(t, os.WriteFile(path, []byte("webp-bytes"), 0600))

	uri, err := EncodeFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(uri, "data:image/webp;base64,"))

	// Unknown extensions fall back to jpeg.
	path = filepath.Join(dir, "photo.raw")
	require.NoError(t, os.WriteFile(path, []byte("raw-bytes"), 0600))
	uri, err = EncodeFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(uri, "data:image/jpeg;base64,"))
}

func TestEncodeFileMissing(t *testing.T) {
	_, err := EncodeFile(filepath.Join(t.TempDir(), "absent.png"))
	assert.Error(t, err)
}

func TestDecodeRejectsMalformed(t *testing.T) {
	for _, uri := range []string{
		"https://example.com/a.png",
		"data:image/png;base64",
		"data:image/png,plain-not-base64-marker",
		"data:image/png;base64,%%%",
	} {
		_, _, err := Decode(uri)
		assert.Error(t, err, uri)
	}
}
