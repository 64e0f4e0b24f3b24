// Package images converts gallery images to the inline data-URI form the
// listing records store them in.
package images

import (
	"encoding/base64"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// EncodeReader reads an image and returns it as a base64 data URI.
func EncodeReader(r io.Reader, mimeType string) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("failed to read image: %w", err)
	}
	return fmt.Sprintf("data:%s;base64,%s", mimeType, base64.StdEncoding.EncodeToString(data)), nil
}

// EncodeFile loads an image from disk, inferring the MIME type from the
// file extension.
func EncodeFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open image: %w", err)
	}
	defer func() { _ = f.Close() }()

	return EncodeReader(f, extToMimeType(path))
}

// Decode splits a data URI back into its MIME type and raw bytes.
func Decode(dataURI string) (mimeType string, data []byte, err error) {
	rest, found := strings.CutPrefix(dataURI, "data:")
	if !found {
		return "", nil, fmt.Errorf("not a data URI")
	}
	header, payload, found := strings.Cut(rest, ",")
	if !found {
		return "", nil, fmt.Errorf("malformed data URI")
	}
	mimeType, ok := strings.CutSuffix(header, ";base64")
	if !ok {
		return "", nil, fmt.Errorf("unsupported data URI encoding")
	}

	data, err = base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", nil, fmt.Errorf("failed to decode image payload: %w", err)
	}
	return mimeType, data, nil
}

func extToMimeType(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return "image/png"
	case ".gif":
		return "image/gif"
	case ".webp":
		return "image/webp"
	default:
		return "image/jpeg"
	}
}
