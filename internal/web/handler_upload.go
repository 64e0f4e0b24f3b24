package web

import (
	"net/http"
	"strings"

	"propluxe/internal/images"
)

// maxUploadBytes caps a single gallery image upload.
const maxUploadBytes = 10 << 20

// handleUploadImage converts an uploaded image into the inline data URI
// form that listing galleries store, and returns it for the client to put
// into the images array.
func (s *Server) handleUploadImage(w http.ResponseWriter, r *http.Request) {
	mimeType := r.Header.Get("Content-Type")
	if !strings.HasPrefix(mimeType, "image/") {
		s.writeError(w, http.StatusUnsupportedMediaType, "only image uploads are supported")
		return
	}

	dataURI, err := images.EncodeReader(http.MaxBytesReader(w, r.Body, maxUploadBytes), mimeType)
	if err != nil {
		s.logger.Error("failed to encode uploaded image", "error", err)
		s.writeError(w, http.StatusRequestEntityTooLarge, "image too large")
		return
	}

	s.writeJSON(w, http.StatusOK, map[string]string{"dataUri": dataURI})
}
