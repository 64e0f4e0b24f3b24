package web

import (
	"encoding/json"
	"errors"
	"net/http"

	"propluxe/internal/app"
	"propluxe/internal/describe"
	"propluxe/internal/geocode"
)

type geocodeRequest struct {
	Location string `json:"location"`
}

func (s *Server) handleGeocode(w http.ResponseWriter, r *http.Request) {
	var req geocodeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid geocode payload")
		return
	}
	if req.Location == "" {
		s.writeError(w, http.StatusUnprocessableEntity, "please enter a location first")
		return
	}

	coords, err := s.form.Geocode(r.Context(), req.Location)
	switch {
	case errors.Is(err, app.ErrBusy), errors.Is(err, app.ErrStale):
		s.writeError(w, http.StatusConflict, err.Error())
	case errors.Is(err, geocode.ErrNotFound):
		s.writeError(w, http.StatusNotFound, "could not find coordinates for this location")
	case err != nil:
		s.logger.Error("geocode failed", "location", req.Location, "error", err)
		s.writeError(w, http.StatusBadGateway, "failed to fetch coordinates")
	default:
		s.writeJSON(w, http.StatusOK, coords)
	}
}

func (s *Server) handleDescribe(w http.ResponseWriter, r *http.Request) {
	var p describe.Params
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid describe payload")
		return
	}
	if p.Title == "" || p.Location == "" || p.Price == 0 {
		s.writeError(w, http.StatusUnprocessableEntity, "please fill in title, location and price first")
		return
	}

	text, err := s.form.GenerateDescription(r.Context(), p)
	switch {
	case errors.Is(err, app.ErrBusy), errors.Is(err, app.ErrStale):
		s.writeError(w, http.StatusConflict, err.Error())
	case err != nil:
		s.logger.Error("description generation failed", "title", p.Title, "error", err)
		s.writeError(w, http.StatusBadGateway, "failed to generate description")
	default:
		s.writeJSON(w, http.StatusOK, map[string]string{"description": text})
	}
}
