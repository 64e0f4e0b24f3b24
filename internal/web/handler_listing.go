package web

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"propluxe/internal/app"
	"propluxe/internal/domain"
)

// browseResponse is one page of the filtered collection.
type browseResponse struct {
	Items      []domain.Listing `json:"items"`
	TotalPages int              `json:"totalPages"`
	Page       int              `json:"page"`
	MapView    bool             `json:"mapView"`
}

// listingResponse is the detail view payload.
type listingResponse struct {
	domain.Listing
	ContactLink string `json:"contactLink"`
}

// handleBrowse applies the filter parameters, moves to the requested page
// and returns the visible slice.
func (s *Server) handleBrowse(w http.ResponseWriter, r *http.Request) {
	s.ctrl.Navigate(domain.ViewBrowse)
	s.ctrl.Refresh(r.Context())
	s.ctrl.SetFilter(filterFromQuery(r))

	if mv := r.URL.Query().Get("map"); mv != "" {
		s.ctrl.SetMapView(mv == "1" || mv == "true")
	}
	if page, err := strconv.Atoi(r.URL.Query().Get("page")); err == nil {
		s.ctrl.SetPage(page)
	}

	p := s.ctrl.VisibleListings()
	s.writeJSON(w, http.StatusOK, browseResponse{
		Items:      p.Items,
		TotalPages: p.TotalPages,
		Page:       s.ctrl.PageNumber(),
		MapView:    s.ctrl.MapViewActive(),
	})
}

func filterFromQuery(r *http.Request) domain.FilterState {
	q := r.URL.Query()
	f := domain.DefaultFilter()

	f.Location = q.Get("location")
	if v, err := strconv.ParseFloat(q.Get("minPrice"), 64); err == nil {
		f.MinPrice = v
	}
	if v, err := strconv.ParseFloat(q.Get("maxPrice"), 64); err == nil {
		f.MaxPrice = v
	}
	if v := q.Get("types"); v != "" {
		f.PropertyTypes = strings.Split(v, ",")
	}
	if v := q.Get("amenities"); v != "" {
		f.Amenities = strings.Split(v, ",")
	}
	return f
}

func (s *Server) handleGetListing(w http.ResponseWriter, r *http.Request) {
	s.ctrl.Refresh(r.Context())
	s.ctrl.SelectListing(r.PathValue("id"))

	l, ok := s.ctrl.SelectedListing()
	if !ok {
		s.writeError(w, http.StatusNotFound, "listing not found")
		return
	}
	s.writeJSON(w, http.StatusOK, listingResponse{Listing: *l, ContactLink: l.ContactLink()})
}

func (s *Server) handleCreateListing(w http.ResponseWriter, r *http.Request) {
	s.ctrl.Navigate(domain.ViewAddListing)
	s.saveListing(w, r, "")
}

func (s *Server) handleUpdateListing(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	s.ctrl.EditListing(id)
	s.saveListing(w, r, id)
}

func (s *Server) saveListing(w http.ResponseWriter, r *http.Request, id string) {
	var listing domain.Listing
	if err := json.NewDecoder(r.Body).Decode(&listing); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid listing payload")
		return
	}
	if id != "" {
		listing.ID = id
	}

	if err := app.ValidateListing(&listing); err != nil {
		s.writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	if err := s.ctrl.SaveListing(r.Context(), listing); err != nil {
		s.logger.Error("failed to save listing", "id", listing.ID, "error", err)
		s.writeError(w, http.StatusInternalServerError, "failed to save listing")
		return
	}

	// The form is done with; abandon any outstanding collaborator calls.
	s.form.Reset()

	status := http.StatusOK
	if id == "" {
		status = http.StatusCreated
	}
	s.writeJSON(w, status, map[string]any{
		"listings": s.ctrl.AllListings(),
		"view":     s.ctrl.View(),
	})
}

func (s *Server) handleDeleteListing(w http.ResponseWriter, r *http.Request) {
	deleted, err := s.ctrl.DeleteListing(r.Context(), r.PathValue("id"))
	if err != nil {
		s.logger.Error("failed to delete listing", "error", err)
		s.writeError(w, http.StatusInternalServerError, "failed to delete listing")
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]any{
		"deleted":  deleted,
		"listings": s.ctrl.AllListings(),
	})
}

func (s *Server) handleAdminListings(w http.ResponseWriter, r *http.Request) {
	s.ctrl.Navigate(domain.ViewAdminDashboard)
	s.ctrl.Refresh(r.Context())
	s.writeJSON(w, http.StatusOK, map[string]any{
		"listings": s.ctrl.AllListings(),
		"view":     s.ctrl.View(),
	})
}

// handleMapPoints returns the geo-tagged subset of the filtered collection
// for the map collaborator.
func (s *Server) handleMapPoints(w http.ResponseWriter, r *http.Request) {
	s.ctrl.Refresh(r.Context())
	points := s.ctrl.MapPoints()
	s.writeJSON(w, http.StatusOK, map[string]any{
		"points": points,
		"count":  len(points),
	})
}
