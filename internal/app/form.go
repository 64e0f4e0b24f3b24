package app

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"propluxe/internal/describe"
	"propluxe/internal/domain"
	"propluxe/internal/geocode"
)

// Geocoder is the coordinate-lookup collaborator.
type Geocoder interface {
	Lookup(ctx context.Context, query string) (*geocode.Coordinates, error)
}

// DescriptionGenerator is the AI copywriting collaborator.
type DescriptionGenerator interface {
	Describe(ctx context.Context, p describe.Params) (string, error)
}

// ErrBusy is returned when the same operation is already in flight for the
// active form.
var ErrBusy = errors.New("operation already in flight")

// ErrStale is returned when a completion arrives after the form it belongs
// to was reset; its result must be discarded, not applied.
var ErrStale = errors.New("form session superseded")

// ErrMissingFields is the validation failure for an incomplete form.
var ErrMissingFields = errors.New("title, location and price are required")

// ValidateListing checks the required form fields before a save. Field
// semantics beyond presence are not checked anywhere.
func ValidateListing(l *domain.Listing) error {
	if l.Title == "" || l.Location == "" || l.Price == 0 {
		return ErrMissingFields
	}
	return nil
}

// FormSession guards the two suspending collaborator calls a listing form
// can make. Each operation carries at most one in-flight request, and every
// request is tagged with the session epoch at start: a completion whose
// epoch no longer matches (the user navigated away or reopened the form)
// is dropped instead of touching form state.
type FormSession struct {
	geocoder  Geocoder
	generator DescriptionGenerator
	logger    *slog.Logger

	mu         sync.Mutex
	epoch      uint64
	geocoding  bool
	generating bool
}

func NewFormSession(geocoder Geocoder, generator DescriptionGenerator, logger *slog.Logger) *FormSession {
	return &FormSession{geocoder: geocoder, generator: generator, logger: logger}
}

// Reset marks the current form instance dead. Outstanding requests keep
// running but their completions will be discarded.
func (s *FormSession) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.epoch++
	s.geocoding = false
	s.generating = false
}

// GeocodeInFlight reports whether a coordinate lookup is outstanding.
func (s *FormSession) GeocodeInFlight() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.geocoding
}

// GenerateInFlight reports whether a description request is outstanding.
func (s *FormSession) GenerateInFlight() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.generating
}

// Geocode looks up coordinates for the form's location field. Re-entrant
// submissions while a lookup is outstanding get ErrBusy; completions for a
// reset session get ErrStale.
func (s *FormSession) Geocode(ctx context.Context, location string) (*geocode.Coordinates, error) {
	s.mu.Lock()
	if s.geocoding {
		s.mu.Unlock()
		return nil, ErrBusy
	}
	s.geocoding = true
	epoch := s.epoch
	s.mu.Unlock()

	coords, err := s.geocoder.Lookup(ctx, location)

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.epoch != epoch {
		s.logger.Debug("discarding stale geocode completion", "location", location)
		return nil, ErrStale
	}
	s.geocoding = false
	if err != nil {
		return nil, err
	}
	return coords, nil
}

// GenerateDescription asks the AI collaborator for listing copy. The same
// in-flight and staleness rules as Geocode apply.
func (s *FormSession) GenerateDescription(ctx context.Context, p describe.Params) (string, error) {
	s.mu.Lock()
	if s.generating {
		s.mu.Unlock()
		return "", ErrBusy
	}
	s.generating = true
	epoch := s.epoch
	s.mu.Unlock()

	text, err := s.generator.Describe(ctx, p)

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.epoch != epoch {
		s.logger.Debug("discarding stale description completion", "title", p.Title)
		return "", ErrStale
	}
	s.generating = false
	if err != nil {
		return "", err
	}
	return text, nil
}
