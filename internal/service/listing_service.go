package service

import (
	"context"
	"fmt"
	"log/slog"

	"propluxe/internal/domain"
)

// listingStore is the subset of store.ListingStore that ListingService requires.
type listingStore interface {
	Load(ctx context.Context) []domain.Listing
	ReplaceAll(ctx context.Context, listings []domain.Listing) error
}

// ListingService is the listing repository: every mutation is a full
// load-modify-store pass over the collection, matching the single-writer
// model of the blob store.
type ListingService struct {
	store  listingStore
	logger *slog.Logger
}

func NewListingService(store listingStore, logger *slog.Logger) *ListingService {
	return &ListingService{store: store, logger: logger}
}

func (s *ListingService) List(ctx context.Context) []domain.Listing {
	return s.store.Load(ctx)
}

// GetByID returns the listing with the given id, or nil when no such
// listing exists. Absence is not an error; stale ids are a display concern.
func (s *ListingService) GetByID(ctx context.Context, id string) *domain.Listing {
	for _, l := range s.store.Load(ctx) {
		if l.ID == id {
			return &l
		}
	}
	return nil
}

// Upsert saves the listing and returns the refreshed collection. A listing
// without an id is treated as new: it receives a generated id and creation
// timestamp and is prepended, so freshly created listings sort newest-first.
// An existing id is replaced in place, preserving its position.
//
// Field semantics are not validated here; that happens in the form layer
// before Upsert is called.
func (s *ListingService) Upsert(ctx context.Context, listing domain.Listing) ([]domain.Listing, error) {
	if listing.ID == "" {
		listing.ID = domain.NewID()
	}
	if listing.Rating == 0 {
		listing.Rating = domain.DefaultRating
	}
	// The legacy thumbnail field always mirrors the first gallery image.
	if len(listing.Images) > 0 {
		listing.ImageURL = listing.Images[0]
	}

	listings := s.store.Load(ctx)
	replaced := false
	for i := range listings {
		if listings[i].ID == listing.ID {
			// createdAt is immutable across edits; a payload that omits it
			// keeps the stored value.
			if listing.CreatedAt == 0 {
				listing.CreatedAt = listings[i].CreatedAt
			}
			listings[i] = listing
			replaced = true
			break
		}
	}
	if !replaced {
		if listing.CreatedAt == 0 {
			listing.CreatedAt = domain.NowMillis()
		}
		listings = append([]domain.Listing{listing}, listings...)
	}

	if err := s.store.ReplaceAll(ctx, listings); err != nil {
		return nil, fmt.Errorf("failed to save listing: %w", err)
	}

	s.logger.Info("listing saved", "id", listing.ID, "created", !replaced)
	return listings, nil
}

// Remove deletes the listing with the given id and returns the refreshed
// collection. Removing an id that does not exist is a no-op, not an error.
func (s *ListingService) Remove(ctx context.Context, id string) ([]domain.Listing, error) {
	listings := s.store.Load(ctx)

	kept := make([]domain.Listing, 0, len(listings))
	for _, l := range listings {
		if l.ID != id {
			kept = append(kept, l)
		}
	}

	if err := s.store.ReplaceAll(ctx, kept); err != nil {
		return nil, fmt.Errorf("failed to delete listing: %w", err)
	}

	if len(kept) < len(listings) {
		s.logger.Info("listing deleted", "id", id)
	}
	return kept, nil
}
