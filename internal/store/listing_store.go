package store

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"propluxe/internal/domain"
	"propluxe/internal/kv"
)

// StorageKey is the single slot the whole listing collection lives in. The
// v2 suffix marks the generation that introduced the images gallery; older
// blobs under the same key are upgraded structurally on read.
const StorageKey = "propluxe_listings_v2"

// ListingStore persists the full listing collection as one JSON blob.
type ListingStore struct {
	kv     kv.Store
	logger *slog.Logger
	rng    *rand.Rand
}

func NewListingStore(store kv.Store, logger *slog.Logger) *ListingStore {
	return &ListingStore{
		kv:     store,
		logger: logger,
		rng:    rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// WithRand fixes the sample-data randomness source. Tests inject a seeded
// source so the generated dataset is reproducible.
func (s *ListingStore) WithRand(rng *rand.Rand) *ListingStore {
	s.rng = rng
	return s
}

// Load reads the collection from the slot. An absent slot is seeded with
// the sample dataset. Read or parse failures are logged and degrade to an
// empty collection; Load never fails the caller.
func (s *ListingStore) Load(ctx context.Context) []domain.Listing {
	raw, ok, err := s.kv.Get(ctx, StorageKey)
	if err != nil {
		s.logger.Error("failed to read listing slot", "key", StorageKey, "error", err)
		return []domain.Listing{}
	}

	if !ok {
		listings := SampleListings(s.rng)
		if err := s.ReplaceAll(ctx, listings); err != nil {
			s.logger.Error("failed to seed listings", "error", err)
		}
		s.logger.Info("seeded sample listings", "count", len(listings))
		return listings
	}

	var listings []domain.Listing
	if err := json.Unmarshal([]byte(raw), &listings); err != nil {
		s.logger.Error("failed to parse stored listings", "key", StorageKey, "error", err)
		return []domain.Listing{}
	}

	for i := range listings {
		migrateImages(&listings[i])
	}
	return listings
}

// ReplaceAll overwrites the slot with the given collection in one write.
func (s *ListingStore) ReplaceAll(ctx context.Context, listings []domain.Listing) error {
	data, err := json.Marshal(listings)
	if err != nil {
		return fmt.Errorf("failed to serialize listings: %w", err)
	}
	if err := s.kv.Set(ctx, StorageKey, string(data)); err != nil {
		return fmt.Errorf("failed to write listing slot: %w", err)
	}
	return nil
}

// migrateImages upgrades a pre-gallery record: a missing images field
// becomes a one-element gallery holding the legacy imageUrl, or an empty
// gallery when there is no image at all.
func migrateImages(l *domain.Listing) {
	if l.Images != nil {
		return
	}
	if l.ImageURL != "" {
		l.Images = []string{l.ImageURL}
	} else {
		l.Images = []string{}
	}
}
