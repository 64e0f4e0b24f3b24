// Package browse holds the pure query logic of the browse screen: the
// filter predicate and the pagination slicer. Nothing here touches storage
// or mutates its inputs.
package browse

import (
	"slices"
	"strings"

	"propluxe/internal/domain"
)

// Matches reports whether the listing satisfies every clause of the filter.
// The clauses are a plain conjunction: a case-insensitive location substring
// test, inclusive price bounds, exact property-type membership, and an
// all-of amenity check. An empty location token, empty type set, and empty
// amenity set each match everything.
func Matches(l *domain.Listing, f *domain.FilterState) bool {
	if !strings.Contains(strings.ToLower(l.Location), strings.ToLower(f.Location)) {
		return false
	}
	if l.Price < f.MinPrice || l.Price > f.MaxPrice {
		return false
	}
	if len(f.PropertyTypes) > 0 && !slices.Contains(f.PropertyTypes, l.PropertyType) {
		return false
	}
	for _, a := range f.Amenities {
		if !slices.Contains(l.Amenities, a) {
			return false
		}
	}
	return true
}

// Apply filters the collection in order; the result preserves the input
// ordering and is never re-sorted.
func Apply(listings []domain.Listing, f domain.FilterState) []domain.Listing {
	matched := make([]domain.Listing, 0, len(listings))
	for i := range listings {
		if Matches(&listings[i], &f) {
			matched = append(matched, listings[i])
		}
	}
	return matched
}
