package browse

import "propluxe/internal/domain"

// PageSize is the fixed browse page size.
const PageSize = 10

// Page is one visible slice of a filtered collection.
type Page struct {
	Items      []domain.Listing
	TotalPages int
}

// Paginate slices the collection into the given 1-based page. An empty
// collection has zero pages. An out-of-range page yields an empty slice;
// clamping the page number is the caller's job, not the slicer's.
func Paginate(listings []domain.Listing, pageSize, page int) Page {
	if len(listings) == 0 || pageSize <= 0 {
		return Page{Items: []domain.Listing{}}
	}

	total := (len(listings) + pageSize - 1) / pageSize

	start := (page - 1) * pageSize
	if start < 0 || start >= len(listings) {
		return Page{Items: []domain.Listing{}, TotalPages: total}
	}
	end := start + pageSize
	if end > len(listings) {
		end = len(listings)
	}

	return Page{Items: listings[start:end], TotalPages: total}
}
