package browse

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"propluxe/internal/domain"
)

func sampleListing() domain.Listing {
	return domain.Listing{
		ID:           "l1",
		Title:        "Grand Menteng Residence",
		Price:        1500,
		PropertyType: "Villa",
		Location:     "Menteng, Jakarta",
		Amenities:    []string{"Wifi", "Pool"},
	}
}

func TestMatchesDefaultFilterMatchesEverything(t *testing.T) {
	f := domain.DefaultFilter()

	listings := []domain.Listing{
		sampleListing(),
		{ID: "bare"},
		{ID: "pricey", Price: domain.DefaultMaxPrice},
	}
	for _, l := range listings {
		assert.True(t, Matches(&l, &f), "listing %s", l.ID)
	}
}

func TestMatchesLocationSubstringCaseInsensitive(t *testing.T) {
	l := sampleListing()
	f := domain.DefaultFilter()

	f.Location = "menteng"
	assert.True(t, Matches(&l, &f))

	f.Location = "MENTENG, JAK"
	assert.True(t, Matches(&l, &f))

	f.Location = "Bandung"
	assert.False(t, Matches(&l, &f))
}

func TestMatchesPriceBoundsInclusive(t *testing.T) {
	l := sampleListing()
	f := domain.DefaultFilter()

	f.MinPrice, f.MaxPrice = 1500, 1500
	assert.True(t, Matches(&l, &f))

	f.MinPrice, f.MaxPrice = 1501, 2000
	assert.False(t, Matches(&l, &f))

	f.MinPrice, f.MaxPrice = 0, 1499
	assert.False(t, Matches(&l, &f))
}

func TestMatchesPropertyTypeExact(t *testing.T) {
	l := sampleListing()
	f := domain.DefaultFilter()

	f.PropertyTypes = []string{"Villa", "House"}
	assert.True(t, Matches(&l, &f))

	f.PropertyTypes = []string{"Apartment"}
	assert.False(t, Matches(&l, &f))

	// No fuzzy matching on type.
	f.PropertyTypes = []string{"villa"}
	assert.False(t, Matches(&l, &f))
}

func TestMatchesAmenitiesRequiresAll(t *testing.T) {
	l := sampleListing() // Wifi, Pool
	f := domain.DefaultFilter()

	f.Amenities = []string{"Wifi"}
	assert.True(t, Matches(&l, &f))

	f.Amenities = []string{"Wifi", "Pool"}
	assert.True(t, Matches(&l, &f))

	f.Amenities = []string{"Wifi", "Gym"}
	assert.False(t, Matches(&l, &f))
}

func TestApplyPreservesOrder(t *testing.T) {
	listings := make([]domain.Listing, 0, 6)
	for i := 0; i < 6; i++ {
		pt := "Apartment"
		if i%2 == 0 {
			pt = "Villa"
		}
		listings = append(listings, domain.Listing{ID: fmt.Sprintf("l%d", i), PropertyType: pt})
	}

	f := domain.DefaultFilter()
	f.PropertyTypes = []string{"Villa"}

	got := Apply(listings, f)
	assert.Equal(t, []string{"l0", "l2", "l4"}, []string{got[0].ID, got[1].ID, got[2].ID})
}

func TestApplyDoesNotMutateInput(t *testing.T) {
	listings := []domain.Listing{sampleListing()}
	f := domain.DefaultFilter()
	f.PropertyTypes = []string{"Apartment"}

	got := Apply(listings, f)
	assert.Empty(t, got)
	assert.Len(t, listings, 1)
}
