package store

import (
	"fmt"
	"math"
	"math/rand"
	"strings"
	"time"

	"propluxe/internal/domain"
)

// SampleCount is the size of the seed dataset written on first run.
const SampleCount = 30

const (
	jakartaLat = -6.2088
	jakartaLng = 106.8456
)

var titlePrefixes = []string{
	"Grand", "Cozy", "Modern", "Luxury", "Urban", "Secluded", "Bright", "Elegant", "Prime", "Chic",
}

var titleSuffixes = []string{
	"Residence", "Villa", "Apartment", "Loft", "Studio", "Haven", "Mansion", "Estate", "Hideaway", "Suites",
}

var seedLocations = []string{
	"Menteng, Jakarta", "Kuningan, Jakarta", "Sudirman, Jakarta", "Kemang, Jakarta",
	"Pondok Indah, Jakarta", "Senopati, Jakarta", "PIK, Jakarta", "Kelapa Gading, Jakarta",
	"Cilandak, Jakarta", "Gandaria, Jakarta",
}

var seedImages = []string{
	"https://images.unsplash.com/photo-1564013799919-ab600027ffc6?auto=format&fit=crop&q=80&w=800",
	"https://images.unsplash.com/photo-1545324418-cc1a3fa10c00?auto=format&fit=crop&q=80&w=800",
	"https://images.unsplash.com/photo-1512917774080-9991f1c4c750?auto=format&fit=crop&q=80&w=800",
	"https://images.unsplash.com/photo-1513584684374-8bab748fbf90?auto=format&fit=crop&q=80&w=800",
	"https://images.unsplash.com/photo-1600596542815-2250657d2fc5?auto=format&fit=crop&q=80&w=800",
	"https://images.unsplash.com/photo-1600607687939-ce8a6c25118c?auto=format&fit=crop&q=80&w=800",
	"https://images.unsplash.com/photo-1600566753190-17f0baa2a6c3?auto=format&fit=crop&q=80&w=800",
	"https://images.unsplash.com/photo-1600210492493-0946911123ea?auto=format&fit=crop&q=80&w=800",
	"https://images.unsplash.com/photo-1600585154340-be6161a56a0c?auto=format&fit=crop&q=80&w=800",
	"https://images.unsplash.com/photo-1512918760532-3edbed4eef8b?auto=format&fit=crop&q=80&w=800",
}

// SampleListings generates the seed dataset: deterministic structure
// (titles, locations, galleries rotate through fixed tables) with field
// values drawn from rng. Callers wanting reproducible output pass a seeded
// source.
func SampleListings(rng *rand.Rand) []domain.Listing {
	listings := make([]domain.Listing, 0, SampleCount)
	now := time.Now().UnixMilli()

	for i := 0; i < SampleCount; i++ {
		prefix := titlePrefixes[i%len(titlePrefixes)]
		suffix := titleSuffixes[(i*3)%len(titleSuffixes)]
		propertyType := domain.PropertyTypes[i%len(domain.PropertyTypes)]
		location := seedLocations[i%len(seedLocations)]
		district, _, _ := strings.Cut(location, ",")

		main := i % len(seedImages)
		gallery := []string{
			seedImages[main],
			seedImages[(main+1)%len(seedImages)],
			seedImages[(main+2)%len(seedImages)],
			seedImages[(main+3)%len(seedImages)],
		}

		l := domain.Listing{
			ID:           fmt.Sprintf("listing-%d", i+1),
			Title:        fmt.Sprintf("%s %s %s", prefix, district, suffix),
			Price:        float64(rng.Intn(4000) + 500),
			Currency:     domain.DefaultCurrency,
			Bedrooms:     float64(rng.Intn(5) + 1),
			Bathrooms:    float64(rng.Intn(3) + 1),
			Sqft:         float64(rng.Intn(3000) + 500),
			PropertyType: propertyType,
			Location:     location,
			Description: fmt.Sprintf(
				"Experience the epitome of %s living in this stunning %s. "+
					"Located in the heart of %s, this property features premium finishes, "+
					"spacious interiors, and breathtaking views. Perfect for those seeking comfort and style.",
				strings.ToLower(prefix), strings.ToLower(propertyType), district),
			ImageURL:     gallery[0],
			Images:       gallery,
			Amenities:    sampleAmenities(rng),
			ContactPhone: "628123456789",
			Available:    rng.Float64() > 0.2,
			CreatedAt:    now - int64(rng.Intn(10000000)),
			Rating:       math.Round((4+rng.Float64())*10) / 10,
		}
		l.SetCoordinates(
			jakartaLat+(rng.Float64()-0.5)*0.1,
			jakartaLng+(rng.Float64()-0.5)*0.1,
		)
		listings = append(listings, l)
	}

	return listings
}

// sampleAmenities picks 3-10 distinct amenities from the catalog.
func sampleAmenities(rng *rand.Rand) []string {
	n := rng.Intn(8) + 3
	picks := rng.Perm(len(domain.AmenityOptions))[:n]

	amenities := make([]string, 0, n)
	for _, idx := range picks {
		amenities = append(amenities, domain.AmenityOptions[idx])
	}
	return amenities
}
