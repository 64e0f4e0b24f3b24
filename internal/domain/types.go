package domain

import (
	"fmt"
	"net/url"
	"time"

	"github.com/google/uuid"
)

// Listing is a rental property record. JSON tags match the stored blob
// format; latitude/longitude are omitted entirely when unknown.
type Listing struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Price        float64  `json:"price"`
	Currency     string   `json:"currency"`
	Bedrooms     float64  `json:"bedrooms"`
	Bathrooms    float64  `json:"bathrooms"`
	Sqft         float64  `json:"sqft"`
	PropertyType string   `json:"propertyType"`
	Location     string   `json:"location"`
	Latitude     *float64 `json:"latitude,omitempty"`
	Longitude    *float64 `json:"longitude,omitempty"`
	Description  string   `json:"description"`
	// ImageURL is the legacy single-image field, kept in sync with
	// Images[0] whenever Images is non-empty.
	ImageURL     string   `json:"imageUrl"`
	Images       []string `json:"images"`
	Amenities    []string `json:"amenities"`
	ContactPhone string   `json:"contactPhone"`
	Available    bool     `json:"available"`
	CreatedAt    int64    `json:"createdAt"`
	Rating       float64  `json:"rating,omitempty"`
}

// HasCoordinates reports whether the listing can be placed on a map.
func (l *Listing) HasCoordinates() bool {
	return l.Latitude != nil && l.Longitude != nil
}

// SetCoordinates sets both coordinate fields at once.
func (l *Listing) SetCoordinates(lat, lng float64) {
	l.Latitude = &lat
	l.Longitude = &lng
}

// ContactLink builds the WhatsApp deep link with a pre-filled enquiry
// message. The phone token is used as-is; no format validation happens here.
func (l *Listing) ContactLink() string {
	msg := fmt.Sprintf("Hi, I'm interested in your property: %s", l.Title)
	return fmt.Sprintf("https://wa.me/%s?text=%s", l.ContactPhone, url.QueryEscape(msg))
}

type ViewState string

const (
	ViewBrowse         ViewState = "BROWSE"
	ViewAdminDashboard ViewState = "ADMIN_DASHBOARD"
	ViewAddListing     ViewState = "ADD_LISTING"
	ViewEditListing    ViewState = "EDIT_LISTING"
	ViewViewListing    ViewState = "VIEW_LISTING"
)

// FilterState is the browse screen's filter. It is session-local and never
// persisted. The zero value is not usable; use DefaultFilter.
type FilterState struct {
	Location      string
	MinPrice      float64
	MaxPrice      float64
	PropertyTypes []string
	Amenities     []string
}

// DefaultFilter returns the no-op filter every listing matches.
func DefaultFilter() FilterState {
	return FilterState{MaxPrice: DefaultMaxPrice}
}

const (
	DefaultCurrency = "$"
	DefaultMaxPrice = 100000
	DefaultRating   = 4.5
)

// PropertyTypes is the known catalog; listings may carry values outside it.
var PropertyTypes = []string{
	"Apartment", "House", "Villa", "Condo", "Bungalow", "Cottage", "Penthouse", "Studio",
}

var AmenityOptions = []string{
	"Wifi", "Kitchen", "Washer", "Dryer", "Air Conditioning",
	"Heating", "Dedicated Workspace", "TV", "Hair Dryer", "Iron",
	"Pool", "Hot Tub", "Gym", "BBQ Grill", "Parking", "Elevator",
	"Garage", "Garden", "Security", "Balcony", "Rooftop", "Concierge",
}

// NewID generates an opaque listing id.
func NewID() string {
	return uuid.NewString()
}

// NowMillis returns the current time as epoch milliseconds, the createdAt
// representation in the stored blob.
func NowMillis() int64 {
	return time.Now().UnixMilli()
}
