package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContactLink(t *testing.T) {
	l := Listing{Title: "Grand Menteng Residence", ContactPhone: "628123456789"}

	link := l.ContactLink()
	assert.Equal(t, "https://wa.me/628123456789?text=Hi%2C+I%27m+interested+in+your+property%3A+Grand+Menteng+Residence", link)
}

func TestHasCoordinates(t *testing.T) {
	var l Listing
	assert.False(t, l.HasCoordinates())

	l.SetCoordinates(-6.2088, 106.8456)
	assert.True(t, l.HasCoordinates())
	assert.Equal(t, -6.2088, *l.Latitude)
	assert.Equal(t, 106.8456, *l.Longitude)
}

func TestDefaultFilter(t *testing.T) {
	f := DefaultFilter()

	assert.Empty(t, f.Location)
	assert.Zero(t, f.MinPrice)
	assert.Equal(t, float64(DefaultMaxPrice), f.MaxPrice)
	assert.Empty(t, f.PropertyTypes)
	assert.Empty(t, f.Amenities)
}

func TestNewIDUnique(t *testing.T) {
	assert.NotEqual(t, NewID(), NewID())
}
