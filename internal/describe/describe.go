// Package describe generates listing descriptions from structured property
// facts through a text-generation collaborator.
package describe

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// Params are the property facts the copy is written from.
type Params struct {
	Title     string   `json:"title"`
	Bedrooms  float64  `json:"bedrooms"`
	Bathrooms float64  `json:"bathrooms"`
	Location  string   `json:"location"`
	Amenities []string `json:"amenities"`
	Price     float64  `json:"price"`
}

type Generator interface {
	Describe(ctx context.Context, p Params) (string, error)
}

// Disabled stands in when no backend is configured; every call fails with
// a user-visible error and leaves the description field untouched.
type Disabled struct{}

func (Disabled) Describe(context.Context, Params) (string, error) {
	return "", errors.New("description generation is not configured")
}

// Prompt builds the copywriter prompt shared by generator backends.
func Prompt(p Params) string {
	return fmt.Sprintf(
		`You are a professional real estate copywriter. Write a compelling, attractive, and professional listing description for a rental property with the following details:

Title: %s
Location: %s
Bedrooms: %g
Bathrooms: %g
Price: $%g
Amenities: %s

The description should be approximately 80-120 words. Focus on the lifestyle and key selling points. Do not include markdown formatting like bolding or bullet points, just clean paragraphs.`,
		p.Title, p.Location, p.Bedrooms, p.Bathrooms, p.Price, strings.Join(p.Amenities, ", "))
}
