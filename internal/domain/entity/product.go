package entity

import "time"

// DefaultProductImage is the placeholder image assigned to a product until an
// image is uploaded for it.
const DefaultProductImage = "productDefault.jpg"

// Product is an item offered by a business.
type Product struct {
	ID                  int64
	Name                string
	Category            string
	OriginalPrice       float64
	NewPrice            float64
	PercentageDiscount  float64 // Derived from the two prices, never set by clients.
	OfferExpirationDate time.Time
	Image               string // Stored filename of the uploaded product image.
	BusinessID          int64  // References Business.ID.
}

// RecalculateDiscount derives PercentageDiscount from the original and new
// prices. A non-positive original price leaves the discount at zero.
func (p *Product) RecalculateDiscount() {
	if p.OriginalPrice <= 0 {
		p.PercentageDiscount = 0

		return
	}

	p.PercentageDiscount = (p.OriginalPrice - p.NewPrice) / p.OriginalPrice * 100
}
