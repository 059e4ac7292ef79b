package model

import "math"

// ColorVariant is a named colour a product is offered in.
type ColorVariant struct {
	Name string `json:"name"`
	Hex  string `json:"hex"`
}

// Product represents an immutable entry in the Atelier catalogue.
type Product struct {
	ID            string         `json:"id"`
	Name          string         `json:"name"`
	Price         float64        `json:"price"`
	OriginalPrice *float64       `json:"originalPrice,omitempty"`
	Image         string         `json:"image,omitempty"`
	Category      string         `json:"category"`
	Rating        float64        `json:"rating"`
	Reviews       int            `json:"reviews"`
	Description   string         `json:"description"`
	Sizes         []string       `json:"sizes"`
	Colors        []ColorVariant `json:"colors"`
	InStock       bool           `json:"inStock"`
	Tags          []string       `json:"tags"`
}

// OnSale reports whether the product carries a reduced price.
func (p Product) OnSale() bool {
	return p.OriginalPrice != nil && *p.OriginalPrice > p.Price
}

// DiscountPercent returns the rounded discount against the original price,
// or zero when the product is not on sale.
func (p Product) DiscountPercent() int {
	if !p.OnSale() || *p.OriginalPrice == 0 {
		return 0
	}
	return int(math.Round((1 - p.Price / *p.OriginalPrice) * 100))
}

// HasTag reports whether the product is labelled with tag.
func (p Product) HasTag(tag string) bool {
	for _, t := range p.Tags {
		if t == tag {
			return true
		}
	}
	return false
}
