package catalog

import (
	"sort"
	"strings"

	"atelier/internal/model"
)

// Sort orders accepted by Search.
const (
	SortFeatured  = "featured"
	SortPriceLow  = "price-low"
	SortPriceHigh = "price-high"
	SortRating    = "rating"
	SortNewest    = "newest"
)

// Filters accepted by Search.
const (
	FilterSale = "sale"
	FilterNew  = "new"
)

// TagNewArrival marks products listed by FilterNew.
const TagNewArrival = "New Arrival"

// Query narrows and orders a product listing.
type Query struct {
	// Search matches name or category, case-insensitively.
	Search string

	// Categories keeps products in any of the listed categories.
	Categories []string

	// MinPrice and MaxPrice bound the price inclusively. A nil bound is open.
	MinPrice *float64
	MaxPrice *float64

	// Filter is FilterSale, FilterNew or empty.
	Filter string

	// Sort is one of the Sort constants; empty means featured.
	Sort string
}

// Search returns the products matching q.
func (c *Catalog) Search(q Query) []model.Product {
	needle := strings.ToLower(strings.TrimSpace(q.Search))

	categories := make(map[string]struct{}, len(q.Categories))
	for _, cat := range q.Categories {
		categories[cat] = struct{}{}
	}

	out := make([]model.Product, 0, len(c.products))
	for _, p := range c.products {
		if needle != "" &&
			!strings.Contains(strings.ToLower(p.Name), needle) &&
			!strings.Contains(strings.ToLower(p.Category), needle) {
			continue
		}
		if len(categories) > 0 {
			if _, ok := categories[p.Category]; !ok {
				continue
			}
		}
		if q.MinPrice != nil && p.Price < *q.MinPrice {
			continue
		}
		if q.MaxPrice != nil && p.Price > *q.MaxPrice {
			continue
		}
		switch q.Filter {
		case FilterSale:
			if p.OriginalPrice == nil {
				continue
			}
		case FilterNew:
			if !p.HasTag(TagNewArrival) {
				continue
			}
		}
		out = append(out, p)
	}

	switch q.Sort {
	case SortPriceLow:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price < out[j].Price })
	case SortPriceHigh:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price > out[j].Price })
	case SortRating:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Rating > out[j].Rating })
	case SortNewest:
		for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
			out[i], out[j] = out[j], out[i]
		}
	}

	return out
}

// ValidSort reports whether s is an accepted sort order.
func ValidSort(s string) bool {
	switch s {
	case "", SortFeatured, SortPriceLow, SortPriceHigh, SortRating, SortNewest:
		return true
	}
	return false
}

// ValidFilter reports whether f is an accepted filter.
func ValidFilter(f string) bool {
	return f == "" || f == FilterSale || f == FilterNew
}
