// Package catalog serves the read-only product catalogue.
package catalog

import (
	"fmt"

	"atelier/internal/model"
)

// Catalog is an immutable, indexed product list. It is safe for concurrent use.
type Catalog struct {
	products   []model.Product
	byID       map[string]int
	categories []string
}

// New indexes products. Duplicate or empty ids are rejected.
func New(products []model.Product) (*Catalog, error) {
	c := &Catalog{
		products: make([]model.Product, len(products)),
		byID:     make(map[string]int, len(products)),
	}
	copy(c.products, products)

	seen := make(map[string]struct{})
	for i, p := range c.products {
		if p.ID == "" {
			return nil, fmt.Errorf("product at index %d has no id", i)
		}
		if _, dup := c.byID[p.ID]; dup {
			return nil, fmt.Errorf("duplicate product id %q", p.ID)
		}
		c.byID[p.ID] = i

		if _, ok := seen[p.Category]; !ok && p.Category != "" {
			seen[p.Category] = struct{}{}
			c.categories = append(c.categories, p.Category)
		}
	}

	return c, nil
}

// MustBuiltin returns a catalog over Builtin.
func MustBuiltin() *Catalog {
	c, err := New(Builtin())
	if err != nil {
		panic(err)
	}
	return c
}

// All returns every product in catalogue order.
func (c *Catalog) All() []model.Product {
	out := make([]model.Product, len(c.products))
	copy(out, c.products)
	return out
}

// Get returns the product with id.
func (c *Catalog) Get(id string) (model.Product, bool) {
	i, ok := c.byID[id]
	if !ok {
		return model.Product{}, false
	}
	return c.products[i], true
}

// Categories returns the distinct categories in first-seen order.
func (c *Catalog) Categories() []string {
	out := make([]string, len(c.categories))
	copy(out, c.categories)
	return out
}

// Len returns the number of products.
func (c *Catalog) Len() int {
	return len(c.products)
}
