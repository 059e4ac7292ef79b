// Package checkout prices a cart for checkout and numbers placed orders.
package checkout

import (
	"strings"

	"atelier/internal/model"

	"github.com/shopspring/decimal"
)

// ShippingMethod is a delivery option offered at checkout.
type ShippingMethod string

const (
	ShippingStandard ShippingMethod = "standard"
	ShippingExpress  ShippingMethod = "express"
)

var (
	// FreeShippingThreshold is the subtotal from which standard shipping is free.
	FreeShippingThreshold = decimal.NewFromInt(200)
	standardRate          = decimal.RequireFromString("9.99")
	expressRate           = decimal.NewFromInt(15)
	// TaxRate is applied to the subtotal.
	TaxRate = decimal.RequireFromString("0.08")
)

// ParseShippingMethod validates s. An empty value selects standard shipping.
func ParseShippingMethod(s string) (ShippingMethod, error) {
	switch ShippingMethod(strings.ToLower(strings.TrimSpace(s))) {
	case "", ShippingStandard:
		return ShippingStandard, nil
	case ShippingExpress:
		return ShippingExpress, nil
	}
	return "", model.ErrInvalidShipping
}

// Breakdown holds the checkout amounts, each rounded to cents.
type Breakdown struct {
	Method                ShippingMethod
	Subtotal              decimal.Decimal
	Shipping              decimal.Decimal
	Tax                   decimal.Decimal
	Total                 decimal.Decimal
	FreeShipping          bool
	FreeShippingRemaining decimal.Decimal
}

// Subtotal sums price times quantity over lines.
func Subtotal(lines []model.CartLine) decimal.Decimal {
	sum := decimal.Zero
	for _, l := range lines {
		sum = sum.Add(UnitPrice(l.Product).Mul(decimal.NewFromInt(int64(l.Quantity))))
	}
	return sum.Round(2)
}

// UnitPrice returns the product price as a decimal rounded to cents.
func UnitPrice(p model.Product) decimal.Decimal {
	return decimal.NewFromFloat(p.Price).Round(2)
}

// Calculate prices lines for delivery by method.
func Calculate(lines []model.CartLine, method ShippingMethod) Breakdown {
	b := Breakdown{Method: method, Subtotal: Subtotal(lines)}

	switch method {
	case ShippingExpress:
		b.Shipping = expressRate
	default:
		if b.Subtotal.GreaterThanOrEqual(FreeShippingThreshold) {
			b.Shipping = decimal.Zero
			b.FreeShipping = true
		} else {
			b.Shipping = standardRate
		}
	}

	b.FreeShippingRemaining = decimal.Max(decimal.Zero, FreeShippingThreshold.Sub(b.Subtotal))
	b.Tax = b.Subtotal.Mul(TaxRate).Round(2)
	b.Total = b.Subtotal.Add(b.Shipping).Add(b.Tax)

	return b
}

// Quote renders the breakdown for clients.
func (b Breakdown) Quote() model.Quote {
	return model.Quote{
		ShippingMethod:        string(b.Method),
		Subtotal:              b.Subtotal.StringFixed(2),
		Shipping:              b.Shipping.StringFixed(2),
		Tax:                   b.Tax.StringFixed(2),
		Total:                 b.Total.StringFixed(2),
		FreeShipping:          b.FreeShipping,
		FreeShippingRemaining: b.FreeShippingRemaining.StringFixed(2),
	}
}
