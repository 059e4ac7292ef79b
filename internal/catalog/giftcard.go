package catalog

import (
	"fmt"

	"atelier/internal/model"
)

// GiftCardCategory is the category of synthetic gift card products.
const GiftCardCategory = "Gift Cards"

const giftCardImage = "https://images.unsplash.com/photo-1549465220-1d8c9d9c4703?q=80&w=2070&auto=format&fit=crop"

// Custom gift card amounts must fall within these bounds, in dollars.
const (
	MinGiftCardAmount = 10
	MaxGiftCardAmount = 1000
)

// GiftCardAmounts are the suggested denominations.
var GiftCardAmounts = []int{25, 50, 100, 250, 500}

// GiftCard returns the product representing a gift card of amount dollars.
// Any whole amount between MinGiftCardAmount and MaxGiftCardAmount is accepted.
func GiftCard(amount int) (model.Product, error) {
	if amount < MinGiftCardAmount || amount > MaxGiftCardAmount {
		return model.Product{}, model.ErrInvalidGiftCardAmount
	}

	return model.Product{
		ID:       fmt.Sprintf("gift-card-%d", amount),
		Name:     fmt.Sprintf("Atelier Gift Card - $%d", amount),
		Price:    float64(amount),
		Image:    giftCardImage,
		Category: GiftCardCategory,
		InStock:  true,
	}, nil
}
