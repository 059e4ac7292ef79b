package catalog

import (
	"fmt"
	"testing"

	"atelier/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuiltin(t *testing.T) {
	c := MustBuiltin()

	assert.Equal(t, 8, c.Len())

	overcoat, ok := c.Get("1")
	require.True(t, ok)
	assert.Equal(t, "Merino Wool Overcoat", overcoat.Name)
	assert.Equal(t, 389.0, overcoat.Price)
	assert.Equal(t, 25, overcoat.DiscountPercent())
	assert.True(t, overcoat.HasTag(TagNewArrival))

	_, ok = c.Get("999")
	assert.False(t, ok)
}

func TestCatalog_Categories(t *testing.T) {
	c, err := New([]model.Product{
		{ID: "a", Category: "Shirts"},
		{ID: "b", Category: "Knitwear"},
		{ID: "c", Category: "Shirts"},
		{ID: "d", Category: ""},
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"Shirts", "Knitwear"}, c.Categories())
	assert.Len(t, MustBuiltin().Categories(), 8)
}

func TestNew_Errors(t *testing.T) {
	tests := []struct {
		name     string
		products []model.Product
		errMatch string
	}{
		{
			name:     "Missing id",
			products: []model.Product{{ID: "1"}, {Name: "No id"}},
			errMatch: "has no id",
		},
		{
			name:     "Duplicate id",
			products: []model.Product{{ID: "1"}, {ID: "1"}},
			errMatch: "duplicate product id",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := New(tt.products)

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMatch)
			assert.Nil(t, c)
		})
	}
}

func TestCatalog_AllReturnsCopy(t *testing.T) {
	c := MustBuiltin()

	all := c.All()
	all[0].Name = "changed"

	p, _ := c.Get("1")
	assert.Equal(t, "Merino Wool Overcoat", p.Name)
}

func TestGiftCard(t *testing.T) {
	for _, amount := range GiftCardAmounts {
		p, err := GiftCard(amount)
		require.NoError(t, err)
		assert.Equal(t, float64(amount), p.Price)
		assert.Equal(t, GiftCardCategory, p.Category)
	}

	p, err := GiftCard(100)
	require.NoError(t, err)
	assert.Equal(t, "gift-card-100", p.ID)
	assert.Equal(t, "Atelier Gift Card - $100", p.Name)

	tests := []struct {
		name    string
		amount  int
		wantErr bool
	}{
		{name: "Custom amount", amount: 75},
		{name: "Minimum", amount: MinGiftCardAmount},
		{name: "Maximum", amount: MaxGiftCardAmount},
		{name: "Below minimum", amount: MinGiftCardAmount - 1, wantErr: true},
		{name: "Zero", amount: 0, wantErr: true},
		{name: "Negative", amount: -25, wantErr: true},
		{name: "Above maximum", amount: MaxGiftCardAmount + 1, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := GiftCard(tt.amount)
			if tt.wantErr {
				assert.ErrorIs(t, err, model.ErrInvalidGiftCardAmount)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, fmt.Sprintf("gift-card-%d", tt.amount), p.ID)
			assert.Equal(t, float64(tt.amount), p.Price)
		})
	}
}
