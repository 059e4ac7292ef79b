package service

import (
	"context"
	"math"
	"strings"
	"testing"

	"atelier/internal/catalog"
	"atelier/internal/model"
	"atelier/internal/store"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCartService_AddItem(t *testing.T) {
	sessions, _ := newTestSessions(t)
	svc := NewCartService(sessions, catalog.MustBuiltin(), zerolog.Nop())
	ctx := context.Background()

	tests := []struct {
		name          string
		req           *model.AddToCartRequest
		expectedErr   error
		expectedCount int
		expectedTotal float64
	}{
		{
			name:          "Omitted quantity adds one",
			req:           &model.AddToCartRequest{ProductID: "1", Size: strPtr("M"), Color: strPtr("Charcoal")},
			expectedCount: 1,
			expectedTotal: 389,
		},
		{
			name:          "Same selectors merge",
			req:           &model.AddToCartRequest{ProductID: "1", Quantity: 2, Size: strPtr("M"), Color: strPtr("Charcoal")},
			expectedCount: 3,
			expectedTotal: 1167,
		},
		{
			name:          "Other selectors add a line",
			req:           &model.AddToCartRequest{ProductID: "1", Size: strPtr("L"), Color: strPtr("Navy")},
			expectedCount: 4,
			expectedTotal: 1556,
		},
		{
			name:        "Unknown product",
			req:         &model.AddToCartRequest{ProductID: "999"},
			expectedErr: model.ErrProductNotFound,
		},
		{
			name:        "Negative quantity",
			req:         &model.AddToCartRequest{ProductID: "1", Quantity: -1},
			expectedErr: model.ErrInvalidQuantity,
		},
		{
			name:        "Quantity above the line cap",
			req:         &model.AddToCartRequest{ProductID: "1", Quantity: model.MaxLineQuantity + 1},
			expectedErr: model.ErrInvalidQuantity,
		},
		{
			name:        "Overflowing quantity",
			req:         &model.AddToCartRequest{ProductID: "8", Quantity: math.MaxInt},
			expectedErr: model.ErrInvalidQuantity,
		},
		{
			name:        "Size not offered",
			req:         &model.AddToCartRequest{ProductID: "1", Size: strPtr(strings.Repeat("X", 500))},
			expectedErr: model.ErrInvalidSize,
		},
		{
			name:        "Colour not offered",
			req:         &model.AddToCartRequest{ProductID: "1", Size: strPtr("M"), Color: strPtr("Hot Pink")},
			expectedErr: model.ErrInvalidColor,
		},
		{
			name:        "Empty size",
			req:         &model.AddToCartRequest{ProductID: "1", Size: strPtr("")},
			expectedErr: model.ErrInvalidSize,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			view, err := svc.AddItem(ctx, "s1", tt.req)

			if tt.expectedErr != nil {
				assert.Equal(t, tt.expectedErr, err)
				assert.Nil(t, view)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, "s1", view.SessionID)
			assert.Equal(t, tt.expectedCount, view.Count)
			assert.InDelta(t, tt.expectedTotal, view.Total, 0.001)
		})
	}

	assert.Len(t, svc.View(ctx, "s1").Items, 2)
}

func TestCartService_AddItem_RepeatedAddsStayWithinCap(t *testing.T) {
	sessions, _ := newTestSessions(t)
	svc := NewCartService(sessions, catalog.MustBuiltin(), zerolog.Nop())
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := svc.AddItem(ctx, "s1", &model.AddToCartRequest{ProductID: "8", Quantity: model.MaxLineQuantity})
		require.NoError(t, err)
	}

	view := svc.View(ctx, "s1")
	require.Len(t, view.Items, 1)
	assert.Equal(t, model.MaxLineQuantity, view.Items[0].Quantity)
	assert.Equal(t, model.MaxLineQuantity, view.Count)
	assert.InDelta(t, 85.0*model.MaxLineQuantity, view.Total, 0.001)
}

func TestCartService_UpdateAndRemove(t *testing.T) {
	sessions, _ := newTestSessions(t)
	svc := NewCartService(sessions, catalog.MustBuiltin(), zerolog.Nop())
	ctx := context.Background()

	_, err := svc.AddItem(ctx, "s1", &model.AddToCartRequest{ProductID: "2"})
	require.NoError(t, err)
	_, err = svc.AddItem(ctx, "s1", &model.AddToCartRequest{ProductID: "8"})
	require.NoError(t, err)

	view, err := svc.UpdateQuantity(ctx, "s1", "2", 5)
	require.NoError(t, err)
	assert.Equal(t, 6, view.Count)
	assert.InDelta(t, 5*245.0+85, view.Total, 0.001)

	view, err = svc.UpdateQuantity(ctx, "s1", "2", model.MaxLineQuantity+1)
	assert.Equal(t, model.ErrInvalidQuantity, err)
	assert.Nil(t, view)
	assert.Equal(t, 6, svc.View(ctx, "s1").Count)

	view, err = svc.UpdateQuantity(ctx, "s1", "2", 0)
	require.NoError(t, err)
	assert.Equal(t, 1, view.Count)
	require.Len(t, view.Items, 1)
	assert.Equal(t, "8", view.Items[0].ID)

	view = svc.RemoveItem(ctx, "s1", "404")
	assert.Equal(t, 1, view.Count)

	view = svc.RemoveItem(ctx, "s1", "8")
	assert.Equal(t, 0, view.Count)
	assert.Equal(t, 0.0, view.Total)
	assert.NotNil(t, view.Items)
	assert.Empty(t, view.Items)
}

func TestCartService_AddGiftCard(t *testing.T) {
	sessions, _ := newTestSessions(t)
	svc := NewCartService(sessions, catalog.MustBuiltin(), zerolog.Nop())
	ctx := context.Background()

	view, err := svc.AddGiftCard(ctx, "s1", 100)
	require.NoError(t, err)
	require.Len(t, view.Items, 1)
	assert.Equal(t, "gift-card-100", view.Items[0].ID)
	assert.Equal(t, catalog.GiftCardCategory, view.Items[0].Category)

	view, err = svc.AddGiftCard(ctx, "s1", 100)
	require.NoError(t, err)
	assert.Equal(t, 2, view.Count)
	assert.InDelta(t, 200.0, view.Total, 0.001)

	view, err = svc.AddGiftCard(ctx, "s1", 42)
	require.NoError(t, err)
	assert.Len(t, view.Items, 2, "a custom amount is its own line")
	assert.InDelta(t, 242.0, view.Total, 0.001)

	view, err = svc.AddGiftCard(ctx, "s1", 5)
	assert.Equal(t, model.ErrInvalidGiftCardAmount, err)
	assert.Nil(t, view)
}

func TestCartService_SessionsAreIsolatedAndPersisted(t *testing.T) {
	sessions, kv := newTestSessions(t)
	svc := NewCartService(sessions, catalog.MustBuiltin(), zerolog.Nop())
	ctx := context.Background()

	_, err := svc.AddItem(ctx, "alice", &model.AddToCartRequest{ProductID: "4"})
	require.NoError(t, err)

	assert.Equal(t, 0, svc.View(ctx, "bob").Count)

	raw, ok, err := kv.Get(ctx, store.SessionKeys("atelier", "alice").Cart)
	require.NoError(t, err)
	require.True(t, ok)

	cart, err := store.DecodeCart(raw)
	require.NoError(t, err)
	require.Len(t, cart, 1)
	assert.Equal(t, "4", cart[0].ID)

	sessions.Forget("alice")
	assert.Equal(t, 1, svc.View(ctx, "alice").Count)
}
