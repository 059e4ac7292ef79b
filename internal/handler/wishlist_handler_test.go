package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"atelier/internal/model"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestWishlistHandler_Get(t *testing.T) {
	mockService := new(MockWishlistService)
	handler := NewWishlistHandler(mockService, zerolog.Nop())

	view := &model.WishlistView{
		SessionID: "s1",
		IDs:       []string{"3"},
		Products:  []model.Product{{ID: "3", Name: "Tailored Wool Trousers", Price: 195}},
	}
	mockService.On("View", mock.Anything, "s1").Return(view)

	req := withSession(httptest.NewRequest(http.MethodGet, "/api/wishlist", nil), "s1")
	w := httptest.NewRecorder()

	handler.Get(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var got model.WishlistView
	require.NoError(t, json.NewDecoder(w.Body).Decode(&got))
	assert.Equal(t, *view, got)
}

func TestWishlistHandler_Toggle(t *testing.T) {
	logger := zerolog.Nop()

	tests := []struct {
		name           string
		productID      string
		mockReturn     *model.WishlistView
		mockError      error
		expectedStatus int
	}{
		{
			name:           "Toggled",
			productID:      "3",
			mockReturn:     &model.WishlistView{SessionID: "s1", IDs: []string{"3"}},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Unknown product",
			productID:      "999",
			mockError:      model.ErrProductNotFound,
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockWishlistService)
			handler := NewWishlistHandler(mockService, logger)

			var ret interface{}
			if tt.mockReturn != nil {
				ret = tt.mockReturn
			}
			mockService.On("Toggle", mock.Anything, "s1", tt.productID).Return(ret, tt.mockError)

			req := httptest.NewRequest(http.MethodPost, "/api/wishlist/"+tt.productID, nil)
			req.SetPathValue("productId", tt.productID)
			req = withSession(req, "s1")
			w := httptest.NewRecorder()

			handler.Toggle(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			mockService.AssertExpectations(t)
		})
	}
}
