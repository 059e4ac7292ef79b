package service

import (
	"context"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"atelier/internal/checkout"
	"atelier/internal/model"
	"atelier/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// checkoutService implements CheckoutService.
type checkoutService struct {
	sessions  Sessions
	orderRepo repository.OrderRepository
	newNumber func() string
	now       func() time.Time
	logger    zerolog.Logger
}

// NewCheckoutService creates a new checkout service.
func NewCheckoutService(sessions Sessions, orderRepo repository.OrderRepository, logger zerolog.Logger) CheckoutService {
	return &checkoutService{
		sessions:  sessions,
		orderRepo: orderRepo,
		newNumber: checkout.NewOrderNumber,
		now:       time.Now,
		logger:    logger.With().Str("service", "checkout").Logger(),
	}
}

// Summary prices the cart of sessionID for the given shipping method.
func (s *checkoutService) Summary(ctx context.Context, sessionID, shippingMethod string) (*model.Quote, error) {
	method, err := checkout.ParseShippingMethod(shippingMethod)
	if err != nil {
		return nil, err
	}

	snap := s.sessions.Get(ctx, sessionID).Snapshot()
	quote := checkout.Calculate(snap.Cart, method).Quote()

	return &quote, nil
}

// PlaceOrder records an order for the cart of sessionID. The cart is left as is.
func (s *checkoutService) PlaceOrder(ctx context.Context, sessionID string, req *model.OrderRequest) (*model.OrderResponse, error) {
	method, err := checkout.ParseShippingMethod(req.ShippingMethod)
	if err != nil {
		return nil, err
	}

	addr, perr := mail.ParseAddress(strings.TrimSpace(req.Email))
	if perr != nil {
		s.logger.Debug().Str("email", req.Email).Msg("invalid email")
		return nil, model.ErrInvalidEmail
	}
	email := addr.Address

	snap := s.sessions.Get(ctx, sessionID).Snapshot()
	if len(snap.Cart) == 0 {
		return nil, model.ErrEmptyCart
	}

	b := checkout.Calculate(snap.Cart, method)

	// Start transaction
	tx, err := s.orderRepo.BeginTx(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to begin transaction")
		return nil, fmt.Errorf("failed to place order: %w", err)
	}

	// Ensure transaction is rolled back on error
	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(ctx); rbErr != nil {
				s.logger.Error().Err(rbErr).Msg("failed to rollback transaction")
			}
		}
	}()

	now := s.now()
	order := &model.Order{
		ID:             uuid.New(),
		Number:         s.newNumber(),
		SessionID:      sessionID,
		Email:          email,
		ShippingMethod: string(method),
		Subtotal:       b.Subtotal.StringFixed(2),
		Shipping:       b.Shipping.StringFixed(2),
		Tax:            b.Tax.StringFixed(2),
		Total:          b.Total.StringFixed(2),
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err = s.orderRepo.CreateOrder(ctx, tx, order); err != nil {
		s.logger.Error().Err(err).Str("order_number", order.Number).Msg("failed to create order")
		return nil, fmt.Errorf("failed to place order: %w", err)
	}

	items := make([]model.OrderItem, len(snap.Cart))
	for i, line := range snap.Cart {
		items[i] = model.OrderItem{
			ID:        uuid.New(),
			OrderID:   order.ID,
			ProductID: line.ID,
			Name:      line.Name,
			UnitPrice: checkout.UnitPrice(line.Product).StringFixed(2),
			Quantity:  line.Quantity,
			Size:      line.SelectedSize,
			Color:     line.SelectedColor,
		}
	}

	if err = s.orderRepo.CreateOrderItems(ctx, tx, items); err != nil {
		s.logger.Error().
			Err(err).
			Str("order_number", order.Number).
			Int("item_count", len(items)).
			Msg("failed to create order items")
		return nil, fmt.Errorf("failed to create order items: %w", err)
	}

	// Commit transaction
	if err = tx.Commit(ctx); err != nil {
		s.logger.Error().Err(err).Str("order_number", order.Number).Msg("failed to commit transaction")
		return nil, fmt.Errorf("failed to place order: %w", err)
	}

	s.logger.Info().
		Str("order_number", order.Number).
		Str("total", order.Total).
		Int("item_count", len(items)).
		Msg("order placed successfully")

	return &model.OrderResponse{Order: *order, Items: items}, nil
}

// GetOrder retrieves an order by its number. A mismatched email is reported
// exactly like an unknown number.
func (s *checkoutService) GetOrder(ctx context.Context, number, email string) (*model.OrderResponse, error) {
	number = strings.ToUpper(strings.TrimSpace(number))
	if !checkout.ValidOrderNumber(number) {
		return nil, model.ErrOrderNotFound
	}

	addr, perr := mail.ParseAddress(strings.TrimSpace(email))
	if perr != nil {
		return nil, model.ErrOrderNotFound
	}

	order, items, err := s.orderRepo.GetByNumber(ctx, number)
	if err != nil {
		s.logger.Error().Err(err).Str("order_number", number).Msg("failed to get order")
		return nil, fmt.Errorf("failed to get order: %w", err)
	}

	if order == nil {
		s.logger.Debug().Str("order_number", number).Msg("order not found")
		return nil, model.ErrOrderNotFound
	}

	if !strings.EqualFold(order.Email, addr.Address) {
		s.logger.Debug().Str("order_number", number).Msg("order email mismatch")
		return nil, model.ErrOrderNotFound
	}

	if items == nil {
		items = []model.OrderItem{}
	}

	return &model.OrderResponse{Order: *order, Items: items}, nil
}
