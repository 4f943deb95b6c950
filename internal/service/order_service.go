package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"

	"gother/internal/model/auth"
	"gother/internal/model/store"
	storeRepo "gother/internal/repository/store"
)

var (
	ErrOrderNotFound   = errors.New("order not found")
	ErrEmptyOrder      = errors.New("order has no items")
	ErrAccountReadOnly = errors.New("account is read-only")
	ErrInvalidQuantity = errors.New("invalid quantity")
	ErrNotOrderOwner   = errors.New("not the order owner")
)

// OrderLine is one requested catalog item
type OrderLine struct {
	ProductID string `json:"product_id" binding:"required"`
	Quantity  int64  `json:"quantity" binding:"required"`
}

// OrderService owns the purchase flow. Line items are snapshotted from
// the live catalog at placement time and the total is always computed
// server-side.
type OrderService struct {
	orderRepo   *storeRepo.OrderRepo
	productRepo *storeRepo.ProductRepo
}

// NewOrderService creates the order service
func NewOrderService(orderRepo *storeRepo.OrderRepo, productRepo *storeRepo.ProductRepo) *OrderService {
	return &OrderService{
		orderRepo:   orderRepo,
		productRepo: productRepo,
	}
}

// Place creates an order for the signed-in customer. Frozen accounts may
// browse but not buy.
func (s *OrderService) Place(ctx context.Context, user *auth.User, customerName, whatsApp, notes string, lines []OrderLine) (*store.Order, error) {
	if user.Status == auth.UserStatusFrozen {
		return nil, ErrAccountReadOnly
	}
	if len(lines) == 0 {
		return nil, ErrEmptyOrder
	}

	ids := make([]string, 0, len(lines))
	for _, line := range lines {
		if line.Quantity <= 0 {
			return nil, ErrInvalidQuantity
		}
		ids = append(ids, line.ProductID)
	}

	products, err := s.productRepo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]*store.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	items := make([]store.OrderItem, 0, len(lines))
	for _, line := range lines {
		product, ok := byID[line.ProductID]
		if !ok {
			return nil, ErrProductNotFound
		}
		items = append(items, store.OrderItem{
			Product:  *product,
			Quantity: line.Quantity,
		})
	}

	order := &store.Order{
		ID:               fmt.Sprintf("ORD-%d", time.Now().UnixMilli()),
		UserID:           user.ID,
		CustomerName:     customerName,
		CustomerWhatsApp: whatsApp,
		Items:            items,
		Status:           store.OrderStatusPending,
		Notes:            notes,
	}
	order.Total = order.ComputeTotal()

	if err := s.orderRepo.Create(ctx, order); err != nil {
		log.Error().Err(err).Str("user_id", user.ID).Msg("failed to create order")
		return nil, errors.New("failed to create order")
	}

	log.Info().
		Str("order_id", order.ID).
		Str("user_id", user.ID).
		Float64("total", order.Total).
		Msg("order placed")
	return order, nil
}

// ListMine returns the caller's own orders
func (s *OrderService) ListMine(ctx context.Context, userID string) ([]*store.Order, error) {
	return s.orderRepo.List(ctx, bson.M{"user_id": userID})
}

// ListAll returns every order, optionally narrowed by status
func (s *OrderService) ListAll(ctx context.Context, status store.OrderStatus) ([]*store.Order, error) {
	filter := bson.M{}
	if status != "" {
		if !status.IsValid() {
			return nil, errors.New("invalid status")
		}
		filter["status"] = status
	}
	return s.orderRepo.List(ctx, filter)
}

// Get loads an order, enforcing ownership for non-staff callers
func (s *OrderService) Get(ctx context.Context, orderID string, user *auth.User, staff bool) (*store.Order, error) {
	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, ErrOrderNotFound
	}
	if !staff && order.UserID != user.ID {
		return nil, ErrNotOrderOwner
	}
	return order, nil
}

// SetStatus moves an order to a new lifecycle state
func (s *OrderService) SetStatus(ctx context.Context, orderID string, status store.OrderStatus) error {
	if !status.IsValid() {
		return errors.New("invalid status")
	}
	if _, err := s.orderRepo.FindByID(ctx, orderID); err != nil {
		return ErrOrderNotFound
	}
	if err := s.orderRepo.UpdateStatus(ctx, orderID, status); err != nil {
		return err
	}
	log.Info().Str("order_id", orderID).Str("status", string(status)).Msg("order status changed")
	return nil
}

// Delete removes an order permanently
func (s *OrderService) Delete(ctx context.Context, orderID string) error {
	if _, err := s.orderRepo.FindByID(ctx, orderID); err != nil {
		return ErrOrderNotFound
	}
	return s.orderRepo.Delete(ctx, orderID)
}
