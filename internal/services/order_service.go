package services

import (
	"context"
	"fmt"

	"handiva/internal/models"
	"handiva/internal/repositories"

	"go.uber.org/zap"
)

// OrderService handles business logic related to orders.
type OrderService struct {
	orderRepo repositories.OrderRepository
}

// NewOrderService creates a new OrderService.
func NewOrderService(orderRepo repositories.OrderRepository) *OrderService {
	return &OrderService{
		orderRepo: orderRepo,
	}
}

// GetOrderByID retrieves a single order by its ID.
func (s *OrderService) GetOrderByID(ctx context.Context, id string) (*models.Order, error) {
	if !validID(id) {
		return nil, ErrInvalidID
	}
	return s.orderRepo.GetByID(ctx, id)
}

// TransitionOrder moves an order to next if the transition table allows it.
func (s *OrderService) TransitionOrder(ctx context.Context, id string, next models.OrderStatus) (*models.Order, error) {
	if !next.Valid() {
		return nil, invalid(fmt.Sprintf("invalid order status: %s", next))
	}
	order, err := s.GetOrderByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !models.CanTransition(order.Status, next) {
		return nil, fmt.Errorf("order %s: %s -> %s: %w", id, order.Status, next, ErrInvalidTransition)
	}
	if err := s.orderRepo.UpdateStatus(ctx, id, next); err != nil {
		return nil, err
	}
	zap.L().Info("order status changed",
		zap.String("order_id", id),
		zap.String("from", string(order.Status)),
		zap.String("to", string(next)))
	order.Status = next
	return order, nil
}
