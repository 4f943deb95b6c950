package service

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	authRepo "gother/internal/repository/auth"
	storeRepo "gother/internal/repository/store"
)

// DashboardStats back-office summary counters
type DashboardStats struct {
	Users        int64 `json:"users"`
	Products     int64 `json:"products"`
	Orders       int64 `json:"orders"`
	RecentOrders int64 `json:"recent_orders"`
}

// StatsService aggregates the dashboard counters.
type StatsService struct {
	userRepo    *authRepo.UserRepo
	productRepo *storeRepo.ProductRepo
	orderRepo   *storeRepo.OrderRepo
}

// NewStatsService creates the stats service
func NewStatsService(
	userRepo *authRepo.UserRepo,
	productRepo *storeRepo.ProductRepo,
	orderRepo *storeRepo.OrderRepo,
) *StatsService {
	return &StatsService{
		userRepo:    userRepo,
		productRepo: productRepo,
		orderRepo:   orderRepo,
	}
}

// Collect counts users, products and orders; recentCutoff bounds the
// recent-orders counter
func (s *StatsService) Collect(ctx context.Context, recentCutoff time.Time) (*DashboardStats, error) {
	users, err := s.userRepo.Count(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	products, err := s.productRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	orders, err := s.orderRepo.CountSince(ctx, time.Time{})
	if err != nil {
		return nil, err
	}
	recent, err := s.orderRepo.CountSince(ctx, recentCutoff)
	if err != nil {
		return nil, err
	}

	return &DashboardStats{
		Users:        users,
		Products:     products,
		Orders:       orders,
		RecentOrders: recent,
	}, nil
}
