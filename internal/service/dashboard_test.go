package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"mountainride-backoffice/internal/domain"
	"mountainride-backoffice/internal/service"
)

func TestComputeStats(t *testing.T) {
	products := []domain.Product{{ID: 1, Available: true}, {ID: 2}, {ID: 3, Available: true}}
	customers := []domain.Customer{{ID: 1}, {ID: 2}}
	rentals := []domain.Rental{
		{ID: 1, StartDate: "2026-01-01", Status: domain.RentalStatusCompleted, TotalPrice: 100},
		{ID: 2, StartDate: "2026-01-06", Status: domain.RentalStatusActive, TotalPrice: 50},
		{ID: 3, StartDate: "2026-01-03", Status: domain.RentalStatusCompleted, TotalPrice: 20.5},
		{ID: 4, StartDate: "2026-01-05", Status: domain.RentalStatusActive},
		{ID: 5, StartDate: "2026-01-02", Status: domain.RentalStatusCompleted},
		{ID: 6, StartDate: "2026-01-04", Status: domain.RentalStatusCompleted},
	}

	stats := service.ComputeStats(products, customers, rentals)
	assert.Equal(t, 3, stats.TotalProducts)
	assert.Equal(t, 2, stats.AvailableProducts)
	assert.Equal(t, 2, stats.TotalCustomers)
	assert.Equal(t, 2, stats.ActiveRentals)
	assert.Equal(t, 4, stats.CompletedRentals)
	assert.InDelta(t, 170.5, stats.TotalRevenue, 0.001)

	require.Len(t, stats.RecentRentals, 5)
	var ids []int64
	for _, r := range stats.RecentRentals {
		ids = append(ids, r.ID)
	}
	assert.Equal(t, []int64{2, 4, 6, 3, 5}, ids)
	assert.Equal(t, int64(1), rentals[0].ID)
}

func TestDashboardService_GetStats(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		productRepo := new(MockProductRepo)
		customerRepo := new(MockCustomerRepo)
		rentalRepo := new(MockRentalRepo)
		svc := service.NewDashboardService(productRepo, customerRepo, rentalRepo)

		productRepo.On("List", mock.Anything).Return([]domain.Product{{ID: 1, Available: true}}, nil)
		customerRepo.On("List", mock.Anything).Return([]domain.Customer{{ID: 1}}, nil)
		rentalRepo.On("List", mock.Anything).Return([]domain.Rental{}, nil)

		stats, err := svc.GetStats(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, stats.TotalProducts)
		assert.Empty(t, stats.RecentRentals)
	})

	t.Run("One Failure Fails All", func(t *testing.T) {
		productRepo := new(MockProductRepo)
		customerRepo := new(MockCustomerRepo)
		rentalRepo := new(MockRentalRepo)
		svc := service.NewDashboardService(productRepo, customerRepo, rentalRepo)

		productRepo.On("List", mock.Anything).Return([]domain.Product{}, nil)
		customerRepo.On("List", mock.Anything).Return(nil, assert.AnError)
		rentalRepo.On("List", mock.Anything).Return([]domain.Rental{}, nil)

		stats, err := svc.GetStats(ctx)
		assert.ErrorIs(t, err, assert.AnError)
		assert.Nil(t, stats)
	})
}
