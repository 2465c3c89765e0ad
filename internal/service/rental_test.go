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

func TestRentalService_SearchRentals(t *testing.T) {
	ctx := context.Background()

	t.Run("Empty Criteria", func(t *testing.T) {
		repo := new(MockRentalRepo)
		svc := service.NewRentalService(repo)

		_, err := svc.SearchRentals(ctx, domain.RentalSearch{})
		assert.ErrorIs(t, err, service.ErrEmptySearch)
		repo.AssertNotCalled(t, "Search", mock.Anything, mock.Anything)
	})

	t.Run("Success", func(t *testing.T) {
		repo := new(MockRentalRepo)
		svc := service.NewRentalService(repo)
		criteria := domain.RentalSearch{LastName: "Martin"}
		repo.On("Search", ctx, criteria).Return([]domain.Rental{{ID: 1, Code: "R-1"}}, nil)

		rentals, err := svc.SearchRentals(ctx, criteria)
		require.NoError(t, err)
		assert.Len(t, rentals, 1)
	})
}

func TestRentalService_FinishRental(t *testing.T) {
	ctx := context.Background()
	repo := new(MockRentalRepo)
	svc := service.NewRentalService(repo)

	end := "2026-01-20"
	repo.On("Finish", ctx, int64(3)).Return(&domain.Rental{ID: 3, Status: domain.RentalStatusCompleted, EndDate: &end}, nil).Once()
	repo.On("Finish", ctx, int64(3)).Return(nil, assert.AnError).Once()

	r, err := svc.FinishRental(ctx, 3)
	require.NoError(t, err)
	assert.False(t, r.IsActive())

	_, err = svc.FinishRental(ctx, 3)
	assert.ErrorIs(t, err, assert.AnError)
	repo.AssertExpectations(t)
}

func TestRentalService_StartRental(t *testing.T) {
	ctx := context.Background()
	repo := new(MockRentalRepo)
	svc := service.NewRentalService(repo)

	req := domain.StartRentalRequest{
		Customer: domain.CustomerInput{Email: "lucie@example.com"},
		Items:    []domain.NewRentalItem{{ProductID: 1, Duration: 2}},
	}
	repo.On("Start", ctx, req).Return(&domain.Rental{ID: 7, Code: "R-7", Status: domain.RentalStatusActive}, nil)

	r, err := svc.StartRental(ctx, req)
	require.NoError(t, err)
	assert.True(t, r.IsActive())
}
