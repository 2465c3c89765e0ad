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

func TestCustomerService_SaveCustomer(t *testing.T) {
	ctx := context.Background()
	input := domain.CustomerInput{
		FirstName:   "Lucie",
		LastName:    "Martin",
		Email:       "lucie@example.com",
		PhoneNumber: "0612345678",
	}

	t.Run("Create", func(t *testing.T) {
		repo := new(MockCustomerRepo)
		svc := service.NewCustomerService(repo)
		repo.On("Create", ctx, input).Return(&domain.Customer{ID: 9, FirstName: "Lucie"}, nil)

		c, err := svc.SaveCustomer(ctx, 0, input)
		require.NoError(t, err)
		assert.Equal(t, int64(9), c.ID)
		repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Update", func(t *testing.T) {
		repo := new(MockCustomerRepo)
		svc := service.NewCustomerService(repo)
		repo.On("Update", ctx, int64(9), input).Return(&domain.Customer{ID: 9}, nil)

		_, err := svc.SaveCustomer(ctx, 9, input)
		require.NoError(t, err)
		repo.AssertExpectations(t)
	})

	t.Run("Missing Fields Make No Call", func(t *testing.T) {
		repo := new(MockCustomerRepo)
		svc := service.NewCustomerService(repo)

		_, err := svc.SaveCustomer(ctx, 0, domain.CustomerInput{FirstName: "Lucie", Email: "  "})
		var verr *service.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, []string{"lastName", "email", "phoneNumber"}, verr.Fields)
		assert.Contains(t, err.Error(), "Please fill in all required fields")
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Remote Failure", func(t *testing.T) {
		repo := new(MockCustomerRepo)
		svc := service.NewCustomerService(repo)
		repo.On("Create", ctx, input).Return(nil, assert.AnError)

		_, err := svc.SaveCustomer(ctx, 0, input)
		assert.ErrorIs(t, err, assert.AnError)
	})
}

func TestProductTypeService_SaveProductType(t *testing.T) {
	ctx := context.Background()
	repo := new(MockProductTypeRepo)
	svc := service.NewProductTypeService(repo)

	_, err := svc.SaveProductType(ctx, 0, domain.ProductTypeInput{Name: ""})
	var verr *service.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, []string{"name"}, verr.Fields)

	repo.On("Create", ctx, domain.ProductTypeInput{Name: "Ski"}).Return(&domain.ProductType{ID: 1, Name: "Ski"}, nil)
	pt, err := svc.SaveProductType(ctx, 0, domain.ProductTypeInput{Name: "Ski"})
	require.NoError(t, err)
	assert.Equal(t, "Ski", pt.Name)
	repo.AssertExpectations(t)
}
