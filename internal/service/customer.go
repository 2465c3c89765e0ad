package service

import (
	"context"

	"mountainride-backoffice/internal/domain"
	"mountainride-backoffice/internal/repository"
)

type customerService struct {
	customerRepo repository.CustomerRepository
}

func NewCustomerService(customerRepo repository.CustomerRepository) CustomerService {
	return &customerService{customerRepo: customerRepo}
}

func (s *customerService) ListCustomers(ctx context.Context) ([]domain.Customer, error) {
	return s.customerRepo.List(ctx)
}

func (s *customerService) GetCustomer(ctx context.Context, id int64) (*domain.Customer, error) {
	return s.customerRepo.GetByID(ctx, id)
}

func (s *customerService) SaveCustomer(ctx context.Context, id int64, input domain.CustomerInput) (*domain.Customer, error) {
	var req requiredFields
	req.check("firstName", input.FirstName)
	req.check("lastName", input.LastName)
	req.check("email", input.Email)
	req.check("phoneNumber", input.PhoneNumber)
	if err := req.err(); err != nil {
		return nil, err
	}

	if id == 0 {
		return s.customerRepo.Create(ctx, input)
	}
	return s.customerRepo.Update(ctx, id, input)
}

func (s *customerService) DeleteCustomer(ctx context.Context, id int64) error {
	return s.customerRepo.Delete(ctx, id)
}

func (s *customerService) ListCustomerRentals(ctx context.Context, id int64) ([]domain.Rental, error) {
	return s.customerRepo.ListRentals(ctx, id)
}
