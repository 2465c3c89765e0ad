package rest

import (
	"context"
	"net/http"

	"mountainride-backoffice/internal/domain"
	"mountainride-backoffice/internal/repository"
)

type customerRepository struct {
	client *Client
}

func NewCustomerRepository(client *Client) repository.CustomerRepository {
	return &customerRepository{client: client}
}

func (r *customerRepository) List(ctx context.Context) ([]domain.Customer, error) {
	var customers []domain.Customer
	if err := r.client.do(ctx, call{op: "customer.list", method: http.MethodGet, path: "/customer"}, &customers); err != nil {
		return nil, err
	}
	return customers, nil
}

func (r *customerRepository) GetByID(ctx context.Context, id int64) (*domain.Customer, error) {
	var customer domain.Customer
	if err := r.client.do(ctx, call{op: "customer.get", method: http.MethodGet, path: idPath("/customer", id, "")}, &customer); err != nil {
		return nil, err
	}
	return &customer, nil
}

func (r *customerRepository) Create(ctx context.Context, input domain.CustomerInput) (*domain.Customer, error) {
	var customer domain.Customer
	if err := r.client.do(ctx, call{op: "customer.create", method: http.MethodPost, path: "/customer", body: input}, &customer); err != nil {
		return nil, err
	}
	return &customer, nil
}

func (r *customerRepository) Update(ctx context.Context, id int64, input domain.CustomerInput) (*domain.Customer, error) {
	var customer domain.Customer
	if err := r.client.do(ctx, call{op: "customer.update", method: http.MethodPut, path: idPath("/customer", id, ""), body: input}, &customer); err != nil {
		return nil, err
	}
	return &customer, nil
}

func (r *customerRepository) Delete(ctx context.Context, id int64) error {
	return r.client.do(ctx, call{op: "customer.delete", method: http.MethodDelete, path: idPath("/customer", id, "")}, nil)
}

func (r *customerRepository) ListRentals(ctx context.Context, customerID int64) ([]domain.Rental, error) {
	var rentals []domain.Rental
	if err := r.client.do(ctx, call{op: "customer.rentals", method: http.MethodGet, path: idPath("/customer", customerID, "/rentals")}, &rentals); err != nil {
		return nil, err
	}
	return rentals, nil
}
