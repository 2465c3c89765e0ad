package rest

import (
	"context"
	"net/http"
	"net/url"

	"mountainride-backoffice/internal/domain"
	"mountainride-backoffice/internal/repository"
)

type rentalRepository struct {
	client *Client
}

func NewRentalRepository(client *Client) repository.RentalRepository {
	return &rentalRepository{client: client}
}

func (r *rentalRepository) List(ctx context.Context) ([]domain.Rental, error) {
	var rentals []domain.Rental
	if err := r.client.do(ctx, call{op: "rental.list", method: http.MethodGet, path: "/rental"}, &rentals); err != nil {
		return nil, err
	}
	return rentals, nil
}

func (r *rentalRepository) GetByID(ctx context.Context, id int64) (*domain.Rental, error) {
	var rental domain.Rental
	if err := r.client.do(ctx, call{op: "rental.get", method: http.MethodGet, path: idPath("/rental", id, "")}, &rental); err != nil {
		return nil, err
	}
	return &rental, nil
}

func (r *rentalRepository) ListItems(ctx context.Context, rentalID int64) ([]domain.RentalItem, error) {
	var items []domain.RentalItem
	if err := r.client.do(ctx, call{op: "rental.items", method: http.MethodGet, path: idPath("/rental", rentalID, "/items")}, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// Search only sends the criteria that are set
func (r *rentalRepository) Search(ctx context.Context, criteria domain.RentalSearch) ([]domain.Rental, error) {
	query := url.Values{}
	if criteria.Code != "" {
		query.Set("code", criteria.Code)
	}
	if criteria.LastName != "" {
		query.Set("lastName", criteria.LastName)
	}
	if criteria.PhoneNumber != "" {
		query.Set("phoneNumber", criteria.PhoneNumber)
	}

	var rentals []domain.Rental
	if err := r.client.do(ctx, call{op: "rental.search", method: http.MethodGet, path: "/rental/search", query: query}, &rentals); err != nil {
		return nil, err
	}
	return rentals, nil
}

func (r *rentalRepository) Start(ctx context.Context, req domain.StartRentalRequest) (*domain.Rental, error) {
	var rental domain.Rental
	if err := r.client.do(ctx, call{op: "rental.start", method: http.MethodPost, path: "/rental/start", body: req}, &rental); err != nil {
		return nil, err
	}
	return &rental, nil
}

// Finish does not check the status first; finishing twice is rejected remotely
func (r *rentalRepository) Finish(ctx context.Context, id int64) (*domain.Rental, error) {
	var rental domain.Rental
	if err := r.client.do(ctx, call{op: "rental.finish", method: http.MethodPost, path: idPath("/rental", id, "/finish")}, &rental); err != nil {
		return nil, err
	}
	return &rental, nil
}

func (r *rentalRepository) Delete(ctx context.Context, id int64) error {
	return r.client.do(ctx, call{op: "rental.delete", method: http.MethodDelete, path: idPath("/rental", id, "")}, nil)
}
