package rest

import (
	"mountainride-backoffice/internal/repository"
)

// Store groups the remote repositories behind one client
type Store struct {
	repository.AuthRepository
	repository.CustomerRepository
	repository.ProductTypeRepository
	repository.ProductRepository
	repository.RentalRepository
}

func NewStore(client *Client) *Store {
	return &Store{
		AuthRepository:        NewAuthRepository(client),
		CustomerRepository:    NewCustomerRepository(client),
		ProductTypeRepository: NewProductTypeRepository(client),
		ProductRepository:     NewProductRepository(client),
		RentalRepository:      NewRentalRepository(client),
	}
}
