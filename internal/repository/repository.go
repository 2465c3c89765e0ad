package repository

import (
	"context"

	"mountainride-backoffice/internal/domain"
)

type AuthRepository interface {
	Login(ctx context.Context, credentials domain.Credentials) (*domain.Profile, error)
}

type CustomerRepository interface {
	List(ctx context.Context) ([]domain.Customer, error)
	GetByID(ctx context.Context, id int64) (*domain.Customer, error)
	Create(ctx context.Context, input domain.CustomerInput) (*domain.Customer, error)
	Update(ctx context.Context, id int64, input domain.CustomerInput) (*domain.Customer, error)
	Delete(ctx context.Context, id int64) error
	ListRentals(ctx context.Context, customerID int64) ([]domain.Rental, error)
}

type ProductTypeRepository interface {
	List(ctx context.Context) ([]domain.ProductType, error)
	GetByID(ctx context.Context, id int64) (*domain.ProductType, error)
	Create(ctx context.Context, input domain.ProductTypeInput) (*domain.ProductType, error)
	Update(ctx context.Context, id int64, input domain.ProductTypeInput) (*domain.ProductType, error)
	Delete(ctx context.Context, id int64) error
	ListProducts(ctx context.Context, typeID int64) ([]domain.Product, error)
}

type ProductRepository interface {
	List(ctx context.Context) ([]domain.Product, error)
	GetByID(ctx context.Context, id int64) (*domain.Product, error)
	Create(ctx context.Context, input domain.ProductInput) (*domain.Product, error)
	Update(ctx context.Context, id int64, input domain.ProductInput) (*domain.Product, error)
	Delete(ctx context.Context, id int64) error
	ListPrices(ctx context.Context, productID int64) ([]domain.ProductPrice, error)
}

type RentalRepository interface {
	List(ctx context.Context) ([]domain.Rental, error)
	GetByID(ctx context.Context, id int64) (*domain.Rental, error)
	ListItems(ctx context.Context, rentalID int64) ([]domain.RentalItem, error)
	Search(ctx context.Context, criteria domain.RentalSearch) ([]domain.Rental, error)
	Start(ctx context.Context, req domain.StartRentalRequest) (*domain.Rental, error)
	Finish(ctx context.Context, id int64) (*domain.Rental, error)
	Delete(ctx context.Context, id int64) error
}
