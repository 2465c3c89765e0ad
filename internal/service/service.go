package service

import (
	"context"

	"mountainride-backoffice/internal/domain"
)

type AuthService interface {
	Login(ctx context.Context, email, password string) (*domain.Profile, error)
	Logout(ctx context.Context) error
}

type CustomerService interface {
	ListCustomers(ctx context.Context) ([]domain.Customer, error)
	GetCustomer(ctx context.Context, id int64) (*domain.Customer, error)
	// SaveCustomer creates when id is 0 and updates otherwise
	SaveCustomer(ctx context.Context, id int64, input domain.CustomerInput) (*domain.Customer, error)
	DeleteCustomer(ctx context.Context, id int64) error
	ListCustomerRentals(ctx context.Context, id int64) ([]domain.Rental, error)
}

type ProductTypeService interface {
	ListProductTypes(ctx context.Context) ([]domain.ProductType, error)
	GetProductType(ctx context.Context, id int64) (*domain.ProductType, error)
	SaveProductType(ctx context.Context, id int64, input domain.ProductTypeInput) (*domain.ProductType, error)
	DeleteProductType(ctx context.Context, id int64) error
	ListProductsOfType(ctx context.Context, id int64) ([]domain.Product, error)
}

type ProductService interface {
	ListProducts(ctx context.Context) ([]domain.Product, error)
	ListProductTypes(ctx context.Context) ([]domain.ProductType, error)
	// ListCatalog fetches products and product types concurrently
	ListCatalog(ctx context.Context) ([]domain.Product, []domain.ProductType, error)
	GetProduct(ctx context.Context, id int64) (*domain.Product, error)
	SaveProduct(ctx context.Context, id int64, form ProductForm) (*domain.Product, error)
	DeleteProduct(ctx context.Context, id int64) error
	ListProductPrices(ctx context.Context, id int64) ([]domain.ProductPrice, error)
}

type RentalService interface {
	ListRentals(ctx context.Context) ([]domain.Rental, error)
	GetRental(ctx context.Context, id int64) (*domain.Rental, error)
	ListRentalItems(ctx context.Context, id int64) ([]domain.RentalItem, error)
	SearchRentals(ctx context.Context, criteria domain.RentalSearch) ([]domain.Rental, error)
	StartRental(ctx context.Context, req domain.StartRentalRequest) (*domain.Rental, error)
	FinishRental(ctx context.Context, id int64) (*domain.Rental, error)
	DeleteRental(ctx context.Context, id int64) error
}

type DashboardService interface {
	GetStats(ctx context.Context) (*domain.DashboardStats, error)
}
