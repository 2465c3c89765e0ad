package rest

import (
	"context"
	"net/http"

	"mountainride-backoffice/internal/domain"
	"mountainride-backoffice/internal/repository"
)

type productRepository struct {
	client *Client
}

func NewProductRepository(client *Client) repository.ProductRepository {
	return &productRepository{client: client}
}

func (r *productRepository) List(ctx context.Context) ([]domain.Product, error) {
	var products []domain.Product
	if err := r.client.do(ctx, call{op: "product.list", method: http.MethodGet, path: "/product"}, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (r *productRepository) GetByID(ctx context.Context, id int64) (*domain.Product, error) {
	var product domain.Product
	if err := r.client.do(ctx, call{op: "product.get", method: http.MethodGet, path: idPath("/product", id, "")}, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *productRepository) Create(ctx context.Context, input domain.ProductInput) (*domain.Product, error) {
	var product domain.Product
	if err := r.client.do(ctx, call{op: "product.create", method: http.MethodPost, path: "/product", body: input}, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *productRepository) Update(ctx context.Context, id int64, input domain.ProductInput) (*domain.Product, error) {
	var product domain.Product
	if err := r.client.do(ctx, call{op: "product.update", method: http.MethodPut, path: idPath("/product", id, ""), body: input}, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *productRepository) Delete(ctx context.Context, id int64) error {
	return r.client.do(ctx, call{op: "product.delete", method: http.MethodDelete, path: idPath("/product", id, "")}, nil)
}

func (r *productRepository) ListPrices(ctx context.Context, productID int64) ([]domain.ProductPrice, error) {
	var prices []domain.ProductPrice
	if err := r.client.do(ctx, call{op: "product.prices", method: http.MethodGet, path: idPath("/product", productID, "/prices")}, &prices); err != nil {
		return nil, err
	}
	return prices, nil
}
