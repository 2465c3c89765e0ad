package rest

import (
	"context"
	"net/http"

	"mountainride-backoffice/internal/domain"
	"mountainride-backoffice/internal/repository"
)

type productTypeRepository struct {
	client *Client
}

func NewProductTypeRepository(client *Client) repository.ProductTypeRepository {
	return &productTypeRepository{client: client}
}

func (r *productTypeRepository) List(ctx context.Context) ([]domain.ProductType, error) {
	var types []domain.ProductType
	if err := r.client.do(ctx, call{op: "product_type.list", method: http.MethodGet, path: "/product-type"}, &types); err != nil {
		return nil, err
	}
	return types, nil
}

func (r *productTypeRepository) GetByID(ctx context.Context, id int64) (*domain.ProductType, error) {
	var pt domain.ProductType
	if err := r.client.do(ctx, call{op: "product_type.get", method: http.MethodGet, path: idPath("/product-type", id, "")}, &pt); err != nil {
		return nil, err
	}
	return &pt, nil
}

func (r *productTypeRepository) Create(ctx context.Context, input domain.ProductTypeInput) (*domain.ProductType, error) {
	var pt domain.ProductType
	if err := r.client.do(ctx, call{op: "product_type.create", method: http.MethodPost, path: "/product-type", body: input}, &pt); err != nil {
		return nil, err
	}
	return &pt, nil
}

func (r *productTypeRepository) Update(ctx context.Context, id int64, input domain.ProductTypeInput) (*domain.ProductType, error) {
	var pt domain.ProductType
	if err := r.client.do(ctx, call{op: "product_type.update", method: http.MethodPut, path: idPath("/product-type", id, ""), body: input}, &pt); err != nil {
		return nil, err
	}
	return &pt, nil
}

// Delete may be refused by the remote service while products still use the type
func (r *productTypeRepository) Delete(ctx context.Context, id int64) error {
	return r.client.do(ctx, call{op: "product_type.delete", method: http.MethodDelete, path: idPath("/product-type", id, "")}, nil)
}

func (r *productTypeRepository) ListProducts(ctx context.Context, typeID int64) ([]domain.Product, error) {
	var products []domain.Product
	if err := r.client.do(ctx, call{op: "product_type.products", method: http.MethodGet, path: idPath("/product-type", typeID, "/products")}, &products); err != nil {
		return nil, err
	}
	return products, nil
}
