package service

import (
	"context"

	"mountainride-backoffice/internal/domain"
	"mountainride-backoffice/internal/repository"
)

type productTypeService struct {
	typeRepo repository.ProductTypeRepository
}

func NewProductTypeService(typeRepo repository.ProductTypeRepository) ProductTypeService {
	return &productTypeService{typeRepo: typeRepo}
}

func (s *productTypeService) ListProductTypes(ctx context.Context) ([]domain.ProductType, error) {
	return s.typeRepo.List(ctx)
}

func (s *productTypeService) GetProductType(ctx context.Context, id int64) (*domain.ProductType, error) {
	return s.typeRepo.GetByID(ctx, id)
}

func (s *productTypeService) SaveProductType(ctx context.Context, id int64, input domain.ProductTypeInput) (*domain.ProductType, error) {
	var req requiredFields
	req.check("name", input.Name)
	if err := req.err(); err != nil {
		return nil, err
	}

	if id == 0 {
		return s.typeRepo.Create(ctx, input)
	}
	return s.typeRepo.Update(ctx, id, input)
}

// DeleteProductType does not look for referencing products first; the
// remote service refuses the delete and its message is surfaced as is
func (s *productTypeService) DeleteProductType(ctx context.Context, id int64) error {
	return s.typeRepo.Delete(ctx, id)
}

func (s *productTypeService) ListProductsOfType(ctx context.Context, id int64) ([]domain.Product, error) {
	return s.typeRepo.ListProducts(ctx, id)
}
