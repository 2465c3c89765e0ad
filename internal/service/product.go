package service

import (
	"context"
	"strconv"
	"strings"

	"golang.org/x/sync/errgroup"

	"mountainride-backoffice/internal/domain"
	"mountainride-backoffice/internal/repository"
)

// ProductForm is the product editor as submitted: numbers arrive as text
type ProductForm struct {
	ProductTypeID string
	Name          string
	Size          string
	Description   string
	BasePrice     string
}

// NewProductForm seeds the editor from an existing product
func NewProductForm(p domain.Product) ProductForm {
	return ProductForm{
		ProductTypeID: strconv.FormatInt(p.ProductType.ID, 10),
		Name:          p.Name,
		Size:          p.Size,
		Description:   p.Description,
		BasePrice:     strconv.FormatFloat(p.BasePrice, 'f', 2, 64),
	}
}

// Input checks the required fields and converts the form. A number that
// does not parse counts as a missing field.
func (f ProductForm) Input() (domain.ProductInput, error) {
	var req requiredFields
	req.check("productTypeId", f.ProductTypeID)
	req.check("name", f.Name)
	req.check("basePrice", f.BasePrice)

	typeID, typeErr := strconv.ParseInt(strings.TrimSpace(f.ProductTypeID), 10, 64)
	if strings.TrimSpace(f.ProductTypeID) != "" && (typeErr != nil || typeID <= 0) {
		req.missing = append(req.missing, "productTypeId")
	}
	price, priceErr := strconv.ParseFloat(strings.TrimSpace(strings.Replace(f.BasePrice, ",", ".", 1)), 64)
	if strings.TrimSpace(f.BasePrice) != "" && priceErr != nil {
		req.missing = append(req.missing, "basePrice")
	}
	if err := req.err(); err != nil {
		return domain.ProductInput{}, err
	}

	return domain.ProductInput{
		ProductTypeID: typeID,
		Name:          f.Name,
		Size:          f.Size,
		Description:   f.Description,
		BasePrice:     price,
	}, nil
}

type productService struct {
	productRepo repository.ProductRepository
	typeRepo    repository.ProductTypeRepository
}

func NewProductService(productRepo repository.ProductRepository, typeRepo repository.ProductTypeRepository) ProductService {
	return &productService{
		productRepo: productRepo,
		typeRepo:    typeRepo,
	}
}

func (s *productService) ListProducts(ctx context.Context) ([]domain.Product, error) {
	return s.productRepo.List(ctx)
}

func (s *productService) ListProductTypes(ctx context.Context) ([]domain.ProductType, error) {
	return s.typeRepo.List(ctx)
}

func (s *productService) ListCatalog(ctx context.Context) ([]domain.Product, []domain.ProductType, error) {
	var (
		products []domain.Product
		types    []domain.ProductType
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		products, err = s.productRepo.List(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		types, err = s.typeRepo.List(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return products, types, nil
}

func (s *productService) GetProduct(ctx context.Context, id int64) (*domain.Product, error) {
	return s.productRepo.GetByID(ctx, id)
}

func (s *productService) SaveProduct(ctx context.Context, id int64, form ProductForm) (*domain.Product, error) {
	input, err := form.Input()
	if err != nil {
		return nil, err
	}

	if id == 0 {
		return s.productRepo.Create(ctx, input)
	}
	return s.productRepo.Update(ctx, id, input)
}

func (s *productService) DeleteProduct(ctx context.Context, id int64) error {
	return s.productRepo.Delete(ctx, id)
}

func (s *productService) ListProductPrices(ctx context.Context, id int64) ([]domain.ProductPrice, error) {
	return s.productRepo.ListPrices(ctx, id)
}
