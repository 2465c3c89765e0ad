package service

import (
	"context"
	"errors"

	"mountainride-backoffice/internal/domain"
	"mountainride-backoffice/internal/logger"
	"mountainride-backoffice/internal/repository"
)

var ErrEmptySearch = errors.New("enter a code, a last name or a phone number to search")

type rentalService struct {
	rentalRepo repository.RentalRepository
}

func NewRentalService(rentalRepo repository.RentalRepository) RentalService {
	return &rentalService{rentalRepo: rentalRepo}
}

func (s *rentalService) ListRentals(ctx context.Context) ([]domain.Rental, error) {
	return s.rentalRepo.List(ctx)
}

func (s *rentalService) GetRental(ctx context.Context, id int64) (*domain.Rental, error) {
	return s.rentalRepo.GetByID(ctx, id)
}

func (s *rentalService) ListRentalItems(ctx context.Context, id int64) ([]domain.RentalItem, error) {
	return s.rentalRepo.ListItems(ctx, id)
}

func (s *rentalService) SearchRentals(ctx context.Context, criteria domain.RentalSearch) ([]domain.Rental, error) {
	if criteria.IsEmpty() {
		return nil, ErrEmptySearch
	}
	return s.rentalRepo.Search(ctx, criteria)
}

// StartRental forwards the composite request; pricing and availability are
// decided remotely
func (s *rentalService) StartRental(ctx context.Context, req domain.StartRentalRequest) (*domain.Rental, error) {
	rental, err := s.rentalRepo.Start(ctx, req)
	if err != nil {
		return nil, err
	}
	logger.Info("Rental started", "rental_id", rental.ID, "code", rental.Code, "items", len(req.Items))
	return rental, nil
}

// FinishRental does not check the current status; a second finish is
// rejected by the remote service and that error is returned
func (s *rentalService) FinishRental(ctx context.Context, id int64) (*domain.Rental, error) {
	rental, err := s.rentalRepo.Finish(ctx, id)
	if err != nil {
		return nil, err
	}
	logger.Info("Rental finished", "rental_id", rental.ID, "code", rental.Code)
	return rental, nil
}

func (s *rentalService) DeleteRental(ctx context.Context, id int64) error {
	return s.rentalRepo.Delete(ctx, id)
}
