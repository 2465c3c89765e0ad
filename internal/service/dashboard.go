package service

import (
	"context"
	"sort"

	"golang.org/x/sync/errgroup"

	"mountainride-backoffice/internal/domain"
	"mountainride-backoffice/internal/repository"
	"mountainride-backoffice/internal/utils"
)

const recentRentalsLimit = 5

type dashboardService struct {
	productRepo  repository.ProductRepository
	customerRepo repository.CustomerRepository
	rentalRepo   repository.RentalRepository
}

func NewDashboardService(
	productRepo repository.ProductRepository,
	customerRepo repository.CustomerRepository,
	rentalRepo repository.RentalRepository,
) DashboardService {
	return &dashboardService{
		productRepo:  productRepo,
		customerRepo: customerRepo,
		rentalRepo:   rentalRepo,
	}
}

// GetStats loads the three collections together; any failure fails the page
func (s *dashboardService) GetStats(ctx context.Context) (*domain.DashboardStats, error) {
	var (
		products  []domain.Product
		customers []domain.Customer
		rentals   []domain.Rental
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		products, err = s.productRepo.List(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		customers, err = s.customerRepo.List(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		rentals, err = s.rentalRepo.List(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return ComputeStats(products, customers, rentals), nil
}

// ComputeStats derives the dashboard figures without touching its inputs
func ComputeStats(products []domain.Product, customers []domain.Customer, rentals []domain.Rental) *domain.DashboardStats {
	stats := &domain.DashboardStats{
		TotalProducts:  len(products),
		TotalCustomers: len(customers),
	}

	for _, p := range products {
		if p.Available {
			stats.AvailableProducts++
		}
	}

	for _, r := range rentals {
		switch r.Status {
		case domain.RentalStatusActive:
			stats.ActiveRentals++
		case domain.RentalStatusCompleted:
			stats.CompletedRentals++
		}
		stats.TotalRevenue += r.TotalPrice
	}

	recent := make([]domain.Rental, len(rentals))
	copy(recent, rentals)
	sort.SliceStable(recent, func(i, j int) bool {
		return startKey(recent[i]) > startKey(recent[j])
	})
	if len(recent) > recentRentalsLimit {
		recent = recent[:recentRentalsLimit]
	}
	stats.RecentRentals = recent

	return stats
}

// startKey orders rentals by start date; unparseable dates sort last
func startKey(r domain.Rental) int64 {
	t, err := utils.ParseDate(r.StartDate)
	if err != nil {
		return 0
	}
	return t.Unix()
}
