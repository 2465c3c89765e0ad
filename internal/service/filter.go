package service

import (
	"strings"

	"mountainride-backoffice/internal/domain"
)

// Filters never modify the slice they are given; they return a new one.

type Availability string

const (
	AvailabilityAll         Availability = "all"
	AvailabilityAvailable   Availability = "available"
	AvailabilityUnavailable Availability = "unavailable"
)

type CustomerFilter struct {
	Search string
}

type ProductTypeFilter struct {
	Search string
}

type ProductFilter struct {
	Search       string
	TypeID       int64 // 0 means every type
	Availability Availability
}

type RentalFilter struct {
	Search string
	Status domain.RentalStatus // empty means every status
}

func FilterCustomers(customers []domain.Customer, f CustomerFilter) []domain.Customer {
	term := normalize(f.Search)
	out := make([]domain.Customer, 0, len(customers))
	for _, c := range customers {
		if term != "" &&
			!containsFold(c.FirstName, term) &&
			!containsFold(c.LastName, term) &&
			!containsFold(c.Email, term) &&
			!strings.Contains(c.PhoneNumber, term) {
			continue
		}
		out = append(out, c)
	}
	return out
}

func FilterProductTypes(types []domain.ProductType, f ProductTypeFilter) []domain.ProductType {
	term := normalize(f.Search)
	out := make([]domain.ProductType, 0, len(types))
	for _, pt := range types {
		if term != "" && !containsFold(pt.Name, term) {
			continue
		}
		out = append(out, pt)
	}
	return out
}

func FilterProducts(products []domain.Product, f ProductFilter) []domain.Product {
	term := normalize(f.Search)
	out := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if f.TypeID != 0 && p.ProductType.ID != f.TypeID {
			continue
		}
		switch f.Availability {
		case AvailabilityAvailable:
			if !p.Available {
				continue
			}
		case AvailabilityUnavailable:
			if p.Available {
				continue
			}
		}
		if term != "" &&
			!containsFold(p.Name, term) &&
			!containsFold(p.Size, term) &&
			!containsFold(p.Description, term) {
			continue
		}
		out = append(out, p)
	}
	return out
}

func FilterRentals(rentals []domain.Rental, f RentalFilter) []domain.Rental {
	term := normalize(f.Search)
	out := make([]domain.Rental, 0, len(rentals))
	for _, r := range rentals {
		if f.Status != "" && r.Status != f.Status {
			continue
		}
		if term != "" &&
			!containsFold(r.Code, term) &&
			!containsFold(r.Customer.FirstName, term) &&
			!containsFold(r.Customer.LastName, term) &&
			!strings.Contains(r.Customer.PhoneNumber, term) {
			continue
		}
		out = append(out, r)
	}
	return out
}

// ParseAvailability maps a query value to an Availability, defaulting to all
func ParseAvailability(v string) Availability {
	switch Availability(v) {
	case AvailabilityAvailable, AvailabilityUnavailable:
		return Availability(v)
	default:
		return AvailabilityAll
	}
}

// ParseRentalStatus maps a query value to a status filter; unknown values mean all
func ParseRentalStatus(v string) domain.RentalStatus {
	switch domain.RentalStatus(v) {
	case domain.RentalStatusActive, domain.RentalStatusCompleted:
		return domain.RentalStatus(v)
	default:
		return ""
	}
}

func normalize(term string) string {
	return strings.ToLower(strings.TrimSpace(term))
}

// containsFold reports whether lowered term is a substring of field, ignoring case
func containsFold(field, term string) bool {
	return strings.Contains(strings.ToLower(field), term)
}
