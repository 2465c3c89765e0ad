package domain

// DashboardStats summarises the three main collections for the home page.
type DashboardStats struct {
	TotalProducts     int
	AvailableProducts int
	TotalCustomers    int
	ActiveRentals     int
	CompletedRentals  int
	TotalRevenue      float64
	RecentRentals     []Rental
}
