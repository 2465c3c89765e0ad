package domain

type RentalStatus string

const (
	RentalStatusActive    RentalStatus = "ACTIVE"
	RentalStatusCompleted RentalStatus = "COMPLETED"
)

// Rental is a customer's rental. Status only moves from ACTIVE to COMPLETED,
// through the remote finish operation.
type Rental struct {
	ID         int64        `json:"id"`
	Customer   Customer     `json:"customer"`
	Code       string       `json:"code"`
	StartDate  string       `json:"startDate"`
	EndDate    *string      `json:"endDate"`
	Status     RentalStatus `json:"status"`
	TotalPrice float64      `json:"totalPrice"`
}

// RentalItem is one product line of a rental, priced by the remote service.
type RentalItem struct {
	ID         int64   `json:"id"`
	Product    Product `json:"product"`
	Duration   int     `json:"duration"`
	DailyPrice float64 `json:"dailyPrice"`
	FinalPrice float64 `json:"finalPrice"`
}

type NewRentalItem struct {
	ProductID int64 `json:"productId"`
	Duration  int   `json:"duration"`
}

// StartRentalRequest is the composite payload of POST /rental/start.
type StartRentalRequest struct {
	Customer CustomerInput   `json:"customer"`
	Items    []NewRentalItem `json:"items"`
}

// RentalSearch holds the optional criteria of GET /rental/search.
type RentalSearch struct {
	Code        string
	LastName    string
	PhoneNumber string
}

func (s RentalSearch) IsEmpty() bool {
	return s.Code == "" && s.LastName == "" && s.PhoneNumber == ""
}

func (r Rental) IsActive() bool {
	return r.Status == RentalStatusActive
}
