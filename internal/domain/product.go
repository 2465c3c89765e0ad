package domain

type ProductType struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type ProductTypeInput struct {
	Name string `json:"name"`
}

// Product is a piece of rental equipment. Available is owned by the remote
// service and flips when a rental starts or finishes; the dashboard never sets it.
type Product struct {
	ID          int64       `json:"id"`
	ProductType ProductType `json:"productType"`
	Name        string      `json:"name"`
	Size        string      `json:"size"`
	Description string      `json:"description"`
	BasePrice   float64     `json:"basePrice"`
	Available   bool        `json:"available"`
}

type ProductInput struct {
	ProductTypeID int64   `json:"productTypeId"`
	Name          string  `json:"name"`
	Size          string  `json:"size"`
	Description   string  `json:"description"`
	BasePrice     float64 `json:"basePrice"`
}

// ProductPrice is a duration tier of a product's daily price.
type ProductPrice struct {
	ID          int64   `json:"id"`
	MinDuration int     `json:"minDuration"`
	MaxDuration int     `json:"maxDuration"`
	DailyPrice  float64 `json:"dailyPrice"`
}

func (p Product) Input() ProductInput {
	return ProductInput{
		ProductTypeID: p.ProductType.ID,
		Name:          p.Name,
		Size:          p.Size,
		Description:   p.Description,
		BasePrice:     p.BasePrice,
	}
}
