package wizard

import (
	"mountainride-backoffice/internal/domain"
	"mountainride-backoffice/internal/utils"
)

// Line is one cart entry: a product and the number of days it is rented for
type Line struct {
	Product  domain.Product
	Duration int
}

// Subtotal is the provisional price of the line
func (l Line) Subtotal() float64 {
	return utils.LineTotal(l.Product.BasePrice, l.Duration)
}

// Cart keeps at most one line per product, in the order products were first
// added. Durations are always positive.
type Cart struct {
	lines []Line
}

func (c *Cart) index(productID int64) int {
	for i, l := range c.lines {
		if l.Product.ID == productID {
			return i
		}
	}
	return -1
}

// Add inserts p with a duration of one day, or adds a day if p is already in
// the cart
func (c *Cart) Add(p domain.Product) {
	if i := c.index(p.ID); i >= 0 {
		c.lines[i].Duration++
		return
	}
	c.lines = append(c.lines, Line{Product: p, Duration: 1})
}

// SetDuration changes the duration of a line; zero or less removes it
func (c *Cart) SetDuration(productID int64, days int) {
	i := c.index(productID)
	if i < 0 {
		return
	}
	if days <= 0 {
		c.lines = append(c.lines[:i], c.lines[i+1:]...)
		return
	}
	c.lines[i].Duration = days
}

func (c *Cart) Remove(productID int64) {
	c.SetDuration(productID, 0)
}

// Lines returns a copy of the cart lines in display order
func (c *Cart) Lines() []Line {
	out := make([]Line, len(c.lines))
	copy(out, c.lines)
	return out
}

func (c *Cart) Len() int {
	return len(c.lines)
}

func (c *Cart) IsEmpty() bool {
	return len(c.lines) == 0
}

// Total is the estimate shown to the operator. Tier pricing is applied
// remotely when the rental starts.
func (c *Cart) Total() float64 {
	var total float64
	for _, l := range c.lines {
		total += l.Subtotal()
	}
	return total
}

// Items converts the cart to the start-rental line items
func (c *Cart) Items() []domain.NewRentalItem {
	items := make([]domain.NewRentalItem, 0, len(c.lines))
	for _, l := range c.lines {
		items = append(items, domain.NewRentalItem{ProductID: l.Product.ID, Duration: l.Duration})
	}
	return items
}

func (c *Cart) Reset() {
	c.lines = nil
}
