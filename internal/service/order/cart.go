package order

import (
	"guppyreal/internal/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Cart accumulates the lines of one order. It is memory-only and scoped to a
// single session; it is never persisted. At most one line exists per
// (breed name, unit kind) pair, and lines keep their insertion order.
type Cart struct {
	lines []domain.CartLine
}

// AddItem records one more unit of the given breed. A line with the same
// (breedName, unit) key gets its quantity bumped by one and keeps the price it
// was first added with; otherwise a new line is appended with quantity 1.
func (c *Cart) AddItem(breedName string, unit domain.UnitKind, unitPrice decimal.Decimal) {
	for i := range c.lines {
		if c.lines[i].BreedName == breedName && c.lines[i].Unit == unit {
			c.lines[i].Quantity++
			return
		}
	}
	c.lines = append(c.lines, domain.CartLine{
		ID:        uuid.NewString(),
		BreedName: breedName,
		Unit:      unit,
		Quantity:  1,
		UnitPrice: unitPrice,
	})
}

// RemoveItem drops the line with the given id. Unknown ids are a no-op; the
// remaining lines keep their relative order.
func (c *Cart) RemoveItem(lineID string) {
	for i := range c.lines {
		if c.lines[i].ID == lineID {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			return
		}
	}
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.lines = nil
}

// Empty reports whether the cart has no lines.
func (c Cart) Empty() bool {
	return len(c.lines) == 0
}

// Lines returns a copy of the cart lines in insertion order.
func (c Cart) Lines() []domain.CartLine {
	out := make([]domain.CartLine, len(c.lines))
	copy(out, c.lines)
	return out
}

// FishSubtotal is the sum over all lines of quantity times unit price.
func (c Cart) FishSubtotal() decimal.Decimal {
	total := decimal.Zero
	for _, l := range c.lines {
		total = total.Add(l.Total())
	}
	return total
}

// GrandTotal adds the shipping fee to the subtotal. An empty cart carries no
// shipping charge: with nothing to ship the fee is waived.
func (c Cart) GrandTotal(shippingFee decimal.Decimal) decimal.Decimal {
	subtotal := c.FishSubtotal()
	if c.Empty() {
		return subtotal
	}
	return subtotal.Add(shippingFee)
}
