package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Breed is a sellable fish species with per-piece and per-pair prices in baht.
type Breed struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	PricePerPiece decimal.Decimal `json:"pricePerPiece"`
	PricePerPair  decimal.Decimal `json:"pricePerPair"`
	CreatedAt     time.Time       `json:"createdAt"`
}

// PriceFor returns the price for the given unit kind.
func (b Breed) PriceFor(unit UnitKind) decimal.Decimal {
	if unit == UnitPair {
		return b.PricePerPair
	}
	return b.PricePerPiece
}
