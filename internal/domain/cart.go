package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// UnitKind is the sales unit of a cart line: a single fish or a pair.
type UnitKind string

const (
	UnitPiece UnitKind = "piece"
	UnitPair  UnitKind = "pair"
)

// ParseUnitKind validates a wire value against the two allowed kinds.
func ParseUnitKind(s string) (UnitKind, error) {
	switch UnitKind(s) {
	case UnitPiece:
		return UnitPiece, nil
	case UnitPair:
		return UnitPair, nil
	default:
		return "", fmt.Errorf("unknown unit kind %q", s)
	}
}

// Label returns the Thai unit word used in the order summary.
func (u UnitKind) Label() string {
	if u == UnitPair {
		return "คู่"
	}
	return "ตัว"
}

// CartLine is one aggregated order entry. BreedName and UnitPrice are copies
// captured at addition time; later catalog edits do not reach back into them.
type CartLine struct {
	ID        string          `json:"id"`
	BreedName string          `json:"breedName"`
	Unit      UnitKind        `json:"unit"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
}

// Total is quantity times the captured unit price.
func (l CartLine) Total() decimal.Decimal {
	return l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity)))
}
