package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Settings is the shop's bank and shipping configuration. At most one record
// exists per shop; a zero ID means it has not been persisted yet.
type Settings struct {
	ID            string          `json:"id,omitempty"`
	BankName      string          `json:"bankName"`
	AccountNumber string          `json:"accountNumber"`
	AccountName   string          `json:"accountName"`
	ShippingFee   decimal.Decimal `json:"shippingFee"`
	CreatedAt     time.Time       `json:"createdAt"`
}

// Saved reports whether the record exists in the store.
func (s Settings) Saved() bool {
	return s.ID != ""
}

// DefaultSettings is the state before the owner saves anything: empty bank
// fields and a 60 baht shipping fee.
func DefaultSettings() Settings {
	return Settings{ShippingFee: decimal.NewFromInt(60)}
}
