package domain

import "time"

// User is a registered shop owner account.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	ShopName     string    `json:"shopName"`
	CreatedAt    time.Time `json:"createdAt"`
}
