package seed

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/crypto/bcrypt"
)

type breedSeed struct {
	Name       string
	PricePiece string
	PricePair  string
}

// Apply inserts basic seed data for manual testing. It is idempotent via ON CONFLICT.
func Apply(ctx context.Context, pool *pgxpool.Pool) error {
	if err := ensureOwner(ctx, pool, "james", "guppy123", "เจมส์ Guppy"); err != nil {
		return fmt.Errorf("ensure owner: %w", err)
	}

	breeds := []breedSeed{
		{Name: "Full Gold", PricePiece: "100", PricePair: "180"},
		{Name: "Blue Moscow", PricePiece: "150", PricePair: "250"},
		{Name: "Red Dragon", PricePiece: "120", PricePair: "220"},
		{Name: "Albino Koi", PricePiece: "80", PricePair: "150"},
	}
	for _, b := range breeds {
		if err := upsertBreed(ctx, pool, b); err != nil {
			return fmt.Errorf("upsert breed %s: %w", b.Name, err)
		}
	}

	if err := ensureSettings(ctx, pool); err != nil {
		return fmt.Errorf("ensure settings: %w", err)
	}
	return nil
}

func ensureOwner(ctx context.Context, pool *pgxpool.Pool, username, password, shopName string) error {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	_, err = pool.Exec(ctx, `
INSERT INTO users (username, password_hash, shop_name)
VALUES ($1, $2, $3)
ON CONFLICT DO NOTHING
`, username, string(hashed), shopName)
	return err
}

func upsertBreed(ctx context.Context, pool *pgxpool.Pool, b breedSeed) error {
	_, err := pool.Exec(ctx, `
INSERT INTO breeds (name, price_piece, price_pair)
VALUES ($1, $2::numeric, $3::numeric)
ON CONFLICT (name) DO UPDATE SET
    price_piece = EXCLUDED.price_piece,
    price_pair = EXCLUDED.price_pair
`, b.Name, b.PricePiece, b.PricePair)
	return err
}

func ensureSettings(ctx context.Context, pool *pgxpool.Pool) error {
	_, err := pool.Exec(ctx, `
INSERT INTO settings (bank_name, account_number, account_name, shipping_fee)
VALUES ('กสิกรไทย', '123-4-56789-0', 'เจมส์ Guppy', 60)
ON CONFLICT (singleton) DO NOTHING
`)
	return err
}
