package settings

import (
	"context"
	"errors"
	"io"
	"log"

	"guppyreal/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type postgresRepo struct {
	pool   *pgxpool.Pool
	logger *log.Logger
}

// NewPostgres returns a Repository backed by Postgres. The settings table
// carries a unique constant column, so at most one row can ever exist.
func NewPostgres(pool *pgxpool.Pool, logger *log.Logger) Repository {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &postgresRepo{pool: pool, logger: logger}
}

func (r *postgresRepo) Get(ctx context.Context) (*domain.Settings, error) {
	const q = `
SELECT id::text, bank_name, account_number, account_name, shipping_fee, created_at
FROM settings
LIMIT 1
`
	return r.scanSettings(r.pool.QueryRow(ctx, q))
}

func (r *postgresRepo) Create(ctx context.Context, s domain.Settings) (*domain.Settings, error) {
	const q = `
INSERT INTO settings (bank_name, account_number, account_name, shipping_fee)
VALUES ($1, $2, $3, $4)
RETURNING id::text, bank_name, account_number, account_name, shipping_fee, created_at
`
	return r.scanSettings(r.pool.QueryRow(ctx, q, s.BankName, s.AccountNumber, s.AccountName, s.ShippingFee))
}

func (r *postgresRepo) Update(ctx context.Context, s domain.Settings) (*domain.Settings, error) {
	const q = `
UPDATE settings
SET bank_name = $2, account_number = $3, account_name = $4, shipping_fee = $5
WHERE id = $1
RETURNING id::text, bank_name, account_number, account_name, shipping_fee, created_at
`
	return r.scanSettings(r.pool.QueryRow(ctx, q, s.ID, s.BankName, s.AccountNumber, s.AccountName, s.ShippingFee))
}

func (r *postgresRepo) scanSettings(row pgx.Row) (*domain.Settings, error) {
	var s domain.Settings
	err := row.Scan(&s.ID, &s.BankName, &s.AccountNumber, &s.AccountName, &s.ShippingFee, &s.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, domain.ErrAlreadyExists
		}
		r.logger.Printf("settings repo: scan error=%v", err)
		return nil, err
	}
	return &s, nil
}
