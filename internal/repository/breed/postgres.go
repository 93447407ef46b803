package breed

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

// NewPostgres returns a Repository backed by Postgres.
func NewPostgres(pool *pgxpool.Pool, logger *log.Logger) Repository {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &postgresRepo{pool: pool, logger: logger}
}

func (r *postgresRepo) List(ctx context.Context) ([]domain.Breed, error) {
	const q = `
SELECT id::text, name, price_piece, price_pair, created_at
FROM breeds
ORDER BY name ASC
`
	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		r.logger.Printf("breed repo: list error=%v", err)
		return nil, err
	}
	defer rows.Close()

	var result []domain.Breed
	for rows.Next() {
		var b domain.Breed
		if err := rows.Scan(&b.ID, &b.Name, &b.PricePerPiece, &b.PricePerPair, &b.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, b)
	}
	if err := rows.Err(); err != nil {
		r.logger.Printf("breed repo: list rows error=%v", err)
		return nil, err
	}
	return result, nil
}

func (r *postgresRepo) GetByID(ctx context.Context, id string) (*domain.Breed, error) {
	const q = `
SELECT id::text, name, price_piece, price_pair, created_at
FROM breeds
WHERE id = $1
`
	return r.scanBreed(r.pool.QueryRow(ctx, q, id))
}

func (r *postgresRepo) Create(ctx context.Context, b domain.Breed) (*domain.Breed, error) {
	const q = `
INSERT INTO breeds (name, price_piece, price_pair)
VALUES ($1, $2, $3)
RETURNING id::text, name, price_piece, price_pair, created_at
`
	return r.scanBreed(r.pool.QueryRow(ctx, q, b.Name, b.PricePerPiece, b.PricePerPair))
}

func (r *postgresRepo) Update(ctx context.Context, b domain.Breed) (*domain.Breed, error) {
	const q = `
UPDATE breeds
SET name = $2, price_piece = $3, price_pair = $4
WHERE id = $1
RETURNING id::text, name, price_piece, price_pair, created_at
`
	return r.scanBreed(r.pool.QueryRow(ctx, q, b.ID, b.Name, b.PricePerPiece, b.PricePerPair))
}

func (r *postgresRepo) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM breeds WHERE id = $1`, id)
	if err != nil {
		r.logger.Printf("breed repo: delete id=%s error=%v", id, err)
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *postgresRepo) scanBreed(row pgx.Row) (*domain.Breed, error) {
	var b domain.Breed
	err := row.Scan(&b.ID, &b.Name, &b.PricePerPiece, &b.PricePerPair, &b.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, domain.ErrAlreadyExists
		}
		r.logger.Printf("breed repo: scan error=%v", err)
		return nil, err
	}
	return &b, nil
}
