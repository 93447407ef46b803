package breed

import (
	"context"

	"guppyreal/internal/domain"
)

type Repository interface {
	List(ctx context.Context) ([]domain.Breed, error)
	GetByID(ctx context.Context, id string) (*domain.Breed, error)
	Create(ctx context.Context, b domain.Breed) (*domain.Breed, error)
	Update(ctx context.Context, b domain.Breed) (*domain.Breed, error)
	Delete(ctx context.Context, id string) error
}
