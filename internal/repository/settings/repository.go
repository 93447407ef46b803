package settings

import (
	"context"

	"guppyreal/internal/domain"
)

// Repository persists the single shop settings record. Get returns
// domain.ErrNotFound until the first Create; Create fails with
// domain.ErrAlreadyExists once a record exists.
type Repository interface {
	Get(ctx context.Context) (*domain.Settings, error)
	Create(ctx context.Context, s domain.Settings) (*domain.Settings, error)
	Update(ctx context.Context, s domain.Settings) (*domain.Settings, error)
}
