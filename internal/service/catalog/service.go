package catalog

import (
	"context"
	"errors"
	"strings"

	"guppyreal/internal/domain"
	breedrepo "guppyreal/internal/repository/breed"
	settingsrepo "guppyreal/internal/repository/settings"
	"github.com/shopspring/decimal"
)

// Service exposes the breed price list and the shop settings. It owns no
// business logic beyond validation and pass-through CRUD.
type Service struct {
	breeds   breedrepo.Repository
	settings settingsrepo.Repository
}

func New(breeds breedrepo.Repository, settings settingsrepo.Repository) *Service {
	return &Service{breeds: breeds, settings: settings}
}

// BreedInput mirrors the breed form payload.
type BreedInput struct {
	Name          string          `json:"name"`
	PricePerPiece decimal.Decimal `json:"pricePerPiece"`
	PricePerPair  decimal.Decimal `json:"pricePerPair"`
}

func (in BreedInput) validate() error {
	if strings.TrimSpace(in.Name) == "" {
		return errors.New("name required")
	}
	if in.PricePerPiece.IsNegative() || in.PricePerPair.IsNegative() {
		return errors.New("prices must not be negative")
	}
	return nil
}

// ListBreeds returns all breeds ordered by name.
func (s *Service) ListBreeds(ctx context.Context) ([]domain.Breed, error) {
	return s.breeds.List(ctx)
}

// GetBreed returns a single breed by id.
func (s *Service) GetBreed(ctx context.Context, id string) (*domain.Breed, error) {
	return s.breeds.GetByID(ctx, id)
}

// CreateBreed adds a new breed to the price list.
func (s *Service) CreateBreed(ctx context.Context, in BreedInput) (*domain.Breed, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	return s.breeds.Create(ctx, domain.Breed{
		Name:          strings.TrimSpace(in.Name),
		PricePerPiece: in.PricePerPiece,
		PricePerPair:  in.PricePerPair,
	})
}

// UpdateBreed replaces the name and prices of an existing breed.
func (s *Service) UpdateBreed(ctx context.Context, id string, in BreedInput) (*domain.Breed, error) {
	if strings.TrimSpace(id) == "" {
		return nil, errors.New("id required")
	}
	if err := in.validate(); err != nil {
		return nil, err
	}
	return s.breeds.Update(ctx, domain.Breed{
		ID:            id,
		Name:          strings.TrimSpace(in.Name),
		PricePerPiece: in.PricePerPiece,
		PricePerPair:  in.PricePerPair,
	})
}

// DeleteBreed removes a breed from the price list.
func (s *Service) DeleteBreed(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return errors.New("id required")
	}
	return s.breeds.Delete(ctx, id)
}

// Settings returns the persisted shop settings, or the defaults when nothing
// has been saved yet.
func (s *Service) Settings(ctx context.Context) (domain.Settings, error) {
	stored, err := s.settings.Get(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.DefaultSettings(), nil
		}
		return domain.Settings{}, err
	}
	return *stored, nil
}

// SaveSettings persists the shop settings: create when the record was never
// saved, update when it carries an id. The two paths are exclusive.
func (s *Service) SaveSettings(ctx context.Context, in domain.Settings) (*domain.Settings, error) {
	if in.ShippingFee.IsNegative() {
		return nil, errors.New("shipping fee must not be negative")
	}
	if !in.Saved() {
		return s.settings.Create(ctx, in)
	}
	return s.settings.Update(ctx, in)
}
