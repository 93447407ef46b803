package order

import (
	"sync"

	"guppyreal/internal/domain"
	"github.com/shopspring/decimal"
)

// Service keeps one Cart per signed-in session. HTTP handlers run
// concurrently, so every mutation of a cart happens under the registry lock;
// per session that restores strictly serialized cart operations.
type Service struct {
	mu    sync.RWMutex
	carts map[string]*Cart
}

func NewService() *Service {
	return &Service{carts: make(map[string]*Cart)}
}

// AddItem adds one unit of the breed to the session's cart, creating the cart
// on first use.
func (s *Service) AddItem(session, breedName string, unit domain.UnitKind, unitPrice decimal.Decimal) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.carts[session]
	if !ok {
		c = &Cart{}
		s.carts[session] = c
	}
	c.AddItem(breedName, unit, unitPrice)
}

// RemoveLine removes a single line from the session's cart.
func (s *Service) RemoveLine(session, lineID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if c, ok := s.carts[session]; ok {
		c.RemoveItem(lineID)
	}
}

// Clear empties the session's cart.
func (s *Service) Clear(session string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if c, ok := s.carts[session]; ok {
		c.Clear()
	}
}

// Drop discards the session's cart entirely, e.g. on logout.
func (s *Service) Drop(session string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, session)
}

// View returns a snapshot copy of the session's cart. A session without a cart
// views an empty one.
func (s *Service) View(session string) Cart {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.carts[session]
	if !ok {
		return Cart{}
	}
	return Cart{lines: c.Lines()}
}
