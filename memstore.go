package stockfolio

import (
	"context"
	"errors"
	"sort"
	"sync"
)

// MemoryStore is a Store kept entirely in memory. It backs tests and
// short-lived embeddings; the sqlite package provides the durable store.
type MemoryStore struct {
	mu        sync.RWMutex
	movements []CashMovement
	trades    []Trade
	holdings  map[string]Holding
	gains     []RealizedGain
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{holdings: make(map[string]Holding)}
}

// memUnit stages writes until Commit applies them under the store lock.
type memUnit struct {
	store *MemoryStore
	done  bool

	movements []CashMovement
	trades    []Trade
	holdings  []Holding
	gains     []RealizedGain
}

// Begin implements Store.
func (s *MemoryStore) Begin(_ context.Context) (UnitOfWork, error) {
	return &memUnit{store: s}, nil
}

func (u *memUnit) AppendCashMovement(m CashMovement) error {
	u.movements = append(u.movements, m)
	return nil
}

func (u *memUnit) AppendTrade(t Trade) error {
	u.trades = append(u.trades, t)
	return nil
}

func (u *memUnit) SaveHolding(h Holding) error {
	u.holdings = append(u.holdings, h)
	return nil
}

func (u *memUnit) AppendRealizedGain(g RealizedGain) error {
	u.gains = append(u.gains, g)
	return nil
}

func (u *memUnit) Commit() error {
	if u.done {
		return errors.New("unit of work already ended")
	}
	u.done = true

	s := u.store
	s.mu.Lock()
	defer s.mu.Unlock()
	s.movements = append(s.movements, u.movements...)
	s.trades = append(s.trades, u.trades...)
	for _, h := range u.holdings {
		s.holdings[h.Ticker] = h
	}
	s.gains = append(s.gains, u.gains...)
	return nil
}

func (u *memUnit) Rollback() error {
	if u.done {
		return errors.New("unit of work already ended")
	}
	u.done = true
	return nil
}

// CashBalance implements Store.
func (s *MemoryStore) CashBalance(_ context.Context) (Money, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if len(s.movements) == 0 {
		return Money{}, nil
	}
	return s.movements[len(s.movements)-1].Balance, nil
}

// CashMovements implements Store.
func (s *MemoryStore) CashMovements(_ context.Context) ([]CashMovement, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]CashMovement, len(s.movements))
	copy(out, s.movements)
	return out, nil
}

// Trades implements Store.
func (s *MemoryStore) Trades(_ context.Context) ([]Trade, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Trade, len(s.trades))
	copy(out, s.trades)
	return out, nil
}

// TradesFor implements Store.
func (s *MemoryStore) TradesFor(_ context.Context, ticker string) ([]Trade, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []Trade
	for _, t := range s.trades {
		if t.Ticker == ticker {
			out = append(out, t)
		}
	}
	return out, nil
}

// Holdings implements Store.
func (s *MemoryStore) Holdings(_ context.Context) ([]Holding, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Holding, 0, len(s.holdings))
	for _, h := range s.holdings {
		out = append(out, h)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Ticker < out[j].Ticker })
	return out, nil
}

// Holding implements Store.
func (s *MemoryStore) Holding(_ context.Context, ticker string) (*Holding, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	h, ok := s.holdings[ticker]
	if !ok {
		return nil, nil
	}
	return &h, nil
}

// RealizedGains implements Store.
func (s *MemoryStore) RealizedGains(_ context.Context) ([]RealizedGain, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]RealizedGain, len(s.gains))
	copy(out, s.gains)
	return out, nil
}

// Close implements Store.
func (s *MemoryStore) Close() error { return nil }
