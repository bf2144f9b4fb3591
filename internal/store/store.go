package store

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"energy-package-roi/internal/config"
)

var ErrNotFound = errors.New("scenario not found")

// Scenario is a saved set of simulation inputs. Results are never stored;
// they are recomputed from Config on demand.
type Scenario struct {
	ID        uuid.UUID     `json:"id"`
	Name      string        `json:"name"`
	Config    config.Config `json:"config"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}

type Store interface {
	// Save inserts or replaces s, assigning an ID when s.ID is zero.
	Save(ctx context.Context, s *Scenario) error
	Get(ctx context.Context, id uuid.UUID) (*Scenario, error)
	List(ctx context.Context) ([]Scenario, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// Memory keeps scenarios for the lifetime of the process.
type Memory struct {
	mu   sync.RWMutex
	rows map[uuid.UUID]Scenario
	now  func() time.Time
}

func NewMemory() *Memory {
	return &Memory{rows: make(map[uuid.UUID]Scenario), now: time.Now}
}

func (m *Memory) Save(_ context.Context, s *Scenario) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now().UTC()
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	if prev, ok := m.rows[s.ID]; ok {
		s.CreatedAt = prev.CreatedAt
	} else {
		s.CreatedAt = now
	}
	s.UpdatedAt = now
	m.rows[s.ID] = *s
	return nil
}

func (m *Memory) Get(_ context.Context, id uuid.UUID) (*Scenario, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	s, ok := m.rows[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &s, nil
}

// List returns scenarios newest first.
func (m *Memory) List(_ context.Context) ([]Scenario, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]Scenario, 0, len(m.rows))
	for _, s := range m.rows {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID.String() < out[j].ID.String()
	})
	return out, nil
}

func (m *Memory) Delete(_ context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.rows[id]; !ok {
		return ErrNotFound
	}
	delete(m.rows, id)
	return nil
}
