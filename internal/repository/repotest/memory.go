// Package repotest provides in-memory repository implementations for
// tests that exercise pipeline behavior without a database.
package repotest

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/capturedesk/capturedesk/constants"
	"github.com/capturedesk/capturedesk/internal/common"
	"github.com/capturedesk/capturedesk/internal/entity"
)

// MemItems is an in-memory ItemRepository.
type MemItems struct {
	mu    sync.Mutex
	items map[uuid.UUID]*entity.ProcessedItem
}

func NewMemItems() *MemItems {
	return &MemItems{items: map[uuid.UUID]*entity.ProcessedItem{}}
}

func (m *MemItems) Get(_ context.Context, id uuid.UUID) (*entity.ProcessedItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	it, ok := m.items[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	cp := *it
	return &cp, nil
}

func (m *MemItems) Exists(_ context.Context, id uuid.UUID) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.items[id]
	return ok, nil
}

func (m *MemItems) Create(_ context.Context, item *entity.ProcessedItem) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.items[item.ID]; ok {
		return common.ErrConflict
	}
	item.UpdatedAt = time.Now()
	cp := *item
	m.items[item.ID] = &cp
	return nil
}

func (m *MemItems) Save(_ context.Context, item *entity.ProcessedItem) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.items[item.ID]; !ok {
		return common.ErrNotFound
	}
	item.UpdatedAt = time.Now()
	cp := *item
	m.items[item.ID] = &cp
	return nil
}

func (m *MemItems) Delete(_ context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.items, id)
	return nil
}

func (m *MemItems) List(_ context.Context, status *constants.ItemStatus, limit int) ([]*entity.ProcessedItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*entity.ProcessedItem
	for _, it := range m.items {
		if status != nil && it.Status != *status {
			continue
		}
		cp := *it
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (m *MemItems) ListBySession(_ context.Context, sessionID string) ([]*entity.ProcessedItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*entity.ProcessedItem
	for _, it := range m.items {
		if it.SessionID == sessionID {
			cp := *it
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (m *MemItems) ListCreatedSince(_ context.Context, cutoff time.Time) ([]*entity.ProcessedItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*entity.ProcessedItem
	for _, it := range m.items {
		if !it.CreatedAt.Before(cutoff) {
			cp := *it
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (m *MemItems) ReassignSession(_ context.Context, from, to string) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, it := range m.items {
		if it.SessionID == from {
			it.SessionID = to
			n++
		}
	}
	return n, nil
}

func (m *MemItems) ResetStaleProcessing(_ context.Context, olderThan time.Time) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, it := range m.items {
		if it.Status == constants.StatusProcessing && it.UpdatedAt.Before(olderThan) {
			it.Status = constants.StatusQueued
			n++
		}
	}
	return n, nil
}

// SetUpdatedAt backdates a stored item, for stale-processing tests.
func (m *MemItems) SetUpdatedAt(id uuid.UUID, at time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if it, ok := m.items[id]; ok {
		it.UpdatedAt = at
	}
}

// MemCaptures is an in-memory CaptureRepository.
type MemCaptures struct {
	mu       sync.Mutex
	captures map[uuid.UUID]*entity.CaptureInput
}

func NewMemCaptures() *MemCaptures {
	return &MemCaptures{captures: map[uuid.UUID]*entity.CaptureInput{}}
}

func (m *MemCaptures) Create(_ context.Context, c *entity.CaptureInput) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *c
	m.captures[c.ID] = &cp
	return nil
}

func (m *MemCaptures) Get(_ context.Context, id uuid.UUID) (*entity.CaptureInput, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.captures[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	cp := *c
	return &cp, nil
}

func (m *MemCaptures) Delete(_ context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.captures, id)
	return nil
}

func (m *MemCaptures) ListPending(_ context.Context) ([]*entity.CaptureInput, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*entity.CaptureInput
	for _, c := range m.captures {
		cp := *c
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

// MemSessions is an in-memory SessionRepository.
type MemSessions struct {
	mu       sync.Mutex
	sessions map[string]*entity.Session
}

func NewMemSessions() *MemSessions {
	return &MemSessions{sessions: map[string]*entity.Session{}}
}

func (m *MemSessions) Get(_ context.Context, id string) (*entity.Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	cp := *s
	return &cp, nil
}

func (m *MemSessions) Create(_ context.Context, s *entity.Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.sessions[s.SessionID]; ok {
		return common.ErrConflict
	}
	cp := *s
	m.sessions[s.SessionID] = &cp
	return nil
}

func (m *MemSessions) Save(_ context.Context, s *entity.Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.sessions[s.SessionID]; !ok {
		return common.ErrNotFound
	}
	cp := *s
	m.sessions[s.SessionID] = &cp
	return nil
}

func (m *MemSessions) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, id)
	return nil
}

func (m *MemSessions) ListAll(_ context.Context) ([]*entity.Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*entity.Session
	for _, s := range m.sessions {
		cp := *s
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}
