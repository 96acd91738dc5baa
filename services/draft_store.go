package services

import (
	"context"
	"sync"

	"storefront/errors"
	"storefront/models"
)

// DraftStore là adapter lưu trữ BookingDraft.
// Bản in-memory dùng cho test, bản Redis dùng cho production.
type DraftStore interface {
	Get(ctx context.Context, id string) (*models.BookingDraft, error)
	Save(ctx context.Context, draft *models.BookingDraft) error
	Delete(ctx context.Context, id string) error
}

// MemoryDraftStore lưu draft trong bộ nhớ
type MemoryDraftStore struct {
	mu     sync.RWMutex
	drafts map[string]*models.BookingDraft
}

// NewMemoryDraftStore tạo store in-memory
func NewMemoryDraftStore() *MemoryDraftStore {
	return &MemoryDraftStore{
		drafts: make(map[string]*models.BookingDraft),
	}
}

func (s *MemoryDraftStore) Get(ctx context.Context, id string) (*models.BookingDraft, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	draft, ok := s.drafts[id]
	if !ok {
		return nil, errors.ErrDraftNotFound
	}
	clone := *draft
	return &clone, nil
}

func (s *MemoryDraftStore) Save(ctx context.Context, draft *models.BookingDraft) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	clone := *draft
	s.drafts[draft.ID] = &clone
	return nil
}

func (s *MemoryDraftStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.drafts, id)
	return nil
}
