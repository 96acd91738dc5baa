package services

import (
	"context"
	"fmt"
	"time"

	stderrors "errors"

	"github.com/redis/go-redis/v9"

	"storefront/errors"
	"storefront/models"
)

// RedisDraftStore lưu draft vào Redis với TTL, cho phép draft sống sót
// qua reload trang nhưng tự dọn khi khách bỏ dở.
type RedisDraftStore struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewRedisDraftStore tạo store Redis với TTL cho mỗi draft
func NewRedisDraftStore(rdb *redis.Client, ttl time.Duration) *RedisDraftStore {
	if ttl == 0 {
		ttl = 30 * time.Minute
	}
	return &RedisDraftStore{
		rdb: rdb,
		ttl: ttl,
	}
}

func draftKey(id string) string {
	return fmt.Sprintf("drafts:%s", id)
}

func (s *RedisDraftStore) Get(ctx context.Context, id string) (*models.BookingDraft, error) {
	var draft models.BookingDraft
	if err := GetFromRedis(ctx, s.rdb, draftKey(id), &draft); err != nil {
		if stderrors.Is(err, redis.Nil) {
			return nil, errors.ErrDraftNotFound
		}
		return nil, err
	}
	return &draft, nil
}

func (s *RedisDraftStore) Save(ctx context.Context, draft *models.BookingDraft) error {
	return SetToRedis(ctx, s.rdb, draftKey(draft.ID), draft, s.ttl)
}

func (s *RedisDraftStore) Delete(ctx context.Context, id string) error {
	return DeleteFromRedis(ctx, s.rdb, draftKey(id))
}
