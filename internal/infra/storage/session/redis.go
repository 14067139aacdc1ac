package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/m04kA/SBN-BookingService/internal/wizard"
)

const keyPrefix = "sbn:wizard:session:"

// RedisStore хранилище сессий мастера в Redis
// Снимок хранится JSON-строкой с TTL
type RedisStore struct {
	client redis.Cmdable
	ttl    time.Duration
}

// NewRedisStore создает хранилище поверх клиента Redis
func NewRedisStore(client redis.Cmdable, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttl}
}

// Save сохраняет снимок и продлевает срок жизни сессии
func (s *RedisStore) Save(ctx context.Context, id string, snapshot wizard.Snapshot) error {
	payload, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrEncode, err)
	}

	if err := s.client.Set(ctx, keyPrefix+id, payload, s.ttl).Err(); err != nil {
		return fmt.Errorf("%w: Save - set key: %v", ErrStore, err)
	}
	return nil
}

// Get возвращает снимок по ID сессии
func (s *RedisStore) Get(ctx context.Context, id string) (wizard.Snapshot, error) {
	payload, err := s.client.Get(ctx, keyPrefix+id).Bytes()
	if errors.Is(err, redis.Nil) {
		return wizard.Snapshot{}, ErrSessionNotFound
	}
	if err != nil {
		return wizard.Snapshot{}, fmt.Errorf("%w: Get - get key: %v", ErrStore, err)
	}

	var snapshot wizard.Snapshot
	if err := json.Unmarshal(payload, &snapshot); err != nil {
		return wizard.Snapshot{}, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	return snapshot, nil
}

// Delete удаляет сессию
func (s *RedisStore) Delete(ctx context.Context, id string) error {
	if err := s.client.Del(ctx, keyPrefix+id).Err(); err != nil {
		return fmt.Errorf("%w: Delete - del key: %v", ErrStore, err)
	}
	return nil
}
