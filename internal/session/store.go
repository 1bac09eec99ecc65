package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/GavrielAldrich/PI-Inne/internal/cache"
	"github.com/GavrielAldrich/PI-Inne/internal/model"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

var ErrNotFound = errors.New("session not found")

// Identity is what a request knows about its caller once the session resolves.
type Identity struct {
	UserID int        `json:"user_id"`
	Role   model.Role `json:"role"`
}

func (i Identity) IsAdmin() bool { return i.Role == model.RoleAdmin }

// Store keeps sessions by opaque id.
type Store interface {
	Create(ctx context.Context, ident Identity) (string, error)
	Get(ctx context.Context, id string) (*Identity, error)
	Destroy(ctx context.Context, id string) error
}

var newID = func() string { return uuid.NewString() }

// RedisStore 以 JSON 存放 session，key 為 session:<id>
type RedisStore struct {
	cache cache.Cache
	ttl   time.Duration
}

func NewRedisStore(c cache.Cache, ttl time.Duration) *RedisStore {
	return &RedisStore{cache: c, ttl: ttl}
}

func key(id string) string { return "session:" + id }

func (s *RedisStore) Create(ctx context.Context, ident Identity) (string, error) {
	b, err := json.Marshal(ident)
	if err != nil {
		return "", fmt.Errorf("RedisStore.Create: %w", err)
	}
	id := newID()
	if err := s.cache.Set(ctx, key(id), b, s.ttl).Err(); err != nil {
		return "", fmt.Errorf("RedisStore.Create: %w", err)
	}
	return id, nil
}

func (s *RedisStore) Get(ctx context.Context, id string) (*Identity, error) {
	val, err := s.cache.Get(ctx, key(id)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("RedisStore.Get: %w", err)
	}
	var ident Identity
	if err := json.Unmarshal([]byte(val), &ident); err != nil {
		return nil, fmt.Errorf("RedisStore.Get: %w", err)
	}
	return &ident, nil
}

func (s *RedisStore) Destroy(ctx context.Context, id string) error {
	if err := s.cache.Del(ctx, key(id)).Err(); err != nil {
		return fmt.Errorf("RedisStore.Destroy: %w", err)
	}
	return nil
}

type FakeStore struct {
	CreateFn  func(ctx context.Context, ident Identity) (string, error)
	GetFn     func(ctx context.Context, id string) (*Identity, error)
	DestroyFn func(ctx context.Context, id string) error
}

func (f *FakeStore) Create(ctx context.Context, ident Identity) (string, error) {
	if f.CreateFn != nil {
		return f.CreateFn(ctx, ident)
	}
	panic("unexpected Create")
}

func (f *FakeStore) Get(ctx context.Context, id string) (*Identity, error) {
	if f.GetFn != nil {
		return f.GetFn(ctx, id)
	}
	panic("unexpected Get")
}

func (f *FakeStore) Destroy(ctx context.Context, id string) error {
	if f.DestroyFn != nil {
		return f.DestroyFn(ctx, id)
	}
	panic("unexpected Destroy")
}
