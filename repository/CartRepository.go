package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"storefront/entities"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// CartRepository stores the single shared cart as a whole. Callers do the
// read-modify-write and must serialize it themselves.
type CartRepository interface {
	GetCart(ctx context.Context) (lines []entities.CartLine, err error)
	SetCart(ctx context.Context, lines []entities.CartLine) (err error)
}

type MemoryCartRepo struct {
	mu    sync.RWMutex
	lines []entities.CartLine
}

func NewMemoryCartRepository() *MemoryCartRepo {
	return &MemoryCartRepo{lines: []entities.CartLine{}}
}

func (m *MemoryCartRepo) GetCart(_ context.Context) (lines []entities.CartLine, err error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	lines = cloneLines(m.lines)
	return
}

func (m *MemoryCartRepo) SetCart(_ context.Context, lines []entities.CartLine) (err error) {
	m.mu.Lock()
	m.lines = cloneLines(lines)
	m.mu.Unlock()
	return
}

// RedisCartRepo keeps the cart as one JSON array under key.
type RedisCartRepo struct {
	rdb *redis.Client
	key string
	ttl time.Duration
}

func NewRedisCartRepository(ctx context.Context, redis_conn *redis.Client, key string, ttl time.Duration) (CartRepository, error) {
	if redis_conn == nil {
		return nil, errors.New("conn must be non-nil")
	}
	if key == "" {
		return nil, errors.New("cart key must be non-empty")
	}
	err := redis_conn.Ping(ctx).Err()
	if err != nil {
		return nil, err
	}
	return &RedisCartRepo{
		rdb: redis_conn,
		key: key,
		ttl: ttl,
	}, nil
}

func (c *RedisCartRepo) GetCart(ctx context.Context) (lines []entities.CartLine, err error) {
	lines = []entities.CartLine{}
	val, e := c.rdb.Get(ctx, c.key).Bytes()
	if e != nil {
		if errors.Is(e, redis.Nil) {
			return
		}
		err = fmt.Errorf("GetCart: redis get: %w", e)
		return
	}
	if err = json.Unmarshal(val, &lines); err != nil {
		err = fmt.Errorf("GetCart: unmarshal: %w", err)
	}
	return
}

func (c *RedisCartRepo) SetCart(ctx context.Context, lines []entities.CartLine) (err error) {
	if lines == nil {
		lines = []entities.CartLine{}
	}
	jsonData, err := json.Marshal(lines)
	if err != nil {
		err = fmt.Errorf("SetCart: marshal: %w", err)
		return
	}
	// ttl 0 keeps the key without expiry
	if err = c.rdb.Set(ctx, c.key, jsonData, c.ttl).Err(); err != nil {
		err = fmt.Errorf("SetCart: redis set: %w", err)
	}
	return
}

func cloneLines(lines []entities.CartLine) []entities.CartLine {
	out := make([]entities.CartLine, len(lines))
	copy(out, lines)
	return out
}
