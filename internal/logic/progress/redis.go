package progress

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	defaultKeyPrefix = "progress:decoder:slot"
	defaultTTL       = 7 * 24 * time.Hour
	pendingTTL       = 5 * time.Minute // 进程异常退出时 pending 自动过期
)

// RedisProgressStore 管理 Redis 中的 slot 状态记录（幂等控制）
type RedisProgressStore struct {
	rdb    redis.Cmdable
	prefix string
	ttl    time.Duration
}

// NewRedisProgressStore 创建 Redis 判重存储，prefix 为空时使用默认前缀
func NewRedisProgressStore(rdb redis.Cmdable, prefix string) *RedisProgressStore {
	if prefix == "" {
		prefix = defaultKeyPrefix
	}
	return &RedisProgressStore{rdb: rdb, prefix: prefix, ttl: defaultTTL}
}

func (r *RedisProgressStore) key(slot uint64) string {
	return fmt.Sprintf("%s:%d", r.prefix, slot)
}

// GetSlotStatus 获取 slot 的状态（Unknown / Processed / Invalid / Pending）
func (r *RedisProgressStore) GetSlotStatus(ctx context.Context, slot uint64) (SlotStatus, error) {
	val, err := r.rdb.Get(ctx, r.key(slot)).Int()
	switch {
	case errors.Is(err, redis.Nil):
		return SlotUnknown, nil
	case err != nil:
		return SlotUnknown, fmt.Errorf("redis get slot %d: %w", slot, err)
	}

	switch s := SlotStatus(val); s {
	case SlotProcessed, SlotInvalid, SlotPending:
		return s, nil
	default:
		return SlotUnknown, nil
	}
}

// MarkSlotStatus 设置 slot 的最终状态
func (r *RedisProgressStore) MarkSlotStatus(ctx context.Context, slot uint64, status SlotStatus) error {
	ttl := r.ttl
	if status == SlotPending {
		ttl = pendingTTL
	}
	if err := r.rdb.Set(ctx, r.key(slot), int(status), ttl).Err(); err != nil {
		return fmt.Errorf("redis set slot %d=%s: %w", slot, status, err)
	}
	return nil
}

// TryMarkPending 原子地占用 slot，已被占用或已有结果时返回 false
func (r *RedisProgressStore) TryMarkPending(ctx context.Context, slot uint64) (bool, error) {
	ok, err := r.rdb.SetNX(ctx, r.key(slot), int(SlotPending), pendingTTL).Result()
	if err != nil {
		return false, fmt.Errorf("redis setnx slot %d: %w", slot, err)
	}
	return ok, nil
}
