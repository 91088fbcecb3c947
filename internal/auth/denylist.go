package auth

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// Denylist 记录已登出 Token 的 JTI，直到其原始过期时间
type Denylist interface {
	Add(ctx context.Context, jti string, expiresAt time.Time) error
	Contains(ctx context.Context, jti string) (bool, error)
}

// MemoryDenylist 是进程内的拒绝列表，服务重启会丢失
type MemoryDenylist struct {
	mu      sync.RWMutex
	entries map[string]time.Time
	now     func() time.Time
}

// NewMemoryDenylist 创建内存拒绝列表
func NewMemoryDenylist() *MemoryDenylist {
	return &MemoryDenylist{entries: make(map[string]time.Time), now: time.Now}
}

// Add 将JTI添加到拒绝列表，并清理已过期的条目。
func (d *MemoryDenylist) Add(_ context.Context, jti string, expiresAt time.Time) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.entries[jti] = expiresAt

	now := d.now()
	for id, exp := range d.entries {
		if now.After(exp) {
			delete(d.entries, id)
		}
	}
	return nil
}

// Contains 检查JTI是否在拒绝列表中且尚未过期。
func (d *MemoryDenylist) Contains(_ context.Context, jti string) (bool, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	exp, found := d.entries[jti]
	if !found {
		return false, nil
	}
	return d.now().Before(exp), nil
}

// RedisDenylist 把 JTI 写入 Redis，TTL 为 Token 的剩余有效期，多实例共享
type RedisDenylist struct {
	client *redis.Client
	prefix string
}

// NewRedisDenylist 解析 redisURL 并检查连接
func NewRedisDenylist(redisURL string) (*RedisDenylist, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("connect to redis: %w", err)
	}
	return NewRedisDenylistWithClient(client), nil
}

// NewRedisDenylistWithClient 使用已有的客户端
func NewRedisDenylistWithClient(client *redis.Client) *RedisDenylist {
	return &RedisDenylist{client: client, prefix: "jwt:denylist:"}
}

// Add 已过期的 Token 无需记录
func (d *RedisDenylist) Add(ctx context.Context, jti string, expiresAt time.Time) error {
	ttl := time.Until(expiresAt)
	if ttl <= 0 {
		return nil
	}
	if err := d.client.Set(ctx, d.prefix+jti, expiresAt.Unix(), ttl).Err(); err != nil {
		return fmt.Errorf("denylist token: %w", err)
	}
	return nil
}

func (d *RedisDenylist) Contains(ctx context.Context, jti string) (bool, error) {
	err := d.client.Get(ctx, d.prefix+jti).Err()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("lookup denylist: %w", err)
	}
	return true, nil
}

// Close 关闭 Redis 连接
func (d *RedisDenylist) Close() error {
	return d.client.Close()
}
