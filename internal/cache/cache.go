package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sysu-ecnc-dev/duty-roster/backend/internal/domain"
)

// RosterCache 把按年生成的排班表以 JSON 形式缓存到 redis 中。
// 缓存的是未标记当前值班的表，因为标记结果取决于当前时间
type RosterCache struct {
	client     *redis.Client
	expiration time.Duration
}

func NewRosterCache(client *redis.Client, expiration time.Duration) *RosterCache {
	return &RosterCache{
		client:     client,
		expiration: expiration,
	}
}

func Key(rosterType domain.RosterType, year int) string {
	return fmt.Sprintf("roster:%s:%d", rosterType, year)
}

// Get 在缓存未命中时返回 false 和 nil 错误
func (c *RosterCache) Get(ctx context.Context, rosterType domain.RosterType, year int, dst any) (bool, error) {
	data, err := c.client.Get(ctx, Key(rosterType, year)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, fmt.Errorf("读取缓存 %s 失败: %w", Key(rosterType, year), err)
	}

	if err := json.Unmarshal(data, dst); err != nil {
		return false, fmt.Errorf("缓存 %s 反序列化失败: %w", Key(rosterType, year), err)
	}
	return true, nil
}

func (c *RosterCache) Set(ctx context.Context, rosterType domain.RosterType, year int, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("排班表序列化失败: %w", err)
	}

	if err := c.client.Set(ctx, Key(rosterType, year), data, c.expiration).Err(); err != nil {
		return fmt.Errorf("写入缓存 %s 失败: %w", Key(rosterType, year), err)
	}
	return nil
}
