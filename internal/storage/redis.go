package storage

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"restaurant-pos/internal/domain"

	"github.com/redis/go-redis/v9"
)

type RedisCache struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisCache(client *redis.Client, ttl time.Duration) *RedisCache {
	return &RedisCache{Client: client, TTL: ttl}
}

func statusKey(ref string) string {
	return "order:status:" + ref
}

// GetSnapshot returns the cached tracking snapshot, or nil on a cold key.
func (c *RedisCache) GetSnapshot(ctx context.Context, ref string) (*domain.StatusSnapshot, error) {
	raw, err := c.Client.Get(ctx, statusKey(ref)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var snap domain.StatusSnapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		return nil, err
	}
	return &snap, nil
}

// SetSnapshot caches the snapshot under both the numeric id and the order
// number, since the tracker polls with either.
func (c *RedisCache) SetSnapshot(ctx context.Context, snap *domain.StatusSnapshot) error {
	raw, _ := json.Marshal(snap)
	if err := c.Client.Set(ctx, statusKey(strconv.Itoa(snap.ID)), raw, c.TTL).Err(); err != nil {
		return err
	}
	return c.Client.Set(ctx, statusKey(snap.OrderNumber), raw, c.TTL).Err()
}

func (c *RedisCache) InvalidateSnapshot(ctx context.Context, id int, orderNumber string) error {
	return c.Client.Del(ctx, statusKey(strconv.Itoa(id)), statusKey(orderNumber)).Err()
}

func dailySalesKey(day string) string {
	return "sales:products:" + day
}

// BumpProductSales increments today's per-product sold-quantity ranking.
func (c *RedisCache) BumpProductSales(ctx context.Context, day string, productID, quantity int) error {
	key := dailySalesKey(day)
	if err := c.Client.ZIncrBy(ctx, key, float64(quantity), strconv.Itoa(productID)).Err(); err != nil {
		return err
	}
	return c.Client.Expire(ctx, key, 7*24*time.Hour).Err()
}

func (c *RedisCache) AddRevenue(ctx context.Context, day string, amount float64) error {
	key := "sales:revenue:" + day
	if err := c.Client.IncrByFloat(ctx, key, amount).Err(); err != nil {
		return err
	}
	return c.Client.Expire(ctx, key, 7*24*time.Hour).Err()
}

// TopProductSales returns (productID, quantity) pairs for the day, best
// sellers first. Empty result means the ranking is cold.
func (c *RedisCache) TopProductSales(ctx context.Context, day string, limit int) (map[int]int, error) {
	members, err := c.Client.ZRevRangeWithScores(ctx, dailySalesKey(day), 0, int64(limit-1)).Result()
	if err != nil {
		return nil, err
	}
	sales := map[int]int{}
	for _, member := range members {
		id, err := strconv.Atoi(member.Member.(string))
		if err != nil {
			continue
		}
		sales[id] = int(member.Score)
	}
	return sales, nil
}
