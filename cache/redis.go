// Package cache holds the Redis read-through cache in front of the
// approved-airport search. The frontend autocomplete hits that search on
// every keystroke, so results are cached per normalized query with a TTL.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"emptyleg-marketplace/models/airport"

	"github.com/redis/go-redis/v9"
)

type RedisCache struct {
	client    *redis.Client
	searchTTL time.Duration
}

func NewRedisCache(addr, password string, db int, searchTTL time.Duration) *RedisCache {
	return &RedisCache{
		client:    redis.NewClient(&redis.Options{Addr: addr, Password: password, DB: db}),
		searchTTL: searchTTL,
	}
}

// Ping verifies the connection at startup.
func (c *RedisCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

func (c *RedisCache) GetSearch(ctx context.Context, query string) ([]airport.Airport, error) {
	data, err := c.client.Get(ctx, searchKey(query)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}

	var airports []airport.Airport
	if err := json.Unmarshal(data, &airports); err != nil {
		return nil, err
	}
	return airports, nil
}

func (c *RedisCache) SetSearch(ctx context.Context, query string, airports []airport.Airport) error {
	payload, err := json.Marshal(airports)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, searchKey(query), payload, c.searchTTL).Err()
}

// Flush drops every cached search result. Called when an airport approval
// changes the approved set.
func (c *RedisCache) Flush(ctx context.Context) error {
	iter := c.client.Scan(ctx, 0, searchKey("*"), 0).Iterator()
	for iter.Next(ctx) {
		if err := c.client.Del(ctx, iter.Val()).Err(); err != nil {
			return err
		}
	}
	return iter.Err()
}

func searchKey(query string) string {
	return fmt.Sprintf("cache:airports:search:%s", query)
}
