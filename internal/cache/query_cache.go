// Package cache stores filter results in Redis, keyed by catalog version and query.
package cache

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/redis/go-redis/v9"
	"golang.org/x/crypto/blake2b"

	"github.com/rogerio-castellano/furniture-catalog/internal/catalog"
	"github.com/rogerio-castellano/furniture-catalog/internal/models"
)

const DefaultPrefix = "catalog:query:"

type QueryCache struct {
	rdb    *redis.Client
	prefix string
	ttl    time.Duration

	hits   atomic.Uint64
	misses atomic.Uint64
}

type Stats struct {
	Hits   uint64 `json:"hits"`
	Misses uint64 `json:"misses"`
}

func NewQueryCache(rdb *redis.Client, prefix string, ttl time.Duration) *QueryCache {
	if prefix == "" {
		prefix = DefaultPrefix
	}
	return &QueryCache{
		rdb:    rdb,
		prefix: prefix,
		ttl:    ttl,
	}
}

// Key namespaces q under the catalog fingerprint, so results computed for an
// older catalog are never served for a newer one.
func (c *QueryCache) Key(fingerprint string, q catalog.QueryState) string {
	sum := blake2b.Sum256([]byte(q.Normalize().Key()))
	return c.prefix + fingerprint + ":" + hex.EncodeToString(sum[:16])
}

// Get returns the cached result for q. The bool is false on a miss.
func (c *QueryCache) Get(ctx context.Context, fingerprint string, q catalog.QueryState) ([]models.Product, bool, error) {
	data, err := c.rdb.Get(ctx, c.Key(fingerprint, q)).Bytes()
	if errors.Is(err, redis.Nil) {
		c.misses.Add(1)
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("cache get error: %w", err)
	}

	var products []models.Product
	if err := json.Unmarshal(data, &products); err != nil {
		return nil, false, fmt.Errorf("cache unmarshal error: %w", err)
	}

	c.hits.Add(1)
	return products, true, nil
}

func (c *QueryCache) Set(ctx context.Context, fingerprint string, q catalog.QueryState, products []models.Product) error {
	if products == nil {
		products = []models.Product{}
	}
	data, err := json.Marshal(products)
	if err != nil {
		return fmt.Errorf("cache marshal error: %w", err)
	}

	if err := c.rdb.Set(ctx, c.Key(fingerprint, q), data, c.ttl).Err(); err != nil {
		return fmt.Errorf("cache set error: %w", err)
	}
	return nil
}

func (c *QueryCache) Stats() Stats {
	return Stats{Hits: c.hits.Load(), Misses: c.misses.Load()}
}

func (c *QueryCache) Ping(ctx context.Context) error {
	return c.rdb.Ping(ctx).Err()
}
