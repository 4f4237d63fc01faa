package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"
)

// Cache envuelve Redis para cache-aside de lecturas baratas. Un *Cache nil
// es válido y se comporta como cache desactivada, así la API funciona igual
// sin REDIS_URL configurada.
type Cache struct {
	rdb *redis.Client
	ttl time.Duration
}

func New(redisURL string, ttl time.Duration) (*Cache, error) {
	if redisURL == "" {
		return nil, nil
	}

	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, err
	}

	return &Cache{
		rdb: redis.NewClient(opts),
		ttl: ttl,
	}, nil
}

// GetJSON deserializa la clave en dest. Devuelve false en miss, en error de
// red o con la cache desactivada: el llamante siempre puede seguir sin cache.
func (c *Cache) GetJSON(ctx context.Context, key string, dest any) bool {
	if c == nil {
		return false
	}

	raw, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		return false
	}

	return json.Unmarshal(raw, dest) == nil
}

func (c *Cache) SetJSON(ctx context.Context, key string, value any) {
	if c == nil {
		return
	}

	raw, err := json.Marshal(value)
	if err != nil {
		return
	}

	c.rdb.Set(ctx, key, raw, c.ttl)
}

func (c *Cache) Delete(ctx context.Context, keys ...string) {
	if c == nil || len(keys) == 0 {
		return
	}

	c.rdb.Del(ctx, keys...)
}
