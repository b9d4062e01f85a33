// file: internals/helpers/cache/redis.go
package cache

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cache membungkus klien Redis untuk cache laporan (TTL pendek, read-only).
// Nil-safe: tanpa Redis, semua operasi jadi no-op supaya laporan tetap jalan.
type Cache struct {
	client *redis.Client
}

// New membuka koneksi Redis; return nil (cache mati) jika gagal ping.
func New(addr, password string) *Cache {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Printf("⚠️ Redis tidak tersedia (%v) — cache laporan dimatikan", err)
		return nil
	}
	log.Println("✅ Redis connected.")
	return &Cache{client: client}
}

func (c *Cache) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	if c == nil {
		return nil
	}
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, key, data, ttl).Err()
}

func (c *Cache) Get(ctx context.Context, key string, dest any) (bool, error) {
	if c == nil {
		return false, nil
	}
	data, err := c.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, json.Unmarshal(data, dest)
}

func (c *Cache) Delete(ctx context.Context, keys ...string) error {
	if c == nil || len(keys) == 0 {
		return nil
	}
	return c.client.Del(ctx, keys...).Err()
}

func (c *Cache) Close() error {
	if c == nil {
		return nil
	}
	return c.client.Close()
}

// GetOrSet: ambil dari cache, atau panggil fn lalu simpan hasilnya.
func GetOrSet[T any](c *Cache, ctx context.Context, key string, ttl time.Duration, fn func() (T, error)) (T, error) {
	var result T

	if ok, err := c.Get(ctx, key, &result); err == nil && ok {
		return result, nil
	}

	result, err := fn()
	if err != nil {
		return result, err
	}

	// kegagalan simpan cache tidak menggagalkan request
	_ = c.Set(ctx, key, result, ttl)
	return result, nil
}
