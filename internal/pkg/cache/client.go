package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

// Client define o contrato mínimo de Redis usado pelo rate limiter.
// Nenhum dado de favorito é cacheado; o DB é sempre a fonte da verdade.
type Client interface {
	Incr(ctx context.Context, key string) (int64, error)
	Expire(ctx context.Context, key string, expiration time.Duration) error
	TTL(ctx context.Context, key string) (time.Duration, error)
	Ping(ctx context.Context) error
}

// RedisClient é a implementação concreta da interface Client, usando Redis.
type RedisClient struct {
	rdb *redis.Client
}

// NewRedisClient cria o cliente e faz o PING inicial.
// O cliente é retornado mesmo se o PING falhar, junto com o erro, para o main decidir.
func NewRedisClient(addr string) (*RedisClient, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr: addr, // Endereço do Redis (e.g., "localhost:6379")
	})
	c := &RedisClient{rdb: rdb}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := c.Ping(ctx); err != nil {
		return c, fmt.Errorf("não foi possível conectar ao Redis em %s: %w", addr, err)
	}
	return c, nil
}

// NewFromRedis embrulha um *redis.Client já configurado (usado nos testes com miniredis).
func NewFromRedis(rdb *redis.Client) *RedisClient {
	return &RedisClient{rdb: rdb}
}

// Incr incrementa o contador e retorna o novo valor (1 quando a chave não existia).
func (c *RedisClient) Incr(ctx context.Context, key string) (int64, error) {
	return c.rdb.Incr(ctx, key).Result()
}

// Expire define o tempo de vida da chave.
func (c *RedisClient) Expire(ctx context.Context, key string, expiration time.Duration) error {
	return c.rdb.Expire(ctx, key, expiration).Err()
}

// TTL retorna o tempo restante da chave (negativo quando não expira ou não existe).
func (c *RedisClient) TTL(ctx context.Context, key string) (time.Duration, error) {
	return c.rdb.TTL(ctx, key).Result()
}

func (c *RedisClient) Ping(ctx context.Context) error {
	return c.rdb.Ping(ctx).Err()
}

func (c *RedisClient) Close() error {
	return c.rdb.Close()
}
