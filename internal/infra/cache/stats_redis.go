package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/agendamento"
)

// StatsRedisCache é um read-through de curta duração para o painel de estatísticas.
// Falhas do Redis nunca derrubam a consulta: viram miss e um aviso no log.
type StatsRedisCache struct {
	client *redis.Client
	ttl    time.Duration
	log    *zap.Logger
}

func NewStatsRedisCache(client *redis.Client, ttl time.Duration, log *zap.Logger) *StatsRedisCache {
	return &StatsRedisCache{client: client, ttl: ttl, log: log}
}

func (c *StatsRedisCache) Get(ctx context.Context, key string) (*domain.Stats, bool) {
	raw, err := c.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, false
	}
	if err != nil {
		c.log.Warn("stats cache get failed", zap.String("key", key), zap.Error(err))
		return nil, false
	}

	var st domain.Stats
	if err := json.Unmarshal(raw, &st); err != nil {
		c.log.Warn("stats cache corrupt entry", zap.String("key", key), zap.Error(err))
		return nil, false
	}
	return &st, true
}

func (c *StatsRedisCache) Set(ctx context.Context, key string, st *domain.Stats) {
	raw, err := json.Marshal(st)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, key, raw, c.ttl).Err(); err != nil {
		c.log.Warn("stats cache set failed", zap.String("key", key), zap.Error(err))
	}
}
