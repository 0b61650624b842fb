package store

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/robalobadob/wordle-solver/internal/simulate"
)

// RedisConfig holds Redis connection and retention settings.
type RedisConfig struct {
	// URL is the Redis connection URL (e.g., redis://localhost:6379/0)
	URL string `yaml:"url"`

	// Pool settings
	PoolSize     int `yaml:"poolSize"`
	MinIdleConns int `yaml:"minIdleConns"`

	// RunTTL expires stored reports; zero keeps them forever.
	RunTTL time.Duration `yaml:"runTTL"`

	// Prefix namespaces every key.
	Prefix string `yaml:"prefix"`
}

// DefaultRedisConfig returns sensible defaults for Redis.
func DefaultRedisConfig() RedisConfig {
	return RedisConfig{
		URL:          "redis://localhost:6379/0",
		PoolSize:     10,
		MinIdleConns: 2,
		Prefix:       "wordle",
	}
}

type redisStore struct {
	client *redis.Client
	cfg    RedisConfig
}

// OpenRedis connects to Redis and verifies the connection.
func OpenRedis(ctx context.Context, cfg RedisConfig) (Store, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}
	if cfg.PoolSize > 0 {
		opts.PoolSize = cfg.PoolSize
	}
	opts.MinIdleConns = cfg.MinIdleConns

	client := redis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, err
	}
	return NewRedisWithClient(client, cfg), nil
}

// NewRedisWithClient wraps an existing client (for testing).
func NewRedisWithClient(client *redis.Client, cfg RedisConfig) Store {
	if cfg.Prefix == "" {
		cfg.Prefix = "wordle"
	}
	return &redisStore{client: client, cfg: cfg}
}

func (s *redisStore) runKey(id string) string { return s.cfg.Prefix + ":run:" + id }
func (s *redisStore) indexKey() string        { return s.cfg.Prefix + ":runs" }

func (s *redisStore) SaveRun(ctx context.Context, r simulate.Report) error {
	data, err := json.Marshal(r)
	if err != nil {
		return err
	}
	_, err = s.client.TxPipelined(ctx, func(p redis.Pipeliner) error {
		p.Set(ctx, s.runKey(r.ID), data, s.cfg.RunTTL)
		p.ZAdd(ctx, s.indexKey(), redis.Z{Score: float64(r.StartedAt.UnixMilli()), Member: r.ID})
		return nil
	})
	return err
}

func (s *redisStore) GetRun(ctx context.Context, id string) (simulate.Report, error) {
	data, err := s.client.Get(ctx, s.runKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return simulate.Report{}, ErrNotFound
	}
	if err != nil {
		return simulate.Report{}, err
	}
	var r simulate.Report
	if err := json.Unmarshal(data, &r); err != nil {
		return simulate.Report{}, err
	}
	return r, nil
}

// ListRuns walks the index newest first. Index entries whose report has
// expired are dropped from the index as they are found.
func (s *redisStore) ListRuns(ctx context.Context, limit int) ([]simulate.Report, error) {
	limit = normalizeLimit(limit)
	ids, err := s.client.ZRevRange(ctx, s.indexKey(), 0, -1).Result()
	if err != nil {
		return nil, err
	}
	out := make([]simulate.Report, 0, limit)
	for _, id := range ids {
		if len(out) == limit {
			break
		}
		r, err := s.GetRun(ctx, id)
		if errors.Is(err, ErrNotFound) {
			_ = s.client.ZRem(ctx, s.indexKey(), id).Err()
			continue
		}
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	newestFirst(out)
	return out, nil
}

func (s *redisStore) Close() error { return s.client.Close() }
