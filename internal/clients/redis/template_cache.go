package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/kairo-app/kairo-backend/internal/pkg/logger"
	"github.com/kairo-app/kairo-backend/internal/planner"
)

// TemplateCache is a read-through cache for resolved template candidates.
// Entirely optional: the store adapter works identically with a nil cache.
type TemplateCache interface {
	Get(ctx context.Context, key string) ([]planner.Candidate, bool)
	Set(ctx context.Context, key string, candidates []planner.Candidate)
	Close() error
}

type templateCache struct {
	log *logger.Logger
	rdb *goredis.Client
	ttl time.Duration
}

// NewTemplateCache connects using REDIS_ADDR. A missing address is an error
// the caller treats as "run without cache", not a startup failure.
func NewTemplateCache(log *logger.Logger, ttl time.Duration) (TemplateCache, error) {
	if log == nil {
		return nil, fmt.Errorf("logger required")
	}

	addr := strings.TrimSpace(os.Getenv("REDIS_ADDR"))
	if addr == "" {
		return nil, fmt.Errorf("missing REDIS_ADDR")
	}
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}

	rdb := goredis.NewClient(&goredis.Options{
		Addr:        addr,
		DialTimeout: 5 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return &templateCache{
		log: log.With("client", "TemplateCache"),
		rdb: rdb,
		ttl: ttl,
	}, nil
}

func (c *templateCache) Get(ctx context.Context, key string) ([]planner.Candidate, bool) {
	if c == nil || c.rdb == nil {
		return nil, false
	}
	raw, err := c.rdb.Get(ctx, "tplcache:"+key).Bytes()
	if err != nil {
		return nil, false
	}
	var out []planner.Candidate
	if err := json.Unmarshal(raw, &out); err != nil {
		c.log.Warn("Dropping undecodable cache entry", "key", key, "error", err)
		return nil, false
	}
	return out, true
}

func (c *templateCache) Set(ctx context.Context, key string, candidates []planner.Candidate) {
	if c == nil || c.rdb == nil {
		return
	}
	raw, err := json.Marshal(candidates)
	if err != nil {
		return
	}
	if err := c.rdb.Set(ctx, "tplcache:"+key, raw, c.ttl).Err(); err != nil {
		c.log.Warn("Cache write failed", "key", key, "error", err)
	}
}

func (c *templateCache) Close() error {
	if c == nil || c.rdb == nil {
		return nil
	}
	return c.rdb.Close()
}
