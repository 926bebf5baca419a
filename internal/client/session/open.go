package session

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/dmitrijs2005/blogcli/internal/client/config"
	"github.com/dmitrijs2005/blogcli/internal/filex"
	"github.com/dmitrijs2005/blogcli/internal/logging"
)

// Open builds the Store selected by cfg.SessionBackend. The caller owns the
// returned Store and must Close it.
func Open(ctx context.Context, cfg *config.Config, log logging.Logger) (*Store, error) {
	backend, err := openBackend(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return NewStore(backend, log), nil
}

func openBackend(ctx context.Context, cfg *config.Config) (Backend, error) {
	switch cfg.SessionBackend {
	case config.BackendMemory:
		return NewMemoryBackend(), nil

	case config.BackendRedis:
		client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		if err := client.Ping(ctx).Err(); err != nil {
			_ = client.Close()
			return nil, fmt.Errorf("connect redis %s: %w", cfg.RedisAddr, err)
		}
		return NewRedisBackend(client, cfg.RedisKeyPrefix), nil

	default:
		dsn := cfg.SessionDSN
		if dsn != ":memory:" {
			var err error
			if dsn, err = filex.EnsureParentDir(dsn); err != nil {
				return nil, fmt.Errorf("prepare session dir: %w", err)
			}
		}
		return OpenSQLiteBackend(ctx, dsn)
	}
}
