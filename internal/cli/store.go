package cli

import (
	"context"
	"fmt"

	"github.com/hasbyte1/go-secure-hash/credential"
	"github.com/hasbyte1/go-secure-hash/credential/inmemory"
	"github.com/hasbyte1/go-secure-hash/credential/leveldb"
	"github.com/hasbyte1/go-secure-hash/credential/postgres"
	"github.com/hasbyte1/go-secure-hash/credential/redis"
	"github.com/hasbyte1/go-secure-hash/internal/config"
)

// StoreOpener opens a credential store and returns a function that releases it.
type StoreOpener func(ctx context.Context, cfg config.StoreConfig) (credential.Store, func() error, error)

// OpenStore opens the store selected by cfg.Driver.
func OpenStore(ctx context.Context, cfg config.StoreConfig) (credential.Store, func() error, error) {
	noop := func() error { return nil }

	switch cfg.Driver {
	case config.DriverMemory:
		return inmemory.New(), noop, nil
	case config.DriverLevelDB:
		s, err := leveldb.Open(cfg.LevelDB.Path)
		if err != nil {
			return nil, nil, err
		}
		return s, s.Close, nil
	case config.DriverRedis:
		s, err := redis.Dial(ctx, cfg.Redis.URL, cfg.Redis.Prefix)
		if err != nil {
			return nil, nil, err
		}
		return s, s.Close, nil
	case config.DriverPostgres:
		s, err := postgres.Connect(ctx, cfg.Postgres.URL, cfg.Postgres.Table)
		if err != nil {
			return nil, nil, err
		}
		if err := s.EnsureSchema(ctx); err != nil {
			_ = s.Close()
			return nil, nil, err
		}
		return s, s.Close, nil
	default:
		return nil, nil, fmt.Errorf("%w: unknown store driver %q", config.ErrInvalidConfig, cfg.Driver)
	}
}
