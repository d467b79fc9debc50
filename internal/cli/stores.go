package cli

import (
	"fmt"

	"github.com/aretw0/menusys/internal/config"
	"github.com/aretw0/menusys/pkg/adapters/file"
	"github.com/aretw0/menusys/pkg/adapters/memory"
	"github.com/aretw0/menusys/pkg/adapters/redis"
	"github.com/aretw0/menusys/pkg/ports"
)

// OpenStore builds the document store selected by cfg.
// The returned close function is never nil.
func OpenStore(cfg config.StoreConfig) (ports.DocumentStore, func() error, error) {
	noop := func() error { return nil }

	switch cfg.Kind {
	case config.StoreMemory:
		return memory.NewStore(nil), noop, nil
	case config.StoreFile, "":
		return file.New(cfg.Path), noop, nil
	case config.StoreRedis:
		var opts []redis.Option
		if cfg.Prefix != "" {
			opts = append(opts, redis.WithPrefix(cfg.Prefix))
		}
		if cfg.TTL > 0 {
			opts = append(opts, redis.WithTTL(cfg.TTL))
		}
		store := redis.New(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB, opts...)
		return store, store.Close, nil
	}
	return nil, noop, fmt.Errorf("unsupported store kind %q", cfg.Kind)
}
