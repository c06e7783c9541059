package database

import (
	"context"
	"fmt"
	"strings"

	"github.com/yishak-cs/calboost/internal/logger"
)

// StoreConfig selects and configures the user-food store
type StoreConfig struct {
	Driver string // sqlite, postgres, neo4j or none
	DSN    string
	Neo4j  Config
}

// OpenFoodStore connects the configured store. Driver "none" returns a nil store.
func OpenFoodStore(ctx context.Context, cfg StoreConfig, log *logger.Logger) (CustomFoodStore, error) {
	switch strings.ToLower(strings.TrimSpace(cfg.Driver)) {
	case "", "none", "disabled":
		log.Warn("custom food store disabled")
		return nil, nil
	case "neo4j":
		client, err := NewNeo4jClient(cfg.Neo4j, log)
		if err != nil {
			return nil, err
		}
		store, err := NewNeo4jFoodStore(ctx, client, log)
		if err != nil {
			_ = client.Close(ctx)
			return nil, err
		}
		return store, nil
	case "sqlite", "sqlite3", "postgres", "postgresql":
		store, err := OpenGormFoodStore(cfg.Driver, cfg.DSN, log)
		if err != nil {
			return nil, err
		}
		log.Info("custom food store ready", "driver", cfg.Driver)
		return store, nil
	default:
		return nil, fmt.Errorf("unsupported food store driver %q", cfg.Driver)
	}
}
