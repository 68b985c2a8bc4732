package round

import (
	"context"
	"fmt"

	"github.com/fadedpez/ginrummy/internal/config"
	"github.com/fadedpez/ginrummy/internal/logging"
	"github.com/fadedpez/ginrummy/internal/types"
)

// Open creates the repository selected by cfg.StorageBackend. The Elasticsearch
// backend indexes on top of SQLite.
func Open(ctx context.Context, cfg *config.Config, logger *logging.Logger) (Repository, error) {
	switch cfg.StorageBackend {
	case config.BackendMemory:
		logger.Info("Using in-memory round storage")
		return NewMemoryRepository(), nil

	case config.BackendFile:
		logger.Info("Using JSON round storage at %s", cfg.RoundsFile)
		return NewFileRepository(cfg.RoundsFile)

	case config.BackendSQLite:
		logger.Info("Using SQLite round storage at %s", cfg.DBPath)
		return NewSQLiteRepository(cfg.DBPath, logger)

	case config.BackendElasticsearch:
		base, err := NewSQLiteRepository(cfg.DBPath, logger)
		if err != nil {
			return nil, err
		}

		repo, err := NewElasticsearchRepository(ctx, base, &ElasticsearchConfig{
			URL:         cfg.ElasticsearchURL,
			Username:    cfg.ElasticsearchUsername,
			Password:    cfg.ElasticsearchPassword,
			IndexPrefix: cfg.ElasticsearchIndexPrefix,
		}, logger)
		if err != nil {
			base.Close()
			return nil, err
		}
		logger.Info("Using SQLite round storage at %s indexed into %s", cfg.DBPath, repo.Index())
		return repo, nil

	default:
		return nil, types.NewGameError(types.ErrInvalidArgument, fmt.Sprintf("Unknown storage backend %q", cfg.StorageBackend))
	}
}
