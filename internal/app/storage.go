package app

import (
	"fmt"

	"github.com/yungbote/careerpath-backend/internal/db"
	"github.com/yungbote/careerpath-backend/internal/platform/logger"
	"github.com/yungbote/careerpath-backend/internal/storage"
)

// resolveStore selects the storage backend from configuration. The
// in-memory store needs no external service and is the default; the
// postgres store connects, migrates and installs foreign keys before
// it is handed out.
func resolveStore(log *logger.Logger, cfg Config) (storage.Store, error) {
	switch cfg.StorageBackend {
	case StorageBackendMemory:
		log.Info("Using in-memory storage backend")
		return storage.NewMemStore(log), nil
	case StorageBackendPostgres:
		log.Info("Using postgres storage backend")
		pg, err := db.NewPostgresService(log)
		if err != nil {
			return nil, fmt.Errorf("init postgres: %w", err)
		}
		if err := pg.AutoMigrateAll(); err != nil {
			return nil, fmt.Errorf("postgres automigrate: %w", err)
		}
		return storage.NewDBStore(pg.DB(), log), nil
	default:
		return nil, fmt.Errorf("unsupported storage backend %q", cfg.StorageBackend)
	}
}
