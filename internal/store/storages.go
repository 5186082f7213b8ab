package store

import (
	"context"

	"github.com/avasilcai/school-admin/internal/config"
	"github.com/avasilcai/school-admin/internal/logger"
)

// Storages aggregates all repositories backed by the shared database
// connection. It is the single wiring point handed to the service layer.
type Storages struct {
	AccountRepository    AccountRepository
	ResetTokenRepository ResetTokenRepository
	CatalogRepository    CatalogRepository
	MenuRepository       MenuRepository
}

// NewStorages connects to PostgreSQL, applies pending schema migrations, and
// constructs every repository over the shared connection.
func NewStorages(ctx context.Context, cfg config.Storage, logger *logger.Logger) (*Storages, error) {
	db, err := NewConnectPostgres(ctx, cfg.DB, logger)
	if err != nil {
		return nil, err
	}

	if err := db.Migrate(); err != nil {
		return nil, err
	}

	return &Storages{
		AccountRepository:    NewAccountRepository(db, logger),
		ResetTokenRepository: NewResetTokenRepository(db, logger),
		CatalogRepository:    NewCatalogRepository(db, logger),
		MenuRepository:       NewMenuRepository(db, logger),
	}, nil
}
