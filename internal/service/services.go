package service

import (
	"github.com/avasilcai/school-admin/internal/config"
	"github.com/avasilcai/school-admin/internal/logger"
	"github.com/avasilcai/school-admin/internal/store"
)

// Services aggregates every business service of the application.
type Services struct {
	ProvisioningService ProvisioningService
	AuthService         AuthService
	ResetService        ResetService
	CatalogService      CatalogService
	MenuService         MenuService
}

// NewServices wires every service to its repositories and configuration.
// notifier may be nil when no outbound mail gateway is configured.
func NewServices(storages store.Storages, cfg config.StructuredConfig, notifier Notifier, logger *logger.Logger) *Services {
	return &Services{
		ProvisioningService: NewProvisioningService(storages.AccountRepository, logger),
		AuthService:         NewAuthService(storages.AccountRepository, cfg.App, logger),
		ResetService:        NewResetService(storages.ResetTokenRepository, storages.AccountRepository, notifier, cfg.App.ResetTokenDuration, logger),
		CatalogService:      NewCatalogService(storages.CatalogRepository, logger),
		MenuService:         NewMenuService(storages.MenuRepository, logger),
	}
}
