package service

import (
	"context"
	"fmt"

	"github.com/avasilcai/school-admin/internal/logger"
	"github.com/avasilcai/school-admin/internal/store"
	"github.com/avasilcai/school-admin/models"
)

// menuService is the concrete implementation of [MenuService].
type menuService struct {
	menuRepository store.MenuRepository

	logger *logger.Logger
}

// NewMenuService constructs a [MenuService] wired to the given menu
// repository.
func NewMenuService(menuRepository store.MenuRepository, logger *logger.Logger) MenuService {
	return &menuService{
		menuRepository: menuRepository,
		logger:         logger,
	}
}

// AddMenuItem adds a dish to the cafeteria menu for a weekday (1=Monday
// through 7=Sunday).
func (m *menuService) AddMenuItem(ctx context.Context, item models.MenuItem) (models.MenuItem, error) {
	log := logger.FromContext(ctx)

	if item.Name == "" || item.PriceCents < 0 {
		log.Error().Str("name", item.Name).Msg("invalid menu item data provided")
		return models.MenuItem{}, ErrInvalidDataProvided
	}
	if item.Weekday < 1 || item.Weekday > 7 {
		log.Error().Int("weekday", item.Weekday).Msg("weekday out of range")
		return models.MenuItem{}, ErrValidationInvalidWeekday
	}

	added, err := m.menuRepository.CreateMenuItem(ctx, item)
	if err != nil {
		log.Err(err).Str("name", item.Name).Msg("menu item creation ended with error")
		return models.MenuItem{}, fmt.Errorf("menu item creation ended with error: %w", err)
	}

	return added, nil
}

// ListMenu returns the menu for a weekday, or the whole week when weekday
// is zero.
func (m *menuService) ListMenu(ctx context.Context, weekday int) ([]models.MenuItem, error) {
	if weekday < 0 || weekday > 7 {
		return nil, ErrValidationInvalidWeekday
	}

	items, err := m.menuRepository.ListMenu(ctx, weekday)
	if err != nil {
		logger.FromContext(ctx).Err(err).Msg("menu listing ended with error")
		return nil, fmt.Errorf("menu listing ended with error: %w", err)
	}

	return items, nil
}

// RemoveMenuItem deletes a dish from the menu. An unknown item surfaces as
// store.ErrMenuItemNotFound.
func (m *menuService) RemoveMenuItem(ctx context.Context, itemID int64) error {
	log := logger.FromContext(ctx)

	if itemID == 0 {
		return ErrInvalidDataProvided
	}

	if err := m.menuRepository.DeleteMenuItem(ctx, itemID); err != nil {
		log.Err(err).Int64("item_id", itemID).Msg("menu item removal ended with error")
		return err
	}

	return nil
}
