package store

import (
	"context"
	"fmt"

	"github.com/avasilcai/school-admin/internal/logger"
	"github.com/avasilcai/school-admin/models"
)

// menuRepository is the PostgreSQL-backed implementation of [MenuRepository].
type menuRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewMenuRepository constructs a [MenuRepository] backed by the provided
// database connection and logger.
func NewMenuRepository(db *DB, logger *logger.Logger) MenuRepository {
	logger.Debug().Msg("creating menu repository")
	return &menuRepository{
		db:     db,
		logger: logger,
	}
}

// CreateMenuItem persists a new cafeteria menu item and returns it with its
// server-assigned ID.
func (r *menuRepository) CreateMenuItem(ctx context.Context, item models.MenuItem) (models.MenuItem, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createMenuItem, item.Name, item.Weekday, item.PriceCents)
	if err := row.Scan(&item.ID); err != nil {
		log.Err(err).Str("func", "*menuRepository.CreateMenuItem").Msg("error: menu item insert failed")
		return models.MenuItem{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return item, nil
}

// ListMenu returns the menu items, optionally narrowed to a single ISO
// weekday (1 = Monday; 0 means all days).
func (r *menuRepository) ListMenu(ctx context.Context, weekday int) ([]models.MenuItem, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListMenuQuery(weekday)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*menuRepository.ListMenu").Msg("error: query failed")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var items []models.MenuItem
	for rows.Next() {
		var item models.MenuItem
		if err := rows.Scan(&item.ID, &item.Name, &item.Weekday, &item.PriceCents); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return items, nil
}

// DeleteMenuItem removes a menu item by ID. Deleting a missing item returns
// [ErrMenuItemNotFound].
func (r *menuRepository) DeleteMenuItem(ctx context.Context, itemID int64) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deleteMenuItem, itemID)
	if err != nil {
		log.Err(err).Str("func", "*menuRepository.DeleteMenuItem").Msg("error: delete failed")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("unexpected DB error: %w", err)
	}
	if affected == 0 {
		return ErrMenuItemNotFound
	}

	return nil
}
