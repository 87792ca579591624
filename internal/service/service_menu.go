package service

import (
	"context"
	"fmt"

	"github.com/littlelemon/restaurant-server/internal/logger"
	"github.com/littlelemon/restaurant-server/internal/store"
	"github.com/littlelemon/restaurant-server/models"
)

// menuService is the concrete implementation of MenuService. It validates
// incoming items and delegates persistence to a MenuRepository.
type menuService struct {
	menuRepository store.MenuRepository
	logger         *logger.Logger
}

// NewMenuService constructs a MenuService wired to the given repository.
func NewMenuService(menuRepository store.MenuRepository, logger *logger.Logger) MenuService {
	return &menuService{
		menuRepository: menuRepository,
		logger:         logger,
	}
}

func (s *menuService) ListMenuItems(ctx context.Context) ([]models.MenuItem, error) {
	items, err := s.menuRepository.ListMenuItems(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing menu items failed: %w", err)
	}

	return items, nil
}

func (s *menuService) GetMenuItem(ctx context.Context, id int64) (models.MenuItem, error) {
	item, err := s.menuRepository.GetMenuItem(ctx, id)
	if err != nil {
		return models.MenuItem{}, fmt.Errorf("getting menu item failed: %w", err)
	}

	return item, nil
}

func (s *menuService) CreateMenuItem(ctx context.Context, item models.MenuItem) (models.MenuItem, error) {
	log := logger.FromContext(ctx)

	if err := validateMenuItem(item); err != nil {
		log.Err(err).Any("item", item).Msg("invalid menu item provided")
		return models.MenuItem{}, err
	}

	created, err := s.menuRepository.CreateMenuItem(ctx, item)
	if err != nil {
		return models.MenuItem{}, fmt.Errorf("creating menu item failed: %w", err)
	}

	return created, nil
}

func (s *menuService) UpdateMenuItem(ctx context.Context, item models.MenuItem) (models.MenuItem, error) {
	log := logger.FromContext(ctx)

	if err := validateMenuItem(item); err != nil {
		log.Err(err).Any("item", item).Msg("invalid menu item provided")
		return models.MenuItem{}, err
	}

	updated, err := s.menuRepository.UpdateMenuItem(ctx, item)
	if err != nil {
		return models.MenuItem{}, fmt.Errorf("updating menu item failed: %w", err)
	}

	return updated, nil
}

func (s *menuService) DeleteMenuItem(ctx context.Context, id int64) error {
	if err := s.menuRepository.DeleteMenuItem(ctx, id); err != nil {
		return fmt.Errorf("deleting menu item failed: %w", err)
	}

	return nil
}

func validateMenuItem(item models.MenuItem) error {
	if item.Title == "" {
		return ErrValidationTitleRequired
	}
	if item.Price < 0 {
		return ErrValidationNegativePrice
	}
	if item.Inventory < 0 {
		return ErrValidationNegativeInventory
	}

	return nil
}
