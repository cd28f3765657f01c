package menuitem_service

import (
	"context"
	"fmt"
	"log/slog"

	"studentoffice-service/internal/custom_errors"
	model "studentoffice-service/internal/domain/models"
	ports "studentoffice-service/internal/domain/ports/output"
	menuitem_repository "studentoffice-service/internal/domain/ports/output/menuitem"
)

type MenuItemService struct {
	menuItemRepo menuitem_repository.Repository
	log          ports.Logger
	metrics      ports.MetricsProvider
}

func NewMenuItemService(menuItemRepo menuitem_repository.Repository, log ports.Logger, metrics ports.MetricsProvider) *MenuItemService {
	return &MenuItemService{
		menuItemRepo: menuItemRepo,
		log:          log,
		metrics:      metrics,
	}
}

func (s *MenuItemService) ListMenuItems(ctx context.Context, studentOfficeID int64) ([]*model.MenuItem, error) {
	return s.menuItemRepo.ListByStudentOffice(ctx, studentOfficeID)
}

func (s *MenuItemService) CreateMenuItem(ctx context.Context, item *model.MenuItem) (*model.MenuItem, error) {
	if err := item.Currency.IsValid(); err != nil {
		s.metrics.IncrementMenuItemOperations("create", false)
		return nil, fmt.Errorf("%w: %v", custom_errors.ErrInvalidInput, err)
	}

	created, err := s.menuItemRepo.Create(ctx, item)
	if err != nil {
		s.metrics.IncrementMenuItemOperations("create", false)
		return nil, err
	}

	s.metrics.IncrementMenuItemOperations("create", true)
	s.log.Debug("Menu item created",
		slog.Int64("menu_item_id", created.ID),
		slog.Int64("student_office_id", created.StudentOfficeID))
	return created, nil
}

func (s *MenuItemService) UpdateMenuItem(ctx context.Context, item *model.MenuItem) (*model.MenuItem, error) {
	if err := item.Currency.IsValid(); err != nil {
		s.metrics.IncrementMenuItemOperations("update", false)
		return nil, fmt.Errorf("%w: %v", custom_errors.ErrInvalidInput, err)
	}

	updated, err := s.menuItemRepo.Update(ctx, item)
	if err != nil {
		s.metrics.IncrementMenuItemOperations("update", false)
		return nil, err
	}

	s.metrics.IncrementMenuItemOperations("update", true)
	return updated, nil
}

func (s *MenuItemService) DeleteMenuItem(ctx context.Context, studentOfficeID, id int64) error {
	if err := s.menuItemRepo.Delete(ctx, id, studentOfficeID); err != nil {
		s.metrics.IncrementMenuItemOperations("delete", false)
		return err
	}

	s.metrics.IncrementMenuItemOperations("delete", true)
	return nil
}
