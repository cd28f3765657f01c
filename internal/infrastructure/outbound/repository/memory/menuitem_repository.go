package memory

import (
	"context"
	"sort"

	"studentoffice-service/internal/custom_errors"
	model "studentoffice-service/internal/domain/models"
)

type MenuItemRepository struct {
	db *DB
}

func (r *MenuItemRepository) ListByStudentOffice(ctx context.Context, studentOfficeID int64) ([]*model.MenuItem, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	items := make([]*model.MenuItem, 0)
	for _, item := range r.db.state.menuItems {
		if item.StudentOfficeID == studentOfficeID {
			i := *item
			items = append(items, &i)
		}
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
	return items, nil
}

func (r *MenuItemRepository) Create(ctx context.Context, item *model.MenuItem) (*model.MenuItem, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	created := *item
	created.ID = r.db.state.seq.menuItem.Add(1)
	r.db.state.menuItems[created.ID] = &created

	result := created
	return &result, nil
}

func (r *MenuItemRepository) Update(ctx context.Context, item *model.MenuItem) (*model.MenuItem, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	existing, ok := r.db.state.menuItems[item.ID]
	if !ok || existing.StudentOfficeID != item.StudentOfficeID {
		return nil, custom_errors.ErrMenuItemNotFound
	}
	updated := *item
	r.db.state.menuItems[item.ID] = &updated

	result := updated
	return &result, nil
}

func (r *MenuItemRepository) Delete(ctx context.Context, id, studentOfficeID int64) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	existing, ok := r.db.state.menuItems[id]
	if !ok || existing.StudentOfficeID != studentOfficeID {
		return custom_errors.ErrMenuItemNotFound
	}
	delete(r.db.state.menuItems, id)
	return nil
}
