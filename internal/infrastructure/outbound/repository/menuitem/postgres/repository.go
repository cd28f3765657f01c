package menuitem_repository_postgres

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"

	"studentoffice-service/internal/custom_errors"
	model "studentoffice-service/internal/domain/models"
	ports "studentoffice-service/internal/domain/ports/output"
	"studentoffice-service/internal/infrastructure/outbound/repository/postgres/db"
)

// price is NUMERIC in the schema and travels as text to keep its exact decimal form.
const menuItemColumns = `id, name, currency, price::text, picture_url, student_office_id`

type MenuItemRepository struct {
	log     ports.Logger
	db      db.PgDB
	metrics ports.MetricsProvider
}

func NewMenuItemRepository(db db.PgDB, log ports.Logger, metrics ports.MetricsProvider) *MenuItemRepository {
	return &MenuItemRepository{db: db, log: log, metrics: metrics}
}

func (r *MenuItemRepository) record(queryType string, start time.Time, success bool) {
	r.metrics.IncrementDatabaseQueries(queryType, success)
	r.metrics.RecordDatabaseQueryDuration(queryType, time.Since(start))
}

func scanMenuItem(row pgx.Row) (*model.MenuItem, error) {
	item := &model.MenuItem{}
	err := row.Scan(
		&item.ID,
		&item.Name,
		&item.Currency,
		&item.Price,
		&item.PictureURL,
		&item.StudentOfficeID,
	)
	if err != nil {
		return nil, err
	}
	return item, nil
}

func (r *MenuItemRepository) ListByStudentOffice(ctx context.Context, studentOfficeID int64) ([]*model.MenuItem, error) {
	start := time.Now()
	r.log.Debug("Listing menu items", slog.Int64("student_office_id", studentOfficeID))

	rows, err := r.db.Query(ctx,
		`SELECT `+menuItemColumns+` FROM menu_item WHERE student_office_id = @student_office_id ORDER BY id`,
		pgx.NamedArgs{"student_office_id": studentOfficeID})
	if err != nil {
		r.record("menu_item_list", start, false)
		r.log.Error("Error listing menu items", slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}
	defer rows.Close()

	items := make([]*model.MenuItem, 0)
	for rows.Next() {
		item, err := scanMenuItem(rows)
		if err != nil {
			r.record("menu_item_list", start, false)
			r.log.Error("Error scanning menu item", slog.String("error", err.Error()))
			return nil, custom_errors.ErrDatabaseScan
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		r.record("menu_item_list", start, false)
		r.log.Error("Error iterating menu items", slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}

	r.record("menu_item_list", start, true)
	return items, nil
}

func (r *MenuItemRepository) Create(ctx context.Context, item *model.MenuItem) (*model.MenuItem, error) {
	start := time.Now()
	r.log.Debug("Creating menu item", slog.Int64("student_office_id", item.StudentOfficeID), slog.String("name", item.Name))

	args := pgx.NamedArgs{
		"name":              item.Name,
		"currency":          item.Currency,
		"price":             item.Price,
		"picture_url":       item.PictureURL,
		"student_office_id": item.StudentOfficeID,
	}

	query := `
		INSERT INTO menu_item (name, currency, price, picture_url, student_office_id)
		VALUES (@name, @currency, @price::numeric, @picture_url, @student_office_id)
		RETURNING ` + menuItemColumns

	created, err := scanMenuItem(r.db.QueryRow(ctx, query, args))
	if err != nil {
		r.record("menu_item_create", start, false)
		r.log.Error("Error creating menu item", slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}

	r.record("menu_item_create", start, true)
	return created, nil
}

func (r *MenuItemRepository) Update(ctx context.Context, item *model.MenuItem) (*model.MenuItem, error) {
	start := time.Now()
	r.log.Debug("Updating menu item", slog.Int64("id", item.ID))

	args := pgx.NamedArgs{
		"id":                item.ID,
		"name":              item.Name,
		"currency":          item.Currency,
		"price":             item.Price,
		"picture_url":       item.PictureURL,
		"student_office_id": item.StudentOfficeID,
	}

	query := `
		UPDATE menu_item SET
			name = @name,
			currency = @currency,
			price = @price::numeric,
			picture_url = @picture_url
		WHERE id = @id AND student_office_id = @student_office_id
		RETURNING ` + menuItemColumns

	updated, err := scanMenuItem(r.db.QueryRow(ctx, query, args))
	if err != nil {
		r.record("menu_item_update", start, false)
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, custom_errors.ErrMenuItemNotFound
		}
		r.log.Error("Error updating menu item", slog.Int64("id", item.ID), slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}

	r.record("menu_item_update", start, true)
	return updated, nil
}

func (r *MenuItemRepository) Delete(ctx context.Context, id, studentOfficeID int64) error {
	start := time.Now()

	tag, err := r.db.Exec(ctx,
		`DELETE FROM menu_item WHERE id = @id AND student_office_id = @student_office_id`,
		pgx.NamedArgs{"id": id, "student_office_id": studentOfficeID})
	if err != nil {
		r.record("menu_item_delete", start, false)
		r.log.Error("Error deleting menu item", slog.Int64("id", id), slog.String("error", err.Error()))
		return custom_errors.ErrDatabaseQuery
	}
	if tag.RowsAffected() == 0 {
		r.record("menu_item_delete", start, false)
		return custom_errors.ErrMenuItemNotFound
	}

	r.record("menu_item_delete", start, true)
	return nil
}
