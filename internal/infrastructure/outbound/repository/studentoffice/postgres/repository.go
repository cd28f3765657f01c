package studentoffice_repository_postgres

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

const officeColumns = `id, school_name, description, profile_picture_url, cover_picture_url, domain`

type StudentOfficeRepository struct {
	log     ports.Logger
	db      db.PgDB
	metrics ports.MetricsProvider
}

func NewStudentOfficeRepository(db db.PgDB, log ports.Logger, metrics ports.MetricsProvider) *StudentOfficeRepository {
	return &StudentOfficeRepository{db: db, log: log, metrics: metrics}
}

func (r *StudentOfficeRepository) record(queryType string, start time.Time, success bool) {
	r.metrics.IncrementDatabaseQueries(queryType, success)
	r.metrics.RecordDatabaseQueryDuration(queryType, time.Since(start))
}

func scanOffice(row pgx.Row) (*model.StudentOffice, error) {
	office := &model.StudentOffice{}
	err := row.Scan(
		&office.ID,
		&office.SchoolName,
		&office.Description,
		&office.ProfilePictureURL,
		&office.CoverPictureURL,
		&office.Domain,
	)
	if err != nil {
		return nil, err
	}
	return office, nil
}

func (r *StudentOfficeRepository) Create(ctx context.Context, office *model.StudentOffice) (*model.StudentOffice, error) {
	start := time.Now()
	r.log.Debug("Creating student office", slog.String("school_name", office.SchoolName), slog.String("domain", office.Domain))

	args := pgx.NamedArgs{
		"school_name":         office.SchoolName,
		"description":         office.Description,
		"profile_picture_url": office.ProfilePictureURL,
		"cover_picture_url":   office.CoverPictureURL,
		"domain":              office.Domain,
	}

	query := `
		INSERT INTO student_office (school_name, description, profile_picture_url, cover_picture_url, domain)
		VALUES (@school_name, @description, @profile_picture_url, @cover_picture_url, @domain)
		RETURNING ` + officeColumns

	created, err := scanOffice(r.db.QueryRow(ctx, query, args))
	if err != nil {
		r.record("student_office_create", start, false)
		r.log.Error("Error creating student office", slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}

	r.record("student_office_create", start, true)
	r.log.Debug("Successfully created student office", slog.Int64("id", created.ID))
	return created, nil
}

func (r *StudentOfficeRepository) GetByID(ctx context.Context, id int64) (*model.StudentOffice, error) {
	return r.getOne(ctx, "student_office_get_by_id",
		`SELECT `+officeColumns+` FROM student_office WHERE id = @id`,
		pgx.NamedArgs{"id": id})
}

func (r *StudentOfficeRepository) FindByIDAndDomain(ctx context.Context, id int64, domain string) (*model.StudentOffice, error) {
	return r.getOne(ctx, "student_office_find_by_id_and_domain",
		`SELECT `+officeColumns+` FROM student_office WHERE id = @id AND domain = @domain`,
		pgx.NamedArgs{"id": id, "domain": domain})
}

func (r *StudentOfficeRepository) getOne(ctx context.Context, queryType, query string, args pgx.NamedArgs) (*model.StudentOffice, error) {
	start := time.Now()

	office, err := scanOffice(r.db.QueryRow(ctx, query, args))
	if err != nil {
		r.record(queryType, start, false)
		if errors.Is(err, pgx.ErrNoRows) {
			r.log.Debug("Student office not found", slog.String("query", queryType))
			return nil, custom_errors.ErrStudentOfficeNotFound
		}
		r.log.Error("Error getting student office", slog.String("query", queryType), slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}

	r.record(queryType, start, true)
	return office, nil
}

func (r *StudentOfficeRepository) ListByDomain(ctx context.Context, domain string) ([]*model.StudentOffice, error) {
	start := time.Now()
	r.log.Debug("Listing student offices by domain", slog.String("domain", domain))

	rows, err := r.db.Query(ctx,
		`SELECT `+officeColumns+` FROM student_office WHERE domain = @domain ORDER BY school_name, id`,
		pgx.NamedArgs{"domain": domain})
	if err != nil {
		r.record("student_office_list_by_domain", start, false)
		r.log.Error("Error listing student offices", slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}
	defer rows.Close()

	offices := make([]*model.StudentOffice, 0)
	for rows.Next() {
		office, err := scanOffice(rows)
		if err != nil {
			r.record("student_office_list_by_domain", start, false)
			r.log.Error("Error scanning student office", slog.String("error", err.Error()))
			return nil, custom_errors.ErrDatabaseScan
		}
		offices = append(offices, office)
	}
	if err := rows.Err(); err != nil {
		r.record("student_office_list_by_domain", start, false)
		r.log.Error("Error iterating student offices", slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}

	r.record("student_office_list_by_domain", start, true)
	return offices, nil
}

func (r *StudentOfficeRepository) Update(ctx context.Context, office *model.StudentOffice) (*model.StudentOffice, error) {
	start := time.Now()
	r.log.Debug("Updating student office", slog.Int64("id", office.ID))

	args := pgx.NamedArgs{
		"id":                  office.ID,
		"school_name":         office.SchoolName,
		"description":         office.Description,
		"profile_picture_url": office.ProfilePictureURL,
		"cover_picture_url":   office.CoverPictureURL,
		"domain":              office.Domain,
	}

	query := `
		UPDATE student_office SET
			school_name = @school_name,
			description = @description,
			profile_picture_url = @profile_picture_url,
			cover_picture_url = @cover_picture_url,
			domain = @domain
		WHERE id = @id
		RETURNING ` + officeColumns

	updated, err := scanOffice(r.db.QueryRow(ctx, query, args))
	if err != nil {
		r.record("student_office_update", start, false)
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, custom_errors.ErrStudentOfficeNotFound
		}
		r.log.Error("Error updating student office", slog.Int64("id", office.ID), slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}

	r.record("student_office_update", start, true)
	return updated, nil
}
