package user_repository_postgres

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

const userColumns = `id, login, email, school_email, password_hash, full_name, phone, verified,
	profile_picture_url, role, student_office_id`

var constraintProperties = map[string]string{
	"app_user_login_key":        "/login",
	"app_user_email_key":        "/email",
	"app_user_phone_key":        "/phone",
	"app_user_school_email_key": "/schoolEmail",
}

type UserRepository struct {
	log     ports.Logger
	db      db.PgDB
	metrics ports.MetricsProvider
}

func NewUserRepository(db db.PgDB, log ports.Logger, metrics ports.MetricsProvider) *UserRepository {
	return &UserRepository{db: db, log: log, metrics: metrics}
}

func (r *UserRepository) record(queryType string, start time.Time, success bool) {
	r.metrics.IncrementDatabaseQueries(queryType, success)
	r.metrics.RecordDatabaseQueryDuration(queryType, time.Since(start))
}

func scanUser(row pgx.Row) (*model.User, error) {
	user := &model.User{}
	err := row.Scan(
		&user.ID,
		&user.Login,
		&user.Email,
		&user.SchoolEmail,
		&user.PasswordHash,
		&user.FullName,
		&user.Phone,
		&user.Verified,
		&user.ProfilePictureURL,
		&user.Role,
		&user.StudentOfficeID,
	)
	if err != nil {
		return nil, err
	}
	return user, nil
}

// translateWriteError maps a unique key violation that slipped past the
// uniqueness check onto the same AlreadyTaken error the check would produce.
func translateWriteError(err error) error {
	if constraint, ok := db.UniqueViolation(err); ok {
		if property, known := constraintProperties[constraint]; known {
			return custom_errors.NewAlreadyTakenDataError("user", property)
		}
		return custom_errors.NewAlreadyTakenDataError("user")
	}
	return custom_errors.ErrDatabaseQuery
}

func (r *UserRepository) Create(ctx context.Context, user *model.User) (*model.User, error) {
	start := time.Now()
	r.log.Debug("Creating new user", slog.String("login", user.Login), slog.String("role", string(user.Role)))

	args := pgx.NamedArgs{
		"login":               user.Login,
		"email":               user.Email,
		"school_email":        user.SchoolEmail,
		"password_hash":       user.PasswordHash,
		"full_name":           user.FullName,
		"phone":               user.Phone,
		"verified":            user.Verified,
		"profile_picture_url": user.ProfilePictureURL,
		"role":                user.Role,
		"student_office_id":   user.StudentOfficeID,
	}

	query := `
		INSERT INTO app_user (login, email, school_email, password_hash, full_name, phone, verified,
			profile_picture_url, role, student_office_id)
		VALUES (@login, @email, @school_email, @password_hash, @full_name, @phone, @verified,
			@profile_picture_url, @role, @student_office_id)
		RETURNING ` + userColumns

	created, err := scanUser(r.db.QueryRow(ctx, query, args))
	if err != nil {
		r.record("user_create", start, false)
		translated := translateWriteError(err)
		if errors.Is(translated, custom_errors.ErrDatabaseQuery) {
			r.log.Error("Error creating user", slog.String("login", user.Login), slog.String("error", err.Error()))
		} else {
			r.log.Debug("User create hit a unique constraint", slog.String("login", user.Login), slog.String("error", err.Error()))
		}
		return nil, translated
	}

	r.record("user_create", start, true)
	r.log.Debug("Successfully created user", slog.Int64("id", created.ID))
	return created, nil
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (*model.User, error) {
	start := time.Now()

	user, err := scanUser(r.db.QueryRow(ctx, `SELECT `+userColumns+` FROM app_user WHERE id = @id`, pgx.NamedArgs{"id": id}))
	if err != nil {
		r.record("user_get_by_id", start, false)
		if errors.Is(err, pgx.ErrNoRows) {
			r.log.Debug("User not found by id", slog.Int64("id", id))
			return nil, custom_errors.ErrUserNotFound
		}
		r.log.Error("Error getting user by id", slog.Int64("id", id), slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}

	r.record("user_get_by_id", start, true)
	return user, nil
}

func (r *UserRepository) FindByLogin(ctx context.Context, login string) (*model.User, error) {
	start := time.Now()

	query := `SELECT ` + userColumns + ` FROM app_user
		WHERE login = @login OR email = @login OR phone = @login
		ORDER BY id
		LIMIT 1`

	user, err := scanUser(r.db.QueryRow(ctx, query, pgx.NamedArgs{"login": login}))
	if err != nil {
		r.record("user_find_by_login", start, false)
		if errors.Is(err, pgx.ErrNoRows) {
			r.log.Debug("User not found by login")
			return nil, custom_errors.ErrUserNotFound
		}
		r.log.Error("Error finding user by login", slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}

	r.record("user_find_by_login", start, true)
	return user, nil
}

func (r *UserRepository) FindConflicting(ctx context.Context, fields model.UniqueFields, excludeID *int64) ([]*model.User, error) {
	start := time.Now()
	r.log.Debug("Looking for conflicting users", slog.String("login", fields.Login), ports.OptionalInt64("exclude_id", excludeID))

	args := pgx.NamedArgs{
		"login":        fields.Login,
		"email":        fields.Email,
		"phone":        fields.Phone,
		"school_email": fields.SchoolEmail,
		"exclude_id":   excludeID,
	}

	query := `SELECT ` + userColumns + ` FROM app_user
		WHERE (login = @login
			OR email = @email
			OR (@phone::text IS NOT NULL AND phone = @phone::text)
			OR (@school_email::text IS NOT NULL AND school_email = @school_email::text))
		  AND (@exclude_id::bigint IS NULL OR id <> @exclude_id::bigint)
		ORDER BY id`

	rows, err := r.db.Query(ctx, query, args)
	if err != nil {
		r.record("user_find_conflicting", start, false)
		r.log.Error("Error finding conflicting users", slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}
	defer rows.Close()

	var users []*model.User
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			r.record("user_find_conflicting", start, false)
			r.log.Error("Error scanning conflicting user", slog.String("error", err.Error()))
			return nil, custom_errors.ErrDatabaseScan
		}
		users = append(users, user)
	}
	if err := rows.Err(); err != nil {
		r.record("user_find_conflicting", start, false)
		r.log.Error("Error iterating conflicting users", slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}

	r.record("user_find_conflicting", start, true)
	return users, nil
}

// Update leaves school email and organization untouched unless both are given.
func (r *UserRepository) Update(ctx context.Context, update *model.UpdateUserDTO) (*model.User, error) {
	start := time.Now()
	r.log.Debug("Updating user", slog.Int64("id", update.ID))

	args := pgx.NamedArgs{
		"id":                  update.ID,
		"login":               update.Login,
		"email":               update.Email,
		"full_name":           update.FullName,
		"phone":               update.Phone,
		"profile_picture_url": update.ProfilePictureURL,
		"set_membership":      update.SchoolEmail != nil && update.StudentOfficeID != nil,
		"school_email":        update.SchoolEmail,
		"student_office_id":   update.StudentOfficeID,
	}

	query := `
		UPDATE app_user SET
			login = @login,
			email = @email,
			full_name = @full_name,
			phone = @phone,
			profile_picture_url = @profile_picture_url,
			school_email = CASE WHEN @set_membership::boolean THEN @school_email::text ELSE school_email END,
			student_office_id = CASE WHEN @set_membership::boolean THEN @student_office_id::bigint ELSE student_office_id END
		WHERE id = @id
		RETURNING ` + userColumns

	updated, err := scanUser(r.db.QueryRow(ctx, query, args))
	if err != nil {
		r.record("user_update", start, false)
		if errors.Is(err, pgx.ErrNoRows) {
			r.log.Debug("User not found for update", slog.Int64("id", update.ID))
			return nil, custom_errors.ErrUserNotFound
		}
		translated := translateWriteError(err)
		if errors.Is(translated, custom_errors.ErrDatabaseQuery) {
			r.log.Error("Error updating user", slog.Int64("id", update.ID), slog.String("error", err.Error()))
		}
		return nil, translated
	}

	r.record("user_update", start, true)
	return updated, nil
}

func (r *UserRepository) UpdatePassword(ctx context.Context, id int64, passwordHash string) error {
	start := time.Now()

	tag, err := r.db.Exec(ctx, `UPDATE app_user SET password_hash = @password_hash WHERE id = @id`,
		pgx.NamedArgs{"id": id, "password_hash": passwordHash})
	if err != nil {
		r.record("user_update_password", start, false)
		r.log.Error("Error updating password", slog.Int64("id", id), slog.String("error", err.Error()))
		return custom_errors.ErrDatabaseQuery
	}
	if tag.RowsAffected() == 0 {
		r.record("user_update_password", start, false)
		return custom_errors.ErrUserNotFound
	}

	r.record("user_update_password", start, true)
	return nil
}

func (r *UserRepository) Delete(ctx context.Context, id int64) error {
	start := time.Now()
	r.log.Debug("Deleting user", slog.Int64("id", id))

	tag, err := r.db.Exec(ctx, `DELETE FROM app_user WHERE id = @id`, pgx.NamedArgs{"id": id})
	if err != nil {
		r.record("user_delete", start, false)
		r.log.Error("Error deleting user", slog.Int64("id", id), slog.String("error", err.Error()))
		return custom_errors.ErrDatabaseQuery
	}
	if tag.RowsAffected() == 0 {
		r.record("user_delete", start, false)
		return custom_errors.ErrUserNotFound
	}

	r.record("user_delete", start, true)
	return nil
}
