package memory

import (
	"context"
	"sort"

	"studentoffice-service/internal/custom_errors"
	model "studentoffice-service/internal/domain/models"
)

type UserRepository struct {
	db *DB
}

func equalOptional(a, b *string) bool {
	return a != nil && b != nil && *a == *b
}

// constraintViolation mirrors the unique keys of app_user.
func (r *UserRepository) constraintViolation(candidate *model.User) error {
	for _, existing := range r.db.state.users {
		if existing.ID == candidate.ID {
			continue
		}
		switch {
		case existing.Login == candidate.Login:
			return custom_errors.NewAlreadyTakenDataError("user", "/login")
		case existing.Email == candidate.Email:
			return custom_errors.NewAlreadyTakenDataError("user", "/email")
		case equalOptional(existing.Phone, candidate.Phone):
			return custom_errors.NewAlreadyTakenDataError("user", "/phone")
		case equalOptional(existing.SchoolEmail, candidate.SchoolEmail):
			return custom_errors.NewAlreadyTakenDataError("user", "/schoolEmail")
		}
	}
	return nil
}

func (r *UserRepository) Create(ctx context.Context, user *model.User) (*model.User, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	newUser := *user
	newUser.ID = 0
	if newUser.Role == "" {
		newUser.Role = model.RoleStudent
	}
	if err := r.constraintViolation(&newUser); err != nil {
		return nil, err
	}
	if newUser.StudentOfficeID != nil {
		if _, ok := r.db.state.offices[*newUser.StudentOfficeID]; !ok {
			return nil, custom_errors.ErrDatabaseQuery
		}
	}

	newUser.ID = r.db.state.seq.user.Add(1)
	r.db.state.users[newUser.ID] = &newUser

	result := newUser
	return &result, nil
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (*model.User, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	user, ok := r.db.state.users[id]
	if !ok {
		return nil, custom_errors.ErrUserNotFound
	}
	result := *user
	return &result, nil
}

func (r *UserRepository) FindByLogin(ctx context.Context, login string) (*model.User, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	var found *model.User
	for _, user := range r.db.state.users {
		if user.Login == login || user.Email == login || (user.Phone != nil && *user.Phone == login) {
			if found == nil || user.ID < found.ID {
				found = user
			}
		}
	}
	if found == nil {
		return nil, custom_errors.ErrUserNotFound
	}
	result := *found
	return &result, nil
}

func (r *UserRepository) FindConflicting(ctx context.Context, fields model.UniqueFields, excludeID *int64) ([]*model.User, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	var users []*model.User
	for _, user := range r.db.state.users {
		if excludeID != nil && user.ID == *excludeID {
			continue
		}
		if user.Login == fields.Login ||
			user.Email == fields.Email ||
			equalOptional(user.Phone, fields.Phone) ||
			equalOptional(user.SchoolEmail, fields.SchoolEmail) {
			u := *user
			users = append(users, &u)
		}
	}
	sort.Slice(users, func(i, j int) bool { return users[i].ID < users[j].ID })
	return users, nil
}

func (r *UserRepository) Update(ctx context.Context, update *model.UpdateUserDTO) (*model.User, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	existing, ok := r.db.state.users[update.ID]
	if !ok {
		return nil, custom_errors.ErrUserNotFound
	}

	updated := *existing
	updated.Login = update.Login
	updated.Email = update.Email
	updated.FullName = update.FullName
	updated.Phone = update.Phone
	updated.ProfilePictureURL = update.ProfilePictureURL
	if update.SchoolEmail != nil && update.StudentOfficeID != nil {
		updated.SchoolEmail = update.SchoolEmail
		updated.StudentOfficeID = update.StudentOfficeID
	}
	if err := r.constraintViolation(&updated); err != nil {
		return nil, err
	}

	r.db.state.users[update.ID] = &updated
	result := updated
	return &result, nil
}

func (r *UserRepository) UpdatePassword(ctx context.Context, id int64, passwordHash string) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	user, ok := r.db.state.users[id]
	if !ok {
		return custom_errors.ErrUserNotFound
	}
	user.PasswordHash = passwordHash
	return nil
}

func (r *UserRepository) Delete(ctx context.Context, id int64) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if _, ok := r.db.state.users[id]; !ok {
		return custom_errors.ErrUserNotFound
	}
	delete(r.db.state.users, id)
	for key := range r.db.state.votes {
		if key.userID == id {
			delete(r.db.state.votes, key)
		}
	}
	return nil
}
