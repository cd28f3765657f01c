package user_service

import (
	"context"
	"errors"
	"log/slog"

	membership_service "studentoffice-service/internal/application/service/membership"
	"studentoffice-service/internal/custom_errors"
	model "studentoffice-service/internal/domain/models"
	ports "studentoffice-service/internal/domain/ports/output"
	user_repository "studentoffice-service/internal/domain/ports/output/user"
)

type UserService struct {
	userRepo user_repository.Repository
	guard    membership_service.Guard
	hasher   ports.PasswordHasher
	log      ports.Logger
	metrics  ports.MetricsProvider
}

func NewUserService(
	userRepo user_repository.Repository,
	guard membership_service.Guard,
	hasher ports.PasswordHasher,
	log ports.Logger,
	metrics ports.MetricsProvider,
) *UserService {
	return &UserService{
		userRepo: userRepo,
		guard:    guard,
		hasher:   hasher,
		log:      log,
		metrics:  metrics,
	}
}

func (s *UserService) Register(ctx context.Context, user *model.CreateUserDTO) (*model.User, error) {
	s.log.Debug("Registering user", slog.String("login", user.Login))

	passwordHash, err := s.hasher.Hash(user.Password)
	if err != nil {
		s.metrics.IncrementUserOperations("register", false)
		s.log.Error("Failed to hash password", slog.String("error", err.Error()))
		return nil, err
	}

	if err := s.guard.CheckOrganizationClaim(ctx, user.Claim()); err != nil {
		s.metrics.IncrementUserOperations("register", false)
		return nil, err
	}
	if err := s.guard.CheckUniqueFields(ctx, user.UniqueFields(), nil); err != nil {
		s.metrics.IncrementUserOperations("register", false)
		return nil, err
	}

	// A concurrent registration can pass both checks before either insert;
	// the unique keys on app_user catch what slips through.
	created, err := s.userRepo.Create(ctx, &model.User{
		Login:             user.Login,
		Email:             user.Email,
		SchoolEmail:       user.SchoolEmail,
		PasswordHash:      passwordHash,
		FullName:          user.FullName,
		Phone:             user.Phone,
		ProfilePictureURL: user.ProfilePictureURL,
		Role:              model.RoleStudent,
		StudentOfficeID:   user.StudentOfficeID,
	})
	if err != nil {
		s.metrics.IncrementUserOperations("register", false)
		return nil, err
	}

	s.metrics.IncrementUserOperations("register", true)
	s.log.Info("User registered", slog.Int64("user_id", created.ID))
	return created, nil
}

func (s *UserService) Login(ctx context.Context, credentials model.Credentials) (*model.User, error) {
	user, err := s.userRepo.FindByLogin(ctx, credentials.Login)
	if err != nil {
		s.metrics.IncrementUserOperations("login", false)
		if errors.Is(err, custom_errors.ErrUserNotFound) {
			return nil, custom_errors.NewNotFoundDataError("credentials", "/login")
		}
		return nil, err
	}

	if !s.hasher.Verify(user.PasswordHash, credentials.Password) {
		s.metrics.IncrementUserOperations("login", false)
		s.log.Debug("Password mismatch", slog.Int64("user_id", user.ID))
		return nil, custom_errors.NewMismatchDataError("credentials", "/login", "/password")
	}

	s.metrics.IncrementUserOperations("login", true)
	return user, nil
}

func (s *UserService) Get(ctx context.Context, id int64) (*model.User, error) {
	return s.userRepo.GetByID(ctx, id)
}

func (s *UserService) Update(ctx context.Context, update *model.UpdateUserDTO) (*model.User, error) {
	s.log.Debug("Updating user", slog.Int64("user_id", update.ID))

	if err := s.guard.CheckOrganizationClaim(ctx, update.Claim()); err != nil {
		s.metrics.IncrementUserOperations("update", false)
		return nil, err
	}
	if err := s.guard.CheckUniqueFields(ctx, update.UniqueFields(), &update.ID); err != nil {
		s.metrics.IncrementUserOperations("update", false)
		return nil, err
	}

	updated, err := s.userRepo.Update(ctx, update)
	if err != nil {
		s.metrics.IncrementUserOperations("update", false)
		return nil, err
	}

	s.metrics.IncrementUserOperations("update", true)
	return updated, nil
}

func (s *UserService) UpdatePassword(ctx context.Context, id int64, password string) error {
	passwordHash, err := s.hasher.Hash(password)
	if err != nil {
		s.metrics.IncrementUserOperations("update_password", false)
		s.log.Error("Failed to hash password", slog.String("error", err.Error()))
		return err
	}

	if err := s.userRepo.UpdatePassword(ctx, id, passwordHash); err != nil {
		s.metrics.IncrementUserOperations("update_password", false)
		return err
	}

	s.metrics.IncrementUserOperations("update_password", true)
	return nil
}

func (s *UserService) Delete(ctx context.Context, id int64) error {
	if err := s.userRepo.Delete(ctx, id); err != nil {
		s.metrics.IncrementUserOperations("delete", false)
		return err
	}

	s.metrics.IncrementUserOperations("delete", true)
	s.log.Info("User deleted", slog.Int64("user_id", id))
	return nil
}
