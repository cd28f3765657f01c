package studentoffice_service

import (
	"context"
	"log/slog"

	membership_service "studentoffice-service/internal/application/service/membership"
	"studentoffice-service/internal/custom_errors"
	model "studentoffice-service/internal/domain/models"
	ports "studentoffice-service/internal/domain/ports/output"
	studentoffice_repository "studentoffice-service/internal/domain/ports/output/studentoffice"
)

type StudentOfficeService struct {
	uow        ports.UnitOfWork
	officeRepo studentoffice_repository.Repository
	guard      membership_service.Guard
	hasher     ports.PasswordHasher
	log        ports.Logger
	metrics    ports.MetricsProvider
}

func NewStudentOfficeService(
	uow ports.UnitOfWork,
	officeRepo studentoffice_repository.Repository,
	guard membership_service.Guard,
	hasher ports.PasswordHasher,
	log ports.Logger,
	metrics ports.MetricsProvider,
) *StudentOfficeService {
	return &StudentOfficeService{
		uow:        uow,
		officeRepo: officeRepo,
		guard:      guard,
		hasher:     hasher,
		log:        log,
		metrics:    metrics,
	}
}

// CreateStudentOffice inserts the office and its first admin together; if the
// admin cannot be created the office is not kept either.
func (s *StudentOfficeService) CreateStudentOffice(ctx context.Context, dto *model.CreateStudentOfficeDTO) (office *model.StudentOffice, admin *model.User, err error) {
	s.log.Debug("Creating student office",
		slog.String("domain", dto.Office.Domain),
		slog.String("admin_login", dto.Admin.Login))

	defer func() {
		s.metrics.IncrementStudentOfficeOperations("create", err == nil)
	}()

	passwordHash, err := s.hasher.Hash(dto.Admin.Password)
	if err != nil {
		s.log.Error("Failed to hash admin password", slog.String("error", err.Error()))
		return nil, nil, err
	}

	tx, err := s.uow.Begin(ctx)
	if err != nil {
		s.log.Error("Failed to start transaction", slog.String("error", err.Error()))
		return nil, nil, custom_errors.ErrDatabaseQuery
	}

	var txCommitted bool
	defer func() {
		if !txCommitted && tx != nil {
			if rollbackErr := tx.Rollback(ctx); rollbackErr != nil {
				s.log.Error("Failed to rollback transaction", slog.String("error", rollbackErr.Error()))
			}
		}
	}()

	guard := s.guard.WithRepositories(tx.UserRepository(), tx.StudentOfficeRepository())
	if err := guard.CheckUniqueFields(ctx, model.UniqueFields{Login: dto.Admin.Login, Email: dto.Admin.Email}, nil); err != nil {
		return nil, nil, err
	}

	office, err = tx.StudentOfficeRepository().Create(ctx, &dto.Office)
	if err != nil {
		return nil, nil, err
	}

	// The admin belongs to the office without a school email.
	admin, err = tx.UserRepository().Create(ctx, &model.User{
		Login:           dto.Admin.Login,
		Email:           dto.Admin.Email,
		PasswordHash:    passwordHash,
		Role:            model.RoleAdmin,
		StudentOfficeID: &office.ID,
	})
	if err != nil {
		return nil, nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		s.log.Error("Failed to commit transaction", slog.String("error", err.Error()))
		return nil, nil, custom_errors.ErrDatabaseQuery
	}
	txCommitted = true

	s.log.Info("Student office created",
		slog.Int64("student_office_id", office.ID),
		slog.Int64("admin_id", admin.ID))
	return office, admin, nil
}

func (s *StudentOfficeService) GetStudentOffice(ctx context.Context, id int64) (*model.StudentOffice, error) {
	return s.officeRepo.GetByID(ctx, id)
}

func (s *StudentOfficeService) ListByDomain(ctx context.Context, domain string) ([]*model.StudentOffice, error) {
	return s.officeRepo.ListByDomain(ctx, domain)
}

func (s *StudentOfficeService) UpdateStudentOffice(ctx context.Context, office *model.StudentOffice) (*model.StudentOffice, error) {
	updated, err := s.officeRepo.Update(ctx, office)
	if err != nil {
		s.metrics.IncrementStudentOfficeOperations("update", false)
		return nil, err
	}

	s.metrics.IncrementStudentOfficeOperations("update", true)
	s.log.Info("Student office updated", slog.Int64("student_office_id", updated.ID))
	return updated, nil
}
