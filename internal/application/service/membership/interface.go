package membership_service

import (
	"context"

	model "studentoffice-service/internal/domain/models"
	studentoffice_repository "studentoffice-service/internal/domain/ports/output/studentoffice"
	user_repository "studentoffice-service/internal/domain/ports/output/user"
)

//go:generate mockery --name Guard --dir . --output ../../../../mocks --outpkg mocks --structname MembershipGuard --filename MembershipGuard.go
type Guard interface {
	CheckOrganizationClaim(ctx context.Context, claim model.OrganizationClaim) error
	CheckUniqueFields(ctx context.Context, fields model.UniqueFields, excludeUserID *int64) error
	// WithRepositories returns a guard reading through the given repositories,
	// typically those of an open transaction.
	WithRepositories(userRepo user_repository.Repository, officeRepo studentoffice_repository.Repository) Guard
}
