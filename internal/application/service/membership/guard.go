package membership_service

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"studentoffice-service/internal/custom_errors"
	model "studentoffice-service/internal/domain/models"
	ports "studentoffice-service/internal/domain/ports/output"
	studentoffice_repository "studentoffice-service/internal/domain/ports/output/studentoffice"
	user_repository "studentoffice-service/internal/domain/ports/output/user"
)

const userObject = "user"

var claimProperties = []string{"/studentOfficeId", "/schoolEmail"}

// MembershipGuard keeps user rows consistent with the organization they
// claim and unique on login, email, phone and school email. Both checks read
// before the caller writes; nothing here holds a lock across the write.
type MembershipGuard struct {
	userRepo   user_repository.Repository
	officeRepo studentoffice_repository.Repository
	log        ports.Logger
}

func NewMembershipGuard(userRepo user_repository.Repository, officeRepo studentoffice_repository.Repository, log ports.Logger) *MembershipGuard {
	return &MembershipGuard{userRepo: userRepo, officeRepo: officeRepo, log: log}
}

var _ Guard = (*MembershipGuard)(nil)

func (g *MembershipGuard) WithRepositories(userRepo user_repository.Repository, officeRepo studentoffice_repository.Repository) Guard {
	return &MembershipGuard{userRepo: userRepo, officeRepo: officeRepo, log: g.log}
}

func (g *MembershipGuard) CheckOrganizationClaim(ctx context.Context, claim model.OrganizationClaim) error {
	if claim.SchoolEmail == nil && claim.StudentOfficeID == nil {
		return nil
	}
	if claim.SchoolEmail == nil || claim.StudentOfficeID == nil {
		g.log.Debug("Organization claim is incomplete",
			slog.Bool("has_school_email", claim.SchoolEmail != nil),
			slog.Bool("has_student_office_id", claim.StudentOfficeID != nil))
		return custom_errors.NewMismatchDataError(userObject, claimProperties...)
	}

	domain := emailDomain(*claim.SchoolEmail)
	_, err := g.officeRepo.FindByIDAndDomain(ctx, *claim.StudentOfficeID, domain)
	if err != nil {
		if errors.Is(err, custom_errors.ErrStudentOfficeNotFound) {
			g.log.Debug("Claimed organization not found",
				slog.Int64("student_office_id", *claim.StudentOfficeID),
				slog.String("domain", domain))
			return custom_errors.NewNotFoundDataError(userObject, claimProperties...)
		}
		return err
	}
	return nil
}

func (g *MembershipGuard) CheckUniqueFields(ctx context.Context, fields model.UniqueFields, excludeUserID *int64) error {
	conflicting, err := g.userRepo.FindConflicting(ctx, fields, excludeUserID)
	if err != nil {
		return err
	}
	if len(conflicting) == 0 {
		return nil
	}

	taken := custom_errors.NewAlreadyTakenDataError(userObject)
	for _, user := range conflicting {
		if user.Login == fields.Login {
			taken.AddProperty("/login")
		}
		if user.Email == fields.Email {
			taken.AddProperty("/email")
		}
		if sameOptional(user.SchoolEmail, fields.SchoolEmail) {
			taken.AddProperty("/schoolEmail")
		}
		if sameOptional(user.Phone, fields.Phone) {
			taken.AddProperty("/phone")
		}
	}

	g.log.Debug("Unique fields already taken", slog.Any("properties", taken.Properties))
	return taken
}

func emailDomain(email string) string {
	if at := strings.LastIndex(email, "@"); at >= 0 {
		return email[at+1:]
	}
	return ""
}

func sameOptional(a, b *string) bool {
	return a != nil && b != nil && *a == *b
}
