package membership_service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	membership_service "studentoffice-service/internal/application/service/membership"
	"studentoffice-service/internal/custom_errors"
	model "studentoffice-service/internal/domain/models"
	"studentoffice-service/internal/infrastructure/logger"
	"studentoffice-service/internal/infrastructure/outbound/repository/memory"
)

func ptr[T any](v T) *T { return &v }

func setupGuard(t *testing.T) (*membership_service.MembershipGuard, *memory.DB) {
	t.Helper()
	db := memory.NewDB(logger.New("test"))
	guard := membership_service.NewMembershipGuard(db.UserRepository(), db.StudentOfficeRepository(), logger.New("test"))
	return guard, db
}

func TestCheckOrganizationClaim(t *testing.T) {
	guard, db := setupGuard(t)
	ctx := context.Background()

	office, err := db.StudentOfficeRepository().Create(ctx, &model.StudentOffice{SchoolName: "X", Domain: "x.com"})
	require.NoError(t, err)

	tests := []struct {
		name     string
		claim    model.OrganizationClaim
		wantKind custom_errors.DataErrorKind
	}{
		{
			name:  "no claim",
			claim: model.OrganizationClaim{},
		},
		{
			name:     "email without organization",
			claim:    model.OrganizationClaim{SchoolEmail: ptr("a@x.com")},
			wantKind: custom_errors.KindMismatch,
		},
		{
			name:     "organization without email",
			claim:    model.OrganizationClaim{StudentOfficeID: ptr(office.ID)},
			wantKind: custom_errors.KindMismatch,
		},
		{
			name:     "unknown organization",
			claim:    model.OrganizationClaim{SchoolEmail: ptr("a@x.com"), StudentOfficeID: ptr(int64(7))},
			wantKind: custom_errors.KindNotFound,
		},
		{
			name:     "organization of another domain",
			claim:    model.OrganizationClaim{SchoolEmail: ptr("a@y.com"), StudentOfficeID: ptr(office.ID)},
			wantKind: custom_errors.KindNotFound,
		},
		{
			name:  "matching organization",
			claim: model.OrganizationClaim{SchoolEmail: ptr("a@x.com"), StudentOfficeID: ptr(office.ID)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := guard.CheckOrganizationClaim(ctx, tt.claim)
			if tt.wantKind == "" {
				assert.NoError(t, err)
				return
			}

			dataErr, ok := custom_errors.AsDataError(err)
			require.True(t, ok)
			assert.Equal(t, tt.wantKind, dataErr.Kind)
			assert.Equal(t, "user", dataErr.Object)
			assert.Equal(t, []string{"/studentOfficeId", "/schoolEmail"}, dataErr.Properties)
		})
	}
}

func TestCheckUniqueFields(t *testing.T) {
	guard, db := setupGuard(t)
	ctx := context.Background()

	bob, err := db.UserRepository().Create(ctx, &model.User{Login: "bob", Email: "b@x.com", Phone: ptr("+33611111111"), PasswordHash: "h"})
	require.NoError(t, err)
	_, err = db.UserRepository().Create(ctx, &model.User{Login: "carol", Email: "c@x.com", PasswordHash: "h"})
	require.NoError(t, err)

	tests := []struct {
		name      string
		fields    model.UniqueFields
		excludeID *int64
		wantProps []string
	}{
		{
			name:      "login and email of one user",
			fields:    model.UniqueFields{Login: "bob", Email: "b@x.com"},
			wantProps: []string{"/login", "/email"},
		},
		{
			name:   "all different",
			fields: model.UniqueFields{Login: "dave", Email: "d@x.com"},
		},
		{
			name:      "collisions across two users",
			fields:    model.UniqueFields{Login: "carol", Email: "b@x.com"},
			wantProps: []string{"/email", "/login"},
		},
		{
			name:      "phone",
			fields:    model.UniqueFields{Login: "dave", Email: "d@x.com", Phone: ptr("+33611111111")},
			wantProps: []string{"/phone"},
		},
		{
			name:      "own row is excluded on update",
			fields:    model.UniqueFields{Login: "bob", Email: "b@x.com"},
			excludeID: ptr(bob.ID),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := guard.CheckUniqueFields(ctx, tt.fields, tt.excludeID)
			if tt.wantProps == nil {
				assert.NoError(t, err)
				return
			}

			dataErr, ok := custom_errors.AsDataError(err)
			require.True(t, ok)
			assert.Equal(t, custom_errors.KindAlreadyTaken, dataErr.Kind)
			assert.Equal(t, tt.wantProps, dataErr.Properties)
		})
	}
}
