package memory

import (
	"context"
	"sort"

	"studentoffice-service/internal/custom_errors"
	model "studentoffice-service/internal/domain/models"
)

type StudentOfficeRepository struct {
	db *DB
}

func (r *StudentOfficeRepository) Create(ctx context.Context, office *model.StudentOffice) (*model.StudentOffice, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	created := *office
	created.ID = r.db.state.seq.office.Add(1)
	r.db.state.offices[created.ID] = &created

	result := created
	return &result, nil
}

func (r *StudentOfficeRepository) GetByID(ctx context.Context, id int64) (*model.StudentOffice, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	office, ok := r.db.state.offices[id]
	if !ok {
		return nil, custom_errors.ErrStudentOfficeNotFound
	}
	result := *office
	return &result, nil
}

func (r *StudentOfficeRepository) FindByIDAndDomain(ctx context.Context, id int64, domain string) (*model.StudentOffice, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	office, ok := r.db.state.offices[id]
	if !ok || office.Domain != domain {
		return nil, custom_errors.ErrStudentOfficeNotFound
	}
	result := *office
	return &result, nil
}

func (r *StudentOfficeRepository) ListByDomain(ctx context.Context, domain string) ([]*model.StudentOffice, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	offices := make([]*model.StudentOffice, 0)
	for _, office := range r.db.state.offices {
		if office.Domain == domain {
			o := *office
			offices = append(offices, &o)
		}
	}
	sort.Slice(offices, func(i, j int) bool {
		if offices[i].SchoolName != offices[j].SchoolName {
			return offices[i].SchoolName < offices[j].SchoolName
		}
		return offices[i].ID < offices[j].ID
	})
	return offices, nil
}

func (r *StudentOfficeRepository) Update(ctx context.Context, office *model.StudentOffice) (*model.StudentOffice, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if _, ok := r.db.state.offices[office.ID]; !ok {
		return nil, custom_errors.ErrStudentOfficeNotFound
	}
	updated := *office
	r.db.state.offices[office.ID] = &updated

	result := updated
	return &result, nil
}
