package businessflow

import (
	"context"
	"sort"
	"strings"

	"github.com/JohanMiguel/Gestiones-de-Corporex/models"
)

// fakeCompanyRepo is an in-memory CompanyRepository for flow tests
type fakeCompanyRepo struct {
	companies []*models.Company
	nextID    uint
	saveErr   error
}

func newFakeCompanyRepo() *fakeCompanyRepo {
	return &fakeCompanyRepo{nextID: 1}
}

func (r *fakeCompanyRepo) ByID(ctx context.Context, id uint) (*models.Company, error) {
	for _, c := range r.companies {
		if c.ID == id {
			clone := *c
			return &clone, nil
		}
	}
	return nil, nil
}

func (r *fakeCompanyRepo) matches(c *models.Company, filter models.CompanyFilter) bool {
	if filter.Name != nil && c.Name != strings.ToLower(*filter.Name) {
		return false
	}
	if filter.Category != nil && !strings.EqualFold(c.Category, *filter.Category) {
		return false
	}
	if filter.FoundingYear != nil && c.FoundingYear != *filter.FoundingYear {
		return false
	}
	if filter.ImpactLevel != nil && c.ImpactLevel != *filter.ImpactLevel {
		return false
	}
	return true
}

func (r *fakeCompanyRepo) ByFilter(ctx context.Context, filter models.CompanyFilter, orderBy string, limit, offset int) ([]*models.Company, error) {
	var matched []*models.Company
	for _, c := range r.companies {
		if r.matches(c, filter) {
			clone := *c
			matched = append(matched, &clone)
		}
	}

	switch orderBy {
	case "founding_year ASC":
		sort.SliceStable(matched, func(i, j int) bool { return matched[i].FoundingYear < matched[j].FoundingYear })
	case "name ASC":
		sort.SliceStable(matched, func(i, j int) bool { return matched[i].Name < matched[j].Name })
	case "name DESC":
		sort.SliceStable(matched, func(i, j int) bool { return matched[i].Name > matched[j].Name })
	}

	if offset > 0 {
		if offset >= len(matched) {
			return nil, nil
		}
		matched = matched[offset:]
	}
	if limit > 0 && limit < len(matched) {
		matched = matched[:limit]
	}
	return matched, nil
}

func (r *fakeCompanyRepo) Save(ctx context.Context, entity *models.Company) error {
	if r.saveErr != nil {
		return r.saveErr
	}
	entity.ID = r.nextID
	r.nextID++
	clone := *entity
	r.companies = append(r.companies, &clone)
	return nil
}

func (r *fakeCompanyRepo) Count(ctx context.Context, filter models.CompanyFilter) (int64, error) {
	var count int64
	for _, c := range r.companies {
		if r.matches(c, filter) {
			count++
		}
	}
	return count, nil
}

func (r *fakeCompanyRepo) Exists(ctx context.Context, filter models.CompanyFilter) (bool, error) {
	count, err := r.Count(ctx, filter)
	return count > 0, err
}

func (r *fakeCompanyRepo) ByName(ctx context.Context, name string) (*models.Company, error) {
	normalized := strings.ToLower(strings.TrimSpace(name))
	for _, c := range r.companies {
		if c.Name == normalized {
			clone := *c
			return &clone, nil
		}
	}
	return nil, nil
}

func (r *fakeCompanyRepo) UpdateByID(ctx context.Context, id uint, updates map[string]any) (*models.Company, error) {
	for _, c := range r.companies {
		if c.ID != id {
			continue
		}
		if v, ok := updates["name"]; ok {
			c.Name = v.(string)
		}
		if v, ok := updates["impact_level"]; ok {
			c.ImpactLevel = v.(string)
		}
		if v, ok := updates["founding_year"]; ok {
			c.FoundingYear = v.(int)
		}
		if v, ok := updates["category"]; ok {
			c.Category = v.(string)
		}
		if v, ok := updates["description"]; ok {
			c.Description = v.(string)
		}
		clone := *c
		return &clone, nil
	}
	return nil, nil
}

// fakeUserRepo is an in-memory UserRepository for flow tests
type fakeUserRepo struct {
	users  []*models.User
	nextID uint
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{nextID: 1}
}

func (r *fakeUserRepo) ByID(ctx context.Context, id uint) (*models.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			clone := *u
			return &clone, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) matches(u *models.User, filter models.UserFilter) bool {
	if filter.Username != nil && u.Username != *filter.Username {
		return false
	}
	if filter.Email != nil && u.Email != *filter.Email {
		return false
	}
	if filter.Role != nil && u.Role != *filter.Role {
		return false
	}
	return true
}

func (r *fakeUserRepo) ByFilter(ctx context.Context, filter models.UserFilter, orderBy string, limit, offset int) ([]*models.User, error) {
	var matched []*models.User
	for _, u := range r.users {
		if r.matches(u, filter) {
			clone := *u
			matched = append(matched, &clone)
		}
	}
	if limit > 0 && limit < len(matched) {
		matched = matched[:limit]
	}
	return matched, nil
}

func (r *fakeUserRepo) Save(ctx context.Context, entity *models.User) error {
	entity.ID = r.nextID
	r.nextID++
	clone := *entity
	r.users = append(r.users, &clone)
	return nil
}

func (r *fakeUserRepo) Count(ctx context.Context, filter models.UserFilter) (int64, error) {
	var count int64
	for _, u := range r.users {
		if r.matches(u, filter) {
			count++
		}
	}
	return count, nil
}

func (r *fakeUserRepo) Exists(ctx context.Context, filter models.UserFilter) (bool, error) {
	count, err := r.Count(ctx, filter)
	return count > 0, err
}

func (r *fakeUserRepo) ByUsername(ctx context.Context, username string) (*models.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			clone := *u
			return &clone, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) ByEmail(ctx context.Context, email string) (*models.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			clone := *u
			return &clone, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) ByRole(ctx context.Context, role string) ([]*models.User, error) {
	filter := models.UserFilter{Role: &role}
	return r.ByFilter(ctx, filter, "", 0, 0)
}

// fakeExcelService records export calls without touching the filesystem
type fakeExcelService struct {
	exported [][]*models.Company
	err      error
	url      string
}

func (s *fakeExcelService) ExportCompanies(companies []*models.Company) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	s.exported = append(s.exported, companies)
	if s.url == "" {
		return "/exports/reporte_empresas.xlsx", nil
	}
	return s.url, nil
}
