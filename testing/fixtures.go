// Package testing provides test utilities and database setup for integration tests
package testing

import (
	"fmt"
	"strings"
	"time"

	"github.com/JohanMiguel/Gestiones-de-Corporex/models"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// TestFixtures creates rows for integration tests
type TestFixtures struct {
	db *TestDB
}

// NewTestFixtures creates a fixture factory bound to a test database
func NewTestFixtures(db *TestDB) *TestFixtures {
	return &TestFixtures{db: db}
}

// CreateTestAdmin inserts an admin user with the given password
func (tf *TestFixtures) CreateTestAdmin(username, password string) (*models.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		UUID:         uuid.New(),
		Name:         "Admin",
		Surname:      "Corpex",
		Username:     username,
		Email:        strings.ToLower(username) + "@corporex.com",
		PasswordHash: string(hash),
		Phone:        "21326554",
		Role:         models.RoleAdmin,
		CreatedAt:    time.Now().UTC(),
		UpdatedAt:    time.Now().UTC(),
	}

	if err := tf.db.DB.Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// CreateTestCompany inserts a company with the given name and founding year
func (tf *TestFixtures) CreateTestCompany(name string, foundingYear int) (*models.Company, error) {
	company := &models.Company{
		UUID:         uuid.New(),
		Name:         strings.ToLower(name),
		ImpactLevel:  models.ImpactLevelMedium,
		FoundingYear: foundingYear,
		Category:     "Technology",
		Description:  fmt.Sprintf("Test company %s", name),
		CreatedAt:    time.Now().UTC(),
		UpdatedAt:    time.Now().UTC(),
	}

	if err := tf.db.DB.Create(company).Error; err != nil {
		return nil, err
	}
	return company, nil
}

// CreateCompanySet inserts a batch of companies covering the filterable fields
func (tf *TestFixtures) CreateCompanySet() ([]*models.Company, error) {
	specs := []struct {
		name         string
		foundingYear int
		category     string
		impactLevel  string
	}{
		{"acme", 2000, "Technology", models.ImpactLevelHigh},
		{"globex", 2010, "Energy", models.ImpactLevelMedium},
		{"initech", 2015, "Technology", models.ImpactLevelLow},
	}

	companies := make([]*models.Company, 0, len(specs))
	for _, spec := range specs {
		company := &models.Company{
			UUID:         uuid.New(),
			Name:         spec.name,
			ImpactLevel:  spec.impactLevel,
			FoundingYear: spec.foundingYear,
			Category:     spec.category,
			Description:  fmt.Sprintf("Test company %s", spec.name),
			CreatedAt:    time.Now().UTC(),
			UpdatedAt:    time.Now().UTC(),
		}
		if err := tf.db.DB.Create(company).Error; err != nil {
			return nil, err
		}
		companies = append(companies, company)
	}
	return companies, nil
}
