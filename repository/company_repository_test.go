package repository_test

import (
	"testing"

	"github.com/JohanMiguel/Gestiones-de-Corporex/models"
	"github.com/JohanMiguel/Gestiones-de-Corporex/repository"
	testingutil "github.com/JohanMiguel/Gestiones-de-Corporex/testing"
	"github.com/JohanMiguel/Gestiones-de-Corporex/utils"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompanyRepository(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping database test in short mode")
	}

	err := testingutil.TestWithDB(func(testDB *testingutil.TestDB) error {
		repo := repository.NewCompanyRepository(testDB.DB)
		fixtures := testingutil.NewTestFixtures(testDB)
		ctx := testingutil.CreateTestContext()

		t.Run("SaveAndByID", func(t *testing.T) {
			require.NoError(t, testDB.ClearAllTables())

			company := &models.Company{
				UUID:         uuid.New(),
				Name:         "acme",
				ImpactLevel:  models.ImpactLevelHigh,
				FoundingYear: 2000,
				Category:     "Technology",
				Description:  "widgets",
				CreatedAt:    utils.UTCNow(),
				UpdatedAt:    utils.UTCNow(),
			}
			require.NoError(t, repo.Save(ctx, company))
			assert.NotZero(t, company.ID)

			loaded, err := repo.ByID(ctx, company.ID)
			require.NoError(t, err)
			require.NotNil(t, loaded)
			assert.Equal(t, "acme", loaded.Name)
			assert.Equal(t, 2000, loaded.FoundingYear)
		})

		t.Run("ByIDNotFound", func(t *testing.T) {
			loaded, err := repo.ByID(ctx, 99999)
			assert.NoError(t, err)
			assert.Nil(t, loaded)
		})

		t.Run("ByNameIsCaseInsensitive", func(t *testing.T) {
			require.NoError(t, testDB.ClearAllTables())
			_, err := fixtures.CreateTestCompany("globex", 2010)
			require.NoError(t, err)

			loaded, err := repo.ByName(ctx, "  GLOBEX ")
			require.NoError(t, err)
			require.NotNil(t, loaded)
			assert.Equal(t, "globex", loaded.Name)
		})

		t.Run("UniqueNameEnforced", func(t *testing.T) {
			require.NoError(t, testDB.ClearAllTables())
			_, err := fixtures.CreateTestCompany("acme", 2000)
			require.NoError(t, err)

			dup := &models.Company{
				UUID:         uuid.New(),
				Name:         "acme",
				ImpactLevel:  models.ImpactLevelLow,
				FoundingYear: 2001,
				Category:     "Technology",
				CreatedAt:    utils.UTCNow(),
				UpdatedAt:    utils.UTCNow(),
			}
			err = repo.Save(ctx, dup)
			assert.Error(t, err)
		})

		t.Run("ByFilterCategoryCaseInsensitive", func(t *testing.T) {
			require.NoError(t, testDB.ClearAllTables())
			_, err := fixtures.CreateCompanySet()
			require.NoError(t, err)

			category := "technology"
			companies, err := repo.ByFilter(ctx, models.CompanyFilter{Category: &category}, "", 0, 0)
			require.NoError(t, err)
			assert.Len(t, companies, 2)
		})

		t.Run("ByFilterFoundingYear", func(t *testing.T) {
			require.NoError(t, testDB.ClearAllTables())
			_, err := fixtures.CreateCompanySet()
			require.NoError(t, err)

			year := 2010
			companies, err := repo.ByFilter(ctx, models.CompanyFilter{FoundingYear: &year}, "", 0, 0)
			require.NoError(t, err)
			require.Len(t, companies, 1)
			assert.Equal(t, "globex", companies[0].Name)
		})

		t.Run("OrderingAndPagination", func(t *testing.T) {
			require.NoError(t, testDB.ClearAllTables())
			_, err := fixtures.CreateCompanySet()
			require.NoError(t, err)

			// Default order is insertion order
			companies, err := repo.ByFilter(ctx, models.CompanyFilter{}, "", 0, 0)
			require.NoError(t, err)
			require.Len(t, companies, 3)
			assert.Equal(t, "acme", companies[0].Name)

			// Founding year ascending
			companies, err = repo.ByFilter(ctx, models.CompanyFilter{}, repository.SortOrderFor("by-years-ascending"), 0, 0)
			require.NoError(t, err)
			assert.Equal(t, "acme", companies[0].Name)
			assert.Equal(t, "initech", companies[2].Name)

			// Name descending with pagination
			companies, err = repo.ByFilter(ctx, models.CompanyFilter{}, repository.SortOrderFor("name-descending"), 2, 0)
			require.NoError(t, err)
			require.Len(t, companies, 2)
			assert.Equal(t, "initech", companies[0].Name)
			assert.Equal(t, "globex", companies[1].Name)

			companies, err = repo.ByFilter(ctx, models.CompanyFilter{}, repository.SortOrderFor("name-descending"), 2, 2)
			require.NoError(t, err)
			require.Len(t, companies, 1)
			assert.Equal(t, "acme", companies[0].Name)
		})

		t.Run("CountIgnoresPagination", func(t *testing.T) {
			require.NoError(t, testDB.ClearAllTables())
			_, err := fixtures.CreateCompanySet()
			require.NoError(t, err)

			count, err := repo.Count(ctx, models.CompanyFilter{})
			require.NoError(t, err)
			assert.Equal(t, int64(3), count)
		})

		t.Run("UpdateByID", func(t *testing.T) {
			require.NoError(t, testDB.ClearAllTables())
			company, err := fixtures.CreateTestCompany("acme", 2000)
			require.NoError(t, err)

			updated, err := repo.UpdateByID(ctx, company.ID, map[string]any{
				"impact_level": models.ImpactLevelHigh,
				"category":     "Aerospace",
			})
			require.NoError(t, err)
			require.NotNil(t, updated)
			assert.Equal(t, models.ImpactLevelHigh, updated.ImpactLevel)
			assert.Equal(t, "Aerospace", updated.Category)
			assert.Equal(t, "acme", updated.Name)
		})

		t.Run("UpdateByIDNotFound", func(t *testing.T) {
			updated, err := repo.UpdateByID(ctx, 99999, map[string]any{"category": "Nothing"})
			require.NoError(t, err)
			assert.Nil(t, updated)
		})

		return nil
	})
	require.NoError(t, err)
}

func TestUserRepository(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping database test in short mode")
	}

	err := testingutil.TestWithDB(func(testDB *testingutil.TestDB) error {
		repo := repository.NewUserRepository(testDB.DB)
		fixtures := testingutil.NewTestFixtures(testDB)
		ctx := testingutil.CreateTestContext()

		t.Run("ByUsername", func(t *testing.T) {
			require.NoError(t, testDB.ClearAllTables())
			_, err := fixtures.CreateTestAdmin("admin_role", "ADMINCorporex$sin")
			require.NoError(t, err)

			user, err := repo.ByUsername(ctx, "admin_role")
			require.NoError(t, err)
			require.NotNil(t, user)
			assert.Equal(t, models.RoleAdmin, user.Role)
		})

		t.Run("ByUsernameNotFound", func(t *testing.T) {
			user, err := repo.ByUsername(ctx, "nobody")
			require.NoError(t, err)
			assert.Nil(t, user)
		})

		t.Run("ByEmail", func(t *testing.T) {
			require.NoError(t, testDB.ClearAllTables())
			created, err := fixtures.CreateTestAdmin("admin_role", "ADMINCorporex$sin")
			require.NoError(t, err)

			user, err := repo.ByEmail(ctx, created.Email)
			require.NoError(t, err)
			require.NotNil(t, user)
			assert.Equal(t, created.ID, user.ID)
		})

		t.Run("ByRole", func(t *testing.T) {
			require.NoError(t, testDB.ClearAllTables())
			_, err := fixtures.CreateTestAdmin("admin_role", "ADMINCorporex$sin")
			require.NoError(t, err)

			admins, err := repo.ByRole(ctx, models.RoleAdmin)
			require.NoError(t, err)
			assert.Len(t, admins, 1)
		})

		t.Run("UniqueUsernameEnforced", func(t *testing.T) {
			require.NoError(t, testDB.ClearAllTables())
			_, err := fixtures.CreateTestAdmin("admin_role", "ADMINCorporex$sin")
			require.NoError(t, err)

			_, err = fixtures.CreateTestAdmin("admin_role", "other-password")
			assert.Error(t, err)
		})

		return nil
	})
	require.NoError(t, err)
}
