package businessflow

import (
	"context"
	"testing"
	"time"

	"github.com/JohanMiguel/Gestiones-de-Corporex/app/dto"
	"github.com/JohanMiguel/Gestiones-de-Corporex/app/services"
	"github.com/JohanMiguel/Gestiones-de-Corporex/config"
	"github.com/JohanMiguel/Gestiones-de-Corporex/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAuthFlow(t *testing.T) (AuthFlow, *fakeUserRepo, services.PasswordService) {
	t.Helper()
	userRepo := newFakeUserRepo()
	passwordService := services.NewPasswordService(10)
	tokenService, err := services.NewTokenService(time.Hour, "corpex", "corpex-api", "test-secret-key-that-is-long-enough-123")
	require.NoError(t, err)
	return NewAuthFlow(userRepo, tokenService, passwordService, 3600), userRepo, passwordService
}

func seedUser(t *testing.T, repo *fakeUserRepo, passwordService services.PasswordService, username, email, password string) *models.User {
	t.Helper()
	hash, err := passwordService.Hash(password)
	require.NoError(t, err)
	user := &models.User{
		UUID:         uuid.New(),
		Name:         "Admin",
		Surname:      "Corpex",
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		Role:         models.RoleAdmin,
	}
	require.NoError(t, repo.Save(context.Background(), user))
	return user
}

func TestAuthFlow_LoginByEmail(t *testing.T) {
	flow, repo, passwordService := newTestAuthFlow(t)
	seedUser(t, repo, passwordService, "admin_role", "admin@corporex.com", "ADMINCorporex$sin")

	result, err := flow.Login(context.Background(), &dto.LoginRequest{
		Email:    "admin@corporex.com",
		Password: "ADMINCorporex$sin",
	}, nil)
	require.NoError(t, err)

	assert.NotEmpty(t, result.Token)
	assert.Equal(t, "Bearer", result.TokenType)
	assert.Equal(t, int64(3600), result.ExpiresIn)
	assert.Equal(t, models.RoleAdmin, result.User.Role)
	assert.Equal(t, "admin_role", result.User.Username)
}

func TestAuthFlow_LoginByUsername(t *testing.T) {
	flow, repo, passwordService := newTestAuthFlow(t)
	seedUser(t, repo, passwordService, "admin_role", "admin@corporex.com", "ADMINCorporex$sin")

	result, err := flow.Login(context.Background(), &dto.LoginRequest{
		Username: "admin_role",
		Password: "ADMINCorporex$sin",
	}, nil)
	require.NoError(t, err)
	assert.NotEmpty(t, result.Token)
}

func TestAuthFlow_LoginFailuresAreIndistinguishable(t *testing.T) {
	flow, repo, passwordService := newTestAuthFlow(t)
	seedUser(t, repo, passwordService, "admin_role", "admin@corporex.com", "ADMINCorporex$sin")

	_, unknownErr := flow.Login(context.Background(), &dto.LoginRequest{
		Email:    "nobody@corporex.com",
		Password: "ADMINCorporex$sin",
	}, nil)
	require.Error(t, unknownErr)
	assert.True(t, IsInvalidCredentialsError(unknownErr))

	_, wrongPassErr := flow.Login(context.Background(), &dto.LoginRequest{
		Email:    "admin@corporex.com",
		Password: "wrong-password",
	}, nil)
	require.Error(t, wrongPassErr)
	assert.True(t, IsInvalidCredentialsError(wrongPassErr))

	// Same outward message either way
	assert.Equal(t, unknownErr.Error(), wrongPassErr.Error())
}

func TestEnsureAdminUser_CreatesOnce(t *testing.T) {
	repo := newFakeUserRepo()
	passwordService := services.NewPasswordService(10)
	cfg := config.AdminConfig{
		Name:     "Admin",
		Surname:  "Corpex",
		Username: "admin_role",
		Email:    "Admin@Corporex.com",
		Password: "ADMINCorporex$sin",
		Phone:    "21326554",
	}

	require.NoError(t, EnsureAdminUser(context.Background(), repo, passwordService, cfg))
	require.NoError(t, EnsureAdminUser(context.Background(), repo, passwordService, cfg))

	admins, err := repo.ByRole(context.Background(), models.RoleAdmin)
	require.NoError(t, err)
	require.Len(t, admins, 1)

	admin := admins[0]
	assert.Equal(t, "admin_role", admin.Username)
	assert.Equal(t, "admin@corporex.com", admin.Email)
	assert.NotEqual(t, "ADMINCorporex$sin", admin.PasswordHash)
	assert.True(t, passwordService.Verify(admin.PasswordHash, "ADMINCorporex$sin"))
}

func TestEnsureAdminUser_RenamedConfigKeepsSingleAdmin(t *testing.T) {
	repo := newFakeUserRepo()
	passwordService := services.NewPasswordService(10)
	cfg := config.AdminConfig{
		Name:     "Admin",
		Surname:  "Corpex",
		Username: "admin_role",
		Email:    "admin@corporex.com",
		Password: "ADMINCorporex$sin",
		Phone:    "21326554",
	}
	require.NoError(t, EnsureAdminUser(context.Background(), repo, passwordService, cfg))

	// A changed username between restarts must not seed a second account
	cfg.Username = "root_admin"
	cfg.Email = "root@corporex.com"
	require.NoError(t, EnsureAdminUser(context.Background(), repo, passwordService, cfg))

	admins, err := repo.ByRole(context.Background(), models.RoleAdmin)
	require.NoError(t, err)
	require.Len(t, admins, 1)
	assert.Equal(t, "admin_role", admins[0].Username)
}
