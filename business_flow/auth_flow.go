// Package businessflow contains the core business logic flows for authentication and company management
package businessflow

import (
	"context"
	"strings"

	"github.com/JohanMiguel/Gestiones-de-Corporex/app/dto"
	"github.com/JohanMiguel/Gestiones-de-Corporex/app/services"
	"github.com/JohanMiguel/Gestiones-de-Corporex/models"
	"github.com/JohanMiguel/Gestiones-de-Corporex/repository"
)

// AuthFlow handles credential authentication
type AuthFlow interface {
	Login(ctx context.Context, request *dto.LoginRequest, metadata *ClientMetadata) (*dto.LoginResponse, error)
}

// AuthFlowImpl implements the authentication business flow
type AuthFlowImpl struct {
	userRepo        repository.UserRepository
	tokenService    services.TokenService
	passwordService services.PasswordService
	tokenTTLSeconds int64
}

// NewAuthFlow creates a new authentication flow instance
func NewAuthFlow(
	userRepo repository.UserRepository,
	tokenService services.TokenService,
	passwordService services.PasswordService,
	tokenTTLSeconds int64,
) AuthFlow {
	return &AuthFlowImpl{
		userRepo:        userRepo,
		tokenService:    tokenService,
		passwordService: passwordService,
		tokenTTLSeconds: tokenTTLSeconds,
	}
}

// Login authenticates a user by email or username and issues an access token.
// Unknown accounts and wrong passwords fail with the same error so the
// response never reveals which part of the credential pair was wrong.
func (af *AuthFlowImpl) Login(ctx context.Context, request *dto.LoginRequest, metadata *ClientMetadata) (*dto.LoginResponse, error) {
	user, err := af.findUserByIdentifier(ctx, request)
	if err != nil {
		return nil, NewBusinessError("LOGIN_FAILED", "Login failed", err)
	}
	if user == nil {
		return nil, NewBusinessError("INVALID_CREDENTIALS", "Invalid credentials", ErrInvalidCredentials)
	}

	if !af.passwordService.Verify(user.PasswordHash, request.Password) {
		return nil, NewBusinessError("INVALID_CREDENTIALS", "Invalid credentials", ErrInvalidCredentials)
	}

	token, err := af.tokenService.GenerateToken(user.ID, user.Role)
	if err != nil {
		return nil, NewBusinessError("LOGIN_FAILED", "Login failed", err)
	}

	return &dto.LoginResponse{
		Token:     token,
		TokenType: "Bearer",
		ExpiresIn: af.tokenTTLSeconds,
		User:      ToUserDTO(user),
	}, nil
}

// findUserByIdentifier resolves the account by email when given, otherwise by username
func (af *AuthFlowImpl) findUserByIdentifier(ctx context.Context, request *dto.LoginRequest) (*models.User, error) {
	if email := strings.TrimSpace(request.Email); email != "" {
		return af.userRepo.ByEmail(ctx, strings.ToLower(email))
	}
	return af.userRepo.ByUsername(ctx, strings.TrimSpace(request.Username))
}

// ToUserDTO converts a user model to its API representation
func ToUserDTO(user *models.User) *dto.UserDTO {
	return &dto.UserDTO{
		ID:       user.ID,
		UUID:     user.UUID.String(),
		Name:     user.Name,
		Surname:  user.Surname,
		Username: user.Username,
		Email:    user.Email,
		Phone:    user.Phone,
		Role:     user.Role,
	}
}
