// Package businessflow contains the core business logic flows for authentication and company management
package businessflow

import (
	"context"
	"fmt"
	"strings"

	"github.com/JohanMiguel/Gestiones-de-Corporex/app/services"
	"github.com/JohanMiguel/Gestiones-de-Corporex/config"
	"github.com/JohanMiguel/Gestiones-de-Corporex/models"
	"github.com/JohanMiguel/Gestiones-de-Corporex/repository"
	"github.com/JohanMiguel/Gestiones-de-Corporex/utils"
	"github.com/google/uuid"
)

// EnsureAdminUser creates the administrative account if none exists yet.
// The check is keyed on the role, not the configured username, so changing
// ADMIN_USERNAME between restarts never produces a second admin. Safe to run
// on every boot.
func EnsureAdminUser(
	ctx context.Context,
	userRepo repository.UserRepository,
	passwordService services.PasswordService,
	cfg config.AdminConfig,
) error {
	role := models.RoleAdmin
	count, err := userRepo.Count(ctx, models.UserFilter{Role: &role})
	if err != nil {
		return fmt.Errorf("failed to look up admin user: %w", err)
	}
	if count > 0 {
		return nil
	}

	hash, err := passwordService.Hash(cfg.Password)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	admin := &models.User{
		UUID:         uuid.New(),
		Name:         cfg.Name,
		Surname:      cfg.Surname,
		Username:     cfg.Username,
		Email:        strings.ToLower(cfg.Email),
		PasswordHash: hash,
		Phone:        cfg.Phone,
		Role:         models.RoleAdmin,
		CreatedAt:    utils.UTCNow(),
		UpdatedAt:    utils.UTCNow(),
	}

	if err := userRepo.Save(ctx, admin); err != nil {
		return fmt.Errorf("failed to create admin user: %w", err)
	}

	return nil
}
