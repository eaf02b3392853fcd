// Package repository provides data access layer implementations and interfaces for database operations
package repository

import (
	"context"

	"github.com/JohanMiguel/Gestiones-de-Corporex/models"
)

// RepositoryContext key for transaction in context
type contextKey string

const TxContextKey contextKey = "tx"

type Repository[T any, F any] interface {
	ByID(ctx context.Context, id uint) (*T, error)
	ByFilter(ctx context.Context, filter F, orderBy string, limit, offset int) ([]*T, error)
	Save(ctx context.Context, entity *T) error
	Count(ctx context.Context, filter F) (int64, error)
	Exists(ctx context.Context, filter F) (bool, error)
}

// CompanyRepository defines operations for registered companies
type CompanyRepository interface {
	Repository[models.Company, models.CompanyFilter]
	// ByName looks up a company by its normalized (lowercase) name.
	ByName(ctx context.Context, name string) (*models.Company, error)
	// UpdateByID applies the given column updates and returns the post-update
	// row, or nil when no company has that id.
	UpdateByID(ctx context.Context, id uint, updates map[string]any) (*models.Company, error)
}

// UserRepository defines operations for authentication principals
type UserRepository interface {
	Repository[models.User, models.UserFilter]
	ByUsername(ctx context.Context, username string) (*models.User, error)
	ByEmail(ctx context.Context, email string) (*models.User, error)
	ByRole(ctx context.Context, role string) ([]*models.User, error)
}
