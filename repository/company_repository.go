// Package repository provides data access layer implementations and interfaces for database operations
package repository

import (
	"context"
	"errors"
	"strings"

	"github.com/JohanMiguel/Gestiones-de-Corporex/models"
	"gorm.io/gorm"
)

// Sort column expressions for the listing endpoint. Names are stored lowercase
// so plain name ordering is already case-insensitive.
const (
	orderByInsertion       = "id ASC"
	orderByFoundingYearAsc = "founding_year ASC"
	orderByNameAsc         = "name ASC"
	orderByNameDesc        = "name DESC"
)

// CompanyRepositoryImpl implements CompanyRepository interface
type CompanyRepositoryImpl struct {
	*BaseRepository[models.Company, models.CompanyFilter]
}

// NewCompanyRepository creates a new company repository
func NewCompanyRepository(db *gorm.DB) CompanyRepository {
	return &CompanyRepositoryImpl{
		BaseRepository: NewBaseRepository[models.Company, models.CompanyFilter](db),
	}
}

// ByName retrieves a company by its normalized name
func (r *CompanyRepositoryImpl) ByName(ctx context.Context, name string) (*models.Company, error) {
	normalized := strings.ToLower(strings.TrimSpace(name))
	filter := models.CompanyFilter{Name: &normalized}
	companies, err := r.ByFilter(ctx, filter, "", 1, 0)
	if err != nil {
		return nil, err
	}

	if len(companies) == 0 {
		return nil, nil
	}

	return companies[0], nil
}

// applyFilter applies filter criteria to a GORM query
func (r *CompanyRepositoryImpl) applyFilter(query *gorm.DB, filter models.CompanyFilter) *gorm.DB {
	if filter.ID != nil {
		query = query.Where("id = ?", *filter.ID)
	}
	if filter.UUID != nil {
		query = query.Where("uuid = ?", *filter.UUID)
	}
	if filter.Name != nil {
		query = query.Where("name = ?", strings.ToLower(*filter.Name))
	}
	if filter.Category != nil {
		// Exact match, case-insensitive
		query = query.Where("LOWER(category) = LOWER(?)", *filter.Category)
	}
	if filter.FoundingYear != nil {
		query = query.Where("founding_year = ?", *filter.FoundingYear)
	}
	if filter.ImpactLevel != nil {
		query = query.Where("impact_level = ?", *filter.ImpactLevel)
	}
	if filter.CreatedAfter != nil {
		query = query.Where("created_at > ?", *filter.CreatedAfter)
	}
	if filter.CreatedBefore != nil {
		query = query.Where("created_at < ?", *filter.CreatedBefore)
	}
	return query
}

// ByFilter retrieves companies based on filter criteria
func (r *CompanyRepositoryImpl) ByFilter(ctx context.Context, filter models.CompanyFilter, orderBy string, limit, offset int) ([]*models.Company, error) {
	db := r.getDB(ctx)
	query := db.Model(&models.Company{})

	// Apply filters
	query = r.applyFilter(query, filter)

	// Apply ordering (default to insertion order)
	if orderBy == "" {
		orderBy = orderByInsertion
	}
	query = query.Order(orderBy)

	// Apply pagination
	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	var companies []*models.Company
	err := query.Find(&companies).Error
	if err != nil {
		return nil, err
	}

	return companies, nil
}

// Count returns the number of companies matching the filter, ignoring pagination
func (r *CompanyRepositoryImpl) Count(ctx context.Context, filter models.CompanyFilter) (int64, error) {
	db := r.getDB(ctx)
	query := db.Model(&models.Company{})

	// Apply filters
	query = r.applyFilter(query, filter)

	var count int64
	err := query.Count(&count).Error
	if err != nil {
		return 0, err
	}

	return count, nil
}

// Exists checks if any company matching the filter exists
func (r *CompanyRepositoryImpl) Exists(ctx context.Context, filter models.CompanyFilter) (bool, error) {
	count, err := r.Count(ctx, filter)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// UpdateByID applies a partial update and returns the post-update row.
// Returns nil when the id does not resolve to an existing company.
func (r *CompanyRepositoryImpl) UpdateByID(ctx context.Context, id uint, updates map[string]any) (*models.Company, error) {
	db, shouldCommit, err := r.getDBForWrite(ctx)
	if err != nil {
		return nil, err
	}

	if shouldCommit {
		defer func() {
			if err != nil {
				db.Rollback()
			} else {
				db.Commit()
			}
		}()
	}

	result := db.Model(&models.Company{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		err = result.Error
		return nil, err
	}
	if result.RowsAffected == 0 {
		return nil, nil
	}

	var company models.Company
	if err = db.First(&company, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			err = nil
			return nil, nil
		}
		return nil, err
	}

	return &company, nil
}

// SortOrderFor maps a listing sort mode to its SQL ordering expression.
// Unknown modes fall back to insertion order.
func SortOrderFor(sortMode string) string {
	switch sortMode {
	case "by-years-ascending":
		return orderByFoundingYearAsc
	case "name-ascending":
		return orderByNameAsc
	case "name-descending":
		return orderByNameDesc
	default:
		return orderByInsertion
	}
}
