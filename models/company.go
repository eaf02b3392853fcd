// Package models contains domain entities and business models for the company registry
package models

import (
	"time"

	"github.com/google/uuid"
)

// Impact levels accepted for a company
const (
	ImpactLevelLow    = "Low"
	ImpactLevelMedium = "Medium"
	ImpactLevelHigh   = "High"
)

// Company represents a registered organization. Name is stored lowercase so the
// unique index also guarantees case-insensitive uniqueness. FoundingYear is the
// canonical persisted field; the years-active value ("trayectory") is derived at
// response time and never stored.
type Company struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	UUID         uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uk_companies_uuid" json:"uuid"`
	Name         string    `gorm:"size:50;not null;uniqueIndex:uk_companies_name" json:"name"`
	ImpactLevel  string    `gorm:"size:16;not null" json:"impactLevel"`
	FoundingYear int       `gorm:"not null;index:idx_companies_founding_year" json:"foundingYear"`
	Category     string    `gorm:"size:255;not null;index:idx_companies_category" json:"category"`
	Description  string    `gorm:"size:1024;not null" json:"description"`

	CreatedAt time.Time `gorm:"default:(CURRENT_TIMESTAMP AT TIME ZONE 'UTC');index:idx_companies_created_at" json:"createdAt"`
	UpdatedAt time.Time `gorm:"default:(CURRENT_TIMESTAMP AT TIME ZONE 'UTC')" json:"updatedAt"`
}

func (Company) TableName() string {
	return "companies"
}

// ValidImpactLevel reports whether the given value is one of the accepted impact levels.
func ValidImpactLevel(level string) bool {
	return level == ImpactLevelLow || level == ImpactLevelMedium || level == ImpactLevelHigh
}

// CompanyFilter represents filter criteria for company queries
type CompanyFilter struct {
	ID            *uint
	UUID          *uuid.UUID
	Name          *string
	Category      *string // compared case-insensitively
	FoundingYear  *int
	ImpactLevel   *string
	CreatedAfter  *time.Time
	CreatedBefore *time.Time
}
