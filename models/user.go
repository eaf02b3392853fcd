// Package models contains domain entities and business models for the company registry
package models

import (
	"time"

	"github.com/google/uuid"
)

// RoleAdmin is the only role currently issued. The admin bootstrap creates
// exactly one account carrying it.
const RoleAdmin = "ADMIN_ROLE"

type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	UUID         uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uk_users_uuid" json:"uuid"`
	Name         string    `gorm:"size:255;not null" json:"name"`
	Surname      string    `gorm:"size:255;not null" json:"surname"`
	Username     string    `gorm:"size:255;not null;uniqueIndex:uk_users_username" json:"username"`
	Email        string    `gorm:"size:255;not null;uniqueIndex:uk_users_email" json:"email"`
	PasswordHash string    `gorm:"size:255;not null" json:"-"` // Never serialize password hash
	Phone        string    `gorm:"size:20" json:"phone"`
	Role         string    `gorm:"size:32;not null;index:idx_users_role" json:"role"`

	CreatedAt time.Time `gorm:"default:(CURRENT_TIMESTAMP AT TIME ZONE 'UTC')" json:"created_at"`
	UpdatedAt time.Time `gorm:"default:(CURRENT_TIMESTAMP AT TIME ZONE 'UTC')" json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}

// UserFilter represents filter criteria for user queries
type UserFilter struct {
	ID       *uint
	UUID     *uuid.UUID
	Username *string
	Email    *string
	Role     *string
}
