package models

import (
	"github.com/google/uuid"
)

// User mirrors the users table holding administrative accounts
type User struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	Username string    `gorm:"type:text;uniqueIndex;not null"`
	Password string    `gorm:"type:text;not null"`
	Role     string    `gorm:"type:text;not null;default:'user'"`
}

// TableName overrides the GORM default
func (User) TableName() string {
	return "users"
}
