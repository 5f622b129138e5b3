package models

import (
	"time"

	"github.com/google/uuid"
)

type UserRole string

const (
	RoleHR    UserRole = "hr"
	RoleAdmin UserRole = "admin"
)

// User is a dashboard account. Access gates entry to the dashboard entirely:
// an account with Access=false authenticates but is held on pending approval.
type User struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Name         string    `gorm:"type:text;not null" json:"name"`
	Email        string    `gorm:"type:text;uniqueIndex;not null" json:"email"`
	PasswordHash string    `gorm:"type:text;not null" json:"-"`
	Role         UserRole  `gorm:"type:text;not null;default:'hr'" json:"role"`
	Access       bool      `gorm:"not null;default:false" json:"access"`
	CreatedAt    time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt    time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}

func (r UserRole) Valid() bool {
	return r == RoleHR || r == RoleAdmin
}
