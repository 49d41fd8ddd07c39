// Package model provides the user entity and auth DTOs.
package model

import (
	"time"

	"gorm.io/gorm"
)

// UserRole is the closed set of account roles.
type UserRole string

const (
	RoleUser       UserRole = "USER"
	RoleFieldOwner UserRole = "FIELD_OWNER"
	RoleAdmin      UserRole = "ADMIN"
)

// Valid reports whether r is a known role.
func (r UserRole) Valid() bool {
	switch r {
	case RoleUser, RoleFieldOwner, RoleAdmin:
		return true
	}
	return false
}

// User represents a registered account.
// Matches the users table schema.
type User struct {
	ID           uint      `gorm:"primaryKey;column:id" json:"id"`
	Email        string    `gorm:"column:email;uniqueIndex;not null" json:"email"`
	PasswordHash string    `gorm:"column:password_hash;not null" json:"-"`
	FullName     string    `gorm:"column:full_name;not null" json:"full_name"`
	Phone        *string   `gorm:"column:phone" json:"phone,omitempty"`
	Zalo         *string   `gorm:"column:zalo" json:"zalo,omitempty"`
	Role         UserRole  `gorm:"column:role;type:user_role;not null;default:'USER'" json:"role"`
	City         string    `gorm:"column:city;not null" json:"city"`
	CreatedAt    time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at" json:"updated_at"`
}

// TableName specifies the table name for GORM.
func (User) TableName() string {
	return "users"
}

// BeforeUpdate refreshes the UpdatedAt timestamp.
func (u *User) BeforeUpdate(tx *gorm.DB) error {
	u.UpdatedAt = time.Now()
	return nil
}
