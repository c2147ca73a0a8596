package models

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	ID        uint           `json:"id" gorm:"primaryKey"`
	Username  string         `json:"username" gorm:"uniqueIndex;not null"`
	Password  string         `json:"-" gorm:"not null"` // bcrypt hash
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`

	// Relationships
	Groups     []Group     `json:"groups,omitempty" gorm:"many2many:user_groups;"`
	Answers    []Answer    `json:"answers,omitempty" gorm:"foreignKey:UserID"`
	Statistics *Statistics `json:"statistics,omitempty" gorm:"foreignKey:UserID"`
}

// HasPermission reports whether any of the user's groups carries the permission.
// Groups and their permissions must already be loaded.
func (u *User) HasPermission(codename string) bool {
	for _, group := range u.Groups {
		for _, perm := range group.Permissions {
			if perm.Codename == codename {
				return true
			}
		}
	}
	return false
}
