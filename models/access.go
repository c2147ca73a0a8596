package models

import (
	"time"

	"gorm.io/gorm"
)

// AdminGroupName is the group granted question-management permissions on its
// first creation.
const AdminGroupName = "Admin"

// QuestionEntityType tags the permissions that belong to the Question entity.
const QuestionEntityType = "question"

type Group struct {
	ID        uint           `json:"id" gorm:"primaryKey"`
	Name      string         `json:"name" gorm:"uniqueIndex;not null"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`

	// Relationships
	Permissions []Permission `json:"permissions,omitempty" gorm:"many2many:group_permissions;"`
}

type Permission struct {
	ID         uint           `json:"id" gorm:"primaryKey"`
	Codename   string         `json:"codename" gorm:"uniqueIndex;not null"`
	Name       string         `json:"name" gorm:"not null"`
	EntityType string         `json:"entity_type" gorm:"not null;index"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `json:"-" gorm:"index"`
}
