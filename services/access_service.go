package services

import (
	"context"

	"gorm.io/gorm"

	"questionnaire/models"
)

// AccessService seeds the Question entity permissions and keeps the Admin
// group bootstrap that runs on every user creation.
type AccessService struct {
	db *gorm.DB
}

func NewAccessService(db *gorm.DB) *AccessService {
	return &AccessService{db: db}
}

var questionPermissions = []models.Permission{
	{Codename: "add_question", Name: "Can add question", EntityType: models.QuestionEntityType},
	{Codename: "change_question", Name: "Can change question", EntityType: models.QuestionEntityType},
	{Codename: "delete_question", Name: "Can delete question", EntityType: models.QuestionEntityType},
	{Codename: "view_question", Name: "Can view question", EntityType: models.QuestionEntityType},
}

// EnsureQuestionPermissions creates the Question permission rows if missing.
// Run once at startup, before any user can be created.
func (s *AccessService) EnsureQuestionPermissions(ctx context.Context) error {
	for _, perm := range questionPermissions {
		var existing models.Permission
		err := s.db.WithContext(ctx).
			Where(models.Permission{Codename: perm.Codename}).
			Attrs(perm).
			FirstOrCreate(&existing).Error
		if err != nil {
			return err
		}
	}
	return nil
}

// OnUserCreated runs on every user creation: it gets or creates the Admin
// group, and only when the group was just created grants it every Question
// permission. An Admin group re-created through any other path would not get
// the permissions back; that gap is kept as-is.
func (s *AccessService) OnUserCreated(ctx context.Context) error {
	var group models.Group
	result := s.db.WithContext(ctx).
		Where(models.Group{Name: models.AdminGroupName}).
		FirstOrCreate(&group)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		// Group already existed, nothing to grant.
		return nil
	}

	var permissions []models.Permission
	err := s.db.WithContext(ctx).
		Where("entity_type = ?", models.QuestionEntityType).
		Find(&permissions).Error
	if err != nil {
		return err
	}

	return s.db.WithContext(ctx).Model(&group).Association("Permissions").Append(&permissions)
}
