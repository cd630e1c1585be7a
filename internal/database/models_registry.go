package database

import "github.com/ajjandreimercado-von/GameHaqqs2-sub000/internal/models"

// PersistentModels returns the authoritative set of schema-managed GORM models.
func PersistentModels() []interface{} {
	return []interface{}{
		&models.User{},
		&models.Game{},
		&models.Post{},
		&models.Comment{},
		&models.Like{},
		&models.Review{},
		&models.Tip{},
		&models.WikiEntry{},
		&models.Achievement{},
		&models.UserAchievement{},
		&models.Notification{},
		&models.XPEvent{},
		&models.ModeratorAction{},
	}
}
