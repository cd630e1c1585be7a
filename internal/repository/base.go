package repository

import (
	"github.com/ajjandreimercado-von/GameHaqqs2-sub000/internal/database"

	"gorm.io/gorm"
)

func readDB(primary *gorm.DB) *gorm.DB {
	if db := database.GetReadDB(); db != nil {
		return db
	}
	return primary
}
