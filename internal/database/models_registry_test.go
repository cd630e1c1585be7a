package database

import (
	"testing"

	"github.com/ajjandreimercado-von/GameHaqqs2-sub000/internal/models"

	"github.com/stretchr/testify/require"
)

func TestPersistentModels_IncludesLedgerTables(t *testing.T) {
	var hasXPEvent, hasUserAchievement, hasModeratorAction bool
	for _, model := range PersistentModels() {
		switch model.(type) {
		case *models.XPEvent:
			hasXPEvent = true
		case *models.UserAchievement:
			hasUserAchievement = true
		case *models.ModeratorAction:
			hasModeratorAction = true
		}
	}
	require.True(t, hasXPEvent, "PersistentModels should include XPEvent")
	require.True(t, hasUserAchievement, "PersistentModels should include UserAchievement")
	require.True(t, hasModeratorAction, "PersistentModels should include ModeratorAction")
}
