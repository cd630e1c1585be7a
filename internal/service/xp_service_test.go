package service

import (
	"context"
	"testing"

	"github.com/ajjandreimercado-von/GameHaqqs2-sub000/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestXPService_Award_RejectsNonPositive(t *testing.T) {
	t.Parallel()
	svc := NewXPService(noopUserRepo(), nil)

	for _, amount := range []int{0, -10} {
		err := svc.Award(context.Background(), 1, amount, models.XPReasonComment, "comment", 1)
		require.Error(t, err)
		var appErr *models.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "VALIDATION_ERROR", appErr.Code)
	}
}

func TestXPService_Award_RecordsLedger(t *testing.T) {
	t.Parallel()
	userRepo := noopUserRepo()

	var gotAmount int
	var gotReason models.XPReason
	userRepo.awardXPFn = func(_ context.Context, userID uint, amount int, reason models.XPReason, refType string, refID uint) error {
		gotAmount = amount
		gotReason = reason
		return nil
	}

	svc := NewXPService(userRepo, nil)
	err := svc.Award(context.Background(), 1, models.XPForReview, models.XPReasonReview, "review", 9)
	require.NoError(t, err)
	assert.Equal(t, models.XPForReview, gotAmount)
	assert.Equal(t, models.XPReasonReview, gotReason)
}

func TestXPService_Award_LevelUpNotification(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		startXP    int
		amount     int
		wantNotify bool
	}{
		{"Crosses Boundary", 95, 10, true},
		{"Stays Within Level", 10, 10, false},
		{"Lands Exactly On Boundary", 90, 10, true},
		{"Skips Multiple Levels", 0, 250, true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			userRepo := noopUserRepo()
			userRepo.getByIDFn = func(_ context.Context, id uint) (*models.User, error) {
				return &models.User{ID: id, Role: models.RoleUser, XP: tt.startXP}, nil
			}

			notificationRepo := noopNotificationRepo()
			var created []*models.Notification
			notificationRepo.createFn = func(_ context.Context, n *models.Notification) error {
				created = append(created, n)
				return nil
			}
			notifier := NewNotificationService(notificationRepo, nil)

			svc := NewXPService(userRepo, notifier)
			err := svc.Award(context.Background(), 1, tt.amount, models.XPReasonPostApproved, "post", 3)
			require.NoError(t, err)

			if tt.wantNotify {
				require.Len(t, created, 1)
				assert.Equal(t, models.NotificationLevelUp, created[0].Type)
				wantLevel := models.LevelForXP(tt.startXP + tt.amount)
				assert.EqualValues(t, wantLevel, created[0].Payload["level"])
			} else {
				assert.Empty(t, created)
			}
		})
	}
}
