package service

import (
	"context"
	"testing"

	"github.com/ajjandreimercado-von/GameHaqqs2-sub000/internal/models"
	"github.com/ajjandreimercado-von/GameHaqqs2-sub000/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func moderatorUserRepo() *userRepoStub {
	repo := noopUserRepo()
	repo.getByIDFn = func(_ context.Context, id uint) (*models.User, error) {
		if id == 9 {
			return &models.User{ID: 9, Role: models.RoleModerator}, nil
		}
		return &models.User{ID: id, Role: models.RoleUser}, nil
	}
	return repo
}

func newModerationService(postRepo *postRepoStub, userRepo *userRepoStub, notificationRepo *notificationRepoStub) *ModerationService {
	notifier := NewNotificationService(notificationRepo, nil)
	xp := NewXPService(userRepo, notifier)
	achievements := NewAchievementService(noopAchievementRepo(), userRepo, notifier)
	return NewModerationService(postRepo, userRepo, xp, achievements, notifier)
}

func TestModerationService_ModeratePost(t *testing.T) {
	t.Parallel()

	t.Run("Requires Moderator Role", func(t *testing.T) {
		t.Parallel()
		svc := newModerationService(noopPostRepo(), moderatorUserRepo(), noopNotificationRepo())

		_, err := svc.ModeratePost(context.Background(), ModerateInput{ModeratorID: 2, PostID: 5, Approve: true})
		require.Error(t, err)
		var appErr *models.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "FORBIDDEN", appErr.Code)
	})

	t.Run("Decline Requires Reason", func(t *testing.T) {
		t.Parallel()
		svc := newModerationService(noopPostRepo(), moderatorUserRepo(), noopNotificationRepo())

		_, err := svc.ModeratePost(context.Background(), ModerateInput{ModeratorID: 9, PostID: 5, Approve: false})
		require.Error(t, err)
		var appErr *models.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "VALIDATION_ERROR", appErr.Code)
	})

	t.Run("Approval Commits XP With The Transition", func(t *testing.T) {
		t.Parallel()
		postRepo := noopPostRepo()
		postRepo.getByIDFn = func(_ context.Context, id, _ uint) (*models.Post, error) {
			return &models.Post{ID: id, UserID: 2, Title: "Hidden gems", Status: models.PostStatusPending}, nil
		}
		var staged *repository.XPAward
		postRepo.transitionStatusFn = func(_ context.Context, postID, moderatorID uint, to models.PostStatus, _ string, award *repository.XPAward) (*models.Post, error) {
			assert.Equal(t, uint(9), moderatorID)
			assert.Equal(t, models.PostStatusApproved, to)
			staged = award
			return &models.Post{ID: postID, UserID: 2, Title: "Hidden gems", Status: to}, nil
		}

		notificationRepo := noopNotificationRepo()
		var created []*models.Notification
		notificationRepo.createFn = func(_ context.Context, n *models.Notification) error {
			created = append(created, n)
			return nil
		}

		svc := newModerationService(postRepo, moderatorUserRepo(), notificationRepo)
		post, err := svc.ModeratePost(context.Background(), ModerateInput{ModeratorID: 9, PostID: 5, Approve: true})
		require.NoError(t, err)
		assert.Equal(t, models.PostStatusApproved, post.Status)
		require.NotNil(t, staged, "the approval must carry the author's XP into the transition")
		assert.Equal(t, uint(2), staged.UserID)
		assert.Equal(t, models.XPForPost, staged.Amount)
		assert.Equal(t, models.XPReasonPostApproved, staged.Reason)
		require.Len(t, created, 1)
		assert.Equal(t, models.NotificationPostApproved, created[0].Type)
		assert.Equal(t, uint(2), created[0].UserID)
	})

	t.Run("Failed Award Leaves Post Pending", func(t *testing.T) {
		t.Parallel()
		postRepo := noopPostRepo()
		postRepo.getByIDFn = func(_ context.Context, id, _ uint) (*models.Post, error) {
			return &models.Post{ID: id, UserID: 2, Status: models.PostStatusPending}, nil
		}
		postRepo.transitionStatusFn = func(_ context.Context, _, _ uint, _ models.PostStatus, _ string, _ *repository.XPAward) (*models.Post, error) {
			return nil, models.NewNotFoundError("User", 2)
		}

		notificationRepo := noopNotificationRepo()
		notificationRepo.createFn = func(_ context.Context, _ *models.Notification) error {
			t.Error("a failed decision must not notify the author")
			return nil
		}

		svc := newModerationService(postRepo, moderatorUserRepo(), notificationRepo)
		_, err := svc.ModeratePost(context.Background(), ModerateInput{ModeratorID: 9, PostID: 5, Approve: true})
		require.Error(t, err)
		var appErr *models.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "NOT_FOUND", appErr.Code)
	})

	t.Run("Decline Notifies With Reason", func(t *testing.T) {
		t.Parallel()
		userRepo := moderatorUserRepo()
		userRepo.awardXPFn = func(_ context.Context, _ uint, _ int, _ models.XPReason, _ string, _ uint) error {
			t.Fatal("declined posts must not award XP")
			return nil
		}

		postRepo := noopPostRepo()
		postRepo.transitionStatusFn = func(_ context.Context, postID, _ uint, to models.PostStatus, reason string, award *repository.XPAward) (*models.Post, error) {
			assert.Nil(t, award, "declines carry no XP")
			assert.Equal(t, "off topic", reason)
			return &models.Post{ID: postID, UserID: 2, Title: "Spam", Status: to}, nil
		}

		notificationRepo := noopNotificationRepo()
		var created []*models.Notification
		notificationRepo.createFn = func(_ context.Context, n *models.Notification) error {
			created = append(created, n)
			return nil
		}

		svc := newModerationService(postRepo, userRepo, notificationRepo)
		post, err := svc.ModeratePost(context.Background(), ModerateInput{ModeratorID: 9, PostID: 5, Approve: false, Reason: "off topic"})
		require.NoError(t, err)
		assert.Equal(t, models.PostStatusDeclined, post.Status)
		require.Len(t, created, 1)
		assert.Equal(t, models.NotificationPostDeclined, created[0].Type)
		assert.Equal(t, "off topic", created[0].Payload["reason"])
	})
}

func TestModerationService_SetBanned(t *testing.T) {
	t.Parallel()

	adminRepo := func() *userRepoStub {
		repo := noopUserRepo()
		repo.getByIDFn = func(_ context.Context, id uint) (*models.User, error) {
			switch id {
			case 1:
				return &models.User{ID: 1, Role: models.RoleAdmin}, nil
			case 9:
				return &models.User{ID: 9, Role: models.RoleModerator}, nil
			default:
				return &models.User{ID: id, Role: models.RoleUser}, nil
			}
		}
		return repo
	}

	t.Run("Admin Can Ban", func(t *testing.T) {
		t.Parallel()
		userRepo := adminRepo()
		var saved *models.User
		userRepo.updateFn = func(_ context.Context, u *models.User) error {
			saved = u
			return nil
		}

		svc := newModerationService(noopPostRepo(), userRepo, noopNotificationRepo())
		user, err := svc.SetBanned(context.Background(), 1, 5, true)
		require.NoError(t, err)
		assert.True(t, user.IsBanned)
		require.NotNil(t, saved)
		assert.True(t, saved.IsBanned)
	})

	t.Run("Moderator Cannot Ban", func(t *testing.T) {
		t.Parallel()
		svc := newModerationService(noopPostRepo(), adminRepo(), noopNotificationRepo())
		_, err := svc.SetBanned(context.Background(), 9, 5, true)
		require.Error(t, err)
		var appErr *models.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "FORBIDDEN", appErr.Code)
	})

	t.Run("Staff Cannot Be Banned", func(t *testing.T) {
		t.Parallel()
		svc := newModerationService(noopPostRepo(), adminRepo(), noopNotificationRepo())
		_, err := svc.SetBanned(context.Background(), 1, 9, true)
		require.Error(t, err)
		var appErr *models.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "VALIDATION_ERROR", appErr.Code)
	})
}
