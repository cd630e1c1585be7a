package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/ajjandreimercado-von/GameHaqqs2-sub000/internal/models"
	"github.com/ajjandreimercado-von/GameHaqqs2-sub000/internal/observability"
	"github.com/ajjandreimercado-von/GameHaqqs2-sub000/internal/repository"
)

// ModerationService gates user content. Every post starts pending and must
// pass through here before it is publicly visible or earns its author XP.
type ModerationService struct {
	postRepo     repository.PostRepository
	userRepo     repository.UserRepository
	xp           *XPService
	achievements *AchievementService
	notifier     *NotificationService
}

// ModerateInput describes a moderation decision on a pending post.
type ModerateInput struct {
	ModeratorID uint
	PostID      uint
	Approve     bool
	Reason      string
}

func NewModerationService(
	postRepo repository.PostRepository,
	userRepo repository.UserRepository,
	xp *XPService,
	achievements *AchievementService,
	notifier *NotificationService,
) *ModerationService {
	return &ModerationService{
		postRepo:     postRepo,
		userRepo:     userRepo,
		xp:           xp,
		achievements: achievements,
		notifier:     notifier,
	}
}

// requireModerator loads the acting user and checks their role.
func (s *ModerationService) requireModerator(ctx context.Context, userID uint) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !user.Role.CanModerate() {
		return nil, models.NewForbiddenError("Moderator role required")
	}
	return user, nil
}

// ListPending returns the moderation queue, oldest first.
func (s *ModerationService) ListPending(ctx context.Context, moderatorID uint, limit, offset int) ([]*models.Post, error) {
	if _, err := s.requireModerator(ctx, moderatorID); err != nil {
		return nil, err
	}
	if limit <= 0 || limit > 100 {
		limit = 25
	}
	return s.postRepo.ListByStatus(ctx, models.PostStatusPending, limit, offset)
}

// ModeratePost applies an approve or decline decision. A declined reason is
// required so authors always learn why. Approval is the moment the author
// earns posting XP and becomes eligible for post achievements.
func (s *ModerationService) ModeratePost(ctx context.Context, in ModerateInput) (*models.Post, error) {
	if _, err := s.requireModerator(ctx, in.ModeratorID); err != nil {
		return nil, err
	}
	if !in.Approve && in.Reason == "" {
		return nil, models.NewValidationError("A reason is required when declining a post")
	}

	to := models.PostStatusApproved
	outcome := "approved"
	if !in.Approve {
		to = models.PostStatusDeclined
		outcome = "declined"
	}

	// An approval's XP must land with the status change, so the award is
	// staged here and committed inside the transition transaction. A failed
	// award fails the decision and leaves the post pending.
	var award *repository.XPAward
	var settle func(context.Context)
	if in.Approve {
		pending, err := s.postRepo.GetByID(ctx, in.PostID, 0)
		if err != nil {
			return nil, err
		}
		award, settle, err = s.xp.Stage(ctx, pending.UserID, models.XPForPost, models.XPReasonPostApproved, "post", pending.ID)
		if err != nil {
			return nil, err
		}
	}

	post, err := s.postRepo.TransitionStatus(ctx, in.PostID, in.ModeratorID, to, in.Reason, award)
	if err != nil {
		return nil, err
	}
	observability.ModerationDecisionsTotal.WithLabelValues(outcome).Inc()

	if in.Approve {
		settle(ctx)
		if _, err := s.achievements.CheckAndUnlock(ctx, post.UserID); err != nil {
			slog.ErrorContext(ctx, "achievement evaluation failed after approval", "user_id", post.UserID, "err", err)
		}
	}

	s.notifyDecision(ctx, post, in)
	return post, nil
}

func (s *ModerationService) notifyDecision(ctx context.Context, post *models.Post, in ModerateInput) {
	if s.notifier == nil {
		return
	}

	notificationType := models.NotificationPostApproved
	message := fmt.Sprintf("Your post %q was approved", post.Title)
	payload := models.JSONMap{"post_id": post.ID}
	if !in.Approve {
		notificationType = models.NotificationPostDeclined
		message = fmt.Sprintf("Your post %q was declined", post.Title)
		payload["reason"] = in.Reason
	}

	err := s.notifier.Notify(ctx, NotifyInput{
		UserID:  post.UserID,
		Type:    notificationType,
		Message: message,
		Payload: payload,
	})
	if err != nil {
		slog.WarnContext(ctx, "failed to send moderation notification", "post_id", post.ID, "user_id", post.UserID, "err", err)
	}
}

// SetBanned flips a user's ban flag. Admin only; staff cannot be banned.
func (s *ModerationService) SetBanned(ctx context.Context, adminID, userID uint, banned bool) (*models.User, error) {
	admin, err := s.userRepo.GetByID(ctx, adminID)
	if err != nil {
		return nil, err
	}
	if admin.Role != models.RoleAdmin {
		return nil, models.NewForbiddenError("Admin role required")
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user.Role.CanModerate() {
		return nil, models.NewValidationError("Staff accounts cannot be banned")
	}

	user.IsBanned = banned
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// MuteUser silences a user until the given time. A zero duration clears
// the mute.
func (s *ModerationService) MuteUser(ctx context.Context, moderatorID, userID uint, duration time.Duration) (*models.User, error) {
	if _, err := s.requireModerator(ctx, moderatorID); err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user.Role.CanModerate() {
		return nil, models.NewValidationError("Staff accounts cannot be muted")
	}

	if duration <= 0 {
		user.MutedUntil = nil
	} else {
		until := time.Now().Add(duration)
		user.MutedUntil = &until
	}
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// SetRole assigns a role to a user. Admin only; admins cannot demote
// themselves, which keeps at least one admin around.
func (s *ModerationService) SetRole(ctx context.Context, adminID, userID uint, role models.Role) (*models.User, error) {
	admin, err := s.userRepo.GetByID(ctx, adminID)
	if err != nil {
		return nil, err
	}
	if admin.Role != models.RoleAdmin {
		return nil, models.NewForbiddenError("Admin role required")
	}
	if !role.Valid() {
		return nil, models.NewValidationError("Invalid role")
	}
	if adminID == userID && role != models.RoleAdmin {
		return nil, models.NewValidationError("Admins cannot demote themselves")
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	user.Role = role
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}
