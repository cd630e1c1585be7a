package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ajjandreimercado-von/GameHaqqs2-sub000/internal/models"
	"github.com/ajjandreimercado-von/GameHaqqs2-sub000/internal/repository"
)

// EngagementService handles likes across all content kinds. A like is the
// only XP source driven by someone other than the earner: the author of the
// liked content receives the XP, not the liker.
type EngagementService struct {
	likeRepo     repository.LikeRepository
	postRepo     repository.PostRepository
	userRepo     repository.UserRepository
	xp           *XPService
	achievements *AchievementService
	notifier     *NotificationService
}

func NewEngagementService(
	likeRepo repository.LikeRepository,
	postRepo repository.PostRepository,
	userRepo repository.UserRepository,
	xp *XPService,
	achievements *AchievementService,
	notifier *NotificationService,
) *EngagementService {
	return &EngagementService{
		likeRepo:     likeRepo,
		postRepo:     postRepo,
		userRepo:     userRepo,
		xp:           xp,
		achievements: achievements,
		notifier:     notifier,
	}
}

// Like records a like on a piece of content. Self-likes are rejected,
// duplicates conflict, and only approved posts are likeable.
func (s *EngagementService) Like(ctx context.Context, userID uint, target models.TargetRef) error {
	if !target.Type.Valid() {
		return models.NewValidationError("Invalid like target type")
	}

	authorID, err := s.likeRepo.TargetAuthor(ctx, target)
	if err != nil {
		return err
	}
	if authorID == userID {
		return models.NewValidationError("You cannot like your own content")
	}

	if target.Type == models.TargetPost {
		post, err := s.postRepo.GetByID(ctx, target.ID, userID)
		if err != nil {
			return err
		}
		if post.Status != models.PostStatusApproved {
			return models.NewValidationError("Only approved posts can be liked")
		}
	}

	// The like and the author's XP commit together; a failed award rolls
	// the like back instead of recording engagement the ledger never saw.
	award, settle, err := s.xp.Stage(ctx, authorID, models.XPForLike(target.Type), models.XPReasonLikeReceived, string(target.Type), target.ID)
	if err != nil {
		return err
	}
	created, err := s.likeRepo.Like(ctx, userID, target, award)
	if err != nil {
		return err
	}
	if !created {
		return models.NewConflictError("Already liked")
	}
	settle(ctx)

	if _, err := s.achievements.CheckAndUnlock(ctx, authorID); err != nil {
		slog.ErrorContext(ctx, "achievement evaluation failed after like", "user_id", authorID, "err", err)
	}
	// The liker can cross likes_given thresholds too.
	if _, err := s.achievements.CheckAndUnlock(ctx, userID); err != nil {
		slog.ErrorContext(ctx, "achievement evaluation failed for liker", "user_id", userID, "err", err)
	}

	s.notifyLike(ctx, userID, authorID, target)
	return nil
}

func (s *EngagementService) notifyLike(ctx context.Context, actorID, authorID uint, target models.TargetRef) {
	if s.notifier == nil {
		return
	}
	actor, err := s.userRepo.GetByID(ctx, actorID)
	if err != nil {
		slog.WarnContext(ctx, "failed to load actor for like notification", "actor_id", actorID, "err", err)
		return
	}
	err = s.notifier.Notify(ctx, NotifyInput{
		UserID:  authorID,
		ActorID: actorID,
		Type:    models.NotificationLike,
		Message: fmt.Sprintf("%s liked your %s", actor.Username, target.Type),
		Payload: models.JSONMap{"target_type": target.Type, "target_id": target.ID},
	})
	if err != nil {
		slog.WarnContext(ctx, "failed to send like notification", "target", target.String(), "err", err)
	}
}

// Unlike removes a like. Earned XP is kept; engagement already happened.
func (s *EngagementService) Unlike(ctx context.Context, userID uint, target models.TargetRef) error {
	if !target.Type.Valid() {
		return models.NewValidationError("Invalid like target type")
	}
	return s.likeRepo.Unlike(ctx, userID, target)
}

func (s *EngagementService) IsLiked(ctx context.Context, userID uint, target models.TargetRef) (bool, error) {
	return s.likeRepo.IsLiked(ctx, userID, target)
}

func (s *EngagementService) Count(ctx context.Context, target models.TargetRef) (int64, error) {
	return s.likeRepo.Count(ctx, target)
}
