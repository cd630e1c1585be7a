package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/ajjandreimercado-von/GameHaqqs2-sub000/internal/models"
	"github.com/ajjandreimercado-von/GameHaqqs2-sub000/internal/repository"
)

type CommentService struct {
	commentRepo  repository.CommentRepository
	postRepo     repository.PostRepository
	userRepo     repository.UserRepository
	xp           *XPService
	achievements *AchievementService
	notifier     *NotificationService
}

type CreateCommentInput struct {
	UserID  uint
	PostID  uint
	Content string
}

func NewCommentService(
	commentRepo repository.CommentRepository,
	postRepo repository.PostRepository,
	userRepo repository.UserRepository,
	xp *XPService,
	achievements *AchievementService,
	notifier *NotificationService,
) *CommentService {
	return &CommentService{
		commentRepo:  commentRepo,
		postRepo:     postRepo,
		userRepo:     userRepo,
		xp:           xp,
		achievements: achievements,
		notifier:     notifier,
	}
}

const maxCommentLen = 10000

// CreateComment adds a comment to an approved post. The commenter earns XP
// immediately and the post author gets notified.
func (s *CommentService) CreateComment(ctx context.Context, in CreateCommentInput) (*models.Comment, error) {
	if in.Content == "" {
		return nil, models.NewValidationError("Content is required")
	}
	if len(in.Content) > maxCommentLen {
		return nil, models.NewValidationError("Comment too long (max 10000 characters)")
	}

	user, err := s.userRepo.GetByID(ctx, in.UserID)
	if err != nil {
		return nil, err
	}
	if !user.CanPost(time.Now()) {
		return nil, models.NewForbiddenError("Your account is not allowed to comment right now")
	}

	post, err := s.postRepo.GetByID(ctx, in.PostID, in.UserID)
	if err != nil {
		return nil, err
	}
	if post.Status != models.PostStatusApproved {
		return nil, models.NewValidationError("Comments are only allowed on approved posts")
	}

	// Comment row and commenter XP commit in one transaction. The award's
	// ref ID is filled in by the repository once the row has an ID.
	award, settle, err := s.xp.Stage(ctx, in.UserID, models.XPForComment, models.XPReasonComment, "comment", 0)
	if err != nil {
		return nil, err
	}

	comment := &models.Comment{
		UserID:  in.UserID,
		PostID:  in.PostID,
		Content: in.Content,
	}
	if err := s.commentRepo.Create(ctx, comment, award); err != nil {
		return nil, err
	}
	comment.User = *user
	settle(ctx)

	if _, err := s.achievements.CheckAndUnlock(ctx, in.UserID); err != nil {
		slog.ErrorContext(ctx, "achievement evaluation failed after comment", "user_id", in.UserID, "err", err)
	}

	if s.notifier != nil {
		err := s.notifier.Notify(ctx, NotifyInput{
			UserID:  post.UserID,
			ActorID: in.UserID,
			Type:    models.NotificationComment,
			Message: fmt.Sprintf("%s commented on your post %q", user.Username, post.Title),
			Payload: models.JSONMap{"post_id": post.ID, "comment_id": comment.ID},
		})
		if err != nil {
			slog.WarnContext(ctx, "failed to send comment notification", "post_id", post.ID, "err", err)
		}
	}

	return comment, nil
}

func (s *CommentService) GetComments(ctx context.Context, postID uint, limit, offset int) ([]*models.Comment, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	return s.commentRepo.ListByPost(ctx, postID, limit, offset)
}

// UpdateComment edits a comment. Author only.
func (s *CommentService) UpdateComment(ctx context.Context, userID, commentID uint, content string) (*models.Comment, error) {
	if content == "" {
		return nil, models.NewValidationError("Content is required")
	}
	if len(content) > maxCommentLen {
		return nil, models.NewValidationError("Comment too long (max 10000 characters)")
	}

	comment, err := s.commentRepo.GetByID(ctx, commentID)
	if err != nil {
		return nil, err
	}
	if comment.UserID != userID {
		return nil, models.NewForbiddenError("You can only edit your own comments")
	}

	comment.Content = content
	if err := s.commentRepo.Update(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

// DeleteComment removes a comment. The author or a moderator may delete.
func (s *CommentService) DeleteComment(ctx context.Context, userID, commentID uint) error {
	comment, err := s.commentRepo.GetByID(ctx, commentID)
	if err != nil {
		return err
	}
	if comment.UserID != userID {
		actor, err := s.userRepo.GetByID(ctx, userID)
		if err != nil {
			return err
		}
		if !actor.Role.CanModerate() {
			return models.NewForbiddenError("You can only delete your own comments")
		}
	}
	return s.commentRepo.Delete(ctx, commentID)
}
