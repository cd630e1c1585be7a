package service

import (
	"context"
	"time"

	"github.com/ajjandreimercado-von/GameHaqqs2-sub000/internal/models"
	"github.com/ajjandreimercado-von/GameHaqqs2-sub000/internal/repository"
)

type PostService struct {
	postRepo repository.PostRepository
	userRepo repository.UserRepository
	gameRepo repository.GameRepository
}

type CreatePostInput struct {
	UserID  uint
	Title   string
	Content string
	GameID  *uint
}

type ListPostsInput struct {
	Limit         int
	Offset        int
	CurrentUserID uint
	Sort          string
}

type UpdatePostInput struct {
	UserID  uint
	PostID  uint
	Title   string
	Content string
}

func NewPostService(
	postRepo repository.PostRepository,
	userRepo repository.UserRepository,
	gameRepo repository.GameRepository,
) *PostService {
	return &PostService{
		postRepo: postRepo,
		userRepo: userRepo,
		gameRepo: gameRepo,
	}
}

const (
	maxTitleLen   = 300
	maxContentLen = 50000
)

func validatePostContent(title, content string) error {
	if title == "" {
		return models.NewValidationError("Title is required")
	}
	if len(title) > maxTitleLen {
		return models.NewValidationError("Title too long (max 300 characters)")
	}
	if content == "" {
		return models.NewValidationError("Content is required")
	}
	if len(content) > maxContentLen {
		return models.NewValidationError("Content too long (max 50000 characters)")
	}
	return nil
}

// requireCanPost loads the author and rejects banned or muted accounts.
func (s *PostService) requireCanPost(ctx context.Context, userID uint) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !user.CanPost(time.Now()) {
		return nil, models.NewForbiddenError("Your account is not allowed to post right now")
	}
	return user, nil
}

// CreatePost submits a new post. It enters the moderation queue as pending
// and is invisible to other users until approved.
func (s *PostService) CreatePost(ctx context.Context, in CreatePostInput) (*models.Post, error) {
	if _, err := s.requireCanPost(ctx, in.UserID); err != nil {
		return nil, err
	}
	if err := validatePostContent(in.Title, in.Content); err != nil {
		return nil, err
	}
	if in.GameID != nil {
		if _, err := s.gameRepo.GetByID(ctx, *in.GameID); err != nil {
			return nil, err
		}
	}

	post := &models.Post{
		UserID:  in.UserID,
		Title:   in.Title,
		Content: in.Content,
		GameID:  in.GameID,
		Status:  models.PostStatusPending,
	}
	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

// GetPost returns a post. Pending or declined posts are visible only to
// their author and to moderators.
func (s *PostService) GetPost(ctx context.Context, postID, currentUserID uint) (*models.Post, error) {
	post, err := s.postRepo.GetByID(ctx, postID, currentUserID)
	if err != nil {
		return nil, err
	}
	if post.Status == models.PostStatusApproved {
		return post, nil
	}
	if currentUserID == 0 {
		return nil, models.NewNotFoundError("Post", postID)
	}
	if post.UserID == currentUserID {
		return post, nil
	}
	viewer, err := s.userRepo.GetByID(ctx, currentUserID)
	if err != nil {
		return nil, err
	}
	if !viewer.Role.CanModerate() {
		return nil, models.NewNotFoundError("Post", postID)
	}
	return post, nil
}

// ListPosts returns the public feed of approved posts.
func (s *PostService) ListPosts(ctx context.Context, in ListPostsInput) ([]*models.Post, error) {
	if in.Limit <= 0 || in.Limit > 100 {
		in.Limit = 25
	}
	if in.Offset < 0 {
		in.Offset = 0
	}
	return s.postRepo.ListApproved(ctx, in.Limit, in.Offset, in.CurrentUserID, in.Sort)
}

// GetUserPosts lists a user's posts. Viewers other than the author see only
// approved posts filtered in the handler layer via this method's results;
// the author sees everything including pending submissions.
func (s *PostService) GetUserPosts(ctx context.Context, userID uint, limit, offset int, currentUserID uint) ([]*models.Post, error) {
	if limit <= 0 || limit > 100 {
		limit = 25
	}
	posts, err := s.postRepo.GetByUserID(ctx, userID, limit, offset, currentUserID)
	if err != nil {
		return nil, err
	}
	if userID == currentUserID {
		return posts, nil
	}
	visible := make([]*models.Post, 0, len(posts))
	for _, p := range posts {
		if p.Status == models.PostStatusApproved {
			visible = append(visible, p)
		}
	}
	return visible, nil
}

func (s *PostService) SearchPosts(ctx context.Context, query string, limit, offset int, currentUserID uint) ([]*models.Post, error) {
	if query == "" {
		return nil, models.NewValidationError("Search query is required")
	}
	if limit <= 0 || limit > 100 {
		limit = 25
	}
	return s.postRepo.Search(ctx, query, limit, offset, currentUserID)
}

// UpdatePost edits a post's text. Only the author may edit, and editing an
// approved post sends it back through moderation.
func (s *PostService) UpdatePost(ctx context.Context, in UpdatePostInput) (*models.Post, error) {
	post, err := s.postRepo.GetByID(ctx, in.PostID, in.UserID)
	if err != nil {
		return nil, err
	}
	if post.UserID != in.UserID {
		return nil, models.NewForbiddenError("You can only edit your own posts")
	}
	if err := validatePostContent(in.Title, in.Content); err != nil {
		return nil, err
	}

	post.Title = in.Title
	post.Content = in.Content
	if post.Status == models.PostStatusApproved {
		post.Status = models.PostStatusPending
	}
	if err := s.postRepo.Update(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

// DeletePost removes a post. The author or a moderator may delete.
func (s *PostService) DeletePost(ctx context.Context, userID, postID uint) error {
	post, err := s.postRepo.GetByID(ctx, postID, userID)
	if err != nil {
		return err
	}
	if post.UserID != userID {
		actor, err := s.userRepo.GetByID(ctx, userID)
		if err != nil {
			return err
		}
		if !actor.Role.CanModerate() {
			return models.NewForbiddenError("You can only delete your own posts")
		}
	}
	return s.postRepo.Delete(ctx, postID)
}
