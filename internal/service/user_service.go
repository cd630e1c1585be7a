package service

import (
	"context"

	"github.com/ajjandreimercado-von/GameHaqqs2-sub000/internal/models"
	"github.com/ajjandreimercado-von/GameHaqqs2-sub000/internal/repository"
)

type UserService struct {
	userRepo repository.UserRepository
	postRepo repository.PostRepository
	likeRepo repository.LikeRepository
}

type UpdateProfileInput struct {
	UserID   uint
	Username string
	Bio      string
	Avatar   string
}

// UserStats summarizes a user's public gamification standing.
type UserStats struct {
	UserID        uint `json:"user_id"`
	XP            int  `json:"xp"`
	Level         int  `json:"level"`
	ApprovedPosts int  `json:"approved_posts"`
	LikesReceived int  `json:"likes_received"`
}

func NewUserService(userRepo repository.UserRepository, postRepo repository.PostRepository, likeRepo repository.LikeRepository) *UserService {
	return &UserService{userRepo: userRepo, postRepo: postRepo, likeRepo: likeRepo}
}

func (s *UserService) ListUsers(ctx context.Context, limit, offset int) ([]models.User, error) {
	if limit <= 0 || limit > 100 {
		limit = 25
	}
	return s.userRepo.List(ctx, limit, offset)
}

func (s *UserService) GetUserByID(ctx context.Context, id uint) (*models.User, error) {
	return s.userRepo.GetByID(ctx, id)
}

func (s *UserService) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, models.NewNotFoundError("User", username)
	}
	user.Level = models.LevelForXP(user.XP)
	return user, nil
}

func (s *UserService) UpdateProfile(ctx context.Context, in UpdateProfileInput) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, in.UserID)
	if err != nil {
		return nil, err
	}

	const maxBioLen = 500
	const maxUsernameLen = 30

	if in.Username != "" {
		if len(in.Username) > maxUsernameLen {
			return nil, models.NewValidationError("Username too long (max 30 characters)")
		}
		existing, err := s.userRepo.GetByUsername(ctx, in.Username)
		if err != nil {
			return nil, err
		}
		if existing != nil && existing.ID != user.ID {
			return nil, models.NewConflictError("Username already taken")
		}
		user.Username = in.Username
	}
	if in.Bio != "" {
		if len(in.Bio) > maxBioLen {
			return nil, models.NewValidationError("Bio too long (max 500 characters)")
		}
		user.Bio = in.Bio
	}
	if in.Avatar != "" {
		user.Avatar = in.Avatar
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// GetUserStats aggregates the numbers shown on a profile header.
func (s *UserService) GetUserStats(ctx context.Context, userID uint) (*UserStats, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	approved, err := s.postRepo.CountApprovedByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	received, err := s.likeRepo.CountReceivedBy(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &UserStats{
		UserID:        userID,
		XP:            user.XP,
		Level:         models.LevelForXP(user.XP),
		ApprovedPosts: int(approved),
		LikesReceived: int(received),
	}, nil
}
