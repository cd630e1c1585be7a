package service

import (
	"context"
	"time"

	"github.com/ajjandreimercado-von/GameHaqqs2-sub000/internal/models"
	"github.com/ajjandreimercado-von/GameHaqqs2-sub000/internal/repository"
)

// userRepoStub is a stub for repository.UserRepository.
type userRepoStub struct {
	getByIDFn       func(context.Context, uint) (*models.User, error)
	getByEmailFn    func(context.Context, string) (*models.User, error)
	getByUsernameFn func(context.Context, string) (*models.User, error)
	createFn        func(context.Context, *models.User) error
	updateFn        func(context.Context, *models.User) error
	deleteFn        func(context.Context, uint) error
	listFn          func(context.Context, int, int) ([]models.User, error)
	awardXPFn       func(context.Context, uint, int, models.XPReason, string, uint) error
}

func (s *userRepoStub) GetByID(ctx context.Context, id uint) (*models.User, error) {
	return s.getByIDFn(ctx, id)
}
func (s *userRepoStub) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.getByEmailFn(ctx, email)
}
func (s *userRepoStub) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	return s.getByUsernameFn(ctx, username)
}
func (s *userRepoStub) Create(ctx context.Context, user *models.User) error {
	return s.createFn(ctx, user)
}
func (s *userRepoStub) Update(ctx context.Context, user *models.User) error {
	return s.updateFn(ctx, user)
}
func (s *userRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}
func (s *userRepoStub) List(ctx context.Context, limit, offset int) ([]models.User, error) {
	return s.listFn(ctx, limit, offset)
}
func (s *userRepoStub) AwardXP(ctx context.Context, userID uint, amount int, reason models.XPReason, refType string, refID uint) error {
	return s.awardXPFn(ctx, userID, amount, reason, refType, refID)
}

func noopUserRepo() *userRepoStub {
	return &userRepoStub{
		getByIDFn:       func(_ context.Context, id uint) (*models.User, error) { return &models.User{ID: id, Role: models.RoleUser}, nil },
		getByEmailFn:    func(_ context.Context, _ string) (*models.User, error) { return nil, nil },
		getByUsernameFn: func(_ context.Context, _ string) (*models.User, error) { return nil, nil },
		createFn:        func(_ context.Context, _ *models.User) error { return nil },
		updateFn:        func(_ context.Context, _ *models.User) error { return nil },
		deleteFn:        func(_ context.Context, _ uint) error { return nil },
		listFn:          func(_ context.Context, _, _ int) ([]models.User, error) { return nil, nil },
		awardXPFn:       func(_ context.Context, _ uint, _ int, _ models.XPReason, _ string, _ uint) error { return nil },
	}
}

// postRepoStub is a stub for repository.PostRepository.
type postRepoStub struct {
	createFn              func(context.Context, *models.Post) error
	getByIDFn             func(context.Context, uint, uint) (*models.Post, error)
	getByUserIDFn         func(context.Context, uint, int, int, uint) ([]*models.Post, error)
	listApprovedFn        func(context.Context, int, int, uint, string) ([]*models.Post, error)
	listByStatusFn        func(context.Context, models.PostStatus, int, int) ([]*models.Post, error)
	searchFn              func(context.Context, string, int, int, uint) ([]*models.Post, error)
	updateFn              func(context.Context, *models.Post) error
	deleteFn              func(context.Context, uint) error
	countApprovedByUserFn func(context.Context, uint) (int64, error)
	transitionStatusFn    func(context.Context, uint, uint, models.PostStatus, string, *repository.XPAward) (*models.Post, error)
}

func (s *postRepoStub) Create(ctx context.Context, post *models.Post) error {
	return s.createFn(ctx, post)
}
func (s *postRepoStub) GetByID(ctx context.Context, id, currentUserID uint) (*models.Post, error) {
	return s.getByIDFn(ctx, id, currentUserID)
}
func (s *postRepoStub) GetByUserID(ctx context.Context, userID uint, limit, offset int, currentUserID uint) ([]*models.Post, error) {
	return s.getByUserIDFn(ctx, userID, limit, offset, currentUserID)
}
func (s *postRepoStub) ListApproved(ctx context.Context, limit, offset int, currentUserID uint, sort string) ([]*models.Post, error) {
	return s.listApprovedFn(ctx, limit, offset, currentUserID, sort)
}
func (s *postRepoStub) ListByStatus(ctx context.Context, status models.PostStatus, limit, offset int) ([]*models.Post, error) {
	return s.listByStatusFn(ctx, status, limit, offset)
}
func (s *postRepoStub) Search(ctx context.Context, query string, limit, offset int, currentUserID uint) ([]*models.Post, error) {
	return s.searchFn(ctx, query, limit, offset, currentUserID)
}
func (s *postRepoStub) Update(ctx context.Context, post *models.Post) error {
	return s.updateFn(ctx, post)
}
func (s *postRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}
func (s *postRepoStub) CountApprovedByUser(ctx context.Context, userID uint) (int64, error) {
	return s.countApprovedByUserFn(ctx, userID)
}
func (s *postRepoStub) TransitionStatus(ctx context.Context, postID, moderatorID uint, to models.PostStatus, reason string, award *repository.XPAward) (*models.Post, error) {
	return s.transitionStatusFn(ctx, postID, moderatorID, to, reason, award)
}

func noopPostRepo() *postRepoStub {
	return &postRepoStub{
		createFn: func(_ context.Context, _ *models.Post) error { return nil },
		getByIDFn: func(_ context.Context, id, _ uint) (*models.Post, error) {
			return &models.Post{ID: id, Status: models.PostStatusApproved}, nil
		},
		getByUserIDFn:         func(_ context.Context, _ uint, _, _ int, _ uint) ([]*models.Post, error) { return nil, nil },
		listApprovedFn:        func(_ context.Context, _, _ int, _ uint, _ string) ([]*models.Post, error) { return nil, nil },
		listByStatusFn:        func(_ context.Context, _ models.PostStatus, _, _ int) ([]*models.Post, error) { return nil, nil },
		searchFn:              func(_ context.Context, _ string, _, _ int, _ uint) ([]*models.Post, error) { return nil, nil },
		updateFn:              func(_ context.Context, _ *models.Post) error { return nil },
		deleteFn:              func(_ context.Context, _ uint) error { return nil },
		countApprovedByUserFn: func(_ context.Context, _ uint) (int64, error) { return 0, nil },
		transitionStatusFn: func(_ context.Context, postID, _ uint, to models.PostStatus, _ string, _ *repository.XPAward) (*models.Post, error) {
			return &models.Post{ID: postID, Status: to}, nil
		},
	}
}

// likeRepoStub is a stub for repository.LikeRepository.
type likeRepoStub struct {
	likeFn            func(context.Context, uint, models.TargetRef, *repository.XPAward) (bool, error)
	unlikeFn          func(context.Context, uint, models.TargetRef) error
	isLikedFn         func(context.Context, uint, models.TargetRef) (bool, error)
	countFn           func(context.Context, models.TargetRef) (int64, error)
	countGivenByFn    func(context.Context, uint) (int64, error)
	countReceivedByFn func(context.Context, uint) (int64, error)
	targetAuthorFn    func(context.Context, models.TargetRef) (uint, error)
}

func (s *likeRepoStub) Like(ctx context.Context, userID uint, target models.TargetRef, award *repository.XPAward) (bool, error) {
	return s.likeFn(ctx, userID, target, award)
}
func (s *likeRepoStub) Unlike(ctx context.Context, userID uint, target models.TargetRef) error {
	return s.unlikeFn(ctx, userID, target)
}
func (s *likeRepoStub) IsLiked(ctx context.Context, userID uint, target models.TargetRef) (bool, error) {
	return s.isLikedFn(ctx, userID, target)
}
func (s *likeRepoStub) Count(ctx context.Context, target models.TargetRef) (int64, error) {
	return s.countFn(ctx, target)
}
func (s *likeRepoStub) CountGivenBy(ctx context.Context, userID uint) (int64, error) {
	return s.countGivenByFn(ctx, userID)
}
func (s *likeRepoStub) CountReceivedBy(ctx context.Context, userID uint) (int64, error) {
	return s.countReceivedByFn(ctx, userID)
}
func (s *likeRepoStub) TargetAuthor(ctx context.Context, target models.TargetRef) (uint, error) {
	return s.targetAuthorFn(ctx, target)
}

func noopLikeRepo() *likeRepoStub {
	return &likeRepoStub{
		likeFn: func(_ context.Context, _ uint, _ models.TargetRef, _ *repository.XPAward) (bool, error) {
			return true, nil
		},
		unlikeFn:          func(_ context.Context, _ uint, _ models.TargetRef) error { return nil },
		isLikedFn:         func(_ context.Context, _ uint, _ models.TargetRef) (bool, error) { return false, nil },
		countFn:           func(_ context.Context, _ models.TargetRef) (int64, error) { return 0, nil },
		countGivenByFn:    func(_ context.Context, _ uint) (int64, error) { return 0, nil },
		countReceivedByFn: func(_ context.Context, _ uint) (int64, error) { return 0, nil },
		targetAuthorFn:    func(_ context.Context, _ models.TargetRef) (uint, error) { return 2, nil },
	}
}

// achievementRepoStub is a stub for repository.AchievementRepository.
type achievementRepoStub struct {
	listDefinitionsFn func(context.Context) ([]*models.Achievement, error)
	getByKeyFn        func(context.Context, string) (*models.Achievement, error)
	unlockFn          func(context.Context, uint, uint) (bool, error)
	listForUserFn     func(context.Context, uint) ([]*models.UserAchievement, error)
	userStatsFn       func(context.Context, uint) (map[models.AchievementMetric]int, error)
}

func (s *achievementRepoStub) ListDefinitions(ctx context.Context) ([]*models.Achievement, error) {
	return s.listDefinitionsFn(ctx)
}
func (s *achievementRepoStub) GetByKey(ctx context.Context, key string) (*models.Achievement, error) {
	return s.getByKeyFn(ctx, key)
}
func (s *achievementRepoStub) Unlock(ctx context.Context, userID, achievementID uint) (bool, error) {
	return s.unlockFn(ctx, userID, achievementID)
}
func (s *achievementRepoStub) ListForUser(ctx context.Context, userID uint) ([]*models.UserAchievement, error) {
	return s.listForUserFn(ctx, userID)
}
func (s *achievementRepoStub) UserStats(ctx context.Context, userID uint) (map[models.AchievementMetric]int, error) {
	return s.userStatsFn(ctx, userID)
}

func noopAchievementRepo() *achievementRepoStub {
	return &achievementRepoStub{
		listDefinitionsFn: func(_ context.Context) ([]*models.Achievement, error) { return nil, nil },
		getByKeyFn:        func(_ context.Context, _ string) (*models.Achievement, error) { return nil, nil },
		unlockFn:          func(_ context.Context, _, _ uint) (bool, error) { return true, nil },
		listForUserFn:     func(_ context.Context, _ uint) ([]*models.UserAchievement, error) { return nil, nil },
		userStatsFn: func(_ context.Context, _ uint) (map[models.AchievementMetric]int, error) {
			return map[models.AchievementMetric]int{}, nil
		},
	}
}

// notificationRepoStub is a stub for repository.NotificationRepository.
type notificationRepoStub struct {
	createFn      func(context.Context, *models.Notification) error
	listByUserFn  func(context.Context, uint, int, int) ([]*models.Notification, error)
	markReadFn    func(context.Context, uint, uint) error
	markAllReadFn func(context.Context, uint) (int64, error)
	deleteFn      func(context.Context, uint, uint) error
	countUnreadFn func(context.Context, uint) (int64, error)
}

func (s *notificationRepoStub) Create(ctx context.Context, n *models.Notification) error {
	return s.createFn(ctx, n)
}
func (s *notificationRepoStub) ListByUser(ctx context.Context, userID uint, limit, offset int) ([]*models.Notification, error) {
	return s.listByUserFn(ctx, userID, limit, offset)
}
func (s *notificationRepoStub) MarkRead(ctx context.Context, userID, notificationID uint) error {
	return s.markReadFn(ctx, userID, notificationID)
}
func (s *notificationRepoStub) MarkAllRead(ctx context.Context, userID uint) (int64, error) {
	return s.markAllReadFn(ctx, userID)
}
func (s *notificationRepoStub) Delete(ctx context.Context, userID, notificationID uint) error {
	return s.deleteFn(ctx, userID, notificationID)
}
func (s *notificationRepoStub) CountUnread(ctx context.Context, userID uint) (int64, error) {
	return s.countUnreadFn(ctx, userID)
}

func noopNotificationRepo() *notificationRepoStub {
	return &notificationRepoStub{
		createFn:      func(_ context.Context, _ *models.Notification) error { return nil },
		listByUserFn:  func(_ context.Context, _ uint, _, _ int) ([]*models.Notification, error) { return nil, nil },
		markReadFn:    func(_ context.Context, _, _ uint) error { return nil },
		markAllReadFn: func(_ context.Context, _ uint) (int64, error) { return 0, nil },
		deleteFn:      func(_ context.Context, _, _ uint) error { return nil },
		countUnreadFn: func(_ context.Context, _ uint) (int64, error) { return 0, nil },
	}
}

// leaderboardRepoStub is a stub for repository.LeaderboardRepository.
type leaderboardRepoStub struct {
	topAllTimeFn      func(context.Context, int, int) ([]repository.LeaderboardEntry, error)
	topSinceFn        func(context.Context, time.Time, int, int) ([]repository.LeaderboardEntry, error)
	countRankedFn     func(context.Context) (int64, error)
	countAboveFn      func(context.Context, int) (int64, error)
	windowXPFn        func(context.Context, uint, time.Time) (int, error)
	countAboveSinceFn func(context.Context, time.Time, int) (int64, error)
}

func (s *leaderboardRepoStub) TopAllTime(ctx context.Context, limit, offset int) ([]repository.LeaderboardEntry, error) {
	return s.topAllTimeFn(ctx, limit, offset)
}
func (s *leaderboardRepoStub) TopSince(ctx context.Context, since time.Time, limit, offset int) ([]repository.LeaderboardEntry, error) {
	return s.topSinceFn(ctx, since, limit, offset)
}
func (s *leaderboardRepoStub) CountRanked(ctx context.Context) (int64, error) {
	return s.countRankedFn(ctx)
}
func (s *leaderboardRepoStub) CountAbove(ctx context.Context, xp int) (int64, error) {
	return s.countAboveFn(ctx, xp)
}
func (s *leaderboardRepoStub) WindowXP(ctx context.Context, userID uint, since time.Time) (int, error) {
	return s.windowXPFn(ctx, userID, since)
}
func (s *leaderboardRepoStub) CountAboveSince(ctx context.Context, since time.Time, xp int) (int64, error) {
	return s.countAboveSinceFn(ctx, since, xp)
}

func noopLeaderboardRepo() *leaderboardRepoStub {
	return &leaderboardRepoStub{
		topAllTimeFn:      func(_ context.Context, _, _ int) ([]repository.LeaderboardEntry, error) { return nil, nil },
		topSinceFn:        func(_ context.Context, _ time.Time, _, _ int) ([]repository.LeaderboardEntry, error) { return nil, nil },
		countRankedFn:     func(_ context.Context) (int64, error) { return 0, nil },
		countAboveFn:      func(_ context.Context, _ int) (int64, error) { return 0, nil },
		windowXPFn:        func(_ context.Context, _ uint, _ time.Time) (int, error) { return 0, nil },
		countAboveSinceFn: func(_ context.Context, _ time.Time, _ int) (int64, error) { return 0, nil },
	}
}

// publisherStub records events pushed to users.
type publisherStub struct {
	events []any
	users  []uint
	err    error
}

func (s *publisherStub) PublishUserEvent(_ context.Context, userID uint, event any) error {
	if s.err != nil {
		return s.err
	}
	s.users = append(s.users, userID)
	s.events = append(s.events, event)
	return nil
}
