// Package repository implements the data access layer for the application.
package repository

import (
	"context"
	"errors"
	"strings"

	"github.com/ajjandreimercado-von/GameHaqqs2-sub000/internal/cache"
	"github.com/ajjandreimercado-von/GameHaqqs2-sub000/internal/models"

	"gorm.io/gorm"
)

// UserRepository defines persistence operations for users.
type UserRepository interface {
	GetByID(ctx context.Context, id uint) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	Create(ctx context.Context, user *models.User) error
	Update(ctx context.Context, user *models.User) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, limit, offset int) ([]models.User, error)
	AwardXP(ctx context.Context, userID uint, amount int, reason models.XPReason, refType string, refID uint) error
}

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository returns a new UserRepository implementation.
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) GetByID(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	key := cache.UserKey(id)

	err := cache.Aside(ctx, key, &user, cache.UserTTL, func() error {
		if err := readDB(r.db).WithContext(ctx).First(&user, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.NewNotFoundError("User", id)
			}
			return models.NewInternalError(err)
		}
		return nil
	})

	if err != nil {
		return nil, err
	}
	// Level is derived in AfterFind, but a cache hit skips the hook.
	user.Level = models.LevelForXP(user.XP)
	return &user, nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := readDB(r.db).WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, models.NewInternalError(err)
	}
	return &user, nil
}

func (r *userRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	if err := readDB(r.db).WithContext(ctx).Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, models.NewInternalError(err)
	}
	return &user, nil
}

func (r *userRepository) Create(ctx context.Context, user *models.User) error {
	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		if isUniqueConstraintError(err) {
			return models.NewValidationError("User already exists")
		}
		return models.NewInternalError(err)
	}
	return nil
}

// isUniqueConstraintError checks if a DB error is a unique constraint violation.
func isUniqueConstraintError(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	// PostgreSQL unique violation SQLSTATE 23505
	return strings.Contains(msg, "duplicate key") ||
		strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "23505")
}

func (r *userRepository) Update(ctx context.Context, user *models.User) error {
	if err := r.db.WithContext(ctx).Save(user).Error; err != nil {
		return models.NewInternalError(err)
	}
	cache.InvalidateUser(ctx, user.ID)
	return nil
}

func (r *userRepository) Delete(ctx context.Context, id uint) error {
	if err := r.db.WithContext(ctx).Delete(&models.User{}, id).Error; err != nil {
		return models.NewInternalError(err)
	}
	cache.InvalidateUser(ctx, id)
	return nil
}

func (r *userRepository) List(ctx context.Context, limit, offset int) ([]models.User, error) {
	var users []models.User
	if err := readDB(r.db).WithContext(ctx).Limit(limit).Offset(offset).Find(&users).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return users, nil
}

// AwardXP atomically increments a user's XP and records a ledger event in
// the same transaction. Concurrent awards never lose increments because the
// addition happens in SQL, not read-modify-write in Go.
func (r *userRepository) AwardXP(ctx context.Context, userID uint, amount int, reason models.XPReason, refType string, refID uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return AwardXPTx(tx, userID, amount, reason, refType, refID)
	})
	if err != nil {
		return err
	}
	cache.InvalidateUser(ctx, userID)
	return nil
}

// XPAward describes an XP grant that a repository commits atomically with
// its own writes. RefID may be zero when the referenced row only gets its ID
// on insert; the applying repository fills it in before the grant lands.
type XPAward struct {
	UserID  uint
	Amount  int
	Reason  models.XPReason
	RefType string
	RefID   uint
}

// applyAward composes the grant into tx. Nil is a no-op so callers without
// an XP side effect can share the same method.
func applyAward(tx *gorm.DB, award *XPAward) error {
	if award == nil {
		return nil
	}
	return AwardXPTx(tx, award.UserID, award.Amount, award.Reason, award.RefType, award.RefID)
}

// settleAward drops cached user state once the award's transaction has
// committed.
func settleAward(ctx context.Context, award *XPAward) {
	if award != nil {
		cache.InvalidateUser(ctx, award.UserID)
	}
}

// AwardXPTx performs the XP increment and ledger insert inside an existing
// transaction, so callers can compose it with other writes.
func AwardXPTx(tx *gorm.DB, userID uint, amount int, reason models.XPReason, refType string, refID uint) error {
	res := tx.Model(&models.User{}).
		Where("id = ?", userID).
		UpdateColumn("xp", gorm.Expr("xp + ?", amount))
	if res.Error != nil {
		return models.NewInternalError(res.Error)
	}
	if res.RowsAffected == 0 {
		return models.NewNotFoundError("User", userID)
	}

	event := models.XPEvent{
		UserID:  userID,
		Amount:  amount,
		Reason:  reason,
		RefType: refType,
		RefID:   refID,
	}
	if err := tx.Create(&event).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}
