package repositories

import (
	"context"
	"errors"
	"log"

	"onboard/internal/models"
	"onboard/internal/repositories/cache"

	"gorm.io/gorm"
)

type userRepository struct {
	db    *gorm.DB
	cache *cache.CacheService
}

// NewUserRepository creates a new instance of UserRepository
func NewUserRepository(db *gorm.DB, cache *cache.CacheService) UserRepository {
	return &userRepository{
		db:    db,
		cache: cache,
	}
}

func (r *userRepository) Create(ctx context.Context, user *models.User) error {
	result := r.db.WithContext(ctx).Create(user)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return ErrUserExists
		}
		return ErrDatabaseOperation
	}
	return nil
}

func (r *userRepository) GetByUserID(ctx context.Context, userID string) (*models.User, error) {
	// Try cache first
	if user, err := r.cache.GetUser(ctx, userID); err == nil {
		return user, nil
	} else if err != cache.ErrCacheMiss {
		log.Printf("cache error for user %s: %v", userID, err)
	}

	var user models.User
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, ErrDatabaseOperation
	}

	if err := r.cache.CacheUser(ctx, &user); err != nil {
		log.Printf("failed to cache user %s: %v", userID, err)
	}

	return &user, nil
}

func (r *userRepository) UpdateAtStage(ctx context.Context, userID string, statusCode int, updates map[string]interface{}) error {
	result := r.db.WithContext(ctx).Model(&models.User{}).
		Where("user_id = ? AND status_code = ?", userID, statusCode).
		Updates(updates)
	if result.Error != nil {
		return ErrDatabaseOperation
	}
	// Zero rows matched is not success: the record is gone or a
	// concurrent call already advanced it past this stage.
	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}

	if err := r.cache.InvalidateUser(ctx, userID); err != nil {
		log.Printf("failed to invalidate cache for user %s: %v", userID, err)
	}

	return nil
}

func (r *userRepository) List(ctx context.Context) ([]*models.User, error) {
	var users []*models.User
	if err := r.db.WithContext(ctx).Order("created_at").Find(&users).Error; err != nil {
		return nil, ErrDatabaseOperation
	}
	return users, nil
}
