package repository

import (
	"context"

	"forkful/internal/cache"
	"forkful/internal/models"

	"gorm.io/gorm"
)

// FavoriteRepository manages the user->restaurant favorite membership.
// Add is a single conditional insert: the composite unique index turns a
// concurrent duplicate into a ConflictError instead of a silent double row.
type FavoriteRepository interface {
	Add(ctx context.Context, userID, restaurantID uint) error
	Remove(ctx context.Context, userID, restaurantID uint) error
}

// LikeRepository manages the user->restaurant like membership with the same
// contract as FavoriteRepository.
type LikeRepository interface {
	Add(ctx context.Context, userID, restaurantID uint) error
	Remove(ctx context.Context, userID, restaurantID uint) error
}

// FollowshipRepository manages the directed follower->following membership
// between users.
type FollowshipRepository interface {
	Add(ctx context.Context, followerID, followingID uint) error
	Remove(ctx context.Context, followerID, followingID uint) error
}

type favoriteRepository struct {
	db *gorm.DB
}

// NewFavoriteRepository returns a new FavoriteRepository implementation.
func NewFavoriteRepository(db *gorm.DB) FavoriteRepository {
	return &favoriteRepository{db: db}
}

func (r *favoriteRepository) Add(ctx context.Context, userID, restaurantID uint) error {
	fav := models.Favorite{UserID: userID, RestaurantID: restaurantID}
	if err := r.db.WithContext(ctx).Create(&fav).Error; err != nil {
		if isUniqueConstraintError(err) {
			return models.NewConflictError("Restaurant already favorited")
		}
		return models.NewInternalError(err)
	}
	// Favorites drive the top ranking and the cached counts.
	cache.InvalidateRestaurant(ctx, restaurantID)
	return nil
}

func (r *favoriteRepository) Remove(ctx context.Context, userID, restaurantID uint) error {
	res := r.db.WithContext(ctx).
		Where("user_id = ? AND restaurant_id = ?", userID, restaurantID).
		Delete(&models.Favorite{})
	if res.Error != nil {
		return models.NewInternalError(res.Error)
	}
	if res.RowsAffected == 0 {
		return models.NewNotFoundError("Favorite", restaurantID)
	}
	cache.InvalidateRestaurant(ctx, restaurantID)
	return nil
}

type likeRepository struct {
	db *gorm.DB
}

// NewLikeRepository returns a new LikeRepository implementation.
func NewLikeRepository(db *gorm.DB) LikeRepository {
	return &likeRepository{db: db}
}

func (r *likeRepository) Add(ctx context.Context, userID, restaurantID uint) error {
	like := models.Like{UserID: userID, RestaurantID: restaurantID}
	if err := r.db.WithContext(ctx).Create(&like).Error; err != nil {
		if isUniqueConstraintError(err) {
			return models.NewConflictError("Restaurant already liked")
		}
		return models.NewInternalError(err)
	}
	return nil
}

func (r *likeRepository) Remove(ctx context.Context, userID, restaurantID uint) error {
	res := r.db.WithContext(ctx).
		Where("user_id = ? AND restaurant_id = ?", userID, restaurantID).
		Delete(&models.Like{})
	if res.Error != nil {
		return models.NewInternalError(res.Error)
	}
	if res.RowsAffected == 0 {
		return models.NewNotFoundError("Like", restaurantID)
	}
	return nil
}

type followshipRepository struct {
	db *gorm.DB
}

// NewFollowshipRepository returns a new FollowshipRepository implementation.
func NewFollowshipRepository(db *gorm.DB) FollowshipRepository {
	return &followshipRepository{db: db}
}

func (r *followshipRepository) Add(ctx context.Context, followerID, followingID uint) error {
	f := models.Followship{FollowerID: followerID, FollowingID: followingID}
	if err := r.db.WithContext(ctx).Create(&f).Error; err != nil {
		if isUniqueConstraintError(err) {
			return models.NewConflictError("Already following this user")
		}
		return models.NewInternalError(err)
	}
	return nil
}

func (r *followshipRepository) Remove(ctx context.Context, followerID, followingID uint) error {
	res := r.db.WithContext(ctx).
		Where("follower_id = ? AND following_id = ?", followerID, followingID).
		Delete(&models.Followship{})
	if res.Error != nil {
		return models.NewInternalError(res.Error)
	}
	if res.RowsAffected == 0 {
		return models.NewNotFoundError("Followship", followingID)
	}
	return nil
}
