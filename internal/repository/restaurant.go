// Package repository provides data access layer implementations for the application.
package repository

import (
	"context"
	"errors"

	"forkful/internal/cache"
	"forkful/internal/models"

	"gorm.io/gorm"
)

// ListQuery describes a paginated restaurant listing request.
type ListQuery struct {
	CategoryID uint // 0 means no category filter
	Limit      int
	Offset     int
	ViewerID   uint // 0 means anonymous
}

// RestaurantRepository defines the interface for restaurant data operations
type RestaurantRepository interface {
	ListPage(ctx context.Context, q ListQuery) ([]models.Restaurant, int64, error)
	GetByID(ctx context.Context, id uint, viewerID uint) (*models.Restaurant, error)
	GetWithComments(ctx context.Context, id uint, viewerID uint) (*models.Restaurant, error)
	IncrementViewCounts(ctx context.Context, id uint) error
	ListRecent(ctx context.Context, limit int) ([]models.Restaurant, error)
	ListTopFavorited(ctx context.Context, viewerID uint, limit int) ([]models.Restaurant, error)
	ListAll(ctx context.Context) ([]models.Restaurant, error)
	Create(ctx context.Context, restaurant *models.Restaurant) error
	Update(ctx context.Context, restaurant *models.Restaurant) error
	DeleteCascade(ctx context.Context, id uint) (*models.Restaurant, error)
}

type restaurantRepository struct {
	db *gorm.DB
}

// NewRestaurantRepository creates a new restaurant repository
func NewRestaurantRepository(db *gorm.DB) RestaurantRepository {
	return &restaurantRepository{db: db}
}

// applyDetails adds subqueries computing favorited/comment counts and the
// viewer's membership booleans in a single query.
func (r *restaurantRepository) applyDetails(db *gorm.DB, viewerID uint) *gorm.DB {
	selectQuery := "restaurants.*, " +
		"(SELECT COUNT(*) FROM favorites WHERE favorites.restaurant_id = restaurants.id) AS favorited_count, " +
		"(SELECT COUNT(*) FROM comments WHERE comments.restaurant_id = restaurants.id) AS comments_count, "
	args := []any{}
	if viewerID == 0 {
		selectQuery += "FALSE AS is_favorited, FALSE AS is_liked"
	} else {
		selectQuery += "EXISTS(SELECT 1 FROM favorites WHERE favorites.restaurant_id = restaurants.id AND favorites.user_id = ?) AS is_favorited, " +
			"EXISTS(SELECT 1 FROM likes WHERE likes.restaurant_id = restaurants.id AND likes.user_id = ?) AS is_liked"
		args = append(args, viewerID, viewerID)
	}
	return db.Model(&models.Restaurant{}).Select(selectQuery, args...)
}

func (r *restaurantRepository) ListPage(ctx context.Context, q ListQuery) ([]models.Restaurant, int64, error) {
	var restaurants []models.Restaurant
	var total int64

	countQuery := r.db.WithContext(ctx).Model(&models.Restaurant{})
	base := r.applyDetails(r.db.WithContext(ctx), q.ViewerID).Preload("Category")
	if q.CategoryID != 0 {
		countQuery = countQuery.Where("category_id = ?", q.CategoryID)
		base = base.Where("category_id = ?", q.CategoryID)
	}

	if err := countQuery.Count(&total).Error; err != nil {
		return nil, 0, models.NewInternalError(err)
	}

	if err := base.
		Order("restaurants.id ASC").
		Limit(q.Limit).
		Offset(q.Offset).
		Find(&restaurants).Error; err != nil {
		return nil, 0, models.NewInternalError(err)
	}
	return restaurants, total, nil
}

func (r *restaurantRepository) GetByID(ctx context.Context, id uint, viewerID uint) (*models.Restaurant, error) {
	fetch := func(dest *models.Restaurant) error {
		if err := r.applyDetails(r.db.WithContext(ctx), viewerID).
			Preload("Category").
			First(dest, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.NewNotFoundError("Restaurant", id)
			}
			return models.NewInternalError(err)
		}
		return nil
	}

	var restaurant models.Restaurant
	if viewerID != 0 {
		// Viewer booleans are per user; only the anonymous view is cached.
		if err := fetch(&restaurant); err != nil {
			return nil, err
		}
		return &restaurant, nil
	}

	err := cache.Aside(ctx, cache.RestaurantKey(id), &restaurant, cache.RestaurantTTL, func() error {
		return fetch(&restaurant)
	})
	if err != nil {
		return nil, err
	}
	return &restaurant, nil
}

func (r *restaurantRepository) GetWithComments(ctx context.Context, id uint, viewerID uint) (*models.Restaurant, error) {
	var restaurant models.Restaurant
	if err := r.applyDetails(r.db.WithContext(ctx), viewerID).
		Preload("Category").
		Preload("Comments", func(db *gorm.DB) *gorm.DB {
			return db.Order("comments.id DESC")
		}).
		Preload("Comments.User").
		First(&restaurant, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Restaurant", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &restaurant, nil
}

// IncrementViewCounts bumps the view counter atomically. The counter only
// ever increases; concurrent detail fetches each add exactly one.
func (r *restaurantRepository) IncrementViewCounts(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).
		Model(&models.Restaurant{}).
		Where("id = ?", id).
		UpdateColumn("view_counts", gorm.Expr("view_counts + ?", 1))
	if res.Error != nil {
		return models.NewInternalError(res.Error)
	}
	if res.RowsAffected == 0 {
		return models.NewNotFoundError("Restaurant", id)
	}
	return nil
}

func (r *restaurantRepository) ListRecent(ctx context.Context, limit int) ([]models.Restaurant, error) {
	var restaurants []models.Restaurant
	err := cache.Aside(ctx, cache.FeedRestaurantsKey, &restaurants, cache.FeedTTL, func() error {
		if err := r.db.WithContext(ctx).
			Preload("Category").
			Order("restaurants.id DESC").
			Limit(limit).
			Find(&restaurants).Error; err != nil {
			return models.NewInternalError(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return restaurants, nil
}

// ListTopFavorited returns at most limit restaurants ordered by favorited
// count descending with ascending ID as the deterministic tie-break.
func (r *restaurantRepository) ListTopFavorited(ctx context.Context, viewerID uint, limit int) ([]models.Restaurant, error) {
	fetch := func(dest *[]models.Restaurant) error {
		if err := r.applyDetails(r.db.WithContext(ctx), viewerID).
			Preload("Category").
			Order("favorited_count DESC, restaurants.id ASC").
			Limit(limit).
			Find(dest).Error; err != nil {
			return models.NewInternalError(err)
		}
		return nil
	}

	var restaurants []models.Restaurant
	if viewerID != 0 {
		// Viewer booleans are per user; only the anonymous ranking is cached.
		if err := fetch(&restaurants); err != nil {
			return nil, err
		}
		return restaurants, nil
	}

	err := cache.Aside(ctx, cache.TopRestaurantsKey, &restaurants, cache.TopTTL, func() error {
		return fetch(&restaurants)
	})
	if err != nil {
		return nil, err
	}
	return restaurants, nil
}

func (r *restaurantRepository) ListAll(ctx context.Context) ([]models.Restaurant, error) {
	var restaurants []models.Restaurant
	if err := r.db.WithContext(ctx).
		Preload("Category").
		Order("restaurants.id ASC").
		Find(&restaurants).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return restaurants, nil
}

func (r *restaurantRepository) Create(ctx context.Context, restaurant *models.Restaurant) error {
	if err := r.db.WithContext(ctx).Create(restaurant).Error; err != nil {
		return models.NewInternalError(err)
	}
	cache.InvalidateRestaurant(ctx, restaurant.ID)
	return nil
}

func (r *restaurantRepository) Update(ctx context.Context, restaurant *models.Restaurant) error {
	if err := r.db.WithContext(ctx).Save(restaurant).Error; err != nil {
		return models.NewInternalError(err)
	}
	cache.InvalidateRestaurant(ctx, restaurant.ID)
	return nil
}

// DeleteCascade hard-deletes the restaurant together with its comments,
// favorites and likes in one transaction, returning the row's prior state.
func (r *restaurantRepository) DeleteCascade(ctx context.Context, id uint) (*models.Restaurant, error) {
	var restaurant models.Restaurant

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Preload("Category").First(&restaurant, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.NewNotFoundError("Restaurant", id)
			}
			return models.NewInternalError(err)
		}
		if err := tx.Where("restaurant_id = ?", id).Delete(&models.Comment{}).Error; err != nil {
			return models.NewInternalError(err)
		}
		if err := tx.Where("restaurant_id = ?", id).Delete(&models.Favorite{}).Error; err != nil {
			return models.NewInternalError(err)
		}
		if err := tx.Where("restaurant_id = ?", id).Delete(&models.Like{}).Error; err != nil {
			return models.NewInternalError(err)
		}
		if err := tx.Delete(&models.Restaurant{}, id).Error; err != nil {
			return models.NewInternalError(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	cache.InvalidateRestaurant(ctx, id)
	return &restaurant, nil
}
