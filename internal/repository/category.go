package repository

import (
	"context"
	"errors"

	"forkful/internal/cache"
	"forkful/internal/models"

	"gorm.io/gorm"
)

// CategoryRepository defines persistence operations for categories.
type CategoryRepository interface {
	List(ctx context.Context) ([]models.Category, error)
	GetByID(ctx context.Context, id uint) (*models.Category, error)
	Create(ctx context.Context, category *models.Category) error
	Update(ctx context.Context, category *models.Category) error
	Delete(ctx context.Context, id uint) error
}

type categoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository returns a new CategoryRepository implementation.
func NewCategoryRepository(db *gorm.DB) CategoryRepository {
	return &categoryRepository{db: db}
}

func (r *categoryRepository) List(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category

	err := cache.Aside(ctx, cache.CategoriesKey, &categories, cache.CategoriesTTL, func() error {
		if err := r.db.WithContext(ctx).Order("categories.id ASC").Find(&categories).Error; err != nil {
			return models.NewInternalError(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *categoryRepository) GetByID(ctx context.Context, id uint) (*models.Category, error) {
	var category models.Category
	if err := r.db.WithContext(ctx).First(&category, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Category", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &category, nil
}

func (r *categoryRepository) Create(ctx context.Context, category *models.Category) error {
	if err := r.db.WithContext(ctx).Create(category).Error; err != nil {
		if isUniqueConstraintError(err) {
			return models.NewConflictError("Category name already exists")
		}
		return models.NewInternalError(err)
	}
	cache.InvalidateCategories(ctx)
	return nil
}

func (r *categoryRepository) Update(ctx context.Context, category *models.Category) error {
	if err := r.db.WithContext(ctx).Save(category).Error; err != nil {
		if isUniqueConstraintError(err) {
			return models.NewConflictError("Category name already exists")
		}
		return models.NewInternalError(err)
	}
	cache.InvalidateCategories(ctx)
	return nil
}

// Delete rejects removal while restaurants still reference the category.
func (r *categoryRepository) Delete(ctx context.Context, id uint) error {
	var referenced int64
	if err := r.db.WithContext(ctx).
		Model(&models.Restaurant{}).
		Where("category_id = ?", id).
		Count(&referenced).Error; err != nil {
		return models.NewInternalError(err)
	}
	if referenced > 0 {
		return models.NewConflictError("Category still has restaurants")
	}

	res := r.db.WithContext(ctx).Delete(&models.Category{}, id)
	if res.Error != nil {
		return models.NewInternalError(res.Error)
	}
	if res.RowsAffected == 0 {
		return models.NewNotFoundError("Category", id)
	}
	cache.InvalidateCategories(ctx)
	return nil
}
