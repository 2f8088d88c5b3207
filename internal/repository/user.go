package repository

import (
	"context"
	"errors"
	"time"

	"forkful/internal/cache"
	"forkful/internal/models"

	"gorm.io/gorm"
)

// UserRepository defines persistence operations for users.
type UserRepository interface {
	GetByID(ctx context.Context, id uint) (*models.User, error)
	GetByIDWithComments(ctx context.Context, id uint) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	Create(ctx context.Context, user *models.User) error
	Update(ctx context.Context, user *models.User) error
	SetAdmin(ctx context.Context, id uint, isAdmin bool) error
	List(ctx context.Context, limit, offset int) ([]models.User, error)
	ListRanked(ctx context.Context, viewerID uint, limit int) ([]models.User, error)
}

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository returns a new UserRepository implementation.
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

// cachedUser mirrors the persisted user columns. The API model hides the
// password hash behind json:"-", so marshaling models.User into the cache
// would drop the hash and a later Save would write it back empty.
type cachedUser struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Password  string    `json:"password"`
	Image     string    `json:"image"`
	IsAdmin   bool      `json:"is_admin"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (c *cachedUser) toModel() *models.User {
	return &models.User{
		ID:        c.ID,
		Name:      c.Name,
		Email:     c.Email,
		Password:  c.Password,
		Image:     c.Image,
		IsAdmin:   c.IsAdmin,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func (r *userRepository) GetByID(ctx context.Context, id uint) (*models.User, error) {
	var cached cachedUser
	key := cache.UserKey(id)

	err := cache.Aside(ctx, key, &cached, cache.UserTTL, func() error {
		var user models.User
		if err := r.db.WithContext(ctx).First(&user, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.NewNotFoundError("User", id)
			}
			return models.NewInternalError(err)
		}
		cached = cachedUser{
			ID:        user.ID,
			Name:      user.Name,
			Email:     user.Email,
			Password:  user.Password,
			Image:     user.Image,
			IsAdmin:   user.IsAdmin,
			CreatedAt: user.CreatedAt,
			UpdatedAt: user.UpdatedAt,
		}
		return nil
	})

	if err != nil {
		return nil, err
	}
	return cached.toModel(), nil
}

func (r *userRepository) GetByIDWithComments(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).
		Preload("Comments", func(db *gorm.DB) *gorm.DB {
			return db.Order("comments.id DESC")
		}).
		Preload("Comments.Restaurant").
		First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("User", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &user, nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
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
			return models.NewConflictError("Email already registered")
		}
		return models.NewInternalError(err)
	}
	return nil
}

func (r *userRepository) Update(ctx context.Context, user *models.User) error {
	if err := r.db.WithContext(ctx).Save(user).Error; err != nil {
		return models.NewInternalError(err)
	}
	cache.InvalidateUser(ctx, user.ID)
	return nil
}

func (r *userRepository) SetAdmin(ctx context.Context, id uint, isAdmin bool) error {
	res := r.db.WithContext(ctx).
		Model(&models.User{}).
		Where("id = ?", id).
		Update("is_admin", isAdmin)
	if res.Error != nil {
		return models.NewInternalError(res.Error)
	}
	if res.RowsAffected == 0 {
		return models.NewNotFoundError("User", id)
	}
	cache.InvalidateUser(ctx, id)
	return nil
}

func (r *userRepository) List(ctx context.Context, limit, offset int) ([]models.User, error) {
	var users []models.User
	if err := r.db.WithContext(ctx).
		Order("users.id ASC").
		Limit(limit).
		Offset(offset).
		Find(&users).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return users, nil
}

// ListRanked returns users ordered by follower count descending, bounded to
// limit. Ties break on ascending ID so the ranking is deterministic.
func (r *userRepository) ListRanked(ctx context.Context, viewerID uint, limit int) ([]models.User, error) {
	var users []models.User

	selectQuery := "users.*, " +
		"(SELECT COUNT(*) FROM followships WHERE followships.following_id = users.id) AS follower_count, "
	args := []any{}
	if viewerID == 0 {
		selectQuery += "FALSE AS is_followed"
	} else {
		selectQuery += "EXISTS(SELECT 1 FROM followships WHERE followships.following_id = users.id AND followships.follower_id = ?) AS is_followed"
		args = append(args, viewerID)
	}

	if err := r.db.WithContext(ctx).
		Model(&models.User{}).
		Select(selectQuery, args...).
		Order("follower_count DESC, users.id ASC").
		Limit(limit).
		Find(&users).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return users, nil
}
