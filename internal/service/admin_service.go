package service

import (
	"context"
	"strings"

	"forkful/internal/models"
	"forkful/internal/repository"
)

// AdminService provides catalog management for admins. Authorization is
// enforced at the route level, not here.
type AdminService struct {
	restaurantRepo repository.RestaurantRepository
	categoryRepo   repository.CategoryRepository
	userRepo       repository.UserRepository
}

// NewAdminService returns a new AdminService.
func NewAdminService(
	restaurantRepo repository.RestaurantRepository,
	categoryRepo repository.CategoryRepository,
	userRepo repository.UserRepository,
) *AdminService {
	return &AdminService{
		restaurantRepo: restaurantRepo,
		categoryRepo:   categoryRepo,
		userRepo:       userRepo,
	}
}

// RestaurantInput carries the fields an admin may set on a restaurant.
type RestaurantInput struct {
	Name        string
	Description string
	Image       string
	CategoryID  uint
}

func (s *AdminService) validateRestaurantInput(ctx context.Context, in RestaurantInput) error {
	if strings.TrimSpace(in.Name) == "" {
		return models.NewValidationError("Restaurant name is required")
	}
	if in.CategoryID == 0 {
		return models.NewValidationError("Category is required")
	}
	if _, err := s.categoryRepo.GetByID(ctx, in.CategoryID); err != nil {
		return err
	}
	return nil
}

// ListRestaurants returns every restaurant with its category, for the admin
// catalog view.
func (s *AdminService) ListRestaurants(ctx context.Context) ([]models.Restaurant, error) {
	return s.restaurantRepo.ListAll(ctx)
}

// GetRestaurant returns a single restaurant without touching its view count.
func (s *AdminService) GetRestaurant(ctx context.Context, id uint) (*models.Restaurant, error) {
	return s.restaurantRepo.GetByID(ctx, id, 0)
}

// CreateRestaurant adds a restaurant to the catalog.
func (s *AdminService) CreateRestaurant(ctx context.Context, in RestaurantInput) (*models.Restaurant, error) {
	if err := s.validateRestaurantInput(ctx, in); err != nil {
		return nil, err
	}

	restaurant := &models.Restaurant{
		Name:        strings.TrimSpace(in.Name),
		Description: in.Description,
		Image:       in.Image,
		CategoryID:  in.CategoryID,
	}
	if err := s.restaurantRepo.Create(ctx, restaurant); err != nil {
		return nil, err
	}
	return s.restaurantRepo.GetByID(ctx, restaurant.ID, 0)
}

// UpdateRestaurant replaces a restaurant's editable fields.
func (s *AdminService) UpdateRestaurant(ctx context.Context, id uint, in RestaurantInput) (*models.Restaurant, error) {
	if err := s.validateRestaurantInput(ctx, in); err != nil {
		return nil, err
	}

	restaurant, err := s.restaurantRepo.GetByID(ctx, id, 0)
	if err != nil {
		return nil, err
	}

	restaurant.Name = strings.TrimSpace(in.Name)
	restaurant.Description = in.Description
	restaurant.CategoryID = in.CategoryID
	if in.Image != "" {
		restaurant.Image = in.Image
	}
	if err := s.restaurantRepo.Update(ctx, restaurant); err != nil {
		return nil, err
	}
	return s.restaurantRepo.GetByID(ctx, id, 0)
}

// DeleteRestaurant removes a restaurant together with its comments,
// favorites, and likes. The deleted record is returned as it was before
// removal.
func (s *AdminService) DeleteRestaurant(ctx context.Context, id uint) (*models.Restaurant, error) {
	return s.restaurantRepo.DeleteCascade(ctx, id)
}

// ListCategories returns all categories.
func (s *AdminService) ListCategories(ctx context.Context) ([]models.Category, error) {
	return s.categoryRepo.List(ctx)
}

// CreateCategory adds a category. Names are unique.
func (s *AdminService) CreateCategory(ctx context.Context, name string) (*models.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, models.NewValidationError("Category name is required")
	}

	category := &models.Category{Name: name}
	if err := s.categoryRepo.Create(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

// UpdateCategory renames a category.
func (s *AdminService) UpdateCategory(ctx context.Context, id uint, name string) (*models.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, models.NewValidationError("Category name is required")
	}

	category, err := s.categoryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	category.Name = name
	if err := s.categoryRepo.Update(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

// DeleteCategory removes a category. Fails while restaurants still
// reference it.
func (s *AdminService) DeleteCategory(ctx context.Context, id uint) error {
	return s.categoryRepo.Delete(ctx, id)
}

// SetUserAdmin grants or revokes a user's admin flag.
func (s *AdminService) SetUserAdmin(ctx context.Context, id uint, isAdmin bool) (*models.User, error) {
	if err := s.userRepo.SetAdmin(ctx, id, isAdmin); err != nil {
		return nil, err
	}
	return s.userRepo.GetByID(ctx, id)
}
