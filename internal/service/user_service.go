package service

import (
	"context"
	"strings"

	"forkful/internal/models"
	"forkful/internal/repository"
)

// UserService provides user profile and ranking business logic.
type UserService struct {
	userRepo repository.UserRepository
}

// NewUserService returns a new UserService.
func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// CommentedRestaurant is the profile summary of a restaurant the user
// commented on.
type CommentedRestaurant struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Image string `json:"image"`
}

// Profile is the public profile view model.
type Profile struct {
	ID                   uint                  `json:"id"`
	Name                 string                `json:"name"`
	Email                string                `json:"email"`
	Image                string                `json:"image"`
	IsAdmin              bool                  `json:"is_admin"`
	CommentedRestaurants []CommentedRestaurant `json:"commented_restaurants"`
}

// GetProfile returns the user's profile with the distinct restaurants they
// commented on.
func (s *UserService) GetProfile(ctx context.Context, id uint) (*Profile, error) {
	user, err := s.userRepo.GetByIDWithComments(ctx, id)
	if err != nil {
		return nil, err
	}

	seen := make(map[uint]bool)
	commented := []CommentedRestaurant{}
	for _, comment := range user.Comments {
		if comment.Restaurant.ID == 0 || seen[comment.Restaurant.ID] {
			continue
		}
		seen[comment.Restaurant.ID] = true
		commented = append(commented, CommentedRestaurant{
			ID:    comment.Restaurant.ID,
			Name:  comment.Restaurant.Name,
			Image: comment.Restaurant.Image,
		})
	}

	return &Profile{
		ID:                   user.ID,
		Name:                 user.Name,
		Email:                user.Email,
		Image:                user.Image,
		IsAdmin:              user.IsAdmin,
		CommentedRestaurants: commented,
	}, nil
}

// UpdateProfileInput carries a profile edit request.
type UpdateProfileInput struct {
	UserID uint
	Name   string
	Image  string
}

// UpdateProfile updates the user's display name and optionally the avatar
// image. The update is a single-row write.
func (s *UserService) UpdateProfile(ctx context.Context, in UpdateProfileInput) (*models.User, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, models.NewValidationError("Name is required")
	}

	user, err := s.userRepo.GetByID(ctx, in.UserID)
	if err != nil {
		return nil, err
	}

	user.Name = name
	if in.Image != "" {
		user.Image = in.Image
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// TopUsers returns at most ten users ranked by follower count, ties broken
// by ascending ID.
func (s *UserService) TopUsers(ctx context.Context, viewerID uint) ([]models.User, error) {
	return s.userRepo.ListRanked(ctx, viewerID, topLimit)
}

// ListUsers returns users for the admin surface.
func (s *UserService) ListUsers(ctx context.Context, limit, offset int) ([]models.User, error) {
	return s.userRepo.List(ctx, limit, offset)
}
