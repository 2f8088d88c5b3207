package service

import (
	"context"

	"forkful/internal/repository"
)

// FavoriteService provides the favorite and like membership toggles. Both
// relations share one contract: adding an existing relation is a conflict,
// removing a missing one is not found.
type FavoriteService struct {
	favoriteRepo   repository.FavoriteRepository
	likeRepo       repository.LikeRepository
	restaurantRepo repository.RestaurantRepository
}

// NewFavoriteService returns a new FavoriteService.
func NewFavoriteService(
	favoriteRepo repository.FavoriteRepository,
	likeRepo repository.LikeRepository,
	restaurantRepo repository.RestaurantRepository,
) *FavoriteService {
	return &FavoriteService{
		favoriteRepo:   favoriteRepo,
		likeRepo:       likeRepo,
		restaurantRepo: restaurantRepo,
	}
}

// Favorite adds the restaurant to the user's favorites. The insert itself is
// the duplicate check: the unique index decides under concurrency.
func (s *FavoriteService) Favorite(ctx context.Context, userID, restaurantID uint) error {
	if _, err := s.restaurantRepo.GetByID(ctx, restaurantID, 0); err != nil {
		return err
	}
	return s.favoriteRepo.Add(ctx, userID, restaurantID)
}

// Unfavorite removes the favorite; missing rows surface as NotFoundError.
func (s *FavoriteService) Unfavorite(ctx context.Context, userID, restaurantID uint) error {
	return s.favoriteRepo.Remove(ctx, userID, restaurantID)
}

// Like adds the restaurant to the user's likes.
func (s *FavoriteService) Like(ctx context.Context, userID, restaurantID uint) error {
	if _, err := s.restaurantRepo.GetByID(ctx, restaurantID, 0); err != nil {
		return err
	}
	return s.likeRepo.Add(ctx, userID, restaurantID)
}

// Unlike removes the like; missing rows surface as NotFoundError.
func (s *FavoriteService) Unlike(ctx context.Context, userID, restaurantID uint) error {
	return s.likeRepo.Remove(ctx, userID, restaurantID)
}
