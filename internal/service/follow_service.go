package service

import (
	"context"

	"forkful/internal/models"
	"forkful/internal/repository"
)

// FollowService provides the follower->following membership toggle.
type FollowService struct {
	followshipRepo repository.FollowshipRepository
	userRepo       repository.UserRepository
}

// NewFollowService returns a new FollowService.
func NewFollowService(
	followshipRepo repository.FollowshipRepository,
	userRepo repository.UserRepository,
) *FollowService {
	return &FollowService{
		followshipRepo: followshipRepo,
		userRepo:       userRepo,
	}
}

// Follow makes followerID follow targetID. Self-follow is rejected, a
// missing target is not found, and a duplicate follow is a conflict decided
// by the unique index.
func (s *FollowService) Follow(ctx context.Context, followerID, targetID uint) error {
	if followerID == targetID {
		return models.NewValidationError("Cannot follow yourself")
	}
	if _, err := s.userRepo.GetByID(ctx, targetID); err != nil {
		return err
	}
	return s.followshipRepo.Add(ctx, followerID, targetID)
}

// Unfollow removes the followship; a missing row surfaces as NotFoundError.
func (s *FollowService) Unfollow(ctx context.Context, followerID, targetID uint) error {
	return s.followshipRepo.Remove(ctx, followerID, targetID)
}
