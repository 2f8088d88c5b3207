package service

import (
	"context"
	"strings"

	"forkful/internal/models"
	"forkful/internal/repository"
)

// AdminChecker reports whether the given user has admin privileges.
type AdminChecker func(ctx context.Context, userID uint) (bool, error)

// CommentService provides comment business logic.
type CommentService struct {
	commentRepo    repository.CommentRepository
	restaurantRepo repository.RestaurantRepository
	isAdmin        AdminChecker
}

// NewCommentService returns a new CommentService.
func NewCommentService(
	commentRepo repository.CommentRepository,
	restaurantRepo repository.RestaurantRepository,
	isAdmin AdminChecker,
) *CommentService {
	return &CommentService{
		commentRepo:    commentRepo,
		restaurantRepo: restaurantRepo,
		isAdmin:        isAdmin,
	}
}

// CreateComment posts a comment on the restaurant. Text is required and the
// restaurant must exist.
func (s *CommentService) CreateComment(ctx context.Context, userID, restaurantID uint, text string) (*models.Comment, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, models.NewValidationError("Comment text is required")
	}

	if _, err := s.restaurantRepo.GetByID(ctx, restaurantID, 0); err != nil {
		return nil, err
	}

	comment := &models.Comment{
		Text:         text,
		UserID:       userID,
		RestaurantID: restaurantID,
	}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}

	return s.commentRepo.GetByID(ctx, comment.ID)
}

// DeleteComment hard-deletes a comment. Allowed for admins and the comment's
// author.
func (s *CommentService) DeleteComment(ctx context.Context, userID, commentID uint) error {
	comment, err := s.commentRepo.GetByID(ctx, commentID)
	if err != nil {
		return err
	}

	if comment.UserID != userID {
		admin, err := s.isAdmin(ctx, userID)
		if err != nil {
			return models.NewInternalError(err)
		}
		if !admin {
			return models.NewUnauthorizedError("You can only delete your own comments")
		}
	}

	return s.commentRepo.Delete(ctx, commentID)
}

// ListByRestaurant returns the restaurant's comments, newest first.
func (s *CommentService) ListByRestaurant(ctx context.Context, restaurantID uint) ([]*models.Comment, error) {
	if _, err := s.restaurantRepo.GetByID(ctx, restaurantID, 0); err != nil {
		return nil, err
	}
	return s.commentRepo.ListByRestaurant(ctx, restaurantID)
}
