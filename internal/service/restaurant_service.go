package service

import (
	"context"

	"forkful/internal/middleware"
	"forkful/internal/models"
	"forkful/internal/repository"
)

const (
	// DefaultPageSize is the restaurant listing page size when the client
	// does not pass a limit.
	DefaultPageSize = 9

	// MaxPageSize caps the restaurant listing page size regardless of the
	// limit the client asks for.
	MaxPageSize = 100

	// descriptionPreviewRunes is the listing description truncation length.
	descriptionPreviewRunes = 50

	// feedLimit bounds both feed lists (restaurants and comments).
	feedLimit = 10

	// topLimit bounds both rankings. The top-users ranking shares it with
	// top-restaurants on purpose: an unbounded user ranking grows with the
	// user table.
	topLimit = 10
)

// RestaurantService provides restaurant browsing business logic.
type RestaurantService struct {
	restaurantRepo repository.RestaurantRepository
	categoryRepo   repository.CategoryRepository
	commentRepo    repository.CommentRepository
}

// NewRestaurantService returns a new RestaurantService.
func NewRestaurantService(
	restaurantRepo repository.RestaurantRepository,
	categoryRepo repository.CategoryRepository,
	commentRepo repository.CommentRepository,
) *RestaurantService {
	return &RestaurantService{
		restaurantRepo: restaurantRepo,
		categoryRepo:   categoryRepo,
		commentRepo:    commentRepo,
	}
}

// ListInput describes a restaurant listing request.
type ListInput struct {
	CategoryID uint
	Page       int
	Limit      int
	ViewerID   uint
}

// RestaurantPage is the listing view model: one page of restaurants, the
// full category list and pagination metadata.
type RestaurantPage struct {
	Restaurants []models.Restaurant `json:"restaurants"`
	Categories  []models.Category   `json:"categories"`
	CategoryID  uint                `json:"category_id"`
	Pagination  Pagination          `json:"pagination"`
}

// ListRestaurants returns a page of restaurants with descriptions truncated
// for preview and viewer favorite/like booleans filled in.
func (s *RestaurantService) ListRestaurants(ctx context.Context, in ListInput) (*RestaurantPage, error) {
	if in.Page < 1 {
		in.Page = 1
	}
	if in.Limit <= 0 {
		in.Limit = DefaultPageSize
	}
	if in.Limit > MaxPageSize {
		in.Limit = MaxPageSize
	}

	restaurants, total, err := s.restaurantRepo.ListPage(ctx, repository.ListQuery{
		CategoryID: in.CategoryID,
		Limit:      in.Limit,
		Offset:     Offset(in.Limit, in.Page),
		ViewerID:   in.ViewerID,
	})
	if err != nil {
		return nil, err
	}

	categories, err := s.categoryRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	for i := range restaurants {
		restaurants[i].Description = truncateRunes(restaurants[i].Description, descriptionPreviewRunes)
	}

	return &RestaurantPage{
		Restaurants: restaurants,
		Categories:  categories,
		CategoryID:  in.CategoryID,
		Pagination:  BuildPagination(in.Limit, in.Page, total),
	}, nil
}

// GetRestaurant returns the full detail of one restaurant and records the
// view. Every successful fetch increments the view counter by exactly one.
func (s *RestaurantService) GetRestaurant(ctx context.Context, id, viewerID uint) (*models.Restaurant, error) {
	restaurant, err := s.restaurantRepo.GetWithComments(ctx, id, viewerID)
	if err != nil {
		return nil, err
	}

	if err := s.restaurantRepo.IncrementViewCounts(ctx, id); err != nil {
		return nil, err
	}
	middleware.ViewCountIncrements.Inc()

	// Reflect the write in the response without a second fetch.
	restaurant.ViewCounts++

	return restaurant, nil
}

// GetDashboard returns a restaurant with its category and aggregate counts.
// Unlike GetRestaurant it does not record a view.
func (s *RestaurantService) GetDashboard(ctx context.Context, id uint) (*models.Restaurant, error) {
	return s.restaurantRepo.GetByID(ctx, id, 0)
}

// Feed is the most-recent slice of activity: newest restaurants and newest
// comments, with no ordering guarantee across the two lists.
type Feed struct {
	Restaurants []models.Restaurant `json:"restaurants"`
	Comments    []*models.Comment   `json:"comments"`
}

// GetFeed fetches the two feed lists independently.
func (s *RestaurantService) GetFeed(ctx context.Context) (*Feed, error) {
	restaurants, err := s.restaurantRepo.ListRecent(ctx, feedLimit)
	if err != nil {
		return nil, err
	}
	comments, err := s.commentRepo.ListRecent(ctx, feedLimit)
	if err != nil {
		return nil, err
	}
	return &Feed{Restaurants: restaurants, Comments: comments}, nil
}

// TopRestaurants returns at most ten restaurants ranked by favorite count,
// ties broken by ascending ID.
func (s *RestaurantService) TopRestaurants(ctx context.Context, viewerID uint) ([]models.Restaurant, error) {
	return s.restaurantRepo.ListTopFavorited(ctx, viewerID, topLimit)
}

// truncateRunes shortens s to at most n runes.
func truncateRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
