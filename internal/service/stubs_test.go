package service

import (
	"context"

	"forkful/internal/models"
	"forkful/internal/repository"
)

type restaurantRepoStub struct {
	listPageFn            func(context.Context, repository.ListQuery) ([]models.Restaurant, int64, error)
	getByIDFn             func(context.Context, uint, uint) (*models.Restaurant, error)
	getWithCommentsFn     func(context.Context, uint, uint) (*models.Restaurant, error)
	incrementViewCountsFn func(context.Context, uint) error
	listRecentFn          func(context.Context, int) ([]models.Restaurant, error)
	listTopFavoritedFn    func(context.Context, uint, int) ([]models.Restaurant, error)
	listAllFn             func(context.Context) ([]models.Restaurant, error)
	createFn              func(context.Context, *models.Restaurant) error
	updateFn              func(context.Context, *models.Restaurant) error
	deleteCascadeFn       func(context.Context, uint) (*models.Restaurant, error)
}

func (s *restaurantRepoStub) ListPage(ctx context.Context, q repository.ListQuery) ([]models.Restaurant, int64, error) {
	return s.listPageFn(ctx, q)
}
func (s *restaurantRepoStub) GetByID(ctx context.Context, id, viewerID uint) (*models.Restaurant, error) {
	return s.getByIDFn(ctx, id, viewerID)
}
func (s *restaurantRepoStub) GetWithComments(ctx context.Context, id, viewerID uint) (*models.Restaurant, error) {
	return s.getWithCommentsFn(ctx, id, viewerID)
}
func (s *restaurantRepoStub) IncrementViewCounts(ctx context.Context, id uint) error {
	return s.incrementViewCountsFn(ctx, id)
}
func (s *restaurantRepoStub) ListRecent(ctx context.Context, limit int) ([]models.Restaurant, error) {
	return s.listRecentFn(ctx, limit)
}
func (s *restaurantRepoStub) ListTopFavorited(ctx context.Context, viewerID uint, limit int) ([]models.Restaurant, error) {
	return s.listTopFavoritedFn(ctx, viewerID, limit)
}
func (s *restaurantRepoStub) ListAll(ctx context.Context) ([]models.Restaurant, error) {
	return s.listAllFn(ctx)
}
func (s *restaurantRepoStub) Create(ctx context.Context, restaurant *models.Restaurant) error {
	return s.createFn(ctx, restaurant)
}
func (s *restaurantRepoStub) Update(ctx context.Context, restaurant *models.Restaurant) error {
	return s.updateFn(ctx, restaurant)
}
func (s *restaurantRepoStub) DeleteCascade(ctx context.Context, id uint) (*models.Restaurant, error) {
	return s.deleteCascadeFn(ctx, id)
}

func noopRestaurantRepo() *restaurantRepoStub {
	return &restaurantRepoStub{
		listPageFn: func(context.Context, repository.ListQuery) ([]models.Restaurant, int64, error) {
			return nil, 0, nil
		},
		getByIDFn: func(_ context.Context, id, _ uint) (*models.Restaurant, error) {
			return &models.Restaurant{ID: id}, nil
		},
		getWithCommentsFn: func(_ context.Context, id, _ uint) (*models.Restaurant, error) {
			return &models.Restaurant{ID: id}, nil
		},
		incrementViewCountsFn: func(context.Context, uint) error { return nil },
		listRecentFn:          func(context.Context, int) ([]models.Restaurant, error) { return nil, nil },
		listTopFavoritedFn:    func(context.Context, uint, int) ([]models.Restaurant, error) { return nil, nil },
		listAllFn:             func(context.Context) ([]models.Restaurant, error) { return nil, nil },
		createFn:              func(context.Context, *models.Restaurant) error { return nil },
		updateFn:              func(context.Context, *models.Restaurant) error { return nil },
		deleteCascadeFn: func(_ context.Context, id uint) (*models.Restaurant, error) {
			return &models.Restaurant{ID: id}, nil
		},
	}
}

type categoryRepoStub struct {
	listFn    func(context.Context) ([]models.Category, error)
	getByIDFn func(context.Context, uint) (*models.Category, error)
	createFn  func(context.Context, *models.Category) error
	updateFn  func(context.Context, *models.Category) error
	deleteFn  func(context.Context, uint) error
}

func (s *categoryRepoStub) List(ctx context.Context) ([]models.Category, error) {
	return s.listFn(ctx)
}
func (s *categoryRepoStub) GetByID(ctx context.Context, id uint) (*models.Category, error) {
	return s.getByIDFn(ctx, id)
}
func (s *categoryRepoStub) Create(ctx context.Context, category *models.Category) error {
	return s.createFn(ctx, category)
}
func (s *categoryRepoStub) Update(ctx context.Context, category *models.Category) error {
	return s.updateFn(ctx, category)
}
func (s *categoryRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}

func noopCategoryRepo() *categoryRepoStub {
	return &categoryRepoStub{
		listFn: func(context.Context) ([]models.Category, error) { return nil, nil },
		getByIDFn: func(_ context.Context, id uint) (*models.Category, error) {
			return &models.Category{ID: id}, nil
		},
		createFn: func(context.Context, *models.Category) error { return nil },
		updateFn: func(context.Context, *models.Category) error { return nil },
		deleteFn: func(context.Context, uint) error { return nil },
	}
}

type commentRepoStub struct {
	createFn           func(context.Context, *models.Comment) error
	getByIDFn          func(context.Context, uint) (*models.Comment, error)
	listByRestaurantFn func(context.Context, uint) ([]*models.Comment, error)
	listRecentFn       func(context.Context, int) ([]*models.Comment, error)
	deleteFn           func(context.Context, uint) error
}

func (s *commentRepoStub) Create(ctx context.Context, comment *models.Comment) error {
	return s.createFn(ctx, comment)
}
func (s *commentRepoStub) GetByID(ctx context.Context, id uint) (*models.Comment, error) {
	return s.getByIDFn(ctx, id)
}
func (s *commentRepoStub) ListByRestaurant(ctx context.Context, restaurantID uint) ([]*models.Comment, error) {
	return s.listByRestaurantFn(ctx, restaurantID)
}
func (s *commentRepoStub) ListRecent(ctx context.Context, limit int) ([]*models.Comment, error) {
	return s.listRecentFn(ctx, limit)
}
func (s *commentRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}

func noopCommentRepo() *commentRepoStub {
	return &commentRepoStub{
		createFn: func(context.Context, *models.Comment) error { return nil },
		getByIDFn: func(_ context.Context, id uint) (*models.Comment, error) {
			return &models.Comment{ID: id}, nil
		},
		listByRestaurantFn: func(context.Context, uint) ([]*models.Comment, error) { return nil, nil },
		listRecentFn:       func(context.Context, int) ([]*models.Comment, error) { return nil, nil },
		deleteFn:           func(context.Context, uint) error { return nil },
	}
}

type userRepoStub struct {
	getByIDFn             func(context.Context, uint) (*models.User, error)
	getByIDWithCommentsFn func(context.Context, uint) (*models.User, error)
	getByEmailFn          func(context.Context, string) (*models.User, error)
	createFn              func(context.Context, *models.User) error
	updateFn              func(context.Context, *models.User) error
	setAdminFn            func(context.Context, uint, bool) error
	listFn                func(context.Context, int, int) ([]models.User, error)
	listRankedFn          func(context.Context, uint, int) ([]models.User, error)
}

func (s *userRepoStub) GetByID(ctx context.Context, id uint) (*models.User, error) {
	return s.getByIDFn(ctx, id)
}
func (s *userRepoStub) GetByIDWithComments(ctx context.Context, id uint) (*models.User, error) {
	return s.getByIDWithCommentsFn(ctx, id)
}
func (s *userRepoStub) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.getByEmailFn(ctx, email)
}
func (s *userRepoStub) Create(ctx context.Context, user *models.User) error {
	return s.createFn(ctx, user)
}
func (s *userRepoStub) Update(ctx context.Context, user *models.User) error {
	return s.updateFn(ctx, user)
}
func (s *userRepoStub) SetAdmin(ctx context.Context, id uint, isAdmin bool) error {
	return s.setAdminFn(ctx, id, isAdmin)
}
func (s *userRepoStub) List(ctx context.Context, limit, offset int) ([]models.User, error) {
	return s.listFn(ctx, limit, offset)
}
func (s *userRepoStub) ListRanked(ctx context.Context, viewerID uint, limit int) ([]models.User, error) {
	return s.listRankedFn(ctx, viewerID, limit)
}

func noopUserRepo() *userRepoStub {
	return &userRepoStub{
		getByIDFn: func(_ context.Context, id uint) (*models.User, error) {
			return &models.User{ID: id}, nil
		},
		getByIDWithCommentsFn: func(_ context.Context, id uint) (*models.User, error) {
			return &models.User{ID: id}, nil
		},
		getByEmailFn: func(context.Context, string) (*models.User, error) { return nil, nil },
		createFn:     func(context.Context, *models.User) error { return nil },
		updateFn:     func(context.Context, *models.User) error { return nil },
		setAdminFn:   func(context.Context, uint, bool) error { return nil },
		listFn:       func(context.Context, int, int) ([]models.User, error) { return nil, nil },
		listRankedFn: func(context.Context, uint, int) ([]models.User, error) { return nil, nil },
	}
}

type pairRepoStub struct {
	addFn    func(context.Context, uint, uint) error
	removeFn func(context.Context, uint, uint) error
}

func (s *pairRepoStub) Add(ctx context.Context, a, b uint) error {
	return s.addFn(ctx, a, b)
}
func (s *pairRepoStub) Remove(ctx context.Context, a, b uint) error {
	return s.removeFn(ctx, a, b)
}

func noopPairRepo() *pairRepoStub {
	return &pairRepoStub{
		addFn:    func(context.Context, uint, uint) error { return nil },
		removeFn: func(context.Context, uint, uint) error { return nil },
	}
}
