package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"forkful/internal/cache"
	"forkful/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The ranking and viewer fields are query-time aliases. If AutoMigrate ever
// materializes them as real columns, ORDER BY resolves to the always-zero
// column instead of the subquery alias and the rankings silently degrade to
// id order.
func TestComputedFieldsHaveNoColumns(t *testing.T) {
	db := newTestDB(t)
	m := db.Migrator()

	for _, col := range []string{"favorited_count", "comments_count", "is_favorited", "is_liked"} {
		assert.Falsef(t, m.HasColumn(&models.Restaurant{}, col), "restaurants.%s should not exist", col)
	}
	for _, col := range []string{"follower_count", "is_followed"} {
		assert.Falsef(t, m.HasColumn(&models.User{}, col), "users.%s should not exist", col)
	}
}

func TestRestaurantRepository_ListPage(t *testing.T) {
	db := newTestDB(t)
	repo := NewRestaurantRepository(db)
	ctx := context.Background()

	chinese := seedCategory(t, db, "Chinese")
	italian := seedCategory(t, db, "Italian")
	for i := 0; i < 4; i++ {
		seedRestaurant(t, db, "Chinese Place", chinese.ID)
	}
	seedRestaurant(t, db, "Italian Place", italian.ID)

	t.Run("no filter counts everything", func(t *testing.T) {
		restaurants, total, err := repo.ListPage(ctx, ListQuery{Limit: 3, Offset: 0})
		require.NoError(t, err)
		assert.EqualValues(t, 5, total)
		assert.Len(t, restaurants, 3)
	})

	t.Run("category filter narrows rows and count", func(t *testing.T) {
		restaurants, total, err := repo.ListPage(ctx, ListQuery{CategoryID: italian.ID, Limit: 9, Offset: 0})
		require.NoError(t, err)
		assert.EqualValues(t, 1, total)
		require.Len(t, restaurants, 1)
		assert.Equal(t, "Italian Place", restaurants[0].Name)
		assert.Equal(t, "Italian", restaurants[0].Category.Name)
	})

	t.Run("ordered by ascending id", func(t *testing.T) {
		restaurants, _, err := repo.ListPage(ctx, ListQuery{Limit: 9, Offset: 0})
		require.NoError(t, err)
		for i := 1; i < len(restaurants); i++ {
			assert.Less(t, restaurants[i-1].ID, restaurants[i].ID)
		}
	})

	t.Run("offset pages past the first rows", func(t *testing.T) {
		restaurants, _, err := repo.ListPage(ctx, ListQuery{Limit: 3, Offset: 3})
		require.NoError(t, err)
		assert.Len(t, restaurants, 2)
	})
}

func TestRestaurantRepository_ViewerFlags(t *testing.T) {
	db := newTestDB(t)
	repo := NewRestaurantRepository(db)
	favorites := NewFavoriteRepository(db)
	likes := NewLikeRepository(db)
	ctx := context.Background()

	category := seedCategory(t, db, "Thai")
	restaurant := seedRestaurant(t, db, "Spice House", category.ID)
	fan := seedUser(t, db, "Fan", "fan@example.com")
	other := seedUser(t, db, "Other", "other@example.com")

	require.NoError(t, favorites.Add(ctx, fan.ID, restaurant.ID))
	require.NoError(t, likes.Add(ctx, fan.ID, restaurant.ID))

	got, err := repo.GetByID(ctx, restaurant.ID, fan.ID)
	require.NoError(t, err)
	assert.True(t, got.IsFavorited)
	assert.True(t, got.IsLiked)
	assert.Equal(t, 1, got.FavoritedCount)

	got, err = repo.GetByID(ctx, restaurant.ID, other.ID)
	require.NoError(t, err)
	assert.False(t, got.IsFavorited)
	assert.False(t, got.IsLiked)
	assert.Equal(t, 1, got.FavoritedCount)

	got, err = repo.GetByID(ctx, restaurant.ID, 0)
	require.NoError(t, err)
	assert.False(t, got.IsFavorited)
	assert.False(t, got.IsLiked)
}

func TestRestaurantRepository_GetByID_NotFound(t *testing.T) {
	db := newTestDB(t)
	repo := NewRestaurantRepository(db)

	_, err := repo.GetByID(context.Background(), 999, 0)
	var appErr *models.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "NOT_FOUND", appErr.Code)
}

func TestRestaurantRepository_GetWithComments(t *testing.T) {
	db := newTestDB(t)
	repo := NewRestaurantRepository(db)
	ctx := context.Background()

	category := seedCategory(t, db, "Diner")
	restaurant := seedRestaurant(t, db, "Late Night", category.ID)
	user := seedUser(t, db, "Talker", "talker@example.com")

	first := &models.Comment{Text: "first visit", UserID: user.ID, RestaurantID: restaurant.ID}
	second := &models.Comment{Text: "even better the second time", UserID: user.ID, RestaurantID: restaurant.ID}
	require.NoError(t, db.Create(first).Error)
	require.NoError(t, db.Create(second).Error)

	got, err := repo.GetWithComments(ctx, restaurant.ID, 0)
	require.NoError(t, err)
	require.Len(t, got.Comments, 2)
	assert.Equal(t, second.ID, got.Comments[0].ID, "newest comment comes first")
	assert.Equal(t, "Talker", got.Comments[0].User.Name)
	assert.Equal(t, 2, got.CommentsCount)
}

func TestRestaurantRepository_IncrementViewCounts(t *testing.T) {
	db := newTestDB(t)
	repo := NewRestaurantRepository(db)
	ctx := context.Background()

	category := seedCategory(t, db, "Cafe")
	restaurant := seedRestaurant(t, db, "Beanery", category.ID)

	require.NoError(t, repo.IncrementViewCounts(ctx, restaurant.ID))
	require.NoError(t, repo.IncrementViewCounts(ctx, restaurant.ID))

	got, err := repo.GetByID(ctx, restaurant.ID, 0)
	require.NoError(t, err)
	assert.EqualValues(t, 2, got.ViewCounts)

	err = repo.IncrementViewCounts(ctx, 999)
	var appErr *models.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "NOT_FOUND", appErr.Code)
}

func TestRestaurantRepository_ListTopFavorited(t *testing.T) {
	db := newTestDB(t)
	repo := NewRestaurantRepository(db)
	favorites := NewFavoriteRepository(db)
	ctx := context.Background()

	// Seed the popular row last so the ranking cannot pass on id order alone.
	category := seedCategory(t, db, "BBQ")
	seedRestaurant(t, db, "Quiet", category.ID)
	middling := seedRestaurant(t, db, "Middling", category.ID)
	popular := seedRestaurant(t, db, "Popular", category.ID)

	for i := 0; i < 3; i++ {
		u := seedUser(t, db, "Fan", "fan"+string(rune('a'+i))+"@example.com")
		require.NoError(t, favorites.Add(ctx, u.ID, popular.ID))
		if i == 0 {
			require.NoError(t, favorites.Add(ctx, u.ID, middling.ID))
		}
	}

	got, err := repo.ListTopFavorited(ctx, 0, 10)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, popular.ID, got[0].ID)
	assert.Equal(t, 3, got[0].FavoritedCount)
	assert.Equal(t, middling.ID, got[1].ID)

	bounded, err := repo.ListTopFavorited(ctx, 0, 2)
	require.NoError(t, err)
	assert.Len(t, bounded, 2)
}

func TestRestaurantRepository_TopListCacheAside(t *testing.T) {
	db := newTestDB(t)
	mr := withMiniredis(t)
	repo := NewRestaurantRepository(db)
	favorites := NewFavoriteRepository(db)
	ctx := context.Background()

	category := seedCategory(t, db, "Ramen")
	quiet := seedRestaurant(t, db, "Quiet", category.ID)
	popular := seedRestaurant(t, db, "Popular", category.ID)
	fan := seedUser(t, db, "Fan", "fan@example.com")
	require.NoError(t, favorites.Add(ctx, fan.ID, popular.ID))

	got, err := repo.ListTopFavorited(ctx, 0, 10)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, popular.ID, got[0].ID)
	assert.True(t, mr.Exists(cache.TopRestaurantsKey))

	// The viewer-specific ranking bypasses the cache and carries the
	// viewer's booleans.
	viewerRanked, err := repo.ListTopFavorited(ctx, fan.ID, 10)
	require.NoError(t, err)
	assert.True(t, viewerRanked[0].IsFavorited)

	// A new favorite invalidates the cached ranking.
	second := seedUser(t, db, "Fan Two", "fan2@example.com")
	require.NoError(t, favorites.Add(ctx, second.ID, quiet.ID))
	assert.False(t, mr.Exists(cache.TopRestaurantsKey))
}

func TestRestaurantRepository_ListRecentCacheAside(t *testing.T) {
	db := newTestDB(t)
	mr := withMiniredis(t)
	repo := NewRestaurantRepository(db)
	ctx := context.Background()

	category := seedCategory(t, db, "Sushi")
	seedRestaurant(t, db, "First", category.ID)

	got, err := repo.ListRecent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.True(t, mr.Exists(cache.FeedRestaurantsKey))

	// Rows inserted behind the cache's back stay invisible until the TTL
	// lapses.
	seedRestaurant(t, db, "Second", category.ID)
	cached, err := repo.ListRecent(ctx, 10)
	require.NoError(t, err)
	assert.Len(t, cached, 1)

	mr.FastForward(cache.FeedTTL + time.Second)
	fresh, err := repo.ListRecent(ctx, 10)
	require.NoError(t, err)
	assert.Len(t, fresh, 2)
}

func TestRestaurantRepository_GetByIDCacheAside(t *testing.T) {
	db := newTestDB(t)
	mr := withMiniredis(t)
	repo := NewRestaurantRepository(db)
	comments := NewCommentRepository(db)
	ctx := context.Background()

	category := seedCategory(t, db, "Diner")
	restaurant := seedRestaurant(t, db, "Counter Seats", category.ID)
	author := seedUser(t, db, "Author", "author@example.com")

	got, err := repo.GetByID(ctx, restaurant.ID, 0)
	require.NoError(t, err)
	assert.Equal(t, 0, got.CommentsCount)
	assert.True(t, mr.Exists(cache.RestaurantKey(restaurant.ID)))

	// A new comment invalidates the cached detail so the count stays honest.
	require.NoError(t, comments.Create(ctx, &models.Comment{
		Text: "solid", UserID: author.ID, RestaurantID: restaurant.ID,
	}))
	assert.False(t, mr.Exists(cache.RestaurantKey(restaurant.ID)))

	refreshed, err := repo.GetByID(ctx, restaurant.ID, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, refreshed.CommentsCount)
}

func TestRestaurantRepository_DeleteCascade(t *testing.T) {
	db := newTestDB(t)
	repo := NewRestaurantRepository(db)
	favorites := NewFavoriteRepository(db)
	likes := NewLikeRepository(db)
	ctx := context.Background()

	category := seedCategory(t, db, "Pizza")
	restaurant := seedRestaurant(t, db, "Slice City", category.ID)
	user := seedUser(t, db, "Regular", "regular@example.com")

	require.NoError(t, db.Create(&models.Comment{Text: "good crust", UserID: user.ID, RestaurantID: restaurant.ID}).Error)
	require.NoError(t, favorites.Add(ctx, user.ID, restaurant.ID))
	require.NoError(t, likes.Add(ctx, user.ID, restaurant.ID))

	deleted, err := repo.DeleteCascade(ctx, restaurant.ID)
	require.NoError(t, err)
	assert.Equal(t, "Slice City", deleted.Name)
	assert.Equal(t, "Pizza", deleted.Category.Name)

	var comments, favs, lks, restaurants int64
	db.Model(&models.Comment{}).Where("restaurant_id = ?", restaurant.ID).Count(&comments)
	db.Model(&models.Favorite{}).Where("restaurant_id = ?", restaurant.ID).Count(&favs)
	db.Model(&models.Like{}).Where("restaurant_id = ?", restaurant.ID).Count(&lks)
	db.Model(&models.Restaurant{}).Where("id = ?", restaurant.ID).Count(&restaurants)
	assert.Zero(t, comments)
	assert.Zero(t, favs)
	assert.Zero(t, lks)
	assert.Zero(t, restaurants)

	_, err = repo.DeleteCascade(ctx, restaurant.ID)
	var appErr *models.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "NOT_FOUND", appErr.Code)
}
