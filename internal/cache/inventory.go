package cache

import (
	"context"
	"fmt"
	"time"
)

const (
	UserKeyPrefix       = "user:%d"
	CategoriesKey       = "categories"
	TopRestaurantsKey   = "top:restaurants"
	FeedRestaurantsKey  = "feed:restaurants"
	RestaurantKeyPrefix = "restaurant:%d"
)

const (
	UserTTL       = 5 * time.Minute
	CategoriesTTL = 10 * time.Minute
	RestaurantTTL = 5 * time.Minute
	TopTTL        = time.Minute
	FeedTTL       = 30 * time.Second
)

func UserKey(userID uint) string {
	return fmt.Sprintf(UserKeyPrefix, userID)
}

func RestaurantKey(restaurantID uint) string {
	return fmt.Sprintf(RestaurantKeyPrefix, restaurantID)
}

func Invalidate(ctx context.Context, key string) {
	if client != nil {
		client.Del(ctx, key)
	}
}

func InvalidateUser(ctx context.Context, userID uint) {
	Invalidate(ctx, UserKey(userID))
}

func InvalidateCategories(ctx context.Context) {
	Invalidate(ctx, CategoriesKey)
}

func InvalidateRestaurant(ctx context.Context, restaurantID uint) {
	Invalidate(ctx, RestaurantKey(restaurantID))
	Invalidate(ctx, TopRestaurantsKey)
	Invalidate(ctx, FeedRestaurantsKey)
}
