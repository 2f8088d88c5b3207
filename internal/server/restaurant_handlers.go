// Package server contains the HTTP handlers for the application's API endpoints.
package server

import (
	"forkful/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetRestaurants handles GET /api/restaurants
func (s *Server) GetRestaurants(c *fiber.Ctx) error {
	viewerID, _ := s.optionalUserID(c)

	in := service.ListInput{
		CategoryID: uint(c.QueryInt("categoryId", 0)),
		Page:       c.QueryInt("page", 1),
		Limit:      c.QueryInt("limit", 0),
		ViewerID:   viewerID,
	}

	page, err := s.restaurantService.ListRestaurants(c.Context(), in)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(page)
}

// GetRestaurant handles GET /api/restaurants/:id. Every successful fetch
// counts as one view.
func (s *Server) GetRestaurant(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	viewerID, _ := s.optionalUserID(c)

	restaurant, svcErr := s.restaurantService.GetRestaurant(c.Context(), id, viewerID)
	if svcErr != nil {
		return respondServiceError(c, svcErr)
	}

	return c.JSON(fiber.Map{
		"restaurant": restaurant,
	})
}

// GetRestaurantDashboard handles GET /api/restaurants/:id/dashboard.
// Unlike the detail route it does not touch the view count.
func (s *Server) GetRestaurantDashboard(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	restaurant, svcErr := s.restaurantService.GetDashboard(c.Context(), id)
	if svcErr != nil {
		return respondServiceError(c, svcErr)
	}

	return c.JSON(fiber.Map{
		"restaurant": restaurant,
	})
}

// GetFeed handles GET /api/restaurants/feed
func (s *Server) GetFeed(c *fiber.Ctx) error {
	feed, err := s.restaurantService.GetFeed(c.Context())
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(feed)
}

// GetTopRestaurants handles GET /api/restaurants/top
func (s *Server) GetTopRestaurants(c *fiber.Ctx) error {
	viewerID, _ := s.optionalUserID(c)

	restaurants, err := s.restaurantService.TopRestaurants(c.Context(), viewerID)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(fiber.Map{
		"restaurants": restaurants,
	})
}
