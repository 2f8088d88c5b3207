// Package server contains the HTTP handlers for the application's API endpoints.
package server

import (
	"github.com/gofiber/fiber/v2"
)

// AddFavorite handles POST /api/restaurants/:id/favorite
func (s *Server) AddFavorite(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	restaurantID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if svcErr := s.favoriteService.Favorite(c.Context(), userID, restaurantID); svcErr != nil {
		return respondServiceError(c, svcErr)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Favorited",
	})
}

// RemoveFavorite handles DELETE /api/restaurants/:id/favorite
func (s *Server) RemoveFavorite(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	restaurantID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if svcErr := s.favoriteService.Unfavorite(c.Context(), userID, restaurantID); svcErr != nil {
		return respondServiceError(c, svcErr)
	}

	return c.JSON(fiber.Map{
		"message": "Unfavorited",
	})
}

// AddLike handles POST /api/restaurants/:id/like
func (s *Server) AddLike(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	restaurantID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if svcErr := s.favoriteService.Like(c.Context(), userID, restaurantID); svcErr != nil {
		return respondServiceError(c, svcErr)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Liked",
	})
}

// RemoveLike handles DELETE /api/restaurants/:id/like
func (s *Server) RemoveLike(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	restaurantID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if svcErr := s.favoriteService.Unlike(c.Context(), userID, restaurantID); svcErr != nil {
		return respondServiceError(c, svcErr)
	}

	return c.JSON(fiber.Map{
		"message": "Unliked",
	})
}
