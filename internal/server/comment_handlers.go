// Package server contains the HTTP handlers for the application's API endpoints.
package server

import (
	"forkful/internal/models"

	"github.com/gofiber/fiber/v2"
)

// CreateComment handles POST /api/restaurants/:id/comments
func (s *Server) CreateComment(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	restaurantID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req struct {
		Text string `json:"text"`
	}
	if parseErr := c.BodyParser(&req); parseErr != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	comment, svcErr := s.commentService.CreateComment(c.Context(), userID, restaurantID, req.Text)
	if svcErr != nil {
		return respondServiceError(c, svcErr)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"comment": comment,
	})
}

// GetRestaurantComments handles GET /api/restaurants/:id/comments
func (s *Server) GetRestaurantComments(c *fiber.Ctx) error {
	restaurantID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	comments, svcErr := s.commentService.ListByRestaurant(c.Context(), restaurantID)
	if svcErr != nil {
		return respondServiceError(c, svcErr)
	}

	return c.JSON(fiber.Map{
		"comments": comments,
	})
}

// DeleteComment handles DELETE /api/comments/:id
func (s *Server) DeleteComment(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	commentID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if svcErr := s.commentService.DeleteComment(c.Context(), userID, commentID); svcErr != nil {
		return respondServiceError(c, svcErr)
	}

	return c.JSON(fiber.Map{
		"message": "Comment deleted",
	})
}
