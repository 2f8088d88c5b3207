// Package server contains the HTTP handlers for the application's API endpoints.
package server

import (
	"forkful/internal/models"
	"forkful/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetTopUsers handles GET /api/users/top
func (s *Server) GetTopUsers(c *fiber.Ctx) error {
	viewerID := c.Locals("userID").(uint)

	users, err := s.userService.TopUsers(c.Context(), viewerID)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(fiber.Map{
		"users": users,
	})
}

// GetMyProfile handles GET /api/users/me
func (s *Server) GetMyProfile(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	profile, err := s.userService.GetProfile(c.Context(), userID)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(fiber.Map{
		"user": profile,
	})
}

// GetUserProfile handles GET /api/users/:id
func (s *Server) GetUserProfile(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	profile, svcErr := s.userService.GetProfile(c.Context(), id)
	if svcErr != nil {
		return respondServiceError(c, svcErr)
	}

	return c.JSON(fiber.Map{
		"user": profile,
	})
}

// UpdateMyProfile handles PUT /api/users/me
func (s *Server) UpdateMyProfile(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	var req struct {
		Name  string `json:"name"`
		Image string `json:"image"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	user, err := s.userService.UpdateProfile(c.Context(), service.UpdateProfileInput{
		UserID: userID,
		Name:   req.Name,
		Image:  req.Image,
	})
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(fiber.Map{
		"user": user,
	})
}

// FollowUser handles POST /api/users/:id/follow
func (s *Server) FollowUser(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	targetID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if svcErr := s.followService.Follow(c.Context(), userID, targetID); svcErr != nil {
		return respondServiceError(c, svcErr)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Followed",
	})
}

// UnfollowUser handles DELETE /api/users/:id/follow
func (s *Server) UnfollowUser(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	targetID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if svcErr := s.followService.Unfollow(c.Context(), userID, targetID); svcErr != nil {
		return respondServiceError(c, svcErr)
	}

	return c.JSON(fiber.Map{
		"message": "Unfollowed",
	})
}
