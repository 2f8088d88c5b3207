// Package server contains the HTTP handlers for the application's API endpoints.
package server

import (
	"forkful/internal/models"
	"forkful/internal/service"

	"github.com/gofiber/fiber/v2"
)

type restaurantRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Image       string `json:"image"`
	CategoryID  uint   `json:"categoryId"`
}

// AdminGetRestaurants handles GET /api/admin/restaurants
func (s *Server) AdminGetRestaurants(c *fiber.Ctx) error {
	restaurants, err := s.adminService.ListRestaurants(c.Context())
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(fiber.Map{
		"restaurants": restaurants,
	})
}

// AdminGetRestaurant handles GET /api/admin/restaurants/:id
func (s *Server) AdminGetRestaurant(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	restaurant, svcErr := s.adminService.GetRestaurant(c.Context(), id)
	if svcErr != nil {
		return respondServiceError(c, svcErr)
	}

	return c.JSON(fiber.Map{
		"restaurant": restaurant,
	})
}

// AdminCreateRestaurant handles POST /api/admin/restaurants
func (s *Server) AdminCreateRestaurant(c *fiber.Ctx) error {
	var req restaurantRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	restaurant, err := s.adminService.CreateRestaurant(c.Context(), service.RestaurantInput{
		Name:        req.Name,
		Description: req.Description,
		Image:       req.Image,
		CategoryID:  req.CategoryID,
	})
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"restaurant": restaurant,
	})
}

// AdminUpdateRestaurant handles PUT /api/admin/restaurants/:id
func (s *Server) AdminUpdateRestaurant(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req restaurantRequest
	if parseErr := c.BodyParser(&req); parseErr != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	restaurant, svcErr := s.adminService.UpdateRestaurant(c.Context(), id, service.RestaurantInput{
		Name:        req.Name,
		Description: req.Description,
		Image:       req.Image,
		CategoryID:  req.CategoryID,
	})
	if svcErr != nil {
		return respondServiceError(c, svcErr)
	}

	return c.JSON(fiber.Map{
		"restaurant": restaurant,
	})
}

// AdminDeleteRestaurant handles DELETE /api/admin/restaurants/:id.
// The response carries the restaurant as it was before deletion.
func (s *Server) AdminDeleteRestaurant(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	restaurant, svcErr := s.adminService.DeleteRestaurant(c.Context(), id)
	if svcErr != nil {
		return respondServiceError(c, svcErr)
	}

	return c.JSON(fiber.Map{
		"restaurant": restaurant,
	})
}

// AdminGetCategories handles GET /api/admin/categories
func (s *Server) AdminGetCategories(c *fiber.Ctx) error {
	categories, err := s.adminService.ListCategories(c.Context())
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(fiber.Map{
		"categories": categories,
	})
}

// AdminCreateCategory handles POST /api/admin/categories
func (s *Server) AdminCreateCategory(c *fiber.Ctx) error {
	var req struct {
		Name string `json:"name"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	category, err := s.adminService.CreateCategory(c.Context(), req.Name)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"category": category,
	})
}

// AdminUpdateCategory handles PUT /api/admin/categories/:id
func (s *Server) AdminUpdateCategory(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req struct {
		Name string `json:"name"`
	}
	if parseErr := c.BodyParser(&req); parseErr != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	category, svcErr := s.adminService.UpdateCategory(c.Context(), id, req.Name)
	if svcErr != nil {
		return respondServiceError(c, svcErr)
	}

	return c.JSON(fiber.Map{
		"category": category,
	})
}

// AdminDeleteCategory handles DELETE /api/admin/categories/:id
func (s *Server) AdminDeleteCategory(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if svcErr := s.adminService.DeleteCategory(c.Context(), id); svcErr != nil {
		return respondServiceError(c, svcErr)
	}

	return c.JSON(fiber.Map{
		"message": "Category deleted",
	})
}

// AdminGetUsers handles GET /api/admin/users
func (s *Server) AdminGetUsers(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 50)
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	offset := c.QueryInt("offset", 0)
	if offset < 0 {
		offset = 0
	}

	users, err := s.userService.ListUsers(c.Context(), limit, offset)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(fiber.Map{
		"users": users,
	})
}

// AdminSetUserAdmin handles PATCH /api/admin/users/:id/admin
func (s *Server) AdminSetUserAdmin(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req struct {
		IsAdmin bool `json:"isAdmin"`
	}
	if parseErr := c.BodyParser(&req); parseErr != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	user, svcErr := s.adminService.SetUserAdmin(c.Context(), id, req.IsAdmin)
	if svcErr != nil {
		return respondServiceError(c, svcErr)
	}

	return c.JSON(fiber.Map{
		"user": user,
	})
}
