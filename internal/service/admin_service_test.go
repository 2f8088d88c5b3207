package service

import (
	"context"
	"errors"
	"testing"

	"forkful/internal/models"
)

func TestAdminServiceCreateRestaurantRequiresName(t *testing.T) {
	svc := NewAdminService(noopRestaurantRepo(), noopCategoryRepo(), noopUserRepo())
	_, err := svc.CreateRestaurant(context.Background(), RestaurantInput{Name: "  ", CategoryID: 1})
	var appErr *models.AppError
	if !errors.As(err, &appErr) || appErr.Code != "VALIDATION_ERROR" {
		t.Fatalf("expected validation app error, got %#v", err)
	}
}

func TestAdminServiceCreateRestaurantRequiresCategory(t *testing.T) {
	svc := NewAdminService(noopRestaurantRepo(), noopCategoryRepo(), noopUserRepo())
	_, err := svc.CreateRestaurant(context.Background(), RestaurantInput{Name: "Noodle Bar"})
	var appErr *models.AppError
	if !errors.As(err, &appErr) || appErr.Code != "VALIDATION_ERROR" {
		t.Fatalf("expected validation app error, got %#v", err)
	}
}

func TestAdminServiceCreateRestaurantMissingCategory(t *testing.T) {
	categories := noopCategoryRepo()
	categories.getByIDFn = func(_ context.Context, id uint) (*models.Category, error) {
		return nil, models.NewNotFoundError("Category", id)
	}

	created := false
	restaurants := noopRestaurantRepo()
	restaurants.createFn = func(context.Context, *models.Restaurant) error {
		created = true
		return nil
	}

	svc := NewAdminService(restaurants, categories, noopUserRepo())
	_, err := svc.CreateRestaurant(context.Background(), RestaurantInput{Name: "Noodle Bar", CategoryID: 42})
	var appErr *models.AppError
	if !errors.As(err, &appErr) || appErr.Code != "NOT_FOUND" {
		t.Fatalf("expected not-found app error, got %#v", err)
	}
	if created {
		t.Fatal("restaurant must not be created with a missing category")
	}
}

func TestAdminServiceCreateRestaurantTrimsName(t *testing.T) {
	var created *models.Restaurant
	restaurants := noopRestaurantRepo()
	restaurants.createFn = func(_ context.Context, r *models.Restaurant) error {
		created = r
		r.ID = 7
		return nil
	}

	svc := NewAdminService(restaurants, noopCategoryRepo(), noopUserRepo())
	if _, err := svc.CreateRestaurant(context.Background(), RestaurantInput{Name: " Noodle Bar ", CategoryID: 1}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.Name != "Noodle Bar" {
		t.Fatalf("expected trimmed name, got %q", created.Name)
	}
}

func TestAdminServiceUpdateRestaurantKeepsImageWhenEmpty(t *testing.T) {
	restaurants := noopRestaurantRepo()
	restaurants.getByIDFn = func(_ context.Context, id, _ uint) (*models.Restaurant, error) {
		return &models.Restaurant{ID: id, Name: "Old Name", Image: "https://img.example/old.jpg", CategoryID: 1}, nil
	}
	var updated *models.Restaurant
	restaurants.updateFn = func(_ context.Context, r *models.Restaurant) error {
		updated = r
		return nil
	}

	svc := NewAdminService(restaurants, noopCategoryRepo(), noopUserRepo())
	_, err := svc.UpdateRestaurant(context.Background(), 3, RestaurantInput{Name: "New Name", CategoryID: 2})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Image != "https://img.example/old.jpg" {
		t.Fatalf("empty image input must keep the stored image, got %q", updated.Image)
	}
	if updated.Name != "New Name" || updated.CategoryID != 2 {
		t.Fatalf("unexpected update payload: %+v", updated)
	}
}

func TestAdminServiceUpdateRestaurantReplacesImage(t *testing.T) {
	restaurants := noopRestaurantRepo()
	restaurants.getByIDFn = func(_ context.Context, id, _ uint) (*models.Restaurant, error) {
		return &models.Restaurant{ID: id, Name: "Old Name", Image: "https://img.example/old.jpg", CategoryID: 1}, nil
	}
	var updated *models.Restaurant
	restaurants.updateFn = func(_ context.Context, r *models.Restaurant) error {
		updated = r
		return nil
	}

	svc := NewAdminService(restaurants, noopCategoryRepo(), noopUserRepo())
	in := RestaurantInput{Name: "New Name", CategoryID: 1, Image: "https://img.example/new.jpg"}
	if _, err := svc.UpdateRestaurant(context.Background(), 3, in); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Image != "https://img.example/new.jpg" {
		t.Fatalf("expected replaced image, got %q", updated.Image)
	}
}

func TestAdminServiceDeleteRestaurantReturnsPriorState(t *testing.T) {
	restaurants := noopRestaurantRepo()
	restaurants.deleteCascadeFn = func(_ context.Context, id uint) (*models.Restaurant, error) {
		return &models.Restaurant{ID: id, Name: "Gone Grill"}, nil
	}

	svc := NewAdminService(restaurants, noopCategoryRepo(), noopUserRepo())
	deleted, err := svc.DeleteRestaurant(context.Background(), 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if deleted.ID != 5 || deleted.Name != "Gone Grill" {
		t.Fatalf("expected the pre-delete record, got %+v", deleted)
	}
}

func TestAdminServiceCreateCategoryRequiresName(t *testing.T) {
	svc := NewAdminService(noopRestaurantRepo(), noopCategoryRepo(), noopUserRepo())
	_, err := svc.CreateCategory(context.Background(), "   ")
	var appErr *models.AppError
	if !errors.As(err, &appErr) || appErr.Code != "VALIDATION_ERROR" {
		t.Fatalf("expected validation app error, got %#v", err)
	}
}

func TestAdminServiceCreateCategoryConflict(t *testing.T) {
	categories := noopCategoryRepo()
	categories.createFn = func(context.Context, *models.Category) error {
		return models.NewConflictError("Category already exists")
	}

	svc := NewAdminService(noopRestaurantRepo(), categories, noopUserRepo())
	_, err := svc.CreateCategory(context.Background(), "Italian")
	var appErr *models.AppError
	if !errors.As(err, &appErr) || appErr.Code != "CONFLICT" {
		t.Fatalf("expected conflict app error, got %#v", err)
	}
}

func TestAdminServiceUpdateCategoryTrimsName(t *testing.T) {
	var updated *models.Category
	categories := noopCategoryRepo()
	categories.updateFn = func(_ context.Context, c *models.Category) error {
		updated = c
		return nil
	}

	svc := NewAdminService(noopRestaurantRepo(), categories, noopUserRepo())
	category, err := svc.UpdateCategory(context.Background(), 4, "  Korean  ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Name != "Korean" || category.Name != "Korean" {
		t.Fatalf("expected trimmed rename, got %q", updated.Name)
	}
}

func TestAdminServiceSetUserAdmin(t *testing.T) {
	users := noopUserRepo()
	var gotID uint
	var gotAdmin bool
	users.setAdminFn = func(_ context.Context, id uint, isAdmin bool) error {
		gotID, gotAdmin = id, isAdmin
		return nil
	}
	users.getByIDFn = func(_ context.Context, id uint) (*models.User, error) {
		return &models.User{ID: id, IsAdmin: true}, nil
	}

	svc := NewAdminService(noopRestaurantRepo(), noopCategoryRepo(), users)
	user, err := svc.SetUserAdmin(context.Background(), 8, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotID != 8 || !gotAdmin {
		t.Fatalf("expected SetAdmin(8, true), got (%d, %v)", gotID, gotAdmin)
	}
	if !user.IsAdmin {
		t.Fatal("returned user should reflect the new admin flag")
	}
}
