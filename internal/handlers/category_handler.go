package handlers

import (
	pkgerrors "errors"
	"net/http"

	"fintrack/internal/dto"
	"fintrack/internal/errors"
	"fintrack/internal/models"
	"fintrack/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// CategoryHandler handles category-related HTTP requests
type CategoryHandler struct {
	categoryService services.CategoryServiceInterface
}

// NewCategoryHandler creates a new category handler
func NewCategoryHandler(categoryService services.CategoryServiceInterface) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService}
}

// CreateCategory creates a custom category for the authenticated user
// @Summary Create a category
// @Description Create a custom income or expense category. Names must be unique per type.
// @Tags Categories
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateCategoryRequest true "Category details"
// @Success 201 {object} models.Category "Category created successfully"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid request body or validation error"
// @Failure 401 {object} errors.ErrorResponse "AUTH_001 - Missing or invalid authentication"
// @Failure 409 {object} errors.ErrorResponse "CATEGORY_002 - Category already exists"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /categories [post]
func (h *CategoryHandler) CreateCategory(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	var req dto.CreateCategoryRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
	}

	category, err := h.categoryService.CreateCategory(userID, &req)
	if err != nil {
		return h.mapCategoryErr(c, err)
	}

	return c.JSON(http.StatusCreated, category)
}

// GetUserCategories retrieves the user's categories
// @Summary List categories
// @Description Retrieve all categories belonging to the authenticated user, optionally filtered by type
// @Tags Categories
// @Security BearerAuth
// @Produce json
// @Param type query string false "Filter by category type" Enums(income, expense)
// @Success 200 {object} dto.CategoryListResponse "List of user's categories"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid type filter"
// @Failure 401 {object} errors.ErrorResponse "AUTH_001 - Missing or invalid authentication"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /categories [get]
func (h *CategoryHandler) GetUserCategories(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	categories, err := h.categoryService.GetUserCategories(userID, c.QueryParam("type"))
	if err != nil {
		return h.mapCategoryErr(c, err)
	}

	return c.JSON(http.StatusOK, dto.CategoryListResponse{
		Categories: categories,
		Total:      len(categories),
	})
}

// UpdateCategory renames a custom category
// @Summary Rename category
// @Description Rename a custom category. System categories cannot be modified.
// @Tags Categories
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param categoryId path string true "Category ID (UUID)"
// @Param request body dto.UpdateCategoryRequest true "New category name"
// @Success 200 {object} models.Category "Updated category"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid request body or category ID"
// @Failure 401 {object} errors.ErrorResponse "AUTH_001 - Missing or invalid authentication"
// @Failure 404 {object} errors.ErrorResponse "CATEGORY_001 - Category not found"
// @Failure 409 {object} errors.ErrorResponse "CATEGORY_002 - Category already exists"
// @Failure 422 {object} errors.ErrorResponse "CATEGORY_004 - System category is locked"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /categories/{categoryId} [patch]
func (h *CategoryHandler) UpdateCategory(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	categoryID, err := uuid.Parse(c.Param("categoryId"))
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid category ID"))
	}

	var req dto.UpdateCategoryRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
	}

	category, err := h.categoryService.UpdateCategory(categoryID, userID, &req)
	if err != nil {
		return h.mapCategoryErr(c, err)
	}

	return c.JSON(http.StatusOK, category)
}

// DeleteCategory removes a custom category
// @Summary Delete category
// @Description Delete a custom category. Refused for system categories and categories referenced by transactions.
// @Tags Categories
// @Security BearerAuth
// @Produce json
// @Param categoryId path string true "Category ID (UUID)"
// @Success 200 {object} dto.MessageResponse "Category deleted successfully"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_003 - Invalid category ID"
// @Failure 401 {object} errors.ErrorResponse "AUTH_001 - Missing or invalid authentication"
// @Failure 404 {object} errors.ErrorResponse "CATEGORY_001 - Category not found"
// @Failure 409 {object} errors.ErrorResponse "CATEGORY_003 - Category in use"
// @Failure 422 {object} errors.ErrorResponse "CATEGORY_004 - System category is locked"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /categories/{categoryId} [delete]
func (h *CategoryHandler) DeleteCategory(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	categoryID, err := uuid.Parse(c.Param("categoryId"))
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid category ID"))
	}

	if err := h.categoryService.DeleteCategory(categoryID, userID); err != nil {
		return h.mapCategoryErr(c, err)
	}

	return c.JSON(http.StatusOK, dto.MessageResponse{Message: "Category deleted successfully"})
}

func (h *CategoryHandler) mapCategoryErr(c echo.Context, err error) error {
	switch {
	case pkgerrors.Is(err, services.ErrCategoryNotFound):
		return SendError(c, errors.CategoryNotFound)
	case pkgerrors.Is(err, services.ErrCategoryExists):
		return SendError(c, errors.CategoryAlreadyExists)
	case pkgerrors.Is(err, services.ErrCategoryInUse):
		return SendError(c, errors.CategoryInUse)
	case pkgerrors.Is(err, services.ErrSystemCategoryLocked):
		return SendError(c, errors.CategorySystemLocked)
	case pkgerrors.Is(err, models.ErrInvalidCategoryType):
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
	default:
		return SendSystemError(c, err)
	}
}
