package services

import (
	"errors"
	"fmt"
	"log/slog"

	"fintrack/internal/dto"
	"fintrack/internal/models"
	"fintrack/internal/repositories"

	"github.com/google/uuid"
)

var (
	ErrCategoryExists       = errors.New("category already exists")
	ErrCategoryInUse        = errors.New("category is referenced by transactions")
	ErrSystemCategoryLocked = errors.New("system categories cannot be modified or deleted")
)

// categoryService implements CategoryServiceInterface
type categoryService struct {
	categoryRepo repositories.CategoryRepositoryInterface
	logger       *slog.Logger
}

// NewCategoryService creates a category service
func NewCategoryService(categoryRepo repositories.CategoryRepositoryInterface, logger *slog.Logger) CategoryServiceInterface {
	return &categoryService{
		categoryRepo: categoryRepo,
		logger:       logger,
	}
}

// EnsureDefaultCategories seeds the system categories for a user who has none
// yet. Safe to call on every login; it is a no-op once any category exists.
func (s *categoryService) EnsureDefaultCategories(userID uuid.UUID) error {
	count, err := s.categoryRepo.CountByUserID(userID)
	if err != nil {
		return fmt.Errorf("failed to count categories: %w", err)
	}
	if count > 0 {
		return nil
	}

	specs := models.DefaultCategories()
	categories := make([]models.Category, 0, len(specs))
	for _, spec := range specs {
		categories = append(categories, models.Category{
			UserID:   userID,
			Name:     spec.Name,
			Type:     spec.Type,
			Icon:     spec.Icon,
			Color:    spec.Color,
			IsSystem: true,
		})
	}

	if err := s.categoryRepo.CreateBatch(categories); err != nil {
		return fmt.Errorf("failed to seed default categories: %w", err)
	}

	s.logger.Info("default categories seeded", "user_id", userID, "count", len(categories))
	return nil
}

// CreateCategory creates a user-defined category. Names are unique per user
// and type; the same name may exist as both an income and an expense category.
func (s *categoryService) CreateCategory(userID uuid.UUID, req *dto.CreateCategoryRequest) (*models.Category, error) {
	category := &models.Category{
		UserID: userID,
		Name:   req.Name,
		Type:   req.Type,
	}

	if err := category.Validate(); err != nil {
		return nil, err
	}

	if err := s.categoryRepo.Create(category); err != nil {
		if errors.Is(err, repositories.ErrCategoryExists) {
			return nil, ErrCategoryExists
		}
		return nil, fmt.Errorf("failed to create category: %w", err)
	}

	return category, nil
}

// GetUserCategories lists a user's categories, optionally filtered by type
func (s *categoryService) GetUserCategories(userID uuid.UUID, categoryType string) ([]models.Category, error) {
	if categoryType != "" {
		if !models.IsValidCategoryType(categoryType) {
			return nil, models.ErrInvalidCategoryType
		}
		categories, err := s.categoryRepo.GetByUserIDAndType(userID, categoryType)
		if err != nil {
			return nil, fmt.Errorf("failed to list categories: %w", err)
		}
		return categories, nil
	}

	categories, err := s.categoryRepo.GetByUserID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	return categories, nil
}

// UpdateCategory renames a user-defined category. Seeded system categories
// are read-only.
func (s *categoryService) UpdateCategory(categoryID, userID uuid.UUID, req *dto.UpdateCategoryRequest) (*models.Category, error) {
	category, err := s.categoryRepo.GetByIDForUser(categoryID, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrCategoryNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, fmt.Errorf("failed to get category: %w", err)
	}

	if category.IsSystem {
		return nil, ErrSystemCategoryLocked
	}

	category.Name = req.Name
	if err := s.categoryRepo.Update(category); err != nil {
		if errors.Is(err, repositories.ErrCategoryExists) {
			return nil, ErrCategoryExists
		}
		return nil, fmt.Errorf("failed to update category: %w", err)
	}

	return category, nil
}

// DeleteCategory removes a user-defined category that no transaction references
func (s *categoryService) DeleteCategory(categoryID, userID uuid.UUID) error {
	category, err := s.categoryRepo.GetByIDForUser(categoryID, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrCategoryNotFound) {
			return ErrCategoryNotFound
		}
		return fmt.Errorf("failed to get category: %w", err)
	}

	if category.IsSystem {
		return ErrSystemCategoryLocked
	}

	if err := s.categoryRepo.Delete(categoryID, userID); err != nil {
		switch {
		case errors.Is(err, repositories.ErrCategoryNotFound):
			return ErrCategoryNotFound
		case errors.Is(err, repositories.ErrCategoryInUse):
			return ErrCategoryInUse
		default:
			return fmt.Errorf("failed to delete category: %w", err)
		}
	}

	s.logger.Info("category deleted", "category_id", categoryID, "user_id", userID)
	return nil
}
