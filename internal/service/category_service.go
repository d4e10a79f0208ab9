package service

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"smsledger/internal/models"
	"smsledger/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var hexColorRegex = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

const (
	maxCategoryNameLength = 50
	defaultCategoryColor  = "#6B7280"
)

type CategoryService struct {
	categoryRepo *repository.CategoryRepository
	logger       *zap.Logger
}

func NewCategoryService(categoryRepo *repository.CategoryRepository, logger *zap.Logger) *CategoryService {
	return &CategoryService{
		categoryRepo: categoryRepo,
		logger:       logger,
	}
}

func (s *CategoryService) Create(ctx context.Context, userID uuid.UUID, name, color string) (*models.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: category name is required", ErrValidation)
	}
	if len(name) > maxCategoryNameLength {
		return nil, fmt.Errorf("%w: category name must be %d characters or less", ErrValidation, maxCategoryNameLength)
	}
	if color == "" {
		color = defaultCategoryColor
	} else if !hexColorRegex.MatchString(color) {
		return nil, fmt.Errorf("%w: color must be a hex value like #4F46E5", ErrValidation)
	}

	category := &models.Category{
		UserID: userID,
		Name:   name,
		Color:  color,
	}
	if err := s.categoryRepo.Create(ctx, category); err != nil {
		if errors.Is(err, repository.ErrUniqueViolation) {
			return nil, ErrCategoryExists
		}
		return nil, err
	}
	return category, nil
}

func (s *CategoryService) List(ctx context.Context, userID uuid.UUID) ([]*models.Category, error) {
	return s.categoryRepo.List(ctx, userID)
}

func (s *CategoryService) Update(ctx context.Context, userID uuid.UUID, id int, name, color string) (*models.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: category name is required", ErrValidation)
	}
	if len(name) > maxCategoryNameLength {
		return nil, fmt.Errorf("%w: category name must be %d characters or less", ErrValidation, maxCategoryNameLength)
	}
	if !hexColorRegex.MatchString(color) {
		return nil, fmt.Errorf("%w: color must be a hex value like #4F46E5", ErrValidation)
	}

	category := &models.Category{
		ID:     id,
		UserID: userID,
		Name:   name,
		Color:  color,
	}
	if err := s.categoryRepo.Update(ctx, category); err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			return nil, ErrCategoryNotFound
		case errors.Is(err, repository.ErrUniqueViolation):
			return nil, ErrCategoryExists
		}
		return nil, err
	}
	return category, nil
}

func (s *CategoryService) Delete(ctx context.Context, userID uuid.UUID, id int) error {
	err := s.categoryRepo.Delete(ctx, id, userID)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrCategoryNotFound
	}
	return err
}

// ResolveByName matches a free-text token to a category by
// case-insensitive exact name. Held over from the grammar revision
// that accepted a category word over SMS; today it backs the
// transaction-update path, which accepts a category by name as well as
// by ID. It is deliberately not part of the SMS commit pipeline.
func (s *CategoryService) ResolveByName(ctx context.Context, userID uuid.UUID, name string) (*models.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrCategoryNotFound
	}

	category, err := s.categoryRepo.GetByName(ctx, userID, name)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, err
	}
	return category, nil
}
