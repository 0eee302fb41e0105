package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"bookstore-inventory/internal/model"
	"bookstore-inventory/internal/repository"
	"bookstore-inventory/pkg/validator"
)

type CategoryService interface {
	GetAllCategories(ctx context.Context) ([]model.Category, error)
	GetCategoryByID(ctx context.Context, id string) (*model.Category, error)
	CreateCategory(ctx context.Context, req *model.Category) (*model.Category, error)
	UpdateCategory(ctx context.Context, id string, patch model.CategoryPatch) (*model.Category, error)
	DeleteCategory(ctx context.Context, id string) error
}

type categoryService struct {
	categoryRepo repository.CategoryRepository
}

func NewCategoryService(categoryRepo repository.CategoryRepository) CategoryService {
	return &categoryService{categoryRepo: categoryRepo}
}

func (s *categoryService) GetAllCategories(ctx context.Context) ([]model.Category, error) {
	return s.categoryRepo.FindAll(ctx)
}

func (s *categoryService) GetCategoryByID(ctx context.Context, id string) (*model.Category, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, model.ErrNotFound
	}
	return s.categoryRepo.FindByID(ctx, id)
}

func (s *categoryService) CreateCategory(ctx context.Context, req *model.Category) (*model.Category, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("%w: %s", model.ErrValidation, validator.FirstMessage(errs))
	}

	if req.ID == "" {
		req.ID = uuid.NewString()
	}

	if err := s.categoryRepo.Create(ctx, req); err != nil {
		return nil, err
	}
	return req, nil
}

func (s *categoryService) UpdateCategory(ctx context.Context, id string, patch model.CategoryPatch) (*model.Category, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, model.ErrNotFound
	}
	if patch.Empty() {
		return nil, fmt.Errorf("%w: empty patch", model.ErrValidation)
	}

	return s.categoryRepo.Update(ctx, id, patch)
}

// DeleteCategory removes the category only. Books referencing it keep their
// category_id; references are soft.
func (s *categoryService) DeleteCategory(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return model.ErrNotFound
	}
	return s.categoryRepo.Delete(ctx, id)
}
