package service

import (
	"context"
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"bookstore-inventory/internal/model"
	"bookstore-inventory/internal/service/mocks"
)

func TestCategoryServiceCreateCategory(t *testing.T) {
	t.Parallel()

	t.Run("validation error: missing name", func(t *testing.T) {
		t.Parallel()

		repo := mocks.NewMockCategoryRepository(t)
		svc := NewCategoryService(repo)

		res, err := svc.CreateCategory(context.Background(), &model.Category{Description: "no name"})
		require.Error(t, err)
		assert.ErrorIs(t, err, model.ErrValidation)
		assert.Nil(t, res)

		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("success: generates id when absent", func(t *testing.T) {
		t.Parallel()

		repo := mocks.NewMockCategoryRepository(t)
		repo.On("Create", mock.Anything, mock.AnythingOfType("*model.Category")).
			Return(nil).
			Once()
		svc := NewCategoryService(repo)

		res, err := svc.CreateCategory(context.Background(), &model.Category{Name: "Fiction"})
		require.NoError(t, err)
		assert.NotEmpty(t, res.ID)
		assert.Equal(t, "Fiction", res.Name)
	})

	t.Run("duplicate id surfaces as conflict", func(t *testing.T) {
		t.Parallel()

		repo := mocks.NewMockCategoryRepository(t)
		repo.On("Create", mock.Anything, mock.Anything).
			Return(model.ErrConflict).
			Once()
		svc := NewCategoryService(repo)

		_, err := svc.CreateCategory(context.Background(), &model.Category{ID: "dup", Name: "Fiction"})
		assert.ErrorIs(t, err, model.ErrConflict)
	})
}

func TestCategoryServiceUpdateCategory(t *testing.T) {
	t.Parallel()

	categoryID := gofakeit.UUID()
	newName := "Science Fiction"

	t.Run("empty patch rejected", func(t *testing.T) {
		t.Parallel()

		repo := mocks.NewMockCategoryRepository(t)
		svc := NewCategoryService(repo)

		_, err := svc.UpdateCategory(context.Background(), categoryID, model.CategoryPatch{})
		assert.ErrorIs(t, err, model.ErrValidation)

		repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("success", func(t *testing.T) {
		t.Parallel()

		repo := mocks.NewMockCategoryRepository(t)
		repo.On("Update", mock.Anything, categoryID, model.CategoryPatch{Name: &newName}).
			Return(&model.Category{ID: categoryID, Name: newName}, nil).
			Once()
		svc := NewCategoryService(repo)

		res, err := svc.UpdateCategory(context.Background(), categoryID, model.CategoryPatch{Name: &newName})
		require.NoError(t, err)
		assert.Equal(t, newName, res.Name)
	})
}

func TestCategoryServiceDeleteCategory(t *testing.T) {
	t.Parallel()

	t.Run("empty id", func(t *testing.T) {
		t.Parallel()

		repo := mocks.NewMockCategoryRepository(t)
		svc := NewCategoryService(repo)

		assert.ErrorIs(t, svc.DeleteCategory(context.Background(), " "), model.ErrNotFound)
	})

	t.Run("unknown id", func(t *testing.T) {
		t.Parallel()

		repo := mocks.NewMockCategoryRepository(t)
		repo.On("Delete", mock.Anything, "missing").Return(model.ErrNotFound).Once()
		svc := NewCategoryService(repo)

		assert.ErrorIs(t, svc.DeleteCategory(context.Background(), "missing"), model.ErrNotFound)
	})
}
