package service

import (
	"context"
	"errors"
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"bookstore-inventory/internal/model"
	"bookstore-inventory/internal/service/mocks"
)

func TestBookServiceGetBookByID(t *testing.T) {
	t.Parallel()

	type deps struct {
		bookRepo *mocks.MockBookRepository
	}

	bookID := gofakeit.UUID()
	wantBook := &model.Book{
		ID:       bookID,
		Title:    gofakeit.BookTitle(),
		Author:   gofakeit.BookAuthor(),
		Price:    19.99,
		Quantity: 7,
	}

	tests := []struct {
		name   string
		bookID string
		setup  func(d deps)
		assert func(t *testing.T, res *model.Book, err error, d deps)
	}{
		{
			name:   "empty id after trim",
			bookID: "   ",
			setup:  func(d deps) {},
			assert: func(t *testing.T, res *model.Book, err error, d deps) {
				require.Error(t, err)
				assert.ErrorIs(t, err, model.ErrNotFound)
				assert.Nil(t, res)

				d.bookRepo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
			},
		},
		{
			name:   "repository error",
			bookID: bookID,
			setup: func(d deps) {
				d.bookRepo.
					On("FindByID", mock.Anything, bookID).
					Return((*model.Book)(nil), errors.New("db read failed")).
					Once()
			},
			assert: func(t *testing.T, res *model.Book, err error, d deps) {
				require.Error(t, err)
				assert.ErrorContains(t, err, "db read failed")
				assert.Nil(t, res)
			},
		},
		{
			name:   "success: trims id and returns book",
			bookID: "  " + bookID + "  ",
			setup: func(d deps) {
				d.bookRepo.
					On("FindByID", mock.Anything, bookID).
					Return(wantBook, nil).
					Once()
			},
			assert: func(t *testing.T, res *model.Book, err error, d deps) {
				require.NoError(t, err)
				assert.Equal(t, wantBook, res)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			d := deps{bookRepo: mocks.NewMockBookRepository(t)}
			tt.setup(d)

			svc := NewBookService(d.bookRepo, nil)

			res, err := svc.GetBookByID(context.Background(), tt.bookID)
			tt.assert(t, res, err, d)
		})
	}
}

func TestBookServiceCreateBook(t *testing.T) {
	t.Parallel()

	type deps struct {
		bookRepo *mocks.MockBookRepository
	}

	tests := []struct {
		name   string
		req    *model.Book
		setup  func(d deps)
		assert func(t *testing.T, res *model.Book, err error, d deps)
	}{
		{
			name:  "validation error: missing title",
			req:   &model.Book{Price: 10, Quantity: 1},
			setup: func(d deps) {},
			assert: func(t *testing.T, res *model.Book, err error, d deps) {
				require.Error(t, err)
				assert.ErrorIs(t, err, model.ErrValidation)
				assert.Nil(t, res)

				d.bookRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
			},
		},
		{
			name:  "validation error: negative quantity",
			req:   &model.Book{Title: "Dune", Quantity: -1},
			setup: func(d deps) {},
			assert: func(t *testing.T, res *model.Book, err error, d deps) {
				require.Error(t, err)
				assert.ErrorIs(t, err, model.ErrValidation)

				d.bookRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
			},
		},
		{
			name: "duplicate id surfaces as conflict",
			req:  &model.Book{ID: "dup", Title: "Dune", Price: 12, Quantity: 3},
			setup: func(d deps) {
				d.bookRepo.
					On("Create", mock.Anything, mock.AnythingOfType("*model.Book")).
					Return(model.ErrConflict).
					Once()
			},
			assert: func(t *testing.T, res *model.Book, err error, d deps) {
				require.Error(t, err)
				assert.ErrorIs(t, err, model.ErrConflict)
				assert.Nil(t, res)
			},
		},
		{
			name: "success: generates id and timestamps",
			req:  &model.Book{Title: "Dune", Author: "Frank Herbert", Price: 12.5, Quantity: 3},
			setup: func(d deps) {
				d.bookRepo.
					On("Create", mock.Anything, mock.AnythingOfType("*model.Book")).
					Return(nil).
					Once()
			},
			assert: func(t *testing.T, res *model.Book, err error, d deps) {
				require.NoError(t, err)
				require.NotNil(t, res)
				assert.NotEmpty(t, res.ID)
				assert.False(t, res.CreatedAt.IsZero())
				assert.Equal(t, res.CreatedAt, res.UpdatedAt)
			},
		},
		{
			name: "success: caller-supplied id is kept",
			req:  &model.Book{ID: "isbn-as-id", Title: "Dune", Price: 12.5, Quantity: 3},
			setup: func(d deps) {
				d.bookRepo.
					On("Create", mock.Anything, mock.AnythingOfType("*model.Book")).
					Return(nil).
					Once()
			},
			assert: func(t *testing.T, res *model.Book, err error, d deps) {
				require.NoError(t, err)
				assert.Equal(t, "isbn-as-id", res.ID)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			d := deps{bookRepo: mocks.NewMockBookRepository(t)}
			tt.setup(d)

			svc := NewBookService(d.bookRepo, nil)

			res, err := svc.CreateBook(context.Background(), tt.req)
			tt.assert(t, res, err, d)
		})
	}
}

func TestBookServiceUpdateBook(t *testing.T) {
	t.Parallel()

	bookID := gofakeit.UUID()
	newTitle := "Dune Messiah"
	negativePrice := -1.0

	tests := []struct {
		name   string
		bookID string
		patch  model.BookPatch
		setup  func(d *mocks.MockBookRepository)
		assert func(t *testing.T, res *model.Book, err error, d *mocks.MockBookRepository)
	}{
		{
			name:   "empty patch rejected",
			bookID: bookID,
			patch:  model.BookPatch{},
			setup:  func(d *mocks.MockBookRepository) {},
			assert: func(t *testing.T, res *model.Book, err error, d *mocks.MockBookRepository) {
				require.Error(t, err)
				assert.ErrorIs(t, err, model.ErrValidation)

				d.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
			},
		},
		{
			name:   "negative price rejected",
			bookID: bookID,
			patch:  model.BookPatch{Price: &negativePrice},
			setup:  func(d *mocks.MockBookRepository) {},
			assert: func(t *testing.T, res *model.Book, err error, d *mocks.MockBookRepository) {
				require.Error(t, err)
				assert.ErrorIs(t, err, model.ErrValidation)
			},
		},
		{
			name:   "unknown id",
			bookID: bookID,
			patch:  model.BookPatch{Title: &newTitle},
			setup: func(d *mocks.MockBookRepository) {
				d.On("Update", mock.Anything, bookID, mock.Anything).
					Return((*model.Book)(nil), model.ErrNotFound).
					Once()
			},
			assert: func(t *testing.T, res *model.Book, err error, d *mocks.MockBookRepository) {
				require.Error(t, err)
				assert.ErrorIs(t, err, model.ErrNotFound)
			},
		},
		{
			name:   "success: partial update touches only given fields",
			bookID: bookID,
			patch:  model.BookPatch{Title: &newTitle},
			setup: func(d *mocks.MockBookRepository) {
				d.On("Update", mock.Anything, bookID, model.BookPatch{Title: &newTitle}).
					Return(&model.Book{ID: bookID, Title: newTitle, Quantity: 4}, nil).
					Once()
			},
			assert: func(t *testing.T, res *model.Book, err error, d *mocks.MockBookRepository) {
				require.NoError(t, err)
				assert.Equal(t, newTitle, res.Title)
				assert.Equal(t, 4, res.Quantity)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			repo := mocks.NewMockBookRepository(t)
			tt.setup(repo)

			svc := NewBookService(repo, nil)

			res, err := svc.UpdateBook(context.Background(), tt.bookID, tt.patch)
			tt.assert(t, res, err, repo)
		})
	}
}

func TestBookServiceDeleteBook(t *testing.T) {
	t.Parallel()

	bookID := gofakeit.UUID()

	t.Run("empty id", func(t *testing.T) {
		t.Parallel()

		repo := mocks.NewMockBookRepository(t)
		svc := NewBookService(repo, nil)

		err := svc.DeleteBook(context.Background(), "  ")
		assert.ErrorIs(t, err, model.ErrNotFound)
		repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("success", func(t *testing.T) {
		t.Parallel()

		repo := mocks.NewMockBookRepository(t)
		repo.On("Delete", mock.Anything, bookID).Return(nil).Once()
		svc := NewBookService(repo, nil)

		require.NoError(t, svc.DeleteBook(context.Background(), bookID))
	})
}
