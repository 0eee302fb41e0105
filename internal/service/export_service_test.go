package service

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"bookstore-inventory/internal/model"
	"bookstore-inventory/internal/repository"
	"bookstore-inventory/internal/service/mocks"
)

func TestExportServiceCreateExport(t *testing.T) {
	t.Parallel()

	type deps struct {
		exportRepo *mocks.MockWarehouseExportRepository
		bookRepo   *mocks.MockBookRepository
		userRepo   *mocks.MockUserRepository
	}

	userID := gofakeit.UUID()
	keeper := &model.User{ID: userID, Username: "keeper", Role: model.RoleWarehouseKeeper, IsActive: true}
	book1 := &model.Book{ID: gofakeit.UUID(), Title: "Dune", Price: 12.5, Quantity: 20}
	book2 := &model.Book{ID: gofakeit.UUID(), Title: "Hyperion", Price: 9.0, Quantity: 8}

	tests := []struct {
		name   string
		req    *model.WarehouseExport
		setup  func(d deps)
		assert func(t *testing.T, res *model.WarehouseExport, err error, d deps)
	}{
		{
			name:  "validation error: no lines",
			req:   &model.WarehouseExport{UserID: userID},
			setup: func(d deps) {},
			assert: func(t *testing.T, res *model.WarehouseExport, err error, d deps) {
				assert.ErrorIs(t, err, model.ErrValidation)
				assert.Nil(t, res)
			},
		},
		{
			name: "insufficient stock: no export is recorded",
			req: &model.WarehouseExport{
				UserID: userID,
				Books:  []model.WarehouseExportBook{{BookID: book1.ID, Quantity: 25}},
			},
			setup: func(d deps) {
				d.userRepo.On("FindByID", mock.Anything, userID).Return(keeper, nil).Once()
				d.bookRepo.On("FindByID", mock.Anything, book1.ID).Return(book1, nil).Once()
				d.bookRepo.On("DecrementQuantityIfAvailable", mock.Anything, book1.ID, 25).
					Return(model.ErrInsufficientStock).
					Once()
			},
			assert: func(t *testing.T, res *model.WarehouseExport, err error, d deps) {
				require.Error(t, err)
				assert.ErrorIs(t, err, model.ErrInsufficientStock)
				assert.ErrorContains(t, err, "has 20 left, requested 25")
				assert.Nil(t, res)

				d.exportRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
			},
		},
		{
			name: "unknown book mid-sequence: earlier lines are restored",
			req: &model.WarehouseExport{
				UserID: userID,
				Books: []model.WarehouseExportBook{
					{BookID: book1.ID, Quantity: 4},
					{BookID: "missing-book", Quantity: 1},
				},
			},
			setup: func(d deps) {
				d.userRepo.On("FindByID", mock.Anything, userID).Return(keeper, nil).Once()
				d.bookRepo.On("FindByID", mock.Anything, book1.ID).Return(book1, nil).Once()
				d.bookRepo.On("DecrementQuantityIfAvailable", mock.Anything, book1.ID, 4).Return(nil).Once()
				d.bookRepo.On("FindByID", mock.Anything, "missing-book").
					Return((*model.Book)(nil), model.ErrNotFound).
					Once()
				// Compensation puts the stock back.
				d.bookRepo.On("IncrementQuantity", mock.Anything, book1.ID, 4).Return(nil).Once()
			},
			assert: func(t *testing.T, res *model.WarehouseExport, err error, d deps) {
				require.Error(t, err)
				assert.ErrorIs(t, err, model.ErrValidation)

				d.exportRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
			},
		},
		{
			name: "unit price defaults to the book price at transaction time",
			req: &model.WarehouseExport{
				UserID: userID,
				Books: []model.WarehouseExportBook{
					{BookID: book1.ID, Quantity: 2},
					{BookID: book2.ID, Quantity: 1, UnitPrice: 7.5},
				},
			},
			setup: func(d deps) {
				d.userRepo.On("FindByID", mock.Anything, userID).Return(keeper, nil).Once()
				d.bookRepo.On("FindByID", mock.Anything, book1.ID).Return(book1, nil).Once()
				d.bookRepo.On("DecrementQuantityIfAvailable", mock.Anything, book1.ID, 2).Return(nil).Once()
				d.bookRepo.On("FindByID", mock.Anything, book2.ID).Return(book2, nil).Once()
				d.bookRepo.On("DecrementQuantityIfAvailable", mock.Anything, book2.ID, 1).Return(nil).Once()
				d.exportRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.WarehouseExport")).
					Return(nil).
					Once()
			},
			assert: func(t *testing.T, res *model.WarehouseExport, err error, d deps) {
				require.NoError(t, err)
				require.NotNil(t, res)
				assert.NotEmpty(t, res.ID)
				assert.False(t, res.ExportDate.IsZero())
				assert.Equal(t, book1.Price, res.Books[0].UnitPrice)
				// Caller-supplied price wins.
				assert.Equal(t, 7.5, res.Books[1].UnitPrice)
			},
		},
		{
			name: "header insert failure restores stock",
			req: &model.WarehouseExport{
				UserID: userID,
				Books:  []model.WarehouseExportBook{{BookID: book1.ID, Quantity: 3}},
			},
			setup: func(d deps) {
				d.userRepo.On("FindByID", mock.Anything, userID).Return(keeper, nil).Once()
				d.bookRepo.On("FindByID", mock.Anything, book1.ID).Return(book1, nil).Once()
				d.bookRepo.On("DecrementQuantityIfAvailable", mock.Anything, book1.ID, 3).Return(nil).Once()
				d.exportRepo.On("Create", mock.Anything, mock.Anything).
					Return(errors.New("db write failed")).
					Once()
				d.bookRepo.On("IncrementQuantity", mock.Anything, book1.ID, 3).Return(nil).Once()
			},
			assert: func(t *testing.T, res *model.WarehouseExport, err error, d deps) {
				require.Error(t, err)
				assert.ErrorContains(t, err, "db write failed")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			d := deps{
				exportRepo: mocks.NewMockWarehouseExportRepository(t),
				bookRepo:   mocks.NewMockBookRepository(t),
				userRepo:   mocks.NewMockUserRepository(t),
			}
			tt.setup(d)

			svc := NewExportService(d.exportRepo, d.bookRepo, d.userRepo, nil)

			res, err := svc.CreateExport(context.Background(), tt.req)
			tt.assert(t, res, err, d)
		})
	}
}

// stockBookRepo is an in-memory BookRepository with the same conditional
// decrement semantics as the Mongo implementation. It exists to exercise the
// oversell guard under real concurrency.
type stockBookRepo struct {
	mu    sync.Mutex
	books map[string]*model.Book
}

var _ repository.BookRepository = (*stockBookRepo)(nil)

func (r *stockBookRepo) FindAll(ctx context.Context) ([]model.Book, error) {
	return nil, errors.New("not implemented")
}

func (r *stockBookRepo) FindByID(ctx context.Context, id string) (*model.Book, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.books[id]
	if !ok {
		return nil, model.ErrNotFound
	}
	cp := *b
	return &cp, nil
}

func (r *stockBookRepo) Create(ctx context.Context, book *model.Book) error {
	return errors.New("not implemented")
}

func (r *stockBookRepo) Update(ctx context.Context, id string, patch model.BookPatch) (*model.Book, error) {
	return nil, errors.New("not implemented")
}

func (r *stockBookRepo) Delete(ctx context.Context, id string) error {
	return errors.New("not implemented")
}

func (r *stockBookRepo) IncrementQuantity(ctx context.Context, id string, delta int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.books[id]
	if !ok {
		return model.ErrNotFound
	}
	b.Quantity += delta
	return nil
}

func (r *stockBookRepo) DecrementQuantityIfAvailable(ctx context.Context, id string, qty int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.books[id]
	if !ok || b.Quantity < qty {
		return model.ErrInsufficientStock
	}
	b.Quantity -= qty
	return nil
}

func TestExportServiceConcurrentExportsNeverOversell(t *testing.T) {
	t.Parallel()

	userID := gofakeit.UUID()
	keeper := &model.User{ID: userID, Username: "keeper", Role: model.RoleWarehouseKeeper, IsActive: true}
	bookID := gofakeit.UUID()

	bookRepo := &stockBookRepo{
		books: map[string]*model.Book{
			bookID: {ID: bookID, Title: "Dune", Price: 12.5, Quantity: 20},
		},
	}

	userRepo := mocks.NewMockUserRepository(t)
	userRepo.On("FindByID", mock.Anything, userID).Return(keeper, nil).Twice()

	exportRepo := mocks.NewMockWarehouseExportRepository(t)
	exportRepo.On("Create", mock.Anything, mock.Anything).Return(nil).Once()

	svc := NewExportService(exportRepo, bookRepo, userRepo, nil)

	// Two exports of 15 against a stock of 20: exactly one may win.
	var wg sync.WaitGroup
	results := make([]error, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, results[i] = svc.CreateExport(context.Background(), &model.WarehouseExport{
				UserID: userID,
				Books:  []model.WarehouseExportBook{{BookID: bookID, Quantity: 15}},
			})
		}(i)
	}
	wg.Wait()

	var succeeded, insufficient int
	for _, err := range results {
		switch {
		case err == nil:
			succeeded++
		case errors.Is(err, model.ErrInsufficientStock):
			insufficient++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	assert.Equal(t, 1, succeeded)
	assert.Equal(t, 1, insufficient)

	book, err := bookRepo.FindByID(context.Background(), bookID)
	require.NoError(t, err)
	assert.Equal(t, 5, book.Quantity)
}

func TestExportServiceGetAllExports(t *testing.T) {
	t.Parallel()

	exportRepo := mocks.NewMockWarehouseExportRepository(t)
	want := []model.WarehouseExport{{ID: gofakeit.UUID(), UserID: gofakeit.UUID()}}
	exportRepo.On("FindAll", mock.Anything).Return(want, nil).Once()

	svc := NewExportService(exportRepo, mocks.NewMockBookRepository(t), mocks.NewMockUserRepository(t), nil)

	got, err := svc.GetAllExports(context.Background())
	require.NoError(t, err)
	assert.Equal(t, want, got)
}
