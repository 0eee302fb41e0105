package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"bookstore-inventory/internal/model"
	"bookstore-inventory/internal/repository"
	"bookstore-inventory/internal/ws"
	"bookstore-inventory/pkg/validator"
)

type BookService interface {
	GetAllBooks(ctx context.Context) ([]model.Book, error)
	GetBookByID(ctx context.Context, id string) (*model.Book, error)
	CreateBook(ctx context.Context, req *model.Book) (*model.Book, error)
	UpdateBook(ctx context.Context, id string, patch model.BookPatch) (*model.Book, error)
	DeleteBook(ctx context.Context, id string) error
}

type bookService struct {
	bookRepo repository.BookRepository
	wsHub    *ws.Hub
}

func NewBookService(bookRepo repository.BookRepository, hub *ws.Hub) BookService {
	return &bookService{bookRepo: bookRepo, wsHub: hub}
}

func (s *bookService) GetAllBooks(ctx context.Context) ([]model.Book, error) {
	return s.bookRepo.FindAll(ctx)
}

func (s *bookService) GetBookByID(ctx context.Context, id string) (*model.Book, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, model.ErrNotFound
	}
	return s.bookRepo.FindByID(ctx, id)
}

func (s *bookService) CreateBook(ctx context.Context, req *model.Book) (*model.Book, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("%w: %s", model.ErrValidation, validator.FirstMessage(errs))
	}

	// Caller-supplied ids are kept; otherwise the store id is generated here.
	if req.ID == "" {
		req.ID = uuid.NewString()
	}
	now := time.Now()
	req.CreatedAt = now
	req.UpdatedAt = now

	// category_id is a soft reference and is not checked against categories.
	if err := s.bookRepo.Create(ctx, req); err != nil {
		return nil, err
	}

	go s.wsHub.Publish(ws.Event{
		Type:    "stock_update",
		Action:  "book_created",
		Payload: req,
		Message: fmt.Sprintf("book '%s' created with quantity %d", req.Title, req.Quantity),
	})

	return req, nil
}

func (s *bookService) UpdateBook(ctx context.Context, id string, patch model.BookPatch) (*model.Book, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, model.ErrNotFound
	}
	if patch.Empty() {
		return nil, fmt.Errorf("%w: empty patch", model.ErrValidation)
	}
	if errs := validator.ValidateStruct(patch); len(errs) > 0 {
		return nil, fmt.Errorf("%w: %s", model.ErrValidation, validator.FirstMessage(errs))
	}

	return s.bookRepo.Update(ctx, id, patch)
}

func (s *bookService) DeleteBook(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return model.ErrNotFound
	}
	return s.bookRepo.Delete(ctx, id)
}
