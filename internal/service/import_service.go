package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"bookstore-inventory/internal/model"
	"bookstore-inventory/internal/repository"
	"bookstore-inventory/internal/ws"
	"bookstore-inventory/pkg/logger"
	"bookstore-inventory/pkg/validator"
)

type ImportService interface {
	CreateImport(ctx context.Context, req *model.WarehouseImport) (*model.WarehouseImport, error)
	GetAllImports(ctx context.Context) ([]model.WarehouseImport, error)
}

type importService struct {
	importRepo repository.WarehouseImportRepository
	bookRepo   repository.BookRepository
	userRepo   repository.UserRepository
	wsHub      *ws.Hub
}

func NewImportService(
	importRepo repository.WarehouseImportRepository,
	bookRepo repository.BookRepository,
	userRepo repository.UserRepository,
	hub *ws.Hub,
) ImportService {
	return &importService{
		importRepo: importRepo,
		bookRepo:   bookRepo,
		userRepo:   userRepo,
		wsHub:      hub,
	}
}

// CreateImport validates the transaction, applies each line's quantity to
// the referenced book, then persists the transaction document. A failure
// after stock has been touched triggers best-effort compensation of the
// already-applied lines before the error is returned.
func (s *importService) CreateImport(ctx context.Context, req *model.WarehouseImport) (*model.WarehouseImport, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("%w: %s", model.ErrValidation, validator.FirstMessage(errs))
	}

	if _, err := s.userRepo.FindByID(ctx, req.UserID); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, fmt.Errorf("%w: user %s does not exist", model.ErrValidation, req.UserID)
		}
		return nil, err
	}

	applied := make([]model.WarehouseImportBook, 0, len(req.Books))
	for _, line := range req.Books {
		if _, err := s.bookRepo.FindByID(ctx, line.BookID); err != nil {
			if errors.Is(err, model.ErrNotFound) {
				err = fmt.Errorf("%w: book %s does not exist", model.ErrValidation, line.BookID)
			}
			s.compensate(ctx, applied)
			return nil, err
		}

		if err := s.bookRepo.IncrementQuantity(ctx, line.BookID, line.Quantity); err != nil {
			s.compensate(ctx, applied)
			return nil, err
		}
		applied = append(applied, line)
	}

	if req.ID == "" {
		req.ID = uuid.NewString()
	}
	if req.ImportDate.IsZero() {
		req.ImportDate = time.Now()
	}

	if err := s.importRepo.Create(ctx, req); err != nil {
		s.compensate(ctx, applied)
		return nil, err
	}

	go s.wsHub.Publish(ws.Event{
		Type:    "stock_update",
		Action:  "import_created",
		Payload: req,
		Message: fmt.Sprintf("import %s applied %d line(s)", req.ID, len(req.Books)),
	})

	return req, nil
}

// compensate reverses already-applied line deltas. Failures are logged, not
// returned; the original error is the one the caller sees.
func (s *importService) compensate(ctx context.Context, applied []model.WarehouseImportBook) {
	for _, line := range applied {
		if err := s.bookRepo.IncrementQuantity(ctx, line.BookID, -line.Quantity); err != nil {
			logger.Error("import compensation failed",
				logger.String("book_id", line.BookID),
				logger.Int("quantity", line.Quantity),
				logger.ErrorF(err),
			)
		}
	}
}

func (s *importService) GetAllImports(ctx context.Context) ([]model.WarehouseImport, error) {
	return s.importRepo.FindAll(ctx)
}
