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

type ExportService interface {
	CreateExport(ctx context.Context, req *model.WarehouseExport) (*model.WarehouseExport, error)
	GetAllExports(ctx context.Context) ([]model.WarehouseExport, error)
}

type exportService struct {
	exportRepo repository.WarehouseExportRepository
	bookRepo   repository.BookRepository
	userRepo   repository.UserRepository
	wsHub      *ws.Hub
}

func NewExportService(
	exportRepo repository.WarehouseExportRepository,
	bookRepo repository.BookRepository,
	userRepo repository.UserRepository,
	hub *ws.Hub,
) ExportService {
	return &exportService{
		exportRepo: exportRepo,
		bookRepo:   bookRepo,
		userRepo:   userRepo,
		wsHub:      hub,
	}
}

// CreateExport validates the transaction and decrements stock per line with
// a single conditional update each, so two concurrent exports can never both
// pass the sufficiency check on the same stock. Failures after the first
// applied line trigger best-effort compensation.
func (s *exportService) CreateExport(ctx context.Context, req *model.WarehouseExport) (*model.WarehouseExport, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("%w: %s", model.ErrValidation, validator.FirstMessage(errs))
	}

	if _, err := s.userRepo.FindByID(ctx, req.UserID); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, fmt.Errorf("%w: user %s does not exist", model.ErrValidation, req.UserID)
		}
		return nil, err
	}

	applied := make([]model.WarehouseExportBook, 0, len(req.Books))
	for i := range req.Books {
		line := &req.Books[i]

		book, err := s.bookRepo.FindByID(ctx, line.BookID)
		if err != nil {
			if errors.Is(err, model.ErrNotFound) {
				err = fmt.Errorf("%w: book %s does not exist", model.ErrValidation, line.BookID)
			}
			s.compensate(ctx, applied)
			return nil, err
		}

		// Record the unit price at transaction time when the caller left it
		// unset.
		if line.UnitPrice == 0 {
			line.UnitPrice = book.Price
		}

		if err := s.bookRepo.DecrementQuantityIfAvailable(ctx, line.BookID, line.Quantity); err != nil {
			if errors.Is(err, model.ErrInsufficientStock) {
				err = fmt.Errorf("%w: book %s has %d left, requested %d",
					model.ErrInsufficientStock, line.BookID, book.Quantity, line.Quantity)
			}
			s.compensate(ctx, applied)
			return nil, err
		}
		applied = append(applied, *line)
	}

	if req.ID == "" {
		req.ID = uuid.NewString()
	}
	if req.ExportDate.IsZero() {
		req.ExportDate = time.Now()
	}

	if err := s.exportRepo.Create(ctx, req); err != nil {
		s.compensate(ctx, applied)
		return nil, err
	}

	go s.wsHub.Publish(ws.Event{
		Type:    "stock_update",
		Action:  "export_created",
		Payload: req,
		Message: fmt.Sprintf("export %s applied %d line(s)", req.ID, len(req.Books)),
	})

	return req, nil
}

// compensate restores stock taken by already-applied export lines. Failures
// are logged, not returned.
func (s *exportService) compensate(ctx context.Context, applied []model.WarehouseExportBook) {
	for _, line := range applied {
		if err := s.bookRepo.IncrementQuantity(ctx, line.BookID, line.Quantity); err != nil {
			logger.Error("export compensation failed",
				logger.String("book_id", line.BookID),
				logger.Int("quantity", line.Quantity),
				logger.ErrorF(err),
			)
		}
	}
}

func (s *exportService) GetAllExports(ctx context.Context) ([]model.WarehouseExport, error) {
	return s.exportRepo.FindAll(ctx)
}
