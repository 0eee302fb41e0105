package handler

import (
	"github.com/gofiber/fiber/v2"

	"bookstore-inventory/internal/model"
	"bookstore-inventory/internal/service"
)

type WarehouseHandler struct {
	importService service.ImportService
	exportService service.ExportService
}

func NewWarehouseHandler(importService service.ImportService, exportService service.ExportService) *WarehouseHandler {
	return &WarehouseHandler{
		importService: importService,
		exportService: exportService,
	}
}

// CreateImport records a stock-in transaction
// POST /api/imports
func (h *WarehouseHandler) CreateImport(c *fiber.Ctx) error {
	var req model.WarehouseImport
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid JSON"})
	}

	imp, err := h.importService.CreateImport(c.UserContext(), &req)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(imp)
}

// GetImports returns all import transactions
// GET /api/imports
func (h *WarehouseHandler) GetImports(c *fiber.Ctx) error {
	imports, err := h.importService.GetAllImports(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(imports)
}

// CreateExport records a stock-out transaction
// POST /api/warehouse-exports
func (h *WarehouseHandler) CreateExport(c *fiber.Ctx) error {
	var req model.WarehouseExport
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid JSON"})
	}

	exp, err := h.exportService.CreateExport(c.UserContext(), &req)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(exp)
}

// GetExports returns all export transactions
// GET /api/warehouse-exports
func (h *WarehouseHandler) GetExports(c *fiber.Ctx) error {
	exports, err := h.exportService.GetAllExports(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(exports)
}
