package handler

import (
	"github.com/gofiber/fiber/v2"

	"bookstore-inventory/internal/model"
	"bookstore-inventory/internal/service"
)

type BookHandler struct {
	bookService service.BookService
}

func NewBookHandler(bookService service.BookService) *BookHandler {
	return &BookHandler{bookService: bookService}
}

// GetBooks returns all books
// GET /api/books
func (h *BookHandler) GetBooks(c *fiber.Ctx) error {
	books, err := h.bookService.GetAllBooks(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(books)
}

// GetBook returns a single book by ID
// GET /api/books/:id
func (h *BookHandler) GetBook(c *fiber.Ctx) error {
	book, err := h.bookService.GetBookByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(book)
}

// CreateBook handles book creation
// POST /api/books
func (h *BookHandler) CreateBook(c *fiber.Ctx) error {
	var req model.Book
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid JSON"})
	}

	book, err := h.bookService.CreateBook(c.UserContext(), &req)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(book)
}

// UpdateBook applies a partial update
// PUT /api/books/:id
func (h *BookHandler) UpdateBook(c *fiber.Ctx) error {
	var patch model.BookPatch
	if err := c.BodyParser(&patch); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid JSON"})
	}

	book, err := h.bookService.UpdateBook(c.UserContext(), c.Params("id"), patch)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(book)
}

// DeleteBook removes a book
// DELETE /api/books/:id
func (h *BookHandler) DeleteBook(c *fiber.Ctx) error {
	if err := h.bookService.DeleteBook(c.UserContext(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
