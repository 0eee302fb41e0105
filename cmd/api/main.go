package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/google/uuid"

	"bookstore-inventory/internal/config"
	"bookstore-inventory/internal/handler"
	"bookstore-inventory/internal/middleware"
	"bookstore-inventory/internal/model"
	"bookstore-inventory/internal/repository"
	"bookstore-inventory/internal/service"
	"bookstore-inventory/internal/ws"
	"bookstore-inventory/pkg/database"
	"bookstore-inventory/pkg/logger"
)

func main() {
	// 1. Load config
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	if err := logger.Init(cfg.LogLevel, cfg.LogJSON); err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer logger.Sync()

	// 2. Connect MongoDB
	ctx, cancel := context.WithTimeout(context.Background(), cfg.DBTimeout)
	defer cancel()

	client, db, err := database.Connect(ctx, cfg.MongoURI, cfg.MongoDatabase)
	if err != nil {
		logger.Fatal("connect mongodb", logger.ErrorF(err))
	}
	logger.Info("connected to mongodb", logger.String("database", cfg.MongoDatabase))

	// 3. Repositories
	bookRepo := repository.NewBookRepo(db.Collection(database.BooksCollection))
	categoryRepo := repository.NewCategoryRepo(db.Collection(database.CategoriesCollection))
	userRepo := repository.NewUserRepo(db.Collection(database.UsersCollection))
	importRepo := repository.NewWarehouseImportRepo(db.Collection(database.WarehouseImportsCollection))
	exportRepo := repository.NewWarehouseExportRepo(db.Collection(database.WarehouseExportsCollection))

	if err := userRepo.EnsureIndexes(ctx); err != nil {
		logger.Fatal("ensure user indexes", logger.ErrorF(err))
	}

	// 4. Seed default admin and sample catalog
	seedAdmin(ctx, userRepo, cfg)
	seedCatalog(ctx, bookRepo, categoryRepo)

	// 5. WebSocket hub
	wsHub := ws.NewHub()
	go wsHub.Run()

	// 6. Services
	bookService := service.NewBookService(bookRepo, wsHub)
	categoryService := service.NewCategoryService(categoryRepo)
	authService := service.NewAuthService(userRepo)
	userService := service.NewUserService(userRepo)
	importService := service.NewImportService(importRepo, bookRepo, userRepo, wsHub)
	exportService := service.NewExportService(exportRepo, bookRepo, userRepo, wsHub)

	// 7. Handlers
	bookHandler := handler.NewBookHandler(bookService)
	categoryHandler := handler.NewCategoryHandler(categoryService)
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	warehouseHandler := handler.NewWarehouseHandler(importService, exportService)

	// 8. Fiber app
	app := fiber.New(fiber.Config{
		AppName: "Bookstore Inventory v1.0",
	})

	app.Use(fiberlogger.New())
	app.Use(recover.New())
	app.Use(cors.New())

	app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	// 9. Routes
	api := app.Group("/api")

	// ============ PUBLIC ROUTES ============
	auth := api.Group("/auth")
	auth.Post("/login", authHandler.Login)
	auth.Post("/register", authHandler.Register)

	// ============ PROTECTED ROUTES ============
	protected := api.Group("", middleware.RequireAuth(userRepo))

	// User management (policy enforced in the service via Principal)
	protected.Get("/auth", userHandler.GetUsers)
	protected.Post("/auth", userHandler.CreateUser)
	protected.Put("/auth/deactivate/:userId", userHandler.DeactivateUser)
	protected.Get("/auth/:userId", userHandler.GetUser)
	protected.Put("/auth/:userId", userHandler.UpdateUser)

	// Books
	protected.Get("/books", bookHandler.GetBooks)
	protected.Get("/books/:id", bookHandler.GetBook)
	protected.Post("/books", bookHandler.CreateBook)
	protected.Put("/books/:id", bookHandler.UpdateBook)
	protected.Delete("/books/:id", bookHandler.DeleteBook)

	// Categories
	protected.Get("/categories", categoryHandler.GetCategories)
	protected.Get("/categories/:id", categoryHandler.GetCategory)
	protected.Post("/categories", categoryHandler.CreateCategory)
	protected.Put("/categories/:id", categoryHandler.UpdateCategory)
	protected.Delete("/categories/:id", categoryHandler.DeleteCategory)

	// Warehouse transactions
	protected.Post("/imports", warehouseHandler.CreateImport)
	protected.Get("/imports", warehouseHandler.GetImports)
	protected.Post("/warehouse-exports", warehouseHandler.CreateExport)
	protected.Get("/warehouse-exports", warehouseHandler.GetExports)

	// WebSocket
	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return c.SendStatus(fiber.StatusUpgradeRequired)
	})
	app.Get("/ws", websocket.New(func(c *websocket.Conn) {
		wsHub.Register <- c
		defer func() { wsHub.Unregister <- c }()

		for {
			// Keep alive loop
			if _, _, err := c.ReadMessage(); err != nil {
				break
			}
		}
	}))

	// 10. Graceful shutdown
	go func() {
		if err := app.Listen(":" + cfg.Port); err != nil {
			logger.Fatal("listen", logger.ErrorF(err))
		}
	}()
	logger.Info("server started", logger.String("port", cfg.Port))

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server")
	if err := app.Shutdown(); err != nil {
		logger.Error("server shutdown", logger.ErrorF(err))
	}
	if err := client.Disconnect(context.Background()); err != nil {
		logger.Error("mongodb disconnect", logger.ErrorF(err))
	}
	logger.Info("server exited")
}

// seedAdmin creates the default administrator when no user with the
// configured username exists yet.
func seedAdmin(ctx context.Context, userRepo repository.UserRepository, cfg *config.Config) {
	if _, err := userRepo.FindByUsername(ctx, cfg.AdminUsername); err == nil {
		return
	}

	now := time.Now()
	admin := &model.User{
		ID:        uuid.NewString(),
		Username:  cfg.AdminUsername,
		FullName:  "Administrator",
		Role:      model.RoleAdministrator,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := admin.SetPassword(cfg.AdminPassword); err != nil {
		logger.Error("hash admin password", logger.ErrorF(err))
		return
	}
	if err := userRepo.Create(ctx, admin); err != nil {
		logger.Error("seed admin user", logger.ErrorF(err))
		return
	}
	logger.Info("admin user seeded", logger.String("username", cfg.AdminUsername))
}

// seedCatalog inserts a sample category and a couple of books on an empty
// catalog so a fresh install has something to work with.
func seedCatalog(ctx context.Context, bookRepo repository.BookRepository, categoryRepo repository.CategoryRepository) {
	books, err := bookRepo.FindAll(ctx)
	if err != nil {
		logger.Error("seed catalog lookup", logger.ErrorF(err))
		return
	}
	if len(books) > 0 {
		return
	}

	now := time.Now()
	category := &model.Category{
		ID:          uuid.NewString(),
		Name:        "Programming",
		Description: "Software development and computer science",
	}
	if err := categoryRepo.Create(ctx, category); err != nil {
		logger.Error("seed category", logger.ErrorF(err))
		return
	}

	seedBooks := []*model.Book{
		{
			ID:         uuid.NewString(),
			Title:      "The Pragmatic Programmer",
			Author:     "Andrew Hunt, David Thomas",
			ISBN:       "978-0135957059",
			Price:      49.99,
			Quantity:   25,
			CategoryID: category.ID,
			CreatedAt:  now,
			UpdatedAt:  now,
		},
		{
			ID:         uuid.NewString(),
			Title:      "Clean Code",
			Author:     "Robert C. Martin",
			ISBN:       "978-0132350884",
			Price:      44.50,
			Quantity:   18,
			CategoryID: category.ID,
			CreatedAt:  now,
			UpdatedAt:  now,
		},
	}
	for _, b := range seedBooks {
		if err := bookRepo.Create(ctx, b); err != nil {
			logger.Error("seed book", logger.String("title", b.Title), logger.ErrorF(err))
		}
	}
	logger.Info("catalog seeded", logger.Int("books", len(seedBooks)))
}
