package main

import (
	"context"
	"flag"
	"log"

	"golang.org/x/crypto/bcrypt"

	"bookstore-inventory/internal/config"
	"bookstore-inventory/internal/repository"
	"bookstore-inventory/pkg/database"
)

// Small operational tool: resets a user's password directly in the database.
// Useful when the admin account gets locked out.
func main() {
	username := flag.String("username", "admin", "username to reset")
	password := flag.String("password", "admin123", "new password")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.DBTimeout)
	defer cancel()

	client, db, err := database.Connect(ctx, cfg.MongoURI, cfg.MongoDatabase)
	if err != nil {
		log.Fatalf("connect mongodb: %v", err)
	}
	defer client.Disconnect(context.Background())

	userRepo := repository.NewUserRepo(db.Collection(database.UsersCollection))

	user, err := userRepo.FindByUsername(ctx, *username)
	if err != nil {
		log.Fatalf("user %s not found: %v", *username, err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(*password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("hash password: %v", err)
	}

	if err := userRepo.UpdatePassword(ctx, user.ID, string(hashed)); err != nil {
		log.Fatalf("update password: %v", err)
	}

	log.Printf("password for %s has been reset", *username)
}
