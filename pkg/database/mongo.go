package database

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"
)

// Collection names, one per entity.
const (
	BooksCollection            = "books"
	CategoriesCollection       = "categories"
	UsersCollection            = "users"
	WarehouseImportsCollection = "warehouse_imports"
	WarehouseExportsCollection = "warehouse_exports"
)

// Connect establishes the Mongo client and verifies the connection with a
// ping against the primary.
func Connect(ctx context.Context, uri, dbName string) (*mongo.Client, *mongo.Database, error) {
	const op = "database.Connect"

	client, err := mongo.Connect(options.Client().ApplyURI(uri))
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", op, err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return nil, nil, fmt.Errorf("%s ping: %w", op, err)
	}

	return client, client.Database(dbName), nil
}
