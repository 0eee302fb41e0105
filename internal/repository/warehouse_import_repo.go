package repository

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"bookstore-inventory/internal/model"
)

type WarehouseImportRepository interface {
	Create(ctx context.Context, imp *model.WarehouseImport) error
	FindAll(ctx context.Context) ([]model.WarehouseImport, error)
}

type warehouseImportRepo struct {
	coll *mongo.Collection
}

func NewWarehouseImportRepo(coll *mongo.Collection) WarehouseImportRepository {
	return &warehouseImportRepo{coll: coll}
}

func (r *warehouseImportRepo) Create(ctx context.Context, imp *model.WarehouseImport) error {
	const op = "repository.warehouseImport.Create"

	if _, err := r.coll.InsertOne(ctx, imp); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (r *warehouseImportRepo) FindAll(ctx context.Context) ([]model.WarehouseImport, error) {
	const op = "repository.warehouseImport.FindAll"

	cur, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer cur.Close(ctx)

	out := make([]model.WarehouseImport, 0)
	if err := cur.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("%s decode: %w", op, err)
	}
	return out, nil
}
