package repository

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"bookstore-inventory/internal/model"
)

type WarehouseExportRepository interface {
	Create(ctx context.Context, exp *model.WarehouseExport) error
	FindAll(ctx context.Context) ([]model.WarehouseExport, error)
}

type warehouseExportRepo struct {
	coll *mongo.Collection
}

func NewWarehouseExportRepo(coll *mongo.Collection) WarehouseExportRepository {
	return &warehouseExportRepo{coll: coll}
}

func (r *warehouseExportRepo) Create(ctx context.Context, exp *model.WarehouseExport) error {
	const op = "repository.warehouseExport.Create"

	if _, err := r.coll.InsertOne(ctx, exp); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (r *warehouseExportRepo) FindAll(ctx context.Context) ([]model.WarehouseExport, error) {
	const op = "repository.warehouseExport.FindAll"

	cur, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer cur.Close(ctx)

	out := make([]model.WarehouseExport, 0)
	if err := cur.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("%s decode: %w", op, err)
	}
	return out, nil
}
