package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"bookstore-inventory/internal/model"
)

type BookRepository interface {
	FindAll(ctx context.Context) ([]model.Book, error)
	FindByID(ctx context.Context, id string) (*model.Book, error)
	Create(ctx context.Context, book *model.Book) error
	Update(ctx context.Context, id string, patch model.BookPatch) (*model.Book, error)
	Delete(ctx context.Context, id string) error
	// IncrementQuantity applies a signed stock delta unconditionally.
	IncrementQuantity(ctx context.Context, id string, delta int) error
	// DecrementQuantityIfAvailable decrements stock only when the current
	// quantity covers qty, in a single conditional update. Zero matched
	// documents means insufficient stock.
	DecrementQuantityIfAvailable(ctx context.Context, id string, qty int) error
}

type bookRepo struct {
	coll *mongo.Collection
}

func NewBookRepo(coll *mongo.Collection) BookRepository {
	return &bookRepo{coll: coll}
}

func (r *bookRepo) FindAll(ctx context.Context) ([]model.Book, error) {
	const op = "repository.book.FindAll"

	cur, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer cur.Close(ctx)

	out := make([]model.Book, 0)
	if err := cur.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("%s decode: %w", op, err)
	}
	return out, nil
}

func (r *bookRepo) FindByID(ctx context.Context, id string) (*model.Book, error) {
	const op = "repository.book.FindByID"

	var book model.Book
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&book)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, model.ErrNotFound
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &book, nil
}

func (r *bookRepo) Create(ctx context.Context, book *model.Book) error {
	const op = "repository.book.Create"

	if _, err := r.coll.InsertOne(ctx, book); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return model.ErrConflict
		}
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (r *bookRepo) Update(ctx context.Context, id string, patch model.BookPatch) (*model.Book, error) {
	const op = "repository.book.Update"

	set := bson.M{"updated_at": time.Now()}
	if patch.Title != nil {
		set["title"] = *patch.Title
	}
	if patch.Author != nil {
		set["author"] = *patch.Author
	}
	if patch.ISBN != nil {
		set["isbn"] = *patch.ISBN
	}
	if patch.Price != nil {
		set["price"] = *patch.Price
	}
	if patch.CategoryID != nil {
		set["category_id"] = *patch.CategoryID
	}

	var book model.Book
	err := r.coll.FindOneAndUpdate(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&book)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, model.ErrNotFound
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &book, nil
}

func (r *bookRepo) Delete(ctx context.Context, id string) error {
	const op = "repository.book.Delete"

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if res.DeletedCount == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (r *bookRepo) IncrementQuantity(ctx context.Context, id string, delta int) error {
	const op = "repository.book.IncrementQuantity"

	res, err := r.coll.UpdateOne(
		ctx,
		bson.M{"_id": id},
		bson.M{
			"$inc": bson.M{"quantity": delta},
			"$set": bson.M{"updated_at": time.Now()},
		},
	)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if res.MatchedCount == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (r *bookRepo) DecrementQuantityIfAvailable(ctx context.Context, id string, qty int) error {
	const op = "repository.book.DecrementQuantityIfAvailable"

	res, err := r.coll.UpdateOne(
		ctx,
		bson.M{"_id": id, "quantity": bson.M{"$gte": qty}},
		bson.M{
			"$inc": bson.M{"quantity": -qty},
			"$set": bson.M{"updated_at": time.Now()},
		},
	)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	// The caller has already resolved the book, so a zero match means the
	// stock guard failed (or the book vanished in between, which reads the
	// same to the client).
	if res.MatchedCount == 0 {
		return model.ErrInsufficientStock
	}
	return nil
}
