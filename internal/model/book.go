package model

import "time"

type Book struct {
	ID         string    `bson:"_id" json:"id"`
	Title      string    `bson:"title" json:"title" validate:"required"`
	Author     string    `bson:"author" json:"author"`
	ISBN       string    `bson:"isbn,omitempty" json:"isbn,omitempty"`
	Price      float64   `bson:"price" json:"price" validate:"gte=0"`
	Quantity   int       `bson:"quantity" json:"quantity" validate:"gte=0"`
	CategoryID string    `bson:"category_id,omitempty" json:"category_id,omitempty"` // soft reference, never validated against categories
	CreatedAt  time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt  time.Time `bson:"updated_at" json:"updated_at"`
}

// BookPatch carries a partial update; nil fields are left untouched.
// Quantity is absent on purpose: stock moves only through warehouse
// import/export transactions.
type BookPatch struct {
	Title      *string  `json:"title"`
	Author     *string  `json:"author"`
	ISBN       *string  `json:"isbn"`
	Price      *float64 `json:"price" validate:"omitempty,gte=0"`
	CategoryID *string  `json:"category_id"`
}

func (p BookPatch) Empty() bool {
	return p.Title == nil && p.Author == nil && p.ISBN == nil &&
		p.Price == nil && p.CategoryID == nil
}
