package model

import "time"

// WarehouseImport is a stock-in transaction: header plus an embedded,
// ordered list of line items. Line quantities are added to book stock.
type WarehouseImport struct {
	ID         string                `bson:"_id" json:"id"`
	ImportDate time.Time             `bson:"import_date" json:"import_date"`
	UserID     string                `bson:"user_id" json:"user_id" validate:"required"`
	Books      []WarehouseImportBook `bson:"books" json:"books" validate:"required,min=1,dive"`
}

type WarehouseImportBook struct {
	BookID   string `bson:"book_id" json:"book_id" validate:"required"`
	Quantity int    `bson:"quantity" json:"quantity" validate:"required,gt=0"`
}

// WarehouseExport is a stock-out transaction. Each line carries the unit
// price at the time of the transaction.
type WarehouseExport struct {
	ID         string                `bson:"_id" json:"id"`
	ExportDate time.Time             `bson:"export_date" json:"export_date"`
	UserID     string                `bson:"user_id" json:"user_id" validate:"required"`
	Books      []WarehouseExportBook `bson:"books" json:"books" validate:"required,min=1,dive"`
}

type WarehouseExportBook struct {
	BookID    string  `bson:"book_id" json:"book_id" validate:"required"`
	Quantity  int     `bson:"quantity" json:"quantity" validate:"required,gt=0"`
	UnitPrice float64 `bson:"unit_price" json:"unit_price" validate:"gte=0"`
}
