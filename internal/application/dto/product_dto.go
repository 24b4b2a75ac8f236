package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto.
type CreateProductRequest struct {
	Name        string           `json:"name" validate:"required,min=1,max=200"`
	Description string           `json:"description"`
	PriceUsd    decimal.Decimal  `json:"price_usd"`
	OldPriceUsd *decimal.Decimal `json:"old_price_usd"`
	IsOffer     bool             `json:"is_offer"`
	Stock       int              `json:"stock"`
	Image       string           `json:"image"`
	CategoryID  string           `json:"category_id" validate:"required"`
}

// UpdateProductRequest entrada para actualizar un producto (campos opcionales).
// OldPriceUsd usa doble puntero implícito vía ClearOldPrice: enviar old_price_usd
// con valor lo fija; clear_old_price en true lo borra.
type UpdateProductRequest struct {
	Name          *string          `json:"name" validate:"omitempty,min=1,max=200"`
	Description   *string          `json:"description"`
	PriceUsd      *decimal.Decimal `json:"price_usd"`
	OldPriceUsd   *decimal.Decimal `json:"old_price_usd"`
	ClearOldPrice bool             `json:"clear_old_price"`
	IsOffer       *bool            `json:"is_offer"`
	Stock         *int             `json:"stock"`
	Image         *string          `json:"image"`
	CategoryID    *string          `json:"category_id"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID           string           `json:"id"`
	Name         string           `json:"name"`
	Description  string           `json:"description"`
	PriceUsd     decimal.Decimal  `json:"price_usd"`
	OldPriceUsd  *decimal.Decimal `json:"old_price_usd,omitempty"`
	IsOffer      bool             `json:"is_offer"`
	Stock        int              `json:"stock"`
	Image        string           `json:"image"`
	CategoryID   string           `json:"category_id"`
	CategoryName string           `json:"category_name,omitempty"`
	CreatedAt    time.Time        `json:"created_at"`
}
