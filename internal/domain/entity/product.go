package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del catálogo de la tienda.
// Stock solo lo mutan el libro de ventas (descuento al vender, reposición al anular)
// o la edición directa del administrador; después de cada operación de ventas debe
// cumplirse stock >= 0.
type Product struct {
	ID          string
	Name        string
	Description string
	PriceUsd    decimal.Decimal
	OldPriceUsd *decimal.Decimal // precio "antes" informativo; nil si no aplica
	IsOffer     bool
	Stock       int
	Image       string
	CategoryID  string
	CreatedAt   time.Time
}
