package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale representa una venta registrada manualmente por el operador.
// Precio y tasa son snapshots del momento de la venta: cambios posteriores
// del producto o de la tasa no la alteran. Inmutable salvo anulación.
type Sale struct {
	ID           string
	ProductID    string
	Quantity     int
	PriceUsd     decimal.Decimal
	TotalUsd     decimal.Decimal // PriceUsd × Quantity
	ExchangeRate decimal.Decimal
	TotalVes     decimal.Decimal // TotalUsd × ExchangeRate
	Notes        string
	CreatedAt    time.Time
}
