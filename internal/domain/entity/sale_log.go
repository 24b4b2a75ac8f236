package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaleLog registra la intención de compra de un visitante antes del handoff a
// WhatsApp. Es auditoría pura: append-only, sin FK al producto (el registro
// sobrevive aunque el producto se borre) y nunca toca stock.
type SaleLog struct {
	ID                 string
	ProductName        string
	PriceUsdAtMoment   decimal.Decimal
	ExchangeRate       decimal.Decimal
	PriceVesCalculated decimal.Decimal
	CreatedAt          time.Time
}
