package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateSaleRequest entrada para registrar una venta manual.
// PriceUsd y ExchangeRate son los valores vigentes al momento (snapshot).
type CreateSaleRequest struct {
	ProductID    string          `json:"product_id" validate:"required"`
	Quantity     int             `json:"quantity" validate:"required,min=1"`
	PriceUsd     decimal.Decimal `json:"price_usd"`
	ExchangeRate decimal.Decimal `json:"exchange_rate"`
	Notes        string          `json:"notes"`
}

// SaleResponse salida de una venta.
type SaleResponse struct {
	ID           string          `json:"id"`
	ProductID    string          `json:"product_id"`
	ProductName  string          `json:"product_name,omitempty"`
	Quantity     int             `json:"quantity"`
	PriceUsd     decimal.Decimal `json:"price_usd"`
	TotalUsd     decimal.Decimal `json:"total_usd"`
	ExchangeRate decimal.Decimal `json:"exchange_rate"`
	TotalVes     decimal.Decimal `json:"total_ves"`
	Notes        string          `json:"notes,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
}

// SalesStatsResponse agregados del libro de ventas.
type SalesStatsResponse struct {
	TotalSales      int             `json:"total_sales"`
	TotalRevenue    decimal.Decimal `json:"total_revenue"`
	TotalRevenueVes decimal.Decimal `json:"total_revenue_ves"`
	TodaySales      int             `json:"today_sales"`
}

// SaleIntentRequest entrada cuando un visitante inicia una consulta de compra.
type SaleIntentRequest struct {
	ProductID    string          `json:"product_id"`
	ProductName  string          `json:"product_name" validate:"required"`
	PriceUsd     decimal.Decimal `json:"price_usd"`
	ExchangeRate decimal.Decimal `json:"exchange_rate"`
}

// SaleIntentResponse deep link de WhatsApp con el resumen del pedido.
type SaleIntentResponse struct {
	WhatsAppURL string `json:"whatsapp_url"`
}

// SaleIntentLogResponse registro de intención de compra para el panel admin.
type SaleIntentLogResponse struct {
	ID                 string          `json:"id"`
	ProductName        string          `json:"product_name"`
	PriceUsdAtMoment   decimal.Decimal `json:"price_usd_at_moment"`
	ExchangeRate       decimal.Decimal `json:"exchange_rate"`
	PriceVesCalculated decimal.Decimal `json:"price_ves_calculated"`
	CreatedAt          time.Time       `json:"created_at"`
}
