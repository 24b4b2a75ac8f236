package dto

import "github.com/shopspring/decimal"

// ExchangeRateResponse tasa BCV tal como la expone DolarApi
// (campos en español, contrato del agregador).
type ExchangeRateResponse struct {
	Compra             decimal.Decimal `json:"compra"`
	Venta              decimal.Decimal `json:"venta"`
	Promedio           decimal.Decimal `json:"promedio"`
	FechaActualizacion string          `json:"fechaActualizacion"`
}
