// Package pricing expone la tasa de cambio USD/VES y la conversión de
// precios del catálogo. Toda la tienda publica precios en USD; el monto
// en bolívares es siempre derivado, nunca almacenado.
package pricing

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/daianstore/tienda-api/internal/application/dto"
)

// RateProvider puerto del cliente de tasa de cambio. Nunca devuelve error:
// ante cualquier fallo del agregador entrega la tasa sustituta.
type RateProvider interface {
	Current(ctx context.Context) *dto.ExchangeRateResponse
}

// RateUseCase tasa de cambio y conversión USD -> VES.
type RateUseCase struct {
	provider RateProvider
}

// NewRateUseCase construye el caso de uso.
func NewRateUseCase(provider RateProvider) *RateUseCase {
	return &RateUseCase{provider: provider}
}

// GetExchangeRate devuelve la tasa vigente (cacheada por el proveedor).
func (uc *RateUseCase) GetExchangeRate(ctx context.Context) *dto.ExchangeRateResponse {
	return uc.provider.Current(ctx)
}

// ConvertUsdToVes convierte un monto USD a bolívares con la tasa promedio vigente.
func (uc *RateUseCase) ConvertUsdToVes(ctx context.Context, usd decimal.Decimal) decimal.Decimal {
	rate := uc.provider.Current(ctx)
	return usd.Mul(rate.Promedio)
}
