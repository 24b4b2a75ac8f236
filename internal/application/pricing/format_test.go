package pricing_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/daianstore/tienda-api/internal/application/dto"
	"github.com/daianstore/tienda-api/internal/application/pricing"
)

// ──────────────────────────────────────────────────────────────────────────────
// Tests de formato por locale
// ──────────────────────────────────────────────────────────────────────────────

func TestFormatVes_ConvencionVenezolana(t *testing.T) {
	cases := []struct {
		name  string
		input int64
		want  string
	}{
		{name: "miles con punto y coma decimal", input: 3000, want: "3.000,00"},
		{name: "sin miles", input: 50, want: "50,00"},
		{name: "millones", input: 1250000, want: "1.250.000,00"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, pricing.FormatVes(decimal.NewFromInt(tc.input)))
		})
	}
}

func TestFormatVes_Decimales(t *testing.T) {
	assert.Equal(t, "1.234,56", pricing.FormatVes(decimal.NewFromFloat(1234.56)))
}

func TestFormatUsd_ConvencionAmericana(t *testing.T) {
	assert.Equal(t, "$20.00", pricing.FormatUsd(decimal.NewFromInt(20)))
	assert.Equal(t, "$1,250.99", pricing.FormatUsd(decimal.NewFromFloat(1250.99)))
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests de conversión
// ──────────────────────────────────────────────────────────────────────────────

type fixedRateProvider struct {
	rate decimal.Decimal
}

func (p *fixedRateProvider) Current(_ context.Context) *dto.ExchangeRateResponse {
	return &dto.ExchangeRateResponse{
		Compra:   p.rate,
		Venta:    p.rate,
		Promedio: p.rate,
	}
}

func TestConvertUsdToVes(t *testing.T) {
	uc := pricing.NewRateUseCase(&fixedRateProvider{rate: decimal.NewFromInt(50)})

	got := uc.ConvertUsdToVes(context.Background(), decimal.NewFromInt(20))
	assert.True(t, decimal.NewFromInt(1000).Equal(got), "20 USD × 50 = 1000 VES")
}

func TestGetExchangeRate_PasaLaTasaDelProveedor(t *testing.T) {
	rate := decimal.NewFromFloat(36.5)
	uc := pricing.NewRateUseCase(&fixedRateProvider{rate: rate})

	out := uc.GetExchangeRate(context.Background())
	assert.True(t, rate.Equal(out.Promedio))
}
