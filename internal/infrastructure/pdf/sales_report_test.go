package pdf_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daianstore/tienda-api/internal/domain/entity"
	"github.com/daianstore/tienda-api/internal/domain/repository"
	"github.com/daianstore/tienda-api/internal/infrastructure/pdf"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

func buildVenta(productName string, qty int, priceUsd, rate int64) repository.SaleWithProduct {
	price := decimal.NewFromInt(priceUsd)
	totalUsd := price.Mul(decimal.NewFromInt(int64(qty)))
	return repository.SaleWithProduct{
		Sale: entity.Sale{
			ID:           "venta-" + productName,
			ProductID:    "prod-" + productName,
			Quantity:     qty,
			PriceUsd:     price,
			TotalUsd:     totalUsd,
			ExchangeRate: decimal.NewFromInt(rate),
			TotalVes:     totalUsd.Mul(decimal.NewFromInt(rate)),
			CreatedAt:    time.Date(2025, 3, 15, 10, 30, 0, 0, time.UTC),
		},
		ProductName: productName,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests de generación del reporte
// ──────────────────────────────────────────────────────────────────────────────

func TestSalesReport_GeneraPDFConVentas(t *testing.T) {
	gen := pdf.NewSalesReportGenerator("Daian Store")

	list := []repository.SaleWithProduct{
		buildVenta("Vestido Rojo", 2, 20, 50),
		buildVenta("Collar de Perlas", 1, 15, 50),
	}
	stats := &repository.SalesStats{
		TotalSales:      2,
		TotalRevenue:    decimal.NewFromInt(55),
		TotalRevenueVes: decimal.NewFromInt(2750),
		TodaySales:      1,
	}

	bytes, err := gen.SalesReport(context.Background(), list, stats)

	require.NoError(t, err)
	require.NotEmpty(t, bytes, "el reporte debe tener contenido")
	assert.Equal(t, "%PDF", string(bytes[:4]), "los bytes deben ser un documento PDF")
}

func TestSalesReport_SinVentasGeneraSoloEncabezados(t *testing.T) {
	gen := pdf.NewSalesReportGenerator("Daian Store")

	stats := &repository.SalesStats{
		TotalRevenue:    decimal.Zero,
		TotalRevenueVes: decimal.Zero,
	}

	bytes, err := gen.SalesReport(context.Background(), nil, stats)

	require.NoError(t, err)
	assert.NotEmpty(t, bytes)
}
