package sales

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/daianstore/tienda-api/internal/application/dto"
	"github.com/daianstore/tienda-api/internal/domain"
	"github.com/daianstore/tienda-api/internal/domain/entity"
	"github.com/daianstore/tienda-api/internal/domain/repository"
)

// ReportGenerator genera el PDF del reporte de ventas para el panel admin.
type ReportGenerator interface {
	SalesReport(ctx context.Context, sales []repository.SaleWithProduct, stats *repository.SalesStats) ([]byte, error)
}

// SaleUseCase libro de ventas manual: registrar, anular, listar, estadísticas,
// registro de intenciones de compra y reporte PDF.
type SaleUseCase struct {
	txRunner      TxRunner
	saleRepo      repository.SaleRepository
	saleLogRepo   repository.SaleLogRepository
	reportGen     ReportGenerator
	whatsAppPhone string
}

// NewSaleUseCase construye el caso de uso.
func NewSaleUseCase(
	txRunner TxRunner,
	saleRepo repository.SaleRepository,
	saleLogRepo repository.SaleLogRepository,
	reportGen ReportGenerator,
	whatsAppPhone string,
) *SaleUseCase {
	return &SaleUseCase{
		txRunner:      txRunner,
		saleRepo:      saleRepo,
		saleLogRepo:   saleLogRepo,
		reportGen:     reportGen,
		whatsAppPhone: whatsAppPhone,
	}
}

// CreateSale registra una venta y descuenta stock en una sola transacción.
// El descuento es un UPDATE condicional (stock >= cantidad): si no afecta filas,
// se relee el producto para distinguir "no existe" de "stock corto". Ambas
// escrituras confirman juntas o ninguna.
func (uc *SaleUseCase) CreateSale(ctx context.Context, in dto.CreateSaleRequest) (*dto.SaleResponse, error) {
	if in.Quantity < 1 {
		return nil, domain.ErrInvalidInput
	}
	if in.PriceUsd.LessThanOrEqual(decimal.Zero) || in.ExchangeRate.LessThanOrEqual(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}

	totalUsd := in.PriceUsd.Mul(decimal.NewFromInt(int64(in.Quantity)))
	totalVes := totalUsd.Mul(in.ExchangeRate)

	sale := &entity.Sale{
		ID:           uuid.New().String(),
		ProductID:    in.ProductID,
		Quantity:     in.Quantity,
		PriceUsd:     in.PriceUsd,
		TotalUsd:     totalUsd,
		ExchangeRate: in.ExchangeRate,
		TotalVes:     totalVes,
		Notes:        in.Notes,
		CreatedAt:    time.Now(),
	}

	err := uc.txRunner.Run(ctx, func(
		saleRepo repository.SaleRepository,
		productRepo repository.ProductRepository,
	) error {
		ok, err := productRepo.DecrementStock(ctx, in.ProductID, in.Quantity)
		if err != nil {
			return err
		}
		if !ok {
			product, err := productRepo.GetByID(ctx, in.ProductID)
			if err != nil {
				return err
			}
			if product == nil {
				return domain.ErrProductNotFound
			}
			return &domain.InsufficientStockError{Available: product.Stock}
		}
		return saleRepo.Create(ctx, sale)
	})
	if err != nil {
		return nil, err
	}

	return toSaleResponse(sale, ""), nil
}

// DeleteSale anula una venta: elimina la fila y repone el stock descontado,
// en una sola transacción. Inverso exacto de CreateSale.
func (uc *SaleUseCase) DeleteSale(ctx context.Context, id string) error {
	return uc.txRunner.Run(ctx, func(
		saleRepo repository.SaleRepository,
		productRepo repository.ProductRepository,
	) error {
		sale, err := saleRepo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if sale == nil {
			return domain.ErrSaleNotFound
		}
		if err := saleRepo.Delete(ctx, id); err != nil {
			return err
		}
		return productRepo.IncrementStock(ctx, sale.ProductID, sale.Quantity)
	})
}

// ListSales lista las ventas con el nombre del producto, más recientes primero.
func (uc *SaleUseCase) ListSales(ctx context.Context) ([]dto.SaleResponse, error) {
	list, err := uc.saleRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.SaleResponse, 0, len(list))
	for _, item := range list {
		out = append(out, *toSaleResponse(&item.Sale, item.ProductName))
	}
	return out, nil
}

// GetSalesStats agrega todas las ventas; "hoy" cuenta desde la medianoche local.
func (uc *SaleUseCase) GetSalesStats(ctx context.Context) (*dto.SalesStatsResponse, error) {
	stats, err := uc.saleRepo.Stats(ctx, localMidnight(time.Now()))
	if err != nil {
		return nil, err
	}
	return &dto.SalesStatsResponse{
		TotalSales:      stats.TotalSales,
		TotalRevenue:    stats.TotalRevenue,
		TotalRevenueVes: stats.TotalRevenueVes,
		TodaySales:      stats.TodaySales,
	}, nil
}

// LogSaleIntent registra la intención de compra de un visitante y devuelve el
// deep link de WhatsApp con el resumen del pedido. El registro es de auditoría:
// no toca stock ni exige que el producto siga existiendo.
func (uc *SaleUseCase) LogSaleIntent(ctx context.Context, in dto.SaleIntentRequest) (*dto.SaleIntentResponse, error) {
	if in.ProductName == "" {
		return nil, domain.ErrInvalidInput
	}
	priceVes := in.PriceUsd.Mul(in.ExchangeRate)

	if err := uc.saleLogRepo.Create(ctx, &entity.SaleLog{
		ID:                 uuid.New().String(),
		ProductName:        in.ProductName,
		PriceUsdAtMoment:   in.PriceUsd,
		ExchangeRate:       in.ExchangeRate,
		PriceVesCalculated: priceVes,
		CreatedAt:          time.Now(),
	}); err != nil {
		return nil, err
	}

	message := fmt.Sprintf("Hola, quiero %s. Precio: $%s (Bs. %s).",
		in.ProductName, in.PriceUsd.StringFixed(2), priceVes.StringFixed(2))
	return &dto.SaleIntentResponse{
		WhatsAppURL: fmt.Sprintf("https://wa.me/%s?text=%s", uc.whatsAppPhone, url.QueryEscape(message)),
	}, nil
}

// ListSaleIntents lista los últimos registros de intención de compra,
// más recientes primero. Para el panel admin: muestra qué consultan los
// visitantes aunque la venta nunca se concrete.
func (uc *SaleUseCase) ListSaleIntents(ctx context.Context, limit int) ([]dto.SaleIntentLogResponse, error) {
	if limit < 1 || limit > 200 {
		limit = 50
	}
	list, err := uc.saleLogRepo.List(ctx, limit)
	if err != nil {
		return nil, err
	}
	out := make([]dto.SaleIntentLogResponse, 0, len(list))
	for _, l := range list {
		out = append(out, dto.SaleIntentLogResponse{
			ID:                 l.ID,
			ProductName:        l.ProductName,
			PriceUsdAtMoment:   l.PriceUsdAtMoment,
			ExchangeRate:       l.ExchangeRate,
			PriceVesCalculated: l.PriceVesCalculated,
			CreatedAt:          l.CreatedAt,
		})
	}
	return out, nil
}

// SalesReportPDF genera el reporte PDF del libro de ventas.
func (uc *SaleUseCase) SalesReportPDF(ctx context.Context) ([]byte, error) {
	list, err := uc.saleRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	stats, err := uc.saleRepo.Stats(ctx, localMidnight(time.Now()))
	if err != nil {
		return nil, err
	}
	return uc.reportGen.SalesReport(ctx, list, stats)
}

// localMidnight devuelve la medianoche local del día de t.
func localMidnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func toSaleResponse(s *entity.Sale, productName string) *dto.SaleResponse {
	return &dto.SaleResponse{
		ID:           s.ID,
		ProductID:    s.ProductID,
		ProductName:  productName,
		Quantity:     s.Quantity,
		PriceUsd:     s.PriceUsd,
		TotalUsd:     s.TotalUsd,
		ExchangeRate: s.ExchangeRate,
		TotalVes:     s.TotalVes,
		Notes:        s.Notes,
		CreatedAt:    s.CreatedAt,
	}
}
