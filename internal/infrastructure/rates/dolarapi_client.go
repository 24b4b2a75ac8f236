// Package rates implementa el cliente de tasa de cambio USD/VES contra el
// agregador público DolarApi (tasa oficial BCV).
package rates

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/daianstore/tienda-api/internal/application/dto"
	"github.com/daianstore/tienda-api/internal/application/pricing"
	"github.com/daianstore/tienda-api/pkg/config"
	"github.com/daianstore/tienda-api/pkg/logger"
)

var _ pricing.RateProvider = (*DolarApiClient)(nil)

// DolarApiClient consulta la tasa BCV con caché en memoria. Es infalible por
// contrato: cualquier fallo del agregador (red, status, JSON) degrada a la
// tasa sustituta configurada en vez de propagar el error, porque la tienda
// debe seguir mostrando precios en bolívares aunque el agregador caiga.
type DolarApiClient struct {
	httpClient *http.Client
	apiURL     string
	fallback   decimal.Decimal
	cacheTTL   time.Duration
	log        *logger.Logger

	mu        sync.Mutex
	cached    *dto.ExchangeRateResponse
	fetchedAt time.Time
}

// NewDolarApiClient construye el cliente con la configuración de tasas.
func NewDolarApiClient(cfg config.RatesConfig, log *logger.Logger) *DolarApiClient {
	return &DolarApiClient{
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		apiURL:   cfg.APIURL,
		fallback: decimal.NewFromFloat(cfg.FallbackRate),
		cacheTTL: time.Duration(cfg.CacheMinutes) * time.Minute,
		log:      log,
	}
}

// dolarAPIResponse payload del agregador. Los campos pueden venir en cero
// o ausentes según la fuente.
type dolarAPIResponse struct {
	Promedio           decimal.Decimal `json:"promedio"`
	Compra             decimal.Decimal `json:"compra"`
	Venta              decimal.Decimal `json:"venta"`
	FechaActualizacion string          `json:"fechaActualizacion"`
}

// Current devuelve la tasa vigente. Sirve del caché mientras no expire el TTL;
// al expirar consulta al agregador y ante fallo degrada a la tasa sustituta
// (sin cachearla, para reintentar en la próxima consulta).
func (c *DolarApiClient) Current(ctx context.Context) *dto.ExchangeRateResponse {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.cached != nil && time.Since(c.fetchedAt) < c.cacheTTL {
		return c.cached
	}

	rate, err := c.fetch(ctx)
	if err != nil {
		c.log.Warn().Err(err).Msg("Tasa BCV no disponible, usando tasa sustituta")
		return c.fallbackRate()
	}

	c.cached = rate
	c.fetchedAt = time.Now()
	return rate
}

func (c *DolarApiClient) fetch(ctx context.Context) (*dto.ExchangeRateResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.apiURL, nil)
	if err != nil {
		return nil, fmt.Errorf("crear request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("consultar agregador: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("agregador respondió status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("leer respuesta: %w", err)
	}

	var payload dolarAPIResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("parsear respuesta: %w", err)
	}

	// Compra y venta heredan del promedio si faltan; el promedio hereda
	// de la venta. Si nada es positivo, la respuesta no sirve.
	promedio := payload.Promedio
	if promedio.LessThanOrEqual(decimal.Zero) {
		promedio = payload.Venta
	}
	if promedio.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("respuesta sin tasa utilizable")
	}
	compra := payload.Compra
	if compra.LessThanOrEqual(decimal.Zero) {
		compra = promedio
	}
	venta := payload.Venta
	if venta.LessThanOrEqual(decimal.Zero) {
		venta = promedio
	}

	return &dto.ExchangeRateResponse{
		Compra:             compra,
		Venta:              venta,
		Promedio:           promedio,
		FechaActualizacion: payload.FechaActualizacion,
	}, nil
}

func (c *DolarApiClient) fallbackRate() *dto.ExchangeRateResponse {
	return &dto.ExchangeRateResponse{
		Compra:             c.fallback,
		Venta:              c.fallback,
		Promedio:           c.fallback,
		FechaActualizacion: time.Now().Format(time.RFC3339),
	}
}
