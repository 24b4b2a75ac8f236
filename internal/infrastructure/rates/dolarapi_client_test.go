package rates_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daianstore/tienda-api/internal/infrastructure/rates"
	"github.com/daianstore/tienda-api/pkg/config"
	"github.com/daianstore/tienda-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

func testLogger() *logger.Logger {
	return logger.New(logger.Config{Env: "development", Level: "error"})
}

func buildClient(t *testing.T, handler http.HandlerFunc) (*rates.DolarApiClient, *int) {
	t.Helper()
	hits := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		handler(w, r)
	}))
	t.Cleanup(srv.Close)

	client := rates.NewDolarApiClient(config.RatesConfig{
		APIURL:       srv.URL,
		FallbackRate: 50,
		CacheMinutes: 60,
	}, testLogger())
	return client, &hits
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Current
// ──────────────────────────────────────────────────────────────────────────────

func TestCurrent_RespuestaCompleta(t *testing.T) {
	client, _ := buildClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"promedio": 36.5, "compra": 36.2, "venta": 36.8, "fechaActualizacion": "2026-08-31T12:00:00Z"}`))
	})

	out := client.Current(context.Background())
	assert.True(t, decimal.NewFromFloat(36.5).Equal(out.Promedio))
	assert.True(t, decimal.NewFromFloat(36.2).Equal(out.Compra))
	assert.True(t, decimal.NewFromFloat(36.8).Equal(out.Venta))
	assert.Equal(t, "2026-08-31T12:00:00Z", out.FechaActualizacion)
}

func TestCurrent_PromedioHeredaDeVenta(t *testing.T) {
	client, _ := buildClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"venta": 37.0}`))
	})

	out := client.Current(context.Background())
	assert.True(t, decimal.NewFromFloat(37.0).Equal(out.Promedio),
		"sin promedio, la venta hace de promedio")
	assert.True(t, decimal.NewFromFloat(37.0).Equal(out.Compra),
		"compra ausente hereda del promedio")
}

func TestCurrent_FalloDelAgregadorDegradaASustituta(t *testing.T) {
	client, _ := buildClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	out := client.Current(context.Background())
	require.NotNil(t, out, "la tasa nunca falta: la tienda debe seguir mostrando precios")
	assert.True(t, decimal.NewFromInt(50).Equal(out.Promedio))
	assert.True(t, decimal.NewFromInt(50).Equal(out.Compra))
	assert.True(t, decimal.NewFromInt(50).Equal(out.Venta))
}

func TestCurrent_JSONInvalidoDegradaASustituta(t *testing.T) {
	client, _ := buildClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`no es json`))
	})

	out := client.Current(context.Background())
	assert.True(t, decimal.NewFromInt(50).Equal(out.Promedio))
}

func TestCurrent_RespuestaSinTasaDegradaASustituta(t *testing.T) {
	client, _ := buildClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"promedio": 0, "venta": 0}`))
	})

	out := client.Current(context.Background())
	assert.True(t, decimal.NewFromInt(50).Equal(out.Promedio),
		"una respuesta 200 sin tasa positiva no sirve")
}

func TestCurrent_CacheaDentroDelTTL(t *testing.T) {
	client, hits := buildClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"promedio": 36.5}`))
	})

	client.Current(context.Background())
	client.Current(context.Background())
	client.Current(context.Background())

	assert.Equal(t, 1, *hits, "dentro del TTL solo hay una consulta al agregador")
}

func TestCurrent_ElFalloNoSeCachea(t *testing.T) {
	client, hits := buildClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	client.Current(context.Background())
	client.Current(context.Background())

	assert.Equal(t, 2, *hits, "la tasa sustituta no entra al caché: se reintenta en cada consulta")
}
