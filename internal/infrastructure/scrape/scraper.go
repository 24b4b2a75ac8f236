// Package scrape obtiene fichas de producto de marketplaces de terceros
// aplicando heurísticas de extracción sobre el HTML crudo. El resultado es
// siempre provisional: lo confirma un humano antes de entrar al catálogo.
package scrape

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/daianstore/tienda-api/internal/application/dto"
	"github.com/daianstore/tienda-api/internal/domain"
)

// Fuentes soportadas.
const (
	SourceAliExpress = "aliexpress"
	SourceAlibaba    = "alibaba"
)

// Encabezados de navegador: reducen la probabilidad de bloqueo por filtros
// anti-bot simples, sin garantizarlo.
const browserUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

// minTitleLen: por debajo se asume página bloqueada o reestructurada.
const minTitleLen = 5

// Scraper descarga y extrae fichas de producto de marketplaces conocidos.
type Scraper struct {
	httpClient *http.Client
}

// NewScraper construye el scraper con un client HTTP propio.
func NewScraper() *Scraper {
	return &Scraper{
		httpClient: &http.Client{
			Timeout: 20 * time.Second,
		},
	}
}

// ClassifySource identifica el marketplace por el hostname embebido en la URL.
// Devuelve "" si no es una fuente soportada.
func ClassifySource(url string) string {
	switch {
	case strings.Contains(url, "aliexpress.com"):
		return SourceAliExpress
	case strings.Contains(url, "alibaba.com"):
		return SourceAlibaba
	default:
		return ""
	}
}

// Scrape descarga la página y corre las cascadas de extracción por campo.
// Falla con ErrUnsupportedSource (dominio desconocido), FetchError (status no 2xx)
// o ErrExtractionFailed (sin título utilizable). Precio cero e imágenes vacías
// son resultados válidos.
func (s *Scraper) Scrape(ctx context.Context, url string) (*dto.ScrapedProductResponse, error) {
	source := ClassifySource(url)
	if source == "" {
		return nil, domain.ErrUnsupportedSource
	}

	html, err := s.fetch(ctx, url)
	if err != nil {
		return nil, err
	}

	title := ExtractTitle(html)
	if utf8.RuneCountInString(title) < minTitleLen {
		return nil, domain.ErrExtractionFailed
	}

	description := ExtractDescription(html)
	if description == "" {
		description = fmt.Sprintf("Producto importado desde %s: %s", sourceLabel(source), title)
	}

	return &dto.ScrapedProductResponse{
		Title:       title,
		Description: description,
		Price:       ExtractPrice(html),
		Images:      ExtractImages(html),
		Source:      source,
	}, nil
}

func (s *Scraper) fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("crear request: %w", err)
	}
	req.Header.Set("User-Agent", browserUserAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,image/webp,*/*;q=0.8")
	req.Header.Set("Accept-Language", "es-ES,es;q=0.9,en;q=0.8")
	req.Header.Set("Cache-Control", "no-cache")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch página: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", &domain.FetchError{StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("leer body: %w", err)
	}
	return string(body), nil
}

func sourceLabel(source string) string {
	if source == SourceAliExpress {
		return "AliExpress"
	}
	return "Alibaba"
}
