package scrape

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// Extracción por cascadas: cada campo tiene una lista ordenada de extractores
// independientes; gana el primero que produce un valor. El markup de origen no
// tiene esquema estable, así que cada extractor es una heurística best-effort
// y todo valor extraído es solo una sugerencia para el operador.

// ── Título ────────────────────────────────────────────────────────────────────

var (
	ogTitleRe   = regexp.MustCompile(`(?i)<meta\s+property="og:title"\s+content="([^"]+)"`)
	titleTagRe  = regexp.MustCompile(`(?i)<title>([^<]+)</title>`)
	suffixAliRe = regexp.MustCompile(`(?i)-\s*AliExpress.*$`)
	suffixBabRe = regexp.MustCompile(`(?i)-\s*Alibaba.*$`)
	pipeTailRe  = regexp.MustCompile(`\|.*$`)
)

type titleExtractor func(html string) string

var titleExtractors = []titleExtractor{
	// Meta Open Graph
	func(html string) string {
		m := ogTitleRe.FindStringSubmatch(html)
		if m == nil {
			return ""
		}
		return strings.TrimSpace(stripMarketSuffixes(m[1]))
	},
	// Tag <title>: además recorta segmentos "| ..." finales
	func(html string) string {
		m := titleTagRe.FindStringSubmatch(html)
		if m == nil {
			return ""
		}
		return strings.TrimSpace(pipeTailRe.ReplaceAllString(stripMarketSuffixes(m[1]), ""))
	},
}

func stripMarketSuffixes(s string) string {
	s = suffixAliRe.ReplaceAllString(s, "")
	return suffixBabRe.ReplaceAllString(s, "")
}

// ExtractTitle devuelve el primer título no vacío de la cascada, o "".
func ExtractTitle(html string) string {
	for _, extract := range titleExtractors {
		if title := extract(html); title != "" {
			return title
		}
	}
	return ""
}

// ── Descripción ───────────────────────────────────────────────────────────────

var descRe = regexp.MustCompile(`(?i)<meta\s+(?:name|property)="(?:description|og:description)"\s+content="([^"]+)"`)

// ExtractDescription devuelve la meta description/og:description, o "".
func ExtractDescription(html string) string {
	m := descRe.FindStringSubmatch(html)
	if m == nil {
		return ""
	}
	return strings.TrimSpace(m[1])
}

// ── Precio ────────────────────────────────────────────────────────────────────

// Patrones en orden de prioridad: prefijo de moneda, "USD", campos price sueltos
// y "price" embebido en JSON. Gana el primer match cuyo valor caiga en (0, 10000);
// fuera de rango se descarta como falso positivo y sigue la cascada.
var pricePatterns = []*regexp.Regexp{
	regexp.MustCompile(`\$\s*([\d,]+\.?\d*)`),
	regexp.MustCompile(`(?i)USD\s*([\d,]+\.?\d*)`),
	regexp.MustCompile(`(?i)price['":\s]*['"$]*\s*([\d,]+\.?\d*)`),
	regexp.MustCompile(`(?i)"price":\s*"?\$?([\d,]+\.?\d*)`),
}

var priceCeiling = decimal.NewFromInt(10000)

// ExtractPrice devuelve el primer precio plausible, o cero (desconocido, no error).
func ExtractPrice(html string) decimal.Decimal {
	for _, pattern := range pricePatterns {
		m := pattern.FindStringSubmatch(html)
		if m == nil {
			continue
		}
		parsed, err := decimal.NewFromString(strings.ReplaceAll(m[1], ",", ""))
		if err != nil {
			continue
		}
		if parsed.GreaterThan(decimal.Zero) && parsed.LessThan(priceCeiling) {
			return parsed
		}
	}
	return decimal.Zero
}

// ── Imágenes ──────────────────────────────────────────────────────────────────

const maxImages = 5

var (
	ogImageRe       = regexp.MustCompile(`(?i)<meta\s+property="og:image(?::url)?"\s+content="([^"]+)"`)
	imagePathListRe = regexp.MustCompile(`"imagePathList":\s*\[([^\]]+)\]`)
	quotedItemRe    = regexp.MustCompile(`"([^"]+)"`)
	cdnImageRe      = regexp.MustCompile(`(?i)(https?://[^"'\s]+(?:alicdn|ae01|cbu01)[^"'\s]+\.(?:jpg|jpeg|png|webp))`)
)

// ExtractImages recolecta en orden: metas og:image, la lista JSON "imagePathList"
// y URLs de CDN encontradas en cualquier parte del markup. Deduplica, descarta
// avatares/íconos y corta en maxImages.
func ExtractImages(html string) []string {
	var images []string
	seen := make(map[string]bool)

	add := func(url string) {
		if url == "" || seen[url] || len(images) >= maxImages {
			return
		}
		seen[url] = true
		images = append(images, url)
	}

	for _, m := range ogImageRe.FindAllStringSubmatch(html, -1) {
		add(m[1])
	}

	if m := imagePathListRe.FindStringSubmatch(html); m != nil {
		for _, item := range quotedItemRe.FindAllStringSubmatch(m[1], -1) {
			if strings.HasPrefix(item[1], "http") {
				add(item[1])
			}
		}
	}

	for _, m := range cdnImageRe.FindAllStringSubmatch(html, -1) {
		if looksLikeAvatar(m[1]) {
			continue
		}
		add(m[1])
	}

	return images
}

func looksLikeAvatar(url string) bool {
	return strings.Contains(url, "avatar") || strings.Contains(url, "icon")
}
