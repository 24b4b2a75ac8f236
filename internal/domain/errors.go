package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrProductNotFound   = errors.New("producto no encontrado")
	ErrSaleNotFound      = errors.New("venta no encontrada")
	ErrCategoryNotFound  = errors.New("categoría no encontrada")
	ErrSlideNotFound     = errors.New("slide no encontrado")
	ErrCategoryInUse     = errors.New("la categoría tiene productos asociados")
	ErrDuplicate         = errors.New("recurso duplicado")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrUnauthorized      = errors.New("no autorizado")
	ErrInsufficientStock = errors.New("stock insuficiente")
	ErrUnsupportedSource = errors.New("URL no soportada: usa AliExpress o Alibaba")
	ErrExtractionFailed  = errors.New("no se pudo extraer información del producto")
	ErrInvalidFileType   = errors.New("tipo de archivo no válido")
	ErrFileTooLarge      = errors.New("el archivo es muy grande")
	ErrUploadFailed      = errors.New("error al subir el archivo")
)

// InsufficientStockError indica que el pedido excede el stock disponible.
// Compatible con errors.Is(err, ErrInsufficientStock).
type InsufficientStockError struct {
	Available int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("stock insuficiente: disponible %d", e.Available)
}

func (e *InsufficientStockError) Is(target error) bool {
	return target == ErrInsufficientStock
}

// FetchError indica que la página objetivo respondió con un status no exitoso.
type FetchError struct {
	StatusCode int
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("error al acceder a la página: status %d", e.StatusCode)
}
