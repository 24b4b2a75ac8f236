package media

import (
	"context"
	"fmt"
	"io"

	"github.com/daianstore/tienda-api/internal/application/dto"
	"github.com/daianstore/tienda-api/internal/domain"
)

// Limits restricciones del backend de almacenamiento activo.
type Limits struct {
	AllowVideo   bool
	MaxImageSize int64 // bytes
	MaxVideoSize int64 // bytes
}

// Storage puerto de persistencia de archivos (disco local u object storage).
type Storage interface {
	// Save escribe el archivo y devuelve su URL pública.
	Save(ctx context.Context, filename, contentType string, size int64, r io.Reader) (string, error)
	Limits() Limits
}

var imageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
	"image/gif":  true,
}

var videoTypes = map[string]bool{
	"video/mp4":  true,
	"video/webm": true,
}

// UploadUseCase valida y persiste archivos subidos desde el panel admin.
type UploadUseCase struct {
	storage Storage
}

// NewUploadUseCase construye el caso de uso.
func NewUploadUseCase(storage Storage) *UploadUseCase {
	return &UploadUseCase{storage: storage}
}

// Upload valida tipo MIME y tamaño antes de tocar I/O y delega en el backend.
// Imágenes siempre permitidas; video solo si el backend lo soporta (object
// storage). El fallo del backend sale como ErrUploadFailed.
func (uc *UploadUseCase) Upload(ctx context.Context, filename, contentType string, size int64, r io.Reader) (*dto.UploadResponse, error) {
	limits := uc.storage.Limits()

	isVideo := videoTypes[contentType]
	if !imageTypes[contentType] && !isVideo {
		return nil, domain.ErrInvalidFileType
	}
	if isVideo && !limits.AllowVideo {
		return nil, domain.ErrInvalidFileType
	}

	maxSize := limits.MaxImageSize
	if isVideo {
		maxSize = limits.MaxVideoSize
	}
	if size > maxSize {
		return nil, domain.ErrFileTooLarge
	}

	url, err := uc.storage.Save(ctx, filename, contentType, size, r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrUploadFailed, err)
	}
	return &dto.UploadResponse{URL: url}, nil
}
