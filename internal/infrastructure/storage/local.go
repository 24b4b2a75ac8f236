// Package storage implementa los backends de subida de archivos: disco local
// (servido estáticamente por el mismo proceso) y MinIO (object storage).
package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/daianstore/tienda-api/internal/application/media"
)

var _ media.Storage = (*LocalStorage)(nil)

const localMaxImageSize = 5 * 1024 * 1024 // 5MB

// LocalStorage guarda archivos bajo un directorio público fijo y devuelve URLs
// relativas (/uploads/...). Solo imágenes. El nombre generado combina timestamp
// y sufijo aleatorio para resistir colisiones sin sincronización.
type LocalStorage struct {
	dir string
}

// NewLocalStorage construye el backend y asegura que el directorio exista.
func NewLocalStorage(dir string) (*LocalStorage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("crear directorio de uploads: %w", err)
	}
	return &LocalStorage{dir: dir}, nil
}

// Limits del backend local: sin video, imágenes hasta 5MB.
func (s *LocalStorage) Limits() media.Limits {
	return media.Limits{
		AllowVideo:   false,
		MaxImageSize: localMaxImageSize,
	}
}

// Save escribe el archivo en disco y devuelve la URL relativa.
func (s *LocalStorage) Save(_ context.Context, filename, _ string, _ int64, r io.Reader) (string, error) {
	name := fmt.Sprintf("%d_%s%s",
		time.Now().UnixNano(),
		uuid.New().String()[:8],
		filepath.Ext(filename),
	)

	dst, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", fmt.Errorf("crear archivo: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, r); err != nil {
		return "", fmt.Errorf("escribir archivo: %w", err)
	}
	return "/uploads/" + name, nil
}
