package storage

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/daianstore/tienda-api/internal/application/media"
	"github.com/daianstore/tienda-api/pkg/config"
)

var _ media.Storage = (*MinioStorage)(nil)

const (
	minioMaxImageSize = 10 * 1024 * 1024 // 10MB
	minioMaxVideoSize = 60 * 1024 * 1024 // 60MB
)

// MinioStorage sube archivos a un bucket de object storage y devuelve la URL
// canónica segura. Soporta imágenes y video.
type MinioStorage struct {
	client *minio.Client
	bucket string
	folder string
}

// NewMinioStorage construye el backend con la configuración de la app.
func NewMinioStorage(cfg config.StorageConfig) (*MinioStorage, error) {
	if cfg.MinioEndpoint == "" {
		return nil, fmt.Errorf("minio no configurado: falta MINIO_ENDPOINT")
	}
	client, err := minio.New(cfg.MinioEndpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.MinioAccessKey, cfg.MinioSecretKey, ""),
		Secure: cfg.MinioUseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("crear cliente minio: %w", err)
	}
	return &MinioStorage{
		client: client,
		bucket: cfg.MinioBucket,
		folder: cfg.MinioFolder,
	}, nil
}

// EnsureBucket crea el bucket si no existe (arranque de la app).
func (s *MinioStorage) EnsureBucket(ctx context.Context) error {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return fmt.Errorf("verificar bucket: %w", err)
	}
	if !exists {
		if err := s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{}); err != nil {
			return fmt.Errorf("crear bucket %s: %w", s.bucket, err)
		}
	}
	return nil
}

// Limits del backend minio: imágenes 10MB, videos 60MB.
func (s *MinioStorage) Limits() media.Limits {
	return media.Limits{
		AllowVideo:   true,
		MaxImageSize: minioMaxImageSize,
		MaxVideoSize: minioMaxVideoSize,
	}
}

// Save sube el archivo al bucket bajo un nombre único y devuelve su URL canónica.
func (s *MinioStorage) Save(ctx context.Context, filename, contentType string, size int64, r io.Reader) (string, error) {
	ext := path.Ext(filename)
	base := strings.TrimSuffix(path.Base(filename), ext)
	key := path.Join(s.folder, fmt.Sprintf("%s_%s%s", base, uuid.New().String()[:8], ext))

	if _, err := s.client.PutObject(ctx, s.bucket, key, r, size, minio.PutObjectOptions{
		ContentType: contentType,
	}); err != nil {
		return "", fmt.Errorf("subir objeto %s: %w", key, err)
	}
	return fmt.Sprintf("%s/%s/%s", s.client.EndpointURL(), s.bucket, key), nil
}
