package media_test

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daianstore/tienda-api/internal/application/media"
	"github.com/daianstore/tienda-api/internal/domain"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fake storage
// ──────────────────────────────────────────────────────────────────────────────

type fakeStorage struct {
	limits media.Limits
	saved  int
	err    error
}

func (s *fakeStorage) Save(_ context.Context, _, _ string, _ int64, _ io.Reader) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	s.saved++
	return "/uploads/archivo.jpg", nil
}

func (s *fakeStorage) Limits() media.Limits { return s.limits }

func localLimits() media.Limits {
	return media.Limits{AllowVideo: false, MaxImageSize: 5 * 1024 * 1024}
}

func minioLimits() media.Limits {
	return media.Limits{AllowVideo: true, MaxImageSize: 10 * 1024 * 1024, MaxVideoSize: 60 * 1024 * 1024}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests de validación (antes de tocar I/O)
// ──────────────────────────────────────────────────────────────────────────────

func TestUpload_TipoNoPermitido(t *testing.T) {
	storage := &fakeStorage{limits: localLimits()}
	uc := media.NewUploadUseCase(storage)

	_, err := uc.Upload(context.Background(), "doc.pdf", "application/pdf", 100, strings.NewReader("x"))
	assert.ErrorIs(t, err, domain.ErrInvalidFileType)
	assert.Zero(t, storage.saved, "la validación falla antes de escribir nada")
}

func TestUpload_VideoRechazadoEnBackendLocal(t *testing.T) {
	storage := &fakeStorage{limits: localLimits()}
	uc := media.NewUploadUseCase(storage)

	_, err := uc.Upload(context.Background(), "clip.mp4", "video/mp4", 100, strings.NewReader("x"))
	assert.ErrorIs(t, err, domain.ErrInvalidFileType, "el backend local solo acepta imágenes")
}

func TestUpload_VideoAceptadoEnObjectStorage(t *testing.T) {
	storage := &fakeStorage{limits: minioLimits()}
	uc := media.NewUploadUseCase(storage)

	out, err := uc.Upload(context.Background(), "clip.mp4", "video/mp4", 1024, strings.NewReader("x"))
	require.NoError(t, err)
	assert.NotEmpty(t, out.URL)
}

func TestUpload_ImagenMuyGrande(t *testing.T) {
	storage := &fakeStorage{limits: localLimits()}
	uc := media.NewUploadUseCase(storage)

	_, err := uc.Upload(context.Background(), "foto.jpg", "image/jpeg", 6*1024*1024, strings.NewReader("x"))
	assert.ErrorIs(t, err, domain.ErrFileTooLarge)
	assert.Zero(t, storage.saved)
}

func TestUpload_VideoMuyGrande(t *testing.T) {
	storage := &fakeStorage{limits: minioLimits()}
	uc := media.NewUploadUseCase(storage)

	_, err := uc.Upload(context.Background(), "clip.webm", "video/webm", 61*1024*1024, strings.NewReader("x"))
	assert.ErrorIs(t, err, domain.ErrFileTooLarge)
}

func TestUpload_ImagenValida(t *testing.T) {
	for _, contentType := range []string{"image/jpeg", "image/png", "image/webp", "image/gif"} {
		storage := &fakeStorage{limits: localLimits()}
		uc := media.NewUploadUseCase(storage)

		out, err := uc.Upload(context.Background(), "foto", contentType, 1024, strings.NewReader("x"))
		require.NoError(t, err, "tipo %s debe aceptarse", contentType)
		assert.Equal(t, "/uploads/archivo.jpg", out.URL)
	}
}

func TestUpload_FalloDelBackend(t *testing.T) {
	storage := &fakeStorage{limits: localLimits(), err: errors.New("disco lleno")}
	uc := media.NewUploadUseCase(storage)

	_, err := uc.Upload(context.Background(), "foto.jpg", "image/jpeg", 1024, strings.NewReader("x"))
	assert.ErrorIs(t, err, domain.ErrUploadFailed)
}
