package storage_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daianstore/tienda-api/internal/infrastructure/storage"
)

func TestLocalStorage_SaveEscribeYDevuelveURLRelativa(t *testing.T) {
	dir := t.TempDir()
	s, err := storage.NewLocalStorage(dir)
	require.NoError(t, err)

	url, err := s.Save(context.Background(), "foto.jpg", "image/jpeg", 4, strings.NewReader("data"))
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(url, "/uploads/"), "la URL es relativa al servidor")
	assert.True(t, strings.HasSuffix(url, ".jpg"), "conserva la extensión original")

	name := strings.TrimPrefix(url, "/uploads/")
	content, err := os.ReadFile(filepath.Join(dir, name))
	require.NoError(t, err)
	assert.Equal(t, "data", string(content))
}

func TestLocalStorage_NombresUnicos(t *testing.T) {
	dir := t.TempDir()
	s, err := storage.NewLocalStorage(dir)
	require.NoError(t, err)

	url1, err := s.Save(context.Background(), "foto.jpg", "image/jpeg", 1, strings.NewReader("a"))
	require.NoError(t, err)
	url2, err := s.Save(context.Background(), "foto.jpg", "image/jpeg", 1, strings.NewReader("b"))
	require.NoError(t, err)

	assert.NotEqual(t, url1, url2, "el mismo nombre de origen no debe colisionar")
}

func TestLocalStorage_CreaElDirectorio(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "anidado", "uploads")
	_, err := storage.NewLocalStorage(dir)
	require.NoError(t, err)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestLocalStorage_LimitesSoloImagen(t *testing.T) {
	s, err := storage.NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	limits := s.Limits()
	assert.False(t, limits.AllowVideo, "el backend local no acepta video")
	assert.Equal(t, int64(5*1024*1024), limits.MaxImageSize)
}
