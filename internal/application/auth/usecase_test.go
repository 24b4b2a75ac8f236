package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/daianstore/tienda-api/internal/application/auth"
	"github.com/daianstore/tienda-api/internal/application/dto"
	"github.com/daianstore/tienda-api/internal/domain"
	"github.com/daianstore/tienda-api/pkg/config"
	pkgjwt "github.com/daianstore/tienda-api/pkg/jwt"
)

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testPassword  = "clave-del-panel"
)

func buildAuth(t *testing.T) *auth.AuthUseCase {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(testPassword), bcrypt.MinCost)
	require.NoError(t, err)

	return auth.NewAuthUseCase(
		config.JWTConfig{Secret: testJWTSecret, Expiration: 60, Issuer: "tienda-test"},
		config.AdminConfig{PasswordHash: string(hash)},
	)
}

func TestLogin_CredencialCorrecta(t *testing.T) {
	uc := buildAuth(t)

	out, err := uc.Login(dto.LoginRequest{Password: testPassword})
	require.NoError(t, err)
	require.NotEmpty(t, out.Token)

	role, err := pkgjwt.Parse(testJWTSecret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, "admin", role, "el token lleva el rol admin")
}

func TestLogin_CredencialIncorrecta(t *testing.T) {
	uc := buildAuth(t)

	_, err := uc.Login(dto.LoginRequest{Password: "otra-clave"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_PanelSinConfigurar(t *testing.T) {
	uc := auth.NewAuthUseCase(
		config.JWTConfig{Secret: testJWTSecret, Expiration: 60, Issuer: "tienda-test"},
		config.AdminConfig{},
	)

	_, err := uc.Login(dto.LoginRequest{Password: testPassword})
	assert.ErrorIs(t, err, domain.ErrUnauthorized,
		"sin hash configurado nadie entra, sin filtrar la causa")
}
