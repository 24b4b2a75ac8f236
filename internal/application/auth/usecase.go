// Package auth implementa el acceso del operador al panel de administración.
// La tienda tiene un único operador, identificado solo por contraseña.
package auth

import (
	"golang.org/x/crypto/bcrypt"

	"github.com/daianstore/tienda-api/internal/application/dto"
	"github.com/daianstore/tienda-api/internal/domain"
	"github.com/daianstore/tienda-api/pkg/config"
	"github.com/daianstore/tienda-api/pkg/jwt"
)

// AuthUseCase login del operador del panel.
type AuthUseCase struct {
	jwtCfg   config.JWTConfig
	adminCfg config.AdminConfig
}

// NewAuthUseCase construye el caso de uso.
func NewAuthUseCase(jwtCfg config.JWTConfig, adminCfg config.AdminConfig) *AuthUseCase {
	return &AuthUseCase{jwtCfg: jwtCfg, adminCfg: adminCfg}
}

// Login compara la contraseña con el hash bcrypt configurado y emite el token
// del panel. Credencial incorrecta (o panel sin configurar) es siempre
// ErrUnauthorized, sin distinguir causas.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	if uc.adminCfg.PasswordHash == "" {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(uc.adminCfg.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}

	token, err := jwt.Generate(uc.jwtCfg.Secret, "admin", uc.jwtCfg.Issuer, uc.jwtCfg.Expiration)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{Token: token}, nil
}
