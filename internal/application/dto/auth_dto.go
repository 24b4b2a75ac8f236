package dto

// LoginRequest credencial del operador del panel.
type LoginRequest struct {
	Password string `json:"password" validate:"required"`
}

// LoginResponse token de acceso al panel.
type LoginResponse struct {
	Token string `json:"token"`
}
