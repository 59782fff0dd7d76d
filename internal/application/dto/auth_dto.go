package dto

import (
	"time"

	"github.com/credimovil/backoffice-api/internal/domain/entity"
)

// RegisterRequest body para POST /api/auth/register.
type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Name     string `json:"name" validate:"required,max=120"`
	Password string `json:"password" validate:"required,min=8,max=72"`
	Role     string `json:"role" validate:"required,oneof=admin bodeguero vendedor"`
}

// LoginRequest body para POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// TokenResponse respuesta de login/registro.
type TokenResponse struct {
	Token string `json:"token"`
	Role  string `json:"role"`
}

// UserResponse representación HTTP de un usuario (sin hash de contraseña).
type UserResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// NewUserResponse mapea la entidad al DTO.
func NewUserResponse(u *entity.User) UserResponse {
	return UserResponse{ID: u.ID, Email: u.Email, Name: u.Name, Role: u.Role, CreatedAt: u.CreatedAt}
}
