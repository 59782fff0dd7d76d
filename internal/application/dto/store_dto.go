package dto

import (
	"time"

	"github.com/credimovil/backoffice-api/internal/domain/entity"
)

// StoreRequest body para crear/actualizar una tienda.
type StoreRequest struct {
	Name    string `json:"name" validate:"required,max=120"`
	Address string `json:"address,omitempty" validate:"omitempty,max=300"`
}

// StoreResponse representación HTTP de una tienda.
type StoreResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Address   string    `json:"address,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// NewStoreResponse mapea la entidad al DTO.
func NewStoreResponse(s *entity.Store) StoreResponse {
	return StoreResponse{ID: s.ID, Name: s.Name, Address: s.Address, CreatedAt: s.CreatedAt}
}
