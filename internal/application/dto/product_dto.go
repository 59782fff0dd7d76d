package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/credimovil/backoffice-api/internal/domain/entity"
)

// CreateProductRequest body para POST /api/products.
type CreateProductRequest struct {
	Code          string          `json:"code" validate:"required,max=50"`
	Article       string          `json:"article" validate:"required,max=200"`
	Price         decimal.Decimal `json:"price"`
	BusinessPrice decimal.Decimal `json:"business_price"`
	CategoryID    *string         `json:"category_id,omitempty" validate:"omitempty,uuid4"`
}

// UpdateProductRequest body para PUT /api/products/:id.
type UpdateProductRequest struct {
	Article       string          `json:"article" validate:"required,max=200"`
	Price         decimal.Decimal `json:"price"`
	BusinessPrice decimal.Decimal `json:"business_price"`
	CategoryID    *string         `json:"category_id,omitempty" validate:"omitempty,uuid4"`
}

// ProductResponse representación HTTP de un producto.
type ProductResponse struct {
	ID            string          `json:"id"`
	Code          string          `json:"code"`
	Article       string          `json:"article"`
	Price         decimal.Decimal `json:"price"`
	BusinessPrice decimal.Decimal `json:"business_price"`
	CategoryID    *string         `json:"category_id,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
}

// NewProductResponse mapea la entidad al DTO.
func NewProductResponse(p *entity.Product) ProductResponse {
	return ProductResponse{
		ID:            p.ID,
		Code:          p.Code,
		Article:       p.Article,
		Price:         p.Price,
		BusinessPrice: p.BusinessPrice,
		CategoryID:    p.CategoryID,
		CreatedAt:     p.CreatedAt,
	}
}
