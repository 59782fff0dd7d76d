package dto

import (
	"time"

	"github.com/credimovil/backoffice-api/internal/domain/entity"
)

// RecordMovementRequest body para POST /api/inventory/moved.
// Se referencia el balance por balance_id, o por product_code + store_id.
// Para entrance/exit la cantidad debe ser > 0; para adjustment lleva signo.
type RecordMovementRequest struct {
	BalanceID      string `json:"balance_id,omitempty"`
	ProductCode    string `json:"product_code,omitempty"`
	StoreID        string `json:"store_id,omitempty"`
	Quantity       int64  `json:"quantity" validate:"required"`
	MovementType   string `json:"movement_type" validate:"required,movement_type"`
	Reason         string `json:"reason,omitempty" validate:"omitempty,max=500"`
	IdempotencyKey string `json:"idempotency_key,omitempty" validate:"omitempty,max=100"`
}

// TransferStockRequest body para POST /api/inventory/store-moved.
type TransferStockRequest struct {
	ProductID          string `json:"product_id" validate:"required,uuid4"`
	OriginStoreID      string `json:"origin_store_id" validate:"required,uuid4"`
	DestinationStoreID string `json:"destination_store_id" validate:"required,uuid4"`
	Quantity           int64  `json:"quantity" validate:"required,gt=0"`
	IdempotencyKey     string `json:"idempotency_key,omitempty" validate:"omitempty,max=100"`
}

// SetBalanceRequest body para PUT /api/inventory/:id.
type SetBalanceRequest struct {
	Quantity int64   `json:"quantity" validate:"required,gt=0"`
	IMEI     *string `json:"imei,omitempty" validate:"omitempty,max=20"`
}

// BalanceResponse representación HTTP de un StockBalance.
type BalanceResponse struct {
	ID               string    `json:"id"`
	StoreID          string    `json:"store_id"`
	ProductID        string    `json:"product_id"`
	Quantity         int64     `json:"quantity"`
	PhysicalQuantity int64     `json:"physical_quantity"`
	IMEI             *string   `json:"imei,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
}

// NewBalanceResponse mapea la entidad al DTO.
func NewBalanceResponse(b *entity.StockBalance) BalanceResponse {
	return BalanceResponse{
		ID:               b.ID,
		StoreID:          b.StoreID,
		ProductID:        b.ProductID,
		Quantity:         b.Quantity,
		PhysicalQuantity: b.PhysicalQuantity,
		IMEI:             b.IMEI,
		CreatedAt:        b.CreatedAt,
	}
}

// MovementResponse representación HTTP de un MovementRecord.
type MovementResponse struct {
	ID          string    `json:"id"`
	BalanceID   string    `json:"balance_id"`
	Delta       int64     `json:"delta"`
	Type        string    `json:"type"`
	Reason      string    `json:"reason,omitempty"`
	PerformedBy string    `json:"performed_by"`
	CreatedAt   time.Time `json:"created_at"`
}

// NewMovementResponse mapea la entidad al DTO.
func NewMovementResponse(m *entity.MovementRecord) MovementResponse {
	return MovementResponse{
		ID:          m.ID,
		BalanceID:   m.BalanceID,
		Delta:       m.Delta,
		Type:        m.Type,
		Reason:      m.Reason,
		PerformedBy: m.PerformedBy,
		CreatedAt:   m.CreatedAt,
	}
}
