package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/credimovil/backoffice-api/internal/domain/entity"
)

// CreateDeviceRequest body para POST /api/devices.
type CreateDeviceRequest struct {
	IMEI      string          `json:"imei" validate:"required,min=14,max=17"`
	Owner     string          `json:"owner" validate:"required,max=200"`
	StoreID   string          `json:"store_id" validate:"required,uuid4"`
	Brand     string          `json:"brand" validate:"required,max=80"`
	Model     string          `json:"model" validate:"required,max=120"`
	Price     decimal.Decimal `json:"price"`
	PushToken *string         `json:"push_token,omitempty" validate:"omitempty,max=200"`
}

// UpdateDeviceStatusRequest body para PUT /api/devices/:id/status.
type UpdateDeviceStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=Bloqueado Desbloqueado"`
	Reason string `json:"reason,omitempty" validate:"omitempty,max=300"`
}

// DeviceResponse representación HTTP de un dispositivo. Notified indica si la
// notificación push llegó al despachador; false no implica que el cambio de
// estado haya fallado.
type DeviceResponse struct {
	ID         string          `json:"id"`
	IMEI       string          `json:"imei"`
	Owner      string          `json:"owner"`
	StoreID    string          `json:"store_id"`
	Brand      string          `json:"brand"`
	Model      string          `json:"model"`
	Price      decimal.Decimal `json:"price"`
	Status     string          `json:"status"`
	UnlockCode string          `json:"unlock_code,omitempty"`
	CreatedAt  time.Time       `json:"created_at"`
	Notified   *bool           `json:"notified,omitempty"`
}

// NewDeviceResponse mapea la entidad al DTO.
func NewDeviceResponse(d *entity.Device) DeviceResponse {
	return DeviceResponse{
		ID:         d.ID,
		IMEI:       d.IMEI,
		Owner:      d.Owner,
		StoreID:    d.StoreID,
		Brand:      d.Brand,
		Model:      d.Model,
		Price:      d.Price,
		Status:     d.Status,
		UnlockCode: d.UnlockCode,
		CreatedAt:  d.CreatedAt,
	}
}
