package repository

import (
	"context"

	"github.com/credimovil/backoffice-api/internal/domain/entity"
)

// DeviceFilter filtros de igualdad para listar dispositivos.
type DeviceFilter struct {
	StoreID string
	Status  string
	IMEI    string
	Owner   string
}

// DeviceRepository define el puerto de persistencia para dispositivos
// financiados.
type DeviceRepository interface {
	Create(ctx context.Context, d *entity.Device) error
	GetByID(ctx context.Context, id string) (*entity.Device, error)
	GetByIMEI(ctx context.Context, imei string) (*entity.Device, error)
	Update(ctx context.Context, d *entity.Device) error
	// UpdateStatus escribe estado y código de desbloqueo en una sola sentencia.
	UpdateStatus(ctx context.Context, id, status, unlockCode string) error
	List(ctx context.Context, filter DeviceFilter, limit, offset int) ([]*entity.Device, error)
	Delete(ctx context.Context, id string) error
}
