package usecase

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	"github.com/google/uuid"

	"github.com/credimovil/backoffice-api/internal/domain"
	"github.com/credimovil/backoffice-api/internal/domain/entity"
	"github.com/credimovil/backoffice-api/internal/domain/repository"
	"github.com/credimovil/backoffice-api/pkg/logger"
)

// DeviceUseCase maneja dispositivos financiados, incluido el flujo
// "mutar y luego notificar": al bloquear o desbloquear se persiste el estado
// y después se envía la notificación push best-effort. Un fallo del push no
// revierte el cambio de estado y se reporta aparte (Notified=false + log).
type DeviceUseCase struct {
	repo       repository.DeviceRepository
	dispatcher Dispatcher
	audit      AuditSink
	log        *logger.Logger
}

// NewDeviceUseCase construye el caso de uso.
func NewDeviceUseCase(repo repository.DeviceRepository, dispatcher Dispatcher, audit AuditSink, log *logger.Logger) *DeviceUseCase {
	return &DeviceUseCase{repo: repo, dispatcher: dispatcher, audit: audit, log: log}
}

// Create registra un dispositivo; nace desbloqueado.
func (uc *DeviceUseCase) Create(ctx context.Context, d *entity.Device, actor string) (*entity.Device, error) {
	if d.IMEI == "" || d.Owner == "" || d.StoreID == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.repo.GetByIMEI(ctx, d.IMEI)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	d.ID = uuid.New().String()
	d.Status = entity.DeviceStatusUnblocked
	d.UnlockCode = generateUnlockCode()
	d.CreatedAt = time.Now()
	if err := uc.repo.Create(ctx, d); err != nil {
		return nil, err
	}
	uc.audit.Record(ctx, "CREATE", actor, "devices", map[string]any{"device_id": d.ID, "imei": d.IMEI})
	return d, nil
}

// GetByID devuelve un dispositivo por id.
func (uc *DeviceUseCase) GetByID(ctx context.Context, id string) (*entity.Device, error) {
	d, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if d == nil {
		return nil, domain.ErrNotFound
	}
	return d, nil
}

// SetStatus bloquea o desbloquea el dispositivo. Primero la mutación en DB;
// la notificación viene después y nunca la deshace. Devuelve el dispositivo
// actualizado y si la notificación fue entregada al despachador.
func (uc *DeviceUseCase) SetStatus(ctx context.Context, id, status, reason, actor string) (*entity.Device, bool, error) {
	if status != entity.DeviceStatusBlocked && status != entity.DeviceStatusUnblocked {
		return nil, false, domain.ErrInvalidInput
	}
	device, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, false, err
	}
	if device == nil {
		return nil, false, domain.ErrNotFound
	}

	unlockCode := device.UnlockCode
	if status == entity.DeviceStatusUnblocked {
		// Cada desbloqueo emite un código nuevo.
		unlockCode = generateUnlockCode()
	}
	if err := uc.repo.UpdateStatus(ctx, id, status, unlockCode); err != nil {
		return nil, false, err
	}
	device.Status = status
	device.UnlockCode = unlockCode

	uc.audit.Record(ctx, "UPDATE", actor, "devices", map[string]any{
		"device_id": id,
		"status":    status,
		"reason":    reason,
	})

	notified := uc.notifyStatus(ctx, device, reason)
	return device, notified, nil
}

// notifyStatus envía la notificación push del cambio de estado. Best-effort:
// el error se loguea distinto de un fallo de DB y no se propaga.
func (uc *DeviceUseCase) notifyStatus(ctx context.Context, device *entity.Device, reason string) bool {
	if uc.dispatcher == nil || device.PushToken == nil || *device.PushToken == "" {
		return false
	}
	var body string
	data := map[string]any{"device_id": device.ID, "blocked": device.Status == entity.DeviceStatusBlocked}
	if device.Status == entity.DeviceStatusBlocked {
		body = "Su equipo ha sido bloqueado"
		if reason != "" {
			data["reason"] = reason
		}
	} else {
		body = "Su equipo ha sido desbloqueado"
		data["unlock_code"] = device.UnlockCode
	}
	if err := uc.dispatcher.Notify(ctx, *device.PushToken, body, data); err != nil {
		uc.log.Warn().Err(err).
			Str("device_id", device.ID).
			Str("imei", device.IMEI).
			Msg("notificación push fallida, el estado ya quedó persistido")
		return false
	}
	return true
}

// List lista dispositivos con filtros de igualdad y paginación.
func (uc *DeviceUseCase) List(ctx context.Context, filter repository.DeviceFilter, limit, offset int) ([]*entity.Device, error) {
	return uc.repo.List(ctx, filter, limit, offset)
}

// Delete elimina un dispositivo.
func (uc *DeviceUseCase) Delete(ctx context.Context, id, actor string) error {
	existing, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return domain.ErrNotFound
	}
	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}
	uc.audit.Record(ctx, "DELETE", actor, "devices", map[string]any{"device_id": id})
	return nil
}

// generateUnlockCode produce un código numérico de 6 dígitos.
func generateUnlockCode() string {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "000000"
	}
	return fmt.Sprintf("%06d", n.Int64())
}
