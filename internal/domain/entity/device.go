package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de un dispositivo financiado.
const (
	DeviceStatusBlocked   = "Bloqueado"
	DeviceStatusUnblocked = "Desbloqueado"
)

// Device es un equipo serializado en financiamiento. Al bloquear o
// desbloquear se persiste el estado y después se notifica al dueño
// (best-effort; el fallo de la notificación no revierte el cambio).
type Device struct {
	ID         string
	IMEI       string
	Owner      string
	StoreID    string
	Brand      string
	Model      string
	Price      decimal.Decimal
	Status     string
	UnlockCode string
	PushToken  *string
	CreatedAt  time.Time
}
