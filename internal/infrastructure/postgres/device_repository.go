package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/credimovil/backoffice-api/internal/domain"
	"github.com/credimovil/backoffice-api/internal/domain/entity"
	"github.com/credimovil/backoffice-api/internal/domain/repository"
)

var _ repository.DeviceRepository = (*DeviceRepo)(nil)

const deviceColumns = "id, imei, owner, store_id, brand, model, price, status, unlock_code, push_token, created_at"

// DeviceRepo implementación de DeviceRepository sobre PostgreSQL.
type DeviceRepo struct {
	q Querier
}

// NewDeviceRepository construye el adaptador. Pasar pool o tx (Querier).
func NewDeviceRepository(q Querier) *DeviceRepo {
	return &DeviceRepo{q: q}
}

func scanDevice(row pgx.Row) (*entity.Device, error) {
	var d entity.Device
	err := row.Scan(&d.ID, &d.IMEI, &d.Owner, &d.StoreID, &d.Brand, &d.Model, &d.Price, &d.Status, &d.UnlockCode, &d.PushToken, &d.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &d, nil
}

// Create persiste un dispositivo nuevo. El IMEI es único.
func (r *DeviceRepo) Create(ctx context.Context, d *entity.Device) error {
	query := `
		INSERT INTO devices (id, imei, owner, store_id, brand, model, price, status, unlock_code, push_token, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(ctx, query,
		d.ID, d.IMEI, d.Owner, d.StoreID, d.Brand, d.Model, d.Price, d.Status, d.UnlockCode, d.PushToken, d.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert device: %w", err)
	}
	return nil
}

// GetByID obtiene un dispositivo por ID. Devuelve (nil, nil) si no existe.
func (r *DeviceRepo) GetByID(ctx context.Context, id string) (*entity.Device, error) {
	d, err := scanDevice(r.q.QueryRow(ctx, `SELECT `+deviceColumns+` FROM devices WHERE id = $1`, id))
	if err != nil {
		return nil, fmt.Errorf("get device: %w", err)
	}
	return d, nil
}

// GetByIMEI obtiene un dispositivo por IMEI.
func (r *DeviceRepo) GetByIMEI(ctx context.Context, imei string) (*entity.Device, error) {
	d, err := scanDevice(r.q.QueryRow(ctx, `SELECT `+deviceColumns+` FROM devices WHERE imei = $1`, imei))
	if err != nil {
		return nil, fmt.Errorf("get device by imei: %w", err)
	}
	return d, nil
}

// Update actualiza los campos editables del dispositivo.
func (r *DeviceRepo) Update(ctx context.Context, d *entity.Device) error {
	query := `
		UPDATE devices SET owner = $2, store_id = $3, brand = $4, model = $5, price = $6, push_token = $7
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query, d.ID, d.Owner, d.StoreID, d.Brand, d.Model, d.Price, d.PushToken)
	if err != nil {
		return fmt.Errorf("update device: %w", err)
	}
	return nil
}

// UpdateStatus escribe estado y código de desbloqueo en una sola sentencia.
func (r *DeviceRepo) UpdateStatus(ctx context.Context, id, status, unlockCode string) error {
	_, err := r.q.Exec(ctx,
		`UPDATE devices SET status = $2, unlock_code = $3 WHERE id = $1`,
		id, status, unlockCode,
	)
	if err != nil {
		return fmt.Errorf("update device status: %w", err)
	}
	return nil
}

// List lista dispositivos con filtros de igualdad y paginación.
func (r *DeviceRepo) List(ctx context.Context, filter repository.DeviceFilter, limit, offset int) ([]*entity.Device, error) {
	query := `SELECT ` + deviceColumns + ` FROM devices WHERE 1=1`
	args := []any{}
	pos := 1
	if filter.StoreID != "" {
		query += fmt.Sprintf(" AND store_id = $%d", pos)
		args = append(args, filter.StoreID)
		pos++
	}
	if filter.Status != "" {
		query += fmt.Sprintf(" AND status = $%d", pos)
		args = append(args, filter.Status)
		pos++
	}
	if filter.IMEI != "" {
		query += fmt.Sprintf(" AND imei = $%d", pos)
		args = append(args, filter.IMEI)
		pos++
	}
	if filter.Owner != "" {
		query += fmt.Sprintf(" AND owner = $%d", pos)
		args = append(args, filter.Owner)
		pos++
	}
	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", pos, pos+1)
	args = append(args, limit, offset)

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list devices: %w", err)
	}
	defer rows.Close()
	var list []*entity.Device
	for rows.Next() {
		var d entity.Device
		if err := rows.Scan(&d.ID, &d.IMEI, &d.Owner, &d.StoreID, &d.Brand, &d.Model, &d.Price, &d.Status, &d.UnlockCode, &d.PushToken, &d.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan device: %w", err)
		}
		list = append(list, &d)
	}
	return list, rows.Err()
}

// Delete elimina un dispositivo por ID.
func (r *DeviceRepo) Delete(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM devices WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete device: %w", err)
	}
	return nil
}
