package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/credimovil/backoffice-api/internal/domain/entity"
	"github.com/credimovil/backoffice-api/internal/domain/repository"
)

var _ repository.StoreRepository = (*StoreRepo)(nil)

// StoreRepo implementación de StoreRepository sobre PostgreSQL.
type StoreRepo struct {
	q Querier
}

// NewStoreRepository construye el adaptador. Pasar pool o tx (Querier).
func NewStoreRepository(q Querier) *StoreRepo {
	return &StoreRepo{q: q}
}

// Create persiste una tienda nueva.
func (r *StoreRepo) Create(ctx context.Context, s *entity.Store) error {
	_, err := r.q.Exec(ctx,
		`INSERT INTO stores (id, name, address, created_at) VALUES ($1, $2, $3, $4)`,
		s.ID, s.Name, s.Address, s.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert store: %w", err)
	}
	return nil
}

// GetByID obtiene una tienda por ID. Devuelve (nil, nil) si no existe.
func (r *StoreRepo) GetByID(ctx context.Context, id string) (*entity.Store, error) {
	var s entity.Store
	err := r.q.QueryRow(ctx,
		`SELECT id, name, address, created_at FROM stores WHERE id = $1`, id,
	).Scan(&s.ID, &s.Name, &s.Address, &s.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get store: %w", err)
	}
	return &s, nil
}

// Update actualiza nombre y dirección.
func (r *StoreRepo) Update(ctx context.Context, s *entity.Store) error {
	_, err := r.q.Exec(ctx,
		`UPDATE stores SET name = $2, address = $3 WHERE id = $1`,
		s.ID, s.Name, s.Address,
	)
	if err != nil {
		return fmt.Errorf("update store: %w", err)
	}
	return nil
}

// List lista tiendas con paginación.
func (r *StoreRepo) List(ctx context.Context, limit, offset int) ([]*entity.Store, error) {
	rows, err := r.q.Query(ctx,
		`SELECT id, name, address, created_at FROM stores ORDER BY name LIMIT $1 OFFSET $2`,
		limit, offset,
	)
	if err != nil {
		return nil, fmt.Errorf("list stores: %w", err)
	}
	defer rows.Close()
	var list []*entity.Store
	for rows.Next() {
		var s entity.Store
		if err := rows.Scan(&s.ID, &s.Name, &s.Address, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan store: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

// Delete elimina una tienda por ID.
func (r *StoreRepo) Delete(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM stores WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete store: %w", err)
	}
	return nil
}
