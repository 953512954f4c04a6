package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Empaque-api/internal/domain"
	"github.com/jhoicas/Empaque-api/internal/domain/entity"
	"github.com/jhoicas/Empaque-api/internal/domain/repository"
)

var _ repository.ChamberStockRepository = (*ChamberStockRepo)(nil)

// ChamberStockRepo implementación de ChamberStockRepository sobre PostgreSQL (usable con pool o tx).
type ChamberStockRepo struct {
	q Querier
}

// NewChamberStockRepository construye el adaptador de stock. Pasar pool o tx (Querier).
func NewChamberStockRepository(q Querier) *ChamberStockRepo {
	return &ChamberStockRepo{q: q}
}

// Get obtiene el stock actual de un ítem en una cámara; cero si no hay fila.
func (r *ChamberStockRepo) Get(ctx context.Context, chamberID, item string) (*entity.ChamberStock, error) {
	query := `
		SELECT chamber_id, item, quantity, updated_at
		FROM chamber_stock WHERE chamber_id = $1 AND item = $2`
	return r.get(ctx, query, chamberID, item)
}

// GetForUpdate obtiene el stock y bloquea la fila para update (SELECT FOR UPDATE).
// Si la fila no existe la crea en cero antes de bloquearla: FOR UPDATE no bloquea filas
// ausentes y dos transacciones concurrentes leerían ambas cero.
func (r *ChamberStockRepo) GetForUpdate(ctx context.Context, chamberID, item string) (*entity.ChamberStock, error) {
	ensure := `
		INSERT INTO chamber_stock (chamber_id, item, quantity, updated_at)
		VALUES ($1, $2, 0, now())
		ON CONFLICT (chamber_id, item) DO NOTHING`
	if _, err := r.q.Exec(ctx, ensure, chamberID, item); err != nil {
		if isForeignKeyViolation(err) {
			return nil, fmt.Errorf("%w: %s", domain.ErrChamberNotFound, chamberID)
		}
		return nil, fmt.Errorf("ensure chamber stock: %w", err)
	}
	query := `
		SELECT chamber_id, item, quantity, updated_at
		FROM chamber_stock WHERE chamber_id = $1 AND item = $2
		FOR UPDATE`
	return r.get(ctx, query, chamberID, item)
}

func (r *ChamberStockRepo) get(ctx context.Context, query, chamberID, item string) (*entity.ChamberStock, error) {
	var s entity.ChamberStock
	err := r.q.QueryRow(ctx, query, chamberID, item).Scan(&s.ChamberID, &s.Item, &s.Quantity, &s.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &entity.ChamberStock{ChamberID: chamberID, Item: item, Quantity: decimal.Zero}, nil
		}
		return nil, fmt.Errorf("get chamber stock: %w", err)
	}
	return &s, nil
}

// Upsert inserta o actualiza la cantidad (por cámara e ítem).
func (r *ChamberStockRepo) Upsert(ctx context.Context, stock *entity.ChamberStock) error {
	query := `
		INSERT INTO chamber_stock (chamber_id, item, quantity, updated_at)
		VALUES ($1, $2, $3, now())
		ON CONFLICT (chamber_id, item)
		DO UPDATE SET quantity = EXCLUDED.quantity, updated_at = now()`
	_, err := r.q.Exec(ctx, query, stock.ChamberID, stock.Item, stock.Quantity)
	if err != nil {
		return fmt.Errorf("upsert chamber stock: %w", err)
	}
	return nil
}

// ListByChamber lista el stock de una cámara ordenado por ítem.
func (r *ChamberStockRepo) ListByChamber(ctx context.Context, chamberID string) ([]*entity.ChamberStock, error) {
	query := `
		SELECT chamber_id, item, quantity, updated_at
		FROM chamber_stock WHERE chamber_id = $1 ORDER BY item`
	rows, err := r.q.Query(ctx, query, chamberID)
	if err != nil {
		return nil, fmt.Errorf("list chamber stock: %w", err)
	}
	defer rows.Close()
	var list []*entity.ChamberStock
	for rows.Next() {
		var s entity.ChamberStock
		if err := rows.Scan(&s.ChamberID, &s.Item, &s.Quantity, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan chamber stock: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}
