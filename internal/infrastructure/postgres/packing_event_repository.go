package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Empaque-api/internal/domain/entity"
	"github.com/jhoicas/Empaque-api/internal/domain/repository"
)

var _ repository.PackingEventRepository = (*PackingEventRepo)(nil)

const packingEventColumns = `id, batch_id, product_id, product_name, sku_id, sku_label, packet_descriptor,
	bags_produced, packets_per_bag, total_packets, storage, rm_consumption, created_at`

// PackingEventRepo implementación sobre PostgreSQL. Storage y RMConsumption van en columnas JSONB.
type PackingEventRepo struct {
	q Querier
}

// NewPackingEventRepository construye el adaptador. Pasar pool o tx (Querier).
func NewPackingEventRepository(q Querier) *PackingEventRepo {
	return &PackingEventRepo{q: q}
}

// Create persiste un evento de empaque.
func (r *PackingEventRepo) Create(ctx context.Context, ev *entity.PackingEvent) error {
	storage, err := toJSONB(ev.Storage)
	if err != nil {
		return err
	}
	consumption, err := toJSONB(ev.RMConsumption)
	if err != nil {
		return err
	}
	query := `
		INSERT INTO packing_events (` + packingEventColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err = r.q.Exec(ctx, query,
		ev.ID, ev.BatchID, ev.ProductID, ev.ProductName, ev.SKUID, ev.SKULabel, ev.PacketDescriptor,
		ev.BagsProduced, ev.PacketsPerBag, ev.TotalPackets, storage, consumption, ev.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert packing event: %w", err)
	}
	return nil
}

// GetByID obtiene un evento por ID; (nil, nil) si no existe.
func (r *PackingEventRepo) GetByID(ctx context.Context, id string) (*entity.PackingEvent, error) {
	query := `SELECT ` + packingEventColumns + ` FROM packing_events WHERE id = $1`
	ev, err := scanPackingEvent(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get packing event: %w", err)
	}
	return ev, nil
}

// ListByBatch devuelve los eventos de un lote en orden de inserción del plan.
func (r *PackingEventRepo) ListByBatch(ctx context.Context, batchID string) ([]*entity.PackingEvent, error) {
	query := `SELECT ` + packingEventColumns + ` FROM packing_events WHERE batch_id = $1 ORDER BY created_at, seq`
	return r.list(ctx, query, batchID)
}

// List lista eventos (más recientes primero); productID vacío = todos.
func (r *PackingEventRepo) List(ctx context.Context, productID string, limit, offset int) ([]*entity.PackingEvent, error) {
	if productID == "" {
		query := `SELECT ` + packingEventColumns + ` FROM packing_events
			ORDER BY created_at DESC, seq DESC LIMIT $1 OFFSET $2`
		return r.list(ctx, query, limit, offset)
	}
	query := `SELECT ` + packingEventColumns + ` FROM packing_events WHERE product_id = $1
		ORDER BY created_at DESC, seq DESC LIMIT $2 OFFSET $3`
	return r.list(ctx, query, productID, limit, offset)
}

func (r *PackingEventRepo) list(ctx context.Context, query string, args ...any) ([]*entity.PackingEvent, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list packing events: %w", err)
	}
	defer rows.Close()
	var list []*entity.PackingEvent
	for rows.Next() {
		ev, err := scanPackingEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("scan packing event: %w", err)
		}
		list = append(list, ev)
	}
	return list, rows.Err()
}

func scanPackingEvent(row pgx.Row) (*entity.PackingEvent, error) {
	var ev entity.PackingEvent
	var storage, consumption []byte
	err := row.Scan(
		&ev.ID, &ev.BatchID, &ev.ProductID, &ev.ProductName, &ev.SKUID, &ev.SKULabel, &ev.PacketDescriptor,
		&ev.BagsProduced, &ev.PacketsPerBag, &ev.TotalPackets, &storage, &consumption, &ev.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	if ev.Storage, err = fromJSONB[entity.StorageAllocation](storage); err != nil {
		return nil, err
	}
	if ev.RMConsumption, err = fromJSONB[entity.RMChamberSource](consumption); err != nil {
		return nil, err
	}
	return &ev, nil
}
