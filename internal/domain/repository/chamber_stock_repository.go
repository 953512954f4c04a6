package repository

import (
	"context"

	"github.com/jhoicas/Empaque-api/internal/domain/entity"
)

// ChamberStockRepository define el puerto para consultar/actualizar stock por cámara+ítem.
// Usado dentro de transacciones para garantizar consistencia.
type ChamberStockRepository interface {
	Get(ctx context.Context, chamberID, item string) (*entity.ChamberStock, error)
	// GetForUpdate bloquea la fila para update (SELECT FOR UPDATE). Devuelve stock cero si no existe.
	GetForUpdate(ctx context.Context, chamberID, item string) (*entity.ChamberStock, error)
	Upsert(ctx context.Context, stock *entity.ChamberStock) error
	ListByChamber(ctx context.Context, chamberID string) ([]*entity.ChamberStock, error)
}
