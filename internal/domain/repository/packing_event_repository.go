package repository

import (
	"context"

	"github.com/jhoicas/Empaque-api/internal/domain/entity"
)

// PackingEventRepository define el puerto de persistencia para eventos de empaque.
type PackingEventRepository interface {
	Create(ctx context.Context, event *entity.PackingEvent) error
	GetByID(ctx context.Context, id string) (*entity.PackingEvent, error)
	ListByBatch(ctx context.Context, batchID string) ([]*entity.PackingEvent, error)
	List(ctx context.Context, productID string, limit, offset int) ([]*entity.PackingEvent, error)
}
