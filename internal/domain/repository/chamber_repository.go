package repository

import (
	"context"

	"github.com/jhoicas/Empaque-api/internal/domain/entity"
)

// ChamberRepository define el puerto de persistencia para cámaras (DIP).
type ChamberRepository interface {
	Create(ctx context.Context, chamber *entity.Chamber) error
	GetByID(ctx context.Context, id string) (*entity.Chamber, error)
	Update(ctx context.Context, chamber *entity.Chamber) error
	List(ctx context.Context, limit, offset int) ([]*entity.Chamber, error)
	// ListAll devuelve el roster completo (usado por el flujo de empaque).
	ListAll(ctx context.Context) ([]*entity.Chamber, error)
	Delete(ctx context.Context, id string) error
}
