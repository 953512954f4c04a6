package repository

import (
	"context"
	"time"

	"github.com/jhoicas/Empaque-api/internal/domain/entity"
)

// ChamberMovementRepository define el puerto de persistencia para movimientos de cámara.
type ChamberMovementRepository interface {
	Create(ctx context.Context, movement *entity.ChamberMovement) error
	ListByChamber(ctx context.Context, chamberID string, from, to *time.Time, limit, offset int) ([]*entity.ChamberMovement, error)
}
