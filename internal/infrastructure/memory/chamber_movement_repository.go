package memory

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Empaque-api/internal/domain/entity"
	"github.com/jhoicas/Empaque-api/internal/domain/repository"
)

var _ repository.ChamberMovementRepository = (*ChamberMovementRepo)(nil)

// ChamberMovementRepo movimientos en memoria, en orden de inserción.
type ChamberMovementRepo struct {
	s      *Store
	locked bool
}

func (r *ChamberMovementRepo) Create(_ context.Context, m *entity.ChamberMovement) error {
	if m.ID == "" {
		m.ID = uuid.New().String()
	}
	return r.s.do(r.locked, func(st *state) error {
		st.movements = append(st.movements, *m)
		return nil
	})
}

// ListByChamber más recientes primero.
func (r *ChamberMovementRepo) ListByChamber(_ context.Context, chamberID string, from, to *time.Time, limit, offset int) ([]*entity.ChamberMovement, error) {
	var list []*entity.ChamberMovement
	err := r.s.do(r.locked, func(st *state) error {
		for i := len(st.movements) - 1; i >= 0; i-- {
			m := st.movements[i]
			if m.ChamberID != chamberID {
				continue
			}
			if from != nil && m.CreatedAt.Before(*from) {
				continue
			}
			if to != nil && m.CreatedAt.After(*to) {
				continue
			}
			list = append(list, &m)
		}
		return nil
	})
	return page(list, limit, offset), err
}
