package memory

import (
	"context"

	"github.com/jhoicas/Empaque-api/internal/domain"
	"github.com/jhoicas/Empaque-api/internal/domain/entity"
	"github.com/jhoicas/Empaque-api/internal/domain/repository"
)

var _ repository.PackingEventRepository = (*PackingEventRepo)(nil)

// PackingEventRepo eventos de empaque en memoria.
type PackingEventRepo struct {
	s      *Store
	locked bool
}

func (r *PackingEventRepo) Create(_ context.Context, ev *entity.PackingEvent) error {
	return r.s.do(r.locked, func(st *state) error {
		for _, other := range st.events {
			if other.ID == ev.ID {
				return domain.ErrDuplicate
			}
		}
		st.events = append(st.events, copyEvent(*ev))
		return nil
	})
}

func (r *PackingEventRepo) GetByID(_ context.Context, id string) (*entity.PackingEvent, error) {
	var out *entity.PackingEvent
	err := r.s.do(r.locked, func(st *state) error {
		for _, ev := range st.events {
			if ev.ID == id {
				ev = copyEvent(ev)
				out = &ev
				return nil
			}
		}
		return nil
	})
	return out, err
}

// ListByBatch en el orden en que se registraron.
func (r *PackingEventRepo) ListByBatch(_ context.Context, batchID string) ([]*entity.PackingEvent, error) {
	var list []*entity.PackingEvent
	err := r.s.do(r.locked, func(st *state) error {
		for _, ev := range st.events {
			if ev.BatchID == batchID {
				ev = copyEvent(ev)
				list = append(list, &ev)
			}
		}
		return nil
	})
	return list, err
}

// List más recientes primero; productID vacío = todos.
func (r *PackingEventRepo) List(_ context.Context, productID string, limit, offset int) ([]*entity.PackingEvent, error) {
	var list []*entity.PackingEvent
	err := r.s.do(r.locked, func(st *state) error {
		for i := len(st.events) - 1; i >= 0; i-- {
			ev := st.events[i]
			if productID != "" && ev.ProductID != productID {
				continue
			}
			ev = copyEvent(ev)
			list = append(list, &ev)
		}
		return nil
	})
	return page(list, limit, offset), err
}
