package memory

import (
	"context"
	"sort"

	"github.com/jhoicas/Empaque-api/internal/domain"
	"github.com/jhoicas/Empaque-api/internal/domain/entity"
	"github.com/jhoicas/Empaque-api/internal/domain/repository"
)

var _ repository.ChamberRepository = (*ChamberRepo)(nil)

// ChamberRepo cámaras en memoria. Los nombres son únicos, como en la tabla chambers.
type ChamberRepo struct {
	s      *Store
	locked bool
}

func (r *ChamberRepo) Create(_ context.Context, c *entity.Chamber) error {
	return r.s.do(r.locked, func(st *state) error {
		if _, ok := st.chambers[c.ID]; ok {
			return domain.ErrDuplicate
		}
		if nameTaken(st, c.ID, c.Name) {
			return domain.ErrDuplicate
		}
		st.chambers[c.ID] = *c
		return nil
	})
}

func (r *ChamberRepo) GetByID(_ context.Context, id string) (*entity.Chamber, error) {
	var out *entity.Chamber
	err := r.s.do(r.locked, func(st *state) error {
		if c, ok := st.chambers[id]; ok {
			out = &c
		}
		return nil
	})
	return out, err
}

func (r *ChamberRepo) Update(_ context.Context, c *entity.Chamber) error {
	return r.s.do(r.locked, func(st *state) error {
		prev, ok := st.chambers[c.ID]
		if !ok {
			return domain.ErrNotFound
		}
		if nameTaken(st, c.ID, c.Name) {
			return domain.ErrDuplicate
		}
		updated := *c
		updated.CreatedAt = prev.CreatedAt
		st.chambers[c.ID] = updated
		return nil
	})
}

func (r *ChamberRepo) List(ctx context.Context, limit, offset int) ([]*entity.Chamber, error) {
	all, err := r.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return page(all, limit, offset), nil
}

// ListAll devuelve las cámaras ordenadas por nombre.
func (r *ChamberRepo) ListAll(_ context.Context) ([]*entity.Chamber, error) {
	var list []*entity.Chamber
	err := r.s.do(r.locked, func(st *state) error {
		for _, c := range st.chambers {
			list = append(list, &c)
		}
		return nil
	})
	sort.Slice(list, func(i, j int) bool { return list[i].Name < list[j].Name })
	return list, err
}

// Delete falla con ErrConflict si la cámara todavía tiene stock registrado.
func (r *ChamberRepo) Delete(_ context.Context, id string) error {
	return r.s.do(r.locked, func(st *state) error {
		if _, ok := st.chambers[id]; !ok {
			return domain.ErrNotFound
		}
		for k := range st.stock {
			if k.chamberID == id {
				return domain.ErrConflict
			}
		}
		delete(st.chambers, id)
		return nil
	})
}

func nameTaken(st *state, id, name string) bool {
	for _, c := range st.chambers {
		if c.ID != id && c.Name == name {
			return true
		}
	}
	return false
}

func page[T any](list []T, limit, offset int) []T {
	if offset >= len(list) {
		return nil
	}
	list = list[offset:]
	if limit > 0 && limit < len(list) {
		list = list[:limit]
	}
	return list
}
