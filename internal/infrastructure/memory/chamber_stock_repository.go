package memory

import (
	"context"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Empaque-api/internal/domain/entity"
	"github.com/jhoicas/Empaque-api/internal/domain/repository"
)

var _ repository.ChamberStockRepository = (*ChamberStockRepo)(nil)

// ChamberStockRepo stock por cámara+ítem en memoria.
type ChamberStockRepo struct {
	s      *Store
	locked bool
}

func (r *ChamberStockRepo) Get(_ context.Context, chamberID, item string) (*entity.ChamberStock, error) {
	var out *entity.ChamberStock
	err := r.s.do(r.locked, func(st *state) error {
		s, ok := st.stock[stockKey{chamberID, item}]
		if !ok {
			s = entity.ChamberStock{ChamberID: chamberID, Item: item, Quantity: decimal.Zero}
		}
		out = &s
		return nil
	})
	return out, err
}

// GetForUpdate dentro de una transacción el lock del store ya está tomado.
func (r *ChamberStockRepo) GetForUpdate(ctx context.Context, chamberID, item string) (*entity.ChamberStock, error) {
	return r.Get(ctx, chamberID, item)
}

func (r *ChamberStockRepo) Upsert(_ context.Context, stock *entity.ChamberStock) error {
	return r.s.do(r.locked, func(st *state) error {
		st.stock[stockKey{stock.ChamberID, stock.Item}] = *stock
		return nil
	})
}

func (r *ChamberStockRepo) ListByChamber(_ context.Context, chamberID string) ([]*entity.ChamberStock, error) {
	var list []*entity.ChamberStock
	err := r.s.do(r.locked, func(st *state) error {
		for k, s := range st.stock {
			if k.chamberID == chamberID {
				list = append(list, &s)
			}
		}
		return nil
	})
	sort.Slice(list, func(i, j int) bool { return list[i].Item < list[j].Item })
	return list, err
}
