package memory

import (
	"context"

	"github.com/jhoicas/Empaque-api/internal/domain/entity"
	"github.com/jhoicas/Empaque-api/internal/domain/repository"
)

var _ repository.PurchaseRepository = (*PurchaseRepo)(nil)

// PurchaseRepo compras de materia prima en memoria.
type PurchaseRepo struct {
	s      *Store
	locked bool
}

func (r *PurchaseRepo) Create(_ context.Context, p *entity.RawMaterialPurchase) error {
	return r.s.do(r.locked, func(st *state) error {
		st.purchases = append(st.purchases, *p)
		return nil
	})
}
