package memory

import (
	"context"
	"sort"

	"github.com/jhoicas/Empaque-api/internal/domain"
	"github.com/jhoicas/Empaque-api/internal/domain/entity"
	"github.com/jhoicas/Empaque-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo productos en memoria.
type ProductRepo struct {
	s      *Store
	locked bool
}

func (r *ProductRepo) Create(_ context.Context, p *entity.Product) error {
	return r.s.do(r.locked, func(st *state) error {
		if _, ok := st.products[p.ID]; ok {
			return domain.ErrDuplicate
		}
		for _, other := range st.products {
			if other.Name == p.Name {
				return domain.ErrDuplicate
			}
		}
		stored := *p
		stored.PackageSizes = copyPackageSizes(p.PackageSizes)
		st.products[p.ID] = stored
		return nil
	})
}

func (r *ProductRepo) GetByID(_ context.Context, id string) (*entity.Product, error) {
	var out *entity.Product
	err := r.s.do(r.locked, func(st *state) error {
		if p, ok := st.products[id]; ok {
			p.PackageSizes = copyPackageSizes(p.PackageSizes)
			out = &p
		}
		return nil
	})
	return out, err
}

func (r *ProductRepo) List(_ context.Context, limit, offset int) ([]*entity.Product, error) {
	var list []*entity.Product
	err := r.s.do(r.locked, func(st *state) error {
		for _, p := range st.products {
			p.PackageSizes = copyPackageSizes(p.PackageSizes)
			list = append(list, &p)
		}
		return nil
	})
	sort.Slice(list, func(i, j int) bool { return list[i].Name < list[j].Name })
	return page(list, limit, offset), err
}
