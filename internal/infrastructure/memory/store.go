// Package memory implementa los puertos de persistencia en memoria. Lo usan las pruebas
// de handlers y casos de uso, y packctl cuando no hay base de datos.
package memory

import (
	"sync"

	"github.com/jhoicas/Empaque-api/internal/domain/entity"
)

type stockKey struct {
	chamberID string
	item      string
}

type state struct {
	chambers  map[string]entity.Chamber
	products  map[string]entity.Product
	stock     map[stockKey]entity.ChamberStock
	movements []entity.ChamberMovement
	purchases []entity.RawMaterialPurchase
	events    []entity.PackingEvent // orden de inserción
}

// clone copia el estado para poder deshacer una transacción. Los valores guardados nunca
// se modifican en sitio, basta con copiar mapas y slices.
func (st *state) clone() state {
	out := state{
		chambers:  make(map[string]entity.Chamber, len(st.chambers)),
		products:  make(map[string]entity.Product, len(st.products)),
		stock:     make(map[stockKey]entity.ChamberStock, len(st.stock)),
		movements: append([]entity.ChamberMovement(nil), st.movements...),
		purchases: append([]entity.RawMaterialPurchase(nil), st.purchases...),
		events:    append([]entity.PackingEvent(nil), st.events...),
	}
	for k, v := range st.chambers {
		out.chambers[k] = v
	}
	for k, v := range st.products {
		out.products[k] = v
	}
	for k, v := range st.stock {
		out.stock[k] = v
	}
	return out
}

// Store guarda todo el estado bajo un único mutex.
type Store struct {
	mu sync.Mutex
	st state
}

// NewStore crea un store vacío.
func NewStore() *Store {
	return &Store{st: state{
		chambers: make(map[string]entity.Chamber),
		products: make(map[string]entity.Product),
		stock:    make(map[stockKey]entity.ChamberStock),
	}}
}

// do ejecuta fn con el lock tomado, salvo que ya lo tenga el TxRunner.
func (s *Store) do(locked bool, fn func(st *state) error) error {
	if !locked {
		s.mu.Lock()
		defer s.mu.Unlock()
	}
	return fn(&s.st)
}

// Chambers repositorio de cámaras fuera de transacción.
func (s *Store) Chambers() *ChamberRepo { return &ChamberRepo{s: s} }

// Products repositorio de productos.
func (s *Store) Products() *ProductRepo { return &ProductRepo{s: s} }

// Stock repositorio de stock por cámara.
func (s *Store) Stock() *ChamberStockRepo { return &ChamberStockRepo{s: s} }

// Movements repositorio de movimientos.
func (s *Store) Movements() *ChamberMovementRepo { return &ChamberMovementRepo{s: s} }

// Purchases repositorio de compras.
func (s *Store) Purchases() *PurchaseRepo { return &PurchaseRepo{s: s} }

// PackingEvents repositorio de eventos de empaque.
func (s *Store) PackingEvents() *PackingEventRepo { return &PackingEventRepo{s: s} }

// PurchaseCount cantidad de compras guardadas.
func (s *Store) PurchaseCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.st.purchases)
}

func copyPackageSizes(in []entity.PackageSize) []entity.PackageSize {
	return append([]entity.PackageSize(nil), in...)
}

func copyEvent(ev entity.PackingEvent) entity.PackingEvent {
	ev.Storage = append([]entity.StorageAllocation(nil), ev.Storage...)
	ev.RMConsumption = append([]entity.RMChamberSource(nil), ev.RMConsumption...)
	return ev
}
