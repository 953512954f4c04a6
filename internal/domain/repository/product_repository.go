package repository

import (
	"context"

	"github.com/jhoicas/Empaque-api/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para productos y sus presentaciones.
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	List(ctx context.Context, limit, offset int) ([]*entity.Product, error)
}
