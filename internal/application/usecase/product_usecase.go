package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Empaque-api/internal/application/dto"
	"github.com/jhoicas/Empaque-api/internal/domain"
	"github.com/jhoicas/Empaque-api/internal/domain/entity"
	"github.com/jhoicas/Empaque-api/internal/domain/packaging"
	"github.com/jhoicas/Empaque-api/internal/domain/repository"
)

// ProductUseCase casos de uso del catálogo de productos. Las existencias por SKU
// (PackageSize.Count) se informan al crear; el stock en cámaras va por movimientos.
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// Create crea un producto. Las unidades se normalizan y los SKUs no pueden repetirse.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if strings.TrimSpace(in.Name) == "" || strings.TrimSpace(in.RawMaterial) == "" {
		return nil, fmt.Errorf("%w: name y raw_material son requeridos", domain.ErrInvalidInput)
	}
	pkgType, err := packaging.ParsePackageType(in.PackageType)
	if err != nil {
		return nil, err
	}
	if len(in.PackageSizes) == 0 {
		return nil, fmt.Errorf("%w: package_sizes es requerido", domain.ErrInvalidInput)
	}
	sizes := make([]entity.PackageSize, 0, len(in.PackageSizes))
	seen := make(map[string]bool, len(in.PackageSizes))
	for _, ps := range in.PackageSizes {
		unit, err := packaging.ParseUnit(ps.Unit)
		if err != nil {
			return nil, err
		}
		if !ps.Size.IsPositive() || ps.Count < 0 {
			return nil, fmt.Errorf("%w: presentación %s %s", domain.ErrInvalidInput, ps.Size, ps.Unit)
		}
		sku := packaging.SKUID(ps.Size, string(unit))
		if seen[sku] {
			return nil, fmt.Errorf("%w: SKU %s repetido", domain.ErrDuplicate, sku)
		}
		seen[sku] = true
		sizes = append(sizes, entity.PackageSize{Size: ps.Size, Unit: string(unit), Count: ps.Count})
	}
	now := time.Now()
	product := &entity.Product{
		ID:           uuid.New().String(),
		Name:         strings.TrimSpace(in.Name),
		RawMaterial:  strings.TrimSpace(in.RawMaterial),
		PackageType:  string(pkgType),
		PackageSizes: sizes,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(ctx, product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetByID obtiene un producto por ID. Devuelve (nil, nil) si no existe.
func (uc *ProductUseCase) GetByID(ctx context.Context, id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// List lista productos con paginación.
func (uc *ProductUseCase) List(ctx context.Context, page dto.PageRequest) (*dto.ProductListResponse, error) {
	page.Normalize()
	list, err := uc.repo.List(ctx, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return &dto.ProductListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:           p.ID,
		Name:         p.Name,
		RawMaterial:  p.RawMaterial,
		PackageType:  p.PackageType,
		PackageSizes: p.PackageSizes,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}
