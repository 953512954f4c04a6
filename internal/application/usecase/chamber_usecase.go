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
	"github.com/jhoicas/Empaque-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

// ChamberUseCase casos de uso CRUD para cámaras.
type ChamberUseCase struct {
	repo repository.ChamberRepository
}

// NewChamberUseCase construye el caso de uso.
func NewChamberUseCase(repo repository.ChamberRepository) *ChamberUseCase {
	return &ChamberUseCase{repo: repo}
}

// Create crea una nueva cámara.
func (uc *ChamberUseCase) Create(ctx context.Context, in dto.CreateChamberRequest) (*dto.ChamberResponse, error) {
	if err := validateChamber(in.Name, in.Capacity, in.Tag); err != nil {
		return nil, err
	}
	now := time.Now()
	chamber := &entity.Chamber{
		ID:        uuid.New().String(),
		Name:      strings.TrimSpace(in.Name),
		Capacity:  in.Capacity,
		Tag:       in.Tag,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(ctx, chamber); err != nil {
		return nil, err
	}
	return toChamberResponse(chamber), nil
}

// GetByID obtiene una cámara por ID. Devuelve (nil, nil) si no existe.
func (uc *ChamberUseCase) GetByID(ctx context.Context, id string) (*dto.ChamberResponse, error) {
	chamber, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if chamber == nil {
		return nil, nil
	}
	return toChamberResponse(chamber), nil
}

// Update actualiza una cámara.
func (uc *ChamberUseCase) Update(ctx context.Context, id string, in dto.UpdateChamberRequest) (*dto.ChamberResponse, error) {
	chamber, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if chamber == nil {
		return nil, nil
	}
	if in.Name != nil {
		chamber.Name = strings.TrimSpace(*in.Name)
	}
	if in.Capacity != nil {
		chamber.Capacity = *in.Capacity
	}
	if in.Tag != nil {
		chamber.Tag = *in.Tag
	}
	if err := validateChamber(chamber.Name, chamber.Capacity, chamber.Tag); err != nil {
		return nil, err
	}
	chamber.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, chamber); err != nil {
		return nil, err
	}
	return toChamberResponse(chamber), nil
}

// List lista cámaras con paginación.
func (uc *ChamberUseCase) List(ctx context.Context, page dto.PageRequest) (*dto.ChamberListResponse, error) {
	page.Normalize()
	list, err := uc.repo.List(ctx, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ChamberResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *toChamberResponse(c))
	}
	return &dto.ChamberListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

// Delete elimina una cámara por ID.
func (uc *ChamberUseCase) Delete(ctx context.Context, id string) error {
	chamber, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if chamber == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(ctx, id)
}

func validateChamber(name string, capacity decimal.Decimal, tag string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: name es requerido", domain.ErrInvalidInput)
	}
	if !capacity.IsPositive() {
		return fmt.Errorf("%w: capacity debe ser positiva", domain.ErrInvalidInput)
	}
	if !entity.ValidChamberTag(tag) {
		return fmt.Errorf("%w: %q (use dry o frozen)", domain.ErrInvalidChamberTag, tag)
	}
	return nil
}

func toChamberResponse(c *entity.Chamber) *dto.ChamberResponse {
	if c == nil {
		return nil
	}
	return &dto.ChamberResponse{
		ID:        c.ID,
		Name:      c.Name,
		Capacity:  c.Capacity,
		Tag:       c.Tag,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}
