package usecase_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Empaque-api/internal/application/dto"
	"github.com/jhoicas/Empaque-api/internal/application/usecase"
	"github.com/jhoicas/Empaque-api/internal/domain"
	"github.com/jhoicas/Empaque-api/internal/infrastructure/memory"
)

func TestChamberUseCase_Create(t *testing.T) {
	ctx := context.Background()
	uc := usecase.NewChamberUseCase(memory.NewStore().Chambers())

	out, err := uc.Create(ctx, dto.CreateChamberRequest{Name: "  Seca 1 ", Capacity: decimal.NewFromInt(800), Tag: "dry"})
	require.NoError(t, err)
	assert.NotEmpty(t, out.ID)
	assert.Equal(t, "Seca 1", out.Name)

	cases := map[string]struct {
		in  dto.CreateChamberRequest
		err error
	}{
		"sin nombre":        {dto.CreateChamberRequest{Capacity: decimal.NewFromInt(1), Tag: "dry"}, domain.ErrInvalidInput},
		"capacidad cero":    {dto.CreateChamberRequest{Name: "A", Tag: "dry"}, domain.ErrInvalidInput},
		"etiqueta inválida": {dto.CreateChamberRequest{Name: "A", Capacity: decimal.NewFromInt(1), Tag: "cold"}, domain.ErrInvalidChamberTag},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := uc.Create(ctx, tc.in)
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

func TestChamberUseCase_UpdateYDelete(t *testing.T) {
	ctx := context.Background()
	uc := usecase.NewChamberUseCase(memory.NewStore().Chambers())
	created, err := uc.Create(ctx, dto.CreateChamberRequest{Name: "Seca 1", Capacity: decimal.NewFromInt(800), Tag: "dry"})
	require.NoError(t, err)

	capacity := decimal.NewFromInt(1200)
	updated, err := uc.Update(ctx, created.ID, dto.UpdateChamberRequest{Capacity: &capacity})
	require.NoError(t, err)
	assert.True(t, updated.Capacity.Equal(capacity))
	assert.Equal(t, "dry", updated.Tag)

	bad := "tibia"
	_, err = uc.Update(ctx, created.ID, dto.UpdateChamberRequest{Tag: &bad})
	assert.ErrorIs(t, err, domain.ErrInvalidChamberTag)

	missing, err := uc.Update(ctx, "no-existe", dto.UpdateChamberRequest{})
	require.NoError(t, err)
	assert.Nil(t, missing)

	require.NoError(t, uc.Delete(ctx, created.ID))
	assert.ErrorIs(t, uc.Delete(ctx, created.ID), domain.ErrNotFound)
}
