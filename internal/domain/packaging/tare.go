package packaging

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jhoicas/Empaque-api/internal/domain"
	"github.com/shopspring/decimal"
)

// PackageType tipo de empaque.
type PackageType string

// Tipos de empaque admitidos.
const (
	PackagePouch PackageType = "pouch"
	PackageBag   PackageType = "bag"
	PackageBox   PackageType = "box"
)

// DefaultTare es la tara devuelta cuando el tipo es desconocido o ninguna banda aplica.
var DefaultTare = decimal.NewFromInt(1)

// TareBand banda de la tabla: aplica a paquetes de hasta MaxGrams gramos.
// MaxGrams cero significa banda abierta (sin límite superior).
type TareBand struct {
	MaxGrams  decimal.Decimal
	TareGrams decimal.Decimal
}

func (b TareBand) covers(grams decimal.Decimal) bool {
	return b.MaxGrams.IsZero() || b.MaxGrams.GreaterThanOrEqual(grams)
}

// TareTable bandas ordenadas por tipo de empaque.
type TareTable map[PackageType][]TareBand

func band(maxGrams, tare int64) TareBand {
	return TareBand{MaxGrams: decimal.NewFromInt(maxGrams), TareGrams: decimal.NewFromInt(tare)}
}

// DefaultTareTable tabla estática de taras aproximadas (gramos de material de empaque).
// La última banda de cada tipo es abierta.
func DefaultTareTable() TareTable {
	return TareTable{
		PackagePouch: {
			band(100, 2),
			band(250, 4),
			band(500, 6),
			band(1000, 10),
			band(0, 25),
		},
		PackageBag: {
			band(1000, 15),
			band(5000, 40),
			band(10000, 60),
			band(25000, 120),
			band(0, 200),
		},
		PackageBox: {
			band(1000, 50),
			band(5000, 150),
			band(10000, 250),
			band(0, 400),
		},
	}
}

// ParsePackageType valida el tipo de empaque.
func ParsePackageType(s string) (PackageType, error) {
	t := PackageType(strings.ToLower(strings.TrimSpace(s)))
	switch t {
	case PackagePouch, PackageBag, PackageBox:
		return t, nil
	}
	return "", fmt.Errorf("%w: %q", domain.ErrUnknownPackage, s)
}

// Normalize ordena las bandas de cada tipo (abierta al final) y verifica que las taras sean
// positivas y no decrecientes, y que cada tipo tenga exactamente una banda abierta. Así la
// estimación nunca baja al crecer el tamaño, ni cae a DefaultTare por encima de la última banda.
func (t TareTable) Normalize() error {
	for pt, bands := range t {
		open := 0
		for _, b := range bands {
			if !b.TareGrams.IsPositive() {
				return fmt.Errorf("%w: tara no positiva para %s", domain.ErrInvalidInput, pt)
			}
			if b.MaxGrams.IsNegative() {
				return fmt.Errorf("%w: máximo negativo para %s", domain.ErrInvalidInput, pt)
			}
			if b.MaxGrams.IsZero() {
				open++
			}
		}
		if open > 1 {
			return fmt.Errorf("%w: más de una banda abierta para %s", domain.ErrInvalidInput, pt)
		}
		if open == 0 {
			return fmt.Errorf("%w: %s necesita una banda abierta (sin max_grams) al final", domain.ErrInvalidInput, pt)
		}
		sort.SliceStable(bands, func(i, j int) bool {
			a, b := bands[i], bands[j]
			if a.MaxGrams.IsZero() != b.MaxGrams.IsZero() {
				return b.MaxGrams.IsZero()
			}
			return a.MaxGrams.LessThan(b.MaxGrams)
		})
		for i := 1; i < len(bands); i++ {
			if bands[i].TareGrams.LessThan(bands[i-1].TareGrams) {
				return fmt.Errorf("%w: tara decreciente para %s (%s g después de %s g)",
					domain.ErrInvalidInput, pt, bands[i].TareGrams, bands[i-1].TareGrams)
			}
		}
	}
	return nil
}

// Estimate devuelve la tara en gramos para un paquete del tipo y tamaño dados: la de la
// primera banda cuyo máximo es >= al tamaño en gramos, o DefaultTare si ninguna aplica.
func (t TareTable) Estimate(pkgType string, size decimal.Decimal, unit string) decimal.Decimal {
	bands, ok := t[PackageType(pkgType)]
	if !ok {
		return DefaultTare
	}
	grams := ToGrams(size, unit)
	for _, b := range bands {
		if b.covers(grams) {
			return b.TareGrams
		}
	}
	return DefaultTare
}

// MaxPackets número teórico máximo de paquetes: floor(gramosAlmacenados / taraGramos).
func (t TareTable) MaxPackets(storedKg decimal.Decimal, pkgType string, size decimal.Decimal, unit string) int64 {
	tare := t.Estimate(pkgType, size, unit)
	if !tare.IsPositive() || !storedKg.IsPositive() {
		return 0
	}
	storedGrams := storedKg.Mul(thousand)
	return storedGrams.Div(tare).Floor().IntPart()
}
