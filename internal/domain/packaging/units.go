// Package packaging contiene la lógica pura de conciliación de empaque: normalización de
// unidades, estimación de tara, construcción y validación del plan de empaque.
// Nada en este paquete hace I/O; todas las funciones operan sobre valores del caller.
package packaging

import (
	"fmt"
	"strings"

	"github.com/jhoicas/Empaque-api/internal/domain"
	"github.com/shopspring/decimal"
)

// Unit es la unidad de peso de un tamaño de paquete o contenedor.
type Unit string

// Unidades admitidas.
const (
	UnitGram     Unit = "gm"
	UnitKilogram Unit = "kg"
)

var thousand = decimal.NewFromInt(1000)

// ToKilograms expresa qty en kilogramos. "gm" se divide entre 1000, "kg" queda igual y
// cualquier otra unidad devuelve cero sin error; para validar usar ParseUnit.
func ToKilograms(qty decimal.Decimal, unit string) decimal.Decimal {
	switch Unit(unit) {
	case UnitGram:
		return qty.Div(thousand)
	case UnitKilogram:
		return qty
	default:
		return decimal.Zero
	}
}

// ToGrams expresa qty en gramos, con el mismo contrato de cero para unidades desconocidas.
func ToGrams(qty decimal.Decimal, unit string) decimal.Decimal {
	switch Unit(unit) {
	case UnitGram:
		return qty
	case UnitKilogram:
		return qty.Mul(thousand)
	default:
		return decimal.Zero
	}
}

// ParseUnit valida la unidad (sin distinguir mayúsculas ni espacios).
func ParseUnit(unit string) (Unit, error) {
	u := Unit(strings.ToLower(strings.TrimSpace(unit)))
	switch u {
	case UnitGram, UnitKilogram:
		return u, nil
	}
	return "", fmt.Errorf("%w: %q", domain.ErrUnknownUnit, unit)
}

// ContainerKilograms devuelve el total en kg de count contenedores de size/unit.
func ContainerKilograms(count int, size decimal.Decimal, unit string) decimal.Decimal {
	return ToKilograms(size, unit).Mul(decimal.NewFromInt(int64(count)))
}
