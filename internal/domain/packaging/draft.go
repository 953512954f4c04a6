package packaging

import (
	"fmt"
	"strings"

	"github.com/jhoicas/Empaque-api/internal/domain"
	"github.com/jhoicas/Empaque-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// Roster cámaras conocidas, indexadas por ID.
type Roster map[string]entity.Chamber

// NewRoster construye el índice de cámaras.
func NewRoster(chambers []*entity.Chamber) Roster {
	r := make(Roster, len(chambers))
	for _, c := range chambers {
		if c != nil {
			r[c.ID] = *c
		}
	}
	return r
}

// ProductStage etapa 1: producto a empacar y sus presentaciones.
type ProductStage struct {
	ProductID    string
	ProductName  string
	RawMaterial  string
	PackageType  string
	PackageSizes []entity.PackageSize
}

// ConsumptionStage etapa 2: materia prima tomada de cada cámara.
type ConsumptionStage struct {
	Sources []entity.RMChamberSource
}

// PlanStage etapa 3: bolsas, paquetes por bolsa y asignación a cámaras por SKU.
type PlanStage struct {
	Inputs map[string]PackageInput
}

// Draft borrador de empaque en curso. Tiene un único dueño (quien lo crea) y cada etapa
// se valida al fijarse; el builder y el validador solo reciben copias vía Snapshot.
type Draft struct {
	roster      Roster
	product     *ProductStage
	consumption *ConsumptionStage
	plan        *PlanStage
}

// NewDraft inicia un borrador contra el roster de cámaras dado.
func NewDraft(roster Roster) *Draft {
	return &Draft{roster: roster}
}

// SetProduct fija la etapa de producto. Reemplazar el producto descarta el plan capturado,
// porque sus SKUs dependen de las presentaciones.
func (d *Draft) SetProduct(p ProductStage) error {
	if strings.TrimSpace(p.ProductID) == "" || strings.TrimSpace(p.ProductName) == "" {
		return fmt.Errorf("%w: producto requerido", domain.ErrInvalidInput)
	}
	if len(p.PackageSizes) == 0 {
		return fmt.Errorf("%w: el producto no tiene presentaciones", domain.ErrInvalidInput)
	}
	if p.PackageType != "" {
		if _, err := ParsePackageType(p.PackageType); err != nil {
			return err
		}
	}
	sizes := make([]entity.PackageSize, len(p.PackageSizes))
	seen := make(map[string]bool, len(p.PackageSizes))
	for i, ps := range p.PackageSizes {
		u, err := ParseUnit(ps.Unit)
		if err != nil {
			return fmt.Errorf("presentación %d: %w", i, err)
		}
		if !ps.Size.IsPositive() {
			return fmt.Errorf("%w: presentación %d con tamaño no positivo", domain.ErrInvalidInput, i)
		}
		sku := SKUID(ps.Size, string(u))
		if seen[sku] {
			return fmt.Errorf("%w: presentación %s repetida", domain.ErrInvalidInput, sku)
		}
		seen[sku] = true
		sizes[i] = entity.PackageSize{Size: ps.Size, Unit: string(u), Count: ps.Count}
	}
	p.PackageSizes = sizes
	d.product = &p
	d.plan = nil
	return nil
}

// SetConsumption fija la etapa de consumo de materia prima y calcula los kg de cada fuente.
func (d *Draft) SetConsumption(c ConsumptionStage) error {
	if len(c.Sources) == 0 {
		return fmt.Errorf("%w: sin consumo de materia prima", domain.ErrInvalidInput)
	}
	sources := make([]entity.RMChamberSource, len(c.Sources))
	for i, src := range c.Sources {
		if _, ok := d.roster[src.ChamberID]; !ok {
			return fmt.Errorf("fuente %d: %w: %q", i, domain.ErrChamberNotFound, src.ChamberID)
		}
		u, err := ParseUnit(src.ContainerUnit)
		if err != nil {
			return fmt.Errorf("fuente %d: %w", i, err)
		}
		if src.ContainerCount <= 0 || !src.ContainerSize.IsPositive() {
			return fmt.Errorf("%w: fuente %d con cantidad o tamaño no positivo", domain.ErrInvalidInput, i)
		}
		src.ContainerUnit = string(u)
		src.KgUsed = ContainerKilograms(src.ContainerCount, src.ContainerSize, src.ContainerUnit)
		sources[i] = src
	}
	d.consumption = &ConsumptionStage{Sources: sources}
	return nil
}

// SetPlan fija la etapa del plan. Requiere el producto, porque los SKUs capturados
// deben existir entre sus presentaciones.
func (d *Draft) SetPlan(p PlanStage) error {
	if d.product == nil {
		return fmt.Errorf("%w: falta la etapa de producto", domain.ErrDraftIncomplete)
	}
	known := make(map[string]bool, len(d.product.PackageSizes))
	for _, ps := range d.product.PackageSizes {
		known[SKUID(ps.Size, ps.Unit)] = true
	}
	inputs := make(map[string]PackageInput, len(p.Inputs))
	for sku, in := range p.Inputs {
		if !known[sku] {
			return fmt.Errorf("%w: SKU %q no pertenece al producto", domain.ErrInvalidInput, sku)
		}
		if in.BagCount < 0 || in.PacketsPerBag < 0 {
			return fmt.Errorf("%w: SKU %q con cantidades negativas", domain.ErrInvalidInput, sku)
		}
		chambers := make(map[string]int, len(in.Chambers))
		for chamberID, bags := range in.Chambers {
			if _, ok := d.roster[chamberID]; !ok {
				return fmt.Errorf("SKU %q: %w: %q", sku, domain.ErrChamberNotFound, chamberID)
			}
			if bags < 0 {
				return fmt.Errorf("%w: SKU %q con bolsas negativas en %q", domain.ErrInvalidInput, sku, chamberID)
			}
			chambers[chamberID] = bags
		}
		in.Chambers = chambers
		inputs[sku] = in
	}
	d.plan = &PlanStage{Inputs: inputs}
	return nil
}

// Snapshot copia inmutable de un borrador con las tres etapas.
type Snapshot struct {
	Product     ProductStage
	Consumption ConsumptionStage
	Plan        PlanStage
}

// Snapshot devuelve una copia profunda del borrador o ErrDraftIncomplete si falta una etapa.
func (d *Draft) Snapshot() (Snapshot, error) {
	switch {
	case d.product == nil:
		return Snapshot{}, fmt.Errorf("%w: falta la etapa de producto", domain.ErrDraftIncomplete)
	case d.consumption == nil:
		return Snapshot{}, fmt.Errorf("%w: falta la etapa de consumo", domain.ErrDraftIncomplete)
	case d.plan == nil:
		return Snapshot{}, fmt.Errorf("%w: falta la etapa de plan", domain.ErrDraftIncomplete)
	}
	product := *d.product
	product.PackageSizes = append([]entity.PackageSize(nil), d.product.PackageSizes...)

	inputs := make(map[string]PackageInput, len(d.plan.Inputs))
	for sku, in := range d.plan.Inputs {
		chambers := make(map[string]int, len(in.Chambers))
		for k, v := range in.Chambers {
			chambers[k] = v
		}
		in.Chambers = chambers
		inputs[sku] = in
	}
	return Snapshot{
		Product:     product,
		Consumption: ConsumptionStage{Sources: append([]entity.RMChamberSource(nil), d.consumption.Sources...)},
		Plan:        PlanStage{Inputs: inputs},
	}, nil
}

// Review resultado de revisar un snapshot: plan construido, validación y kg consumidos.
type Review struct {
	Plan        []PlanItem      `json:"plan"`
	Summary     Summary         `json:"summary"`
	TotalKgUsed decimal.Decimal `json:"total_kg_used"`
}

// Review construye y valida el plan del snapshot.
func (s Snapshot) Review() Review {
	plan := BuildPlan(s.Product.PackageSizes, s.Plan.Inputs)
	total := decimal.Zero
	for _, src := range s.Consumption.Sources {
		total = total.Add(src.KgUsed)
	}
	return Review{Plan: plan, Summary: Summarize(plan), TotalKgUsed: total}
}
