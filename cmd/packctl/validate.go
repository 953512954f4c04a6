package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/jhoicas/Empaque-api/internal/application/dto"
	"github.com/jhoicas/Empaque-api/internal/application/packing"
	"github.com/jhoicas/Empaque-api/internal/domain/entity"
	"github.com/jhoicas/Empaque-api/internal/infrastructure/memory"
)

var errPlanRejected = errors.New("plan de empaque rechazado")

// draftFile contenido de borrador.json: cámaras disponibles, producto y borrador tal como
// se enviaría a POST /api/packing/preview.
type draftFile struct {
	Chambers []chamberJSON           `json:"chambers"`
	Product  productJSON             `json:"product"`
	Draft    dto.PackingDraftRequest `json:"draft"`
}

type chamberJSON struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Tag      string          `json:"tag"`
	Capacity decimal.Decimal `json:"capacity"`
}

type productJSON struct {
	ID           string               `json:"id"`
	Name         string               `json:"name"`
	RawMaterial  string               `json:"raw_material"`
	PackageType  string               `json:"package_type"`
	PackageSizes []entity.PackageSize `json:"package_sizes"`
}

func newValidateCmd() *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "validate <borrador.json>",
		Short: "Revisa un borrador de empaque y concilia bolsas producidas contra asignadas",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("abrir borrador: %w", err)
			}
			defer f.Close()
			return runValidate(cmd.Context(), f, cmd.OutOrStdout(), asJSON)
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "imprime la revisión completa en JSON")
	return cmd
}

// runValidate carga cámaras y producto en un store en memoria y revisa el borrador con el
// mismo caso de uso que la API.
func runValidate(ctx context.Context, r io.Reader, out io.Writer, asJSON bool) error {
	if ctx == nil {
		ctx = context.Background()
	}
	var df draftFile
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&df); err != nil {
		return fmt.Errorf("decodificar borrador: %w", err)
	}

	store := memory.NewStore()
	for _, c := range df.Chambers {
		id := c.ID
		if id == "" {
			id = uuid.New().String()
		}
		if err := store.Chambers().Create(ctx, &entity.Chamber{ID: id, Name: c.Name, Tag: c.Tag, Capacity: c.Capacity}); err != nil {
			return fmt.Errorf("cámara %q: %w", c.Name, err)
		}
	}
	if df.Product.ID == "" {
		df.Product.ID = uuid.New().String()
	}
	if err := store.Products().Create(ctx, &entity.Product{
		ID:           df.Product.ID,
		Name:         df.Product.Name,
		RawMaterial:  df.Product.RawMaterial,
		PackageType:  df.Product.PackageType,
		PackageSizes: df.Product.PackageSizes,
	}); err != nil {
		return fmt.Errorf("producto %q: %w", df.Product.Name, err)
	}
	if df.Draft.ProductID == "" {
		df.Draft.ProductID = df.Product.ID
	}

	uc := packing.NewUseCase(memory.NewTxRunner(store), store.Products(), store.Chambers(), store.PackingEvents(), nil)
	preview, err := uc.Preview(ctx, df.Draft)
	if err != nil {
		return err
	}

	if asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(preview); err != nil {
			return err
		}
	} else {
		printPreview(out, preview)
	}
	if !preview.Validation.Valid {
		return errPlanRejected
	}
	return nil
}

func printPreview(out io.Writer, p *dto.PackingPreviewResponse) {
	fmt.Fprintf(out, "Producto: %s\n", p.ProductName)
	fmt.Fprintf(out, "Materia prima consumida: %s kg\n", p.TotalKgUsed.StringFixed(3))
	for _, v := range p.Validation.Items {
		status := "OK"
		if !v.IsValid {
			status = "ERROR"
		}
		fmt.Fprintf(out, "  [%s] %s: %d producidas, %d asignadas", status, v.SKULabel, v.BagsProduced, v.BagsAssigned)
		if v.Error != "" {
			fmt.Fprintf(out, " (%s)", v.Error)
		}
		fmt.Fprintln(out)
	}
	if len(p.Plan) == 0 {
		fmt.Fprintln(out, "  sin SKUs con bolsas producidas")
	}
	fmt.Fprintf(out, "Total: %d bolsas, %d paquetes\n", p.Validation.TotalBags, p.Validation.TotalPackets)
	if p.Validation.Valid {
		fmt.Fprintln(out, "Plan válido")
	} else {
		fmt.Fprintln(out, "Plan inválido")
	}
}
