package main

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/jhoicas/Empaque-api/internal/domain/packaging"
)

type packageFlags struct {
	pkgType string
	size    string
	unit    string
}

func (f *packageFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.pkgType, "type", "", "tipo de empaque: pouch, bag, box")
	cmd.Flags().StringVar(&f.size, "size", "", "tamaño de la presentación")
	cmd.Flags().StringVar(&f.unit, "unit", "gm", "unidad del tamaño: gm, kg")
	_ = cmd.MarkFlagRequired("type")
	_ = cmd.MarkFlagRequired("size")
}

// parse valida tipo, tamaño y unidad. En la CLI la unidad se exige conocida.
func (f *packageFlags) parse() (pkgType, unit string, size decimal.Decimal, err error) {
	t, err := packaging.ParsePackageType(f.pkgType)
	if err != nil {
		return "", "", decimal.Zero, err
	}
	u, err := packaging.ParseUnit(f.unit)
	if err != nil {
		return "", "", decimal.Zero, err
	}
	size, err = decimal.NewFromString(f.size)
	if err != nil || !size.IsPositive() {
		return "", "", decimal.Zero, fmt.Errorf("tamaño inválido: %q", f.size)
	}
	return string(t), string(u), size, nil
}

func newTareCmd(opts *rootOptions) *cobra.Command {
	var pf packageFlags
	cmd := &cobra.Command{
		Use:   "tare",
		Short: "Tara estimada en gramos de un empaque",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			pkgType, unit, size, err := pf.parse()
			if err != nil {
				return err
			}
			table, err := opts.tares()
			if err != nil {
				return err
			}
			tare := table.Estimate(pkgType, size, unit)
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s: tara %s gm\n", pkgType, size, unit, tare)
			return nil
		},
	}
	pf.register(cmd)
	return cmd
}

func newMaxPacketsCmd(opts *rootOptions) *cobra.Command {
	var (
		pf       packageFlags
		storedKg string
	)
	cmd := &cobra.Command{
		Use:   "max-packets",
		Short: "Máximo de paquetes según los kg almacenados y la tara del empaque",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			pkgType, unit, size, err := pf.parse()
			if err != nil {
				return err
			}
			stored, err := decimal.NewFromString(storedKg)
			if err != nil || stored.IsNegative() {
				return fmt.Errorf("kg almacenados inválidos: %q", storedKg)
			}
			table, err := opts.tares()
			if err != nil {
				return err
			}
			n := table.MaxPackets(stored, pkgType, size, unit)
			fmt.Fprintf(cmd.OutOrStdout(), "%s kg -> %d paquetes (%s %s %s)\n", stored, n, pkgType, size, unit)
			return nil
		},
	}
	pf.register(cmd)
	cmd.Flags().StringVar(&storedKg, "stored-kg", "", "kg almacenados en la cámara")
	_ = cmd.MarkFlagRequired("stored-kg")
	return cmd
}
