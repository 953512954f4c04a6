package main

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/jhoicas/Empaque-api/internal/domain/packaging"
	"github.com/jhoicas/Empaque-api/internal/infrastructure/taretable"
)

type rootOptions struct {
	tareTable string
}

// tares carga la tabla indicada con --tare-table o la tabla por defecto.
func (o *rootOptions) tares() (packaging.TareTable, error) {
	return taretable.Load(o.tareTable)
}

func newRootCmd(out io.Writer) *cobra.Command {
	opts := &rootOptions{}
	root := &cobra.Command{
		Use:           "packctl",
		Short:         "Herramientas de empaque sin base de datos",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(out)
	root.PersistentFlags().StringVar(&opts.tareTable, "tare-table", "", "archivo YAML con la tabla de taras")

	root.AddCommand(
		newTareCmd(opts),
		newMaxPacketsCmd(opts),
		newValidateCmd(),
	)
	return root
}
