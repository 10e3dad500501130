package main

import (
	"context"
	"fmt"
	"io"
	"os"

	zlog "github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/phenrril/retailq/internal/adapters/export"
	"github.com/phenrril/retailq/internal/app"
	"github.com/phenrril/retailq/internal/domain"
)

var (
	exportOut    string
	exportIDs    []string
	exportQuery  string
	exportStatus string
)

var exportCmd = &cobra.Command{
	Use:       "export orders|customers|compare",
	Short:     "Exporta a una planilla .xlsx",
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"orders", "customers", "compare"},
	RunE:      runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "archivo de salida (default <tipo>.xlsx)")
	exportCmd.Flags().StringSliceVar(&exportIDs, "ids", nil, "ids de productos para compare")
	exportCmd.Flags().StringVarP(&exportQuery, "query", "q", "", "búsqueda para orders/customers")
	exportCmd.Flags().StringVar(&exportStatus, "status", "", "filtro de estado para orders/customers")
}

func runExport(cmd *cobra.Command, args []string) error {
	kind := args[0]
	if !validExportKind(kind) {
		return fmt.Errorf("tipo de exportación desconocido: %q", kind)
	}
	application, err := loadApp()
	if err != nil {
		return err
	}
	out := exportOut
	if out == "" {
		out = kind + ".xlsx"
	}
	if err := exportFile(cmd.Context(), application, kind, out); err != nil {
		return err
	}
	zlog.Info().Str("file", out).Str("kind", kind).Msg("exportado")
	return nil
}

func validExportKind(kind string) bool {
	switch kind {
	case "orders", "customers", "compare":
		return true
	}
	return false
}

// exportFile consulta primero los datos y recién después crea out, así un filtro
// inválido no deja un archivo vacío.
func exportFile(ctx context.Context, application *app.App, kind, out string) error {
	f := application.Formatter()
	var write func(io.Writer) error
	switch kind {
	case "orders":
		list, err := application.OrderUC.List(ctx, domain.OrderFilter{Query: exportQuery, Status: exportStatus})
		if err != nil {
			return err
		}
		write = func(w io.Writer) error { return export.Orders(w, list, f) }
	case "customers":
		list, err := application.CustomerUC.List(ctx, domain.CustomerFilter{Query: exportQuery, Status: exportStatus})
		if err != nil {
			return err
		}
		write = func(w io.Writer) error { return export.Customers(w, list, f) }
	case "compare":
		m, err := application.CompareUC.Matrix(ctx, exportIDs, f)
		if err != nil {
			return err
		}
		write = func(w io.Writer) error { return export.Comparison(w, m) }
	default:
		return fmt.Errorf("tipo de exportación desconocido: %q", kind)
	}

	fh, err := os.Create(out)
	if err != nil {
		return err
	}
	if err := write(fh); err != nil {
		fh.Close()
		os.Remove(out)
		return err
	}
	return fh.Close()
}
