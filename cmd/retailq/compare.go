package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/phenrril/retailq/internal/usecase"
)

var compareCmd = &cobra.Command{
	Use:   "compare ID...",
	Short: "Imprime la tabla comparativa de hasta 4 productos",
	Long: `Arma la matriz de comparación para los ids dados (se toman los primeros 4
distintos; los que no existen se ignoran).

Ejemplo:
  retailq compare 1 3 5`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCompare,
}

func runCompare(cmd *cobra.Command, args []string) error {
	application, err := loadApp()
	if err != nil {
		return err
	}
	m, err := application.CompareUC.Matrix(cmd.Context(), args, application.Formatter())
	if err != nil {
		return err
	}
	if m.Empty() {
		fmt.Fprintln(cmd.OutOrStdout(), "No products selected")
		return nil
	}
	fmt.Fprintln(cmd.OutOrStdout(), renderMatrix(m))
	return nil
}

func renderMatrix(m usecase.Matrix) string {
	headers := []string{"Feature"}
	for _, c := range m.Columns {
		h := c.Name
		if c.Discount > 0 {
			h = fmt.Sprintf("%s (-%d%%)", h, c.Discount)
		}
		headers = append(headers, h)
	}
	rows := make([][]string, 0, len(m.Rows))
	for _, r := range m.Rows {
		row := []string{r.Feature.Label}
		for _, cell := range r.Cells {
			row = append(row, cell.Text)
		}
		rows = append(rows, row)
	}
	headerStyle := lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle := lipgloss.NewStyle().Padding(0, 1)
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
	return t.String()
}
