package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/phenrril/retailq/internal/domain"
	"github.com/phenrril/retailq/internal/money"
	"github.com/phenrril/retailq/internal/usecase"
)

const dateLayout = "2006-01-02"

// Orders escribe un libro con una hoja "Orders".
func Orders(w io.Writer, orders []domain.Order, f money.Formatter) error {
	header := []any{"Order ID", "Customer", "Email", "Items", "Total", "Status", "Date"}
	rows := make([][]any, 0, len(orders))
	for _, o := range orders {
		rows = append(rows, []any{o.ID, o.Customer, o.Email, o.Products, f.Price(o.Total), string(o.Status), o.Date.Format(dateLayout)})
	}
	return writeSheet(w, "Orders", header, rows)
}

func Customers(w io.Writer, customers []domain.Customer, f money.Formatter) error {
	header := []any{"Customer ID", "Name", "Email", "Phone", "Orders", "Total Spent", "Last Order", "Status"}
	rows := make([][]any, 0, len(customers))
	for _, c := range customers {
		rows = append(rows, []any{c.ID, c.Name, c.Email, c.Phone, c.TotalOrders, f.Price(c.TotalSpent), c.LastOrder.Format(dateLayout), string(c.Status)})
	}
	return writeSheet(w, "Customers", header, rows)
}

// Comparison vuelca la matriz: primera columna la característica, después un
// producto por columna.
func Comparison(w io.Writer, m usecase.Matrix) error {
	header := []any{"Feature"}
	for _, c := range m.Columns {
		header = append(header, c.Name)
	}
	rows := make([][]any, 0, len(m.Rows)+1)
	for _, r := range m.Rows {
		row := []any{r.Feature.Label}
		for _, cell := range r.Cells {
			row = append(row, cell.Text)
		}
		rows = append(rows, row)
	}
	if len(m.Columns) > 0 {
		disc := []any{"Discount"}
		for _, c := range m.Columns {
			disc = append(disc, fmt.Sprintf("%d%%", c.Discount))
		}
		rows = append(rows, disc)
	}
	return writeSheet(w, "Comparison", header, rows)
}

func writeSheet(w io.Writer, name string, header []any, rows [][]any) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", name); err != nil {
		return err
	}
	sw, err := f.NewStreamWriter(name)
	if err != nil {
		return err
	}
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}
	if err := sw.SetRow("A1", header, excelize.RowOpts{StyleID: bold}); err != nil {
		return err
	}
	for i, r := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := sw.SetRow(cell, r); err != nil {
			return err
		}
	}
	if err := sw.Flush(); err != nil {
		return err
	}
	_, err = f.WriteTo(w)
	return err
}
