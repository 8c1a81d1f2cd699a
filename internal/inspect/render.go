package inspect

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"

	"github.com/born-ml/ndarray/tensor"
)

func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// render prints a view: rank 0 as a single value, rank 1 as one row, rank 2
// as a table and higher ranks as one table per leading coordinate.
func render(w io.Writer, v tensor.View[float64], prefix []int, plain bool) error {
	switch v.Rank() {
	case 0:
		_, err := fmt.Fprintln(w, formatValue(v.Value()))
		return err
	case 1, 2:
		return renderTable(w, v, prefix, plain)
	}
	for i, sub := range v.Rows() {
		next := append(append([]int(nil), prefix...), i)
		if err := render(w, sub, next, plain); err != nil {
			return err
		}
	}
	return nil
}

// tableRows converts a rank 1 or rank 2 view into labelled string rows.
func tableRows(v tensor.View[float64]) (header []string, rows [][]string) {
	rowViews := []tensor.View[float64]{v}
	labels := []string{"0"}
	if v.Rank() == 2 {
		rowViews, labels = rowViews[:0], labels[:0]
		for i, r := range v.Rows() {
			rowViews = append(rowViews, r)
			labels = append(labels, strconv.Itoa(i))
		}
	}

	cols := rowViews[0].Size()
	header = make([]string, cols+1)
	header[0] = "#"
	for j := 0; j < cols; j++ {
		header[j+1] = strconv.Itoa(j)
	}

	for i, r := range rowViews {
		row := make([]string, 0, cols+1)
		row = append(row, labels[i])
		for _, x := range r.All() {
			row = append(row, formatValue(x))
		}
		rows = append(rows, row)
	}
	return header, rows
}

func renderTable(w io.Writer, v tensor.View[float64], prefix []int, plain bool) error {
	header, rows := tableRows(v)
	caption := fmt.Sprintf("view %v at %v, offset %d", v.Shape(), prefix, v.Offset())

	if plain {
		if _, err := fmt.Fprintf(w, "# %s\n", caption); err != nil {
			return err
		}
		for _, row := range rows {
			if _, err := fmt.Fprintln(w, strings.Join(row, "\t")); err != nil {
				return err
			}
		}
		return nil
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader(header)
	table.SetCaption(true, caption)
	table.SetBorder(false)
	table.SetAlignment(tablewriter.ALIGN_RIGHT)
	table.AppendBulk(rows)
	table.Render()
	return nil
}
