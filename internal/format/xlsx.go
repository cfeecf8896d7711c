package format

import (
	"errors"

	"github.com/tealeg/xlsx/v3"

	"github.com/fieldline/datatable/pkg/table"
)

// xlsxAdapter is the read-only spreadsheet import. The first row of the
// sheet's used range is the header; every later row becomes a table row. A
// cell contributes a column only when its header cell and the cell itself
// both hold a value. Cell typing is taken from the workbook as-is (bool,
// number, date); no text inference runs here, so an xlsx string cell stays
// a string even when it looks like a number.
type xlsxAdapter struct{}

func (xlsxAdapter) Decode(data []byte) (*table.Table, error) {
	wb, err := xlsx.OpenBinary(data)
	if err != nil {
		return nil, err
	}
	if len(wb.Sheets) == 0 {
		return nil, errors.New("workbook has no sheets")
	}
	sheet := wb.Sheets[0]

	// Header columns keep their sheet order so cells are visited left to
	// right within each row.
	type headerCol struct {
		index int
		name  string
	}
	var header []headerCol
	for c := 0; c < sheet.MaxCol; c++ {
		cell, err := sheet.Cell(0, c)
		if err != nil {
			return nil, err
		}
		if cell.Value != "" {
			header = append(header, headerCol{index: c, name: cell.Value})
		}
	}

	t := table.New(sheet.Name)
	for r := 1; r < sheet.MaxRow; r++ {
		row := table.Row{}
		for _, col := range header {
			cell, err := sheet.Cell(r, col.index)
			if err != nil {
				return nil, err
			}
			if v, ok := cellValue(cell); ok {
				row[col.name] = v
			}
		}
		t.Append(row)
	}
	return t, nil
}

// cellValue maps a spreadsheet cell to the value domain using the cell's
// native type. Empty cells report no value.
func cellValue(cell *xlsx.Cell) (any, bool) {
	if cell.Value == "" {
		return nil, false
	}
	switch cell.Type() {
	case xlsx.CellTypeBool:
		return cell.Bool(), true
	case xlsx.CellTypeNumeric:
		if cell.IsTime() {
			if ts, err := cell.GetTime(false); err == nil {
				return ts.UTC(), true
			}
		}
		if n, err := cell.Float(); err == nil {
			return n, true
		}
		return cell.Value, true
	default:
		return cell.Value, true
	}
}
