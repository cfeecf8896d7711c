package format

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tealeg/xlsx/v3"
)

// buildWorkbook authors an in-memory workbook with the given sheet name and
// cell grid; cells are set with native types.
func buildWorkbook(t *testing.T, sheetName string, grid [][]any) []byte {
	t.Helper()

	wb := xlsx.NewFile()
	sheet, err := wb.AddSheet(sheetName)
	require.NoError(t, err)

	for _, cells := range grid {
		row := sheet.AddRow()
		for _, v := range cells {
			cell := row.AddCell()
			switch val := v.(type) {
			case nil:
				// leave the cell empty
			case string:
				cell.SetString(val)
			case float64:
				cell.SetFloat(val)
			case bool:
				cell.SetBool(val)
			case time.Time:
				cell.SetDateTime(val)
			default:
				t.Fatalf("unsupported fixture cell type %T", v)
			}
		}
	}

	var buf bytes.Buffer
	require.NoError(t, wb.Write(&buf))
	return buf.Bytes()
}

func TestXLSXImportHeaderAndTypes(t *testing.T) {
	data := buildWorkbook(t, "People", [][]any{
		{"name", "age", "active"},
		{"Ann", 30.0, true},
		{"Ben", 41.5, false},
	})

	got, err := xlsxAdapter{}.Decode(data)
	require.NoError(t, err)

	assert.Equal(t, "People", got.Name)
	require.Len(t, got.Rows, 2)
	assert.Equal(t, "Ann", got.Rows[0]["name"])
	assert.Equal(t, 30.0, got.Rows[0]["age"])
	assert.Equal(t, true, got.Rows[0]["active"])
	assert.Equal(t, 41.5, got.Rows[1]["age"])
	assert.Equal(t, false, got.Rows[1]["active"])
}

func TestXLSXImportSkipsEmptyCells(t *testing.T) {
	data := buildWorkbook(t, "Sparse", [][]any{
		{"a", "b"},
		{"x", nil},
		{nil, "y"},
	})

	got, err := xlsxAdapter{}.Decode(data)
	require.NoError(t, err)

	require.Len(t, got.Rows, 2)
	_, present := got.Rows[0]["b"]
	assert.False(t, present)
	_, present = got.Rows[1]["a"]
	assert.False(t, present)
	assert.Equal(t, "y", got.Rows[1]["b"])
}

func TestXLSXImportNoTextInference(t *testing.T) {
	data := buildWorkbook(t, "Raw", [][]any{
		{"code"},
		{"42"},
	})

	got, err := xlsxAdapter{}.Decode(data)
	require.NoError(t, err)

	// A string cell that looks numeric stays a string: the workbook's own
	// typing is trusted, inference never runs.
	assert.Equal(t, "42", got.Rows[0]["code"])
}

func TestXLSXImportSkipsUnheaderedColumns(t *testing.T) {
	data := buildWorkbook(t, "Gaps", [][]any{
		{"a", nil, "c"},
		{1.0, 2.0, 3.0},
	})

	got, err := xlsxAdapter{}.Decode(data)
	require.NoError(t, err)

	// The middle column has no header, so its cells are dropped and the
	// remaining columns keep their sheet positions.
	require.Len(t, got.Rows, 1)
	assert.Equal(t, 1.0, got.Rows[0]["a"])
	assert.Equal(t, 3.0, got.Rows[0]["c"])
	assert.Len(t, got.Rows[0], 2)
}

func TestXLSXImportDateCell(t *testing.T) {
	when := time.Date(2020, time.January, 2, 0, 0, 0, 0, time.UTC)
	data := buildWorkbook(t, "Dates", [][]any{
		{"joined"},
		{when},
	})

	got, err := xlsxAdapter{}.Decode(data)
	require.NoError(t, err)

	ts, ok := got.Rows[0]["joined"].(time.Time)
	require.True(t, ok, "date-formatted cell must import as an instant, got %T", got.Rows[0]["joined"])
	y, m, d := ts.Date()
	assert.Equal(t, 2020, y)
	assert.Equal(t, time.January, m)
	assert.Equal(t, 2, d)
}

func TestXLSXImportGarbageBytesFail(t *testing.T) {
	_, err := xlsxAdapter{}.Decode([]byte("not a workbook"))
	assert.Error(t, err)
}
