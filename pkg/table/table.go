// Package table defines the in-memory tabular container: a named, ordered
// sequence of open rows, plus the column-level transformation operations.
package table

import "github.com/fieldline/datatable/pkg/value"

// Row is an open mapping from column name to cell value. Columns are not
// uniform across rows; any row may lack any column. Cell values belong to
// the domain described in package value. A row is owned by its table and is
// never shared between tables.
type Row map[string]any

// Table holds an ordered sequence of rows. Name is descriptive only, never
// used as a key. Rows are appended by format adapters or by the caller;
// column operations mutate rows in place but never remove whole rows.
type Table struct {
	Name string
	Rows []Row
}

// New returns an empty table.
func New(name string) *Table {
	return &Table{Name: name}
}

// FromRows returns a table over the given row sequence. The table takes
// ownership of the rows.
func FromRows(name string, rows []Row) *Table {
	return &Table{Name: name, Rows: rows}
}

// Append adds rows to the end of the table in the order given.
func (t *Table) Append(rows ...Row) {
	t.Rows = append(t.Rows, rows...)
}

// memoKey projects a cell value to a canonical hashable form for the Lookup
// memo. The kind prefix keeps the number 1 and the string "1" distinct, and
// a Tagged value embeds its inner value's key so tagged wrappers around
// different kinds stay distinct too. A nil value (including a Tagged wrapper
// around nil) has no key: absent cells never participate in memoization.
func memoKey(v any) (string, bool) {
	if tagged, isTagged := v.(value.Tagged); isTagged {
		inner, ok := memoKey(tagged.Value)
		if !ok {
			return "", false
		}
		return "g:" + tagged.Type + ":" + inner, true
	}
	rendered, ok := value.Render(v)
	if !ok {
		return "", false
	}
	switch value.KindOf(v) {
	case value.KindBool:
		return "b:" + rendered, true
	case value.KindNumber:
		return "n:" + rendered, true
	case value.KindTimestamp:
		return "t:" + rendered, true
	default:
		return "s:" + rendered, true
	}
}
