package format

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/fieldline/datatable/pkg/table"
	"github.com/fieldline/datatable/pkg/value"
)

// jsonAdapter is the lossless structured-text format. Booleans and numbers
// keep their native JSON typing; timestamps travel as strings in the wire
// layout and are rehydrated on load by re-walking every string leaf with the
// timestamp check only. Tagged values get no special casing here: they
// serialize as their plain {type, value} object and come back as a generic
// mapping.
type jsonAdapter struct{}

func (jsonAdapter) Decode(data []byte) (*table.Table, error) {
	var root any
	if err := json.Unmarshal(data, &root); err != nil {
		return nil, err
	}

	doc, ok := root.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: top-level value is not an object", table.ErrMalformedTable)
	}
	rawRows, ok := doc["rows"]
	if !ok {
		return nil, fmt.Errorf("%w: missing rows", table.ErrMalformedTable)
	}
	rowList, ok := rawRows.([]any)
	if !ok {
		return nil, fmt.Errorf("%w: rows is not an array", table.ErrMalformedTable)
	}

	t := &table.Table{}
	if name, ok := doc["name"].(string); ok {
		t.Name = name
	}
	for _, raw := range rowList {
		obj, ok := raw.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%w: row is not an object", table.ErrMalformedTable)
		}
		t.Append(table.Row(reviveTimestamps(obj).(map[string]any)))
	}
	return t, nil
}

// reviveTimestamps walks a decoded JSON tree and replaces every string leaf
// matching the timestamp pattern with its time.Time value. Other leaves are
// already natively typed by the JSON parser and pass through untouched.
func reviveTimestamps(v any) any {
	switch node := v.(type) {
	case string:
		if ts, ok := value.ParseTimestamp(node); ok {
			return ts
		}
		return node
	case map[string]any:
		for k, child := range node {
			node[k] = reviveTimestamps(child)
		}
		return node
	case []any:
		for i, child := range node {
			node[i] = reviveTimestamps(child)
		}
		return node
	default:
		return node
	}
}

func (jsonAdapter) Encode(t *table.Table) ([]byte, error) {
	doc := make(map[string]any, 2)
	if t.Name != "" {
		doc["name"] = t.Name
	}
	rows := make([]map[string]any, 0, len(t.Rows))
	for _, row := range t.Rows {
		rows = append(rows, encodableRow(row))
	}
	doc["rows"] = rows
	return json.MarshalIndent(doc, "", "  ")
}

// encodableRow copies a row for marshaling: nil cells are dropped entirely
// rather than written as null tokens, and timestamps become their rendered
// wire form so the fraction is normalized.
func encodableRow(row table.Row) map[string]any {
	out := make(map[string]any, len(row))
	for name, v := range row {
		if v == nil {
			continue
		}
		if ts, ok := v.(time.Time); ok {
			out[name] = value.FormatTimestamp(ts)
			continue
		}
		out[name] = v
	}
	return out
}
