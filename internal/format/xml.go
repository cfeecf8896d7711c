package format

import (
	"errors"

	"github.com/beevik/etree"

	"github.com/fieldline/datatable/pkg/table"
	"github.com/fieldline/datatable/pkg/value"
)

// xmlAdapter is the markup format. The wire shape is:
//
//	<DataTable name="optional">
//	  <row>
//	    <columnName type="optional-tag">textual-value</columnName>
//	  </row>
//	</DataTable>
//
// Element text carries no type information, so every value goes through
// inference on load. A type attribute wraps the inferred value as a Tagged
// pair; the tag itself is opaque and round-trips untouched. Plain strings
// that happen to look like booleans, numbers, or timestamps come back
// reclassified on reload. That coercion is part of the format's contract,
// not a defect.
type xmlAdapter struct{}

func (xmlAdapter) Decode(data []byte) (*table.Table, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return nil, err
	}
	root := doc.Root()
	if root == nil {
		return nil, errors.New("markup document has no root element")
	}

	t := &table.Table{}
	if attr := root.SelectAttr("name"); attr != nil {
		t.Name = attr.Value
	}
	for _, rowEl := range root.ChildElements() {
		row := table.Row{}
		for _, colEl := range rowEl.ChildElements() {
			v := value.Infer(colEl.Text())
			if attr := colEl.SelectAttr("type"); attr != nil {
				v = value.Tagged{Type: attr.Value, Value: v}
			}
			row[colEl.Tag] = v
		}
		t.Append(row)
	}
	return t, nil
}

func (xmlAdapter) Encode(t *table.Table) ([]byte, error) {
	doc := etree.NewDocument()
	root := doc.CreateElement("DataTable")
	if t.Name != "" {
		root.CreateAttr("name", t.Name)
	}
	for _, row := range t.Rows {
		rowEl := root.CreateElement("row")
		for _, name := range sortedColumns(row) {
			text, ok := value.Render(row[name])
			if !ok {
				continue
			}
			colEl := rowEl.CreateElement(name)
			if tagged, isTagged := row[name].(value.Tagged); isTagged {
				colEl.CreateAttr("type", tagged.Type)
			}
			colEl.SetText(text)
		}
	}
	doc.Indent(2)
	return doc.WriteToBytes()
}
