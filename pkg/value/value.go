// Package value defines the closed value domain carried inside table rows
// and the conversions between values and their textual forms.
//
// A row cell holds one of: nil, bool, float64, string, time.Time (a UTC
// instant), or Tagged. Infer classifies a text token into this domain;
// Render produces the canonical textual form for file output.
package value

import "time"

// Tagged annotates a value with an opaque type string. The tag is carried
// through the XML encoding as a type attribute and round-tripped without
// interpretation; the JSON encoding serializes it as a plain object.
type Tagged struct {
	Type  string `json:"type"`
	Value any    `json:"value"`
}

// Kind identifies which member of the value domain a cell holds.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindTimestamp
	KindTagged
	KindOther
)

// KindOf reports the domain member v belongs to. Values outside the domain
// report KindOther; Render still gives them a string form.
func KindOf(v any) Kind {
	switch v.(type) {
	case nil:
		return KindNull
	case bool:
		return KindBool
	case float64:
		return KindNumber
	case string:
		return KindString
	case time.Time:
		return KindTimestamp
	case Tagged:
		return KindTagged
	default:
		return KindOther
	}
}
