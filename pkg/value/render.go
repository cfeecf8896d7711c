package value

import (
	"strconv"
	"time"

	"github.com/spf13/cast"
)

// timestampLayout is the wire form for timestamps: UTC, literal Z suffix,
// fraction normalized to milliseconds.
const timestampLayout = "2006-01-02T15:04:05.000Z"

// Render produces the canonical textual form of a value. The second result
// is false when the value must be omitted from output entirely (nil cells
// are never written as an empty or null token). For a Tagged value the inner
// value is rendered; emitting the type tag is the adapter's job.
//
// Render is the exact inverse of Infer for bool, number, and timestamp
// values, modulo textual normalization ("1.0" renders as "1"). It is not an
// inverse for strings that merely look like one of those: the XML encoding
// re-runs Infer on the next load and reclassifies them. That loss is part of
// the format's contract.
func Render(v any) (string, bool) {
	switch val := v.(type) {
	case nil:
		return "", false
	case bool:
		return strconv.FormatBool(val), true
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64), true
	case string:
		return val, true
	case time.Time:
		return FormatTimestamp(val), true
	case Tagged:
		return Render(val.Value)
	default:
		return cast.ToString(val), true
	}
}

// FormatTimestamp renders a UTC instant in the wire layout.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(timestampLayout)
}
