package value

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	timestampPattern = regexp.MustCompile(`^(\d{4})-(\d{2})-(\d{2})T(\d{2}):(\d{2}):(\d{2})\.?(\d*)Z$`)

	// numberPattern admits decimal literals only. ParseFloat alone is too
	// permissive for the numeric check: it also takes infinities ("inf",
	// "Infinity"), digit separators ("1_000"), and hex floats ("0x1p2"),
	// all of which must stay strings.
	numberPattern = regexp.MustCompile(`^[+-]?(\d+(\.\d*)?|\.\d+)([eE][+-]?\d+)?$`)
)

// Infer classifies a text token into the value domain. The checks run in a
// fixed priority order: boolean, number, timestamp. The first match wins and
// an unmatched token is returned unchanged as a string. The order matters:
// "true" must not reach the numeric check, and a run of digits must not be
// misread as a timestamp fragment.
func Infer(token string) any {
	if b, ok := inferBool(token); ok {
		return b
	}
	if n, ok := inferNumber(token); ok {
		return n
	}
	if ts, ok := ParseTimestamp(token); ok {
		return ts
	}
	return token
}

// inferBool matches "true" and "false" case-insensitively, with no
// surrounding whitespace allowance.
func inferBool(token string) (bool, bool) {
	switch {
	case strings.EqualFold(token, "true"):
		return true, true
	case strings.EqualFold(token, "false"):
		return false, true
	default:
		return false, false
	}
}

// inferNumber accepts strict decimal numeric literals only. Leading and
// trailing whitespace is tolerated, but any residual non-numeric suffix
// ("12abc") rejects the token, as do the empty string, NaN, infinities, and
// non-decimal forms. A literal too large for a float64 is also rejected
// rather than clamped to an infinity: the result must survive every target
// encoding, and JSON cannot carry infinities.
func inferNumber(token string) (float64, bool) {
	trimmed := strings.TrimSpace(token)
	if !numberPattern.MatchString(trimmed) {
		return 0, false
	}
	n, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

// ParseTimestamp matches tokens of the form YYYY-MM-DDTHH:MM:SS[.fraction]Z
// and builds the corresponding UTC instant. An absent fraction is zero.
func ParseTimestamp(token string) (time.Time, bool) {
	m := timestampPattern.FindStringSubmatch(token)
	if m == nil {
		return time.Time{}, false
	}
	year, _ := strconv.Atoi(m[1])
	month, _ := strconv.Atoi(m[2])
	day, _ := strconv.Atoi(m[3])
	hour, _ := strconv.Atoi(m[4])
	minute, _ := strconv.Atoi(m[5])
	second, _ := strconv.Atoi(m[6])
	return time.Date(year, time.Month(month), day, hour, minute, second, fractionNanos(m[7]), time.UTC), true
}

// fractionNanos converts a fractional-second digit string to nanoseconds.
// Digits beyond nanosecond precision are dropped.
func fractionNanos(digits string) int {
	if digits == "" {
		return 0
	}
	if len(digits) > 9 {
		digits = digits[:9]
	}
	n, err := strconv.Atoi(digits)
	if err != nil {
		return 0
	}
	for i := len(digits); i < 9; i++ {
		n *= 10
	}
	return n
}
