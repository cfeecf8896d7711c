package value

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRender(t *testing.T) {
	tests := []struct {
		name     string
		input    any
		want     string
		wantOmit bool
	}{
		{name: "nil omits", input: nil, wantOmit: true},
		{name: "true", input: true, want: "true"},
		{name: "false", input: false, want: "false"},
		{name: "whole number drops fraction", input: 1.0, want: "1"},
		{name: "negative decimal", input: -3.5, want: "-3.5"},
		{name: "string verbatim", input: "hi there", want: "hi there"},
		{
			name:  "timestamp normalizes fraction",
			input: time.Date(2020, time.January, 2, 3, 4, 5, 0, time.UTC),
			want:  "2020-01-02T03:04:05.000Z",
		},
		{
			name:  "timestamp keeps milliseconds",
			input: time.Date(2020, time.January, 2, 3, 4, 5, 123_000_000, time.UTC),
			want:  "2020-01-02T03:04:05.123Z",
		},
		{name: "tagged renders inner value", input: Tagged{Type: "EntityReference", Value: "acct-17"}, want: "acct-17"},
		{name: "tagged nil omits", input: Tagged{Type: "EntityReference", Value: nil}, wantOmit: true},
		{name: "fallback for out-of-domain value", input: 7, want: "7"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Render(tt.input)
			if tt.wantOmit {
				assert.False(t, ok)
				return
			}
			assert.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

// Render then Infer restores bool, number, and timestamp values.
func TestRenderInferRoundTrip(t *testing.T) {
	values := []any{
		true,
		false,
		42.0,
		-3.5,
		0.0,
		time.Date(2021, time.June, 15, 10, 30, 0, 0, time.UTC),
	}
	for _, v := range values {
		rendered, ok := Render(v)
		assert.True(t, ok)
		got := Infer(rendered)
		if ts, isTime := v.(time.Time); isTime {
			assert.True(t, ts.Equal(got.(time.Time)))
			continue
		}
		assert.Equal(t, v, got)
	}
}

func TestKindOf(t *testing.T) {
	assert.Equal(t, KindNull, KindOf(nil))
	assert.Equal(t, KindBool, KindOf(true))
	assert.Equal(t, KindNumber, KindOf(1.5))
	assert.Equal(t, KindString, KindOf("s"))
	assert.Equal(t, KindTimestamp, KindOf(time.Now()))
	assert.Equal(t, KindTagged, KindOf(Tagged{Type: "t", Value: "v"}))
	assert.Equal(t, KindOther, KindOf(7))
}
