package sqlite

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/mesh-intelligence/healthtrack/pkg/types"
)

func TestEncode(t *testing.T) {
	at := time.Date(2024, time.May, 6, 7, 8, 9, 123456789, time.FixedZone("X", 2*3600))
	const want = "2024-05-06T05:08:09.123456789Z"
	var nilTime *time.Time
	var nilStamp *types.Timestamp

	tests := []struct {
		name string
		in   any
		want any
	}{
		{"time", at, want},
		{"time pointer", &at, want},
		{"nil time pointer", nilTime, nil},
		{"timestamp", types.NewTimestamp(at), want},
		{"timestamp pointer", types.TimestampPtr(at), want},
		{"nil timestamp pointer", nilStamp, nil},
		{"string", "hello", "hello"},
		{"number", int64(4), int64(4)},
		{"nil", nil, nil},
		{
			"nested",
			map[string]any{"a": at, "b": []any{at, "x"}, "c": []map[string]any{{"d": at}}},
			map[string]any{"a": want, "b": []any{want, "x"}, "c": []map[string]any{{"d": want}}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Encode(tt.in))
		})
	}
}

func TestEncode_DoesNotMutateInput(t *testing.T) {
	at := time.Date(2024, time.May, 6, 0, 0, 0, 0, time.UTC)
	in := map[string]any{"a": at}
	Encode(in)
	assert.Equal(t, at, in["a"])
}

func TestDecode(t *testing.T) {
	want := time.Date(2024, time.May, 6, 5, 8, 9, 123456789, time.UTC)

	tests := []struct {
		name string
		in   any
		want any
	}{
		{"canonical", "2024-05-06T05:08:09.123456789Z", want},
		{"offset", "2024-05-06T07:08:09.123456789+02:00", want},
		{"engine default", "2024-05-06T05:08:09.123Z", time.Date(2024, time.May, 6, 5, 8, 9, 123000000, time.UTC)},
		{"plain text", "hello", "hello"},
		{"date only", "2024-05-06", "2024-05-06"},
		{"shape but invalid", "2024-13-45T99:99:99Z", "2024-13-45T99:99:99Z"},
		{"number text", "20240506", "20240506"},
		{"integer", int64(3), int64(3)},
		{"nil", nil, nil},
		{
			"nested",
			map[string]any{"a": "2024-05-06T05:08:09.123456789Z", "b": []any{"x"}},
			map[string]any{"a": want, "b": []any{"x"}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Decode(tt.in))
		})
	}
}

func TestCodec_RoundTrip(t *testing.T) {
	instants := []time.Time{
		time.Date(1970, time.January, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, time.February, 29, 23, 59, 59, 999999999, time.UTC),
		time.Date(2031, time.July, 4, 12, 0, 0, 1, time.FixedZone("Y", -5*3600)),
	}
	for _, at := range instants {
		got, ok := Decode(Encode(at)).(time.Time)
		if assert.True(t, ok) {
			assert.True(t, at.Equal(got), "%v != %v", at, got)
		}
	}

	nested := map[string]any{"when": instants[1], "list": []any{instants[2]}}
	back := Decode(Encode(nested)).(map[string]any)
	assert.True(t, instants[1].Equal(back["when"].(time.Time)))
	assert.True(t, instants[2].Equal(back["list"].([]any)[0].(time.Time)))
}

func TestCanonicalTextSortsChronologically(t *testing.T) {
	a := Encode(time.Date(2024, time.January, 1, 0, 0, 0, 5, time.UTC)).(string)
	b := Encode(time.Date(2024, time.January, 1, 0, 0, 0, 40, time.UTC)).(string)
	c := Encode(time.Date(2024, time.January, 1, 0, 0, 1, 0, time.UTC)).(string)
	assert.Less(t, a, b)
	assert.Less(t, b, c)
}
