package jstype

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompare(t *testing.T) {
	tests := []struct {
		name string
		a, b Type
	}{
		{"empty first", Empty{}, TypeNumber},
		{"scalar before list", TypeString, List{}},
		{"list before record", List{TypeNumber, TypeString}, Record{}},
		{"record before union", fields("a", TypeNumber), OneOf{TypeNumber, TypeString}},
		{"scalar names", TypeNumber, TypeString},
		{"shorter list", List{TypeString}, List{TypeBoolean, TypeNumber}},
		{"list members", List{TypeBoolean, TypeString}, List{TypeString, TypeNumber}},
		{"fewer keys", fields("z", TypeNumber), fields("a", TypeNumber, "b", TypeNumber)},
		{"joined keys", fields("a", TypeString), fields("b", TypeNumber)},
		{"field types", fields("a", TypeNumber), fields("a", TypeString)},
		{"key tie break", fields("a", TypeNumber, "bc", TypeNumber), fields("ab", TypeNumber, "c", TypeNumber)},
		{"fewer variants", OneOf{TypeString, TypeNumber}, OneOf{TypeBoolean, TypeNumber, TypeString}},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Negative(t, Compare(test.a, test.b))
			assert.Positive(t, Compare(test.b, test.a))
			assert.True(t, LessEq(test.a, test.b))
			assert.False(t, LessEq(test.b, test.a))
		})
	}
}

func TestCompare_equal(t *testing.T) {
	assert.Zero(t, Compare(
		fields("a", TypeNumber, "b", List{TypeString, TypeNumber}),
		fields("b", List{TypeNumber, TypeString}, "a", TypeNumber),
	))
	assert.True(t, LessEq(OneOf{TypeNumber, TypeNull}, OneOf{TypeNull, TypeNumber}))
}

func TestSorted(t *testing.T) {
	ts := []Type{
		OneOf{TypeNumber, TypeString},
		fields("a", TypeNumber),
		List{TypeNumber},
		TypeString,
		Empty{},
		TypeNumber,
	}
	orig := slices.Clone(ts)
	sorted := Sorted(ts)
	assert.Equal(t, orig, ts, "input modified")
	assert.Equal(t, []Type{
		Empty{},
		TypeNumber,
		TypeString,
		List{TypeNumber},
		fields("a", TypeNumber),
		OneOf{TypeNumber, TypeString},
	}, sorted)
}
