package jstype

import "testing"

func TestEqual(t *testing.T) {
	tests := []struct {
		name string
		a, b Type
		eq   bool
	}{
		{"empty", Empty{}, Empty{}, true},
		{"scalar", TypeNumber, TypeNumber, true},
		{"scalar names", TypeNumber, TypeString, false},
		{"empty lists", List{}, List(nil), true},
		{"list order", List{TypeNumber, TypeString}, List{TypeString, TypeNumber}, true},
		{"list duplicates", List{TypeNumber, TypeNumber}, List{TypeNumber}, true},
		{"list members", List{TypeNumber}, List{TypeNumber, TypeString}, false},
		{"record field order",
			fields("a", TypeNumber, "b", TypeString),
			fields("b", TypeString, "a", TypeNumber),
			true,
		},
		{"record keys", fields("a", TypeNumber), fields("b", TypeNumber), false},
		{"record key count", fields("a", TypeNumber), fields("a", TypeNumber, "b", TypeNumber), false},
		{"record types", fields("a", TypeNumber), fields("a", TypeString), false},
		{"nested", fields("a", List{fields("b", TypeNumber)}), fields("a", List{fields("b", TypeNumber)}), true},
		{"union order", OneOf{TypeNumber, TypeString}, OneOf{TypeString, TypeNumber}, true},
		{"union variants", OneOf{TypeNumber, TypeString}, OneOf{TypeNumber, TypeBoolean}, false},
		{"kinds", List{TypeNumber}, OneOf{TypeNumber, TypeString}, false},
		{"empty vs empty list", Empty{}, List{}, false},
		{"empty vs empty record", List{}, Record{}, false},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if eq := Equal(test.a, test.b); eq != test.eq {
				t.Errorf("Equal(%#v, %#v) = %t", test.a, test.b, eq)
			}
		})
	}
}
