package jstype

import (
	"context"
	"encoding/json"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/davecgh/go-spew/spew"
)

func assertType(t *testing.T, want, got Type) {
	t.Helper()
	if !Equal(want, got) {
		t.Errorf("want:\n%s\ngot:\n%s", spew.Sdump(want), spew.Sdump(got))
	}
}

func TestInfer_scalars(t *testing.T) {
	var nilPtr *int
	tests := []struct {
		name string
		v    any
		want Type
	}{
		{"int", 42, TypeNumber},
		{"float", 3.14, TypeNumber},
		{"uint8", uint8(7), TypeNumber},
		{"json number", json.Number("12"), TypeNumber},
		{"string", "hi", TypeString},
		{"bool", true, TypeBoolean},
		{"nil", nil, TypeNull},
		{"nil pointer", nilPtr, TypeNull},
		{"nil slice", []int(nil), TypeNull},
		{"undefined", Undefined, TypeUndefined},
		{"time", time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC), TypeDate},
		{"regexp", regexp.MustCompile(`^a+$`), TypeRegExp},
		{"error", errors.New("failed"), TypeError},
		{"channel", make(chan int), TypePromise},
		{"context", context.Background(), TypePromise},
		{"int map", map[int]string{1: "a"}, TypeMap},
		{"complex", complex(1, 2), Scalar("complex128")},
		{"pointer", new(string), TypeString},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assertType(t, test.want, Infer(nil, test.v))
		})
	}
}

func TestInfer_functions(t *testing.T) {
	assertType(t, Scalar("Function (void)"), Infer(nil, func() {}))
	assertType(t, Scalar("Function (2)"), Infer(nil, func(a, b int) int { return a + b }))
	assertType(t, Scalar("Function (1)"), Infer(nil, func(string, ...int) {}))
}

func TestInfer_lists(t *testing.T) {
	assertType(t, List{TypeNumber, TypeString}, Infer(nil, []any{1, "a", 2}))
	assertType(t, List{}, Infer(nil, []any{}))
	assertType(t, List{TypeNumber}, Infer(nil, [3]int{1, 2, 3}))
	assertType(t,
		List{fields("a", OneOf{TypeNumber, TypeString})},
		Infer(nil, []any{
			map[string]any{"a": 1},
			map[string]any{"a": "x"},
		}),
	)
	got := Infer(nil, []any{1, []any{2}, []any{"x"}})
	assertType(t, List{TypeNumber, List{TypeNumber}, List{TypeString}}, got)
	if err := Check(got); err != nil {
		t.Error(err)
	}
}

func TestInfer_records(t *testing.T) {
	a := Infer(nil, map[string]any{"a": 1})
	b := Infer(nil, map[string]any{"a": "x"})
	assertType(t, fields("a", OneOf{TypeNumber, TypeString}), Concat(a, b))
	assertType(t, Record{}, Infer(nil, map[string]any{}))

	got := Infer(nil, map[string]any{"b": true, "a": nil, "c": 1})
	rec, ok := got.(Record)
	if !ok {
		t.Fatalf("inferred %T", got)
	}
	if keys := rec.Keys(); len(keys) != 3 || keys[0] != "a" || keys[2] != "c" {
		t.Errorf("unsorted keys %v", keys)
	}
}

type tagged struct {
	Name   string  `json:"name" yaml:"title"`
	Skip   int     `json:"-"`
	Plain  bool    `yaml:"-"`
	Opt    *string `json:"opt,omitempty"`
	Shadow string  `json:"name"`
	hidden int
}

func TestInfer_structs(t *testing.T) {
	v := tagged{hidden: 1}
	assertType(t,
		fields("name", TypeString, "Plain", TypeBoolean, "opt", TypeNull),
		Infer(nil, v),
	)
	assertType(t,
		fields("title", TypeString, "Skip", TypeNumber, "Opt", TypeNull, "Shadow", TypeString),
		Infer(&Config{TagKey: "yaml"}, &v),
	)
}

func TestInfer_cycles(t *testing.T) {
	t.Run("self", func(t *testing.T) {
		x := map[string]any{}
		x["self"] = x
		assertType(t, fields("self", Scalar("Object[value]")), Infer(nil, x))
	})
	t.Run("nested", func(t *testing.T) {
		y := map[string]any{}
		y["self"] = y
		x := map[string]any{"children": []any{y}}
		assertType(t,
			fields("children", List{fields("self", Scalar("Object[value, children, 0]"))}),
			Infer(nil, x),
		)
	})
	t.Run("array", func(t *testing.T) {
		s := []any{nil}
		s[0] = s
		assertType(t, List{Scalar("Array[value]")}, Infer(nil, s))
	})
	t.Run("struct pointer", func(t *testing.T) {
		type node struct {
			Children []*node `json:"children"`
		}
		n := &node{}
		n.Children = []*node{n}
		assertType(t, fields("children", List{Scalar("Object[value]")}), Infer(nil, n))
	})
	t.Run("interior pointer", func(t *testing.T) {
		type coord struct{ X int }
		type outer struct {
			S coord
			P *coord
		}
		o := &outer{}
		o.P = &o.S
		assertType(t,
			fields("S", fields("X", TypeNumber), "P", fields("X", TypeNumber)),
			Infer(nil, o),
		)
	})
	t.Run("shared", func(t *testing.T) {
		s := map[string]any{"a": 1}
		x := map[string]any{"l": s, "r": s}
		assertType(t, fields("l", fields("a", TypeNumber), "r", fields("a", TypeNumber)), Infer(nil, x))
	})
}

func TestInfer_deterministic(t *testing.T) {
	v := map[string]any{
		"list": []any{1, "a", map[string]any{"x": 1}, map[string]any{"x": "y"}},
		"obj":  map[string]any{"b": []any{}, "a": true},
	}
	assertType(t, Infer(nil, v), Infer(nil, v))
}

func TestInfer_maxDepth(t *testing.T) {
	v := map[string]any{
		"n": 1,
		"a": map[string]any{"b": 1},
		"l": []any{[]any{1}},
	}
	assertType(t,
		fields("n", TypeNumber, "a", TypeAny, "l", TypeAny),
		Infer(&Config{MaxDepth: 1}, v),
	)
	assertType(t,
		fields("n", TypeNumber, "a", fields("b", TypeNumber), "l", List{TypeAny}),
		Infer(&Config{MaxDepth: 2}, v),
	)
}

func TestInfer_aliases(t *testing.T) {
	var as Aliases
	as.Set("Point", fields("x", TypeNumber, "y", TypeNumber))
	got := Infer(&Config{Aliases: &as}, map[string]any{
		"at":   map[string]any{"x": 1, "y": 2},
		"path": []any{map[string]any{"y": 1, "x": 2}},
	})
	assertType(t, fields("at", Scalar("Point"), "path", List{Scalar("Point")}), got)
}
