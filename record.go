package jstype

import (
	"cmp"
	"maps"
	"slices"
	"strings"
)

// Field is a named member of a Record.
type Field struct {
	Name string
	Type Type
}

// Record describes object values by their exact set of keys and the type
// of each key. Field names are unique. The order of fields is the order in
// which keys were first found and only matters for rendering.
type Record []Field

// RecordOf creates a Record from m with fields sorted by name.
func RecordOf(m map[string]Type) Record {
	res := make(Record, 0, len(m))
	for _, k := range slices.Sorted(maps.Keys(m)) {
		res = append(res, Field{Name: k, Type: m[k]})
	}
	return res
}

func (Record) Kind() Kind { return RecordKind }

func (Record) isType() {}

func (r Record) Get(name string) (Type, bool) {
	if i := r.index(name); i >= 0 {
		return r[i].Type, true
	}
	return nil, false
}

func (r Record) Keys() []string {
	res := make([]string, len(r))
	for i, f := range r {
		res[i] = f.Name
	}
	return res
}

// SameKeys reports whether r and s have the identical set of keys.
func (r Record) SameKeys(s Record) bool {
	if len(r) != len(s) {
		return false
	}
	for _, f := range r {
		if s.index(f.Name) < 0 {
			return false
		}
	}
	return true
}

func (r Record) index(name string) int {
	return slices.IndexFunc(r, func(f Field) bool { return f.Name == name })
}

func (r Record) equal(s Record) bool {
	if len(r) != len(s) {
		return false
	}
	for _, f := range r {
		t, ok := s.Get(f.Name)
		if !ok || !Equal(f.Type, t) {
			return false
		}
	}
	return true
}

func (r Record) sortedKeys() []string {
	keys := r.Keys()
	slices.Sort(keys)
	return keys
}

func (r Record) compare(s Record) int {
	if c := cmp.Compare(len(r), len(s)); c != 0 {
		return c
	}
	rkeys, skeys := r.sortedKeys(), s.sortedKeys()
	c := strings.Compare(strings.Join(rkeys, ""), strings.Join(skeys, ""))
	if c != 0 {
		return c
	}
	rts := make([]Type, len(rkeys))
	sts := make([]Type, len(skeys))
	for i := range rkeys {
		rts[i], _ = r.Get(rkeys[i])
		sts[i], _ = s.Get(skeys[i])
	}
	if c = compareSorted(rts, sts); c != 0 {
		return c
	}
	// Joined keys may tie for different key sets, e.g. "ab"+"c" and "a"+"bc"
	return slices.Compare(rkeys, skeys)
}

// merge joins two records with the same keys field by field. The result
// keeps the field order of r.
func (r Record) merge(s Record) Record {
	res := make(Record, len(r))
	for i, f := range r {
		t, _ := s.Get(f.Name)
		res[i] = Field{Name: f.Name, Type: Concat(f.Type, t)}
	}
	return res
}
