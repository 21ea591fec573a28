package jstype

import (
	"cmp"
	"slices"
	"strings"
)

// Compare is a total order on types that is used to canonicalize
// collections of types. It is not a subtype relation. Compare returns 0
// for Equal types. Otherwise types of different kind are ordered by kind,
// scalars by name, lists and unions by their number of members and then
// by their sorted members, records by their number of keys, their sorted
// keys and then by their field types in the order of the sorted keys.
func Compare(a, b Type) int {
	if Equal(a, b) {
		return 0
	}
	if ka, kb := KindOf(a), KindOf(b); ka != kb {
		return cmp.Compare(ka, kb)
	}
	switch a := a.(type) {
	case Scalar:
		return strings.Compare(string(a), string(b.(Scalar)))
	case List:
		return compareSets(a, b.(List))
	case Record:
		return a.compare(b.(Record))
	case OneOf:
		return compareSets(a, b.(OneOf))
	}
	return 0
}

// LessEq reports whether a sorts before b or is Equal to b.
func LessEq(a, b Type) bool { return Compare(a, b) <= 0 }

// Sorted returns a sorted copy of ts.
func Sorted(ts []Type) []Type {
	res := slices.Clone(ts)
	slices.SortStableFunc(res, Compare)
	return res
}

func compareSets(xs, ys []Type) int {
	if c := cmp.Compare(len(xs), len(ys)); c != 0 {
		return c
	}
	return compareSorted(Sorted(xs), Sorted(ys))
}

// compareSorted compares two sequences of the same length element by
// element.
func compareSorted(xs, ys []Type) int {
	for i := range xs {
		if c := Compare(xs[i], ys[i]); c != 0 {
			return c
		}
	}
	return 0
}
