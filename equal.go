package jstype

import "slices"

// Equal reports whether a and b are structurally equivalent. Members of
// lists and variants of unions compare as sets, i.e. order and duplicates
// do not matter. Records are equal if they have the same keys and equal
// types for each key.
func Equal(a, b Type) bool {
	if KindOf(a) != KindOf(b) {
		return false
	}
	switch a := a.(type) {
	case Empty:
		return true
	case Scalar:
		return a == b.(Scalar)
	case List:
		return sameSet(a, b.(List))
	case Record:
		return a.equal(b.(Record))
	case OneOf:
		return sameSet(a, b.(OneOf))
	}
	panic(invalidType(a))
}

func sameSet(xs, ys []Type) bool {
	return subset(xs, ys) && subset(ys, xs)
}

func subset(xs, ys []Type) bool {
	for _, x := range xs {
		if !contains(ys, x) {
			return false
		}
	}
	return true
}

func contains(ts []Type, t Type) bool {
	return slices.ContainsFunc(ts, func(u Type) bool { return Equal(t, u) })
}

// uniq returns the first type of each equivalence class in ts.
func uniq(ts []Type) []Type {
	res := make([]Type, 0, len(ts))
	for _, t := range ts {
		if !contains(res, t) {
			res = append(res, t)
		}
	}
	return res
}
