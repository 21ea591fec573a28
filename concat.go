package jstype

import "slices"

// Concat computes the least general type that describes every value
// described by a or by b. Empty is the identity of Concat. Two distinct
// scalars or two distinct lists become a union of both. Records with the
// same keys are merged key by key, records with different keys become a
// union. All other combinations are joined by flattening the operands into
// one minimized union.
func Concat(a, b Type) Type {
	ka, kb := KindOf(a), KindOf(b)
	switch {
	case ka == EmptyKind:
		return b
	case kb == EmptyKind:
		return a
	case Equal(a, b):
		return a
	case ka != kb:
		return concatDifferent(a, b)
	}
	switch a := a.(type) {
	case Scalar, List:
		return OneOf{a, b}
	case Record:
		if br := b.(Record); a.SameKeys(br) {
			return a.merge(br)
		}
		return OneOf{a, b}
	}
	return concatDifferent(a, b)
}

// ConcatAll folds ts with Concat starting from Empty.
func ConcatAll(ts ...Type) Type {
	var res Type = Empty{}
	for _, t := range ts {
		res = Concat(res, t)
	}
	return res
}

func concatDifferent(a, b Type) Type {
	av, bv := variants(a), variants(b)
	ts := make([]Type, 0, len(av)+len(bv))
	ts = append(ts, av...)
	ts = append(ts, bv...)
	return oneOf(Minimize(ts))
}

// Minimize removes duplicates from ts and merges records that have the same
// keys. The result lists scalars first, followed by lists, records and
// unions. Empty types are dropped.
func Minimize(ts []Type) []Type {
	var scalars, lists, records, unions []Type
	for _, t := range uniq(ts) {
		switch KindOf(t) {
		case ScalarKind:
			scalars = append(scalars, t)
		case ListKind:
			lists = append(lists, t)
		case RecordKind:
			records = mergeRecords(records, t.(Record))
		case OneOfKind:
			unions = append(unions, t)
		}
	}
	return slices.Concat(scalars, lists, records, unions)
}

func mergeRecords(records []Type, r Record) []Type {
	i := slices.IndexFunc(records, func(t Type) bool {
		return t.(Record).SameKeys(r)
	})
	if i < 0 {
		return append(records, r)
	}
	records[i] = records[i].(Record).merge(r)
	return records
}
