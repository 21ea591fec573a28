package jstype

// List describes array-like values by the set of types that were found
// for their elements. The members of a List are kept minimized, see
// Minimize. An empty List describes arrays without any element.
type List []Type

func (List) Kind() Kind { return ListKind }

func (List) isType() {}
