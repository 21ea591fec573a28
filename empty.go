package jstype

// Empty is the bottom type. It describes no value and is the identity
// element of Concat.
type Empty struct{}

func (Empty) Kind() Kind { return EmptyKind }

func (Empty) isType() {}
