package jstype

// OneOf is a union of at least two pairwise distinct variants. Variants
// are never Empty and no two variants are Records with the same keys.
type OneOf []Type

func (OneOf) Kind() Kind { return OneOfKind }

func (OneOf) isType() {}

// variants returns the variants of t if it is a union, otherwise t itself.
func variants(t Type) []Type {
	if u, ok := t.(OneOf); ok && len(u) >= 2 {
		return u
	}
	return []Type{t}
}

func oneOf(ts []Type) Type {
	switch len(ts) {
	case 0:
		return Empty{}
	case 1:
		return ts[0]
	}
	return OneOf(ts)
}
