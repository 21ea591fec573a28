package jstype

import "strconv"

// Scalar is a leaf type identified by its name. Alias names substituted by
// Simplify are Scalars too.
type Scalar string

const (
	TypeNumber    Scalar = "Number"
	TypeString    Scalar = "String"
	TypeBoolean   Scalar = "Boolean"
	TypeNull      Scalar = "Null"
	TypeUndefined Scalar = "Undefined"
	TypeRegExp    Scalar = "RegExp"
	TypeDate      Scalar = "Date"
	TypePromise   Scalar = "Promise"
	TypeError     Scalar = "Error"
	TypeMap       Scalar = "Map"

	// TypeAny is used for values nested deeper than Config.MaxDepth.
	TypeAny Scalar = "Any"
)

// FunctionType returns the scalar for functions with arity parameters.
func FunctionType(arity int) Scalar {
	if arity == 0 {
		return "Function (void)"
	}
	return Scalar("Function (" + strconv.Itoa(arity) + ")")
}

func (Scalar) Kind() Kind { return ScalarKind }

func (Scalar) isType() {}
