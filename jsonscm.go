package jstype

type jscmType struct {
	Type string `json:"type"`
}

type jscmString struct {
	jscmType
	Format string `json:"format,omitempty"`
}

type jscmTitle struct {
	Title string `json:"title"`
}

type jscmArray struct {
	jscmType
	Items any `json:"items,omitempty"`
}

type jscmAnyOf struct {
	AnyOf []any `json:"anyOf"`
}

type jscmObj struct {
	jscmType
	Required []string       `json:"required,omitempty"`
	Props    map[string]any `json:"properties"`
}

// JSONSchema returns a value that encodes t as JSON Schema with
// encoding/json. Empty becomes the schema false. Scalars without a JSON
// counterpart are described by a schema that only has their name as
// title.
func JSONSchema(t Type) any {
	switch t := t.(type) {
	case Empty:
		return false
	case Scalar:
		switch t {
		case TypeNumber:
			return jscmType{Type: "number"}
		case TypeString:
			return jscmType{Type: "string"}
		case TypeBoolean:
			return jscmType{Type: "boolean"}
		case TypeNull:
			return jscmType{Type: "null"}
		case TypeDate:
			return jscmString{
				jscmType: jscmType{Type: "string"},
				Format:   "date-time",
			}
		}
		return jscmTitle{Title: string(t)}
	case List:
		scm := jscmArray{jscmType: jscmType{Type: "array"}}
		switch len(t) {
		case 0:
		case 1:
			scm.Items = JSONSchema(t[0])
		default:
			scm.Items = anyOfSchema(t)
		}
		return scm
	case Record:
		scm := jscmObj{
			jscmType: jscmType{Type: "object"},
			Props:    make(map[string]any, len(t)),
		}
		for _, f := range t {
			scm.Required = append(scm.Required, f.Name)
			scm.Props[f.Name] = JSONSchema(f.Type)
		}
		return scm
	case OneOf:
		if len(t) < 2 {
			panic(invalidType(t))
		}
		return anyOfSchema(t)
	}
	panic(invalidType(t))
}

func anyOfSchema(ts []Type) jscmAnyOf {
	res := jscmAnyOf{AnyOf: make([]any, len(ts))}
	for i, t := range ts {
		res.AnyOf[i] = JSONSchema(t)
	}
	return res
}
