package jstype

import "strings"

// AnnotationStyle controls the layout of type annotations.
type AnnotationStyle struct {
	Indent  string
	Newline string
}

var DefaultAnnotation = AnnotationStyle{Indent: "  ", Newline: "\n"}

// Annotation renders t with DefaultAnnotation, e.g.
//
//	{
//	  name: String,
//	  tags: (Number|String)[]
//	}
func Annotation(t Type) string { return DefaultAnnotation.Render(t, 0) }

// Render renders t as annotation text. The level is the indentation depth
// of the closing brace of records.
func (as *AnnotationStyle) Render(t Type, level int) string {
	var sb strings.Builder
	as.render(&sb, t, level)
	return sb.String()
}

// Typedef renders t as a JSDoc @typedef comment for type name.
func (as *AnnotationStyle) Typedef(name string, t Type) string {
	nl := as.newline()
	var sb strings.Builder
	sb.WriteString("/**")
	sb.WriteString(nl)
	def := "@typedef {" + as.Render(t, 0) + "} " + name
	for _, line := range strings.Split(def, nl) {
		sb.WriteString(" * ")
		sb.WriteString(line)
		sb.WriteString(nl)
	}
	sb.WriteString(" */")
	return sb.String()
}

func (as *AnnotationStyle) newline() string {
	if as.Newline == "" {
		return "\n"
	}
	return as.Newline
}

func (as *AnnotationStyle) render(sb *strings.Builder, t Type, level int) {
	switch t := t.(type) {
	case Empty:
		sb.WriteString("Empty")
	case Scalar:
		sb.WriteString(string(t))
	case List:
		switch len(t) {
		case 0:
			sb.WriteString("[]")
		case 1:
			as.render(sb, t[0], level)
			sb.WriteString("[]")
		default:
			as.alternatives(sb, t, level)
			sb.WriteString("[]")
		}
	case OneOf:
		if len(t) < 2 {
			panic(invalidType(t))
		}
		as.alternatives(sb, t, level)
	case Record:
		as.record(sb, t, level)
	default:
		panic(invalidType(t))
	}
}

func (as *AnnotationStyle) alternatives(sb *strings.Builder, ts []Type, level int) {
	sb.WriteByte('(')
	for i, t := range ts {
		if i > 0 {
			sb.WriteByte('|')
		}
		as.render(sb, t, level)
	}
	sb.WriteByte(')')
}

func (as *AnnotationStyle) record(sb *strings.Builder, r Record, level int) {
	if len(r) == 0 {
		sb.WriteString("{}")
		return
	}
	nl := as.newline()
	sb.WriteByte('{')
	sb.WriteString(nl)
	for i, f := range r {
		sb.WriteString(strings.Repeat(as.Indent, level+1))
		sb.WriteString(f.Name)
		sb.WriteString(": ")
		as.render(sb, f.Type, level+1)
		if i < len(r)-1 {
			sb.WriteByte(',')
		}
		sb.WriteString(nl)
	}
	sb.WriteString(strings.Repeat(as.Indent, level))
	sb.WriteByte('}')
}
